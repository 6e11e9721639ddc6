package postgres

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"codeforge/internal/domain/entities"
)

type UserModel struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`
	Username       string         `gorm:"uniqueIndex;not null"`
	Email          string         `gorm:"uniqueIndex;not null"`
	Password       string         `gorm:"not null"`
	Tokens         StringSlice    `gorm:"type:text"`
	IsVerified     bool           `gorm:"default:false"`
	Tier           string         `gorm:"default:free"`
	TotalSolved    int
	EasySolved     int
	MediumSolved   int
	HardSolved     int
	Ranking        int
	Streak         int
	AcceptanceRate float64
	Avatar         string
}

func (UserModel) TableName() string {
	return "users"
}

type ProblemModel struct {
	Id                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt           time.Time
	Number              int    `gorm:"uniqueIndex;not null"`
	Title               string `gorm:"not null"`
	Description         string
	Difficulty          string `gorm:"index"`
	Tags                StringSlice
	Examples            ExampleList
	Constraints         StringSlice
	TestCases           TestCaseList
	StarterCode         StarterCodeColumn
	MinTier             string `gorm:"default:free"`
	AcceptanceRate      float64
	TotalSubmissions    int
	AcceptedSubmissions int
}

func (ProblemModel) TableName() string {
	return "problems"
}

type SubmissionModel struct {
	Id              uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserId          uuid.UUID `gorm:"type:uuid;index:idx_user_problem"`
	ProblemId       uuid.UUID `gorm:"type:uuid;index:idx_user_problem"`
	Language        string
	Code            string
	Status          string
	Runtime         float64
	Memory          float64
	PassedTestCases int
	TotalTestCases  int
	ErrorMessage    string
	SubmittedAt     time.Time `gorm:"index"`
}

func (SubmissionModel) TableName() string {
	return "submissions"
}

type ContestModel struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt    time.Time
	Title        string `gorm:"not null"`
	Description  string
	StartTime    time.Time `gorm:"index"`
	Duration     int
	ProblemIds   UUIDSlice
	Participants UUIDSlice
	Image        string
}

func (ContestModel) TableName() string {
	return "contests"
}

type DiscussionModel struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt      time.Time `gorm:"index"`
	Title          string    `gorm:"not null"`
	Content        string
	AuthorId       uuid.UUID `gorm:"type:uuid;index"`
	AuthorUsername string
	Tags           StringSlice
	RepliesCount   int
	ViewsCount     int
	LastActivity   time.Time `gorm:"index"`
}

func (DiscussionModel) TableName() string {
	return "discussions"
}

type ReplyModel struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey"`
	DiscussionId   uuid.UUID `gorm:"type:uuid;index"`
	Content        string
	AuthorId       uuid.UUID `gorm:"type:uuid"`
	AuthorUsername string
	CreatedAt      time.Time
}

func (ReplyModel) TableName() string {
	return "replies"
}

type IdempotencyModel struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Key        string    `gorm:"uniqueIndex"`
	Request    string
	Response   string
	StatusCode int
	CreatedAt  time.Time
}

func (IdempotencyModel) TableName() string {
	return "idempotency_records"
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&UserModel{},
		&ProblemModel{},
		&SubmissionModel{},
		&ContestModel{},
		&DiscussionModel{},
		&ReplyModel{},
		&IdempotencyModel{},
	)
}

func userToEntity(m *UserModel) *entities.User {
	return &entities.User{
		Id:             m.Id,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
		Username:       m.Username,
		Email:          m.Email,
		Password:       m.Password,
		Tokens:         m.Tokens,
		IsVerified:     m.IsVerified,
		Tier:           entities.Tier(m.Tier),
		TotalSolved:    m.TotalSolved,
		EasySolved:     m.EasySolved,
		MediumSolved:   m.MediumSolved,
		HardSolved:     m.HardSolved,
		Ranking:        m.Ranking,
		Streak:         m.Streak,
		AcceptanceRate: m.AcceptanceRate,
		Avatar:         m.Avatar,
	}
}

func userToModel(u *entities.User) *UserModel {
	return &UserModel{
		Id:             u.Id,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
		Username:       u.Username,
		Email:          u.Email,
		Password:       u.Password,
		Tokens:         StringSlice(u.Tokens),
		IsVerified:     u.IsVerified,
		Tier:           string(u.Tier),
		TotalSolved:    u.TotalSolved,
		EasySolved:     u.EasySolved,
		MediumSolved:   u.MediumSolved,
		HardSolved:     u.HardSolved,
		Ranking:        u.Ranking,
		Streak:         u.Streak,
		AcceptanceRate: u.AcceptanceRate,
		Avatar:         u.Avatar,
	}
}

func problemToEntity(m *ProblemModel) *entities.Problem {
	return &entities.Problem{
		Id:                  m.Id,
		Number:              m.Number,
		Title:               m.Title,
		Description:         m.Description,
		Difficulty:          entities.Difficulty(m.Difficulty),
		Tags:                m.Tags,
		Examples:            m.Examples,
		Constraints:         m.Constraints,
		TestCases:           m.TestCases,
		StarterCode:         entities.StarterCode(m.StarterCode),
		MinTier:             entities.Tier(m.MinTier),
		AcceptanceRate:      m.AcceptanceRate,
		TotalSubmissions:    m.TotalSubmissions,
		AcceptedSubmissions: m.AcceptedSubmissions,
		CreatedAt:           m.CreatedAt,
	}
}

func problemToModel(p *entities.Problem) *ProblemModel {
	return &ProblemModel{
		Id:                  p.Id,
		CreatedAt:           p.CreatedAt,
		Number:              p.Number,
		Title:               p.Title,
		Description:         p.Description,
		Difficulty:          string(p.Difficulty),
		Tags:                StringSlice(p.Tags),
		Examples:            ExampleList(p.Examples),
		Constraints:         StringSlice(p.Constraints),
		TestCases:           TestCaseList(p.TestCases),
		StarterCode:         StarterCodeColumn(p.StarterCode),
		MinTier:             string(p.MinTier),
		AcceptanceRate:      p.AcceptanceRate,
		TotalSubmissions:    p.TotalSubmissions,
		AcceptedSubmissions: p.AcceptedSubmissions,
	}
}

func submissionToEntity(m *SubmissionModel) *entities.Submission {
	return &entities.Submission{
		Id:              m.Id,
		UserId:          m.UserId,
		ProblemId:       m.ProblemId,
		Language:        entities.Language(m.Language),
		Code:            m.Code,
		Status:          entities.SubmissionStatus(m.Status),
		Runtime:         m.Runtime,
		Memory:          m.Memory,
		PassedTestCases: m.PassedTestCases,
		TotalTestCases:  m.TotalTestCases,
		ErrorMessage:    m.ErrorMessage,
		SubmittedAt:     m.SubmittedAt,
	}
}

func submissionToModel(s *entities.Submission) *SubmissionModel {
	return &SubmissionModel{
		Id:              s.Id,
		UserId:          s.UserId,
		ProblemId:       s.ProblemId,
		Language:        string(s.Language),
		Code:            s.Code,
		Status:          string(s.Status),
		Runtime:         s.Runtime,
		Memory:          s.Memory,
		PassedTestCases: s.PassedTestCases,
		TotalTestCases:  s.TotalTestCases,
		ErrorMessage:    s.ErrorMessage,
		SubmittedAt:     s.SubmittedAt,
	}
}

func contestToEntity(m *ContestModel) *entities.Contest {
	return &entities.Contest{
		Id:           m.Id,
		Title:        m.Title,
		Description:  m.Description,
		StartTime:    m.StartTime,
		Duration:     m.Duration,
		ProblemIds:   m.ProblemIds,
		Participants: m.Participants,
		Image:        m.Image,
		CreatedAt:    m.CreatedAt,
	}
}

func contestToModel(c *entities.Contest) *ContestModel {
	return &ContestModel{
		Id:           c.Id,
		CreatedAt:    c.CreatedAt,
		Title:        c.Title,
		Description:  c.Description,
		StartTime:    c.StartTime,
		Duration:     c.Duration,
		ProblemIds:   UUIDSlice(c.ProblemIds),
		Participants: UUIDSlice(c.Participants),
		Image:        c.Image,
	}
}

func discussionToEntity(m *DiscussionModel) *entities.Discussion {
	return &entities.Discussion{
		Id:             m.Id,
		Title:          m.Title,
		Content:        m.Content,
		AuthorId:       m.AuthorId,
		AuthorUsername: m.AuthorUsername,
		Tags:           m.Tags,
		RepliesCount:   m.RepliesCount,
		ViewsCount:     m.ViewsCount,
		CreatedAt:      m.CreatedAt,
		LastActivity:   m.LastActivity,
	}
}

func discussionToModel(d *entities.Discussion) *DiscussionModel {
	return &DiscussionModel{
		Id:             d.Id,
		CreatedAt:      d.CreatedAt,
		Title:          d.Title,
		Content:        d.Content,
		AuthorId:       d.AuthorId,
		AuthorUsername: d.AuthorUsername,
		Tags:           StringSlice(d.Tags),
		RepliesCount:   d.RepliesCount,
		ViewsCount:     d.ViewsCount,
		LastActivity:   d.LastActivity,
	}
}

func replyToEntity(m *ReplyModel) *entities.Reply {
	return &entities.Reply{
		Id:             m.Id,
		DiscussionId:   m.DiscussionId,
		Content:        m.Content,
		AuthorId:       m.AuthorId,
		AuthorUsername: m.AuthorUsername,
		CreatedAt:      m.CreatedAt,
	}
}
