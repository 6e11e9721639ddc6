package entities

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type Discussion struct {
	Id             uuid.UUID
	Title          string
	Content        string
	AuthorId       uuid.UUID
	AuthorUsername string
	Tags           []string
	RepliesCount   int
	ViewsCount     int
	CreatedAt      time.Time
	LastActivity   time.Time
}

func NewDiscussion(title, content string, authorId uuid.UUID, authorUsername string, tags []string) *Discussion {
	now := time.Now()
	return &Discussion{
		Id:             uuid.New(),
		Title:          title,
		Content:        content,
		AuthorId:       authorId,
		AuthorUsername: authorUsername,
		Tags:           tags,
		CreatedAt:      now,
		LastActivity:   now,
	}
}

func (d *Discussion) validate() error {
	if d.Title == "" {
		return errors.New("title must not be empty")
	}
	if d.Content == "" {
		return errors.New("content must not be empty")
	}
	if d.AuthorUsername == "" {
		return errors.New("author username must not be empty")
	}
	return nil
}

func (d *Discussion) RecordView() {
	d.ViewsCount++
}

func (d *Discussion) RecordReply(at time.Time) {
	d.RepliesCount++
	d.LastActivity = at
}

type Reply struct {
	Id             uuid.UUID
	DiscussionId   uuid.UUID
	Content        string
	AuthorId       uuid.UUID
	AuthorUsername string
	CreatedAt      time.Time
}

func NewReply(discussionId uuid.UUID, content string, authorId uuid.UUID, authorUsername string) *Reply {
	return &Reply{
		Id:             uuid.New(),
		DiscussionId:   discussionId,
		Content:        content,
		AuthorId:       authorId,
		AuthorUsername: authorUsername,
		CreatedAt:      time.Now(),
	}
}

func (r *Reply) validate() error {
	if r.Content == "" {
		return errors.New("content must not be empty")
	}
	return nil
}

type ValidatedDiscussion struct {
	*Discussion
}

func NewValidatedDiscussion(discussion *Discussion) (*ValidatedDiscussion, error) {
	if err := discussion.validate(); err != nil {
		return nil, err
	}
	return &ValidatedDiscussion{Discussion: discussion}, nil
}

func (vd *ValidatedDiscussion) GetDiscussion() *Discussion {
	return vd.Discussion
}

type ValidatedReply struct {
	*Reply
}

func NewValidatedReply(reply *Reply) (*ValidatedReply, error) {
	if err := reply.validate(); err != nil {
		return nil, err
	}
	return &ValidatedReply{Reply: reply}, nil
}

func (vr *ValidatedReply) GetReply() *Reply {
	return vr.Reply
}
