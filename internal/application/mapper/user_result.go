package mapper

import (
	"codeforge/internal/application/common"
	"codeforge/internal/domain/entities"
)

func NewUserResultFromEntity(user *entities.User) *common.UserResult {
	return &common.UserResult{
		Id:             user.Id,
		CreatedAt:      user.CreatedAt,
		UpdatedAt:      user.UpdatedAt,
		Username:       user.Username,
		Email:          user.Email,
		IsVerified:     user.IsVerified,
		Tier:           user.Tier,
		TotalSolved:    user.TotalSolved,
		EasySolved:     user.EasySolved,
		MediumSolved:   user.MediumSolved,
		HardSolved:     user.HardSolved,
		Ranking:        user.Ranking,
		Streak:         user.Streak,
		AcceptanceRate: user.AcceptanceRate,
		Avatar:         user.Avatar,
	}
}

func NewUserResultFromValidatedEntity(validatedUser *entities.ValidatedUser) *common.UserResult {
	return NewUserResultFromEntity(validatedUser.GetUser())
}
