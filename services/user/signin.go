package user

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"prolink/models"
	"prolink/utils"
)

func (s *DefaultUserService) Login(ctx context.Context, email, password string) (*models.User, error) {
	userRec, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		utils.GetLogger().Error("Login: failed to fetch user", zap.Error(err))
		return nil, err
	}
	if userRec == nil {
		return nil, utils.NotFoundError("no account with this email; please check it or register")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userRec.PasswordHash), []byte(password)); err != nil {
		return nil, utils.UnauthorizedError("incorrect password")
	}

	userRec.PasswordHash = ""
	return userRec, nil
}

func (s *DefaultUserService) ResolveSession(ctx context.Context, userID string) (*models.User, error) {
	userRec, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		utils.GetLogger().Error("ResolveSession: failed to fetch user", zap.Error(err))
		return nil, err
	}
	if userRec == nil {
		return nil, nil
	}
	userRec.PasswordHash = ""
	return userRec, nil
}
