package user

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"prolink/models"
	"prolink/utils"
)

// defaultLocation seeds newly registered users until they share a real
// position.
var defaultLocation = models.GeoLocation{Lat: 48.8566, Lon: 2.3522}

func (s *DefaultUserService) Register(ctx context.Context, data RegistrationData) (*models.User, error) {
	existing, err := s.Repo.GetByEmail(ctx, data.Email)
	if err != nil {
		utils.GetLogger().Error("Register: failed to check for existing user", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		return nil, utils.ConflictError("an account with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash credential: %w", err)
	}

	newUser := models.User{
		ID:           uuid.NewString(),
		Name:         data.Name,
		Email:        data.Email,
		PasswordHash: string(hash),
		Phone:        data.Phone,
		Location:     defaultLocation,
		AvatarURL:    fmt.Sprintf("https://picsum.photos/100/100?random=%d", time.Now().UnixNano()),
	}
	if err := s.Repo.Create(ctx, newUser); err != nil {
		utils.GetLogger().Error("Register: failed to create user", zap.Error(err))
		return nil, err
	}

	newUser.PasswordHash = ""
	return &newUser, nil
}
