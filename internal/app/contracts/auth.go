package contracts

import (
	"context"
	"medicore-service/internal/app/models"
	"medicore-service/internal/pkg/dto/requests"
)

type UserRepository interface {
	FindAll(ctx context.Context) ([]models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Insert(ctx context.Context, user models.User) error
}

// SessionRepository holds the single active identity of this
// deployment, persisted under its own reserved key so it survives
// restarts.
type SessionRepository interface {
	Current(ctx context.Context) (*models.User, error)
	Save(ctx context.Context, user models.User) error
	Clear(ctx context.Context) error
}

type AuthUsecase interface {
	Register(ctx context.Context, request *requests.RegisterUserRequest) (*models.User, error)
	Login(ctx context.Context, request *requests.LoginUserRequest) (*models.User, error)
	Logout(ctx context.Context) error
	RestoreSession(ctx context.Context) (*models.User, error)
}
