package auth

import (
	"context"
	"medicore-service/internal/app/contracts"
	"medicore-service/internal/app/models"
	"medicore-service/internal/pkg/dto/requests"
	"medicore-service/internal/pkg/exceptions"
	"medicore-service/internal/pkg/utils"
)

type authUsecase struct {
	UserRepository    contracts.UserRepository
	SessionRepository contracts.SessionRepository
}

func NewAuthUsecase(userRepository contracts.UserRepository, sessionRepository contracts.SessionRepository) contracts.AuthUsecase {
	return &authUsecase{
		UserRepository:    userRepository,
		SessionRepository: sessionRepository,
	}
}

func (uc *authUsecase) Register(ctx context.Context, request *requests.RegisterUserRequest) (*models.User, error) {
	existing, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrEmailAlreadyExist(nil)
	}

	user := models.User{
		ID:        utils.GenerateEntityID(),
		Email:     request.Email,
		Password:  request.Password,
		Name:      request.Name,
		CreatedAt: utils.NowTimestamp(),
	}

	if err := uc.UserRepository.Insert(ctx, user); err != nil {
		return nil, err
	}
	if err := uc.SessionRepository.Save(ctx, user); err != nil {
		return nil, err
	}

	identity := user.WithoutPassword()
	return &identity, nil
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.LoginUserRequest) (*models.User, error) {
	user, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	// One error for both unknown email and wrong password, so a caller
	// cannot probe which emails are registered.
	if user == nil || user.Password != request.Password {
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}

	if err := uc.SessionRepository.Save(ctx, *user); err != nil {
		return nil, err
	}

	identity := user.WithoutPassword()
	return &identity, nil
}

func (uc *authUsecase) Logout(ctx context.Context) error {
	return uc.SessionRepository.Clear(ctx)
}

func (uc *authUsecase) RestoreSession(ctx context.Context) (*models.User, error) {
	user, err := uc.SessionRepository.Current(ctx)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrNoActiveSession(nil)
	}
	return user, nil
}
