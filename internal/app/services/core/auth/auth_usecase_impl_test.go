package auth

import (
	"context"
	"medicore-service/internal/app/contracts"
	"medicore-service/internal/app/services/shared/kvstore"
	"medicore-service/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newAuthFixture() (contracts.AuthUsecase, contracts.SessionRepository) {
	kv := kvstore.NewMemoryStore()
	sessionRepository := NewSessionKvRepository(kv)
	return NewAuthUsecase(NewUserKvRepository(kv), sessionRepository), sessionRepository
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("Registers, strips password and opens a session", func(t *testing.T) {
		uc, sessions := newAuthFixture()

		user, err := uc.Register(ctx, &requests.RegisterUserRequest{
			Email:    "admin@hospital.com",
			Password: "secret123",
			Name:     "Admin",
		})
		assert.NoError(t, err)
		assert.NotEmpty(t, user.ID)
		assert.Empty(t, user.Password)

		active, err := sessions.Current(ctx)
		assert.NoError(t, err)
		assert.NotNil(t, active)
		assert.Equal(t, user.ID, active.ID)
		assert.Empty(t, active.Password, "stored identity must never carry the password")
	})

	t.Run("Duplicate email fails", func(t *testing.T) {
		uc, _ := newAuthFixture()

		_, err := uc.Register(ctx, &requests.RegisterUserRequest{Email: "a@b.com", Password: "x", Name: "A"})
		assert.NoError(t, err)

		_, err = uc.Register(ctx, &requests.RegisterUserRequest{Email: "a@b.com", Password: "y", Name: "B"})
		assert.Error(t, err)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	uc, sessions := newAuthFixture()

	_, err := uc.Register(ctx, &requests.RegisterUserRequest{
		Email:    "admin@hospital.com",
		Password: "secret123",
		Name:     "Admin",
	})
	assert.NoError(t, err)
	assert.NoError(t, uc.Logout(ctx))

	t.Run("Correct credentials", func(t *testing.T) {
		user, err := uc.Login(ctx, &requests.LoginUserRequest{Email: "admin@hospital.com", Password: "secret123"})
		assert.NoError(t, err)
		assert.Equal(t, "Admin", user.Name)
		assert.Empty(t, user.Password)

		active, err := sessions.Current(ctx)
		assert.NoError(t, err)
		assert.NotNil(t, active)
	})

	t.Run("Wrong password", func(t *testing.T) {
		assert.NoError(t, uc.Logout(ctx))

		_, err := uc.Login(ctx, &requests.LoginUserRequest{Email: "admin@hospital.com", Password: "wrong"})
		assert.Error(t, err)

		active, sessionErr := sessions.Current(ctx)
		assert.NoError(t, sessionErr)
		assert.Nil(t, active, "failed login must not open a session")
	})

	t.Run("Unknown email", func(t *testing.T) {
		_, err := uc.Login(ctx, &requests.LoginUserRequest{Email: "nobody@hospital.com", Password: "secret123"})
		assert.Error(t, err)
	})

	t.Run("Password comparison is exact", func(t *testing.T) {
		_, err := uc.Login(ctx, &requests.LoginUserRequest{Email: "admin@hospital.com", Password: "Secret123"})
		assert.Error(t, err)
	})
}

func TestLogout(t *testing.T) {
	ctx := context.Background()
	uc, sessions := newAuthFixture()

	// Logging out without a session is harmless.
	assert.NoError(t, uc.Logout(ctx))

	_, err := uc.Register(ctx, &requests.RegisterUserRequest{Email: "a@b.com", Password: "x", Name: "A"})
	assert.NoError(t, err)

	assert.NoError(t, uc.Logout(ctx))

	active, err := sessions.Current(ctx)
	assert.NoError(t, err)
	assert.Nil(t, active)
}

func TestRestoreSession(t *testing.T) {
	ctx := context.Background()
	uc, _ := newAuthFixture()

	t.Run("No active session", func(t *testing.T) {
		_, err := uc.RestoreSession(ctx)
		assert.Error(t, err)
	})

	t.Run("Active session survives", func(t *testing.T) {
		registered, err := uc.Register(ctx, &requests.RegisterUserRequest{Email: "a@b.com", Password: "x", Name: "A"})
		assert.NoError(t, err)

		restored, err := uc.RestoreSession(ctx)
		assert.NoError(t, err)
		assert.Equal(t, registered.ID, restored.ID)
		assert.Empty(t, restored.Password)
	})
}
