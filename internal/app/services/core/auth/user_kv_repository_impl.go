package auth

import (
	"context"
	"medicore-service/internal/app/contracts"
	"medicore-service/internal/app/models"
	"medicore-service/internal/app/services/shared/collection"
	"medicore-service/internal/pkg/constvars"
)

type userKvRepository struct {
	store *collection.Store[models.User]
}

// NewUserKvRepository has no seed; the users collection always starts
// empty and only grows through registration.
func NewUserKvRepository(kv contracts.KeyValueStore) contracts.UserRepository {
	return &userKvRepository{
		store: collection.NewStore[models.User](kv, constvars.StorageKeyUsers, nil),
	}
}

func (r *userKvRepository) FindAll(ctx context.Context) ([]models.User, error) {
	return r.store.LoadAll(ctx)
}

// FindByEmail matches case-sensitively, exact string comparison.
func (r *userKvRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	users, err := r.store.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email == email {
			return &users[i], nil
		}
	}
	return nil, nil
}

func (r *userKvRepository) Insert(ctx context.Context, user models.User) error {
	users, err := r.store.LoadAll(ctx)
	if err != nil {
		return err
	}
	users = append(users, user)
	return r.store.SaveAll(ctx, users)
}
