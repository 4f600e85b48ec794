package auth

import (
	"context"
	"medicore-service/internal/app/contracts"
	"medicore-service/internal/app/models"
	"medicore-service/internal/pkg/constvars"
	"medicore-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

type sessionKvRepository struct {
	kv contracts.KeyValueStore
}

func NewSessionKvRepository(kv contracts.KeyValueStore) contracts.SessionRepository {
	return &sessionKvRepository{kv: kv}
}

// Current returns nil without error when no identity is stored.
func (r *sessionKvRepository) Current(ctx context.Context) (*models.User, error) {
	raw, found, err := r.kv.Get(ctx, constvars.StorageKeyActiveUser)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}

	var user models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil, exceptions.ErrCorruptStoredData(err, constvars.StorageKeyActiveUser)
	}
	return &user, nil
}

// Save always strips the password before the identity hits storage.
func (r *sessionKvRepository) Save(ctx context.Context, user models.User) error {
	data, err := json.Marshal(user.WithoutPassword())
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}
	return r.kv.Set(ctx, constvars.StorageKeyActiveUser, string(data))
}

func (r *sessionKvRepository) Clear(ctx context.Context) error {
	return r.kv.Delete(ctx, constvars.StorageKeyActiveUser)
}
