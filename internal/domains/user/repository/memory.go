package repository

import (
	"context"
	"strings"
	"time"

	"lodge/infras/memstore"
	"lodge/internal/domains/user/model"
	"lodge/shared/constant"
	"lodge/shared/failure"
	"lodge/shared/timezone"
)

type memoryImpl struct {
	store *memstore.Store
}

// NewMemory backs the user repository with the in-memory store.
func NewMemory(store *memstore.Store) User {
	return &memoryImpl{store: store}
}

func (repo *memoryImpl) Insert(_ context.Context, user model.User) error {
	repo.store.Lock()
	defer repo.store.Unlock()

	for _, existing := range repo.store.Users {
		if strings.EqualFold(existing.Email, user.Email) {
			return failure.Conflict("email already in use")
		}
	}

	repo.store.Users[user.ID] = user

	return nil
}

func (repo *memoryImpl) GetByID(_ context.Context, id string) (model.User, error) {
	repo.store.RLock()
	defer repo.store.RUnlock()

	return repo.store.Users[id], nil
}

func (repo *memoryImpl) GetByEmail(_ context.Context, email string) (model.User, error) {
	repo.store.RLock()
	defer repo.store.RUnlock()

	for _, user := range repo.store.Users {
		if strings.EqualFold(user.Email, email) {
			return user, nil
		}
	}

	return model.User{}, nil
}

// UpdateFields applies the subset of columns the auth flow touches.
func (repo *memoryImpl) UpdateFields(_ context.Context, id string, fields map[string]any) error {
	repo.store.Lock()
	defer repo.store.Unlock()

	user, ok := repo.store.Users[id]
	if !ok {
		return failure.NotFound("user not found")
	}

	for field, value := range fields {
		switch field {
		case model.FieldPassword:
			if password, ok := value.(string); ok {
				user.Password = password
			}
		case model.FieldLastLogin:
			switch lastLogin := value.(type) {
			case string:
				user.LastLogin = &lastLogin
			case time.Time:
				formatted := timezone.Format(lastLogin, time.RFC3339)
				user.LastLogin = &formatted
			}
		case model.FieldActive:
			if active, ok := value.(bool); ok {
				user.Active = active
			}
		case constant.FieldModifiedBy:
			if modifiedBy, ok := value.(string); ok {
				user.ModifiedBy = modifiedBy
			}
		}
	}

	user.ModifiedAt = timezone.Now()
	repo.store.Users[id] = user

	return nil
}

func (repo *memoryImpl) Delete(_ context.Context, id string) error {
	repo.store.Lock()
	defer repo.store.Unlock()

	delete(repo.store.Users, id)

	return nil
}
