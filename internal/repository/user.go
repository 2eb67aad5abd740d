package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Abhijith1907/conference-booking/internal/domain"
	"github.com/Abhijith1907/conference-booking/internal/store"
)

type UserRepository struct {
	tbl *store.Memory[domain.User]
}

func NewUserRepo(tbl *store.Memory[domain.User]) *UserRepository {
	return &UserRepository{tbl: tbl}
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	if err := r.tbl.Create(u.ID, *u); err != nil {
		if errors.Is(err, store.ErrExists) {
			return domain.ErrUserExists
		}
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	u, ok := r.tbl.Get(id)
	if !ok {
		return nil, domain.ErrUserNotFound
	}

	return &u, nil
}

func (r *UserRepository) List(ctx context.Context) ([]*domain.User, error) {
	records := r.tbl.List(nil, 0, 0)

	res := make([]*domain.User, 0, len(records))
	for _, u := range records {
		u := u
		res = append(res, &u)
	}

	return res, nil
}
