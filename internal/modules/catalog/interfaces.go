package catalog

import (
	"context"

	"meetspace/internal/domain"
)

type RoomRepository interface {
	Create(ctx context.Context, room *domain.Room) error
	Save(ctx context.Context, room *domain.Room) error
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	List(ctx context.Context, onlyActive bool) ([]domain.Room, error)
	Delete(ctx context.Context, id int64) error
}

type ClientRepository interface {
	Create(ctx context.Context, c *domain.Client) error
	Save(ctx context.Context, c *domain.Client) error
	GetByID(ctx context.Context, id int64) (*domain.Client, error)
	List(ctx context.Context) ([]domain.Client, error)
	Delete(ctx context.Context, id int64) error
}
