package booking

import (
	"context"

	"meetspace/internal/domain"
	"meetspace/internal/repository"
)

// BookingRepository is the write/read surface of the booking store. The
// transactional Create and SaveWithOverlapCheck own the no-overlap
// invariant and return repository.ErrOverlap when it would break.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	Save(ctx context.Context, b *domain.Booking) error
	SaveWithOverlapCheck(ctx context.Context, b *domain.Booking) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	List(ctx context.Context, f repository.BookingFilter) ([]domain.Booking, error)
}

type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}

type ClientRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Client, error)
}
