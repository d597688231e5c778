// Package booking is the ledger that owns booking records: it validates
// references and time ranges, prices new intervals, enforces the
// no-overlap rule per room and the status lifecycle. All booking writes
// go through this service.
package booking

import (
	"context"
	"errors"

	"meetspace/internal/domain"
	"meetspace/internal/pricing"
	"meetspace/internal/repository"

	"gorm.io/gorm"
)

type Service struct {
	bookings BookingRepository
	rooms    RoomRepository
	clients  ClientRepository
}

func NewService(bookings BookingRepository, rooms RoomRepository, clients ClientRepository) *Service {
	return &Service{
		bookings: bookings,
		rooms:    rooms,
		clients:  clients,
	}
}

// activeRoom loads a room and rejects missing or deactivated ones.
func (s *Service) activeRoom(ctx context.Context, roomID int64) (*domain.Room, error) {
	room, err := s.rooms.GetByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	if !room.IsActive {
		return nil, ErrRoomInactive
	}
	return room, nil
}

// Create validates the request, prices the interval and persists the
// booking with status and payment status pending. The overlap check
// runs inside the repository transaction, so two concurrent creates for
// the same room and time cannot both commit.
func (s *Service) Create(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error) {
	if !req.EndTime.After(req.StartTime) {
		return nil, ErrInvalidRange
	}

	if _, err := s.clients.GetByID(ctx, req.ClientID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}

	room, err := s.activeRoom(ctx, req.RoomID)
	if err != nil {
		return nil, err
	}

	amount, err := pricing.Price(room.HourlyRate, req.StartTime, req.EndTime)
	if err != nil {
		return nil, ErrInvalidRange
	}

	b := &domain.Booking{
		ClientID:      req.ClientID,
		RoomID:        req.RoomID,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		TotalAmount:   amount,
		Status:        domain.BookingPending,
		PaymentStatus: domain.PaymentPending,
		Notes:         req.Notes,
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		if errors.Is(err, repository.ErrOverlap) {
			return nil, ErrConflict
		}
		return nil, err
	}

	return b, nil
}

// Update applies a partial change set. A change to room, start or end
// re-runs the overlap check (excluding the booking's own interval) and
// reprices the booking; a status change must follow the lifecycle.
func (s *Service) Update(ctx context.Context, id int64, req UpdateBookingRequest) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	reprice := false

	if req.ClientID != nil && *req.ClientID != b.ClientID {
		if _, err := s.clients.GetByID(ctx, *req.ClientID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrClientNotFound
			}
			return nil, err
		}
		b.ClientID = *req.ClientID
	}
	if req.RoomID != nil && *req.RoomID != b.RoomID {
		b.RoomID = *req.RoomID
		reprice = true
	}
	if req.StartTime != nil && !req.StartTime.Equal(b.StartTime) {
		b.StartTime = *req.StartTime
		reprice = true
	}
	if req.EndTime != nil && !req.EndTime.Equal(b.EndTime) {
		b.EndTime = *req.EndTime
		reprice = true
	}

	if req.Status != nil {
		next := domain.BookingStatus(*req.Status)
		if !next.Valid() {
			return nil, ErrInvalidStatus
		}
		if next != b.Status {
			if !b.Status.CanTransitionTo(next) {
				return nil, ErrInvalidTransition
			}
			b.Status = next
		}
	}
	if req.PaymentStatus != nil {
		next := domain.PaymentStatus(*req.PaymentStatus)
		if !next.Valid() {
			return nil, ErrInvalidStatus
		}
		b.PaymentStatus = next
	}
	if req.Notes != nil {
		b.Notes = *req.Notes
	}

	if reprice {
		if !b.EndTime.After(b.StartTime) {
			return nil, ErrInvalidRange
		}
		room, err := s.activeRoom(ctx, b.RoomID)
		if err != nil {
			return nil, err
		}
		amount, err := pricing.Price(room.HourlyRate, b.StartTime, b.EndTime)
		if err != nil {
			return nil, ErrInvalidRange
		}
		b.TotalAmount = amount

		if err := s.bookings.SaveWithOverlapCheck(ctx, b); err != nil {
			if errors.Is(err, repository.ErrOverlap) {
				return nil, ErrConflict
			}
			return nil, err
		}
		return b, nil
	}

	if err := s.bookings.Save(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// Delete erases the booking. Unlike cancellation it leaves no history,
// so it is reserved for administrators.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.bookings.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (s *Service) List(ctx context.Context, q ListBookingsQuery) ([]domain.Booking, error) {
	f := repository.BookingFilter{
		RoomID:   q.RoomID,
		ClientID: q.ClientID,
		From:     q.From,
		To:       q.To,
	}
	for _, raw := range q.Status {
		st := domain.BookingStatus(raw)
		if !st.Valid() {
			return nil, ErrInvalidStatus
		}
		f.Statuses = append(f.Statuses, st)
	}

	return s.bookings.List(ctx, f)
}
