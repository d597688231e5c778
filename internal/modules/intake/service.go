// Package intake accepts reservation requests from the public site
// form. It resolves the visitor to a client record by email, creating
// one on first contact, then hands off to the booking ledger. Requests
// always enter as pending; staff confirm them from the dashboard.
package intake

import (
	"context"
	"errors"
	"time"

	"meetspace/internal/domain"
	"meetspace/internal/modules/booking"

	"gorm.io/gorm"
)

type ClientRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.Client, error)
	Create(ctx context.Context, c *domain.Client) error
	Save(ctx context.Context, c *domain.Client) error
}

type BookingCreator interface {
	Create(ctx context.Context, req booking.CreateBookingRequest) (*domain.Booking, error)
}

type Service struct {
	clients  ClientRepository
	bookings BookingCreator
}

func NewService(clients ClientRepository, bookings BookingCreator) *Service {
	return &Service{clients: clients, bookings: bookings}
}

// Submit resolves the client and records the reservation. Returning
// clients are matched by email and their contact details refreshed with
// whatever the form carries.
func (s *Service) Submit(ctx context.Context, req IntakeRequest) (*domain.Booking, error) {
	client, err := s.resolveClient(ctx, req)
	if err != nil {
		return nil, err
	}

	return s.bookings.Create(ctx, booking.CreateBookingRequest{
		ClientID:  client.ID,
		RoomID:    req.RoomID,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Notes:     req.Notes,
	})
}

func (s *Service) resolveClient(ctx context.Context, req IntakeRequest) (*domain.Client, error) {
	client, err := s.clients.GetByEmail(ctx, req.Email)
	if err == nil {
		client.Name = req.Name
		client.Phone = req.Phone
		client.Company = req.Company
		client.UpdatedAt = time.Now()
		if err := s.clients.Save(ctx, client); err != nil {
			return nil, err
		}
		return client, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	now := time.Now()
	client = &domain.Client{
		Name:      req.Name,
		Phone:     req.Phone,
		Email:     req.Email,
		Company:   req.Company,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.clients.Create(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}
