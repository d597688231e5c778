// Package catalog manages the room catalog and the client registry.
// Both are append-mostly reference data: bookings point at them but the
// catalog never touches bookings.
package catalog

import (
	"context"
	"errors"

	"meetspace/internal/domain"
	"meetspace/internal/pkg/validator"
	"meetspace/internal/repository"

	"gorm.io/gorm"
)

type Service struct {
	rooms   RoomRepository
	clients ClientRepository
}

func NewService(rooms RoomRepository, clients ClientRepository) *Service {
	return &Service{
		rooms:   rooms,
		clients: clients,
	}
}

func (s *Service) CreateRoom(ctx context.Context, req CreateRoomRequest) (*domain.Room, error) {
	room := &domain.Room{
		Name:        req.Name,
		Description: req.Description,
		HourlyRate:  req.HourlyRate,
		Capacity:    req.Capacity,
		IsActive:    true,
	}
	if fields := validator.Validate(room); fields != nil {
		return nil, ErrValidation
	}

	if err := s.rooms.Create(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *Service) UpdateRoom(ctx context.Context, id int64, req UpdateRoomRequest) (*domain.Room, error) {
	room, err := s.rooms.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		room.Name = *req.Name
	}
	if req.Description != nil {
		room.Description = *req.Description
	}
	if req.HourlyRate != nil {
		room.HourlyRate = *req.HourlyRate
	}
	if req.Capacity != nil {
		room.Capacity = *req.Capacity
	}
	if req.IsActive != nil {
		room.IsActive = *req.IsActive
	}

	if fields := validator.Validate(room); fields != nil {
		return nil, ErrValidation
	}

	if err := s.rooms.Save(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

// DeleteRoom removes an unreferenced room. Rooms with bookings come
// back as ErrInUse; deactivate those through UpdateRoom instead.
func (s *Service) DeleteRoom(ctx context.Context, id int64) error {
	err := s.rooms.Delete(ctx, id)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrInUse):
		return ErrInUse
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	default:
		return err
	}
}

func (s *Service) GetRoom(ctx context.Context, id int64) (*domain.Room, error) {
	room, err := s.rooms.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return room, nil
}

func (s *Service) ListRooms(ctx context.Context, onlyActive bool) ([]domain.Room, error) {
	return s.rooms.List(ctx, onlyActive)
}

func (s *Service) CreateClient(ctx context.Context, req CreateClientRequest) (*domain.Client, error) {
	client := &domain.Client{
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Company: req.Company,
	}
	if fields := validator.Validate(client); fields != nil {
		return nil, ErrValidation
	}

	if err := s.clients.Create(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

func (s *Service) UpdateClient(ctx context.Context, id int64, req UpdateClientRequest) (*domain.Client, error) {
	client, err := s.clients.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		client.Name = *req.Name
	}
	if req.Phone != nil {
		client.Phone = *req.Phone
	}
	if req.Email != nil {
		client.Email = *req.Email
	}
	if req.Company != nil {
		client.Company = *req.Company
	}

	if fields := validator.Validate(client); fields != nil {
		return nil, ErrValidation
	}

	if err := s.clients.Save(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

func (s *Service) DeleteClient(ctx context.Context, id int64) error {
	err := s.clients.Delete(ctx, id)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrInUse):
		return ErrInUse
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	default:
		return err
	}
}

func (s *Service) GetClient(ctx context.Context, id int64) (*domain.Client, error) {
	client, err := s.clients.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return client, nil
}

func (s *Service) ListClients(ctx context.Context) ([]domain.Client, error) {
	return s.clients.List(ctx)
}
