package intake

import (
	"context"
	"testing"
	"time"

	"meetspace/internal/domain"
	"meetspace/internal/modules/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) GetByEmail(ctx context.Context, email string) (*domain.Client, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientRepository) Create(ctx context.Context, c *domain.Client) error {
	args := m.Called(ctx, c)
	if args.Error(0) == nil {
		c.ID = 42
	}
	return args.Error(0)
}

func (m *MockClientRepository) Save(ctx context.Context, c *domain.Client) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

type MockBookingCreator struct {
	mock.Mock
}

func (m *MockBookingCreator) Create(ctx context.Context, req booking.CreateBookingRequest) (*domain.Booking, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func intakeRequest() IntakeRequest {
	return IntakeRequest{
		Name:      "Maria Souza",
		Phone:     "+55 11 99999-0000",
		Email:     "maria@example.com",
		Company:   "Souza Advocacia",
		RoomID:    3,
		StartTime: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, 3, 10, 10, 30, 0, 0, time.UTC),
		Notes:     "projetor",
	}
}

func TestSubmit_NewVisitorCreatesClient(t *testing.T) {
	clients := new(MockClientRepository)
	creator := new(MockBookingCreator)
	svc := NewService(clients, creator)

	req := intakeRequest()

	clients.On("GetByEmail", mock.Anything, "maria@example.com").
		Return(nil, gorm.ErrRecordNotFound)
	clients.On("Create", mock.Anything, mock.MatchedBy(func(c *domain.Client) bool {
		return c.Name == "Maria Souza" && c.Email == "maria@example.com" && c.Company == "Souza Advocacia"
	})).Return(nil)
	creator.On("Create", mock.Anything, mock.MatchedBy(func(r booking.CreateBookingRequest) bool {
		return r.ClientID == 42 && r.RoomID == 3 && r.Notes == "projetor"
	})).Return(&domain.Booking{ID: 7, ClientID: 42, Status: domain.BookingPending}, nil)

	b, err := svc.Submit(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, int64(7), b.ID)
	assert.Equal(t, domain.BookingPending, b.Status)
	clients.AssertExpectations(t)
	creator.AssertExpectations(t)
}

func TestSubmit_ReturningVisitorReusesAndRefreshesClient(t *testing.T) {
	clients := new(MockClientRepository)
	creator := new(MockBookingCreator)
	svc := NewService(clients, creator)

	req := intakeRequest()
	req.Phone = "+55 11 98888-1111"

	existing := &domain.Client{ID: 9, Name: "Maria S.", Email: "maria@example.com", Phone: "old"}

	clients.On("GetByEmail", mock.Anything, "maria@example.com").Return(existing, nil)
	clients.On("Save", mock.Anything, mock.MatchedBy(func(c *domain.Client) bool {
		return c.ID == 9 && c.Phone == "+55 11 98888-1111" && c.Name == "Maria Souza"
	})).Return(nil)
	creator.On("Create", mock.Anything, mock.MatchedBy(func(r booking.CreateBookingRequest) bool {
		return r.ClientID == 9
	})).Return(&domain.Booking{ID: 8, ClientID: 9, Status: domain.BookingPending}, nil)

	_, err := svc.Submit(context.Background(), req)

	require.NoError(t, err)
	clients.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	clients.AssertExpectations(t)
}

func TestSubmit_ConflictPropagates(t *testing.T) {
	clients := new(MockClientRepository)
	creator := new(MockBookingCreator)
	svc := NewService(clients, creator)

	clients.On("GetByEmail", mock.Anything, mock.Anything).
		Return(&domain.Client{ID: 9, Email: "maria@example.com"}, nil)
	clients.On("Save", mock.Anything, mock.Anything).Return(nil)
	creator.On("Create", mock.Anything, mock.Anything).
		Return(nil, booking.ErrConflict)

	_, err := svc.Submit(context.Background(), intakeRequest())

	assert.ErrorIs(t, err, booking.ErrConflict)
}

func TestSubmit_LookupFailureStopsEarly(t *testing.T) {
	clients := new(MockClientRepository)
	creator := new(MockBookingCreator)
	svc := NewService(clients, creator)

	clients.On("GetByEmail", mock.Anything, mock.Anything).
		Return(nil, context.DeadlineExceeded)

	_, err := svc.Submit(context.Background(), intakeRequest())

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	creator.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
