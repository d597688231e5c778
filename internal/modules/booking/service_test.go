package booking

import (
	"context"
	"testing"
	"time"

	"meetspace/internal/domain"
	"meetspace/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	if args.Error(0) == nil && b != nil {
		b.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockBookingRepository) Save(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBookingRepository) SaveWithOverlapCheck(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBookingRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) List(ctx context.Context, f repository.BookingFilter) ([]domain.Booking, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

type MockRoomRepository struct {
	mock.Mock
}

func (m *MockRoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func newTestService() (*Service, *MockBookingRepository, *MockRoomRepository, *MockClientRepository) {
	bookings := new(MockBookingRepository)
	rooms := new(MockRoomRepository)
	clients := new(MockClientRepository)
	return NewService(bookings, rooms, clients), bookings, rooms, clients
}

func activeRoom(id int64, rate float64) *domain.Room {
	return &domain.Room{ID: id, Name: "Sala A", HourlyRate: rate, Capacity: 10, IsActive: true}
}

func TestService_Create_Success(t *testing.T) {
	service, bookings, rooms, clients := newTestService()

	start := time.Date(2026, 12, 31, 9, 0, 0, 0, time.UTC)
	end := start.Add(90 * time.Minute)

	clients.On("GetByID", mock.Anything, int64(7)).Return(&domain.Client{ID: 7, Name: "ACME"}, nil)
	rooms.On("GetByID", mock.Anything, int64(10)).Return(activeRoom(10, 50), nil)
	bookings.On("Create", mock.Anything, mock.Anything).Return(nil)

	b, err := service.Create(context.Background(), CreateBookingRequest{
		ClientID:  7,
		RoomID:    10,
		StartTime: start,
		EndTime:   end,
		Notes:     "projector needed",
	})

	assert.NoError(t, err)
	assert.NotNil(t, b)
	// 1.5h at 50/h bills as 2 full hours
	assert.Equal(t, 100.0, b.TotalAmount)
	assert.Equal(t, domain.BookingPending, b.Status)
	assert.Equal(t, domain.PaymentPending, b.PaymentStatus)
	assert.Equal(t, int64(999), b.ID)
}

func TestService_Create_InvalidRange(t *testing.T) {
	service, _, _, _ := newTestService()

	start := time.Date(2026, 12, 31, 14, 0, 0, 0, time.UTC)

	_, err := service.Create(context.Background(), CreateBookingRequest{
		ClientID:  7,
		RoomID:    10,
		StartTime: start,
		EndTime:   start,
	})
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = service.Create(context.Background(), CreateBookingRequest{
		ClientID:  7,
		RoomID:    10,
		StartTime: start,
		EndTime:   start.Add(-time.Hour),
	})
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestService_Create_MissingReferences(t *testing.T) {
	service, _, rooms, clients := newTestService()

	start := time.Date(2026, 12, 31, 9, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	clients.On("GetByID", mock.Anything, int64(1)).Return(nil, gorm.ErrRecordNotFound)
	_, err := service.Create(context.Background(), CreateBookingRequest{
		ClientID: 1, RoomID: 10, StartTime: start, EndTime: end,
	})
	assert.ErrorIs(t, err, ErrClientNotFound)

	clients.On("GetByID", mock.Anything, int64(2)).Return(&domain.Client{ID: 2, Name: "X"}, nil)
	rooms.On("GetByID", mock.Anything, int64(11)).Return(nil, gorm.ErrRecordNotFound)
	_, err = service.Create(context.Background(), CreateBookingRequest{
		ClientID: 2, RoomID: 11, StartTime: start, EndTime: end,
	})
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestService_Create_InactiveRoom(t *testing.T) {
	service, _, rooms, clients := newTestService()

	start := time.Date(2026, 12, 31, 9, 0, 0, 0, time.UTC)

	clients.On("GetByID", mock.Anything, int64(7)).Return(&domain.Client{ID: 7, Name: "ACME"}, nil)
	room := activeRoom(10, 50)
	room.IsActive = false
	rooms.On("GetByID", mock.Anything, int64(10)).Return(room, nil)

	_, err := service.Create(context.Background(), CreateBookingRequest{
		ClientID: 7, RoomID: 10, StartTime: start, EndTime: start.Add(time.Hour),
	})
	assert.ErrorIs(t, err, ErrRoomInactive)
}

func TestService_Create_Conflict(t *testing.T) {
	service, bookings, rooms, clients := newTestService()

	start := time.Date(2026, 12, 31, 10, 0, 0, 0, time.UTC)

	clients.On("GetByID", mock.Anything, int64(7)).Return(&domain.Client{ID: 7, Name: "ACME"}, nil)
	rooms.On("GetByID", mock.Anything, int64(10)).Return(activeRoom(10, 50), nil)
	bookings.On("Create", mock.Anything, mock.Anything).Return(repository.ErrOverlap)

	_, err := service.Create(context.Background(), CreateBookingRequest{
		ClientID: 7, RoomID: 10, StartTime: start, EndTime: start.Add(time.Hour),
	})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestService_Update_StatusTransitions(t *testing.T) {
	start := time.Date(2026, 12, 31, 9, 0, 0, 0, time.UTC)

	cases := []struct {
		name    string
		current domain.BookingStatus
		next    string
		wantErr error
	}{
		{"pending to confirmed", domain.BookingPending, "confirmed", nil},
		{"confirmed to completed", domain.BookingConfirmed, "completed", nil},
		{"completed to pending", domain.BookingCompleted, "pending", ErrInvalidTransition},
		{"cancelled to confirmed", domain.BookingCancelled, "confirmed", ErrInvalidTransition},
		{"pending to completed", domain.BookingPending, "completed", ErrInvalidTransition},
		{"unknown status", domain.BookingPending, "archived", ErrInvalidStatus},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			service, bookings, _, _ := newTestService()

			bookings.On("GetByID", mock.Anything, int64(5)).Return(&domain.Booking{
				ID:            5,
				ClientID:      7,
				RoomID:        10,
				StartTime:     start,
				EndTime:       start.Add(time.Hour),
				TotalAmount:   50,
				Status:        tc.current,
				PaymentStatus: domain.PaymentPending,
			}, nil)
			if tc.wantErr == nil {
				bookings.On("Save", mock.Anything, mock.Anything).Return(nil)
			}

			next := tc.next
			b, err := service.Update(context.Background(), 5, UpdateBookingRequest{Status: &next})
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, domain.BookingStatus(tc.next), b.Status)
		})
	}
}

func TestService_Update_PaymentStatusIsFree(t *testing.T) {
	service, bookings, _, _ := newTestService()

	start := time.Date(2026, 12, 31, 9, 0, 0, 0, time.UTC)
	bookings.On("GetByID", mock.Anything, int64(5)).Return(&domain.Booking{
		ID: 5, ClientID: 7, RoomID: 10,
		StartTime: start, EndTime: start.Add(time.Hour),
		Status: domain.BookingPending, PaymentStatus: domain.PaymentRefunded,
	}, nil)
	bookings.On("Save", mock.Anything, mock.Anything).Return(nil)

	// refunded back to paid is allowed, payment status has no lifecycle
	paid := "paid"
	b, err := service.Update(context.Background(), 5, UpdateBookingRequest{PaymentStatus: &paid})
	assert.NoError(t, err)
	assert.Equal(t, domain.PaymentPaid, b.PaymentStatus)
}

func TestService_Update_RescheduleReprices(t *testing.T) {
	service, bookings, rooms, _ := newTestService()

	start := time.Date(2026, 12, 31, 9, 0, 0, 0, time.UTC)
	bookings.On("GetByID", mock.Anything, int64(5)).Return(&domain.Booking{
		ID: 5, ClientID: 7, RoomID: 10,
		StartTime: start, EndTime: start.Add(time.Hour),
		TotalAmount: 50,
		Status:      domain.BookingPending, PaymentStatus: domain.PaymentPending,
	}, nil)
	rooms.On("GetByID", mock.Anything, int64(10)).Return(activeRoom(10, 50), nil)
	bookings.On("SaveWithOverlapCheck", mock.Anything, mock.Anything).Return(nil)

	newEnd := start.Add(150 * time.Minute)
	b, err := service.Update(context.Background(), 5, UpdateBookingRequest{EndTime: &newEnd})

	assert.NoError(t, err)
	assert.Equal(t, 150.0, b.TotalAmount) // ceil(2.5h) = 3h at 50/h
	bookings.AssertCalled(t, "SaveWithOverlapCheck", mock.Anything, mock.Anything)
	bookings.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestService_Update_RescheduleConflict(t *testing.T) {
	service, bookings, rooms, _ := newTestService()

	start := time.Date(2026, 12, 31, 9, 0, 0, 0, time.UTC)
	bookings.On("GetByID", mock.Anything, int64(5)).Return(&domain.Booking{
		ID: 5, ClientID: 7, RoomID: 10,
		StartTime: start, EndTime: start.Add(time.Hour),
		Status: domain.BookingPending, PaymentStatus: domain.PaymentPending,
	}, nil)
	rooms.On("GetByID", mock.Anything, int64(10)).Return(activeRoom(10, 50), nil)
	bookings.On("SaveWithOverlapCheck", mock.Anything, mock.Anything).Return(repository.ErrOverlap)

	newStart := start.Add(2 * time.Hour)
	newEnd := start.Add(3 * time.Hour)
	_, err := service.Update(context.Background(), 5, UpdateBookingRequest{
		StartTime: &newStart,
		EndTime:   &newEnd,
	})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestService_Update_NotFound(t *testing.T) {
	service, bookings, _, _ := newTestService()

	bookings.On("GetByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	notes := "x"
	_, err := service.Update(context.Background(), 404, UpdateBookingRequest{Notes: &notes})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Delete(t *testing.T) {
	service, bookings, _, _ := newTestService()

	bookings.On("Delete", mock.Anything, int64(5)).Return(nil)
	assert.NoError(t, service.Delete(context.Background(), 5))

	bookings.On("Delete", mock.Anything, int64(404)).Return(gorm.ErrRecordNotFound)
	assert.ErrorIs(t, service.Delete(context.Background(), 404), ErrNotFound)
}

func TestService_List_RejectsUnknownStatus(t *testing.T) {
	service, _, _, _ := newTestService()

	_, err := service.List(context.Background(), ListBookingsQuery{Status: []string{"archived"}})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestService_List_PassesFilter(t *testing.T) {
	service, bookings, _, _ := newTestService()

	expected := repository.BookingFilter{
		Statuses: []domain.BookingStatus{domain.BookingPending, domain.BookingConfirmed},
		RoomID:   10,
	}
	bookings.On("List", mock.Anything, expected).Return([]domain.Booking{}, nil)

	_, err := service.List(context.Background(), ListBookingsQuery{
		Status: []string{"pending", "confirmed"},
		RoomID: 10,
	})
	assert.NoError(t, err)
	bookings.AssertExpectations(t)
}
