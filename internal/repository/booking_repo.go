package repository

import (
	"context"
	"errors"
	"time"

	"meetspace/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID            int64     `gorm:"column:id;primaryKey"`
	ClientID      int64     `gorm:"column:client_id"`
	RoomID        int64     `gorm:"column:room_id"`
	StartTime     time.Time `gorm:"column:start_time"`
	EndTime       time.Time `gorm:"column:end_time"`
	TotalAmount   float64   `gorm:"column:total_amount"`
	Status        string    `gorm:"column:status"`
	PaymentStatus string    `gorm:"column:payment_status"`
	Notes         *string   `gorm:"column:notes"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`

	Client *clientModel `gorm:"foreignKey:ClientID"`
	Room   *roomModel   `gorm:"foreignKey:RoomID"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	b := &domain.Booking{
		ID:            m.ID,
		ClientID:      m.ClientID,
		RoomID:        m.RoomID,
		StartTime:     m.StartTime,
		EndTime:       m.EndTime,
		TotalAmount:   m.TotalAmount,
		Status:        domain.BookingStatus(m.Status),
		PaymentStatus: domain.PaymentStatus(m.PaymentStatus),
		Notes:         strOrEmpty(m.Notes),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
	if m.Client != nil {
		b.Client = toDomainClient(*m.Client)
	}
	if m.Room != nil {
		b.Room = toDomainRoom(*m.Room)
	}
	return b
}

func toBookingModel(b *domain.Booking) bookingModel {
	return bookingModel{
		ID:            b.ID,
		ClientID:      b.ClientID,
		RoomID:        b.RoomID,
		StartTime:     b.StartTime,
		EndTime:       b.EndTime,
		TotalAmount:   b.TotalAmount,
		Status:        string(b.Status),
		PaymentStatus: string(b.PaymentStatus),
		Notes:         strOrNil(b.Notes),
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

// lockRoom serializes concurrent booking writes per room on PostgreSQL,
// where two transactions could otherwise interleave between the overlap
// count and the insert. SQLite allows a single writer at a time, so no
// lock is needed there.
func lockRoom(tx *gorm.DB, roomID int64) error {
	if tx.Dialector.Name() != "postgres" {
		return nil
	}
	var id int64
	return tx.Raw("SELECT id FROM rooms WHERE id = ? FOR UPDATE", roomID).Scan(&id).Error
}

// countOverlapping counts non-cancelled bookings on the room whose
// [start_time, end_time) interval intersects [start, end). Intervals
// are half-open: a booking ending at 10:00 does not collide with one
// starting at 10:00.
func countOverlapping(tx *gorm.DB, roomID int64, start, end time.Time, excludeID int64) (int64, error) {
	q := tx.Model(&bookingModel{}).
		Where("room_id = ?", roomID).
		Where("status <> ?", string(domain.BookingCancelled)).
		Where("start_time < ? AND ? < end_time", end, start)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var cnt int64
	err := q.Count(&cnt).Error
	return cnt, err
}

// mapOverlapConstraint translates a violation of the bookings_no_overlap
// exclusion constraint (PostgreSQL installations carry it as a backstop
// behind the in-transaction check) into ErrOverlap.
func mapOverlapConstraint(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23P01" && pgErr.ConstraintName == "bookings_no_overlap" {
		return ErrOverlap
	}
	return err
}

// Create inserts a booking after verifying, in the same transaction,
// that no non-cancelled booking on the room overlaps it. Returns
// ErrOverlap on conflict; nothing is written in that case.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockRoom(tx, b.RoomID); err != nil {
			return err
		}

		cnt, err := countOverlapping(tx, b.RoomID, b.StartTime, b.EndTime, 0)
		if err != nil {
			return err
		}
		if cnt > 0 {
			return ErrOverlap
		}

		m := toBookingModel(b)
		if err := tx.Create(&m).Error; err != nil {
			return mapOverlapConstraint(err)
		}
		*b = *toDomainBooking(m)
		return nil
	})
}

// Save persists changes that cannot affect the overlap invariant
// (status, payment status, notes).
func (r *BookingRepository) Save(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	tx := r.db.WithContext(ctx).Save(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*b = *toDomainBooking(m)
	return nil
}

// SaveWithOverlapCheck persists a booking whose room or interval
// changed, re-running the overlap check (excluding the booking's own
// row) atomically with the write.
func (r *BookingRepository) SaveWithOverlapCheck(ctx context.Context, b *domain.Booking) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockRoom(tx, b.RoomID); err != nil {
			return err
		}

		cnt, err := countOverlapping(tx, b.RoomID, b.StartTime, b.EndTime, b.ID)
		if err != nil {
			return err
		}
		if cnt > 0 {
			return ErrOverlap
		}

		m := toBookingModel(b)
		if err := tx.Save(&m).Error; err != nil {
			return mapOverlapConstraint(err)
		}
		*b = *toDomainBooking(m)
		return nil
	})
}

// Delete removes the booking row for good. Distinct from cancellation,
// which keeps history.
func (r *BookingRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&bookingModel{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).Preload("Client").Preload("Room").First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

// BookingFilter narrows List. Zero values mean "no restriction"; From
// is an inclusive and To an exclusive bound on start_time.
type BookingFilter struct {
	Statuses []domain.BookingStatus
	RoomID   int64
	ClientID int64
	From     time.Time
	To       time.Time
}

// List returns bookings newest-first, the way the dashboard shows them.
func (r *BookingRepository) List(ctx context.Context, f BookingFilter) ([]domain.Booking, error) {
	q := r.db.WithContext(ctx).Preload("Client").Preload("Room").Order("start_time DESC")

	if len(f.Statuses) > 0 {
		statuses := make([]string, 0, len(f.Statuses))
		for _, s := range f.Statuses {
			statuses = append(statuses, string(s))
		}
		q = q.Where("status IN ?", statuses)
	}
	if f.RoomID != 0 {
		q = q.Where("room_id = ?", f.RoomID)
	}
	if f.ClientID != 0 {
		q = q.Where("client_id = ?", f.ClientID)
	}
	if !f.From.IsZero() {
		q = q.Where("start_time >= ?", f.From)
	}
	if !f.To.IsZero() {
		q = q.Where("start_time < ?", f.To)
	}

	var rows []bookingModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

// ListUpcoming feeds the agenda projection: pending and confirmed
// bookings starting within [from, to), ascending by start time, with
// client and room loaded for display.
func (r *BookingRepository) ListUpcoming(ctx context.Context, from, to time.Time) ([]domain.Booking, error) {
	var rows []bookingModel
	err := r.db.WithContext(ctx).
		Preload("Client").Preload("Room").
		Where("status IN ?", []string{
			string(domain.BookingPending),
			string(domain.BookingConfirmed),
		}).
		Where("start_time >= ? AND start_time < ?", from, to).
		Order("start_time ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

// ListPaidCreatedBetween feeds revenue aggregation: bookings with
// payment_status = paid whose created_at lies in [from, to], both ends
// inclusive.
func (r *BookingRepository) ListPaidCreatedBetween(ctx context.Context, from, to time.Time) ([]domain.Booking, error) {
	var rows []bookingModel
	err := r.db.WithContext(ctx).
		Where("payment_status = ?", string(domain.PaymentPaid)).
		Where("created_at >= ? AND created_at <= ?", from, to).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}
