package repository

import (
	"context"
	"time"

	"meetspace/internal/domain"

	"gorm.io/gorm"
)

type ClientRepository struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

type clientModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:name"`
	Phone     *string   `gorm:"column:phone"`
	Email     *string   `gorm:"column:email"`
	Company   *string   `gorm:"column:company"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (clientModel) TableName() string { return "clients" }

func strOrEmpty(p *string) string {
	if p != nil {
		return *p
	}
	return ""
}

func strOrNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func toDomainClient(m clientModel) *domain.Client {
	return &domain.Client{
		ID:        m.ID,
		Name:      m.Name,
		Phone:     strOrEmpty(m.Phone),
		Email:     strOrEmpty(m.Email),
		Company:   strOrEmpty(m.Company),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toClientModel(c *domain.Client) clientModel {
	return clientModel{
		ID:        c.ID,
		Name:      c.Name,
		Phone:     strOrNil(c.Phone),
		Email:     strOrNil(c.Email),
		Company:   strOrNil(c.Company),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (r *ClientRepository) Create(ctx context.Context, c *domain.Client) error {
	m := toClientModel(c)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*c = *toDomainClient(m)
	return nil
}

func (r *ClientRepository) Save(ctx context.Context, c *domain.Client) error {
	m := toClientModel(c)
	tx := r.db.WithContext(ctx).Save(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*c = *toDomainClient(m)
	return nil
}

func (r *ClientRepository) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	var m clientModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainClient(m), nil
}

// GetByEmail powers the intake find-or-create path. Returns
// gorm.ErrRecordNotFound when no client carries the email.
func (r *ClientRepository) GetByEmail(ctx context.Context, email string) (*domain.Client, error) {
	var m clientModel
	tx := r.db.WithContext(ctx).Where("email = ?", email).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainClient(m), nil
}

func (r *ClientRepository) List(ctx context.Context) ([]domain.Client, error) {
	var rows []clientModel
	if err := r.db.WithContext(ctx).Order("name").Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Client, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainClient(m))
	}
	return out, nil
}

// Delete removes a client with no bookings. Same transactional
// reference check as RoomRepository.Delete.
func (r *ClientRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var refs int64
		if err := tx.Model(&bookingModel{}).Where("client_id = ?", id).Count(&refs).Error; err != nil {
			return err
		}
		if refs > 0 {
			return ErrInUse
		}

		res := tx.Delete(&clientModel{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
