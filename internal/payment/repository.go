package payment

import (
	"gorm.io/gorm"
)

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(p *Payment) error {
	return r.DB.Create(p).Error
}

func (r *Repository) FindByOrderID(orderID string) (*Payment, error) {
	var p Payment
	if err := r.DB.Where("order_id = ?", orderID).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) Update(p *Payment) error {
	return r.DB.Save(p).Error
}

func (r *Repository) ListByEvent(eventID uint) ([]Payment, error) {
	var payments []Payment
	err := r.DB.
		Where("event_id = ?", eventID).
		Order("created_at DESC").
		Find(&payments).Error
	return payments, err
}
