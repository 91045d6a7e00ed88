package idea

import (
	"gorm.io/gorm"
)

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(i *Idea) error {
	return r.DB.Create(i).Error
}

func (r *Repository) List(limit, offset int) ([]Idea, error) {
	var ideas []Idea
	err := r.DB.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&ideas).Error
	return ideas, err
}

func (r *Repository) Delete(id uint) error {
	return r.DB.Delete(&Idea{}, id).Error
}
