package participant

import (
	"gorm.io/gorm"
)

// Store is the persistence surface the registration service needs. The gorm
// repository implements it; tests substitute an in-memory fake.
type Store interface {
	InsertBatch(participants []Participant) ([]Participant, error)
	FindByEvent(eventID uint) ([]Participant, error)
	CountByEventAndTeam(eventID uint, team string) (int64, error)
}

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// InsertBatch persists the whole batch inside one transaction, so a failed
// write leaves no partial group behind.
func (r *Repository) InsertBatch(participants []Participant) ([]Participant, error) {
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&participants).Error
	})
	if err != nil {
		return nil, err
	}
	return participants, nil
}

// FindByEvent returns participants in insertion order; the exporter relies on
// this ordering to keep group blocks contiguous.
func (r *Repository) FindByEvent(eventID uint) ([]Participant, error) {
	var participants []Participant
	err := r.DB.
		Where("event_id = ?", eventID).
		Order("id ASC").
		Find(&participants).Error
	return participants, err
}

func (r *Repository) CountByEventAndTeam(eventID uint, team string) (int64, error) {
	var count int64
	err := r.DB.Model(&Participant{}).
		Where(`event_id = ? AND "group" = ?`, eventID, team).
		Count(&count).Error
	return count, err
}
