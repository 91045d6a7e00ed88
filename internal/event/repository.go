package event

import (
	"gorm.io/gorm"
)

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) CreateEvent(e *Event) error {
	return r.DB.Create(e).Error
}

func (r *Repository) GetEventByID(id uint) (*Event, error) {
	var e Event
	if err := r.DB.First(&e, id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

// ListEvents returns events ordered by date with optional search over name
// and description.
func (r *Repository) ListEvents(limit, offset int, search string) ([]Event, error) {
	var events []Event

	query := r.DB.Model(&Event{})
	if search != "" {
		ilike := "%" + search + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ?", ilike, ilike)
	}

	err := query.
		Order("date ASC").
		Limit(limit).
		Offset(offset).
		Find(&events).Error
	return events, err
}

// DeleteEvent removes the event row only. Participant rows keep their
// event_id and are left in place; see the orphaning policy in the service.
func (r *Repository) DeleteEvent(id uint) error {
	return r.DB.Delete(&Event{}, id).Error
}
