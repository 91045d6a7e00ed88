package event

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/iic-bit/IIC-Backend/internal/auditlog"
)

var ErrNotFound = errors.New("event not found")

// Service wraps business logic for events
type Service struct {
	Repo     *Repository
	AuditSvc auditlog.Service
}

func NewService(r *Repository, auditSvc auditlog.Service) *Service {
	return &Service{
		Repo:     r,
		AuditSvc: auditSvc,
	}
}

// ===========================
// 🎯 Create Event
func (s *Service) CreateEvent(req *CreateEventRequest, imagePath string, userID uint, ip string) (*Event, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		s.AuditSvc.LogAction(context.Background(), &userID, nil, "EVENT_CREATED", map[string]interface{}{
			"name":  req.Name,
			"error": "invalid date format",
			"date":  req.Date,
		}, ip, "failure")
		return nil, errors.New("invalid date format. Use YYYY-MM-DD")
	}

	var fee *float64
	if req.Fee > 0 {
		f := req.Fee
		fee = &f
	}

	e := &Event{
		Name:        req.Name,
		Description: req.Description,
		Fee:         fee,
		Date:        date,
		Image:       imagePath,
		Rule:        req.Rule,
		GroupSize:   req.GroupSize,
		CreatedBy:   userID,
	}

	if err := s.Repo.CreateEvent(e); err != nil {
		s.AuditSvc.LogAction(context.Background(), &userID, nil, "EVENT_CREATED", map[string]interface{}{
			"name":  req.Name,
			"error": err.Error(),
		}, ip, "failure")
		return nil, err
	}

	s.AuditSvc.LogAction(context.Background(), &userID, &e.ID, "EVENT_CREATED", map[string]interface{}{
		"event_id":   e.ID,
		"name":       e.Name,
		"date":       e.Date.Format("2006-01-02"),
		"group_size": e.GroupSize,
	}, ip, "success")

	return e, nil
}

func (s *Service) GetEventByID(id uint) (*Event, error) {
	e, err := s.Repo.GetEventByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (s *Service) ListEvents(limit, offset int, search string) ([]Event, error) {
	return s.Repo.ListEvents(limit, offset, search)
}

// ===========================
// ❌ Delete Event
//
// Participants registered for the event are NOT deleted; they stay in the
// store with their event_id and group_id intact.
func (s *Service) DeleteEvent(id uint, userID uint, ip string) error {
	e, err := s.Repo.GetEventByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if err := s.Repo.DeleteEvent(id); err != nil {
		s.AuditSvc.LogAction(context.Background(), &userID, &id, "EVENT_DELETED", map[string]interface{}{
			"event_id": id,
			"name":     e.Name,
			"error":    err.Error(),
		}, ip, "failure")
		return err
	}

	s.AuditSvc.LogAction(context.Background(), &userID, &id, "EVENT_DELETED", map[string]interface{}{
		"event_id": id,
		"name":     e.Name,
	}, ip, "success")

	return nil
}
