package participant

import (
	"context"
	"errors"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/iic-bit/IIC-Backend/internal/auditlog"
	"github.com/iic-bit/IIC-Backend/internal/event"
	"github.com/iic-bit/IIC-Backend/utils"
)

// EventGetter resolves the event a batch registers for. *event.Service
// satisfies it.
type EventGetter interface {
	GetEventByID(id uint) (*event.Event, error)
}

// Service runs the registration pipeline: lock, validate, tag, persist.
type Service struct {
	Store     Store
	Events    EventGetter
	Validator *Validator
	Gen       *GroupIDGenerator
	Locker    utils.EventLocker
	AuditSvc  auditlog.Service
}

func NewService(store Store, events EventGetter, validator *Validator, gen *GroupIDGenerator, locker utils.EventLocker, auditSvc auditlog.Service) *Service {
	return &Service{
		Store:     store,
		Events:    events,
		Validator: validator,
		Gen:       gen,
		Locker:    locker,
		AuditSvc:  auditSvc,
	}
}

// ===========================
// 🎯 Register Batch
//
// Validation runs strictly before any write, under a per-event lock so two
// concurrent batches cannot both pass the team capacity check. The insert is
// transactional: either the whole batch lands or none of it does.
func (s *Service) Register(ctx context.Context, eventID uint, batch []ParticipantInput, ip string) ([]Participant, error) {
	release, err := s.Locker.Acquire(ctx, eventID)
	if err != nil {
		return nil, err
	}
	defer release()

	ev, err := s.Events.GetEventByID(eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, event.ErrNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}

	if err := s.Validator.ValidateBatch(ev, batch, s.Store.CountByEventAndTeam); err != nil {
		s.AuditSvc.LogAction(ctx, nil, &eventID, "REGISTRATION_REJECTED", map[string]interface{}{
			"batch_size": len(batch),
			"error":      err.Error(),
		}, ip, "failure")
		return nil, err
	}

	groupID := s.Gen.Next()

	participants := make([]Participant, len(batch))
	for i, p := range batch {
		participants[i] = Participant{
			Name:          p.Name,
			Email:         p.Email,
			Phone:         p.Phone,
			College:       p.College,
			Course:        p.Course,
			Branch:        p.Branch,
			Year:          p.Year,
			Group:         p.Group,
			EventID:       eventID,
			GroupID:       groupID,
			TransactionID: p.TransactionID,
			PaymentImage:  p.PaymentImage,
		}
	}

	saved, err := s.Store.InsertBatch(participants)
	if err != nil {
		s.AuditSvc.LogAction(ctx, nil, &eventID, "REGISTRATION_CREATED", map[string]interface{}{
			"group_id": groupID,
			"error":    err.Error(),
		}, ip, "failure")
		return nil, err
	}

	s.AuditSvc.LogAction(ctx, nil, &eventID, "REGISTRATION_CREATED", map[string]interface{}{
		"group_id":   groupID,
		"event_name": ev.Name,
		"members":    len(saved),
	}, ip, "success")

	emails := make([]string, 0, len(saved))
	for _, p := range saved {
		emails = append(emails, p.Email)
	}
	if err := utils.PublishRegistrationEvent(ctx, utils.RegistrationEvent{
		EventID:      eventID,
		EventName:    ev.Name,
		GroupID:      groupID,
		TeamName:     batch[0].Group,
		MemberCount:  len(saved),
		MemberEmails: emails,
		RegisteredAt: time.Now(),
	}); err != nil {
		log.Printf("⚠️ failed to publish registration event for %s: %v", groupID, err)
	}

	return saved, nil
}

// ===========================
// 📄 List Participants
func (s *Service) GetByEvent(eventID uint) ([]Participant, error) {
	return s.Store.FindByEvent(eventID)
}
