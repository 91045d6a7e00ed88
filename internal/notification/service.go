package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"github.com/iic-bit/IIC-Backend/config"
	"github.com/iic-bit/IIC-Backend/utils"
)

type Service interface {
	// In-app notifications
	CreateInApp(ctx context.Context, userID uint, title, message, category string) error
	ListInAppByUser(ctx context.Context, userID uint, limit int) ([]InAppNotification, error)
	MarkInAppAsRead(ctx context.Context, id uint, userID uint) error

	// HandleRegistration fans a registration event out to admins (in-app)
	// and batch members (email).
	HandleRegistration(ctx context.Context, evt utils.RegistrationEvent) error
}

type service struct {
	repo  Repository
	email *utils.EmailSender
}

func NewService(repo Repository, cfg *config.Config) Service {
	return &service{
		repo:  repo,
		email: utils.NewEmailSender(cfg),
	}
}

func (s *service) CreateInApp(ctx context.Context, userID uint, title, message, category string) error {
	return s.repo.CreateInApp(ctx, &InAppNotification{
		UserID:   userID,
		Title:    title,
		Message:  message,
		Category: category,
	})
}

func (s *service) ListInAppByUser(ctx context.Context, userID uint, limit int) ([]InAppNotification, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.repo.ListInAppByUser(ctx, userID, limit)
}

func (s *service) MarkInAppAsRead(ctx context.Context, id uint, userID uint) error {
	return s.repo.MarkInAppAsRead(ctx, id, userID)
}

func (s *service) HandleRegistration(ctx context.Context, evt utils.RegistrationEvent) error {
	title := "New Registration"
	message := fmt.Sprintf("%d participants registered for %s (group %s)", evt.MemberCount, evt.EventName, evt.GroupID)

	adminIDs, err := s.repo.AdminUserIDs(ctx)
	if err != nil {
		return err
	}
	for _, id := range adminIDs {
		if err := s.CreateInApp(ctx, id, title, message, "registration"); err != nil {
			return err
		}
	}

	s.email.SendRegistrationConfirmation(evt.MemberEmails, evt.EventName, evt.GroupID)

	recipientsJSON, _ := json.Marshal(evt.MemberEmails)
	return s.repo.CreateLog(ctx, &NotificationLog{
		EventID:    &evt.EventID,
		Channel:    "email",
		Subject:    fmt.Sprintf("Registration confirmed: %s", evt.EventName),
		Body:       message,
		Recipients: datatypes.JSON(recipientsJSON),
		Status:     "sent",
	})
}
