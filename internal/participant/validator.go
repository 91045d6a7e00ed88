package participant

import (
	"errors"
	"fmt"
	"strings"

	"github.com/iic-bit/IIC-Backend/internal/event"
)

var (
	ErrEventNotFound = errors.New("event not found")
	ErrEmptyBatch    = errors.New("at least one participant is required")
	ErrTeamFull      = errors.New("group is full")
)

// BatchSizeError reports a batch whose length does not match the event's
// group size.
type BatchSizeError struct {
	Required int
	Got      int
}

func (e *BatchSizeError) Error() string {
	return fmt.Sprintf("this event requires exactly %d participants per registration, got %d", e.Required, e.Got)
}

// MissingFieldError reports an incomplete member record. The whole batch is
// rejected; nothing is filtered out.
type MissingFieldError struct {
	Index int
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("participant %d: %s is required", e.Index+1, e.Field)
}

// TeamCounter reports how many participants already persisted for the event
// carry the given free-text team label.
type TeamCounter func(eventID uint, team string) (int64, error)

// Validator checks a registration batch against an event's constraints before
// anything is written. The team capacity limit comes from config, not a
// package constant.
type Validator struct {
	MaxTeamParticipants int
}

func NewValidator(maxTeamParticipants int) *Validator {
	return &Validator{MaxTeamParticipants: maxTeamParticipants}
}

// ValidateBatch applies the registration rules in order:
//  1. non-empty batch
//  2. batch length equals the event's group size
//  3. every member carries name, email, phone, branch and year
//  4. no team label exceeds the configured capacity once the batch lands
//
// Validation is read-only; callers must not have written anything yet.
func (v *Validator) ValidateBatch(ev *event.Event, batch []ParticipantInput, countTeam TeamCounter) error {
	if len(batch) == 0 {
		return ErrEmptyBatch
	}

	if len(batch) != ev.GroupSize {
		return &BatchSizeError{Required: ev.GroupSize, Got: len(batch)}
	}

	for i, p := range batch {
		if field := firstMissingField(p); field != "" {
			return &MissingFieldError{Index: i, Field: field}
		}
	}

	if v.MaxTeamParticipants > 0 && countTeam != nil {
		// A batch normally carries one team label, but nothing enforces
		// that; check each distinct label once.
		seen := make(map[string]bool)
		for _, p := range batch {
			team := strings.TrimSpace(p.Group)
			if team == "" || seen[team] {
				continue
			}
			seen[team] = true

			existing, err := countTeam(ev.ID, team)
			if err != nil {
				return err
			}
			if existing+int64(len(batch)) > int64(v.MaxTeamParticipants) {
				return fmt.Errorf("%w: team %q already has %d of %d participants", ErrTeamFull, team, existing, v.MaxTeamParticipants)
			}
		}
	}

	return nil
}

func firstMissingField(p ParticipantInput) string {
	switch {
	case strings.TrimSpace(p.Name) == "":
		return "name"
	case strings.TrimSpace(p.Email) == "":
		return "email"
	case strings.TrimSpace(p.Phone) == "":
		return "phone"
	case strings.TrimSpace(p.Branch) == "":
		return "branch"
	case strings.TrimSpace(p.Year) == "":
		return "year"
	}
	return ""
}

// IsInvalidInput reports whether err is a caller-fixable validation failure
// (as opposed to a missing event or a store failure).
func IsInvalidInput(err error) bool {
	var sizeErr *BatchSizeError
	var fieldErr *MissingFieldError
	return errors.Is(err, ErrEmptyBatch) ||
		errors.Is(err, ErrTeamFull) ||
		errors.As(err, &sizeErr) ||
		errors.As(err, &fieldErr)
}
