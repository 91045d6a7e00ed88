package participant

import (
	"errors"
	"testing"

	"github.com/iic-bit/IIC-Backend/internal/event"
)

func member(name string) ParticipantInput {
	return ParticipantInput{
		Name:   name,
		Email:  name + "@example.com",
		Phone:  "9876543210",
		Branch: "CSE",
		Year:   "3",
		Group:  "Team Rocket",
	}
}

func noTeamCount(eventID uint, team string) (int64, error) { return 0, nil }

func TestValidateBatchEmpty(t *testing.T) {
	v := NewValidator(10)
	ev := &event.Event{ID: 1, GroupSize: 2}

	err := v.ValidateBatch(ev, nil, noTeamCount)
	if !errors.Is(err, ErrEmptyBatch) {
		t.Fatalf("expected ErrEmptyBatch, got %v", err)
	}
}

func TestValidateBatchSizeMismatch(t *testing.T) {
	v := NewValidator(10)
	ev := &event.Event{ID: 1, GroupSize: 3}

	err := v.ValidateBatch(ev, []ParticipantInput{member("a"), member("b")}, noTeamCount)

	var sizeErr *BatchSizeError
	if !errors.As(err, &sizeErr) {
		t.Fatalf("expected BatchSizeError, got %v", err)
	}
	if sizeErr.Required != 3 || sizeErr.Got != 2 {
		t.Fatalf("wrong size error fields: %+v", sizeErr)
	}
}

func TestValidateBatchMissingFieldRejectsWholeBatch(t *testing.T) {
	v := NewValidator(10)
	ev := &event.Event{ID: 1, GroupSize: 2}

	bad := member("b")
	bad.Phone = "   "

	err := v.ValidateBatch(ev, []ParticipantInput{member("a"), bad}, noTeamCount)

	var fieldErr *MissingFieldError
	if !errors.As(err, &fieldErr) {
		t.Fatalf("expected MissingFieldError, got %v", err)
	}
	if fieldErr.Index != 1 || fieldErr.Field != "phone" {
		t.Fatalf("wrong field error: %+v", fieldErr)
	}
}

func TestValidateBatchTeamFull(t *testing.T) {
	v := NewValidator(5)
	ev := &event.Event{ID: 1, GroupSize: 2}

	// 4 already registered, 2 more would exceed the cap of 5.
	err := v.ValidateBatch(ev, []ParticipantInput{member("a"), member("b")}, func(eventID uint, team string) (int64, error) {
		if team != "Team Rocket" {
			t.Fatalf("counted unexpected team %q", team)
		}
		return 4, nil
	})
	if !errors.Is(err, ErrTeamFull) {
		t.Fatalf("expected ErrTeamFull, got %v", err)
	}
}

func TestValidateBatchTeamAtCapExactlyFits(t *testing.T) {
	v := NewValidator(4)
	ev := &event.Event{ID: 1, GroupSize: 2}

	err := v.ValidateBatch(ev, []ParticipantInput{member("a"), member("b")}, func(uint, string) (int64, error) {
		return 2, nil
	})
	if err != nil {
		t.Fatalf("batch filling the team exactly should pass, got %v", err)
	}
}

func TestValidateBatchRuleOrder(t *testing.T) {
	v := NewValidator(1)
	ev := &event.Event{ID: 1, GroupSize: 3}

	// Batch is both the wrong size and incomplete; the size check wins.
	bad := ParticipantInput{Group: "Team Rocket"}
	err := v.ValidateBatch(ev, []ParticipantInput{bad, bad}, noTeamCount)

	var sizeErr *BatchSizeError
	if !errors.As(err, &sizeErr) {
		t.Fatalf("size check should run before field checks, got %v", err)
	}
}

func TestIsInvalidInput(t *testing.T) {
	for _, err := range []error{
		ErrEmptyBatch,
		ErrTeamFull,
		&BatchSizeError{Required: 2, Got: 1},
		&MissingFieldError{Index: 0, Field: "name"},
	} {
		if !IsInvalidInput(err) {
			t.Errorf("expected %v to be invalid input", err)
		}
	}
	if IsInvalidInput(ErrEventNotFound) {
		t.Error("missing event is not a caller input problem")
	}
	if IsInvalidInput(errors.New("db down")) {
		t.Error("store failures are not invalid input")
	}
}
