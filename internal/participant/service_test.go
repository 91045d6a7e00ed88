package participant

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"sync"
	"testing"

	"github.com/iic-bit/IIC-Backend/internal/auditlog"
	"github.com/iic-bit/IIC-Backend/internal/event"
	"github.com/iic-bit/IIC-Backend/utils"
)

// fakeStore is an in-memory Store safe for concurrent use.
type fakeStore struct {
	mu      sync.Mutex
	rows    []Participant
	nextID  uint
	failing bool
}

func (f *fakeStore) InsertBatch(participants []Participant) ([]Participant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failing {
		return nil, errors.New("insert failed")
	}
	for i := range participants {
		f.nextID++
		participants[i].ID = f.nextID
	}
	f.rows = append(f.rows, participants...)
	return participants, nil
}

func (f *fakeStore) FindByEvent(eventID uint) ([]Participant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []Participant
	for _, p := range f.rows {
		if p.EventID == eventID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeStore) CountByEventAndTeam(eventID uint, team string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, p := range f.rows {
		if p.EventID == eventID && p.Group == team {
			n++
		}
	}
	return n, nil
}

type fakeEvents struct {
	events map[uint]*event.Event
}

func (f *fakeEvents) GetEventByID(id uint) (*event.Event, error) {
	ev, ok := f.events[id]
	if !ok {
		return nil, event.ErrNotFound
	}
	return ev, nil
}

// recordingAudit captures actions without touching a database.
type recordingAudit struct {
	mu      sync.Mutex
	actions []string
}

func (a *recordingAudit) LogAction(ctx context.Context, userID *uint, eventID *uint, action string, details map[string]interface{}, ip string, status string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.actions = append(a.actions, action+":"+status)
	return nil
}

func (a *recordingAudit) GetAuditLogs(ctx context.Context, filter auditlog.AuditLogFilter) (*auditlog.PaginatedAuditLogs, error) {
	return &auditlog.PaginatedAuditLogs{}, nil
}

func (a *recordingAudit) GetAuditLogByID(ctx context.Context, id uint) (*auditlog.AuditLog, error) {
	return nil, errors.New("not found")
}

func newTestService(store *fakeStore, events *fakeEvents, maxTeam int) (*Service, *recordingAudit) {
	audit := &recordingAudit{}
	svc := NewService(
		store,
		events,
		NewValidator(maxTeam),
		NewGroupIDGenerator(rand.NewSource(1)),
		utils.NewLocalEventLocker(),
		audit,
	)
	return svc, audit
}

func batchOf(size int, team string) []ParticipantInput {
	batch := make([]ParticipantInput, size)
	for i := range batch {
		batch[i] = ParticipantInput{
			Name:   "Member",
			Email:  "member@example.com",
			Phone:  "9876543210",
			Branch: "ECE",
			Year:   "2",
			Group:  team,
		}
	}
	return batch
}

func TestRegisterAssignsOneFreshGroupID(t *testing.T) {
	store := &fakeStore{}
	events := &fakeEvents{events: map[uint]*event.Event{
		7: {ID: 7, Name: "Hackathon", GroupSize: 3},
	}}
	svc, audit := newTestService(store, events, 10)

	saved, err := svc.Register(context.Background(), 7, batchOf(3, "Alpha"), "127.0.0.1")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if len(saved) != 3 {
		t.Fatalf("expected 3 saved participants, got %d", len(saved))
	}

	groupID := saved[0].GroupID
	if !strings.HasPrefix(groupID, "GRP-") {
		t.Fatalf("unexpected group id %q", groupID)
	}
	for _, p := range saved {
		if p.GroupID != groupID {
			t.Fatalf("members of one batch must share a group id: %q vs %q", p.GroupID, groupID)
		}
		if p.EventID != 7 {
			t.Fatalf("wrong event id %d", p.EventID)
		}
	}

	// A second batch gets a different id.
	saved2, err := svc.Register(context.Background(), 7, batchOf(3, "Beta"), "127.0.0.1")
	if err != nil {
		t.Fatalf("second register failed: %v", err)
	}
	if saved2[0].GroupID == groupID {
		t.Fatalf("second batch reused group id %q", groupID)
	}

	audit.mu.Lock()
	defer audit.mu.Unlock()
	if len(audit.actions) != 2 || audit.actions[0] != "REGISTRATION_CREATED:success" {
		t.Fatalf("unexpected audit trail: %v", audit.actions)
	}
}

func TestRegisterUnknownEvent(t *testing.T) {
	svc, _ := newTestService(&fakeStore{}, &fakeEvents{events: map[uint]*event.Event{}}, 10)

	_, err := svc.Register(context.Background(), 99, batchOf(2, "Alpha"), "127.0.0.1")
	if !errors.Is(err, ErrEventNotFound) {
		t.Fatalf("expected ErrEventNotFound, got %v", err)
	}
}

func TestRegisterValidationFailurePersistsNothing(t *testing.T) {
	store := &fakeStore{}
	events := &fakeEvents{events: map[uint]*event.Event{
		7: {ID: 7, Name: "Hackathon", GroupSize: 3},
	}}
	svc, audit := newTestService(store, events, 10)

	_, err := svc.Register(context.Background(), 7, batchOf(2, "Alpha"), "127.0.0.1")

	var sizeErr *BatchSizeError
	if !errors.As(err, &sizeErr) {
		t.Fatalf("expected BatchSizeError, got %v", err)
	}
	if len(store.rows) != 0 {
		t.Fatalf("rejected batch must not persist, found %d rows", len(store.rows))
	}

	audit.mu.Lock()
	defer audit.mu.Unlock()
	if len(audit.actions) != 1 || audit.actions[0] != "REGISTRATION_REJECTED:failure" {
		t.Fatalf("expected a rejection audit entry, got %v", audit.actions)
	}
}

func TestRegisterConcurrentBatchesRespectTeamCap(t *testing.T) {
	store := &fakeStore{}
	events := &fakeEvents{events: map[uint]*event.Event{
		7: {ID: 7, Name: "Hackathon", GroupSize: 2},
	}}
	svc, _ := newTestService(store, events, 4)

	// Three batches of two race for a team capped at four members; the
	// per-event lock serializes them so exactly one must lose.
	var wg sync.WaitGroup
	errs := make([]error, 3)
	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Register(context.Background(), 7, batchOf(2, "Shared"), "127.0.0.1")
		}(i)
	}
	wg.Wait()

	var full int
	for _, err := range errs {
		if err == nil {
			continue
		}
		if !errors.Is(err, ErrTeamFull) {
			t.Fatalf("unexpected error: %v", err)
		}
		full++
	}
	if full != 1 {
		t.Fatalf("expected exactly one ErrTeamFull, got %d (errors: %v)", full, errs)
	}
	if got, _ := store.CountByEventAndTeam(7, "Shared"); got != 4 {
		t.Fatalf("expected the team to end at 4 members, got %d", got)
	}
}

func TestRegisterStoreFailure(t *testing.T) {
	store := &fakeStore{failing: true}
	events := &fakeEvents{events: map[uint]*event.Event{
		7: {ID: 7, Name: "Hackathon", GroupSize: 1},
	}}
	svc, _ := newTestService(store, events, 10)

	_, err := svc.Register(context.Background(), 7, batchOf(1, "Alpha"), "127.0.0.1")
	if err == nil {
		t.Fatal("expected insert failure to surface")
	}
	if IsInvalidInput(err) {
		t.Fatalf("store failure misclassified as invalid input: %v", err)
	}
}

func TestDeletedEventLeavesParticipantsReadable(t *testing.T) {
	store := &fakeStore{}
	events := &fakeEvents{events: map[uint]*event.Event{
		7: {ID: 7, Name: "Hackathon", GroupSize: 2},
	}}
	svc, _ := newTestService(store, events, 10)

	if _, err := svc.Register(context.Background(), 7, batchOf(2, "Alpha"), "127.0.0.1"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	// Deleting the event does not cascade to registrations.
	delete(events.events, 7)

	rows, err := svc.GetByEvent(7)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected orphaned registrations to remain, got %d", len(rows))
	}

	_, err = svc.Register(context.Background(), 7, batchOf(2, "Beta"), "127.0.0.1")
	if !errors.Is(err, ErrEventNotFound) {
		t.Fatalf("registering against a deleted event should fail, got %v", err)
	}
}
