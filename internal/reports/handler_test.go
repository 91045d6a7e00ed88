package reports

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/iic-bit/IIC-Backend/internal/auditlog"
	"github.com/iic-bit/IIC-Backend/internal/event"
	"github.com/iic-bit/IIC-Backend/internal/participant"
)

type stubStore struct {
	rows []participant.Participant
}

func (s *stubStore) InsertBatch(participants []participant.Participant) ([]participant.Participant, error) {
	return nil, errors.New("not used")
}

func (s *stubStore) FindByEvent(eventID uint) ([]participant.Participant, error) {
	return s.rows, nil
}

func (s *stubStore) CountByEventAndTeam(eventID uint, team string) (int64, error) {
	return int64(len(s.rows)), nil
}

type stubEvents struct {
	ev *event.Event
}

func (s *stubEvents) GetEventByID(id uint) (*event.Event, error) {
	if s.ev == nil || s.ev.ID != id {
		return nil, event.ErrNotFound
	}
	return s.ev, nil
}

type nopAudit struct{}

func (nopAudit) LogAction(ctx context.Context, userID *uint, eventID *uint, action string, details map[string]interface{}, ip string, status string) error {
	return nil
}

func (nopAudit) GetAuditLogs(ctx context.Context, filter auditlog.AuditLogFilter) (*auditlog.PaginatedAuditLogs, error) {
	return &auditlog.PaginatedAuditLogs{}, nil
}

func (nopAudit) GetAuditLogByID(ctx context.Context, id uint) (*auditlog.AuditLog, error) {
	return nil, errors.New("not found")
}

func exportRequest(t *testing.T, h *Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	c.Params = gin.Params{{Key: "id", Value: "7"}}

	h.ExportParticipants(c)
	return w
}

func TestExportNoParticipantsIs404(t *testing.T) {
	h := NewHandler(
		&stubEvents{ev: &event.Event{ID: 7, Name: "Hackathon", GroupSize: 2}},
		&stubStore{},
		NewRegistrationExporter(),
		nopAudit{},
	)

	w := exportRequest(t, h, "/events/7/participants/export")

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for an event with no registrations, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "no participants found") {
		t.Fatalf("unexpected body: %s", body)
	}
	// Never a headers-only file: no export rows may precede the error.
	if strings.Contains(body, "GroupId") {
		t.Fatalf("export rows leaked into an empty-event response: %s", body)
	}
}

func TestExportUnknownEventIs404(t *testing.T) {
	h := NewHandler(&stubEvents{}, &stubStore{}, NewRegistrationExporter(), nopAudit{})

	w := exportRequest(t, h, "/events/7/participants/export")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for a missing event, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "event not found") {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestExportCSVStreamsGroupedRows(t *testing.T) {
	rows := sampleParticipants()
	h := NewHandler(
		&stubEvents{ev: &event.Event{ID: 7, Name: "Hackathon", GroupSize: 2}},
		&stubStore{rows: rows},
		NewRegistrationExporter(),
		nopAudit{},
	)

	w := exportRequest(t, h, "/events/7/participants/export?format=csv")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "text/csv") {
		t.Fatalf("unexpected content type %q", ct)
	}
	body := w.Body.String()
	if !strings.HasPrefix(body, "GroupId,MembersCount") {
		t.Fatalf("missing header row: %s", body)
	}
	if !strings.Contains(body, "GRP-AAAA1111") || !strings.Contains(body, "GRP-BBBB2222") {
		t.Fatalf("group blocks missing from output: %s", body)
	}
}

func TestExportUnsupportedFormatQuery(t *testing.T) {
	rows := sampleParticipants()
	h := NewHandler(
		&stubEvents{ev: &event.Event{ID: 7, Name: "Hackathon", GroupSize: 2}},
		&stubStore{rows: rows},
		NewRegistrationExporter(),
		nopAudit{},
	)

	w := exportRequest(t, h, "/events/7/participants/export?format=docx")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unsupported format, got %d", w.Code)
	}
}
