package reports

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/iic-bit/IIC-Backend/internal/auditlog"
	"github.com/iic-bit/IIC-Backend/internal/event"
	"github.com/iic-bit/IIC-Backend/internal/participant"
	"github.com/iic-bit/IIC-Backend/middleware"
)

// EventGetter resolves the event being exported. *event.Service satisfies it.
type EventGetter interface {
	GetEventByID(id uint) (*event.Event, error)
}

type Handler struct {
	EventSvc EventGetter
	Store    participant.Store
	Exporter RegistrationExporter
	AuditSvc auditlog.Service
}

func NewHandler(eventSvc EventGetter, store participant.Store, exporter RegistrationExporter, auditSvc auditlog.Service) *Handler {
	return &Handler{
		EventSvc: eventSvc,
		Store:    store,
		Exporter: exporter,
		AuditSvc: auditSvc,
	}
}

// ===========================
// 📥 Export Participants - GET /events/:id/participants/export?format=csv|xlsx|pdf
//
// The store read happens fully before any output byte is written; an empty
// result is a 404, never a headers-only file.
func (h *Handler) ExportParticipants(c *gin.Context) {
	userID := c.GetUint("user_id")

	eventID, err := strconv.Atoi(c.Param("id"))
	if err != nil || eventID < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event ID"})
		return
	}

	ev, err := h.EventSvc.GetEventByID(uint(eventID))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
		return
	}

	parts, err := h.Store.FindByEvent(uint(eventID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch participants"})
		return
	}
	if len(parts) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "no participants found for this event"})
		return
	}

	groups := GroupParticipants(parts)
	format := c.DefaultQuery("format", FormatCSV)
	ip := middleware.GetIPFromContext(c)

	switch format {
	case FormatCSV:
		filename := fmt.Sprintf("participants_%s.csv", time.Now().Format("20060102_150405"))
		c.Header("Content-Type", "text/csv")
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))
		if err := h.Exporter.WriteCSV(c.Writer, groups); err != nil {
			// Headers are already flushed; just stop writing.
			log.Printf("⚠️ CSV export for event %d aborted: %v", eventID, err)
			return
		}

	case FormatExcel, FormatPDF:
		data, filename, contentType, err := h.Exporter.Export(format, ev.Name, groups)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate export"})
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))
		c.Data(http.StatusOK, contentType, data)

	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported format: " + format})
		return
	}

	h.AuditSvc.LogAction(c.Request.Context(), &userID, &ev.ID, "EXPORT_GENERATED", map[string]interface{}{
		"event_name": ev.Name,
		"format":     format,
		"groups":     len(groups),
		"rows":       len(parts),
	}, ip, "success")
}
