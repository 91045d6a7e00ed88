package notice

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

// CreateNotice - POST /notices (admin only)
func (h *Handler) CreateNotice(c *gin.Context) {
	var req NoticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	n := &Notice{Title: req.Title, Body: req.Body, Link: req.Link}
	if err := h.Repo.CreateNotice(n); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create notice"})
		return
	}

	c.JSON(http.StatusCreated, n)
}

// ListNotices - GET /notices
func (h *Handler) ListNotices(c *gin.Context) {
	notices, err := h.Repo.ListNotices()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list notices"})
		return
	}
	c.JSON(http.StatusOK, notices)
}

// UpdateNotice - PUT /notices/:id (admin only)
func (h *Handler) UpdateNotice(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid notice ID"})
		return
	}

	var req NoticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	n, err := h.Repo.GetNoticeByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "notice not found"})
		return
	}

	n.Title = req.Title
	n.Body = req.Body
	n.Link = req.Link

	if err := h.Repo.UpdateNotice(n); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update notice"})
		return
	}

	c.JSON(http.StatusOK, n)
}

// DeleteNotice - DELETE /notices/:id (admin only)
func (h *Handler) DeleteNotice(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid notice ID"})
		return
	}

	if err := h.Repo.DeleteNotice(uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete notice"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "notice deleted successfully"})
}

// UpsertSiteData - POST /sitedata (admin only)
func (h *Handler) UpsertSiteData(c *gin.Context) {
	var req SiteDataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	d := &SiteData{Key: req.Key, Value: req.Value}
	if err := h.Repo.UpsertSiteData(d); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save site data"})
		return
	}

	c.JSON(http.StatusOK, d)
}

// ListSiteData - GET /sitedata
func (h *Handler) ListSiteData(c *gin.Context) {
	data, err := h.Repo.ListSiteData()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list site data"})
		return
	}
	c.JSON(http.StatusOK, data)
}

// DeleteSiteData - DELETE /sitedata/:key (admin only)
func (h *Handler) DeleteSiteData(c *gin.Context) {
	key := c.Param("key")
	if key == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "key required"})
		return
	}

	if err := h.Repo.DeleteSiteData(key); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete site data"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "site data deleted"})
}
