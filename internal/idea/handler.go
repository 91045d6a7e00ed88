package idea

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	Repo       *Repository
	UploadPath string
}

func NewHandler(repo *Repository, uploadPath string) *Handler {
	return &Handler{Repo: repo, UploadPath: uploadPath}
}

// CreateIdea - POST /ideas (multipart, optional attachment)
func (h *Handler) CreateIdea(c *gin.Context) {
	var req CreateIdeaRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	attachment := ""
	if file, err := c.FormFile("attachment"); err == nil {
		name := uuid.New().String() + filepath.Ext(file.Filename)
		dst := filepath.Join(h.UploadPath, name)
		if err := c.SaveUploadedFile(file, dst); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("failed to save attachment: %v", err)})
			return
		}
		attachment = "/uploads/" + name
	}

	i := &Idea{
		Title:       req.Title,
		Description: req.Description,
		AuthorName:  req.AuthorName,
		Email:       req.Email,
		Attachment:  attachment,
	}

	if err := h.Repo.Create(i); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save idea"})
		return
	}

	c.JSON(http.StatusCreated, i)
}

// ListIdeas - GET /ideas
func (h *Handler) ListIdeas(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	ideas, err := h.Repo.List(limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list ideas"})
		return
	}

	c.JSON(http.StatusOK, ideas)
}

// DeleteIdea - DELETE /ideas/:id (admin only)
func (h *Handler) DeleteIdea(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid idea ID"})
		return
	}

	if err := h.Repo.Delete(uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete idea"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "idea deleted successfully"})
}
