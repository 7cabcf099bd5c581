package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/schoolsync/ptm-api/internal/models"
	appErrors "github.com/schoolsync/ptm-api/pkg/errors"
	"github.com/schoolsync/ptm-api/pkg/response"
)

type studentDirectory interface {
	ListStudents(ctx context.Context, parentID int) ([]models.Student, error)
}

// StudentHandler serves the student lookup behind the meeting form.
type StudentHandler struct {
	directory studentDirectory
}

// NewStudentHandler constructs a StudentHandler.
func NewStudentHandler(directory studentDirectory) *StudentHandler {
	return &StudentHandler{directory: directory}
}

// List godoc
// @Summary List a parent's students
// @Tags Directory
// @Produce json
// @Param parentId query int true "Parent ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /api/students [get]
func (h *StudentHandler) List(c *gin.Context) {
	raw := c.Query("parentId")
	if raw == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "Parent ID is required"))
		return
	}
	parentID, err := strconv.Atoi(raw)
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid parentId"))
		return
	}

	students, err := h.directory.ListStudents(c.Request.Context(), parentID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, gin.H{"students": students})
}
