package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/schoolsync/ptm-api/internal/models"
	"github.com/schoolsync/ptm-api/pkg/response"
)

type teacherDirectory interface {
	ListTeachers(ctx context.Context) ([]models.Teacher, error)
}

// TeacherHandler serves the teacher directory.
type TeacherHandler struct {
	directory teacherDirectory
}

// NewTeacherHandler constructs a TeacherHandler.
func NewTeacherHandler(directory teacherDirectory) *TeacherHandler {
	return &TeacherHandler{directory: directory}
}

// List godoc
// @Summary List all teachers
// @Tags Directory
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/teachers [get]
func (h *TeacherHandler) List(c *gin.Context) {
	teachers, err := h.directory.ListTeachers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, gin.H{"teachers": teachers})
}
