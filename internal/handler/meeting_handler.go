package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/schoolsync/ptm-api/internal/models"
	"github.com/schoolsync/ptm-api/internal/service"
	"github.com/schoolsync/ptm-api/internal/session"
	appErrors "github.com/schoolsync/ptm-api/pkg/errors"
	"github.com/schoolsync/ptm-api/pkg/response"
)

type meetingService interface {
	Create(ctx context.Context, req service.CreateMeetingRequest) (*models.Meeting, error)
	ListForTeacher(ctx context.Context, teacherID int) ([]models.TeacherMeeting, error)
	ListForParent(ctx context.Context, parentID int) ([]models.ParentMeeting, error)
	UpdateStatus(ctx context.Context, actor *models.User, req service.UpdateMeetingStatusRequest) (*models.Meeting, error)
}

type exportService interface {
	TeacherSchedule(ctx context.Context, teacherID int, format service.ExportFormat) ([]byte, string, error)
}

// MeetingHandler wires the meeting endpoints.
type MeetingHandler struct {
	meetings meetingService
	exports  exportService
	sessions *session.Codec
}

// NewMeetingHandler constructs a MeetingHandler. exports may be nil when
// schedule export is disabled.
func NewMeetingHandler(meetings meetingService, exports exportService, sessions *session.Codec) *MeetingHandler {
	return &MeetingHandler{meetings: meetings, exports: exports, sessions: sessions}
}

// Create godoc
// @Summary Request a meeting with a teacher
// @Tags Meetings
// @Accept json
// @Produce json
// @Param payload body service.CreateMeetingRequest true "Meeting request"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/meetings [post]
func (h *MeetingHandler) Create(c *gin.Context) {
	var req service.CreateMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid meeting payload"))
		return
	}

	meeting, err := h.meetings.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, gin.H{"meeting": meeting})
}

// List godoc
// @Summary List meetings for a teacher or a parent
// @Tags Meetings
// @Produce json
// @Param teacherId query int false "Teacher ID"
// @Param parentId query int false "Parent ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /api/meetings [get]
func (h *MeetingHandler) List(c *gin.Context) {
	if teacherID := c.Query("teacherId"); teacherID != "" {
		id, err := strconv.Atoi(teacherID)
		if err != nil {
			response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid teacherId"))
			return
		}
		meetings, err := h.meetings.ListForTeacher(c.Request.Context(), id)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, http.StatusOK, gin.H{"meetings": meetings})
		return
	}

	if parentID := c.Query("parentId"); parentID != "" {
		id, err := strconv.Atoi(parentID)
		if err != nil {
			response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid parentId"))
			return
		}
		meetings, err := h.meetings.ListForParent(c.Request.Context(), id)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, http.StatusOK, gin.H{"meetings": meetings})
		return
	}

	response.Error(c, appErrors.Clone(appErrors.ErrValidation, "Teacher ID or Parent ID is required"))
}

// UpdateStatus godoc
// @Summary Accept or reject a meeting
// @Tags Meetings
// @Accept json
// @Produce json
// @Param payload body service.UpdateMeetingStatusRequest true "Decision"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/meetings [patch]
func (h *MeetingHandler) UpdateStatus(c *gin.Context) {
	var req service.UpdateMeetingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid status payload"))
		return
	}

	actor := h.sessions.Read(c)
	meeting, err := h.meetings.UpdateStatus(c.Request.Context(), actor, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, gin.H{"meeting": meeting})
}

// Export godoc
// @Summary Download a teacher's meeting schedule
// @Tags Meetings
// @Produce text/csv
// @Produce application/pdf
// @Param teacherId query int true "Teacher ID"
// @Param format query string false "csv or pdf (default csv)"
// @Success 200 {file} file
// @Failure 400 {object} map[string]interface{}
// @Router /api/meetings/export [get]
func (h *MeetingHandler) Export(c *gin.Context) {
	if h.exports == nil {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "export is disabled"))
		return
	}

	teacherID, err := strconv.Atoi(c.Query("teacherId"))
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "Teacher ID is required"))
		return
	}

	format := service.ExportFormat(c.DefaultQuery("format", string(service.FormatCSV)))
	doc, contentType, err := h.exports.TeacherSchedule(c.Request.Context(), teacherID, format)
	if err != nil {
		response.Error(c, err)
		return
	}

	filename := fmt.Sprintf("meetings-%d.%s", teacherID, format)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, doc)
}
