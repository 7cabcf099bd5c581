package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/schoolsync/ptm-api/internal/models"
	appErrors "github.com/schoolsync/ptm-api/pkg/errors"
)

type meetingRepository interface {
	Create(ctx context.Context, m *models.Meeting) error
	FindByID(ctx context.Context, id int) (*models.Meeting, error)
	ListByTeacher(ctx context.Context, teacherID int) ([]models.TeacherMeeting, error)
	ListByParent(ctx context.Context, parentID int) ([]models.ParentMeeting, error)
	UpdateStatus(ctx context.Context, id int, status models.MeetingStatus, message *string) (*models.Meeting, error)
}

const meetingDateLayout = "2006-01-02"

// CreateMeetingRequest is the parent-submitted meeting request payload.
type CreateMeetingRequest struct {
	TeacherID   int     `json:"teacher_id" validate:"required"`
	ParentID    int     `json:"parent_id" validate:"required"`
	StudentID   int     `json:"student_id" validate:"required"`
	Subject     string  `json:"subject" validate:"required"`
	MeetingDate string  `json:"meeting_date" validate:"required,datetime=2006-01-02"`
	MeetingTime string  `json:"meeting_time" validate:"required"`
	Reason      string  `json:"reason" validate:"required"`
	Message     *string `json:"message"`
}

// UpdateMeetingStatusRequest is the teacher's decision payload. Field names
// are camelCase because that is what the dashboard sends.
type UpdateMeetingStatusRequest struct {
	MeetingID int     `json:"meetingId" validate:"required"`
	Status    string  `json:"status" validate:"required,oneof=accept accepted rejected"`
	Message   *string `json:"message"`
}

// MeetingService orchestrates the meeting lifecycle.
type MeetingService struct {
	repo      meetingRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewMeetingService constructs a MeetingService.
func NewMeetingService(repo meetingRepository, validate *validator.Validate, logger *zap.Logger) *MeetingService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MeetingService{repo: repo, validator: validate, logger: logger}
}

// Create persists a new pending meeting and returns the stored row.
func (s *MeetingService) Create(ctx context.Context, req CreateMeetingRequest) (*models.Meeting, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid meeting payload")
	}

	date, err := time.Parse(meetingDateLayout, req.MeetingDate)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid meeting date")
	}

	meeting := &models.Meeting{
		TeacherID:   req.TeacherID,
		ParentID:    req.ParentID,
		StudentID:   req.StudentID,
		Subject:     req.Subject,
		MeetingDate: date,
		MeetingTime: req.MeetingTime,
		Reason:      req.Reason,
		Message:     req.Message,
	}

	if err := s.repo.Create(ctx, meeting); err != nil {
		s.logger.Error("create meeting failed", zap.Int("teacher_id", req.TeacherID), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Failed to create meeting")
	}
	return meeting, nil
}

// ListForTeacher returns the teacher's meetings in schedule order.
func (s *MeetingService) ListForTeacher(ctx context.Context, teacherID int) ([]models.TeacherMeeting, error) {
	meetings, err := s.repo.ListByTeacher(ctx, teacherID)
	if err != nil {
		s.logger.Error("list meetings failed", zap.Int("teacher_id", teacherID), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Failed to fetch meetings")
	}
	return meetings, nil
}

// ListForParent returns the parent's meetings, newest first.
func (s *MeetingService) ListForParent(ctx context.Context, parentID int) ([]models.ParentMeeting, error) {
	meetings, err := s.repo.ListByParent(ctx, parentID)
	if err != nil {
		s.logger.Error("list meetings failed", zap.Int("parent_id", parentID), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Failed to fetch meetings")
	}
	return meetings, nil
}

// UpdateStatus records a teacher's decision. Only the teacher the meeting
// is assigned to may decide it.
func (s *MeetingService) UpdateStatus(ctx context.Context, actor *models.User, req UpdateMeetingStatusRequest) (*models.Meeting, error) {
	if actor == nil {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "login required")
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid status payload")
	}

	status, ok := models.ParseStatus(req.Status)
	if !ok || status == models.StatusPending {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid meeting status")
	}

	meeting, err := s.repo.FindByID(ctx, req.MeetingID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "meeting not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Failed to update meeting status")
	}

	if actor.Role != models.RoleTeacher || actor.ID != meeting.TeacherID {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "meeting belongs to another teacher")
	}

	updated, err := s.repo.UpdateStatus(ctx, req.MeetingID, status, req.Message)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "meeting not found")
		}
		s.logger.Error("update meeting status failed", zap.Int("meeting_id", req.MeetingID), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Failed to update meeting status")
	}
	return updated, nil
}
