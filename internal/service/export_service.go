package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/schoolsync/ptm-api/internal/models"
	appErrors "github.com/schoolsync/ptm-api/pkg/errors"
	"github.com/schoolsync/ptm-api/pkg/export"
)

// ExportFormat names a supported schedule export encoding.
type ExportFormat string

const (
	FormatCSV ExportFormat = "csv"
	FormatPDF ExportFormat = "pdf"
)

// ExportService renders a teacher's meeting schedule as a downloadable
// document.
type ExportService struct {
	meetings meetingRepository
	logger   *zap.Logger
}

// NewExportService constructs an ExportService.
func NewExportService(meetings meetingRepository, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{meetings: meetings, logger: logger}
}

// TeacherSchedule renders the teacher's meetings, one row per meeting in
// schedule order. It returns the document bytes and its content type.
func (s *ExportService) TeacherSchedule(ctx context.Context, teacherID int, format ExportFormat) ([]byte, string, error) {
	if format != FormatCSV && format != FormatPDF {
		return nil, "", appErrors.Clone(appErrors.ErrValidation, "unsupported export format")
	}

	meetings, err := s.meetings.ListByTeacher(ctx, teacherID)
	if err != nil {
		s.logger.Error("export schedule failed", zap.Int("teacher_id", teacherID), zap.Error(err))
		return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Failed to export meetings")
	}

	table := scheduleTable(meetings)

	switch format {
	case FormatPDF:
		doc, err := export.RenderPDF(table, fmt.Sprintf("Meeting Schedule - Teacher %d", teacherID))
		if err != nil {
			return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Failed to export meetings")
		}
		return doc, "application/pdf", nil
	default:
		doc, err := export.RenderCSV(table)
		if err != nil {
			return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Failed to export meetings")
		}
		return doc, "text/csv", nil
	}
}

func scheduleTable(meetings []models.TeacherMeeting) export.Table {
	table := export.Table{
		Columns: []string{"Date", "Time", "Student", "Class", "Parent", "Subject", "Status", "Reason"},
		Rows:    make([][]string, 0, len(meetings)),
	}
	for _, m := range meetings {
		table.Rows = append(table.Rows, []string{
			m.MeetingDate.Format("2006-01-02"),
			m.MeetingTime,
			m.StudentName,
			m.Class,
			m.ParentName,
			m.Subject,
			string(m.Status),
			m.Reason,
		})
	}
	return table
}
