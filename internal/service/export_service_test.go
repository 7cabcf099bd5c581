package service

import (
	"bytes"
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schoolsync/ptm-api/internal/models"
	appErrors "github.com/schoolsync/ptm-api/pkg/errors"
)

func exportFixtureRows() []models.TeacherMeeting {
	return []models.TeacherMeeting{
		{
			Meeting: models.Meeting{
				ID:          11,
				TeacherID:   2,
				Subject:     "Mathematics",
				MeetingDate: time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
				MeetingTime: "14:30",
				Reason:      "Falling grades",
				Status:      models.StatusPending,
			},
			ParentName:  "amina",
			StudentName: "Sekou",
			Class:       "7B",
		},
		{
			Meeting: models.Meeting{
				ID:          12,
				TeacherID:   2,
				Subject:     "Mathematics",
				MeetingDate: time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC),
				MeetingTime: "09:00",
				Reason:      "Progress review",
				Status:      models.StatusAccepted,
			},
			ParentName:  "oumar",
			StudentName: "Mariam",
			Class:       "5A",
		},
	}
}

func TestTeacherScheduleCSV(t *testing.T) {
	repo := &mockMeetingRepo{teacherRows: exportFixtureRows()}
	svc := NewExportService(repo, nil)

	doc, contentType, err := svc.TeacherSchedule(context.Background(), 2, FormatCSV)
	require.NoError(t, err)
	assert.Equal(t, "text/csv", contentType)

	lines := bytes.Split(bytes.TrimSpace(doc), []byte("\n"))
	require.Len(t, lines, 3)
	assert.Equal(t, "Date,Time,Student,Class,Parent,Subject,Status,Reason", string(lines[0]))
	assert.Equal(t, "2026-09-15,14:30,Sekou,7B,amina,Mathematics,pending,Falling grades", string(lines[1]))
	assert.Equal(t, "2026-09-16,09:00,Mariam,5A,oumar,Mathematics,accepted,Progress review", string(lines[2]))
}

func TestTeacherSchedulePDF(t *testing.T) {
	repo := &mockMeetingRepo{teacherRows: exportFixtureRows()}
	svc := NewExportService(repo, nil)

	doc, contentType, err := svc.TeacherSchedule(context.Background(), 2, FormatPDF)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", contentType)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF")))
}

func TestTeacherScheduleUnknownFormat(t *testing.T) {
	repo := &mockMeetingRepo{teacherRows: exportFixtureRows()}
	svc := NewExportService(repo, nil)

	_, _, err := svc.TeacherSchedule(context.Background(), 2, ExportFormat("xlsx"))
	appErr := appErrors.FromError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
}
