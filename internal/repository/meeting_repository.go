package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/schoolsync/ptm-api/internal/models"
)

const meetingColumns = "id, teacher_id, parent_id, student_id, subject, meeting_date, meeting_time, reason, message, status, created_at"

// MeetingRepository manages persistence for meeting requests.
type MeetingRepository struct {
	db *sqlx.DB
}

// NewMeetingRepository constructs a MeetingRepository.
func NewMeetingRepository(db *sqlx.DB) *MeetingRepository {
	return &MeetingRepository{db: db}
}

// Create inserts a pending meeting and fills in the generated id, status
// and timestamp from the persisted row.
func (r *MeetingRepository) Create(ctx context.Context, m *models.Meeting) error {
	const query = `INSERT INTO meetings (teacher_id, parent_id, student_id, subject, meeting_date, meeting_time, reason, message, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 'pending')
		RETURNING ` + meetingColumns

	if err := r.db.GetContext(ctx, m, query,
		m.TeacherID, m.ParentID, m.StudentID, m.Subject,
		m.MeetingDate, m.MeetingTime, m.Reason, m.Message,
	); err != nil {
		return fmt.Errorf("create meeting: %w", err)
	}
	return nil
}

// FindByID fetches a single meeting row. sql.ErrNoRows passes through.
func (r *MeetingRepository) FindByID(ctx context.Context, id int) (*models.Meeting, error) {
	const query = `SELECT ` + meetingColumns + ` FROM meetings WHERE id = $1`
	var meeting models.Meeting
	if err := r.db.GetContext(ctx, &meeting, query, id); err != nil {
		return nil, err
	}
	return &meeting, nil
}

// ListByTeacher returns the teacher's meetings joined with parent and
// student detail, in schedule order.
func (r *MeetingRepository) ListByTeacher(ctx context.Context, teacherID int) ([]models.TeacherMeeting, error) {
	const query = `SELECT
			m.id, m.teacher_id, m.parent_id, m.student_id, m.subject,
			m.meeting_date, m.meeting_time, m.reason, m.message, m.status, m.created_at,
			p.username AS parent_name,
			s.name AS student_name, s.roll_number, s.class
		FROM meetings m
		JOIN parents p ON m.parent_id = p.id
		JOIN students s ON m.student_id = s.id
		WHERE m.teacher_id = $1
		ORDER BY m.meeting_date ASC, m.meeting_time ASC`

	meetings := []models.TeacherMeeting{}
	if err := r.db.SelectContext(ctx, &meetings, query, teacherID); err != nil {
		return nil, fmt.Errorf("list meetings for teacher %d: %w", teacherID, err)
	}
	return meetings, nil
}

// ListByParent returns the parent's meetings joined with teacher and
// student detail, newest request first.
func (r *MeetingRepository) ListByParent(ctx context.Context, parentID int) ([]models.ParentMeeting, error) {
	const query = `SELECT
			m.id, m.teacher_id, m.parent_id, m.student_id, m.subject,
			m.meeting_date, m.meeting_time, m.reason, m.message, m.status, m.created_at,
			t.username AS teacher_name, t.subject AS teacher_subject,
			s.name AS student_name, s.roll_number, s.class
		FROM meetings m
		JOIN teachers t ON m.teacher_id = t.id
		JOIN students s ON m.student_id = s.id
		WHERE m.parent_id = $1
		ORDER BY m.created_at DESC`

	meetings := []models.ParentMeeting{}
	if err := r.db.SelectContext(ctx, &meetings, query, parentID); err != nil {
		return nil, fmt.Errorf("list meetings for parent %d: %w", parentID, err)
	}
	return meetings, nil
}

// UpdateStatus sets the status and decision message of a meeting in one
// statement; that single-row atomicity is all the concurrency control the
// operation has. sql.ErrNoRows passes through when the id matches nothing.
func (r *MeetingRepository) UpdateStatus(ctx context.Context, id int, status models.MeetingStatus, message *string) (*models.Meeting, error) {
	const query = `UPDATE meetings SET status = $1, message = $2 WHERE id = $3
		RETURNING ` + meetingColumns

	var meeting models.Meeting
	if err := r.db.GetContext(ctx, &meeting, query, status, message, id); err != nil {
		return nil, err
	}
	return &meeting, nil
}
