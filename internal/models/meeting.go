package models

import "time"

// MeetingStatus is the lifecycle stage of a meeting request. A meeting is
// created pending and moves to accepted or rejected exactly once, by the
// assigned teacher.
type MeetingStatus string

const (
	StatusPending  MeetingStatus = "pending"
	StatusAccepted MeetingStatus = "accepted"
	StatusRejected MeetingStatus = "rejected"
)

// ParseStatus canonicalises a client-supplied status. The legacy frontends
// sent both "accept" and "accepted"; the stored vocabulary is "accepted".
func ParseStatus(raw string) (MeetingStatus, bool) {
	switch MeetingStatus(raw) {
	case StatusAccepted, "accept":
		return StatusAccepted, true
	case StatusRejected:
		return StatusRejected, true
	case StatusPending:
		return StatusPending, true
	}
	return "", false
}

// Meeting is a parent-initiated meeting request with a teacher about a
// student. Message is set only when the teacher decides, carrying the
// rationale; it is null while pending.
type Meeting struct {
	ID          int           `db:"id" json:"id"`
	TeacherID   int           `db:"teacher_id" json:"teacher_id"`
	ParentID    int           `db:"parent_id" json:"parent_id"`
	StudentID   int           `db:"student_id" json:"student_id"`
	Subject     string        `db:"subject" json:"subject"`
	MeetingDate time.Time     `db:"meeting_date" json:"meeting_date"`
	MeetingTime string        `db:"meeting_time" json:"meeting_time"`
	Reason      string        `db:"reason" json:"reason"`
	Message     *string       `db:"message" json:"message"`
	Status      MeetingStatus `db:"status" json:"status"`
	CreatedAt   time.Time     `db:"created_at" json:"created_at"`
}

// TeacherMeeting is a meeting row joined with the requesting parent and the
// student, as shown on the teacher dashboard.
type TeacherMeeting struct {
	Meeting
	ParentName  string `db:"parent_name" json:"parent_name"`
	StudentName string `db:"student_name" json:"student_name"`
	RollNumber  string `db:"roll_number" json:"roll_number"`
	Class       string `db:"class" json:"class"`
}

// ParentMeeting is a meeting row joined with the assigned teacher and the
// student, as shown on the parent dashboard.
type ParentMeeting struct {
	Meeting
	TeacherName    string `db:"teacher_name" json:"teacher_name"`
	TeacherSubject string `db:"teacher_subject" json:"teacher_subject"`
	StudentName    string `db:"student_name" json:"student_name"`
	RollNumber     string `db:"roll_number" json:"roll_number"`
	Class          string `db:"class" json:"class"`
}
