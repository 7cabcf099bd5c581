package models

// Student belongs to exactly one parent.
type Student struct {
	ID         int    `db:"id" json:"id"`
	RollNumber string `db:"roll_number" json:"roll_number"`
	Name       string `db:"name" json:"name"`
	Class      string `db:"class" json:"class"`
	ParentID   int    `db:"parent_id" json:"parent_id,omitempty"`
}
