package models

// Teacher is a directory entry parents pick a meeting target from.
type Teacher struct {
	ID       int    `db:"id" json:"id"`
	Username string `db:"username" json:"username"`
	Subject  string `db:"subject" json:"subject"`
}
