package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/schoolsync/ptm-api/internal/models"
)

// StudentRepository reads students scoped to their parent.
type StudentRepository struct {
	db *sqlx.DB
}

// NewStudentRepository constructs a StudentRepository.
func NewStudentRepository(db *sqlx.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

// ListByParent returns the parent's students. A parent with no students
// gets an empty slice, not an error.
func (r *StudentRepository) ListByParent(ctx context.Context, parentID int) ([]models.Student, error) {
	const query = `SELECT id, roll_number, name, class, parent_id FROM students WHERE parent_id = $1 ORDER BY name ASC`
	students := []models.Student{}
	if err := r.db.SelectContext(ctx, &students, query, parentID); err != nil {
		return nil, fmt.Errorf("list students for parent %d: %w", parentID, err)
	}
	return students, nil
}
