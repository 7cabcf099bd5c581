package repository

import (
	"context"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListStudentsByParent(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	rows := sqlmock.NewRows([]string{"id", "roll_number", "name", "class", "parent_id"}).
		AddRow(7, "R-017", "Sekou", "7B", 4).
		AddRow(8, "R-021", "Mariam", "5A", 4)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, roll_number, name, class, parent_id FROM students WHERE parent_id = $1 ORDER BY name ASC")).
		WithArgs(4).
		WillReturnRows(rows)

	students, err := repo.ListByParent(context.Background(), 4)
	require.NoError(t, err)
	require.Len(t, students, 2)
	assert.Equal(t, "Sekou", students[0].Name)
	assert.Equal(t, 4, students[1].ParentID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListStudentsByParentEmpty(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, roll_number, name, class, parent_id FROM students WHERE parent_id = $1 ORDER BY name ASC")).
		WithArgs(9).
		WillReturnRows(sqlmock.NewRows([]string{"id", "roll_number", "name", "class", "parent_id"}))

	students, err := repo.ListByParent(context.Background(), 9)
	require.NoError(t, err)
	assert.NotNil(t, students)
	assert.Empty(t, students)
	assert.NoError(t, mock.ExpectationsWereMet())
}
