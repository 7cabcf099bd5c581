package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/schoolsync/ptm-api/internal/models"
)

// AuthRepository looks up credentials in the role-specific account tables.
type AuthRepository struct {
	db *sqlx.DB
}

// NewAuthRepository constructs an AuthRepository.
func NewAuthRepository(db *sqlx.DB) *AuthRepository {
	return &AuthRepository{db: db}
}

// FindByCredentials matches username and password against the table the
// role designates. Passwords are compared as stored, without hashing; the
// seed data holds them in the clear and that contract is deliberate.
// sql.ErrNoRows passes through when nothing matches.
func (r *AuthRepository) FindByCredentials(ctx context.Context, username, password string, role models.Role) (*models.User, error) {
	table := "parents"
	if role == models.RoleTeacher {
		table = "teachers"
	}

	query := fmt.Sprintf("SELECT id, username FROM %s WHERE username = $1 AND password = $2", table)

	var user models.User
	if err := r.db.GetContext(ctx, &user, query, username, password); err != nil {
		return nil, err
	}
	user.Role = role
	return &user, nil
}
