package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/schoolsync/ptm-api/internal/models"
	appErrors "github.com/schoolsync/ptm-api/pkg/errors"
)

type teacherRepository interface {
	List(ctx context.Context) ([]models.Teacher, error)
}

type studentRepository interface {
	ListByParent(ctx context.Context, parentID int) ([]models.Student, error)
}

const teacherDirectoryCacheKey = "directory:teachers"

// DirectoryService serves the teacher and student lookups backing the
// meeting request form. The teacher list is optionally Redis-cached since
// it changes rarely and is read on every form load.
type DirectoryService struct {
	teachers teacherRepository
	students studentRepository
	cache    *CacheService
	logger   *zap.Logger
}

// NewDirectoryService constructs a DirectoryService. cache may be nil.
func NewDirectoryService(teachers teacherRepository, students studentRepository, cache *CacheService, logger *zap.Logger) *DirectoryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DirectoryService{teachers: teachers, students: students, cache: cache, logger: logger}
}

// ListTeachers returns the full teacher directory.
func (s *DirectoryService) ListTeachers(ctx context.Context) ([]models.Teacher, error) {
	var cached []models.Teacher
	if s.cache.Get(ctx, teacherDirectoryCacheKey, &cached) {
		return cached, nil
	}

	teachers, err := s.teachers.List(ctx)
	if err != nil {
		s.logger.Error("list teachers failed", zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Failed to fetch teachers")
	}

	s.cache.Set(ctx, teacherDirectoryCacheKey, teachers)
	return teachers, nil
}

// ListStudents returns the students of one parent; an unknown parent gets
// an empty list.
func (s *DirectoryService) ListStudents(ctx context.Context, parentID int) ([]models.Student, error) {
	students, err := s.students.ListByParent(ctx, parentID)
	if err != nil {
		s.logger.Error("list students failed", zap.Int("parent_id", parentID), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Failed to fetch students")
	}
	return students, nil
}
