package repository

import (
	"context"

	domain "university-api/internal/domain/academic"
	interfaces "university-api/internal/interfaces/infrastructure"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MarkRepository struct {
	db *gorm.DB
}

func NewMarkRepository(db *gorm.DB) interfaces.MarkRepository {
	return &MarkRepository{
		db: db,
	}
}

func (r *MarkRepository) Create(ctx context.Context, mark *domain.StudentEnrolledCourseMark) error {
	return conn(ctx, r.db).Create(mark).Error
}

func (r *MarkRepository) ExistsForEnrolledCourse(ctx context.Context, enrolledCourseID uuid.UUID) (bool, error) {
	var count int64
	err := conn(ctx, r.db).
		Model(&domain.StudentEnrolledCourseMark{}).
		Where("student_enrolled_course_id = ?", enrolledCourseID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
