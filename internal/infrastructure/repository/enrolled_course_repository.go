package repository

import (
	"context"

	domain "university-api/internal/domain/academic"
	interfaces "university-api/internal/interfaces/infrastructure"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EnrolledCourseRepository struct {
	db *gorm.DB
}

func NewEnrolledCourseRepository(db *gorm.DB) interfaces.EnrolledCourseRepository {
	return &EnrolledCourseRepository{
		db: db,
	}
}

func (r *EnrolledCourseRepository) Create(ctx context.Context, ec *domain.StudentEnrolledCourse) (*domain.StudentEnrolledCourse, error) {
	if err := conn(ctx, r.db).Create(ec).Error; err != nil {
		return nil, err
	}
	return ec, nil
}

func (r *EnrolledCourseRepository) Exists(ctx context.Context, studentID, courseID, academicSemesterID uuid.UUID) (bool, error) {
	var count int64
	err := conn(ctx, r.db).
		Model(&domain.StudentEnrolledCourse{}).
		Where("student_id = ? AND course_id = ? AND academic_semester_id = ?", studentID, courseID, academicSemesterID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *EnrolledCourseRepository) GetCompletedByStudent(ctx context.Context, studentID uuid.UUID) ([]*domain.StudentEnrolledCourse, error) {
	var courses []*domain.StudentEnrolledCourse
	err := conn(ctx, r.db).
		Preload("Course").
		Where("student_id = ? AND status = ?", studentID, domain.EnrolledCompleted).
		Find(&courses).Error
	if err != nil {
		return nil, err
	}
	return courses, nil
}

var _ interfaces.EnrolledCourseRepository = (*EnrolledCourseRepository)(nil)
