package repository

import (
	"context"
	"errors"

	domain "university-api/internal/domain/academic"
	interfaces "university-api/internal/interfaces/infrastructure"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RegistrationCourseRepository persists in-progress enrollments keyed by the
// (registration, student, offered course) triple.
type RegistrationCourseRepository struct {
	db *gorm.DB
}

func NewRegistrationCourseRepository(db *gorm.DB) interfaces.RegistrationCourseRepository {
	return &RegistrationCourseRepository{
		db: db,
	}
}

func (r *RegistrationCourseRepository) Create(ctx context.Context, rc *domain.StudentSemesterRegistrationCourse) error {
	return conn(ctx, r.db).Create(rc).Error
}

func (r *RegistrationCourseRepository) Delete(ctx context.Context, registrationID, studentID, offeredCourseID uuid.UUID) (*domain.StudentSemesterRegistrationCourse, error) {
	var rc domain.StudentSemesterRegistrationCourse
	err := conn(ctx, r.db).
		Where("semester_registration_id = ? AND student_id = ? AND offered_course_id = ?",
			registrationID, studentID, offeredCourseID).
		First(&rc).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	result := conn(ctx, r.db).Delete(
		&domain.StudentSemesterRegistrationCourse{},
		"semester_registration_id = ? AND student_id = ? AND offered_course_id = ?",
		registrationID, studentID, offeredCourseID,
	)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return &rc, nil
}

func (r *RegistrationCourseRepository) GetByStudentAndRegistration(ctx context.Context, studentID, registrationID uuid.UUID) ([]*domain.StudentSemesterRegistrationCourse, error) {
	var courses []*domain.StudentSemesterRegistrationCourse
	err := conn(ctx, r.db).
		Preload("OfferedCourse").
		Preload("OfferedCourse.Course").
		Preload("Section").
		Where("student_id = ? AND semester_registration_id = ?", studentID, registrationID).
		Find(&courses).Error
	if err != nil {
		return nil, err
	}
	return courses, nil
}
