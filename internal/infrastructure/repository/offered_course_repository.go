package repository

import (
	"context"

	domain "university-api/internal/domain/academic"
	interfaces "university-api/internal/interfaces/infrastructure"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OfferedCourseRepository struct {
	db *gorm.DB
}

func NewOfferedCourseRepository(db *gorm.DB) interfaces.OfferedCourseRepository {
	return &OfferedCourseRepository{
		db: db,
	}
}

func (r *OfferedCourseRepository) Create(ctx context.Context, offered *domain.OfferedCourse) error {
	return conn(ctx, r.db).Create(offered).Error
}

func (r *OfferedCourseRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.OfferedCourse, error) {
	var offered domain.OfferedCourse
	err := conn(ctx, r.db).
		Preload("Course").
		First(&offered, "offered_course_id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &offered, nil
}

func (r *OfferedCourseRepository) GetByRegistrationAndDepartment(ctx context.Context, registrationID, departmentID uuid.UUID) ([]*domain.OfferedCourse, error) {
	var offered []*domain.OfferedCourse
	err := conn(ctx, r.db).
		Preload("Course").
		Preload("Course.Prerequisites").
		Preload("Sections").
		Preload("Sections.Schedules").
		Preload("Sections.Schedules.Room").
		Preload("Sections.Schedules.Room.Building").
		Where("semester_registration_id = ? AND academic_department_id = ?", registrationID, departmentID).
		Find(&offered).Error
	if err != nil {
		return nil, err
	}
	return offered, nil
}
