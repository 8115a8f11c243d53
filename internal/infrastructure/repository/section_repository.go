package repository

import (
	"context"

	domain "university-api/internal/domain/academic"
	interfaces "university-api/internal/interfaces/infrastructure"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SectionRepository implements SectionRepository using GORM. The enrolled
// counter is only ever changed through conditional updates checked by
// RowsAffected, so concurrent enrollments cannot push a section past its
// capacity even when both pass the service-level pre-check.
type SectionRepository struct {
	db *gorm.DB
}

func NewSectionRepository(db *gorm.DB) interfaces.SectionRepository {
	return &SectionRepository{
		db: db,
	}
}

func (r *SectionRepository) Create(ctx context.Context, section *domain.OfferedCourseSection) error {
	return conn(ctx, r.db).Create(section).Error
}

func (r *SectionRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.OfferedCourseSection, error) {
	var section domain.OfferedCourseSection
	err := conn(ctx, r.db).
		Preload("Schedules").
		First(&section, "section_id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &section, nil
}

func (r *SectionRepository) IncrementEnrolled(ctx context.Context, id uuid.UUID) error {
	result := conn(ctx, r.db).
		Model(&domain.OfferedCourseSection{}).
		Where("section_id = ? AND currently_enrolled_student < max_capacity", id).
		UpdateColumn("currently_enrolled_student", gorm.Expr("currently_enrolled_student + 1"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSectionFull
	}
	return nil
}

func (r *SectionRepository) DecrementEnrolled(ctx context.Context, id uuid.UUID) error {
	result := conn(ctx, r.db).
		Model(&domain.OfferedCourseSection{}).
		Where("section_id = ? AND currently_enrolled_student > 0", id).
		UpdateColumn("currently_enrolled_student", gorm.Expr("currently_enrolled_student - 1"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
