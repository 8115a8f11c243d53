package repository

import (
	"context"

	domain "university-api/internal/domain/academic"
	interfaces "university-api/internal/interfaces/infrastructure"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AcademicSemesterRepository implements AcademicSemesterRepository using GORM
type AcademicSemesterRepository struct {
	db *gorm.DB
}

func NewAcademicSemesterRepository(db *gorm.DB) interfaces.AcademicSemesterRepository {
	return &AcademicSemesterRepository{
		db: db,
	}
}

func (r *AcademicSemesterRepository) Create(ctx context.Context, semester *domain.AcademicSemester) error {
	return conn(ctx, r.db).Create(semester).Error
}

func (r *AcademicSemesterRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.AcademicSemester, error) {
	var semester domain.AcademicSemester
	err := conn(ctx, r.db).First(&semester, "semester_id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &semester, nil
}

func (r *AcademicSemesterRepository) GetCurrent(ctx context.Context) (*domain.AcademicSemester, error) {
	var semester domain.AcademicSemester
	err := conn(ctx, r.db).First(&semester, "is_current = ?", true).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &semester, nil
}

func (r *AcademicSemesterRepository) ClearCurrent(ctx context.Context) error {
	return conn(ctx, r.db).
		Model(&domain.AcademicSemester{}).
		Where("is_current = ?", true).
		UpdateColumn("is_current", false).Error
}

func (r *AcademicSemesterRepository) SetCurrent(ctx context.Context, id uuid.UUID) error {
	result := conn(ctx, r.db).
		Model(&domain.AcademicSemester{}).
		Where("semester_id = ?", id).
		UpdateColumn("is_current", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
