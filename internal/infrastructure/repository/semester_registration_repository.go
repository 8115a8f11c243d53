package repository

import (
	"context"

	domain "university-api/internal/domain/academic"
	interfaces "university-api/internal/interfaces/infrastructure"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SemesterRegistrationRepository implements SemesterRegistrationRepository
// using GORM
type SemesterRegistrationRepository struct {
	db *gorm.DB
}

func NewSemesterRegistrationRepository(db *gorm.DB) interfaces.SemesterRegistrationRepository {
	return &SemesterRegistrationRepository{
		db: db,
	}
}

func (r *SemesterRegistrationRepository) Create(ctx context.Context, registration *domain.SemesterRegistration) error {
	return conn(ctx, r.db).Create(registration).Error
}

func (r *SemesterRegistrationRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.SemesterRegistration, error) {
	var registration domain.SemesterRegistration
	err := conn(ctx, r.db).
		Preload("AcademicSemester").
		First(&registration, "registration_id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &registration, nil
}

func (r *SemesterRegistrationRepository) GetAll(ctx context.Context) ([]*domain.SemesterRegistration, error) {
	var registrations []*domain.SemesterRegistration
	err := conn(ctx, r.db).
		Preload("AcademicSemester").
		Order("created_at ASC").
		Find(&registrations).Error
	if err != nil {
		return nil, err
	}
	return registrations, nil
}

func (r *SemesterRegistrationRepository) Update(ctx context.Context, registration *domain.SemesterRegistration) error {
	return conn(ctx, r.db).Save(registration).Error
}

func (r *SemesterRegistrationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := conn(ctx, r.db).Delete(&domain.SemesterRegistration{}, "registration_id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *SemesterRegistrationRepository) GetInFlight(ctx context.Context) (*domain.SemesterRegistration, error) {
	var registration domain.SemesterRegistration
	err := conn(ctx, r.db).
		Preload("AcademicSemester").
		Where("status IN ?", []domain.RegistrationStatus{domain.RegistrationUpcoming, domain.RegistrationOngoing}).
		First(&registration).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &registration, nil
}

func (r *SemesterRegistrationRepository) GetByStatus(ctx context.Context, status domain.RegistrationStatus) (*domain.SemesterRegistration, error) {
	var registration domain.SemesterRegistration
	err := conn(ctx, r.db).
		Preload("AcademicSemester").
		Where("status = ?", status).
		First(&registration).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &registration, nil
}
