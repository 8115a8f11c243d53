package repository

import (
	"context"

	domain "university-api/internal/domain/academic"
	interfaces "university-api/internal/interfaces/infrastructure"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StudentRegistrationRepository persists per-student registration records.
// TotalCreditsTaken is only ever shifted through AddCredits so the change
// composes with the enrollment transaction.
type StudentRegistrationRepository struct {
	db *gorm.DB
}

func NewStudentRegistrationRepository(db *gorm.DB) interfaces.StudentRegistrationRepository {
	return &StudentRegistrationRepository{
		db: db,
	}
}

func (r *StudentRegistrationRepository) Create(ctx context.Context, reg *domain.StudentSemesterRegistration) error {
	return conn(ctx, r.db).Create(reg).Error
}

func (r *StudentRegistrationRepository) GetByStudentAndRegistration(ctx context.Context, studentID, registrationID uuid.UUID) (*domain.StudentSemesterRegistration, error) {
	var reg domain.StudentSemesterRegistration
	err := conn(ctx, r.db).
		Preload("Student").
		Where("student_id = ? AND semester_registration_id = ?", studentID, registrationID).
		First(&reg).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &reg, nil
}

func (r *StudentRegistrationRepository) AddCredits(ctx context.Context, studentID, registrationID uuid.UUID, delta int) error {
	result := conn(ctx, r.db).
		Model(&domain.StudentSemesterRegistration{}).
		Where("student_id = ? AND semester_registration_id = ?", studentID, registrationID).
		UpdateColumn("total_credits_taken", gorm.Expr("total_credits_taken + ?", delta))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *StudentRegistrationRepository) SetConfirmed(ctx context.Context, id uuid.UUID, confirmed bool) error {
	result := conn(ctx, r.db).
		Model(&domain.StudentSemesterRegistration{}).
		Where("id = ?", id).
		UpdateColumn("is_confirmed", confirmed)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *StudentRegistrationRepository) GetConfirmedByRegistration(ctx context.Context, registrationID uuid.UUID) ([]*domain.StudentSemesterRegistration, error) {
	var regs []*domain.StudentSemesterRegistration
	err := conn(ctx, r.db).
		Where("semester_registration_id = ? AND is_confirmed = ?", registrationID, true).
		Order("created_at ASC").
		Find(&regs).Error
	if err != nil {
		return nil, err
	}
	return regs, nil
}
