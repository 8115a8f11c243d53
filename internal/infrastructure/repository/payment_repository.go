package repository

import (
	"context"

	domain "university-api/internal/domain/academic"
	interfaces "university-api/internal/interfaces/infrastructure"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) interfaces.PaymentRepository {
	return &PaymentRepository{
		db: db,
	}
}

func (r *PaymentRepository) Create(ctx context.Context, payment *domain.StudentSemesterPayment) error {
	return conn(ctx, r.db).Create(payment).Error
}

func (r *PaymentRepository) Exists(ctx context.Context, studentID, academicSemesterID uuid.UUID) (bool, error) {
	var count int64
	err := conn(ctx, r.db).
		Model(&domain.StudentSemesterPayment{}).
		Where("student_id = ? AND academic_semester_id = ?", studentID, academicSemesterID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
