package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	domain "university-api/internal/domain/academic"
	interfaces "university-api/internal/interfaces/infrastructure"
	serviceInterfaces "university-api/internal/interfaces/service"
	"university-api/pkg/logger"
)

var _ serviceInterfaces.PaymentService = (*PaymentService)(nil)

// PaymentService creates semester tuition records. A student gets at most one
// payment per semester, so a second call for the same pair is a no-op.
type PaymentService struct {
	paymentRepo interfaces.PaymentRepository
}

func NewPaymentService(paymentRepo interfaces.PaymentRepository) *PaymentService {
	return &PaymentService{paymentRepo: paymentRepo}
}

func (s *PaymentService) CreateSemesterPayment(ctx context.Context, studentID, academicSemesterID uuid.UUID, totalAmount int) error {
	exists, err := s.paymentRepo.Exists(ctx, studentID, academicSemesterID)
	if err != nil {
		return fmt.Errorf("failed to check existing payment: %w", err)
	}
	if exists {
		return nil
	}

	payment := &domain.StudentSemesterPayment{
		PaymentID:            uuid.New(),
		StudentID:            studentID,
		AcademicSemesterID:   academicSemesterID,
		FullPaymentAmount:    totalAmount,
		PartialPaymentAmount: totalAmount / 2,
		TotalDueAmount:       totalAmount,
		TotalPaidAmount:      0,
		PaymentStatus:        domain.PaymentPending,
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return fmt.Errorf("failed to create semester payment: %w", err)
	}

	logger.Info("Created semester payment of %d for student %s", totalAmount, studentID)
	return nil
}
