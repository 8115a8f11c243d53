package service

import (
	"context"

	domain "university-api/internal/domain/academic"

	"github.com/google/uuid"
)

// EnrollmentService owns the enroll/withdraw invariants: capacity, credit
// accumulation and the atomicity of the counter updates. Both the semester
// registration entry points and any direct enrollment endpoint go through it.
type EnrollmentService interface {
	EnrollIntoCourse(ctx context.Context, req *domain.EnrollCourseRequest) (string, error)
	WithdrawFromCourse(ctx context.Context, req *domain.EnrollCourseRequest) (string, error)
}

// SemesterRegistrationService governs the registration lifecycle and the
// student-facing registration workflow.
type SemesterRegistrationService interface {
	Create(ctx context.Context, req *domain.CreateSemesterRegistrationRequest) (*domain.SemesterRegistration, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.SemesterRegistration, error)
	GetAll(ctx context.Context) ([]*domain.SemesterRegistration, error)
	Update(ctx context.Context, id uuid.UUID, req *domain.UpdateSemesterRegistrationRequest) (*domain.SemesterRegistration, error)
	Delete(ctx context.Context, id uuid.UUID) error

	StartMyRegistration(ctx context.Context, studentNumber string) (*domain.MyRegistrationResponse, error)
	ConfirmMyRegistration(ctx context.Context, studentNumber string) (string, error)
	GetMyRegistration(ctx context.Context, studentNumber string) (*domain.MyRegistrationResponse, error)
	GetMySemesterRegCourses(ctx context.Context, studentNumber string) ([]*domain.AvailableCourseView, error)

	StartNewSemester(ctx context.Context, registrationID uuid.UUID) (string, error)
}

// PaymentService creates tuition payment records; consumed inside the
// finalization transaction.
type PaymentService interface {
	CreateSemesterPayment(ctx context.Context, studentID, academicSemesterID uuid.UUID, totalAmount int) error
}

// MarkService seeds default mark records; consumed inside the finalization
// transaction.
type MarkService interface {
	CreateDefaultMark(ctx context.Context, studentID, enrolledCourseID, academicSemesterID uuid.UUID) error
}
