package interfaces

import (
	"context"

	domain "university-api/internal/domain/academic"

	"github.com/google/uuid"
)

// TransactionManager runs fn inside one storage transaction; repositories
// called with the returned context join that transaction.
type TransactionManager interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type StudentRepository interface {
	Create(ctx context.Context, student *domain.Student) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Student, error)
	GetByStudentNumber(ctx context.Context, studentNumber string) (*domain.Student, error)
}

type CourseRepository interface {
	Create(ctx context.Context, course *domain.Course) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Course, error)
}

type AcademicSemesterRepository interface {
	Create(ctx context.Context, semester *domain.AcademicSemester) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.AcademicSemester, error)
	GetCurrent(ctx context.Context) (*domain.AcademicSemester, error)
	// ClearCurrent unsets the isCurrent flag wherever it is set
	ClearCurrent(ctx context.Context) error
	// SetCurrent marks the given semester as the current one
	SetCurrent(ctx context.Context, id uuid.UUID) error
}

type OfferedCourseRepository interface {
	Create(ctx context.Context, offered *domain.OfferedCourse) error
	// GetByID loads the offered course with its underlying course
	GetByID(ctx context.Context, id uuid.UUID) (*domain.OfferedCourse, error)
	// GetByRegistrationAndDepartment loads every offered course of a
	// department in a registration, with course prerequisites, sections,
	// schedules, rooms and buildings preloaded
	GetByRegistrationAndDepartment(ctx context.Context, registrationID, departmentID uuid.UUID) ([]*domain.OfferedCourse, error)
}

type SectionRepository interface {
	Create(ctx context.Context, section *domain.OfferedCourseSection) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.OfferedCourseSection, error)
	// IncrementEnrolled adds one enrolled student, guarded by max capacity.
	// Returns ErrSectionFull when the section is already at capacity.
	IncrementEnrolled(ctx context.Context, id uuid.UUID) error
	// DecrementEnrolled releases one seat, never going below zero.
	DecrementEnrolled(ctx context.Context, id uuid.UUID) error
}

type SemesterRegistrationRepository interface {
	Create(ctx context.Context, registration *domain.SemesterRegistration) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.SemesterRegistration, error)
	GetAll(ctx context.Context) ([]*domain.SemesterRegistration, error)
	Update(ctx context.Context, registration *domain.SemesterRegistration) error
	Delete(ctx context.Context, id uuid.UUID) error
	// GetInFlight returns the registration currently UPCOMING or ONGOING,
	// or nil when none exists
	GetInFlight(ctx context.Context) (*domain.SemesterRegistration, error)
	GetByStatus(ctx context.Context, status domain.RegistrationStatus) (*domain.SemesterRegistration, error)
}

type StudentRegistrationRepository interface {
	Create(ctx context.Context, reg *domain.StudentSemesterRegistration) error
	GetByStudentAndRegistration(ctx context.Context, studentID, registrationID uuid.UUID) (*domain.StudentSemesterRegistration, error)
	// AddCredits shifts totalCreditsTaken by delta (negative on withdrawal)
	AddCredits(ctx context.Context, studentID, registrationID uuid.UUID, delta int) error
	SetConfirmed(ctx context.Context, id uuid.UUID, confirmed bool) error
	GetConfirmedByRegistration(ctx context.Context, registrationID uuid.UUID) ([]*domain.StudentSemesterRegistration, error)
}

type RegistrationCourseRepository interface {
	Create(ctx context.Context, rc *domain.StudentSemesterRegistrationCourse) error
	// Delete removes the row by its natural key and returns the removed row
	// so callers can release its section seat; returns ErrNotFound when no
	// such enrollment exists
	Delete(ctx context.Context, registrationID, studentID, offeredCourseID uuid.UUID) (*domain.StudentSemesterRegistrationCourse, error)
	// GetByStudentAndRegistration loads the student's current selections
	// with offered course, underlying course and section preloaded
	GetByStudentAndRegistration(ctx context.Context, studentID, registrationID uuid.UUID) ([]*domain.StudentSemesterRegistrationCourse, error)
}

type EnrolledCourseRepository interface {
	Create(ctx context.Context, ec *domain.StudentEnrolledCourse) (*domain.StudentEnrolledCourse, error)
	Exists(ctx context.Context, studentID, courseID, academicSemesterID uuid.UUID) (bool, error)
	GetCompletedByStudent(ctx context.Context, studentID uuid.UUID) ([]*domain.StudentEnrolledCourse, error)
}

type MarkRepository interface {
	Create(ctx context.Context, mark *domain.StudentEnrolledCourseMark) error
	ExistsForEnrolledCourse(ctx context.Context, enrolledCourseID uuid.UUID) (bool, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.StudentSemesterPayment) error
	Exists(ctx context.Context, studentID, academicSemesterID uuid.UUID) (bool, error)
}

type ReportRepository interface {
	GetRegistrationSummary(ctx context.Context, registrationID uuid.UUID) (*domain.RegistrationSummary, error)
}
