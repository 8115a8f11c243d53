package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	domain "university-api/internal/domain/academic"
	"university-api/internal/infrastructure/repository"
	interfaces "university-api/internal/interfaces/infrastructure"
	serviceInterfaces "university-api/internal/interfaces/service"
	"university-api/pkg/apperrors"
	"university-api/pkg/logger"
)

var _ serviceInterfaces.EnrollmentService = (*EnrollmentService)(nil)

// EnrollmentService owns the enroll/withdraw invariants. Capacity and the
// credit accumulator are denormalized counters, so every mutation updates
// the detail row and both counters inside one transaction: all three commit
// together or none do.
type EnrollmentService struct {
	studentRepo       interfaces.StudentRepository
	registrationRepo  interfaces.SemesterRegistrationRepository
	offeredCourseRepo interfaces.OfferedCourseRepository
	sectionRepo       interfaces.SectionRepository
	studentRegRepo    interfaces.StudentRegistrationRepository
	regCourseRepo     interfaces.RegistrationCourseRepository
	txManager         interfaces.TransactionManager
	cacheService      interfaces.CacheService
}

func NewEnrollmentService(
	studentRepo interfaces.StudentRepository,
	registrationRepo interfaces.SemesterRegistrationRepository,
	offeredCourseRepo interfaces.OfferedCourseRepository,
	sectionRepo interfaces.SectionRepository,
	studentRegRepo interfaces.StudentRegistrationRepository,
	regCourseRepo interfaces.RegistrationCourseRepository,
	txManager interfaces.TransactionManager,
	cacheService interfaces.CacheService,
) *EnrollmentService {
	return &EnrollmentService{
		studentRepo:       studentRepo,
		registrationRepo:  registrationRepo,
		offeredCourseRepo: offeredCourseRepo,
		sectionRepo:       sectionRepo,
		studentRegRepo:    studentRegRepo,
		regCourseRepo:     regCourseRepo,
		txManager:         txManager,
		cacheService:      cacheService,
	}
}

func (s *EnrollmentService) EnrollIntoCourse(ctx context.Context, req *domain.EnrollCourseRequest) (string, error) {
	logger.Info("Processing enrollment for student %s into offered course %s", req.StudentNumber, req.OfferedCourseID)

	student, err := s.studentRepo.GetByStudentNumber(ctx, req.StudentNumber)
	if err != nil {
		return "", fmt.Errorf("failed to resolve student: %w", err)
	}
	if student == nil {
		return "", apperrors.NotFound("student not found")
	}

	registration, err := s.registrationRepo.GetByStatus(ctx, domain.RegistrationOngoing)
	if err != nil {
		return "", fmt.Errorf("failed to resolve ongoing registration: %w", err)
	}
	if registration == nil {
		return "", apperrors.NotFound("semester registration not found")
	}

	offeredCourse, err := s.offeredCourseRepo.GetByID(ctx, req.OfferedCourseID)
	if err != nil {
		return "", fmt.Errorf("failed to resolve offered course: %w", err)
	}
	if offeredCourse == nil {
		return "", apperrors.NotFound("offered course not found")
	}

	section, err := s.sectionRepo.GetByID(ctx, req.OfferedCourseSectionID)
	if err != nil {
		return "", fmt.Errorf("failed to resolve offered course section: %w", err)
	}
	if section == nil {
		return "", apperrors.NotFound("offered course section not found")
	}
	if section.OfferedCourseID != offeredCourse.OfferedCourseID {
		return "", apperrors.BadRequest("section does not belong to the offered course")
	}

	if section.CurrentlyEnrolledStudent >= section.MaxCapacity {
		return "", apperrors.BadRequest("enrollment seat has remained full")
	}

	err = s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		regCourse := &domain.StudentSemesterRegistrationCourse{
			SemesterRegistrationID: registration.RegistrationID,
			StudentID:              student.StudentID,
			OfferedCourseID:        offeredCourse.OfferedCourseID,
			OfferedCourseSectionID: section.SectionID,
		}
		if err := s.regCourseRepo.Create(ctx, regCourse); err != nil {
			return fmt.Errorf("failed to create registration course: %w", err)
		}

		// Conditional update re-checks capacity under the transaction; the
		// pre-read above only produces the friendly error message.
		if err := s.sectionRepo.IncrementEnrolled(ctx, section.SectionID); err != nil {
			if errors.Is(err, repository.ErrSectionFull) {
				return apperrors.BadRequest("enrollment seat has remained full")
			}
			return fmt.Errorf("failed to increment section enrollment: %w", err)
		}

		if err := s.studentRegRepo.AddCredits(ctx, student.StudentID, registration.RegistrationID, offeredCourse.Course.Credits); err != nil {
			return fmt.Errorf("failed to add credits: %w", err)
		}

		return nil
	})
	if err != nil {
		return "", err
	}

	s.invalidateCaches(ctx, req.StudentNumber, section.SectionID)

	logger.Info("Student %s enrolled into course %s section %s", req.StudentNumber, offeredCourse.OfferedCourseID, section.SectionID)
	return "Successfully enrolled into course", nil
}

func (s *EnrollmentService) WithdrawFromCourse(ctx context.Context, req *domain.EnrollCourseRequest) (string, error) {
	logger.Info("Processing withdrawal for student %s from offered course %s", req.StudentNumber, req.OfferedCourseID)

	student, err := s.studentRepo.GetByStudentNumber(ctx, req.StudentNumber)
	if err != nil {
		return "", fmt.Errorf("failed to resolve student: %w", err)
	}
	if student == nil {
		return "", apperrors.NotFound("student not found")
	}

	registration, err := s.registrationRepo.GetByStatus(ctx, domain.RegistrationOngoing)
	if err != nil {
		return "", fmt.Errorf("failed to resolve ongoing registration: %w", err)
	}
	if registration == nil {
		return "", apperrors.NotFound("semester registration not found")
	}

	offeredCourse, err := s.offeredCourseRepo.GetByID(ctx, req.OfferedCourseID)
	if err != nil {
		return "", fmt.Errorf("failed to resolve offered course: %w", err)
	}
	if offeredCourse == nil {
		return "", apperrors.NotFound("offered course not found")
	}

	// The seat to release comes from the stored enrollment row, not the
	// request, so a stale section id cannot skew another section's counter.
	var enrolledSectionID uuid.UUID
	err = s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		regCourse, err := s.regCourseRepo.Delete(ctx, registration.RegistrationID, student.StudentID, offeredCourse.OfferedCourseID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return apperrors.NotFound("enrollment not found for this course")
			}
			return fmt.Errorf("failed to delete registration course: %w", err)
		}
		enrolledSectionID = regCourse.OfferedCourseSectionID

		if err := s.sectionRepo.DecrementEnrolled(ctx, enrolledSectionID); err != nil {
			return fmt.Errorf("failed to decrement section enrollment: %w", err)
		}

		if err := s.studentRegRepo.AddCredits(ctx, student.StudentID, registration.RegistrationID, -offeredCourse.Course.Credits); err != nil {
			return fmt.Errorf("failed to subtract credits: %w", err)
		}

		return nil
	})
	if err != nil {
		return "", err
	}

	s.invalidateCaches(ctx, req.StudentNumber, enrolledSectionID)

	logger.Info("Student %s withdrew from course %s", req.StudentNumber, offeredCourse.OfferedCourseID)
	return "Successfully withdrew from course", nil
}

func (s *EnrollmentService) invalidateCaches(ctx context.Context, studentNumber string, sectionID uuid.UUID) {
	if err := s.cacheService.InvalidateSection(ctx, sectionID); err != nil {
		logger.Warn("Failed to invalidate section cache for %s: %v", sectionID, err)
	}
	if err := s.cacheService.Delete(ctx, myRegistrationCacheKey(studentNumber)); err != nil {
		logger.Warn("Failed to invalidate registration cache for student %s: %v", studentNumber, err)
	}
}

// myRegistrationCacheKey is shared with the registration reads
func myRegistrationCacheKey(studentNumber string) string {
	return fmt.Sprintf("student:registration:%s", studentNumber)
}

const (
	MyRegistrationTTL    = 20 * time.Minute
	SectionEnrollmentTTL = 45 * time.Minute
)
