package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	domain "university-api/internal/domain/academic"
	"university-api/internal/infrastructure/repository"
	interfaces "university-api/internal/interfaces/infrastructure"
	serviceInterfaces "university-api/internal/interfaces/service"
	"university-api/pkg/apperrors"
	"university-api/pkg/logger"
)

var _ serviceInterfaces.SemesterRegistrationService = (*SemesterRegistrationService)(nil)

// SemesterRegistrationService governs the registration lifecycle: the admin
// CRUD surface, the student-facing workflow and semester finalization.
type SemesterRegistrationService struct {
	registrationRepo   interfaces.SemesterRegistrationRepository
	semesterRepo       interfaces.AcademicSemesterRepository
	studentRepo        interfaces.StudentRepository
	studentRegRepo     interfaces.StudentRegistrationRepository
	regCourseRepo      interfaces.RegistrationCourseRepository
	enrolledCourseRepo interfaces.EnrolledCourseRepository
	offeredCourseRepo  interfaces.OfferedCourseRepository
	paymentService     serviceInterfaces.PaymentService
	markService        serviceInterfaces.MarkService
	txManager          interfaces.TransactionManager
	cacheService       interfaces.CacheService
	tuitionPerCredit   int
}

func NewSemesterRegistrationService(
	registrationRepo interfaces.SemesterRegistrationRepository,
	semesterRepo interfaces.AcademicSemesterRepository,
	studentRepo interfaces.StudentRepository,
	studentRegRepo interfaces.StudentRegistrationRepository,
	regCourseRepo interfaces.RegistrationCourseRepository,
	enrolledCourseRepo interfaces.EnrolledCourseRepository,
	offeredCourseRepo interfaces.OfferedCourseRepository,
	paymentService serviceInterfaces.PaymentService,
	markService serviceInterfaces.MarkService,
	txManager interfaces.TransactionManager,
	cacheService interfaces.CacheService,
	tuitionPerCredit int,
) *SemesterRegistrationService {
	return &SemesterRegistrationService{
		registrationRepo:   registrationRepo,
		semesterRepo:       semesterRepo,
		studentRepo:        studentRepo,
		studentRegRepo:     studentRegRepo,
		regCourseRepo:      regCourseRepo,
		enrolledCourseRepo: enrolledCourseRepo,
		offeredCourseRepo:  offeredCourseRepo,
		paymentService:     paymentService,
		markService:        markService,
		txManager:          txManager,
		cacheService:       cacheService,
		tuitionPerCredit:   tuitionPerCredit,
	}
}

func (s *SemesterRegistrationService) Create(ctx context.Context, req *domain.CreateSemesterRegistrationRequest) (*domain.SemesterRegistration, error) {
	inFlight, err := s.registrationRepo.GetInFlight(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check in-flight registration: %w", err)
	}
	if inFlight != nil {
		return nil, apperrors.Conflict("there is already an %s semester registration", inFlight.Status)
	}

	semester, err := s.semesterRepo.GetByID(ctx, req.AcademicSemesterID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve academic semester: %w", err)
	}
	if semester == nil {
		return nil, apperrors.NotFound("academic semester not found")
	}

	registration := &domain.SemesterRegistration{
		RegistrationID:     uuid.New(),
		AcademicSemesterID: semester.SemesterID,
		Status:             domain.RegistrationUpcoming,
		MinCredit:          req.MinCredit,
		MaxCredit:          req.MaxCredit,
		StartDate:          req.StartDate,
		EndDate:            req.EndDate,
	}
	if err := s.registrationRepo.Create(ctx, registration); err != nil {
		return nil, fmt.Errorf("failed to create semester registration: %w", err)
	}

	logger.Info("Created semester registration %s for semester %s", registration.RegistrationID, semester.Code)
	return registration, nil
}

func (s *SemesterRegistrationService) GetByID(ctx context.Context, id uuid.UUID) (*domain.SemesterRegistration, error) {
	registration, err := s.registrationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get semester registration: %w", err)
	}
	if registration == nil {
		return nil, apperrors.NotFound("semester registration not found")
	}
	return registration, nil
}

func (s *SemesterRegistrationService) GetAll(ctx context.Context) ([]*domain.SemesterRegistration, error) {
	registrations, err := s.registrationRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list semester registrations: %w", err)
	}
	return registrations, nil
}

func (s *SemesterRegistrationService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateSemesterRegistrationRequest) (*domain.SemesterRegistration, error) {
	registration, err := s.registrationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get semester registration: %w", err)
	}
	if registration == nil {
		return nil, apperrors.BadRequest("semester registration not found")
	}

	if req.Status != nil {
		if !domain.IsValidStatus(*req.Status) {
			return nil, apperrors.BadRequest("invalid registration status: %s", *req.Status)
		}
		if err := domain.ValidateStatusTransition(registration.Status, *req.Status); err != nil {
			return nil, apperrors.BadRequest("%s", err.Error())
		}
		registration.Status = *req.Status
	}
	if req.MinCredit != nil {
		registration.MinCredit = *req.MinCredit
	}
	if req.MaxCredit != nil {
		registration.MaxCredit = *req.MaxCredit
	}
	if registration.MaxCredit < registration.MinCredit {
		return nil, apperrors.BadRequest("max credit cannot be lower than min credit")
	}
	if req.StartDate != nil {
		registration.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		registration.EndDate = *req.EndDate
	}

	if err := s.registrationRepo.Update(ctx, registration); err != nil {
		return nil, fmt.Errorf("failed to update semester registration: %w", err)
	}

	logger.Info("Updated semester registration %s, status %s", registration.RegistrationID, registration.Status)
	return registration, nil
}

func (s *SemesterRegistrationService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.registrationRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NotFound("semester registration not found")
		}
		return fmt.Errorf("failed to delete semester registration: %w", err)
	}
	return nil
}

// StartMyRegistration lazily creates the student's registration record for
// the in-flight cycle. It is idempotent: calling it again returns the
// existing record.
func (s *SemesterRegistrationService) StartMyRegistration(ctx context.Context, studentNumber string) (*domain.MyRegistrationResponse, error) {
	student, err := s.studentRepo.GetByStudentNumber(ctx, studentNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve student: %w", err)
	}
	if student == nil {
		return nil, apperrors.BadRequest("student not found")
	}

	registration, err := s.registrationRepo.GetInFlight(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve in-flight registration: %w", err)
	}
	if registration == nil {
		return nil, apperrors.BadRequest("no semester registration found")
	}
	if registration.Status == domain.RegistrationUpcoming {
		return nil, apperrors.BadRequest("registration is not started yet")
	}

	studentReg, err := s.studentRegRepo.GetByStudentAndRegistration(ctx, student.StudentID, registration.RegistrationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get student registration: %w", err)
	}
	if studentReg == nil {
		studentReg = &domain.StudentSemesterRegistration{
			ID:                     uuid.New(),
			StudentID:              student.StudentID,
			SemesterRegistrationID: registration.RegistrationID,
		}
		if err := s.studentRegRepo.Create(ctx, studentReg); err != nil {
			return nil, fmt.Errorf("failed to create student registration: %w", err)
		}
		logger.Info("Student %s started registration %s", studentNumber, registration.RegistrationID)
	}

	return &domain.MyRegistrationResponse{
		SemesterRegistration:        registration,
		StudentSemesterRegistration: studentReg,
	}, nil
}

func (s *SemesterRegistrationService) ConfirmMyRegistration(ctx context.Context, studentNumber string) (string, error) {
	registration, err := s.registrationRepo.GetByStatus(ctx, domain.RegistrationOngoing)
	if err != nil {
		return "", fmt.Errorf("failed to resolve ongoing registration: %w", err)
	}
	if registration == nil {
		return "", apperrors.BadRequest("no ongoing semester registration")
	}

	student, err := s.studentRepo.GetByStudentNumber(ctx, studentNumber)
	if err != nil {
		return "", fmt.Errorf("failed to resolve student: %w", err)
	}
	if student == nil {
		return "", apperrors.BadRequest("student not found")
	}

	studentReg, err := s.studentRegRepo.GetByStudentAndRegistration(ctx, student.StudentID, registration.RegistrationID)
	if err != nil {
		return "", fmt.Errorf("failed to get student registration: %w", err)
	}
	if studentReg == nil {
		return "", apperrors.BadRequest("you are not registered for this semester")
	}

	if studentReg.TotalCreditsTaken == 0 {
		return "", apperrors.BadRequest("you cannot confirm your registration because you have not taken any courses")
	}
	if studentReg.TotalCreditsTaken < registration.MinCredit || studentReg.TotalCreditsTaken > registration.MaxCredit {
		return "", apperrors.BadRequest("you can take only %d to %d credits", registration.MinCredit, registration.MaxCredit)
	}

	if err := s.studentRegRepo.SetConfirmed(ctx, studentReg.ID, true); err != nil {
		return "", fmt.Errorf("failed to confirm registration: %w", err)
	}

	if err := s.cacheService.Delete(ctx, myRegistrationCacheKey(studentNumber)); err != nil {
		logger.Warn("Failed to invalidate registration cache for student %s: %v", studentNumber, err)
	}

	logger.Info("Student %s confirmed registration with %d credits", studentNumber, studentReg.TotalCreditsTaken)
	return "Your registration has been confirmed", nil
}

func (s *SemesterRegistrationService) GetMyRegistration(ctx context.Context, studentNumber string) (*domain.MyRegistrationResponse, error) {
	cacheKey := myRegistrationCacheKey(studentNumber)
	if cached, err := s.cacheService.Get(ctx, cacheKey); err == nil && cached != "" {
		var response domain.MyRegistrationResponse
		if err := json.Unmarshal([]byte(cached), &response); err == nil {
			return &response, nil
		}
	}

	student, err := s.studentRepo.GetByStudentNumber(ctx, studentNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve student: %w", err)
	}
	if student == nil {
		return nil, apperrors.BadRequest("student not found")
	}

	registration, err := s.registrationRepo.GetByStatus(ctx, domain.RegistrationOngoing)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve ongoing registration: %w", err)
	}

	var studentReg *domain.StudentSemesterRegistration
	if registration != nil {
		studentReg, err = s.studentRegRepo.GetByStudentAndRegistration(ctx, student.StudentID, registration.RegistrationID)
		if err != nil {
			return nil, fmt.Errorf("failed to get student registration: %w", err)
		}
	}

	response := &domain.MyRegistrationResponse{
		SemesterRegistration:        registration,
		StudentSemesterRegistration: studentReg,
	}

	// Only a found registration is worth caching. Caching the empty response
	// would hide a registration that turns ONGOING until the TTL expires.
	if registration != nil {
		if payload, err := json.Marshal(response); err == nil {
			if err := s.cacheService.Set(ctx, cacheKey, string(payload), MyRegistrationTTL); err != nil {
				logger.Warn("Failed to cache registration for student %s: %v", studentNumber, err)
			}
		}
	}

	return response, nil
}

func (s *SemesterRegistrationService) GetMySemesterRegCourses(ctx context.Context, studentNumber string) ([]*domain.AvailableCourseView, error) {
	student, err := s.studentRepo.GetByStudentNumber(ctx, studentNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve student: %w", err)
	}
	if student == nil {
		return nil, apperrors.BadRequest("student not found")
	}

	registration, err := s.registrationRepo.GetInFlight(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve in-flight registration: %w", err)
	}
	if registration == nil {
		return nil, apperrors.BadRequest("no semester registration found")
	}

	completed, err := s.enrolledCourseRepo.GetCompletedByStudent(ctx, student.StudentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load completed courses: %w", err)
	}

	taken, err := s.regCourseRepo.GetByStudentAndRegistration(ctx, student.StudentID, registration.RegistrationID)
	if err != nil {
		return nil, fmt.Errorf("failed to load current selections: %w", err)
	}

	offered, err := s.offeredCourseRepo.GetByRegistrationAndDepartment(ctx, registration.RegistrationID, student.AcademicDepartmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load offered courses: %w", err)
	}

	views := FilterAvailableCourses(offered, completed, taken)
	s.annotateOccupancy(ctx, views)
	return views, nil
}

// annotateOccupancy overlays cached section occupancy onto the views so the
// listing reflects recent enrollments without another round trip per section.
func (s *SemesterRegistrationService) annotateOccupancy(ctx context.Context, views []*domain.AvailableCourseView) {
	for _, view := range views {
		for i := range view.Sections {
			section := &view.Sections[i]
			count, err := s.cacheService.GetSectionEnrollment(ctx, section.SectionID)
			if err != nil {
				if err := s.cacheService.SetSectionEnrollment(ctx, section.SectionID, section.CurrentlyEnrolledStudent, SectionEnrollmentTTL); err != nil {
					logger.Debug("Failed to cache section enrollment for %s: %v", section.SectionID, err)
				}
				continue
			}
			section.CurrentlyEnrolledStudent = count
		}
	}
}

// StartNewSemester finalizes an ended registration: the semester becomes
// current, and every confirmed student gets a payment record plus permanent
// enrolled-course and mark records. The whole flip runs in one transaction.
func (s *SemesterRegistrationService) StartNewSemester(ctx context.Context, registrationID uuid.UUID) (string, error) {
	registration, err := s.registrationRepo.GetByID(ctx, registrationID)
	if err != nil {
		return "", fmt.Errorf("failed to get semester registration: %w", err)
	}
	if registration == nil {
		return "", apperrors.BadRequest("semester registration not found")
	}
	if registration.Status != domain.RegistrationEnded {
		return "", apperrors.BadRequest("semester registration is not ended yet")
	}

	semester, err := s.semesterRepo.GetByID(ctx, registration.AcademicSemesterID)
	if err != nil {
		return "", fmt.Errorf("failed to resolve academic semester: %w", err)
	}
	if semester == nil {
		return "", apperrors.BadRequest("academic semester not found")
	}
	if semester.IsCurrent {
		return "", apperrors.Conflict("semester is already started")
	}

	err = s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.semesterRepo.ClearCurrent(ctx); err != nil {
			return fmt.Errorf("failed to clear current semester: %w", err)
		}
		if err := s.semesterRepo.SetCurrent(ctx, semester.SemesterID); err != nil {
			return fmt.Errorf("failed to set current semester: %w", err)
		}

		confirmed, err := s.studentRegRepo.GetConfirmedByRegistration(ctx, registration.RegistrationID)
		if err != nil {
			return fmt.Errorf("failed to load confirmed registrations: %w", err)
		}

		for _, studentReg := range confirmed {
			if studentReg.TotalCreditsTaken > 0 {
				total := studentReg.TotalCreditsTaken * s.tuitionPerCredit
				if err := s.paymentService.CreateSemesterPayment(ctx, studentReg.StudentID, semester.SemesterID, total); err != nil {
					return fmt.Errorf("failed to create semester payment: %w", err)
				}
			}

			courses, err := s.regCourseRepo.GetByStudentAndRegistration(ctx, studentReg.StudentID, registration.RegistrationID)
			if err != nil {
				return fmt.Errorf("failed to load registration courses: %w", err)
			}

			for _, regCourse := range courses {
				exists, err := s.enrolledCourseRepo.Exists(ctx, regCourse.StudentID, regCourse.OfferedCourse.CourseID, semester.SemesterID)
				if err != nil {
					return fmt.Errorf("failed to check enrolled course: %w", err)
				}
				if exists {
					continue
				}

				enrolled, err := s.enrolledCourseRepo.Create(ctx, &domain.StudentEnrolledCourse{
					EnrolledCourseID:   uuid.New(),
					StudentID:          regCourse.StudentID,
					CourseID:           regCourse.OfferedCourse.CourseID,
					AcademicSemesterID: semester.SemesterID,
					Status:             domain.EnrolledOngoing,
				})
				if err != nil {
					return fmt.Errorf("failed to create enrolled course: %w", err)
				}

				if err := s.markService.CreateDefaultMark(ctx, regCourse.StudentID, enrolled.EnrolledCourseID, semester.SemesterID); err != nil {
					return fmt.Errorf("failed to create default mark: %w", err)
				}
			}
		}

		return nil
	})
	if err != nil {
		return "", err
	}

	logger.Info("Semester %s started from registration %s", semester.Code, registration.RegistrationID)
	return "Semester started successfully", nil
}
