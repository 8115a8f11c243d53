package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	domain "university-api/internal/domain/academic"
	"university-api/internal/infrastructure/cache"
	"university-api/internal/infrastructure/repository"
	interfaces "university-api/internal/interfaces/infrastructure"
)

var _ interfaces.CacheService = (*memoryCache)(nil)

const testTuitionPerCredit = 5000

// memoryCache is a map-backed CacheService for tests that assert caching
// behavior; the default environment uses the noop cache instead.
type memoryCache struct {
	values   map[string]string
	sections map[uuid.UUID]int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{
		values:   make(map[string]string),
		sections: make(map[uuid.UUID]int),
	}
}

func (m *memoryCache) GetSectionEnrollment(ctx context.Context, sectionID uuid.UUID) (int, error) {
	count, ok := m.sections[sectionID]
	if !ok {
		return -1, errors.New("cache miss")
	}
	return count, nil
}

func (m *memoryCache) SetSectionEnrollment(ctx context.Context, sectionID uuid.UUID, count int, ttl time.Duration) error {
	m.sections[sectionID] = count
	return nil
}

func (m *memoryCache) InvalidateSection(ctx context.Context, sectionID uuid.UUID) error {
	delete(m.sections, sectionID)
	return nil
}

func (m *memoryCache) Get(ctx context.Context, key string) (string, error) {
	value, ok := m.values[key]
	if !ok {
		return "", errors.New("cache miss")
	}
	return value, nil
}

func (m *memoryCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	m.values[key] = value
	return nil
}

func (m *memoryCache) Delete(ctx context.Context, key string) error {
	delete(m.values, key)
	return nil
}

func (m *memoryCache) Health(ctx context.Context) error { return nil }

func (m *memoryCache) Close() error { return nil }

// testEnv wires the services against the in-memory repositories
type testEnv struct {
	students      *repository.MockStudentRepository
	semesters     *repository.MockAcademicSemesterRepository
	registrations *repository.MockSemesterRegistrationRepository
	studentRegs   *repository.MockStudentRegistrationRepository
	regCourses    *repository.MockRegistrationCourseRepository
	enrolled      *repository.MockEnrolledCourseRepository
	offered       *repository.MockOfferedCourseRepository
	sections      *repository.MockSectionRepository
	marks         *repository.MockMarkRepository
	payments      *repository.MockPaymentRepository

	enrollmentService   *EnrollmentService
	registrationService *SemesterRegistrationService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		students:      repository.NewMockStudentRepository(),
		semesters:     repository.NewMockAcademicSemesterRepository(),
		registrations: repository.NewMockSemesterRegistrationRepository(),
		studentRegs:   repository.NewMockStudentRegistrationRepository(),
		regCourses:    repository.NewMockRegistrationCourseRepository(),
		enrolled:      repository.NewMockEnrolledCourseRepository(),
		offered:       repository.NewMockOfferedCourseRepository(),
		sections:      repository.NewMockSectionRepository(),
		marks:         repository.NewMockMarkRepository(),
		payments:      repository.NewMockPaymentRepository(),
	}

	txManager := repository.NewMockTransactionManager()
	cacheService := cache.NewNoopCache()

	env.enrollmentService = NewEnrollmentService(
		env.students,
		env.registrations,
		env.offered,
		env.sections,
		env.studentRegs,
		env.regCourses,
		txManager,
		cacheService,
	)

	env.registrationService = NewSemesterRegistrationService(
		env.registrations,
		env.semesters,
		env.students,
		env.studentRegs,
		env.regCourses,
		env.enrolled,
		env.offered,
		NewPaymentService(env.payments),
		NewMarkService(env.marks),
		txManager,
		cacheService,
		testTuitionPerCredit,
	)

	return env
}

func (env *testEnv) seedStudent(t *testing.T, studentNumber string) *domain.Student {
	t.Helper()
	student := &domain.Student{
		StudentID:            uuid.New(),
		StudentNumber:        studentNumber,
		FirstName:            "Test",
		LastName:             "Student",
		Email:                studentNumber + "@university.edu",
		AcademicDepartmentID: uuid.New(),
	}
	if err := env.students.Create(context.Background(), student); err != nil {
		t.Fatalf("failed to seed student: %v", err)
	}
	return student
}

func (env *testEnv) seedSemester(t *testing.T, code string, isCurrent bool) *domain.AcademicSemester {
	t.Helper()
	semester := &domain.AcademicSemester{
		SemesterID: uuid.New(),
		Title:      "Semester " + code,
		Code:       code,
		Year:       2026,
		StartDate:  time.Now(),
		EndDate:    time.Now().AddDate(0, 4, 0),
		IsCurrent:  isCurrent,
	}
	if err := env.semesters.Create(context.Background(), semester); err != nil {
		t.Fatalf("failed to seed semester: %v", err)
	}
	return semester
}

func (env *testEnv) seedRegistration(t *testing.T, semesterID uuid.UUID, status domain.RegistrationStatus, minCredit, maxCredit int) *domain.SemesterRegistration {
	t.Helper()
	registration := &domain.SemesterRegistration{
		RegistrationID:     uuid.New(),
		AcademicSemesterID: semesterID,
		Status:             status,
		MinCredit:          minCredit,
		MaxCredit:          maxCredit,
		StartDate:          time.Now(),
		EndDate:            time.Now().AddDate(0, 1, 0),
	}
	if err := env.registrations.Create(context.Background(), registration); err != nil {
		t.Fatalf("failed to seed registration: %v", err)
	}
	return registration
}

// seedOfferedCourse creates a course, its offering for the given registration
// and department, and one section with the given capacity
func (env *testEnv) seedOfferedCourse(t *testing.T, registrationID, departmentID uuid.UUID, credits, maxCapacity int) (*domain.OfferedCourse, *domain.OfferedCourseSection) {
	t.Helper()
	course := domain.Course{
		CourseID:   uuid.New(),
		CourseCode: "CSE-" + uuid.NewString()[:8],
		Title:      "Test Course",
		Credits:    credits,
	}

	section := &domain.OfferedCourseSection{
		SectionID:   uuid.New(),
		Title:       "Section A",
		MaxCapacity: maxCapacity,
	}

	offered := &domain.OfferedCourse{
		OfferedCourseID:        uuid.New(),
		CourseID:               course.CourseID,
		SemesterRegistrationID: registrationID,
		AcademicDepartmentID:   departmentID,
		Course:                 course,
	}
	section.OfferedCourseID = offered.OfferedCourseID
	offered.Sections = []domain.OfferedCourseSection{*section}

	if err := env.offered.Create(context.Background(), offered); err != nil {
		t.Fatalf("failed to seed offered course: %v", err)
	}
	if err := env.sections.Create(context.Background(), section); err != nil {
		t.Fatalf("failed to seed section: %v", err)
	}
	return offered, section
}

func (env *testEnv) seedStudentRegistration(t *testing.T, studentID, registrationID uuid.UUID, credits int, confirmed bool) *domain.StudentSemesterRegistration {
	t.Helper()
	reg := &domain.StudentSemesterRegistration{
		ID:                     uuid.New(),
		StudentID:              studentID,
		SemesterRegistrationID: registrationID,
		TotalCreditsTaken:      credits,
		IsConfirmed:            confirmed,
	}
	if err := env.studentRegs.Create(context.Background(), reg); err != nil {
		t.Fatalf("failed to seed student registration: %v", err)
	}
	return reg
}
