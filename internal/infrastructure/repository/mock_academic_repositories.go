package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	domain "university-api/internal/domain/academic"
	interfaces "university-api/internal/interfaces/infrastructure"
)

// In-memory implementations of the repository interfaces for testing/demo
// purposes. They mirror the storage semantics of the GORM repositories:
// lookups return (nil, nil) when nothing matches, deletes of missing rows
// return ErrNotFound, and the section counter honors capacity.

// MockTransactionManager runs the function directly; the in-memory stores
// have no transactions to join.
type MockTransactionManager struct{}

func NewMockTransactionManager() *MockTransactionManager {
	return &MockTransactionManager{}
}

func (m *MockTransactionManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type MockStudentRepository struct {
	mutex    sync.RWMutex
	Students map[uuid.UUID]*domain.Student
}

func NewMockStudentRepository() *MockStudentRepository {
	return &MockStudentRepository{Students: make(map[uuid.UUID]*domain.Student)}
}

func (r *MockStudentRepository) Create(ctx context.Context, student *domain.Student) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.Students[student.StudentID] = student
	return nil
}

func (r *MockStudentRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Student, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return r.Students[id], nil
}

func (r *MockStudentRepository) GetByStudentNumber(ctx context.Context, studentNumber string) (*domain.Student, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	for _, student := range r.Students {
		if student.StudentNumber == studentNumber {
			return student, nil
		}
	}
	return nil, nil
}

type MockCourseRepository struct {
	mutex   sync.RWMutex
	Courses map[uuid.UUID]*domain.Course
}

func NewMockCourseRepository() *MockCourseRepository {
	return &MockCourseRepository{Courses: make(map[uuid.UUID]*domain.Course)}
}

func (r *MockCourseRepository) Create(ctx context.Context, course *domain.Course) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.Courses[course.CourseID] = course
	return nil
}

func (r *MockCourseRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Course, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return r.Courses[id], nil
}

type MockAcademicSemesterRepository struct {
	mutex     sync.RWMutex
	Semesters map[uuid.UUID]*domain.AcademicSemester
}

func NewMockAcademicSemesterRepository() *MockAcademicSemesterRepository {
	return &MockAcademicSemesterRepository{Semesters: make(map[uuid.UUID]*domain.AcademicSemester)}
}

func (r *MockAcademicSemesterRepository) Create(ctx context.Context, semester *domain.AcademicSemester) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.Semesters[semester.SemesterID] = semester
	return nil
}

func (r *MockAcademicSemesterRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.AcademicSemester, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return r.Semesters[id], nil
}

func (r *MockAcademicSemesterRepository) GetCurrent(ctx context.Context) (*domain.AcademicSemester, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	for _, semester := range r.Semesters {
		if semester.IsCurrent {
			return semester, nil
		}
	}
	return nil, nil
}

func (r *MockAcademicSemesterRepository) ClearCurrent(ctx context.Context) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	for _, semester := range r.Semesters {
		semester.IsCurrent = false
	}
	return nil
}

func (r *MockAcademicSemesterRepository) SetCurrent(ctx context.Context, id uuid.UUID) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	semester, exists := r.Semesters[id]
	if !exists {
		return ErrNotFound
	}
	semester.IsCurrent = true
	semester.UpdatedAt = time.Now()
	return nil
}

type MockOfferedCourseRepository struct {
	mutex          sync.RWMutex
	OfferedCourses map[uuid.UUID]*domain.OfferedCourse
}

func NewMockOfferedCourseRepository() *MockOfferedCourseRepository {
	return &MockOfferedCourseRepository{OfferedCourses: make(map[uuid.UUID]*domain.OfferedCourse)}
}

func (r *MockOfferedCourseRepository) Create(ctx context.Context, offered *domain.OfferedCourse) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.OfferedCourses[offered.OfferedCourseID] = offered
	return nil
}

func (r *MockOfferedCourseRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.OfferedCourse, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return r.OfferedCourses[id], nil
}

func (r *MockOfferedCourseRepository) GetByRegistrationAndDepartment(ctx context.Context, registrationID, departmentID uuid.UUID) ([]*domain.OfferedCourse, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	var result []*domain.OfferedCourse
	for _, offered := range r.OfferedCourses {
		if offered.SemesterRegistrationID == registrationID && offered.AcademicDepartmentID == departmentID {
			result = append(result, offered)
		}
	}
	return result, nil
}

type MockSectionRepository struct {
	mutex    sync.RWMutex
	Sections map[uuid.UUID]*domain.OfferedCourseSection
}

func NewMockSectionRepository() *MockSectionRepository {
	return &MockSectionRepository{Sections: make(map[uuid.UUID]*domain.OfferedCourseSection)}
}

func (r *MockSectionRepository) Create(ctx context.Context, section *domain.OfferedCourseSection) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.Sections[section.SectionID] = section
	return nil
}

func (r *MockSectionRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.OfferedCourseSection, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return r.Sections[id], nil
}

func (r *MockSectionRepository) IncrementEnrolled(ctx context.Context, id uuid.UUID) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	section, exists := r.Sections[id]
	if !exists {
		return ErrNotFound
	}
	if section.CurrentlyEnrolledStudent >= section.MaxCapacity {
		return ErrSectionFull
	}
	section.CurrentlyEnrolledStudent++
	return nil
}

func (r *MockSectionRepository) DecrementEnrolled(ctx context.Context, id uuid.UUID) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	section, exists := r.Sections[id]
	if !exists {
		return ErrNotFound
	}
	if section.CurrentlyEnrolledStudent > 0 {
		section.CurrentlyEnrolledStudent--
	}
	return nil
}

type MockSemesterRegistrationRepository struct {
	mutex         sync.RWMutex
	Registrations map[uuid.UUID]*domain.SemesterRegistration
}

func NewMockSemesterRegistrationRepository() *MockSemesterRegistrationRepository {
	return &MockSemesterRegistrationRepository{Registrations: make(map[uuid.UUID]*domain.SemesterRegistration)}
}

func (r *MockSemesterRegistrationRepository) Create(ctx context.Context, registration *domain.SemesterRegistration) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.Registrations[registration.RegistrationID] = registration
	return nil
}

func (r *MockSemesterRegistrationRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.SemesterRegistration, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return r.Registrations[id], nil
}

func (r *MockSemesterRegistrationRepository) GetAll(ctx context.Context) ([]*domain.SemesterRegistration, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	result := make([]*domain.SemesterRegistration, 0, len(r.Registrations))
	for _, registration := range r.Registrations {
		result = append(result, registration)
	}
	return result, nil
}

func (r *MockSemesterRegistrationRepository) Update(ctx context.Context, registration *domain.SemesterRegistration) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	if _, exists := r.Registrations[registration.RegistrationID]; !exists {
		return ErrNotFound
	}
	registration.UpdatedAt = time.Now()
	r.Registrations[registration.RegistrationID] = registration
	return nil
}

func (r *MockSemesterRegistrationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	if _, exists := r.Registrations[id]; !exists {
		return ErrNotFound
	}
	delete(r.Registrations, id)
	return nil
}

func (r *MockSemesterRegistrationRepository) GetInFlight(ctx context.Context) (*domain.SemesterRegistration, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	for _, registration := range r.Registrations {
		if registration.Status == domain.RegistrationUpcoming || registration.Status == domain.RegistrationOngoing {
			return registration, nil
		}
	}
	return nil, nil
}

func (r *MockSemesterRegistrationRepository) GetByStatus(ctx context.Context, status domain.RegistrationStatus) (*domain.SemesterRegistration, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	for _, registration := range r.Registrations {
		if registration.Status == status {
			return registration, nil
		}
	}
	return nil, nil
}

type MockStudentRegistrationRepository struct {
	mutex         sync.RWMutex
	Registrations map[uuid.UUID]*domain.StudentSemesterRegistration
}

func NewMockStudentRegistrationRepository() *MockStudentRegistrationRepository {
	return &MockStudentRegistrationRepository{Registrations: make(map[uuid.UUID]*domain.StudentSemesterRegistration)}
}

func (r *MockStudentRegistrationRepository) Create(ctx context.Context, reg *domain.StudentSemesterRegistration) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.Registrations[reg.ID] = reg
	return nil
}

func (r *MockStudentRegistrationRepository) GetByStudentAndRegistration(ctx context.Context, studentID, registrationID uuid.UUID) (*domain.StudentSemesterRegistration, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	for _, reg := range r.Registrations {
		if reg.StudentID == studentID && reg.SemesterRegistrationID == registrationID {
			return reg, nil
		}
	}
	return nil, nil
}

func (r *MockStudentRegistrationRepository) AddCredits(ctx context.Context, studentID, registrationID uuid.UUID, delta int) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	for _, reg := range r.Registrations {
		if reg.StudentID == studentID && reg.SemesterRegistrationID == registrationID {
			reg.TotalCreditsTaken += delta
			reg.UpdatedAt = time.Now()
			return nil
		}
	}
	return ErrNotFound
}

func (r *MockStudentRegistrationRepository) SetConfirmed(ctx context.Context, id uuid.UUID, confirmed bool) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	reg, exists := r.Registrations[id]
	if !exists {
		return ErrNotFound
	}
	reg.IsConfirmed = confirmed
	reg.UpdatedAt = time.Now()
	return nil
}

func (r *MockStudentRegistrationRepository) GetConfirmedByRegistration(ctx context.Context, registrationID uuid.UUID) ([]*domain.StudentSemesterRegistration, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	var result []*domain.StudentSemesterRegistration
	for _, reg := range r.Registrations {
		if reg.SemesterRegistrationID == registrationID && reg.IsConfirmed {
			result = append(result, reg)
		}
	}
	return result, nil
}

type regCourseKey struct {
	registrationID  uuid.UUID
	studentID       uuid.UUID
	offeredCourseID uuid.UUID
}

type MockRegistrationCourseRepository struct {
	mutex   sync.RWMutex
	Courses map[regCourseKey]*domain.StudentSemesterRegistrationCourse
}

func NewMockRegistrationCourseRepository() *MockRegistrationCourseRepository {
	return &MockRegistrationCourseRepository{Courses: make(map[regCourseKey]*domain.StudentSemesterRegistrationCourse)}
}

func (r *MockRegistrationCourseRepository) Create(ctx context.Context, rc *domain.StudentSemesterRegistrationCourse) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	key := regCourseKey{rc.SemesterRegistrationID, rc.StudentID, rc.OfferedCourseID}
	if _, exists := r.Courses[key]; exists {
		return ErrDuplicateKey
	}
	r.Courses[key] = rc
	return nil
}

func (r *MockRegistrationCourseRepository) Delete(ctx context.Context, registrationID, studentID, offeredCourseID uuid.UUID) (*domain.StudentSemesterRegistrationCourse, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	key := regCourseKey{registrationID, studentID, offeredCourseID}
	rc, exists := r.Courses[key]
	if !exists {
		return nil, ErrNotFound
	}
	delete(r.Courses, key)
	return rc, nil
}

func (r *MockRegistrationCourseRepository) GetByStudentAndRegistration(ctx context.Context, studentID, registrationID uuid.UUID) ([]*domain.StudentSemesterRegistrationCourse, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	var result []*domain.StudentSemesterRegistrationCourse
	for _, rc := range r.Courses {
		if rc.StudentID == studentID && rc.SemesterRegistrationID == registrationID {
			result = append(result, rc)
		}
	}
	return result, nil
}

type MockEnrolledCourseRepository struct {
	mutex           sync.RWMutex
	EnrolledCourses map[uuid.UUID]*domain.StudentEnrolledCourse
}

func NewMockEnrolledCourseRepository() *MockEnrolledCourseRepository {
	return &MockEnrolledCourseRepository{EnrolledCourses: make(map[uuid.UUID]*domain.StudentEnrolledCourse)}
}

func (r *MockEnrolledCourseRepository) Create(ctx context.Context, ec *domain.StudentEnrolledCourse) (*domain.StudentEnrolledCourse, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	if ec.EnrolledCourseID == uuid.Nil {
		ec.EnrolledCourseID = uuid.New()
	}
	r.EnrolledCourses[ec.EnrolledCourseID] = ec
	return ec, nil
}

func (r *MockEnrolledCourseRepository) Exists(ctx context.Context, studentID, courseID, academicSemesterID uuid.UUID) (bool, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	for _, ec := range r.EnrolledCourses {
		if ec.StudentID == studentID && ec.CourseID == courseID && ec.AcademicSemesterID == academicSemesterID {
			return true, nil
		}
	}
	return false, nil
}

func (r *MockEnrolledCourseRepository) GetCompletedByStudent(ctx context.Context, studentID uuid.UUID) ([]*domain.StudentEnrolledCourse, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	var result []*domain.StudentEnrolledCourse
	for _, ec := range r.EnrolledCourses {
		if ec.StudentID == studentID && ec.Status == domain.EnrolledCompleted {
			result = append(result, ec)
		}
	}
	return result, nil
}

type MockMarkRepository struct {
	mutex sync.RWMutex
	Marks map[uuid.UUID]*domain.StudentEnrolledCourseMark
}

func NewMockMarkRepository() *MockMarkRepository {
	return &MockMarkRepository{Marks: make(map[uuid.UUID]*domain.StudentEnrolledCourseMark)}
}

func (r *MockMarkRepository) Create(ctx context.Context, mark *domain.StudentEnrolledCourseMark) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.Marks[mark.MarkID] = mark
	return nil
}

func (r *MockMarkRepository) ExistsForEnrolledCourse(ctx context.Context, enrolledCourseID uuid.UUID) (bool, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	for _, mark := range r.Marks {
		if mark.StudentEnrolledCourseID == enrolledCourseID {
			return true, nil
		}
	}
	return false, nil
}

type MockPaymentRepository struct {
	mutex    sync.RWMutex
	Payments map[uuid.UUID]*domain.StudentSemesterPayment
}

func NewMockPaymentRepository() *MockPaymentRepository {
	return &MockPaymentRepository{Payments: make(map[uuid.UUID]*domain.StudentSemesterPayment)}
}

func (r *MockPaymentRepository) Create(ctx context.Context, payment *domain.StudentSemesterPayment) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.Payments[payment.PaymentID] = payment
	return nil
}

func (r *MockPaymentRepository) Exists(ctx context.Context, studentID, academicSemesterID uuid.UUID) (bool, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	for _, payment := range r.Payments {
		if payment.StudentID == studentID && payment.AcademicSemesterID == academicSemesterID {
			return true, nil
		}
	}
	return false, nil
}

var (
	_ interfaces.TransactionManager             = (*MockTransactionManager)(nil)
	_ interfaces.StudentRepository              = (*MockStudentRepository)(nil)
	_ interfaces.CourseRepository               = (*MockCourseRepository)(nil)
	_ interfaces.AcademicSemesterRepository     = (*MockAcademicSemesterRepository)(nil)
	_ interfaces.OfferedCourseRepository        = (*MockOfferedCourseRepository)(nil)
	_ interfaces.SectionRepository              = (*MockSectionRepository)(nil)
	_ interfaces.SemesterRegistrationRepository = (*MockSemesterRegistrationRepository)(nil)
	_ interfaces.StudentRegistrationRepository  = (*MockStudentRegistrationRepository)(nil)
	_ interfaces.RegistrationCourseRepository   = (*MockRegistrationCourseRepository)(nil)
	_ interfaces.EnrolledCourseRepository       = (*MockEnrolledCourseRepository)(nil)
	_ interfaces.MarkRepository                 = (*MockMarkRepository)(nil)
	_ interfaces.PaymentRepository              = (*MockPaymentRepository)(nil)
)
