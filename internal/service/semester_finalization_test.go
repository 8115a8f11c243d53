package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"

	domain "university-api/internal/domain/academic"
	"university-api/pkg/apperrors"
)

func TestSemesterRegistrationService_StartNewSemester(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	previous := env.seedSemester(t, "FALL25", true)
	semester := env.seedSemester(t, "SPR26", false)
	registration := env.seedRegistration(t, semester.SemesterID, domain.RegistrationEnded, 6, 18)

	student := env.seedStudent(t, "S-2026-001")
	env.seedStudentRegistration(t, student.StudentID, registration.RegistrationID, 12, true)

	firstCourse, firstSection := env.seedOfferedCourse(t, registration.RegistrationID, student.AcademicDepartmentID, 6, 30)
	secondCourse, secondSection := env.seedOfferedCourse(t, registration.RegistrationID, student.AcademicDepartmentID, 6, 30)
	for _, pick := range []struct {
		offered *domain.OfferedCourse
		section *domain.OfferedCourseSection
	}{
		{firstCourse, firstSection},
		{secondCourse, secondSection},
	} {
		rc := &domain.StudentSemesterRegistrationCourse{
			SemesterRegistrationID: registration.RegistrationID,
			StudentID:              student.StudentID,
			OfferedCourseID:        pick.offered.OfferedCourseID,
			OfferedCourseSectionID: pick.section.SectionID,
			OfferedCourse:          *pick.offered,
		}
		if err := env.regCourses.Create(ctx, rc); err != nil {
			t.Fatalf("failed to seed registration course: %v", err)
		}
	}

	msg, err := env.registrationService.StartNewSemester(ctx, registration.RegistrationID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if msg != "Semester started successfully" {
		t.Errorf("Unexpected message: %s", msg)
	}

	// Current flag moved from the previous semester to the new one
	updatedPrevious, _ := env.semesters.GetByID(ctx, previous.SemesterID)
	if updatedPrevious.IsCurrent {
		t.Error("Expected previous semester to lose the current flag")
	}
	updatedSemester, _ := env.semesters.GetByID(ctx, semester.SemesterID)
	if !updatedSemester.IsCurrent {
		t.Error("Expected new semester to become current")
	}

	// 12 credits at 5000 per credit
	if len(env.payments.Payments) != 1 {
		t.Fatalf("Expected 1 payment record, got %d", len(env.payments.Payments))
	}
	for _, payment := range env.payments.Payments {
		if payment.FullPaymentAmount != 60000 {
			t.Errorf("Expected full payment of 60000, got %d", payment.FullPaymentAmount)
		}
		if payment.PartialPaymentAmount != 30000 {
			t.Errorf("Expected partial payment of 30000, got %d", payment.PartialPaymentAmount)
		}
		if payment.TotalDueAmount != 60000 {
			t.Errorf("Expected due amount of 60000, got %d", payment.TotalDueAmount)
		}
		if payment.PaymentStatus != domain.PaymentPending {
			t.Errorf("Expected PENDING payment, got %s", payment.PaymentStatus)
		}
	}

	// One enrolled course per selection, each with its default mark
	if len(env.enrolled.EnrolledCourses) != 2 {
		t.Fatalf("Expected 2 enrolled courses, got %d", len(env.enrolled.EnrolledCourses))
	}
	for _, ec := range env.enrolled.EnrolledCourses {
		if ec.Status != domain.EnrolledOngoing {
			t.Errorf("Expected ONGOING enrolled course, got %s", ec.Status)
		}
		if ec.AcademicSemesterID != semester.SemesterID {
			t.Error("Enrolled course bound to wrong semester")
		}
		hasMark, _ := env.marks.ExistsForEnrolledCourse(ctx, ec.EnrolledCourseID)
		if !hasMark {
			t.Errorf("Expected a default mark for enrolled course %s", ec.EnrolledCourseID)
		}
	}
	if len(env.marks.Marks) != 2 {
		t.Errorf("Expected 2 mark records, got %d", len(env.marks.Marks))
	}
}

func TestSemesterRegistrationService_StartNewSemester_SkipsUnconfirmed(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	semester := env.seedSemester(t, "SPR26", false)
	registration := env.seedRegistration(t, semester.SemesterID, domain.RegistrationEnded, 6, 18)

	confirmed := env.seedStudent(t, "S-2026-001")
	unconfirmed := env.seedStudent(t, "S-2026-002")
	env.seedStudentRegistration(t, confirmed.StudentID, registration.RegistrationID, 6, true)
	env.seedStudentRegistration(t, unconfirmed.StudentID, registration.RegistrationID, 9, false)

	offered, section := env.seedOfferedCourse(t, registration.RegistrationID, confirmed.AcademicDepartmentID, 6, 30)
	for _, studentID := range []uuid.UUID{confirmed.StudentID, unconfirmed.StudentID} {
		rc := &domain.StudentSemesterRegistrationCourse{
			SemesterRegistrationID: registration.RegistrationID,
			StudentID:              studentID,
			OfferedCourseID:        offered.OfferedCourseID,
			OfferedCourseSectionID: section.SectionID,
			OfferedCourse:          *offered,
		}
		if err := env.regCourses.Create(ctx, rc); err != nil {
			t.Fatalf("failed to seed registration course: %v", err)
		}
	}

	if _, err := env.registrationService.StartNewSemester(ctx, registration.RegistrationID); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Only the confirmed student gets a payment and an enrolled course
	if len(env.payments.Payments) != 1 {
		t.Fatalf("Expected 1 payment record, got %d", len(env.payments.Payments))
	}
	for _, payment := range env.payments.Payments {
		if payment.StudentID != confirmed.StudentID {
			t.Error("Expected payment for the confirmed student only")
		}
	}
	if len(env.enrolled.EnrolledCourses) != 1 {
		t.Fatalf("Expected 1 enrolled course, got %d", len(env.enrolled.EnrolledCourses))
	}
	for _, ec := range env.enrolled.EnrolledCourses {
		if ec.StudentID != confirmed.StudentID {
			t.Error("Expected enrolled course for the confirmed student only")
		}
	}
}

func TestSemesterRegistrationService_StartNewSemester_Reruns(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	semester := env.seedSemester(t, "SPR26", false)
	registration := env.seedRegistration(t, semester.SemesterID, domain.RegistrationEnded, 6, 18)

	student := env.seedStudent(t, "S-2026-001")
	env.seedStudentRegistration(t, student.StudentID, registration.RegistrationID, 6, true)
	offered, section := env.seedOfferedCourse(t, registration.RegistrationID, student.AcademicDepartmentID, 6, 30)
	rc := &domain.StudentSemesterRegistrationCourse{
		SemesterRegistrationID: registration.RegistrationID,
		StudentID:              student.StudentID,
		OfferedCourseID:        offered.OfferedCourseID,
		OfferedCourseSectionID: section.SectionID,
		OfferedCourse:          *offered,
	}
	if err := env.regCourses.Create(ctx, rc); err != nil {
		t.Fatalf("failed to seed registration course: %v", err)
	}

	if _, err := env.registrationService.StartNewSemester(ctx, registration.RegistrationID); err != nil {
		t.Fatalf("Expected first run to succeed, got %v", err)
	}

	// A second run is rejected because the semester is already current
	_, err := env.registrationService.StartNewSemester(ctx, registration.RegistrationID)
	if err == nil {
		t.Fatal("Expected conflict on rerun, got nil")
	}
	if apperrors.StatusCode(err) != http.StatusConflict {
		t.Errorf("Expected status 409, got %d", apperrors.StatusCode(err))
	}

	// Nothing was duplicated
	if len(env.payments.Payments) != 1 {
		t.Errorf("Expected 1 payment record, got %d", len(env.payments.Payments))
	}
	if len(env.enrolled.EnrolledCourses) != 1 {
		t.Errorf("Expected 1 enrolled course, got %d", len(env.enrolled.EnrolledCourses))
	}
	if len(env.marks.Marks) != 1 {
		t.Errorf("Expected 1 mark record, got %d", len(env.marks.Marks))
	}
}

func TestSemesterRegistrationService_StartNewSemester_SkipsExistingRecords(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	semester := env.seedSemester(t, "SPR26", false)
	registration := env.seedRegistration(t, semester.SemesterID, domain.RegistrationEnded, 6, 18)

	student := env.seedStudent(t, "S-2026-001")
	env.seedStudentRegistration(t, student.StudentID, registration.RegistrationID, 12, true)

	firstCourse, firstSection := env.seedOfferedCourse(t, registration.RegistrationID, student.AcademicDepartmentID, 6, 30)
	secondCourse, secondSection := env.seedOfferedCourse(t, registration.RegistrationID, student.AcademicDepartmentID, 6, 30)
	for _, pick := range []struct {
		offered *domain.OfferedCourse
		section *domain.OfferedCourseSection
	}{
		{firstCourse, firstSection},
		{secondCourse, secondSection},
	} {
		rc := &domain.StudentSemesterRegistrationCourse{
			SemesterRegistrationID: registration.RegistrationID,
			StudentID:              student.StudentID,
			OfferedCourseID:        pick.offered.OfferedCourseID,
			OfferedCourseSectionID: pick.section.SectionID,
			OfferedCourse:          *pick.offered,
		}
		if err := env.regCourses.Create(ctx, rc); err != nil {
			t.Fatalf("failed to seed registration course: %v", err)
		}
	}

	// The first course already carries an enrolled-course record with its
	// mark, and the payment already exists, as after an interrupted earlier
	// run against a store without the conflict precondition.
	existing, err := env.enrolled.Create(ctx, &domain.StudentEnrolledCourse{
		EnrolledCourseID:   uuid.New(),
		StudentID:          student.StudentID,
		CourseID:           firstCourse.CourseID,
		AcademicSemesterID: semester.SemesterID,
		Status:             domain.EnrolledOngoing,
	})
	if err != nil {
		t.Fatalf("failed to seed enrolled course: %v", err)
	}
	if err := env.marks.Create(ctx, &domain.StudentEnrolledCourseMark{
		MarkID:                  uuid.New(),
		StudentID:               student.StudentID,
		StudentEnrolledCourseID: existing.EnrolledCourseID,
		AcademicSemesterID:      semester.SemesterID,
	}); err != nil {
		t.Fatalf("failed to seed mark: %v", err)
	}
	if err := env.payments.Create(ctx, &domain.StudentSemesterPayment{
		PaymentID:          uuid.New(),
		StudentID:          student.StudentID,
		AcademicSemesterID: semester.SemesterID,
		FullPaymentAmount:  60000,
	}); err != nil {
		t.Fatalf("failed to seed payment: %v", err)
	}

	if _, err := env.registrationService.StartNewSemester(ctx, registration.RegistrationID); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Only the missing enrolled course and its mark were created
	if len(env.enrolled.EnrolledCourses) != 2 {
		t.Fatalf("Expected 2 enrolled courses, got %d", len(env.enrolled.EnrolledCourses))
	}
	if _, ok := env.enrolled.EnrolledCourses[existing.EnrolledCourseID]; !ok {
		t.Error("Expected the pre-existing enrolled course to survive untouched")
	}
	found := false
	for _, ec := range env.enrolled.EnrolledCourses {
		if ec.CourseID == secondCourse.CourseID {
			found = true
		}
	}
	if !found {
		t.Error("Expected an enrolled course for the second selection")
	}
	if len(env.marks.Marks) != 2 {
		t.Errorf("Expected 2 mark records, got %d", len(env.marks.Marks))
	}

	// The existing payment was not duplicated
	if len(env.payments.Payments) != 1 {
		t.Errorf("Expected 1 payment record, got %d", len(env.payments.Payments))
	}
}

func TestSemesterRegistrationService_StartNewSemester_NotEnded(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	semester := env.seedSemester(t, "SPR26", false)
	registration := env.seedRegistration(t, semester.SemesterID, domain.RegistrationOngoing, 6, 18)

	_, err := env.registrationService.StartNewSemester(ctx, registration.RegistrationID)
	if err == nil {
		t.Fatal("Expected error for a registration that has not ended, got nil")
	}
	if apperrors.StatusCode(err) != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", apperrors.StatusCode(err))
	}
}

func TestSemesterRegistrationService_StartNewSemester_MissingRegistration(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.registrationService.StartNewSemester(ctx, uuid.New())
	if err == nil {
		t.Fatal("Expected error for missing registration, got nil")
	}
	if apperrors.StatusCode(err) != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", apperrors.StatusCode(err))
	}
}
