package service

import (
	"context"
	"net/http"
	"testing"

	domain "university-api/internal/domain/academic"
	"university-api/pkg/apperrors"
)

func TestEnrollmentService_EnrollIntoCourse(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	student := env.seedStudent(t, "S-2026-001")
	semester := env.seedSemester(t, "SPR26", false)
	registration := env.seedRegistration(t, semester.SemesterID, domain.RegistrationOngoing, 6, 18)
	offered, section := env.seedOfferedCourse(t, registration.RegistrationID, student.AcademicDepartmentID, 3, 30)
	env.seedStudentRegistration(t, student.StudentID, registration.RegistrationID, 0, false)

	msg, err := env.enrollmentService.EnrollIntoCourse(ctx, &domain.EnrollCourseRequest{
		StudentNumber:          student.StudentNumber,
		OfferedCourseID:        offered.OfferedCourseID,
		OfferedCourseSectionID: section.SectionID,
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if msg != "Successfully enrolled into course" {
		t.Errorf("Unexpected message: %s", msg)
	}

	// Registration course row exists
	courses, err := env.regCourses.GetByStudentAndRegistration(ctx, student.StudentID, registration.RegistrationID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(courses) != 1 {
		t.Fatalf("Expected 1 registration course, got %d", len(courses))
	}
	if courses[0].OfferedCourseSectionID != section.SectionID {
		t.Errorf("Registration course points at wrong section")
	}

	// Section counter incremented
	updated, _ := env.sections.GetByID(ctx, section.SectionID)
	if updated.CurrentlyEnrolledStudent != 1 {
		t.Errorf("Expected 1 enrolled student, got %d", updated.CurrentlyEnrolledStudent)
	}

	// Credits accumulated
	studentReg, _ := env.studentRegs.GetByStudentAndRegistration(ctx, student.StudentID, registration.RegistrationID)
	if studentReg.TotalCreditsTaken != 3 {
		t.Errorf("Expected 3 credits taken, got %d", studentReg.TotalCreditsTaken)
	}
}

func TestEnrollmentService_EnrollIntoCourse_UnknownStudent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	semester := env.seedSemester(t, "SPR26", false)
	registration := env.seedRegistration(t, semester.SemesterID, domain.RegistrationOngoing, 6, 18)
	offered, section := env.seedOfferedCourse(t, registration.RegistrationID, registration.RegistrationID, 3, 30)

	_, err := env.enrollmentService.EnrollIntoCourse(ctx, &domain.EnrollCourseRequest{
		StudentNumber:          "no-such-student",
		OfferedCourseID:        offered.OfferedCourseID,
		OfferedCourseSectionID: section.SectionID,
	})
	if err == nil {
		t.Fatal("Expected error for unknown student, got nil")
	}
	if apperrors.StatusCode(err) != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", apperrors.StatusCode(err))
	}
}

func TestEnrollmentService_EnrollIntoCourse_NoOngoingRegistration(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	student := env.seedStudent(t, "S-2026-001")
	semester := env.seedSemester(t, "SPR26", false)
	registration := env.seedRegistration(t, semester.SemesterID, domain.RegistrationUpcoming, 6, 18)
	offered, section := env.seedOfferedCourse(t, registration.RegistrationID, student.AcademicDepartmentID, 3, 30)

	_, err := env.enrollmentService.EnrollIntoCourse(ctx, &domain.EnrollCourseRequest{
		StudentNumber:          student.StudentNumber,
		OfferedCourseID:        offered.OfferedCourseID,
		OfferedCourseSectionID: section.SectionID,
	})
	if err == nil {
		t.Fatal("Expected error when no registration is ongoing, got nil")
	}
	if apperrors.StatusCode(err) != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", apperrors.StatusCode(err))
	}
}

func TestEnrollmentService_EnrollIntoCourse_SectionFull(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	first := env.seedStudent(t, "S-2026-001")
	second := env.seedStudent(t, "S-2026-002")
	second.AcademicDepartmentID = first.AcademicDepartmentID
	semester := env.seedSemester(t, "SPR26", false)
	registration := env.seedRegistration(t, semester.SemesterID, domain.RegistrationOngoing, 6, 18)
	offered, section := env.seedOfferedCourse(t, registration.RegistrationID, first.AcademicDepartmentID, 3, 1)
	env.seedStudentRegistration(t, first.StudentID, registration.RegistrationID, 0, false)
	env.seedStudentRegistration(t, second.StudentID, registration.RegistrationID, 0, false)

	req := &domain.EnrollCourseRequest{
		StudentNumber:          first.StudentNumber,
		OfferedCourseID:        offered.OfferedCourseID,
		OfferedCourseSectionID: section.SectionID,
	}
	if _, err := env.enrollmentService.EnrollIntoCourse(ctx, req); err != nil {
		t.Fatalf("Expected first enrollment to succeed, got %v", err)
	}

	req.StudentNumber = second.StudentNumber
	_, err := env.enrollmentService.EnrollIntoCourse(ctx, req)
	if err == nil {
		t.Fatal("Expected error for full section, got nil")
	}
	if apperrors.StatusCode(err) != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", apperrors.StatusCode(err))
	}

	// The failed attempt left nothing behind
	courses, _ := env.regCourses.GetByStudentAndRegistration(ctx, second.StudentID, registration.RegistrationID)
	if len(courses) != 0 {
		t.Errorf("Expected no registration courses for rejected student, got %d", len(courses))
	}
	updated, _ := env.sections.GetByID(ctx, section.SectionID)
	if updated.CurrentlyEnrolledStudent != 1 {
		t.Errorf("Expected section counter to stay at 1, got %d", updated.CurrentlyEnrolledStudent)
	}
	studentReg, _ := env.studentRegs.GetByStudentAndRegistration(ctx, second.StudentID, registration.RegistrationID)
	if studentReg.TotalCreditsTaken != 0 {
		t.Errorf("Expected 0 credits for rejected student, got %d", studentReg.TotalCreditsTaken)
	}
}

func TestEnrollmentService_EnrollIntoCourse_SectionMismatch(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	student := env.seedStudent(t, "S-2026-001")
	semester := env.seedSemester(t, "SPR26", false)
	registration := env.seedRegistration(t, semester.SemesterID, domain.RegistrationOngoing, 6, 18)
	offered, _ := env.seedOfferedCourse(t, registration.RegistrationID, student.AcademicDepartmentID, 3, 30)
	_, otherSection := env.seedOfferedCourse(t, registration.RegistrationID, student.AcademicDepartmentID, 3, 30)

	_, err := env.enrollmentService.EnrollIntoCourse(ctx, &domain.EnrollCourseRequest{
		StudentNumber:          student.StudentNumber,
		OfferedCourseID:        offered.OfferedCourseID,
		OfferedCourseSectionID: otherSection.SectionID,
	})
	if err == nil {
		t.Fatal("Expected error for section of a different course, got nil")
	}
	if apperrors.StatusCode(err) != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", apperrors.StatusCode(err))
	}
}

func TestEnrollmentService_WithdrawFromCourse(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	student := env.seedStudent(t, "S-2026-001")
	semester := env.seedSemester(t, "SPR26", false)
	registration := env.seedRegistration(t, semester.SemesterID, domain.RegistrationOngoing, 6, 18)
	offered, section := env.seedOfferedCourse(t, registration.RegistrationID, student.AcademicDepartmentID, 4, 30)
	env.seedStudentRegistration(t, student.StudentID, registration.RegistrationID, 0, false)

	req := &domain.EnrollCourseRequest{
		StudentNumber:          student.StudentNumber,
		OfferedCourseID:        offered.OfferedCourseID,
		OfferedCourseSectionID: section.SectionID,
	}
	if _, err := env.enrollmentService.EnrollIntoCourse(ctx, req); err != nil {
		t.Fatalf("Expected enrollment to succeed, got %v", err)
	}

	msg, err := env.enrollmentService.WithdrawFromCourse(ctx, req)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if msg != "Successfully withdrew from course" {
		t.Errorf("Unexpected message: %s", msg)
	}

	// Everything restored to the pre-enrollment state
	courses, _ := env.regCourses.GetByStudentAndRegistration(ctx, student.StudentID, registration.RegistrationID)
	if len(courses) != 0 {
		t.Errorf("Expected no registration courses after withdrawal, got %d", len(courses))
	}
	updated, _ := env.sections.GetByID(ctx, section.SectionID)
	if updated.CurrentlyEnrolledStudent != 0 {
		t.Errorf("Expected section counter back to 0, got %d", updated.CurrentlyEnrolledStudent)
	}
	studentReg, _ := env.studentRegs.GetByStudentAndRegistration(ctx, student.StudentID, registration.RegistrationID)
	if studentReg.TotalCreditsTaken != 0 {
		t.Errorf("Expected 0 credits after withdrawal, got %d", studentReg.TotalCreditsTaken)
	}
}

func TestEnrollmentService_EnrollIntoCourse_AlreadyEnrolled(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	student := env.seedStudent(t, "S-2026-001")
	semester := env.seedSemester(t, "SPR26", false)
	registration := env.seedRegistration(t, semester.SemesterID, domain.RegistrationOngoing, 6, 18)
	offered, section := env.seedOfferedCourse(t, registration.RegistrationID, student.AcademicDepartmentID, 3, 30)
	env.seedStudentRegistration(t, student.StudentID, registration.RegistrationID, 0, false)

	req := &domain.EnrollCourseRequest{
		StudentNumber:          student.StudentNumber,
		OfferedCourseID:        offered.OfferedCourseID,
		OfferedCourseSectionID: section.SectionID,
	}
	if _, err := env.enrollmentService.EnrollIntoCourse(ctx, req); err != nil {
		t.Fatalf("Expected first enrollment to succeed, got %v", err)
	}

	if _, err := env.enrollmentService.EnrollIntoCourse(ctx, req); err == nil {
		t.Fatal("Expected error on duplicate enrollment, got nil")
	}

	// The rejected attempt touched neither counter
	updated, _ := env.sections.GetByID(ctx, section.SectionID)
	if updated.CurrentlyEnrolledStudent != 1 {
		t.Errorf("Expected section counter to stay at 1, got %d", updated.CurrentlyEnrolledStudent)
	}
	studentReg, _ := env.studentRegs.GetByStudentAndRegistration(ctx, student.StudentID, registration.RegistrationID)
	if studentReg.TotalCreditsTaken != 3 {
		t.Errorf("Expected credits to stay at 3, got %d", studentReg.TotalCreditsTaken)
	}
}

func TestEnrollmentService_WithdrawFromCourse_StaleSectionID(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	student := env.seedStudent(t, "S-2026-001")
	semester := env.seedSemester(t, "SPR26", false)
	registration := env.seedRegistration(t, semester.SemesterID, domain.RegistrationOngoing, 6, 18)
	offered, section := env.seedOfferedCourse(t, registration.RegistrationID, student.AcademicDepartmentID, 3, 30)
	_, otherSection := env.seedOfferedCourse(t, registration.RegistrationID, student.AcademicDepartmentID, 3, 30)
	otherSection.CurrentlyEnrolledStudent = 5
	env.seedStudentRegistration(t, student.StudentID, registration.RegistrationID, 0, false)

	if _, err := env.enrollmentService.EnrollIntoCourse(ctx, &domain.EnrollCourseRequest{
		StudentNumber:          student.StudentNumber,
		OfferedCourseID:        offered.OfferedCourseID,
		OfferedCourseSectionID: section.SectionID,
	}); err != nil {
		t.Fatalf("Expected enrollment to succeed, got %v", err)
	}

	// Withdraw with another course's section id in the request; the seat is
	// released on the section the enrollment was actually stored against.
	_, err := env.enrollmentService.WithdrawFromCourse(ctx, &domain.EnrollCourseRequest{
		StudentNumber:          student.StudentNumber,
		OfferedCourseID:        offered.OfferedCourseID,
		OfferedCourseSectionID: otherSection.SectionID,
	})
	if err != nil {
		t.Fatalf("Expected withdrawal to succeed, got %v", err)
	}

	updated, _ := env.sections.GetByID(ctx, section.SectionID)
	if updated.CurrentlyEnrolledStudent != 0 {
		t.Errorf("Expected enrolled section counter back to 0, got %d", updated.CurrentlyEnrolledStudent)
	}
	other, _ := env.sections.GetByID(ctx, otherSection.SectionID)
	if other.CurrentlyEnrolledStudent != 5 {
		t.Errorf("Expected unrelated section counter to stay at 5, got %d", other.CurrentlyEnrolledStudent)
	}
}

func TestEnrollmentService_WithdrawFromCourse_NotEnrolled(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	student := env.seedStudent(t, "S-2026-001")
	semester := env.seedSemester(t, "SPR26", false)
	registration := env.seedRegistration(t, semester.SemesterID, domain.RegistrationOngoing, 6, 18)
	offered, section := env.seedOfferedCourse(t, registration.RegistrationID, student.AcademicDepartmentID, 3, 30)

	_, err := env.enrollmentService.WithdrawFromCourse(ctx, &domain.EnrollCourseRequest{
		StudentNumber:          student.StudentNumber,
		OfferedCourseID:        offered.OfferedCourseID,
		OfferedCourseSectionID: section.SectionID,
	})
	if err == nil {
		t.Fatal("Expected error when not enrolled, got nil")
	}
	if apperrors.StatusCode(err) != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", apperrors.StatusCode(err))
	}
}
