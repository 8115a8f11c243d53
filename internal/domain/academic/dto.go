package domain

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

// CreateSemesterRegistrationRequest creates a new registration window
type CreateSemesterRegistrationRequest struct {
	AcademicSemesterID uuid.UUID `json:"academic_semester_id" validate:"required"`
	MinCredit          int       `json:"min_credit" validate:"gte=0"`
	MaxCredit          int       `json:"max_credit" validate:"gtefield=MinCredit"`
	StartDate          time.Time `json:"start_date" validate:"required"`
	EndDate            time.Time `json:"end_date" validate:"required"`
}

// UpdateSemesterRegistrationRequest carries a partial update; a nil field is
// left untouched. Status changes are gated by ValidateStatusTransition.
type UpdateSemesterRegistrationRequest struct {
	Status    *RegistrationStatus `json:"status,omitempty"`
	MinCredit *int                `json:"min_credit,omitempty" validate:"omitempty,gte=0"`
	MaxCredit *int                `json:"max_credit,omitempty" validate:"omitempty,gte=0"`
	StartDate *time.Time          `json:"start_date,omitempty"`
	EndDate   *time.Time          `json:"end_date,omitempty"`
}

// EnrollCourseRequest identifies the offered course and section a student
// wants to enroll into or withdraw from
type EnrollCourseRequest struct {
	StudentNumber          string    `json:"student_number" validate:"required"`
	OfferedCourseID        uuid.UUID `json:"offered_course_id" validate:"required"`
	OfferedCourseSectionID uuid.UUID `json:"offered_course_section_id" validate:"required"`
}

// StudentRequest identifies a student by external number
type StudentRequest struct {
	StudentNumber string `json:"student_number" validate:"required"`
}

// Response views

// MyRegistrationResponse pairs the active registration with the student's
// own registration record
type MyRegistrationResponse struct {
	SemesterRegistration        *SemesterRegistration        `json:"semester_registration"`
	StudentSemesterRegistration *StudentSemesterRegistration `json:"student_semester_registration"`
}

// ClassScheduleView denormalizes a schedule slot with its room and building
type ClassScheduleView struct {
	DayOfWeek  string `json:"day_of_week"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	RoomNumber string `json:"room_number"`
	Floor      string `json:"floor"`
	Building   string `json:"building"`
}

// AvailableCourseSectionView annotates a section with current occupancy
type AvailableCourseSectionView struct {
	SectionID                uuid.UUID           `json:"section_id"`
	Title                    string              `json:"title"`
	MaxCapacity              int                 `json:"max_capacity"`
	CurrentlyEnrolledStudent int                 `json:"currently_enrolled_student"`
	Schedules                []ClassScheduleView `json:"schedules"`
}

// AvailableCourseView is one course a student may still register for
type AvailableCourseView struct {
	OfferedCourseID   uuid.UUID                    `json:"offered_course_id"`
	CourseID          uuid.UUID                    `json:"course_id"`
	CourseCode        string                       `json:"course_code"`
	Title             string                       `json:"title"`
	Credits           int                          `json:"credits"`
	IsAlreadySelected bool                         `json:"is_already_selected"`
	Sections          []AvailableCourseSectionView `json:"sections"`
}

// RegistrationSummary aggregates a registration's enrollment figures
type RegistrationSummary struct {
	RegistrationID    uuid.UUID `json:"registration_id" db:"registration_id"`
	RegisteredStudent int       `json:"registered_students" db:"registered_students"`
	ConfirmedStudent  int       `json:"confirmed_students" db:"confirmed_students"`
	TotalCreditsTaken int       `json:"total_credits_taken" db:"total_credits_taken"`
	EnrolledSeats     int       `json:"enrolled_seats" db:"enrolled_seats"`
	TotalSeats        int       `json:"total_seats" db:"total_seats"`
}
