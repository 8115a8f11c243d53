package domain

import (
	"time"

	"github.com/google/uuid"
)

// AcademicFaculty represents a faculty of the university
type AcademicFaculty struct {
	FacultyID uuid.UUID `json:"faculty_id" gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Title     string    `json:"title" gorm:"unique;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// AcademicDepartment represents a department inside a faculty
type AcademicDepartment struct {
	DepartmentID      uuid.UUID       `json:"department_id" gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Title             string          `json:"title" gorm:"not null"`
	AcademicFacultyID uuid.UUID       `json:"academic_faculty_id" gorm:"type:uuid;not null"`
	Faculty           AcademicFaculty `json:"faculty,omitempty" gorm:"foreignKey:AcademicFacultyID"`
	CreatedAt         time.Time       `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt         time.Time       `json:"updated_at" gorm:"autoUpdateTime"`
}

// Building represents a campus building
type Building struct {
	BuildingID uuid.UUID `json:"building_id" gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Title      string    `json:"title" gorm:"not null"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// Room represents a room inside a building
type Room struct {
	RoomID     uuid.UUID `json:"room_id" gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	RoomNumber string    `json:"room_number" gorm:"not null"`
	Floor      string    `json:"floor" gorm:"not null"`
	BuildingID uuid.UUID `json:"building_id" gorm:"type:uuid;not null"`
	Building   Building  `json:"building,omitempty" gorm:"foreignKey:BuildingID"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// AcademicSemester represents one academic term. At most one semester is
// current at any time; the flag flips only during semester finalization.
type AcademicSemester struct {
	SemesterID uuid.UUID `json:"semester_id" gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Title      string    `json:"title" gorm:"not null"`
	Code       string    `json:"code" gorm:"unique;not null"`
	Year       int       `json:"year" gorm:"not null"`
	StartDate  time.Time `json:"start_date" gorm:"not null"`
	EndDate    time.Time `json:"end_date" gorm:"not null"`
	IsCurrent  bool      `json:"is_current" gorm:"not null;default:false"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// Student represents a student, identified externally by StudentNumber
type Student struct {
	StudentID            uuid.UUID          `json:"student_id" gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	StudentNumber        string             `json:"student_number" gorm:"unique;not null"`
	FirstName            string             `json:"first_name" gorm:"not null"`
	LastName             string             `json:"last_name" gorm:"not null"`
	Email                string             `json:"email" gorm:"unique;not null"`
	AcademicDepartmentID uuid.UUID          `json:"academic_department_id" gorm:"type:uuid;not null"`
	Department           AcademicDepartment `json:"department,omitempty" gorm:"foreignKey:AcademicDepartmentID"`
	CreatedAt            time.Time          `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt            time.Time          `json:"updated_at" gorm:"autoUpdateTime"`
}

// Course represents a catalog course
type Course struct {
	CourseID      uuid.UUID            `json:"course_id" gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	CourseCode    string               `json:"course_code" gorm:"unique;not null"`
	Title         string               `json:"title" gorm:"not null"`
	Credits       int                  `json:"credits" gorm:"not null;check:credits > 0"`
	Prerequisites []CoursePrerequisite `json:"prerequisites,omitempty" gorm:"foreignKey:CourseID"`
	CreatedAt     time.Time            `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time            `json:"updated_at" gorm:"autoUpdateTime"`
}

// CoursePrerequisite links a course to one of its prerequisite courses
type CoursePrerequisite struct {
	CourseID       uuid.UUID `json:"course_id" gorm:"type:uuid;primaryKey"`
	PrerequisiteID uuid.UUID `json:"prerequisite_id" gorm:"type:uuid;primaryKey"`
	Prerequisite   Course    `json:"prerequisite,omitempty" gorm:"foreignKey:PrerequisiteID"`
}

// RegistrationStatus represents the lifecycle state of a semester registration
type RegistrationStatus string

const (
	RegistrationUpcoming RegistrationStatus = "UPCOMING"
	RegistrationOngoing  RegistrationStatus = "ONGOING"
	RegistrationEnded    RegistrationStatus = "ENDED"
)

// SemesterRegistration is the administrative window governing one term's
// enrollment cycle. At most one registration may be UPCOMING or ONGOING
// system-wide; the schema enforces this with a partial unique index.
type SemesterRegistration struct {
	RegistrationID     uuid.UUID          `json:"registration_id" gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	AcademicSemesterID uuid.UUID          `json:"academic_semester_id" gorm:"type:uuid;unique;not null"`
	Status             RegistrationStatus `json:"status" gorm:"type:text;not null;default:UPCOMING"`
	MinCredit          int                `json:"min_credit" gorm:"not null;default:0"`
	MaxCredit          int                `json:"max_credit" gorm:"not null;default:0"`
	StartDate          time.Time          `json:"start_date" gorm:"not null"`
	EndDate            time.Time          `json:"end_date" gorm:"not null"`
	AcademicSemester   AcademicSemester   `json:"academic_semester,omitempty" gorm:"foreignKey:AcademicSemesterID"`
	CreatedAt          time.Time          `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt          time.Time          `json:"updated_at" gorm:"autoUpdateTime"`
}

// OfferedCourse is a course made available to a department in one registration
type OfferedCourse struct {
	OfferedCourseID        uuid.UUID              `json:"offered_course_id" gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	CourseID               uuid.UUID              `json:"course_id" gorm:"type:uuid;not null"`
	SemesterRegistrationID uuid.UUID              `json:"semester_registration_id" gorm:"type:uuid;not null"`
	AcademicDepartmentID   uuid.UUID              `json:"academic_department_id" gorm:"type:uuid;not null"`
	Course                 Course                 `json:"course,omitempty" gorm:"foreignKey:CourseID"`
	Sections               []OfferedCourseSection `json:"sections,omitempty" gorm:"foreignKey:OfferedCourseID"`
	CreatedAt              time.Time              `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt              time.Time              `json:"updated_at" gorm:"autoUpdateTime"`
}

// OfferedCourseSection subdivides an offered course into sections with
// capacity. CurrentlyEnrolledStudent is a denormalized counter kept in
// lockstep with the registration-course rows inside each transaction.
type OfferedCourseSection struct {
	SectionID                uuid.UUID                    `json:"section_id" gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	OfferedCourseID          uuid.UUID                    `json:"offered_course_id" gorm:"type:uuid;not null"`
	Title                    string                       `json:"title" gorm:"not null"`
	MaxCapacity              int                          `json:"max_capacity" gorm:"not null;check:max_capacity > 0"`
	CurrentlyEnrolledStudent int                          `json:"currently_enrolled_student" gorm:"not null;default:0;check:currently_enrolled_student >= 0"`
	Schedules                []OfferedCourseClassSchedule `json:"schedules,omitempty" gorm:"foreignKey:OfferedCourseSectionID"`
	CreatedAt                time.Time                    `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt                time.Time                    `json:"updated_at" gorm:"autoUpdateTime"`
}

// OfferedCourseClassSchedule places a section in a room at a weekly slot
type OfferedCourseClassSchedule struct {
	ScheduleID             uuid.UUID `json:"schedule_id" gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	OfferedCourseSectionID uuid.UUID `json:"offered_course_section_id" gorm:"type:uuid;not null"`
	DayOfWeek              string    `json:"day_of_week" gorm:"not null"`
	StartTime              string    `json:"start_time" gorm:"not null"`
	EndTime                string    `json:"end_time" gorm:"not null"`
	RoomID                 uuid.UUID `json:"room_id" gorm:"type:uuid;not null"`
	Room                   Room      `json:"room,omitempty" gorm:"foreignKey:RoomID"`
	CreatedAt              time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt              time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// StudentSemesterRegistration tracks one student's participation in a
// registration cycle. TotalCreditsTaken is the accumulator of record for the
// student's credit load; IsConfirmed marks their final lock-in.
type StudentSemesterRegistration struct {
	ID                     uuid.UUID            `json:"id" gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	StudentID              uuid.UUID            `json:"student_id" gorm:"type:uuid;not null"`
	SemesterRegistrationID uuid.UUID            `json:"semester_registration_id" gorm:"type:uuid;not null"`
	TotalCreditsTaken      int                  `json:"total_credits_taken" gorm:"not null;default:0"`
	IsConfirmed            bool                 `json:"is_confirmed" gorm:"not null;default:false"`
	Student                Student              `json:"student,omitempty" gorm:"foreignKey:StudentID"`
	SemesterRegistration   SemesterRegistration `json:"semester_registration,omitempty" gorm:"foreignKey:SemesterRegistrationID"`
	CreatedAt              time.Time            `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt              time.Time            `json:"updated_at" gorm:"autoUpdateTime"`
}

// StudentSemesterRegistrationCourse is one in-progress enrollment. The
// composite key (registration, student, offered course) is the natural key
// used for withdrawal; rows are deleted on withdrawal and migrated into
// StudentEnrolledCourse records when the semester is finalized.
type StudentSemesterRegistrationCourse struct {
	SemesterRegistrationID uuid.UUID            `json:"semester_registration_id" gorm:"type:uuid;primaryKey"`
	StudentID              uuid.UUID            `json:"student_id" gorm:"type:uuid;primaryKey"`
	OfferedCourseID        uuid.UUID            `json:"offered_course_id" gorm:"type:uuid;primaryKey"`
	OfferedCourseSectionID uuid.UUID            `json:"offered_course_section_id" gorm:"type:uuid;not null"`
	OfferedCourse          OfferedCourse        `json:"offered_course,omitempty" gorm:"foreignKey:OfferedCourseID"`
	Section                OfferedCourseSection `json:"section,omitempty" gorm:"foreignKey:OfferedCourseSectionID"`
	CreatedAt              time.Time            `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt              time.Time            `json:"updated_at" gorm:"autoUpdateTime"`
}

// EnrolledCourseStatus represents the state of a permanent enrollment record
type EnrolledCourseStatus string

const (
	EnrolledOngoing   EnrolledCourseStatus = "ONGOING"
	EnrolledCompleted EnrolledCourseStatus = "COMPLETED"
	EnrolledWithdrawn EnrolledCourseStatus = "WITHDRAWN"
)

// StudentEnrolledCourse is the permanent academic record of a course taken by
// a student in a given academic semester. Created only during finalization,
// at most once per (student, course, semester).
type StudentEnrolledCourse struct {
	EnrolledCourseID   uuid.UUID            `json:"enrolled_course_id" gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	StudentID          uuid.UUID            `json:"student_id" gorm:"type:uuid;not null"`
	CourseID           uuid.UUID            `json:"course_id" gorm:"type:uuid;not null"`
	AcademicSemesterID uuid.UUID            `json:"academic_semester_id" gorm:"type:uuid;not null"`
	Status             EnrolledCourseStatus `json:"status" gorm:"type:text;not null;default:ONGOING"`
	Grade              *string              `json:"grade,omitempty"`
	Point              float64              `json:"point" gorm:"not null;default:0"`
	TotalMarks         int                  `json:"total_marks" gorm:"not null;default:0"`
	Course             Course               `json:"course,omitempty" gorm:"foreignKey:CourseID"`
	CreatedAt          time.Time            `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt          time.Time            `json:"updated_at" gorm:"autoUpdateTime"`
}

// StudentEnrolledCourseMark is the ungraded mark entry seeded alongside each
// newly created enrolled course; the grading workflow owns it afterwards.
type StudentEnrolledCourseMark struct {
	MarkID                  uuid.UUID `json:"mark_id" gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	StudentID               uuid.UUID `json:"student_id" gorm:"type:uuid;not null"`
	StudentEnrolledCourseID uuid.UUID `json:"student_enrolled_course_id" gorm:"type:uuid;not null"`
	AcademicSemesterID      uuid.UUID `json:"academic_semester_id" gorm:"type:uuid;not null"`
	Grade                   *string   `json:"grade,omitempty"`
	Marks                   int       `json:"marks" gorm:"not null;default:0"`
	CreatedAt               time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt               time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// PaymentStatus represents the state of a semester tuition payment
type PaymentStatus string

const (
	PaymentPending     PaymentStatus = "PENDING"
	PaymentPartialPaid PaymentStatus = "PARTIAL_PAID"
	PaymentFullPaid    PaymentStatus = "FULL_PAID"
)

// StudentSemesterPayment is the tuition record generated at finalization
type StudentSemesterPayment struct {
	PaymentID            uuid.UUID     `json:"payment_id" gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	StudentID            uuid.UUID     `json:"student_id" gorm:"type:uuid;not null"`
	AcademicSemesterID   uuid.UUID     `json:"academic_semester_id" gorm:"type:uuid;not null"`
	FullPaymentAmount    int           `json:"full_payment_amount" gorm:"not null;default:0"`
	PartialPaymentAmount int           `json:"partial_payment_amount" gorm:"not null;default:0"`
	TotalDueAmount       int           `json:"total_due_amount" gorm:"not null;default:0"`
	TotalPaidAmount      int           `json:"total_paid_amount" gorm:"not null;default:0"`
	PaymentStatus        PaymentStatus `json:"payment_status" gorm:"type:text;not null;default:PENDING"`
	CreatedAt            time.Time     `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt            time.Time     `json:"updated_at" gorm:"autoUpdateTime"`
}
