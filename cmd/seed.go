package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"university-api/internal/config"
	domain "university-api/internal/domain/academic"
	"university-api/internal/infrastructure/database"
	"university-api/pkg/logger"
)

// seedCmd loads a small demo dataset: one faculty and department, a campus
// building, an academic semester with an ONGOING registration, two students
// and three courses (one gated by a prerequisite) offered with sections.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load demo data",
	Long:  "Populate the database with a small demo dataset for local development",
	Run:   runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, args []string) {
	cfg := config.Get()

	db, err := database.NewConnection(database.Config{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.Username,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.Name,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		logger.Error("Failed to connect to database: %v", err)
		os.Exit(1)
	}

	if err := seedDemoData(db); err != nil {
		logger.Error("Seeding failed: %v", err)
		os.Exit(1)
	}

	fmt.Println("Demo data loaded successfully!")
}

func seedDemoData(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		faculty := domain.AcademicFaculty{
			FacultyID: uuid.New(),
			Title:     "Faculty of Science and Engineering",
		}
		if err := tx.Create(&faculty).Error; err != nil {
			return err
		}

		department := domain.AcademicDepartment{
			DepartmentID:      uuid.New(),
			Title:             "Computer Science",
			AcademicFacultyID: faculty.FacultyID,
		}
		if err := tx.Create(&department).Error; err != nil {
			return err
		}

		building := domain.Building{
			BuildingID: uuid.New(),
			Title:      "Science Block",
		}
		if err := tx.Create(&building).Error; err != nil {
			return err
		}

		room := domain.Room{
			RoomID:     uuid.New(),
			RoomNumber: "204",
			Floor:      "2",
			BuildingID: building.BuildingID,
		}
		if err := tx.Create(&room).Error; err != nil {
			return err
		}

		semester := domain.AcademicSemester{
			SemesterID: uuid.New(),
			Title:      "Spring 2026",
			Code:       "SPR26",
			Year:       2026,
			StartDate:  time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
			EndDate:    time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC),
		}
		if err := tx.Create(&semester).Error; err != nil {
			return err
		}

		students := []domain.Student{
			{
				StudentID:            uuid.New(),
				StudentNumber:        "S-2026-001",
				FirstName:            "Amina",
				LastName:             "Rahman",
				Email:                "amina.rahman@university.edu",
				AcademicDepartmentID: department.DepartmentID,
			},
			{
				StudentID:            uuid.New(),
				StudentNumber:        "S-2026-002",
				FirstName:            "Tanvir",
				LastName:             "Hasan",
				Email:                "tanvir.hasan@university.edu",
				AcademicDepartmentID: department.DepartmentID,
			},
		}
		if err := tx.Create(&students).Error; err != nil {
			return err
		}

		intro := domain.Course{
			CourseID:   uuid.New(),
			CourseCode: "CSE-101",
			Title:      "Introduction to Programming",
			Credits:    3,
		}
		dataStructures := domain.Course{
			CourseID:   uuid.New(),
			CourseCode: "CSE-201",
			Title:      "Data Structures",
			Credits:    4,
		}
		discreteMath := domain.Course{
			CourseID:   uuid.New(),
			CourseCode: "MAT-110",
			Title:      "Discrete Mathematics",
			Credits:    3,
		}
		for _, course := range []*domain.Course{&intro, &dataStructures, &discreteMath} {
			if err := tx.Create(course).Error; err != nil {
				return err
			}
		}

		// Data Structures requires Introduction to Programming
		prerequisite := domain.CoursePrerequisite{
			CourseID:       dataStructures.CourseID,
			PrerequisiteID: intro.CourseID,
		}
		if err := tx.Create(&prerequisite).Error; err != nil {
			return err
		}

		registration := domain.SemesterRegistration{
			RegistrationID:     uuid.New(),
			AcademicSemesterID: semester.SemesterID,
			Status:             domain.RegistrationOngoing,
			MinCredit:          6,
			MaxCredit:          18,
			StartDate:          time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
			EndDate:            time.Date(2026, 1, 25, 0, 0, 0, 0, time.UTC),
		}
		if err := tx.Create(&registration).Error; err != nil {
			return err
		}

		for _, course := range []domain.Course{intro, dataStructures, discreteMath} {
			offered := domain.OfferedCourse{
				OfferedCourseID:        uuid.New(),
				CourseID:               course.CourseID,
				SemesterRegistrationID: registration.RegistrationID,
				AcademicDepartmentID:   department.DepartmentID,
			}
			if err := tx.Create(&offered).Error; err != nil {
				return err
			}

			section := domain.OfferedCourseSection{
				SectionID:       uuid.New(),
				OfferedCourseID: offered.OfferedCourseID,
				Title:           "Section A",
				MaxCapacity:     40,
			}
			if err := tx.Create(&section).Error; err != nil {
				return err
			}

			schedule := domain.OfferedCourseClassSchedule{
				ScheduleID:             uuid.New(),
				OfferedCourseSectionID: section.SectionID,
				DayOfWeek:              "MONDAY",
				StartTime:              "09:00",
				EndTime:                "10:30",
				RoomID:                 room.RoomID,
			}
			if err := tx.Create(&schedule).Error; err != nil {
				return err
			}
		}

		logger.Info("Seeded %d students and 3 offered courses for %s", len(students), semester.Code)
		return nil
	})
}
