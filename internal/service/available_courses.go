package service

import (
	"github.com/google/uuid"

	domain "university-api/internal/domain/academic"
)

// FilterAvailableCourses narrows a department's offered courses to what the
// student may still take: completed courses are dropped, prerequisites must
// all be satisfied, and courses already picked this cycle are flagged rather
// than hidden.
func FilterAvailableCourses(
	offered []*domain.OfferedCourse,
	completed []*domain.StudentEnrolledCourse,
	taken []*domain.StudentSemesterRegistrationCourse,
) []*domain.AvailableCourseView {
	completedSet := make(map[uuid.UUID]bool, len(completed))
	for _, ec := range completed {
		completedSet[ec.CourseID] = true
	}

	takenSet := make(map[uuid.UUID]bool, len(taken))
	for _, rc := range taken {
		takenSet[rc.OfferedCourseID] = true
	}

	views := make([]*domain.AvailableCourseView, 0, len(offered))
	for _, oc := range offered {
		if completedSet[oc.CourseID] {
			continue
		}
		if !prerequisitesSatisfied(oc.Course.Prerequisites, completedSet) {
			continue
		}

		view := &domain.AvailableCourseView{
			OfferedCourseID:   oc.OfferedCourseID,
			CourseID:          oc.CourseID,
			CourseCode:        oc.Course.CourseCode,
			Title:             oc.Course.Title,
			Credits:           oc.Course.Credits,
			IsAlreadySelected: takenSet[oc.OfferedCourseID],
			Sections:          make([]domain.AvailableCourseSectionView, 0, len(oc.Sections)),
		}

		for _, section := range oc.Sections {
			sectionView := domain.AvailableCourseSectionView{
				SectionID:                section.SectionID,
				Title:                    section.Title,
				MaxCapacity:              section.MaxCapacity,
				CurrentlyEnrolledStudent: section.CurrentlyEnrolledStudent,
				Schedules:                make([]domain.ClassScheduleView, 0, len(section.Schedules)),
			}
			for _, schedule := range section.Schedules {
				sectionView.Schedules = append(sectionView.Schedules, domain.ClassScheduleView{
					DayOfWeek:  schedule.DayOfWeek,
					StartTime:  schedule.StartTime,
					EndTime:    schedule.EndTime,
					RoomNumber: schedule.Room.RoomNumber,
					Floor:      schedule.Room.Floor,
					Building:   schedule.Room.Building.Title,
				})
			}
			view.Sections = append(view.Sections, sectionView)
		}

		views = append(views, view)
	}

	return views
}

func prerequisitesSatisfied(prerequisites []domain.CoursePrerequisite, completedSet map[uuid.UUID]bool) bool {
	for _, pre := range prerequisites {
		if !completedSet[pre.PrerequisiteID] {
			return false
		}
	}
	return true
}
