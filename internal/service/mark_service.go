package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	domain "university-api/internal/domain/academic"
	interfaces "university-api/internal/interfaces/infrastructure"
	serviceInterfaces "university-api/internal/interfaces/service"
)

var _ serviceInterfaces.MarkService = (*MarkService)(nil)

// MarkService seeds the ungraded mark entry for a freshly created enrolled
// course. The grading workflow owns the record afterwards.
type MarkService struct {
	markRepo interfaces.MarkRepository
}

func NewMarkService(markRepo interfaces.MarkRepository) *MarkService {
	return &MarkService{markRepo: markRepo}
}

func (s *MarkService) CreateDefaultMark(ctx context.Context, studentID, enrolledCourseID, academicSemesterID uuid.UUID) error {
	exists, err := s.markRepo.ExistsForEnrolledCourse(ctx, enrolledCourseID)
	if err != nil {
		return fmt.Errorf("failed to check existing mark: %w", err)
	}
	if exists {
		return nil
	}

	mark := &domain.StudentEnrolledCourseMark{
		MarkID:                  uuid.New(),
		StudentID:               studentID,
		StudentEnrolledCourseID: enrolledCourseID,
		AcademicSemesterID:      academicSemesterID,
		Marks:                   0,
	}
	if err := s.markRepo.Create(ctx, mark); err != nil {
		return fmt.Errorf("failed to create default mark: %w", err)
	}
	return nil
}
