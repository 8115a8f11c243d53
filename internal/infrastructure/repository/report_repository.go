package repository

import (
	"context"
	"database/sql"
	"fmt"

	domain "university-api/internal/domain/academic"
	interfaces "university-api/internal/interfaces/infrastructure"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"gorm.io/gorm"
)

// ReportRepository answers aggregate read-only queries with sqlx over the
// same connection pool GORM uses. Reports never join a transaction.
type ReportRepository struct {
	db *sqlx.DB
}

func NewReportRepository(gormDB *gorm.DB) (interfaces.ReportRepository, error) {
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	return &ReportRepository{
		db: sqlx.NewDb(sqlDB, "pgx"),
	}, nil
}

const registrationSummaryQuery = `
SELECT
    sr.registration_id,
    COUNT(DISTINCT ssr.id)                                          AS registered_students,
    COUNT(DISTINCT ssr.id) FILTER (WHERE ssr.is_confirmed)          AS confirmed_students,
    COALESCE(SUM(ssr.total_credits_taken), 0)                       AS total_credits_taken,
    COALESCE(sec.enrolled_seats, 0)                                 AS enrolled_seats,
    COALESCE(sec.total_seats, 0)                                    AS total_seats
FROM semester_registrations sr
LEFT JOIN student_semester_registrations ssr
    ON ssr.semester_registration_id = sr.registration_id
LEFT JOIN (
    SELECT oc.semester_registration_id,
           SUM(s.currently_enrolled_student) AS enrolled_seats,
           SUM(s.max_capacity)               AS total_seats
    FROM offered_course_sections s
    JOIN offered_courses oc ON oc.offered_course_id = s.offered_course_id
    GROUP BY oc.semester_registration_id
) sec ON sec.semester_registration_id = sr.registration_id
WHERE sr.registration_id = $1
GROUP BY sr.registration_id, sec.enrolled_seats, sec.total_seats`

func (r *ReportRepository) GetRegistrationSummary(ctx context.Context, registrationID uuid.UUID) (*domain.RegistrationSummary, error) {
	var summary domain.RegistrationSummary
	err := r.db.GetContext(ctx, &summary, registrationSummaryQuery, registrationID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &summary, nil
}
