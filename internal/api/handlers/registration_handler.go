package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domain "university-api/internal/domain/academic"
	interfaces "university-api/internal/interfaces/infrastructure"
	serviceInterfaces "university-api/internal/interfaces/service"
	"university-api/pkg/apperrors"
	"university-api/pkg/validator"
)

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Errors  interface{} `json:"errors,omitempty"`
}

// RegistrationHandler handles the semester-registration HTTP surface
type RegistrationHandler struct {
	registrationService serviceInterfaces.SemesterRegistrationService
	enrollmentService   serviceInterfaces.EnrollmentService
	reportRepo          interfaces.ReportRepository
}

// NewRegistrationHandler creates a new registration handler
func NewRegistrationHandler(
	registrationService serviceInterfaces.SemesterRegistrationService,
	enrollmentService serviceInterfaces.EnrollmentService,
	reportRepo interfaces.ReportRepository,
) *RegistrationHandler {
	return &RegistrationHandler{
		registrationService: registrationService,
		enrollmentService:   enrollmentService,
		reportRepo:          reportRepo,
	}
}

// respondError maps service errors onto the response envelope
func respondError(c *gin.Context, err error) {
	c.JSON(apperrors.StatusCode(err), APIResponse{
		Success: false,
		Message: err.Error(),
	})
}

// CreateSemesterRegistration handles POST /semester-registrations
func (h *RegistrationHandler) CreateSemesterRegistration(c *gin.Context) {
	var req domain.CreateSemesterRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, APIResponse{
			Success: false,
			Message: "Invalid request format",
			Errors:  err.Error(),
		})
		return
	}

	if err := validator.ValidateStruct(&req); err != nil {
		c.JSON(http.StatusBadRequest, APIResponse{
			Success: false,
			Message: "Validation failed",
			Errors:  validator.FormatValidationError(err),
		})
		return
	}

	registration, err := h.registrationService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, APIResponse{
		Success: true,
		Message: "Semester registration created successfully",
		Data:    registration,
	})
}

// ListSemesterRegistrations handles GET /semester-registrations
func (h *RegistrationHandler) ListSemesterRegistrations(c *gin.Context) {
	registrations, err := h.registrationService.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Data:    registrations,
	})
}

// GetSemesterRegistration handles GET /semester-registrations/:id
func (h *RegistrationHandler) GetSemesterRegistration(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, APIResponse{
			Success: false,
			Message: "Invalid registration ID format",
		})
		return
	}

	registration, err := h.registrationService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Data:    registration,
	})
}

// UpdateSemesterRegistration handles PATCH /semester-registrations/:id
func (h *RegistrationHandler) UpdateSemesterRegistration(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, APIResponse{
			Success: false,
			Message: "Invalid registration ID format",
		})
		return
	}

	var req domain.UpdateSemesterRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, APIResponse{
			Success: false,
			Message: "Invalid request format",
			Errors:  err.Error(),
		})
		return
	}

	if err := validator.ValidateStruct(&req); err != nil {
		c.JSON(http.StatusBadRequest, APIResponse{
			Success: false,
			Message: "Validation failed",
			Errors:  validator.FormatValidationError(err),
		})
		return
	}

	registration, err := h.registrationService.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Message: "Semester registration updated successfully",
		Data:    registration,
	})
}

// DeleteSemesterRegistration handles DELETE /semester-registrations/:id
func (h *RegistrationHandler) DeleteSemesterRegistration(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, APIResponse{
			Success: false,
			Message: "Invalid registration ID format",
		})
		return
	}

	if err := h.registrationService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Message: "Semester registration deleted successfully",
	})
}

// StartNewSemester handles POST /semester-registrations/:id/start-new-semester
func (h *RegistrationHandler) StartNewSemester(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, APIResponse{
			Success: false,
			Message: "Invalid registration ID format",
		})
		return
	}

	msg, err := h.registrationService.StartNewSemester(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Message: msg,
	})
}

// GetRegistrationSummary handles GET /semester-registrations/:id/summary
func (h *RegistrationHandler) GetRegistrationSummary(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, APIResponse{
			Success: false,
			Message: "Invalid registration ID format",
		})
		return
	}

	summary, err := h.reportRepo.GetRegistrationSummary(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if summary == nil {
		c.JSON(http.StatusNotFound, APIResponse{
			Success: false,
			Message: "semester registration not found",
		})
		return
	}

	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Data:    summary,
	})
}

// StartMyRegistration handles POST /my-registration/start
func (h *RegistrationHandler) StartMyRegistration(c *gin.Context) {
	var req domain.StudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, APIResponse{
			Success: false,
			Message: "Invalid request format",
			Errors:  err.Error(),
		})
		return
	}

	if err := validator.ValidateStruct(&req); err != nil {
		c.JSON(http.StatusBadRequest, APIResponse{
			Success: false,
			Message: "Validation failed",
			Errors:  validator.FormatValidationError(err),
		})
		return
	}

	response, err := h.registrationService.StartMyRegistration(c.Request.Context(), req.StudentNumber)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Message: "Student registration started successfully",
		Data:    response,
	})
}

// EnrollIntoCourse handles POST /my-registration/enroll
func (h *RegistrationHandler) EnrollIntoCourse(c *gin.Context) {
	var req domain.EnrollCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, APIResponse{
			Success: false,
			Message: "Invalid request format",
			Errors:  err.Error(),
		})
		return
	}

	if err := validator.ValidateStruct(&req); err != nil {
		c.JSON(http.StatusBadRequest, APIResponse{
			Success: false,
			Message: "Validation failed",
			Errors:  validator.FormatValidationError(err),
		})
		return
	}

	msg, err := h.enrollmentService.EnrollIntoCourse(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Message: msg,
	})
}

// WithdrawFromCourse handles POST /my-registration/withdraw
func (h *RegistrationHandler) WithdrawFromCourse(c *gin.Context) {
	var req domain.EnrollCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, APIResponse{
			Success: false,
			Message: "Invalid request format",
			Errors:  err.Error(),
		})
		return
	}

	if err := validator.ValidateStruct(&req); err != nil {
		c.JSON(http.StatusBadRequest, APIResponse{
			Success: false,
			Message: "Validation failed",
			Errors:  validator.FormatValidationError(err),
		})
		return
	}

	msg, err := h.enrollmentService.WithdrawFromCourse(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Message: msg,
	})
}

// ConfirmMyRegistration handles POST /my-registration/confirm
func (h *RegistrationHandler) ConfirmMyRegistration(c *gin.Context) {
	var req domain.StudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, APIResponse{
			Success: false,
			Message: "Invalid request format",
			Errors:  err.Error(),
		})
		return
	}

	if err := validator.ValidateStruct(&req); err != nil {
		c.JSON(http.StatusBadRequest, APIResponse{
			Success: false,
			Message: "Validation failed",
			Errors:  validator.FormatValidationError(err),
		})
		return
	}

	msg, err := h.registrationService.ConfirmMyRegistration(c.Request.Context(), req.StudentNumber)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Message: msg,
	})
}

// GetMyRegistration handles GET /my-registration
func (h *RegistrationHandler) GetMyRegistration(c *gin.Context) {
	studentNumber := c.Query("student_number")
	if studentNumber == "" {
		c.JSON(http.StatusBadRequest, APIResponse{
			Success: false,
			Message: "student_number is required",
		})
		return
	}

	response, err := h.registrationService.GetMyRegistration(c.Request.Context(), studentNumber)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Data:    response,
	})
}

// GetAvailableCourses handles GET /my-registration/available-courses
func (h *RegistrationHandler) GetAvailableCourses(c *gin.Context) {
	studentNumber := c.Query("student_number")
	if studentNumber == "" {
		c.JSON(http.StatusBadRequest, APIResponse{
			Success: false,
			Message: "student_number is required",
		})
		return
	}

	courses, err := h.registrationService.GetMySemesterRegCourses(c.Request.Context(), studentNumber)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Data:    courses,
	})
}
