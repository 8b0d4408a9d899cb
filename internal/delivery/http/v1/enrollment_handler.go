package v1

import (
	"net/http"

	"go-skillmarket-backend/internal/delivery/http/response"
	"go-skillmarket-backend/internal/domain"
	"go-skillmarket-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type EnrollmentHandler struct {
	enrollmentUC domain.EnrollmentUsecase
}

func NewEnrollmentHandler(protected *gin.RouterGroup, enrollmentUC domain.EnrollmentUsecase) {
	handler := &EnrollmentHandler{enrollmentUC: enrollmentUC}

	enrollments := protected.Group("/enrollments")
	{
		enrollments.GET("", handler.List)
		enrollments.POST("", handler.Enroll)
		enrollments.PATCH("/:id/progress", handler.UpdateProgress)
		enrollments.POST("/:id/complete", handler.Complete)
	}

	protected.GET("/certificates", handler.ListCertificates)
}

type EnrollRequest struct {
	CourseID string `json:"course_id" binding:"required"`
}

type UpdateProgressRequest struct {
	Progress         *int `json:"progress" binding:"required,min=0,max=100"`
	CompletedLessons *int `json:"completed_lessons" binding:"required,min=0"`
}

// List godoc
// @Summary      List my enrollments
// @Description  Get the caller's enrollments, each enriched with the course
// @Tags         enrollments
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /enrollments [get]
// @Security     BearerAuth
func (h *EnrollmentHandler) List(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	enrollments, err := h.enrollmentUC.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Enrollment list", enrollments)
}

// Enroll godoc
// @Summary      Enroll in a course
// @Description  Creates an enrollment; fails with 409 when already enrolled
// @Tags         enrollments
// @Accept       json
// @Produce      json
// @Param        enrollment  body      EnrollRequest  true  "Course to enroll in"
// @Success      201  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /enrollments [post]
// @Security     BearerAuth
func (h *EnrollmentHandler) Enroll(c *gin.Context) {
	var req EnrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))

	enrollment, err := h.enrollmentUC.Enroll(c.Request.Context(), userID, req.CourseID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Enrolled", enrollment)
}

// UpdateProgress godoc
// @Summary      Update enrollment progress
// @Description  Overwrites progress and completed lessons; out-of-range values are rejected
// @Tags         enrollments
// @Accept       json
// @Produce      json
// @Param        id        path      string                 true  "Enrollment ID"
// @Param        progress  body      UpdateProgressRequest  true  "Progress values"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /enrollments/{id}/progress [patch]
// @Security     BearerAuth
func (h *EnrollmentHandler) UpdateProgress(c *gin.Context) {
	var req UpdateProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))

	enrollment, err := h.enrollmentUC.UpdateProgress(c.Request.Context(), userID, c.Param("id"), *req.Progress, *req.CompletedLessons)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Progress updated", enrollment)
}

// Complete godoc
// @Summary      Complete a course
// @Description  Marks the enrollment complete, awards skill points, and issues the certificate. Idempotency: a second call returns 409.
// @Tags         enrollments
// @Produce      json
// @Param        id   path      string  true  "Enrollment ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /enrollments/{id}/complete [post]
// @Security     BearerAuth
func (h *EnrollmentHandler) Complete(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	result, err := h.enrollmentUC.Complete(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Course completed", result)
}

// ListCertificates godoc
// @Summary      List my certificates
// @Description  Get all certificates earned by the caller
// @Tags         certificates
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /certificates [get]
// @Security     BearerAuth
func (h *EnrollmentHandler) ListCertificates(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	certificates, err := h.enrollmentUC.ListCertificates(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Certificate list", certificates)
}
