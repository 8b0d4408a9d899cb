package v1

import (
	"net/http"

	"go-skillmarket-backend/internal/delivery/http/response"
	"go-skillmarket-backend/internal/domain"
	"go-skillmarket-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ResumeHandler struct {
	unlockUC domain.ResumeUnlockUsecase
}

func NewResumeHandler(protected *gin.RouterGroup, unlockUC domain.ResumeUnlockUsecase) {
	handler := &ResumeHandler{unlockUC: unlockUC}

	resumes := protected.Group("/resumes")
	{
		resumes.POST("/unlock", handler.Unlock)
		resumes.GET("/unlocked", handler.ListUnlocked)
		resumes.GET("/is-unlocked", handler.IsUnlocked)
	}
}

type UnlockRequest struct {
	CandidateID string `json:"candidate_id" binding:"required"`
}

// Unlock godoc
// @Summary      Unlock a candidate resume
// @Description  Grants the employer visibility into the candidate's full profile. No payment is charged; this endpoint stands in for a billing integration.
// @Tags         resumes
// @Accept       json
// @Produce      json
// @Param        unlock  body      UnlockRequest  true  "Candidate to unlock"
// @Success      201  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /resumes/unlock [post]
// @Security     BearerAuth
func (h *ResumeHandler) Unlock(c *gin.Context) {
	var req UnlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	employerID := c.GetString(string(domain.KeyUserID))

	result, err := h.unlockUC.Unlock(c.Request.Context(), employerID, req.CandidateID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Resume unlocked", result)
}

// ListUnlocked godoc
// @Summary      List unlocked candidates
// @Description  All candidate profiles this employer has unlocked
// @Tags         resumes
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /resumes/unlocked [get]
// @Security     BearerAuth
func (h *ResumeHandler) ListUnlocked(c *gin.Context) {
	employerID := c.GetString(string(domain.KeyUserID))

	candidates, err := h.unlockUC.ListUnlockedCandidates(c.Request.Context(), employerID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Unlocked candidates", candidates)
}

// IsUnlocked godoc
// @Summary      Check unlock status
// @Description  Whether the caller has unlocked the given candidate
// @Tags         resumes
// @Produce      json
// @Param        candidate_id  query     string  true  "Candidate ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /resumes/is-unlocked [get]
// @Security     BearerAuth
func (h *ResumeHandler) IsUnlocked(c *gin.Context) {
	candidateID := c.Query("candidate_id")
	if candidateID == "" {
		c.Error(apperror.BadRequest("candidate_id is required"))
		return
	}

	employerID := c.GetString(string(domain.KeyUserID))

	unlocked, err := h.unlockUC.IsUnlocked(c.Request.Context(), employerID, candidateID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Unlock status", gin.H{"is_unlocked": unlocked})
}
