package v1

import (
	"net/http"
	"strconv"
	"strings"

	"go-skillmarket-backend/internal/delivery/http/response"
	"go-skillmarket-backend/internal/domain"
	"go-skillmarket-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type CandidateHandler struct {
	searchUC domain.CandidateSearchUsecase
}

func NewCandidateHandler(protected *gin.RouterGroup, searchUC domain.CandidateSearchUsecase) {
	handler := &CandidateHandler{searchUC: searchUC}

	candidates := protected.Group("/candidates")
	{
		candidates.GET("/search", handler.Search)
	}
}

// Search godoc
// @Summary      Search candidates
// @Description  Filter candidates by minimum skill points and skill tags (any tag matches), sorted by skill points descending. Employer only.
// @Tags         candidates
// @Produce      json
// @Param        min_skill_points  query     int     false  "Minimum skill points"
// @Param        skills            query     string  false  "Comma-separated skill tags"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /candidates/search [get]
// @Security     BearerAuth
func (h *CandidateHandler) Search(c *gin.Context) {
	role := c.GetString(string(domain.KeyUserRole))
	if role != domain.RoleEmployer {
		c.Error(apperror.Forbidden("Only employers can search candidates"))
		return
	}

	var query domain.CandidateQuery

	if raw := c.Query("min_skill_points"); raw != "" {
		min, err := strconv.Atoi(raw)
		if err != nil {
			c.Error(apperror.BadRequest("min_skill_points must be an integer"))
			return
		}
		query.MinSkillPoints = &min
	}

	if raw := c.Query("skills"); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			if s = strings.TrimSpace(s); s != "" {
				query.Skills = append(query.Skills, s)
			}
		}
	}

	candidates, err := h.searchUC.Search(c.Request.Context(), query)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidate search results", candidates)
}
