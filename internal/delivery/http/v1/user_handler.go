package v1

import (
	"net/http"

	"go-skillmarket-backend/internal/delivery/http/response"
	"go-skillmarket-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	authUC domain.AuthUsecase
}

func NewUserHandler(protected *gin.RouterGroup, authUC domain.AuthUsecase) {
	handler := &UserHandler{authUC: authUC}

	users := protected.Group("/users")
	{
		users.GET("/:id", handler.GetByID)
	}
}

// GetByID godoc
// @Summary      Get a user profile
// @Description  Fetch a user's profile by id, credential stripped
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /users/{id} [get]
// @Security     BearerAuth
func (h *UserHandler) GetByID(c *gin.Context) {
	user, err := h.authUC.GetCurrentUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "User profile", user)
}
