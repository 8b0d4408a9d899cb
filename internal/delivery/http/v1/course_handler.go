package v1

import (
	"net/http"

	"go-skillmarket-backend/internal/delivery/http/response"
	"go-skillmarket-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type CourseHandler struct {
	courseUC domain.CourseUsecase
}

func NewCourseHandler(public *gin.RouterGroup, courseUC domain.CourseUsecase) {
	handler := &CourseHandler{courseUC: courseUC}

	// The catalog is public: browsing requires no account
	courses := public.Group("/courses")
	{
		courses.GET("", handler.List)
		courses.GET("/:id", handler.GetDetails)
	}
}

// List godoc
// @Summary      List courses
// @Description  Get the full course catalog
// @Tags         courses
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /courses [get]
func (h *CourseHandler) List(c *gin.Context) {
	courses, err := h.courseUC.ListCourses(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Course list", courses)
}

// GetDetails godoc
// @Summary      Get course details
// @Description  Get detailed info of one course
// @Tags         courses
// @Produce      json
// @Param        id   path      string  true  "Course ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /courses/{id} [get]
func (h *CourseHandler) GetDetails(c *gin.Context) {
	course, err := h.courseUC.GetCourse(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Course details", course)
}
