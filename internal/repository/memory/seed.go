package memory

import (
	"context"

	"go-skillmarket-backend/internal/domain"
)

// SeedCourses loads the starter catalog into an empty store. Courses have no
// admin surface in this service, so the memory backend ships with these.
func SeedCourses(ctx context.Context, repo domain.CourseRepository) error {
	courses := []domain.Course{
		{
			Title:        "Complete Web Development Bootcamp",
			Description:  "Master web development with HTML, CSS, JavaScript, React, Node.js, and more",
			Instructor:   "Dr. Angela Yu",
			Thumbnail:    "/assets/web-dev.jpg",
			Duration:     "40 hours",
			SkillPoints:  200,
			TotalLessons: 12,
		},
		{
			Title:        "Data Science & Machine Learning",
			Description:  "Learn Python, data analysis, visualization, and machine learning algorithms",
			Instructor:   "Jose Portilla",
			Thumbnail:    "/assets/data-science.jpg",
			Duration:     "35 hours",
			SkillPoints:  250,
			TotalLessons: 15,
		},
		{
			Title:        "Digital Marketing Masterclass",
			Description:  "Master SEO, social media marketing, email marketing, and analytics",
			Instructor:   "Phil Ebiner",
			Thumbnail:    "/assets/digital-marketing.jpg",
			Duration:     "25 hours",
			SkillPoints:  150,
			TotalLessons: 10,
		},
		{
			Title:        "Project Management Professional",
			Description:  "Learn project management methodologies, tools, and best practices",
			Instructor:   "Chris Croft",
			Thumbnail:    "/assets/project-management.jpg",
			Duration:     "30 hours",
			SkillPoints:  180,
			TotalLessons: 12,
		},
	}

	for i := range courses {
		if err := repo.Create(ctx, &courses[i]); err != nil {
			return err
		}
	}
	return nil
}
