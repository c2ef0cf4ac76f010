package api

import "context"

// DashboardStats is the aggregate activity block of the dashboard.
type DashboardStats struct {
	TotalAssessments   int     `json:"total_assessments"`
	AverageScore       float64 `json:"average_score"`
	LearningStreak     int     `json:"learning_streak"`
	StudyHoursThisWeek int     `json:"study_hours_this_week"`
}

// RecentAssessment is a dashboard row for a past attempt.
type RecentAssessment struct {
	ID          int64   `json:"id"`
	Subject     string  `json:"subject"`
	Score       float64 `json:"score"`
	Status      string  `json:"status"`
	CompletedAt string  `json:"completed_at"`
}

// SkillSummary is a proficiency row on the dashboard.
type SkillSummary struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Proficiency int    `json:"proficiency"`
}

// Dashboard is the student dashboard payload from GET /student/dashboard.
type Dashboard struct {
	User struct {
		ID    int64  `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
		Grade string `json:"grade"`
	} `json:"user"`
	Stats             DashboardStats     `json:"stats"`
	Skills            []SkillSummary     `json:"skills"`
	RecentAssessments []RecentAssessment `json:"recent_assessments"`
	Recommendations   []string           `json:"recommendations"`
}

// Dashboard fetches the student dashboard.
func (c *Client) Dashboard(ctx context.Context) (*Dashboard, error) {
	var out Dashboard
	if err := c.get(ctx, "/student/dashboard", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
