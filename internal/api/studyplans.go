package api

import "context"

// StudyPlan is a summary row from GET /study-plans/.
type StudyPlan struct {
	ID        int64   `json:"id"`
	Title     string  `json:"title"`
	SubjectID int64   `json:"subject_id"`
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
	Status    string  `json:"status"`
	Progress  float64 `json:"progress"`
}

// GeneratePlanRequest is the body of POST /study-plans/generate.
type GeneratePlanRequest struct {
	SubjectID  int64    `json:"subject_id"`
	Topics     []string `json:"topics"`
	StartDate  string   `json:"start_date"`
	EndDate    string   `json:"end_date"`
	DailyHours float64  `json:"daily_hours,omitempty"`
	FocusAreas []string `json:"focus_areas,omitempty"`
}

// StudyPlans lists the current user's plans, newest first.
func (c *Client) StudyPlans(ctx context.Context) ([]StudyPlan, error) {
	var out struct {
		Plans []StudyPlan `json:"plans"`
	}
	if err := c.get(ctx, "/study-plans/", nil, &out); err != nil {
		return nil, err
	}
	return out.Plans, nil
}

// GenerateStudyPlan asks the platform to build a personalized plan.
func (c *Client) GenerateStudyPlan(ctx context.Context, req GeneratePlanRequest) error {
	return c.post(ctx, "/study-plans/generate", nil, req, nil)
}
