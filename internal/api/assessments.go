package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// Subject is an assessable subject area.
type Subject struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	GradeLevels []string `json:"grade_levels"`
	Topics      []string `json:"topics"`
}

// Question is a single assessment question. The correct answer never
// leaves the server.
type Question struct {
	ID               int64    `json:"id"`
	QuestionText     string   `json:"question_text"`
	Options          []string `json:"options"`
	Difficulty       int      `json:"difficulty"`
	Topic            string   `json:"topic"`
	TimeLimitSeconds int      `json:"time_limit_seconds"`
}

// StartAssessmentResponse is the attempt issued by POST /assessments/start.
type StartAssessmentResponse struct {
	AssessmentID   int64      `json:"assessment_id"`
	Title          string     `json:"title"`
	TotalQuestions int        `json:"total_questions"`
	Questions      []Question `json:"questions"`
}

// AnswerSubmission is one answered question in the submit batch.
type AnswerSubmission struct {
	QuestionID       int64  `json:"question_id"`
	Answer           string `json:"answer"`
	TimeTakenSeconds int    `json:"time_taken_seconds"`
}

// SubmitAssessmentRequest is the body of POST /assessments/{id}/submit.
type SubmitAssessmentRequest struct {
	Answers []AnswerSubmission `json:"answers"`
}

// TopicGap is a weak topic in the gap analysis.
type TopicGap struct {
	Topic    string  `json:"topic"`
	Accuracy float64 `json:"accuracy"`
	Severity string  `json:"severity"`
}

// TopicStrength is a strong topic in the gap analysis.
type TopicStrength struct {
	Topic    string  `json:"topic"`
	Accuracy float64 `json:"accuracy"`
}

// GapAnalysis is the server-computed per-topic breakdown.
type GapAnalysis struct {
	Gaps         []TopicGap      `json:"gaps"`
	Strengths    []TopicStrength `json:"strengths"`
	OverallLevel string          `json:"overall_level"`
}

// AssessmentResult is the graded outcome of a submitted attempt.
type AssessmentResult struct {
	AssessmentID    int64       `json:"assessment_id"`
	Score           float64     `json:"score"`
	CorrectAnswers  int         `json:"correct_answers"`
	TotalQuestions  int         `json:"total_questions"`
	GapAnalysis     GapAnalysis `json:"gap_analysis"`
	Recommendations []string    `json:"recommendations"`
}

// Subjects lists all assessable subjects.
func (c *Client) Subjects(ctx context.Context) ([]Subject, error) {
	var out []Subject
	if err := c.get(ctx, "/assessments/subjects", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// StartAssessment opens a new attempt for the given subject.
func (c *Client) StartAssessment(ctx context.Context, subjectID int64) (*StartAssessmentResponse, error) {
	q := url.Values{"subject_id": {strconv.FormatInt(subjectID, 10)}}
	var out StartAssessmentResponse
	if err := c.post(ctx, "/assessments/start", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SubmitAssessment submits the full answer batch for grading.
func (c *Client) SubmitAssessment(ctx context.Context, assessmentID int64, req SubmitAssessmentRequest) (*AssessmentResult, error) {
	var out AssessmentResult
	path := fmt.Sprintf("/assessments/%d/submit", assessmentID)
	if err := c.post(ctx, path, nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// QuestionReview is one graded question in the detailed results.
type QuestionReview struct {
	QuestionID    int64  `json:"question_id"`
	QuestionText  string `json:"question_text"`
	YourAnswer    string `json:"your_answer"`
	CorrectAnswer string `json:"correct_answer"`
	IsCorrect     bool   `json:"is_correct"`
	Explanation   string `json:"explanation"`
	Topic         string `json:"topic"`
}

// AssessmentDetails is the post-hoc result view from GET /assessments/{id}/results.
type AssessmentDetails struct {
	AssessmentID    int64            `json:"assessment_id"`
	Subject         string           `json:"subject"`
	Score           float64          `json:"score"`
	CorrectAnswers  int              `json:"correct_answers"`
	TotalQuestions  int              `json:"total_questions"`
	CompletedAt     string           `json:"completed_at"`
	GapAnalysis     GapAnalysis      `json:"gap_analysis"`
	Recommendations []string         `json:"recommendations"`
	Responses       []QuestionReview `json:"responses"`
}

// AssessmentResults fetches the detailed results of a completed attempt.
func (c *Client) AssessmentResults(ctx context.Context, assessmentID int64) (*AssessmentDetails, error) {
	var out AssessmentDetails
	path := fmt.Sprintf("/assessments/%d/results", assessmentID)
	if err := c.get(ctx, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
