package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartAssessment(t *testing.T) {
	var gotPath, gotSubject string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotSubject = r.URL.Query().Get("subject_id")
		_, _ = w.Write([]byte(`{
			"assessment_id": 42,
			"title": "Mathematics Assessment",
			"total_questions": 2,
			"questions": [
				{"id": 101, "question_text": "2+2?", "options": ["3","4"], "difficulty": 1, "topic": "arithmetic", "time_limit_seconds": 60},
				{"id": 102, "question_text": "3*3?", "options": ["9","6"], "difficulty": 2, "topic": "arithmetic", "time_limit_seconds": 60}
			]
		}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	resp, err := c.StartAssessment(context.Background(), 5)
	require.NoError(t, err)

	assert.Equal(t, "/assessments/start", gotPath)
	assert.Equal(t, "5", gotSubject)
	assert.Equal(t, int64(42), resp.AssessmentID)
	require.Len(t, resp.Questions, 2)
	assert.Equal(t, int64(101), resp.Questions[0].ID)
	assert.Equal(t, "arithmetic", resp.Questions[0].Topic)
}

func TestSubmitAssessment(t *testing.T) {
	var gotPath string
	var gotBody SubmitAssessmentRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_, _ = w.Write([]byte(`{
			"assessment_id": 42,
			"score": 67.0,
			"correct_answers": 2,
			"total_questions": 3,
			"gap_analysis": {
				"gaps": [{"topic": "fractions", "accuracy": 0.2, "severity": "high"}],
				"strengths": [{"topic": "arithmetic", "accuracy": 0.9}],
				"overall_level": "intermediate"
			},
			"recommendations": ["Practice fractions"]
		}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	result, err := c.SubmitAssessment(context.Background(), 42, SubmitAssessmentRequest{
		Answers: []AnswerSubmission{
			{QuestionID: 101, Answer: "4", TimeTakenSeconds: 7},
			{QuestionID: 102, Answer: "9", TimeTakenSeconds: 12},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "/assessments/42/submit", gotPath)
	require.Len(t, gotBody.Answers, 2)
	assert.Equal(t, int64(101), gotBody.Answers[0].QuestionID)
	assert.Equal(t, 7, gotBody.Answers[0].TimeTakenSeconds)

	assert.InDelta(t, 67.0, result.Score, 0.001)
	assert.Equal(t, "intermediate", result.GapAnalysis.OverallLevel)
	require.Len(t, result.GapAnalysis.Gaps, 1)
	assert.Equal(t, "fractions", result.GapAnalysis.Gaps[0].Topic)
}

func TestSubjects(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/assessments/subjects", r.URL.Path)
		_, _ = w.Write([]byte(`[
			{"id": 5, "name": "Mathematics", "description": "Numbers and more", "grade_levels": ["6","7"], "topics": ["arithmetic"]}
		]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	subjects, err := c.Subjects(context.Background())
	require.NoError(t, err)
	require.Len(t, subjects, 1)
	assert.Equal(t, "Mathematics", subjects[0].Name)
}

func TestLoginDecodesTokenPair(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/login", r.URL.Path)
		var body LoginRequest
		_ = json.NewDecoder(r.Body).Decode(&body)
		assert.Equal(t, "student@example.com", body.Email)
		_, _ = w.Write([]byte(`{
			"access_token": "acc",
			"refresh_token": "ref",
			"token_type": "bearer",
			"user": {"id": 7, "email": "student@example.com", "full_name": "Sam", "role": "student"}
		}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	tr, err := c.Login(context.Background(), LoginRequest{Email: "student@example.com", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "acc", tr.AccessToken)
	assert.Equal(t, RoleStudent, tr.User.Role)
}

func TestRefreshSendsTokenAsQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/refresh", r.URL.Path)
		assert.Equal(t, "ref-1", r.URL.Query().Get("refresh_token"))
		_, _ = w.Write([]byte(`{"access_token": "acc-2", "token_type": "bearer"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	tok, err := c.Refresh(context.Background(), "ref-1")
	require.NoError(t, err)
	assert.Equal(t, "acc-2", tok)
}
