package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestAppendAndRecent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)
	attempts := []Attempt{
		{ID: "a-1", AssessmentID: 40, Subject: "Mathematics", Score: 50, CorrectAnswers: 5, TotalQuestions: 10, OverallLevel: "beginner", CompletedAt: base},
		{ID: "a-2", AssessmentID: 41, Subject: "Science", Score: 80, CorrectAnswers: 8, TotalQuestions: 10, OverallLevel: "advanced", CompletedAt: base.Add(time.Hour)},
		{ID: "a-3", AssessmentID: 42, Subject: "Mathematics", Score: 67, CorrectAnswers: 2, TotalQuestions: 3, OverallLevel: "intermediate", CompletedAt: base.Add(2 * time.Hour)},
	}
	for _, a := range attempts {
		if err := s.Append(ctx, a); err != nil {
			t.Fatalf("Append %s: %v", a.ID, err)
		}
	}

	got, err := s.Recent(ctx, 0)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("Recent returned %d attempts, want 3", len(got))
	}
	if got[0].ID != "a-3" || got[2].ID != "a-1" {
		t.Errorf("order = %s..%s, want newest first", got[0].ID, got[2].ID)
	}
	if got[0].Score != 67 || got[0].OverallLevel != "intermediate" {
		t.Errorf("attempt a-3 round-tripped as %+v", got[0])
	}
	if !got[0].CompletedAt.Equal(base.Add(2 * time.Hour)) {
		t.Errorf("CompletedAt = %v, want %v", got[0].CompletedAt, base.Add(2*time.Hour))
	}
}

func TestRecentLimit(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		a := Attempt{
			ID:           string(rune('a'+i)) + "-id",
			AssessmentID: int64(i),
			Subject:      "Mathematics",
			CompletedAt:  base.Add(time.Duration(i) * time.Minute),
		}
		if err := s.Append(ctx, a); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	got, err := s.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("Recent(2) returned %d attempts, want 2", len(got))
	}
}

func TestRecentEmpty(t *testing.T) {
	s := openTestStore(t)
	got, err := s.Recent(context.Background(), 10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Recent on empty store returned %d attempts", len(got))
	}
}

func TestDuplicateIDRejected(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	a := Attempt{ID: "dup", AssessmentID: 1, Subject: "Math", CompletedAt: time.Now()}
	if err := s.Append(ctx, a); err != nil {
		t.Fatalf("first Append: %v", err)
	}
	if err := s.Append(ctx, a); err == nil {
		t.Error("second Append with same id succeeded, want error")
	}
}
