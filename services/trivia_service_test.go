package services

import (
	"testing"

	"trivia/models"
)

func TestPaginateQuestions(t *testing.T) {
	questions := make([]models.Question, 19)
	for i := range questions {
		questions[i] = models.Question{ID: uint(i + 1)}
	}

	tests := []struct {
		name    string
		page    int
		wantLen int
		wantIDs []uint
	}{
		{name: "first page", page: 1, wantLen: 10, wantIDs: []uint{1, 10}},
		{name: "last partial page", page: 2, wantLen: 9, wantIDs: []uint{11, 19}},
		{name: "past the end", page: 4, wantLen: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PaginateQuestions(questions, tt.page)
			if got == nil {
				t.Fatal("expected non-nil slice")
			}
			if len(got) != tt.wantLen {
				t.Fatalf("expected %d questions, got %d", tt.wantLen, len(got))
			}
			if tt.wantLen > 0 {
				if got[0].ID != tt.wantIDs[0] || got[len(got)-1].ID != tt.wantIDs[1] {
					t.Errorf("expected ids %d..%d, got %d..%d",
						tt.wantIDs[0], tt.wantIDs[1], got[0].ID, got[len(got)-1].ID)
				}
			}
		})
	}
}

func TestPaginateQuestionsEmptySelection(t *testing.T) {
	got := PaginateQuestions(nil, 1)
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty slice, got %v", got)
	}
}
