package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"snaplearn-service/internal/models"
)

func poolOf(n int) []models.Item {
	items := make([]models.Item, n)
	for i := range items {
		items[i] = models.Item{
			Category: "animals",
			Key:      fmt.Sprintf("k%d", i),
			Label:    fmt.Sprintf("Animal %d", i),
		}
	}
	return items
}

func TestGenerateQuizOptionCount(t *testing.T) {
	for _, poolSize := range []int{1, 2, 3, 4, 5, 8} {
		t.Run(fmt.Sprintf("pool%d", poolSize), func(t *testing.T) {
			s := NewQuizService(&fakeItemStore{items: poolOf(poolSize)})
			quiz, err := s.GenerateQuiz(context.Background(), "animals")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			want := poolSize
			if want > 4 {
				want = 4
			}
			if len(quiz.Options) != want {
				t.Errorf("pool of %d: expected %d options, got %d", poolSize, want, len(quiz.Options))
			}
		})
	}
}

func TestGenerateQuizAnswerAmongOptions(t *testing.T) {
	s := NewQuizService(&fakeItemStore{items: poolOf(8)})
	for i := 0; i < 50; i++ {
		quiz, err := s.GenerateQuiz(context.Background(), "animals")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		found := 0
		for _, o := range quiz.Options {
			if o.Key == quiz.Answer.Key {
				found++
			}
		}
		if found != 1 {
			t.Fatalf("answer key %q appears %d times among options %v", quiz.Answer.Key, found, quiz.Options)
		}
		if !strings.HasPrefix(quiz.Question, "Select: ") {
			t.Errorf("unexpected question text %q", quiz.Question)
		}
	}
}

func TestGenerateQuizShufflesVary(t *testing.T) {
	s := NewQuizService(&fakeItemStore{items: poolOf(8)})
	orders := map[string]bool{}
	for i := 0; i < 30; i++ {
		quiz, err := s.GenerateQuiz(context.Background(), "animals")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		keys := make([]string, len(quiz.Options))
		for j, o := range quiz.Options {
			keys[j] = o.Key
		}
		orders[strings.Join(keys, ",")] = true
	}
	if len(orders) < 2 {
		t.Error("expected option sets to vary across calls, got a single ordering")
	}
}

func TestGenerateQuizSingleItemCategory(t *testing.T) {
	s := NewQuizService(&fakeItemStore{items: poolOf(1)})
	quiz, err := s.GenerateQuiz(context.Background(), "animals")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(quiz.Options) != 1 {
		t.Fatalf("expected a single-option quiz, got %d options", len(quiz.Options))
	}
	if quiz.Options[0].Key != quiz.Answer.Key {
		t.Errorf("single option key %q does not match answer %q", quiz.Options[0].Key, quiz.Answer.Key)
	}
}

func TestGenerateQuizFallbackPool(t *testing.T) {
	cases := []struct {
		name  string
		store ItemStore
	}{
		{"no store", nil},
		{"empty category", &fakeItemStore{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewQuizService(tc.store)
			quiz, err := s.GenerateQuiz(context.Background(), "weather")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(quiz.Options) != 4 {
				t.Fatalf("expected 4 options from the fallback pool, got %d", len(quiz.Options))
			}
			for _, o := range quiz.Options {
				if !contains([]string{"red", "blue", "green", "yellow"}, o.Key) {
					t.Errorf("unexpected fallback option key %q", o.Key)
				}
			}
		})
	}
}

func TestGenerateQuizStoreErrorSurfaces(t *testing.T) {
	s := NewQuizService(&fakeItemStore{err: errors.New("find failed")})
	if _, err := s.GenerateQuiz(context.Background(), "animals"); err == nil {
		t.Error("expected store error to surface, got nil")
	}
}
