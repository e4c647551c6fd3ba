package service

import (
	"context"
	"math/rand"

	"snaplearn-service/internal/models"
)

type QuizService struct {
	Store ItemStore
}

func NewQuizService(store ItemStore) *QuizService {
	return &QuizService{Store: store}
}

// GenerateQuiz builds a multiple-choice question from the items of one
// category: one correct answer hidden among up to three distractors. When
// the category is empty or no store is connected, a fixed colors pool is
// used instead. A category with a single item yields a single-option quiz.
func (s *QuizService) GenerateQuiz(ctx context.Context, category string) (*models.Quiz, error) {
	var pool []models.Item
	if s.Store != nil {
		var err error
		pool, err = s.Store.FindByCategory(ctx, category)
		if err != nil {
			return nil, err
		}
	}
	if len(pool) == 0 {
		pool = models.FallbackQuizPool
	}

	correctIdx := rand.Intn(len(pool))
	correct := pool[correctIdx]

	// Distractors are everything but the chosen index, so duplicate-valued
	// items stay distinguishable.
	wrongs := make([]models.Item, 0, len(pool)-1)
	for i, it := range pool {
		if i != correctIdx {
			wrongs = append(wrongs, it)
		}
	}
	rand.Shuffle(len(wrongs), func(i, j int) {
		wrongs[i], wrongs[j] = wrongs[j], wrongs[i]
	})
	if len(wrongs) > 3 {
		wrongs = wrongs[:3]
	}

	// Second shuffle so the correct option is not biased toward any slot.
	choices := append([]models.Item{correct}, wrongs...)
	rand.Shuffle(len(choices), func(i, j int) {
		choices[i], choices[j] = choices[j], choices[i]
	})

	quiz := &models.Quiz{
		Question: "Select: " + correct.Label,
		Options:  make([]models.QuizOption, 0, len(choices)),
		Answer:   models.QuizAnswer{Key: correct.Key},
	}
	for _, c := range choices {
		quiz.Options = append(quiz.Options, models.QuizOption{
			Label:   c.Label,
			Display: c.Display,
			Key:     c.Key,
		})
	}
	return quiz, nil
}
