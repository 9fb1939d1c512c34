package services

import (
	"errors"
	"math/rand"
	"strings"

	"trivia/models"

	"gorm.io/gorm"
)

const QuestionsPerPage = 10

// Quiz play accepts category 0 ("all") or one of the six seeded categories.
const MaxCategoryID = 6

type TriviaService struct {
	db *gorm.DB
}

func NewTriviaService(db *gorm.DB) *TriviaService {
	return &TriviaService{db: db}
}

// PaginateQuestions returns the 1-indexed page window of an already
// ordered selection. Pages past the end come back empty, never nil.
func PaginateQuestions(questions []models.Question, page int) []models.Question {
	start := (page - 1) * QuestionsPerPage
	if start >= len(questions) {
		return []models.Question{}
	}
	end := start + QuestionsPerPage
	if end > len(questions) {
		end = len(questions)
	}
	return questions[start:end]
}

// ListCategories returns the category map keyed by id.
func (s *TriviaService) ListCategories() (map[uint]string, error) {
	var categories []models.Category
	if err := s.db.Find(&categories).Error; err != nil {
		return nil, err
	}

	result := make(map[uint]string, len(categories))
	for _, category := range categories {
		result[category.ID] = category.Type
	}
	return result, nil
}

func (s *TriviaService) CategoryExists(id uint) (bool, error) {
	var category models.Category
	err := s.db.First(&category, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *TriviaService) ListQuestions() ([]models.Question, error) {
	var questions []models.Question
	err := s.db.Order("id").Find(&questions).Error
	return questions, err
}

func (s *TriviaService) ListQuestionsByCategory(categoryID uint) ([]models.Question, error) {
	var questions []models.Question
	err := s.db.Where("category = ?", categoryID).Order("id").Find(&questions).Error
	return questions, err
}

// SearchQuestions matches the term as a case-insensitive substring of the
// question text. lower() instead of ILIKE so the query also runs on sqlite.
func (s *TriviaService) SearchQuestions(term string) ([]models.Question, error) {
	var questions []models.Question
	pattern := "%" + strings.ToLower(term) + "%"
	err := s.db.Where("lower(question) LIKE ?", pattern).Order("id").Find(&questions).Error
	return questions, err
}

func (s *TriviaService) CreateQuestion(question *models.Question) error {
	return s.db.Create(question).Error
}

// DeleteQuestion removes a question by id. Returns gorm.ErrRecordNotFound
// when no such question exists; success means the delete committed.
func (s *TriviaService) DeleteQuestion(id uint) error {
	var question models.Question
	if err := s.db.First(&question, id).Error; err != nil {
		return err
	}
	return s.db.Delete(&question).Error
}

// DrawQuestion picks one question uniformly at random, excluding ids the
// player has already seen. Category 0 means any category. A nil question
// with a nil error means the candidate set is exhausted.
func (s *TriviaService) DrawQuestion(categoryID uint, previous []uint) (*models.Question, error) {
	query := s.db.Order("id")
	if categoryID > 0 {
		query = query.Where("category = ?", categoryID)
	}
	if len(previous) > 0 {
		query = query.Where("id NOT IN ?", previous)
	}

	var candidates []models.Question
	if err := query.Find(&candidates).Error; err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, nil
	}
	return &candidates[rand.Intn(len(candidates))], nil
}
