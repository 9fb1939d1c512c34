package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"trivia/models"
	"trivia/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type TriviaHandler struct {
	triviaService *services.TriviaService
}

func NewTriviaHandler(triviaService *services.TriviaService) *TriviaHandler {
	return &TriviaHandler{
		triviaService: triviaService,
	}
}

type CategoryListResponse struct {
	Success    bool            `json:"success"`
	Categories map[uint]string `json:"categories"`
}

type QuestionListResponse struct {
	Success         bool              `json:"success"`
	Questions       []models.Question `json:"questions"`
	TotalQuestions  int               `json:"total_questions"`
	Categories      map[uint]string   `json:"categories,omitempty"`
	CurrentCategory *uint             `json:"current_category"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

// QuestionPostRequest covers both operations behind POST /questions.
// A non-nil, non-empty SearchTerm selects the search branch; otherwise
// the remaining fields describe a question to create.
type QuestionPostRequest struct {
	SearchTerm *string `json:"searchTerm"`
	Question   string  `json:"question"`
	Answer     string  `json:"answer"`
	Difficulty int     `json:"difficulty"`
	Category   uint    `json:"category"`
}

type QuizRequest struct {
	PreviousQuestions []uint `json:"previous_questions"`
	QuizCategory      struct {
		ID int `json:"id"`
	} `json:"quiz_category"`
}

type QuizResponse struct {
	Success  bool             `json:"success"`
	Question *models.Question `json:"question,omitempty"`
}

// pageParam reads the 1-indexed page query parameter, defaulting to 1
// when absent or malformed.
func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

func (h *TriviaHandler) GetCategories(c *gin.Context) {
	categories, err := h.triviaService.ListCategories()
	if err != nil {
		abortWithError(c, http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, CategoryListResponse{
		Success:    true,
		Categories: categories,
	})
}

func (h *TriviaHandler) GetQuestions(c *gin.Context) {
	questions, err := h.triviaService.ListQuestions()
	if err != nil {
		abortWithError(c, http.StatusInternalServerError)
		return
	}

	page := services.PaginateQuestions(questions, pageParam(c))
	if len(page) == 0 {
		abortWithError(c, http.StatusNotFound)
		return
	}

	categories, err := h.triviaService.ListCategories()
	if err != nil {
		abortWithError(c, http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, QuestionListResponse{
		Success:         true,
		Questions:       page,
		TotalQuestions:  len(questions),
		Categories:      categories,
		CurrentCategory: nil,
	})
}

func (h *TriviaHandler) DeleteQuestion(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		abortWithError(c, http.StatusNotFound)
		return
	}

	if err := h.triviaService.DeleteQuestion(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			abortWithError(c, http.StatusNotFound)
		} else {
			abortWithError(c, http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

// PostQuestions is the shared create/search endpoint: the request body
// decides which operation runs.
func (h *TriviaHandler) PostQuestions(c *gin.Context) {
	var req QuestionPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusUnprocessableEntity)
		return
	}

	if req.SearchTerm != nil && *req.SearchTerm != "" {
		h.searchQuestions(c, *req.SearchTerm)
		return
	}
	h.createQuestion(c, &req)
}

func (h *TriviaHandler) searchQuestions(c *gin.Context, term string) {
	questions, err := h.triviaService.SearchQuestions(term)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError)
		return
	}

	// Zero matches is still a valid page, unlike GET /questions.
	c.JSON(http.StatusOK, QuestionListResponse{
		Success:         true,
		Questions:       services.PaginateQuestions(questions, pageParam(c)),
		TotalQuestions:  len(questions),
		CurrentCategory: nil,
	})
}

func (h *TriviaHandler) createQuestion(c *gin.Context, req *QuestionPostRequest) {
	if req.Question == "" || req.Answer == "" || req.Difficulty == 0 || req.Category == 0 {
		abortWithError(c, http.StatusUnprocessableEntity)
		return
	}

	question := models.Question{
		Question:   req.Question,
		Answer:     req.Answer,
		Difficulty: req.Difficulty,
		Category:   req.Category,
	}
	if err := h.triviaService.CreateQuestion(&question); err != nil {
		abortWithError(c, http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

func (h *TriviaHandler) GetQuestionsByCategory(c *gin.Context) {
	categoryID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		abortWithError(c, http.StatusNotFound)
		return
	}

	exists, err := h.triviaService.CategoryExists(uint(categoryID))
	if err != nil {
		abortWithError(c, http.StatusInternalServerError)
		return
	}
	if !exists {
		abortWithError(c, http.StatusNotFound)
		return
	}

	questions, err := h.triviaService.ListQuestionsByCategory(uint(categoryID))
	if err != nil {
		abortWithError(c, http.StatusInternalServerError)
		return
	}

	current := uint(categoryID)
	c.JSON(http.StatusOK, QuestionListResponse{
		Success:         true,
		Questions:       services.PaginateQuestions(questions, pageParam(c)),
		TotalQuestions:  len(questions),
		CurrentCategory: &current,
	})
}

// NextQuizQuestion draws a random question the player has not seen yet.
// The caller resubmits the growing previous_questions list each round;
// an exhausted category answers success with no question.
func (h *TriviaHandler) NextQuizQuestion(c *gin.Context) {
	var req QuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusInternalServerError)
		return
	}

	if req.QuizCategory.ID < 0 || req.QuizCategory.ID > services.MaxCategoryID {
		abortWithError(c, http.StatusNotFound)
		return
	}

	question, err := h.triviaService.DrawQuestion(uint(req.QuizCategory.ID), req.PreviousQuestions)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, QuizResponse{
		Success:  true,
		Question: question,
	})
}
