package handler

import (
	"sync"

	"engbot/internal/domain"
	"engbot/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler manages all bot interactions
type Handler struct {
	bot          *tele.Bot
	quizService  *service.QuizService
	vocabService *service.VocabService
	logger       *zap.Logger

	// Two-step admin flow states (waiting for a pair / a term to delete)
	states   map[int64]domain.UserState
	stateMux sync.RWMutex
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	quizService *service.QuizService,
	vocabService *service.VocabService,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:          bot,
		quizService:  quizService,
		vocabService: vocabService,
		logger:       logger,
		states:       make(map[int64]domain.UserState),
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle(tele.OnText, h.handleText)
}

// GetState returns user's current admin-flow state
func (h *Handler) GetState(userID int64) domain.UserState {
	h.stateMux.RLock()
	defer h.stateMux.RUnlock()

	state, exists := h.states[userID]
	if !exists {
		return domain.StateIdle
	}
	return state
}

// SetState sets user's admin-flow state
func (h *Handler) SetState(userID int64, state domain.UserState) {
	h.stateMux.Lock()
	defer h.stateMux.Unlock()
	h.states[userID] = state
}

// ResetState resets user to idle state
func (h *Handler) ResetState(userID int64) {
	h.SetState(userID, domain.StateIdle)
}

// mainMenuMarkup returns the main menu keyboard
func mainMenuMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{ResizeKeyboard: true}
	menu.Reply(
		menu.Row(menu.Text(domain.ButtonQuiz)),
		menu.Row(menu.Text(domain.ButtonAddWord), menu.Text(domain.ButtonDeleteWord)),
	)
	return menu
}

// questionMarkup returns a keyboard with one row per answer option
// plus the Дальше/Назад navigation row
func questionMarkup(q *domain.Question) *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{ResizeKeyboard: true}

	rows := make([]tele.Row, 0, len(q.Options)+1)
	for _, option := range q.Options {
		rows = append(rows, menu.Row(menu.Text(option)))
	}
	rows = append(rows, menu.Row(menu.Text(domain.ButtonNext), menu.Text(domain.ButtonBack)))

	menu.Reply(rows...)
	return menu
}
