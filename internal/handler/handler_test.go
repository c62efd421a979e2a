package handler

import (
	"testing"

	"engbot/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestMainMenuMarkup(t *testing.T) {
	markup := mainMenuMarkup()

	assert.True(t, markup.ResizeKeyboard)
	assert.Len(t, markup.ReplyKeyboard, 2)
	assert.Equal(t, domain.ButtonQuiz, markup.ReplyKeyboard[0][0].Text)
	assert.Equal(t, domain.ButtonAddWord, markup.ReplyKeyboard[1][0].Text)
	assert.Equal(t, domain.ButtonDeleteWord, markup.ReplyKeyboard[1][1].Text)
}

func TestQuestionMarkup(t *testing.T) {
	q := &domain.Question{
		WordID:  4,
		Word:    "Привет",
		Answer:  "Hello",
		Options: []string{"I", "Hello", "You", "We"},
	}

	markup := questionMarkup(q)

	// One row per option plus the navigation row
	assert.Len(t, markup.ReplyKeyboard, 5)
	for i, option := range q.Options {
		assert.Equal(t, option, markup.ReplyKeyboard[i][0].Text)
	}

	navRow := markup.ReplyKeyboard[4]
	assert.Len(t, navRow, 2)
	assert.Equal(t, domain.ButtonNext, navRow[0].Text)
	assert.Equal(t, domain.ButtonBack, navRow[1].Text)
}

func TestQuestionMarkup_SmallCatalog(t *testing.T) {
	q := &domain.Question{
		WordID:  1,
		Word:    "Я",
		Answer:  "I",
		Options: []string{"You", "I"},
	}

	markup := questionMarkup(q)

	assert.Len(t, markup.ReplyKeyboard, 3)
}

func TestHandlerStates(t *testing.T) {
	h := &Handler{states: make(map[int64]domain.UserState)}

	// Unknown user starts idle
	assert.Equal(t, domain.StateIdle, h.GetState(123))

	h.SetState(123, domain.StateWaitingNewPair)
	assert.Equal(t, domain.StateWaitingNewPair, h.GetState(123))

	// Other users are unaffected
	assert.Equal(t, domain.StateIdle, h.GetState(456))

	h.ResetState(123)
	assert.Equal(t, domain.StateIdle, h.GetState(123))
}
