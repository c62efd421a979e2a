package testutil

import (
	"engbot/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestWord creates a test word
func NewTestWord(id int, word, translation string) *domain.Word {
	return &domain.Word{
		ID:          id,
		Word:        word,
		Translation: translation,
	}
}
