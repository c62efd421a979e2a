package repository

import (
	"engbot/internal/domain"
)

// UserRepository defines user data operations
type UserRepository interface {
	EnsureUser(user domain.User) error
}

// WordRepository defines word catalog and learning-progress operations
type WordRepository interface {
	AddWord(word, translation string) (*domain.Word, error)
	FindByWord(word string) (*domain.Word, error)
	GetRandomUnlearned(userID int64) (*domain.Word, error)
	SampleTranslations(exclude string, limit int) ([]string, error)
	MarkLearned(userID int64, wordID int) error
	UnmarkLearned(userID int64, wordID int) error
	CountWords() (int, error)
}
