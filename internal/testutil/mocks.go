package testutil

import (
	"engbot/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock for UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) EnsureUser(user domain.User) error {
	args := m.Called(user)
	return args.Error(0)
}

// MockWordRepository is a mock for WordRepository
type MockWordRepository struct {
	mock.Mock
}

func (m *MockWordRepository) AddWord(word, translation string) (*domain.Word, error) {
	args := m.Called(word, translation)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Word), args.Error(1)
}

func (m *MockWordRepository) FindByWord(word string) (*domain.Word, error) {
	args := m.Called(word)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Word), args.Error(1)
}

func (m *MockWordRepository) GetRandomUnlearned(userID int64) (*domain.Word, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Word), args.Error(1)
}

func (m *MockWordRepository) SampleTranslations(exclude string, limit int) ([]string, error) {
	args := m.Called(exclude, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockWordRepository) MarkLearned(userID int64, wordID int) error {
	args := m.Called(userID, wordID)
	return args.Error(0)
}

func (m *MockWordRepository) UnmarkLearned(userID int64, wordID int) error {
	args := m.Called(userID, wordID)
	return args.Error(0)
}

func (m *MockWordRepository) CountWords() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}
