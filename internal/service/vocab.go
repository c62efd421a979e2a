package service

import (
	"fmt"
	"strings"

	"engbot/internal/domain"
	"engbot/internal/repository"
)

// VocabService handles manual catalog management
type VocabService struct {
	wordRepo repository.WordRepository
}

// NewVocabService creates a new vocabulary service
func NewVocabService(wordRepo repository.WordRepository) *VocabService {
	return &VocabService{wordRepo: wordRepo}
}

// AddWordPair parses "слово-translation" input and stores the pair.
// Returns domain.ErrBadPairFormat unless the text contains exactly one
// dash, and domain.ErrEmptyPairField when either side is blank.
func (s *VocabService) AddWordPair(raw string) (*domain.Word, error) {
	if strings.Count(raw, "-") != 1 {
		return nil, domain.ErrBadPairFormat
	}

	parts := strings.SplitN(raw, "-", 2)
	word := strings.TrimSpace(parts[0])
	translation := strings.TrimSpace(parts[1])

	if word == "" || translation == "" {
		return nil, domain.ErrEmptyPairField
	}

	entry, err := s.wordRepo.AddWord(word, translation)
	if err != nil {
		return nil, fmt.Errorf("add word: %w", err)
	}
	return entry, nil
}

// DeleteUserWord removes the user's learned mark for the named word.
// The catalog entry itself is kept so other users' progress survives.
// Returns domain.ErrWordNotFound when no entry matches the term.
func (s *VocabService) DeleteUserWord(userID int64, word string) error {
	entry, err := s.wordRepo.FindByWord(strings.TrimSpace(word))
	if err != nil {
		return fmt.Errorf("find word: %w", err)
	}
	if entry == nil {
		return domain.ErrWordNotFound
	}

	if err := s.wordRepo.UnmarkLearned(userID, entry.ID); err != nil {
		return fmt.Errorf("unmark learned: %w", err)
	}
	return nil
}
