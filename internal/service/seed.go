package service

import (
	"fmt"

	"engbot/internal/domain"
	"engbot/internal/repository"

	"go.uber.org/zap"
)

// starterWords is the catalog a fresh installation begins with
var starterWords = []domain.Word{
	{Word: "Я", Translation: "I"},
	{Word: "Ты", Translation: "You"},
	{Word: "Мы", Translation: "We"},
	{Word: "Привет", Translation: "Hello"},
	{Word: "Имя", Translation: "Name"},
	{Word: "Фамилия", Translation: "Last name"},
	{Word: "Студент", Translation: "Student"},
	{Word: "Работать", Translation: "To work"},
	{Word: "Красивый", Translation: "Beautiful"},
	{Word: "Время", Translation: "Time"},
}

// SeedService fills an empty catalog with the starter words
type SeedService struct {
	wordRepo repository.WordRepository
	logger   *zap.Logger
}

// NewSeedService creates a new seed service
func NewSeedService(wordRepo repository.WordRepository, logger *zap.Logger) *SeedService {
	return &SeedService{
		wordRepo: wordRepo,
		logger:   logger,
	}
}

// SeedStarterWords inserts the starter catalog once. A non-empty words
// table means the catalog is already in use and is left untouched.
func (s *SeedService) SeedStarterWords() error {
	count, err := s.wordRepo.CountWords()
	if err != nil {
		return fmt.Errorf("count words: %w", err)
	}

	if count > 0 {
		s.logger.Info("Catalog already populated, skipping seed", zap.Int("words", count))
		return nil
	}

	for _, w := range starterWords {
		if _, err := s.wordRepo.AddWord(w.Word, w.Translation); err != nil {
			return fmt.Errorf("seed word %q: %w", w.Word, err)
		}
	}

	s.logger.Info("Starter words seeded", zap.Int("words", len(starterWords)))
	return nil
}
