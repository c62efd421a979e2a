package postgres

import (
	"database/sql"
	"strings"

	"engbot/internal/domain"
)

// WordRepo implements repository.WordRepository
type WordRepo struct {
	db *sql.DB
}

// NewWordRepo creates a new word repository
func NewWordRepo(db *sql.DB) *WordRepo {
	return &WordRepo{db: db}
}

// AddWord inserts a word-translation pair and returns the stored entry.
// Both fields must be non-empty after trimming; the catalog never holds
// blank terms or translations.
func (r *WordRepo) AddWord(word, translation string) (*domain.Word, error) {
	word = strings.TrimSpace(word)
	translation = strings.TrimSpace(translation)
	if word == "" || translation == "" {
		return nil, domain.ErrEmptyPairField
	}

	var w domain.Word
	query := `
		INSERT INTO words (russian_word, english_translation)
		VALUES ($1, $2)
		RETURNING word_id, russian_word, english_translation
	`
	err := r.db.QueryRow(query, word, translation).Scan(&w.ID, &w.Word, &w.Translation)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// FindByWord looks up a catalog entry by its Russian term.
// Returns nil when no entry matches.
func (r *WordRepo) FindByWord(word string) (*domain.Word, error) {
	var w domain.Word
	query := `
		SELECT word_id, russian_word, english_translation
		FROM words
		WHERE russian_word = $1
	`
	err := r.db.QueryRow(query, word).Scan(&w.ID, &w.Word, &w.Translation)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &w, nil
}

// GetRandomUnlearned returns a random word the user has not learned yet.
// Returns nil when the user has learned the whole catalog.
func (r *WordRepo) GetRandomUnlearned(userID int64) (*domain.Word, error) {
	var w domain.Word
	query := `
		SELECT word_id, russian_word, english_translation
		FROM words
		WHERE word_id NOT IN (
			SELECT word_id FROM user_word
			WHERE user_id = $1
		)
		ORDER BY RANDOM()
		LIMIT 1
	`
	err := r.db.QueryRow(query, userID).Scan(&w.ID, &w.Word, &w.Translation)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &w, nil
}

// SampleTranslations returns up to limit distinct translations drawn at
// random from the whole catalog, excluding the given one. Returns fewer
// than limit when the catalog is too small.
func (r *WordRepo) SampleTranslations(exclude string, limit int) ([]string, error) {
	query := `
		SELECT english_translation FROM (
			SELECT DISTINCT english_translation
			FROM words
			WHERE english_translation != $1
		) AS candidates
		ORDER BY RANDOM()
		LIMIT $2
	`

	rows, err := r.db.Query(query, exclude, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var translations []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, err
		}
		translations = append(translations, t)
	}

	return translations, rows.Err()
}

// MarkLearned records that the user answered the word correctly.
// Idempotent: the (user_id, word_id) uniqueness makes repeats a no-op.
func (r *WordRepo) MarkLearned(userID int64, wordID int) error {
	query := `
		INSERT INTO user_word (user_id, word_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, word_id) DO NOTHING
	`
	_, err := r.db.Exec(query, userID, wordID)
	return err
}

// UnmarkLearned removes the user's learned mark for the word.
// The catalog entry itself stays, for this user and everyone else.
func (r *WordRepo) UnmarkLearned(userID int64, wordID int) error {
	query := `
		DELETE FROM user_word
		WHERE user_id = $1 AND word_id = $2
	`
	_, err := r.db.Exec(query, userID, wordID)
	return err
}

// CountWords returns the catalog size
func (r *WordRepo) CountWords() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM words`).Scan(&count)
	return count, err
}
