package domain

import "errors"

var (
	// ErrNoWordsLeft means the user has learned every word in the catalog.
	ErrNoWordsLeft = errors.New("no unlearned words left")

	// ErrNoActiveQuestion means an answer arrived while no question is pending.
	ErrNoActiveQuestion = errors.New("no active question")

	// ErrHistoryEmpty means "back" was pressed with an empty history stack.
	ErrHistoryEmpty = errors.New("word history is empty")

	// ErrNoPreviousWord means "back" discarded the current question and
	// found nothing older to return to.
	ErrNoPreviousWord = errors.New("no previous word")

	// ErrWordNotFound means no catalog entry matches the given term.
	ErrWordNotFound = errors.New("word not found")

	// ErrBadPairFormat means the word-translation input did not contain
	// exactly one dash separator.
	ErrBadPairFormat = errors.New("expected format: слово-translation")

	// ErrEmptyPairField means the word or the translation was empty after trimming.
	ErrEmptyPairField = errors.New("word and translation cannot be empty")
)
