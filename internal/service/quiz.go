package service

import (
	"fmt"
	"math/rand"
	"sync"

	"engbot/internal/domain"
	"engbot/internal/repository"
)

// distractorCount is how many wrong options a question aims for.
// With the correct answer that gives 4 choices; a small catalog yields
// fewer, never padded with duplicates.
const distractorCount = 3

// session is one user's quiz state: the LIFO history of presented
// questions and the question currently awaiting an answer. The mutex
// serializes transitions for that user; different users never share a
// session.
type session struct {
	mu      sync.Mutex
	history []domain.Question
	pending *domain.Question
}

// QuizService runs the question/answer state machine. It owns the
// per-user session store.
type QuizService struct {
	wordRepo repository.WordRepository

	mu       sync.Mutex
	sessions map[int64]*session
}

// NewQuizService creates a new quiz service
func NewQuizService(wordRepo repository.WordRepository) *QuizService {
	return &QuizService{
		wordRepo: wordRepo,
		sessions: make(map[int64]*session),
	}
}

// session returns the user's session, creating it on first use
func (s *QuizService) session(userID int64) *session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, exists := s.sessions[userID]
	if !exists {
		sess = &session{}
		s.sessions[userID] = sess
	}
	return sess
}

// NextQuestion picks a random unlearned word for the user, builds the
// answer options and pushes the question onto the user's history.
// Returns domain.ErrNoWordsLeft when the user has learned every word.
func (s *QuizService) NextQuestion(userID int64) (*domain.Question, error) {
	sess := s.session(userID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	word, err := s.wordRepo.GetRandomUnlearned(userID)
	if err != nil {
		return nil, fmt.Errorf("select next word: %w", err)
	}
	if word == nil {
		return nil, domain.ErrNoWordsLeft
	}

	q := domain.Question{
		WordID: word.ID,
		Word:   word.Word,
		Answer: word.Translation,
	}
	if q.Options, err = s.buildOptions(word.Translation); err != nil {
		return nil, err
	}

	sess.history = append(sess.history, q)
	sess.pending = &q

	return &q, nil
}

// CheckAnswer validates the user's answer against the pending question.
// A correct answer records the word as learned and returns the session
// to idle; a wrong answer leaves the pending question in place so the
// user can try again. Returns domain.ErrNoActiveQuestion when nothing
// is pending.
func (s *QuizService) CheckAnswer(userID int64, answer string) (bool, error) {
	sess := s.session(userID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.pending == nil {
		return false, domain.ErrNoActiveQuestion
	}

	if answer != sess.pending.Answer {
		return false, nil
	}

	if err := s.wordRepo.MarkLearned(userID, sess.pending.WordID); err != nil {
		return false, fmt.Errorf("mark learned: %w", err)
	}

	sess.pending = nil
	return true, nil
}

// Previous discards the current question and re-presents the one shown
// before it, with freshly drawn options. Returns domain.ErrHistoryEmpty
// when the history stack is already empty and domain.ErrNoPreviousWord
// when the discarded question was the only one.
func (s *QuizService) Previous(userID int64) (*domain.Question, error) {
	sess := s.session(userID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if len(sess.history) == 0 {
		return nil, domain.ErrHistoryEmpty
	}

	if len(sess.history) == 1 {
		// The question being discarded was the only one
		sess.history = sess.history[:0]
		sess.pending = nil
		return nil, domain.ErrNoPreviousWord
	}

	// Options are not cached, so redraw them for the question below the
	// top. The redraw happens before the pop: a store failure must leave
	// the history and the pending question exactly as they were.
	q := sess.history[len(sess.history)-2]
	options, err := s.buildOptions(q.Answer)
	if err != nil {
		return nil, err
	}
	q.Options = options

	sess.history = sess.history[:len(sess.history)-1]
	sess.history[len(sess.history)-1] = q
	sess.pending = &q

	return &q, nil
}

// buildOptions draws distractors for the correct translation and
// shuffles them together with it
func (s *QuizService) buildOptions(answer string) ([]string, error) {
	distractors, err := s.wordRepo.SampleTranslations(answer, distractorCount)
	if err != nil {
		return nil, fmt.Errorf("sample distractors: %w", err)
	}

	options := append(distractors, answer)
	rand.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	return options, nil
}
