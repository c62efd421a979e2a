package domain

// Word is a catalog entry: a Russian term and its English translation.
// The catalog is shared between all users.
type Word struct {
	ID          int
	Word        string
	Translation string
}

// Question is a quiz question presented to a user.
// Options holds the answer choices in display order; Answer is the
// correct translation and always appears among Options exactly once.
type Question struct {
	WordID  int
	Word    string
	Answer  string
	Options []string
}
