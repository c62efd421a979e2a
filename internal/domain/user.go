package domain

// User represents a bot user
type User struct {
	UserID   int64
	UserName string
	ChatID   int64
}

// UserState represents user's current interaction state
type UserState string

const (
	StateIdle            UserState = "idle"
	StateWaitingNewPair  UserState = "waiting_new_pair"
	StateWaitingDeletion UserState = "waiting_deletion"
)
