package postgres

import (
	"database/sql"

	"engbot/internal/domain"
)

// UserRepo implements repository.UserRepository
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// EnsureUser creates the user on first contact. One chat binding per
// user, so a repeated /start from the same chat is a no-op.
func (r *UserRepo) EnsureUser(user domain.User) error {
	query := `
		INSERT INTO users (user_id, user_name, chat_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (chat_id) DO NOTHING
	`
	_, err := r.db.Exec(query, user.UserID, user.UserName, user.ChatID)
	return err
}
