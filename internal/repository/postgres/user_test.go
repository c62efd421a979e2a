package postgres

import (
	"fmt"
	"testing"

	"engbot/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestUserRepo_EnsureUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewUserRepo(db)

	user := domain.User{
		UserID:   123,
		UserName: "testuser",
		ChatID:   456,
	}

	mock.ExpectExec("INSERT INTO users").
		WithArgs(user.UserID, user.UserName, user.ChatID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.EnsureUser(user)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_EnsureUser_Conflict(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewUserRepo(db)

	user := domain.User{UserID: 123, UserName: "testuser", ChatID: 456}

	// ON CONFLICT DO NOTHING: zero rows affected, still no error
	mock.ExpectExec("INSERT INTO users").
		WithArgs(user.UserID, user.UserName, user.ChatID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.EnsureUser(user)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_EnsureUser_Error(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewUserRepo(db)

	user := domain.User{UserID: 123, UserName: "testuser", ChatID: 456}

	mock.ExpectExec("INSERT INTO users").
		WithArgs(user.UserID, user.UserName, user.ChatID).
		WillReturnError(fmt.Errorf("connection refused"))

	err = repo.EnsureUser(user)

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
