package user_test

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-YogaStore/internal/domain"
	"github.com/m04kA/SMC-YogaStore/internal/infra/storage/user"
)

const selectByEmail = `SELECT id, email, name, created_at, updated_at FROM users WHERE email = $1 ORDER BY created_at ASC, id ASC LIMIT 1`

func newRepo(t *testing.T) (*user.Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return user.NewRepository(db), mock
}

func TestRepository_GetByEmail(t *testing.T) {
	r, mock := newRepo(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(selectByEmail)).
		WithArgs("anna@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "name", "created_at", "updated_at"}).
			AddRow("u1", "anna@example.com", nil, now, now))

	u, err := r.GetByEmail(context.Background(), "anna@example.com")
	require.NoError(t, err)
	assert.Equal(t, "u1", u.ID)
	assert.Nil(t, u.Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByEmail_NotFound(t *testing.T) {
	r, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(selectByEmail)).
		WithArgs("ghost@example.com").
		WillReturnError(sql.ErrNoRows)

	_, err := r.GetByEmail(context.Background(), "ghost@example.com")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestRepository_Create(t *testing.T) {
	r, mock := newRepo(t)
	now := time.Now()
	name := "Anna"

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users (email,name) VALUES ($1,$2) RETURNING id, created_at, updated_at`)).
		WithArgs("anna@example.com", name).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow("u1", now, now))

	u, err := r.Create(context.Background(), &domain.User{Email: "anna@example.com", Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "u1", u.ID)
	assert.Equal(t, now, u.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}
