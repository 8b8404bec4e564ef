package testdb

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/phrazzld/trivia-board/internal/ciutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShouldSkipDatabaseTest(t *testing.T) {
	t.Setenv(ciutil.EnvTriviaTestDBURL, "")
	t.Setenv(ciutil.EnvTriviaDatabaseURL, "")
	t.Setenv(ciutil.EnvDatabaseURL, "")
	assert.True(t, ShouldSkipDatabaseTest())

	t.Setenv(ciutil.EnvDatabaseURL, "postgres://localhost/trivia")
	assert.False(t, ShouldSkipDatabaseTest())
}

func TestWithTx_AlwaysRollsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM clues").WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectRollback()

	called := false
	WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		called = true
		_, err := tx.Exec("DELETE FROM clues")
		require.NoError(t, err)
	})

	assert.True(t, called)
	assert.NoError(t, mock.ExpectationsWereMet())
}
