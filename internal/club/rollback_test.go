package club_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/clubhouse/internal/club"
	"github.com/mmynk/clubhouse/internal/models"
	"github.com/mmynk/clubhouse/internal/storage/sqlite"
)

func TestCreateGroupRollsBackOnMembershipFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO groups").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO memberships").WillReturnError(errors.New("disk I/O error"))
	mock.ExpectRollback()

	engine := club.New(sqlite.NewWithDB(db))
	_, err = engine.CreateGroup(context.Background(), models.Principal{UserID: "u1"}, club.GroupForm{
		Name: "Book Club", Category: "reading", MaxMembers: 10,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk I/O error")

	assert.NoError(t, mock.ExpectationsWereMet())
}
