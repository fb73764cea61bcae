package otp_test

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	otprepo "github.com/muhammadheryan/lead-crm/repository/otp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) (otprepo.OTPRepository, *sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	sqlxDB := sqlx.NewDb(db, "mysql")
	return otprepo.NewOTPRepository(sqlxDB), sqlxDB, mock
}

func TestOTPRepository_Upsert(t *testing.T) {
	repo, _, mock := newMock(t)
	expiry := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta("ON DUPLICATE KEY UPDATE otp = VALUES(otp)")).
		WithArgs("a@example.com", "123456", expiry).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.Upsert(context.Background(), "a@example.com", "123456", expiry))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOTPRepository_Get(t *testing.T) {
	repo, _, mock := newMock(t)
	expiry := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT email, otp, expiry_time FROM password_resets WHERE email = ?")).
		WithArgs("a@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"email", "otp", "expiry_time"}).
			AddRow("a@example.com", "123456", expiry))

	got, err := repo.Get(context.Background(), "a@example.com")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Valid("123456", expiry.Add(-time.Minute)))
	assert.False(t, got.Valid("123456", expiry.Add(time.Second)))
	assert.False(t, got.Valid("654321", expiry.Add(-time.Minute)))
}

func TestOTPRepository_Get_NotFound(t *testing.T) {
	repo, _, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM password_resets")).
		WillReturnError(sql.ErrNoRows)

	got, err := repo.Get(context.Background(), "nobody@example.com")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestOTPRepository_ConsumeTx(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		affected int64
		want     bool
	}{
		{name: "matching unexpired code is consumed", affected: 1, want: true},
		{name: "code already consumed or replaced", affected: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, db, mock := newMock(t)

			mock.ExpectBegin()
			mock.ExpectExec(regexp.QuoteMeta("DELETE FROM password_resets WHERE email = ? AND otp = ? AND expiry_time >= ?")).
				WithArgs("a@example.com", "Ab12Cd", now).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))
			mock.ExpectRollback()

			tx, err := db.Beginx()
			require.NoError(t, err)
			got, err := repo.ConsumeTx(context.Background(), tx, "a@example.com", "Ab12Cd", now)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			require.NoError(t, tx.Rollback())
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
