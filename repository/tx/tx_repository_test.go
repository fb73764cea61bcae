package tx_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	txrepo "github.com/muhammadheryan/lead-crm/repository/tx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithinTx(t *testing.T) {
	tests := []struct {
		name    string
		fnErr   error
		mockTx  func(mock sqlmock.Sqlmock)
		wantErr bool
	}{
		{
			name: "commit on success",
			mockTx: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectCommit()
			},
		},
		{
			name:  "rollback on error",
			fnErr: errors.New("boom"),
			mockTx: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectRollback()
			},
			wantErr: true,
		},
		{
			name: "begin failure",
			mockTx: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin().WillReturnError(errors.New("no conn"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()
			tt.mockTx(mock)

			repo := txrepo.NewTxRepository(sqlx.NewDb(db, "mysql"))
			called := false
			err = txrepo.WithinTx(context.Background(), repo, func(tx *sqlx.Tx) error {
				called = true
				return tt.fnErr
			})

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.True(t, called)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
