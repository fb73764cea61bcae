package user_test

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/lead-crm/constant"
	"github.com/muhammadheryan/lead-crm/model"
	userrepo "github.com/muhammadheryan/lead-crm/repository/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) (userrepo.UserRepository, *sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	sqlxDB := sqlx.NewDb(db, "mysql")
	return userrepo.NewUserRepository(sqlxDB), sqlxDB, mock
}

func TestUserRepository_Create(t *testing.T) {
	repo, _, mock := newMock(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).
		WillReturnResult(sqlmock.NewResult(11, 1))

	got, err := repo.Create(context.Background(), &model.UserEntity{
		Email:        "agent@example.com",
		PasswordHash: "hash",
		Role:         constant.RoleAgent,
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(11), got.ID)
}

func TestUserRepository_Get(t *testing.T) {
	tests := []struct {
		name      string
		filter    *model.UserFilter
		wantQuery string
		wantArgs  []driver.Value
	}{
		{
			name:      "by email",
			filter:    &model.UserFilter{Email: "a@example.com"},
			wantQuery: "FROM users WHERE deleted_at IS NULL AND email = ? LIMIT 1",
			wantArgs:  []driver.Value{"a@example.com"},
		},
		{
			name:      "by email excluding self",
			filter:    &model.UserFilter{Email: "a@example.com", ExcludeID: 4},
			wantQuery: "FROM users WHERE deleted_at IS NULL AND email = ? AND id <> ? LIMIT 1",
			wantArgs:  []driver.Value{"a@example.com", uint64(4)},
		},
		{
			name:      "by id and role",
			filter:    &model.UserFilter{ID: 4, Role: constant.RoleFreelancer},
			wantQuery: "FROM users WHERE deleted_at IS NULL AND id = ? AND role = ? LIMIT 1",
			wantArgs:  []driver.Value{uint64(4), constant.RoleFreelancer},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, _, mock := newMock(t)

			mock.ExpectQuery(regexp.QuoteMeta(tt.wantQuery)).
				WithArgs(tt.wantArgs...).
				WillReturnRows(sqlmock.NewRows([]string{"id", "email", "role", "approve_status"}).
					AddRow(4, "a@example.com", "freelancer", 0))

			got, err := repo.Get(context.Background(), tt.filter)
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, uint64(4), got.ID)
			assert.Equal(t, constant.RoleFreelancer, got.Role)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_Get_NotFound(t *testing.T) {
	repo, _, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE deleted_at IS NULL AND email = ?")).
		WillReturnError(sql.ErrNoRows)

	got, err := repo.Get(context.Background(), &model.UserFilter{Email: "nobody@example.com"})
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestUserRepository_List(t *testing.T) {
	repo, _, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE deleted_at IS NULL AND role = ? ORDER BY id")).
		WithArgs(constant.RoleAgent).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "role"}).
			AddRow(1, "a@example.com", "agent").
			AddRow(2, "b@example.com", "agent"))

	got, err := repo.List(context.Background(), &model.UserFilter{Role: constant.RoleAgent})
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestUserRepository_UpdatePasswordByEmailTx(t *testing.T) {
	repo, db, mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET password = ?, updated_at = NOW() WHERE email = ? AND deleted_at IS NULL")).
		WithArgs("new-hash", "a@example.com").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := db.Beginx()
	require.NoError(t, err)
	affected, err := repo.UpdatePasswordByEmailTx(context.Background(), tx, "a@example.com", "new-hash")
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	assert.Equal(t, int64(1), affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_SoftDelete(t *testing.T) {
	repo, _, mock := newMock(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET deleted_by = ?, deleted_at = NOW() WHERE id = ? AND deleted_at IS NULL")).
		WithArgs(uint64(1), uint64(9)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.SoftDelete(context.Background(), 9, 1))
	assert.NoError(t, mock.ExpectationsWereMet())
}
