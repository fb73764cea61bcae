package lead_test

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	leadrepo "github.com/muhammadheryan/lead-crm/repository/lead"
	"github.com/muhammadheryan/lead-crm/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) (leadrepo.LeadRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return leadrepo.NewLeadRepository(sqlx.NewDb(db, "mysql")), mock
}

func strPtr(s string) *string { return &s }
func u64Ptr(v uint64) *uint64 { return &v }

func TestLeadRepository_Create(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO leads")).
		WillReturnResult(sqlmock.NewResult(42, 1))

	got, err := repo.Create(context.Background(), &model.LeadEntity{
		Name:         "Acme",
		Email:        "acme@example.com",
		ProcessingID: "AbCd1234",
		Level:        "1",
		CreatedBy:    u64Ptr(3),
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(42), got.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLeadRepository_Create_Error(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO leads")).
		WillReturnError(errors.New("duplicate"))

	got, err := repo.Create(context.Background(), &model.LeadEntity{Name: "Acme"})
	assert.Error(t, err)
	assert.Nil(t, got)
}

func TestLeadRepository_GetByID(t *testing.T) {
	repo, mock := newMock(t)
	now := time.Now()

	rows := sqlmock.NewRows([]string{"id", "name", "email", "processing_id", "level", "remarks", "created_by", "created_at"}).
		AddRow(5, "Acme", "acme@example.com", "AbCd1234", "2", "call back", 3, now)
	mock.ExpectQuery(regexp.QuoteMeta("FROM leads WHERE deleted_at IS NULL AND id = ?")).
		WithArgs(uint64(5)).
		WillReturnRows(rows)

	got, err := repo.GetByID(context.Background(), 5)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Acme", got.Name)
	assert.Equal(t, strPtr("call back"), got.Remarks)
	assert.True(t, got.OwnedBy(3))
}

func TestLeadRepository_GetByID_NotFound(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM leads WHERE deleted_at IS NULL AND id = ?")).
		WithArgs(uint64(9)).
		WillReturnError(sql.ErrNoRows)

	got, err := repo.GetByID(context.Background(), 9)
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestLeadRepository_List_FilteredByCreator(t *testing.T) {
	repo, mock := newMock(t)

	rows := sqlmock.NewRows([]string{"id", "name", "email", "processing_id", "level", "created_by"}).
		AddRow(2, "B", "b@example.com", "BBBBBBBB", "1", 3).
		AddRow(1, "A", "a@example.com", "AAAAAAAA", "3", 3)
	mock.ExpectQuery(regexp.QuoteMeta("FROM leads WHERE deleted_at IS NULL AND created_by = ? AND level = ? ORDER BY id DESC")).
		WithArgs(uint64(3), "1").
		WillReturnRows(rows)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM leads WHERE deleted_at IS NULL AND created_by = ? AND level = ?")).
		WithArgs(uint64(3), "1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	leads, total, err := repo.List(context.Background(), &model.LeadFilter{CreatedBy: 3, Level: "1"})
	require.NoError(t, err)
	assert.Len(t, leads, 2)
	assert.Equal(t, int64(2), total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLeadRepository_List_NoFilter(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM leads WHERE deleted_at IS NULL ORDER BY id DESC")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM leads WHERE deleted_at IS NULL")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	leads, total, err := repo.List(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, leads)
	assert.Equal(t, int64(0), total)
}

func TestLeadRepository_Exists(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM leads WHERE email = ? AND deleted_at IS NULL)")).
		WithArgs("acme@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM leads WHERE processing_id = ?)")).
		WithArgs("AbCd1234").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(0))

	exists, err := repo.ExistsEmail(context.Background(), "acme@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsProcessingID(context.Background(), "AbCd1234")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestLeadRepository_UpdateAndSoftDelete(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE leads SET name = ?")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE leads SET deleted_by = ?, deleted_at = NOW() WHERE id = ? AND deleted_at IS NULL")).
		WithArgs(uint64(1), uint64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Update(context.Background(), &model.LeadEntity{ID: 5, Name: "Acme", Remarks: strPtr("x")}))
	require.NoError(t, repo.SoftDelete(context.Background(), 5, 1))
	assert.NoError(t, mock.ExpectationsWereMet())
}
