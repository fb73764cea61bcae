package plan_test

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/lead-crm/model"
	planrepo "github.com/muhammadheryan/lead-crm/repository/plan"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) (planrepo.PlanRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return planrepo.NewPlanRepository(sqlx.NewDb(db, "mysql")), mock
}

func TestPlanRepository_Create(t *testing.T) {
	repo, mock := newMock(t)
	createdBy := uint64(1)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO plans (planname, price, status, created_by, created_at)")).
		WithArgs("Gold", "199.99", "active", createdBy).
		WillReturnResult(sqlmock.NewResult(7, 1))

	got, err := repo.Create(context.Background(), &model.PlanEntity{
		PlanName:  "Gold",
		Price:     decimal.RequireFromString("199.99"),
		Status:    "active",
		CreatedBy: &createdBy,
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(7), got.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlanRepository_GetByID(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM plans WHERE deleted_at IS NULL AND id = ?")).
		WithArgs(uint64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "planname", "price", "status", "created_at"}).
			AddRow(7, "Gold", "199.99", "active", time.Now()))

	got, err := repo.GetByID(context.Background(), 7)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Gold", got.PlanName)
	assert.True(t, got.Price.Equal(decimal.RequireFromString("199.99")))
}

func TestPlanRepository_GetByID_NotFound(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM plans WHERE deleted_at IS NULL AND id = ?")).
		WithArgs(uint64(8)).
		WillReturnError(sql.ErrNoRows)

	got, err := repo.GetByID(context.Background(), 8)
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestPlanRepository_List(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM plans WHERE deleted_at IS NULL ORDER BY id")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "planname", "price", "status"}).
			AddRow(1, "Basic", "10.00", "active").
			AddRow(2, "Gold", "199.99", "inactive"))

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, "inactive", got[1].Status)
}

func TestPlanRepository_UpdateAndSoftDelete(t *testing.T) {
	repo, mock := newMock(t)
	updatedBy := uint64(1)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE plans SET planname = ?, price = ?, status = ?, updated_by = ?")).
		WithArgs("Gold", "249", "inactive", updatedBy, uint64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE plans SET deleted_by = ?, deleted_at = NOW()")).
		WithArgs(uint64(1), uint64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Update(context.Background(), &model.PlanEntity{
		ID:        7,
		PlanName:  "Gold",
		Price:     decimal.NewFromInt(249),
		Status:    "inactive",
		UpdatedBy: &updatedBy,
	}))
	require.NoError(t, repo.SoftDelete(context.Background(), 7, 1))
	assert.NoError(t, mock.ExpectationsWereMet())
}
