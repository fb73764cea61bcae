package plan

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/lead-crm/model"
)

type SQL struct {
	conn *sqlx.DB
}

type PlanRepository interface {
	Create(ctx context.Context, data *model.PlanEntity) (*model.PlanEntity, error)
	GetByID(ctx context.Context, id uint64) (*model.PlanEntity, error)
	List(ctx context.Context) ([]model.PlanEntity, error)
	Update(ctx context.Context, data *model.PlanEntity) error
	SoftDelete(ctx context.Context, id, deletedBy uint64) error
}

func NewPlanRepository(conn *sqlx.DB) PlanRepository {
	return &SQL{conn: conn}
}

const (
	planColumns = `id, planname, price, status, created_by, updated_by, deleted_by, created_at, updated_at, deleted_at`

	insertPlanQuery = `INSERT INTO plans (planname, price, status, created_by, created_at) VALUES (?, ?, ?, ?, NOW())`
	getPlanBase     = `SELECT ` + planColumns + ` FROM plans WHERE deleted_at IS NULL`
	updatePlanQuery = `UPDATE plans SET planname = ?, price = ?, status = ?, updated_by = ?, updated_at = NOW() WHERE id = ? AND deleted_at IS NULL`

	// deleted_by is stamped in the same statement that hides the row
	softDeletePlanQuery = `UPDATE plans SET deleted_by = ?, deleted_at = NOW() WHERE id = ? AND deleted_at IS NULL`
)

func (s *SQL) Create(ctx context.Context, data *model.PlanEntity) (*model.PlanEntity, error) {
	result, err := s.conn.ExecContext(ctx, insertPlanQuery, data.PlanName, data.Price, data.Status, data.CreatedBy)
	if err != nil {
		return nil, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	data.ID = uint64(lastID)
	return data, nil
}

func (s *SQL) GetByID(ctx context.Context, id uint64) (*model.PlanEntity, error) {
	var entity model.PlanEntity
	if err := s.conn.QueryRowxContext(ctx, getPlanBase+" AND id = ?", id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) List(ctx context.Context) ([]model.PlanEntity, error) {
	plans := make([]model.PlanEntity, 0)
	if err := s.conn.SelectContext(ctx, &plans, getPlanBase+" ORDER BY id"); err != nil {
		return nil, err
	}
	return plans, nil
}

func (s *SQL) Update(ctx context.Context, data *model.PlanEntity) error {
	_, err := s.conn.ExecContext(ctx, updatePlanQuery, data.PlanName, data.Price, data.Status, data.UpdatedBy, data.ID)
	return err
}

func (s *SQL) SoftDelete(ctx context.Context, id, deletedBy uint64) error {
	_, err := s.conn.ExecContext(ctx, softDeletePlanQuery, deletedBy, id)
	return err
}
