package lead

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/lead-crm/model"
)

type SQL struct {
	conn *sqlx.DB
}

type LeadRepository interface {
	Create(ctx context.Context, data *model.LeadEntity) (*model.LeadEntity, error)
	GetByID(ctx context.Context, id uint64) (*model.LeadEntity, error)
	List(ctx context.Context, filter *model.LeadFilter) ([]model.LeadEntity, int64, error)
	ExistsEmail(ctx context.Context, email string) (bool, error)
	ExistsProcessingID(ctx context.Context, processingID string) (bool, error)
	Update(ctx context.Context, data *model.LeadEntity) error
	SoftDelete(ctx context.Context, id, deletedBy uint64) error
}

func NewLeadRepository(conn *sqlx.DB) LeadRepository {
	return &SQL{conn: conn}
}

// Unique keys declared in migration/schema.sql.
const (
	KeyEmail        = "uq_leads_email"
	KeyProcessingID = "uq_leads_processing_id"
)

const (
	leadColumns = `id, name, number, phone_number, company_name, email, location, address, lead_type, service_type,
some_text, service_text, cr_file, cc_file, tl_file, file_path, processing_id, level, change_status, stage_movement,
disposition, remarks, attachment, next_follow_up_date, hours, agent_id, plan_id, created_by, updated_by, deleted_by,
created_at, updated_at, deleted_at`

	insertLeadQuery = `INSERT INTO leads (name, number, phone_number, company_name, email, location, address, lead_type,
service_type, some_text, service_text, processing_id, level, created_by, created_at)
VALUES (:name, :number, :phone_number, :company_name, :email, :location, :address, :lead_type,
:service_type, :some_text, :service_text, :processing_id, :level, :created_by, NOW())`

	getLeadBase = `SELECT ` + leadColumns + ` FROM leads WHERE deleted_at IS NULL`

	countLeadBase = `SELECT COUNT(*) FROM leads WHERE deleted_at IS NULL`

	existsEmailQuery        = `SELECT EXISTS(SELECT 1 FROM leads WHERE email = ? AND deleted_at IS NULL)`
	existsProcessingIDQuery = `SELECT EXISTS(SELECT 1 FROM leads WHERE processing_id = ?)`

	// full-record overwrite of every mutable column
	updateLeadQuery = `UPDATE leads SET name = :name, number = :number, phone_number = :phone_number,
company_name = :company_name, email = :email, location = :location, address = :address, lead_type = :lead_type,
service_type = :service_type, some_text = :some_text, service_text = :service_text, cr_file = :cr_file,
cc_file = :cc_file, tl_file = :tl_file, file_path = :file_path, level = :level, change_status = :change_status,
stage_movement = :stage_movement, disposition = :disposition, remarks = :remarks, attachment = :attachment,
next_follow_up_date = :next_follow_up_date, hours = :hours, agent_id = :agent_id, plan_id = :plan_id,
updated_by = :updated_by, updated_at = NOW()
WHERE id = :id AND deleted_at IS NULL`

	softDeleteLeadQuery = `UPDATE leads SET deleted_by = ?, deleted_at = NOW() WHERE id = ? AND deleted_at IS NULL`
)

func (s *SQL) Create(ctx context.Context, data *model.LeadEntity) (*model.LeadEntity, error) {
	result, err := s.conn.NamedExecContext(ctx, insertLeadQuery, data)
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

func (s *SQL) GetByID(ctx context.Context, id uint64) (*model.LeadEntity, error) {
	var entity model.LeadEntity
	if err := s.conn.QueryRowxContext(ctx, getLeadBase+" AND id = ?", id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func buildLeadWhere(filter *model.LeadFilter) (string, []any) {
	where := ""
	args := make([]any, 0, 3)
	if filter == nil {
		return where, args
	}

	if filter.CreatedBy != 0 {
		where += " AND created_by = ?"
		args = append(args, filter.CreatedBy)
	}
	if filter.Level != "" {
		where += " AND level = ?"
		args = append(args, filter.Level)
	}
	if filter.LeadType != "" {
		where += " AND lead_type = ?"
		args = append(args, filter.LeadType)
	}
	return where, args
}

func (s *SQL) List(ctx context.Context, filter *model.LeadFilter) ([]model.LeadEntity, int64, error) {
	where, args := buildLeadWhere(filter)

	rows, err := s.conn.QueryxContext(ctx, getLeadBase+where+" ORDER BY id DESC", args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	leads := make([]model.LeadEntity, 0)
	for rows.Next() {
		var l model.LeadEntity
		if err := rows.StructScan(&l); err != nil {
			return nil, 0, err
		}
		leads = append(leads, l)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := s.conn.GetContext(ctx, &total, countLeadBase+where, args...); err != nil {
		return nil, 0, err
	}

	return leads, total, nil
}

func (s *SQL) ExistsEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	if err := s.conn.GetContext(ctx, &exists, existsEmailQuery, email); err != nil {
		return false, err
	}
	return exists, nil
}

func (s *SQL) ExistsProcessingID(ctx context.Context, processingID string) (bool, error) {
	var exists bool
	if err := s.conn.GetContext(ctx, &exists, existsProcessingIDQuery, processingID); err != nil {
		return false, err
	}
	return exists, nil
}

func (s *SQL) Update(ctx context.Context, data *model.LeadEntity) error {
	_, err := s.conn.NamedExecContext(ctx, updateLeadQuery, data)
	return err
}

func (s *SQL) SoftDelete(ctx context.Context, id, deletedBy uint64) error {
	_, err := s.conn.ExecContext(ctx, softDeleteLeadQuery, deletedBy, id)
	return err
}
