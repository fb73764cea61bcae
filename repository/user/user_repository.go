package user

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/lead-crm/model"
)

type SQL struct {
	conn *sqlx.DB
}

type UserRepository interface {
	Create(ctx context.Context, req *model.UserEntity) (*model.UserEntity, error)
	Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error)
	List(ctx context.Context, filter *model.UserFilter) ([]model.UserEntity, error)
	Update(ctx context.Context, data *model.UserEntity) error
	UpdatePassword(ctx context.Context, id uint64, passwordHash string) error
	UpdatePasswordByEmailTx(ctx context.Context, tx *sqlx.Tx, email, passwordHash string) (int64, error)
	SoftDelete(ctx context.Context, id, deletedBy uint64) error
}

func NewUserRepository(conn *sqlx.DB) UserRepository {
	return &SQL{conn: conn}
}

const (
	userColumns = `id, name, firstname, lastname, email, mobile_number, address, password, role, approve_status, status,
profile_picture, qr_code, expire_date, assigned_report, approve_freelancer, assigned_agent,
created_by, updated_by, deleted_by, created_at, updated_at, deleted_at`

	insertUserQuery = `INSERT INTO users (name, firstname, lastname, email, mobile_number, address, password, role, approve_status, status,
profile_picture, qr_code, expire_date, assigned_report, approve_freelancer, assigned_agent, created_by, created_at)
VALUES (:name, :firstname, :lastname, :email, :mobile_number, :address, :password, :role, :approve_status, :status,
:profile_picture, :qr_code, :expire_date, :assigned_report, :approve_freelancer, :assigned_agent, :created_by, NOW())`

	getUserBase = `SELECT ` + userColumns + ` FROM users WHERE deleted_at IS NULL`

	updateUserQuery = `UPDATE users SET name = :name, firstname = :firstname, lastname = :lastname, email = :email,
mobile_number = :mobile_number, address = :address, role = :role, approve_status = :approve_status, status = :status,
profile_picture = :profile_picture, qr_code = :qr_code, expire_date = :expire_date, assigned_report = :assigned_report,
approve_freelancer = :approve_freelancer, assigned_agent = :assigned_agent, updated_by = :updated_by, updated_at = NOW()
WHERE id = :id AND deleted_at IS NULL`

	updatePasswordQuery        = `UPDATE users SET password = ?, updated_at = NOW() WHERE id = ? AND deleted_at IS NULL`
	updatePasswordByEmailQuery = `UPDATE users SET password = ?, updated_at = NOW() WHERE email = ? AND deleted_at IS NULL`
	softDeleteUserQuery        = `UPDATE users SET deleted_by = ?, deleted_at = NOW() WHERE id = ? AND deleted_at IS NULL`
)

func (s *SQL) Create(ctx context.Context, data *model.UserEntity) (*model.UserEntity, error) {
	result, err := s.conn.NamedExecContext(ctx, insertUserQuery, data)
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

func buildUserWhere(query string, filter *model.UserFilter) (string, []any) {
	args := make([]any, 0, 5)
	if filter == nil {
		return query, args
	}

	if filter.ID != 0 {
		query += " AND id = ?"
		args = append(args, filter.ID)
	}
	if filter.Email != "" {
		query += " AND email = ?"
		args = append(args, filter.Email)
	}
	if filter.MobileNumber != "" {
		query += " AND mobile_number = ?"
		args = append(args, filter.MobileNumber)
	}
	if filter.Role != "" {
		query += " AND role = ?"
		args = append(args, filter.Role)
	}
	if filter.ExcludeID != 0 {
		query += " AND id <> ?"
		args = append(args, filter.ExcludeID)
	}
	return query, args
}

func (s *SQL) Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error) {
	query, args := buildUserWhere(getUserBase, filter)
	query += " LIMIT 1"

	var entity model.UserEntity
	if err := s.conn.QueryRowxContext(ctx, query, args...).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) List(ctx context.Context, filter *model.UserFilter) ([]model.UserEntity, error) {
	query, args := buildUserWhere(getUserBase, filter)
	query += " ORDER BY id"

	rows, err := s.conn.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]model.UserEntity, 0)
	for rows.Next() {
		var u model.UserEntity
		if err := rows.StructScan(&u); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (s *SQL) Update(ctx context.Context, data *model.UserEntity) error {
	_, err := s.conn.NamedExecContext(ctx, updateUserQuery, data)
	return err
}

func (s *SQL) UpdatePassword(ctx context.Context, id uint64, passwordHash string) error {
	_, err := s.conn.ExecContext(ctx, updatePasswordQuery, passwordHash, id)
	return err
}

func (s *SQL) UpdatePasswordByEmailTx(ctx context.Context, tx *sqlx.Tx, email, passwordHash string) (int64, error) {
	result, err := tx.ExecContext(ctx, updatePasswordByEmailQuery, passwordHash, email)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (s *SQL) SoftDelete(ctx context.Context, id, deletedBy uint64) error {
	_, err := s.conn.ExecContext(ctx, softDeleteUserQuery, deletedBy, id)
	return err
}
