package otp

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/lead-crm/model"
)

type SQL struct {
	conn *sqlx.DB
}

// OTPRepository stores password reset codes keyed by email.
type OTPRepository interface {
	Upsert(ctx context.Context, email, otp string, expiry time.Time) error
	Get(ctx context.Context, email string) (*model.PasswordResetEntity, error)
	// ConsumeTx deletes the code only if it still matches and is unexpired at
	// now. It reports false when another reset or a newer code got there first.
	ConsumeTx(ctx context.Context, tx *sqlx.Tx, email, otp string, now time.Time) (bool, error)
}

func NewOTPRepository(conn *sqlx.DB) OTPRepository {
	return &SQL{conn: conn}
}

const (
	upsertOTPQuery  = `INSERT INTO password_resets (email, otp, expiry_time, created_at) VALUES (?, ?, ?, NOW())
ON DUPLICATE KEY UPDATE otp = VALUES(otp), expiry_time = VALUES(expiry_time)`
	getOTPQuery     = `SELECT email, otp, expiry_time FROM password_resets WHERE email = ?`
	consumeOTPQuery = `DELETE FROM password_resets WHERE email = ? AND otp = ? AND expiry_time >= ?`
)

func (s *SQL) Upsert(ctx context.Context, email, otp string, expiry time.Time) error {
	_, err := s.conn.ExecContext(ctx, upsertOTPQuery, email, otp, expiry)
	return err
}

func (s *SQL) Get(ctx context.Context, email string) (*model.PasswordResetEntity, error) {
	var entity model.PasswordResetEntity
	if err := s.conn.GetContext(ctx, &entity, getOTPQuery, email); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) ConsumeTx(ctx context.Context, tx *sqlx.Tx, email, otp string, now time.Time) (bool, error) {
	result, err := tx.ExecContext(ctx, consumeOTPQuery, email, otp, now)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected == 1, nil
}
