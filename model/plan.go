package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// PlanEntity represents the plans table entity
type PlanEntity struct {
	ID        uint64          `db:"id" json:"id"`
	PlanName  string          `db:"planname" json:"planname"`
	Price     decimal.Decimal `db:"price" json:"price"`
	Status    string          `db:"status" json:"status"`
	CreatedBy *uint64         `db:"created_by" json:"created_by"`
	UpdatedBy *uint64         `db:"updated_by" json:"updated_by"`
	DeletedBy *uint64         `db:"deleted_by" json:"deleted_by,omitempty"`
	CreatedAt time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt *time.Time      `db:"updated_at" json:"updated_at,omitempty"`
	DeletedAt *time.Time      `db:"deleted_at" json:"deleted_at,omitempty"`
}

type PlanRequest struct {
	PlanName string           `json:"planname" validate:"required,max=255"`
	Price    *decimal.Decimal `json:"price" validate:"required"`
	Status   string           `json:"status" validate:"required,oneof=active inactive"`
}
