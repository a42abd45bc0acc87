package models

import "time"

type MovementType string

const (
	MovementIn       MovementType = "In"
	MovementOut      MovementType = "Out"
	MovementAdjust   MovementType = "Adjust"
	MovementTransfer MovementType = "Transfer"
)

// StockMovement adalah ledger generik: setiap mutasi stok sparepart wajib
// menghasilkan tepat satu baris movement.
type StockMovement struct {
	ID           uint         `gorm:"primaryKey" json:"id"`
	SpareID      uint         `gorm:"not null" json:"spare_id"`
	Sparepart    *Sparepart   `gorm:"foreignKey:SpareID;constraint:OnDelete:CASCADE" json:"sparepart,omitempty"`
	SpareName    string       `gorm:"size:200;not null" json:"spare_name"`
	MovementType MovementType `gorm:"size:20" json:"movement_type"`
	Quantity     int          `gorm:"not null" json:"quantity"`
	FromLocation string       `gorm:"size:100" json:"from_location"`
	ToLocation   string       `gorm:"size:100" json:"to_location"`
	ReferenceNo  string       `gorm:"size:100" json:"reference_no"`
	Notes        string       `gorm:"type:text" json:"notes"`
	CreatedBy    string       `gorm:"size:100" json:"created_by"`
	CreatedAt    time.Time    `gorm:"index:idx_movement_created_at" json:"created_at"`
}

func (StockMovement) TableName() string { return "stock_movements" }
