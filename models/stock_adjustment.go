package models

import "time"

type AdjustmentType string

const (
	AdjustCorrection AdjustmentType = "Correction"
	AdjustDamage     AdjustmentType = "Damage"
	AdjustLoss       AdjustmentType = "Loss"
	AdjustFound      AdjustmentType = "Found"
	AdjustTransfer   AdjustmentType = "Transfer"
)

// StockAdjustment adalah audit row koreksi stok di luar pemakaian biasa.
// Append-only; difference = new_qty - old_qty.
type StockAdjustment struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	SpareID        uint           `gorm:"not null" json:"spare_id"`
	Sparepart      *Sparepart     `gorm:"foreignKey:SpareID;constraint:OnDelete:CASCADE" json:"sparepart,omitempty"`
	SpareName      string         `gorm:"size:200;not null" json:"spare_name"`
	AdjustmentType AdjustmentType `gorm:"size:20" json:"adjustment_type"`
	OldQty         int            `gorm:"default:0" json:"old_qty"`
	NewQty         int            `gorm:"default:0" json:"new_qty"`
	Difference     int            `gorm:"default:0" json:"difference"`
	Reason         string         `gorm:"type:text" json:"reason"`
	AdjustedBy     string         `gorm:"size:100" json:"adjusted_by"`
	AdjustmentDate time.Time      `gorm:"index:idx_adjustment_date" json:"adjustment_date"`
	Notes          string         `gorm:"type:text" json:"notes"`
}

func (StockAdjustment) TableName() string { return "stock_adjustments" }
