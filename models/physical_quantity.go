package models

import "time"

type PQTStatus string

const (
	PQTPending  PQTStatus = "Pending"
	PQTVerified PQTStatus = "Verified"
	PQTAdjusted PQTStatus = "Adjusted"
)

// PhysicalQuantity adalah record PQT aktif per sparepart (maks. satu baris
// per spare_id, upsert). Variance selalu = physical_qty - system_qty.
type PhysicalQuantity struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	SpareID        uint       `gorm:"not null;uniqueIndex:idx_pqt_spare_id" json:"spare_id"`
	Sparepart      *Sparepart `gorm:"foreignKey:SpareID;constraint:OnDelete:CASCADE" json:"sparepart,omitempty"`
	ProductNumber  string     `gorm:"size:50" json:"product_number"`
	SpareName      string     `gorm:"size:200;not null" json:"spare_name"`
	SystemQty      int        `gorm:"default:0" json:"system_qty"`
	PhysicalQty    int        `gorm:"default:0" json:"physical_qty"`
	Variance       int        `gorm:"default:0" json:"variance"`
	CheckedBy      string     `gorm:"size:100" json:"checked_by"`
	CheckDate      *time.Time `json:"check_date"`
	Notes          string     `gorm:"type:text" json:"notes"`
	Status         PQTStatus  `gorm:"size:20;default:Pending;index:idx_pqt_status" json:"status"`
	AdjustmentDate *time.Time `json:"adjustment_date"`
}

func (PhysicalQuantity) TableName() string { return "physical_quantity" }
