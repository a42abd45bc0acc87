package models

import "time"

type Sparepart struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	ProductNumber string    `gorm:"size:50" json:"product_number"`
	SpareName     string    `gorm:"size:200;not null;uniqueIndex:idx_spare_name" json:"spare_name"`
	MaterialType  string    `gorm:"size:100" json:"material_type"`
	Stock         int       `gorm:"default:0;index:idx_stock" json:"stock"`
	MinStock      int       `gorm:"default:5" json:"min_stock"`
	RackLocation  string    `gorm:"size:100" json:"rack_location"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (Sparepart) TableName() string { return "spareparts" }
