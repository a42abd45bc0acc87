package models

import "time"

// StockUsage adalah audit row per pengambilan sparepart. Append-only:
// qty_stock menyimpan stok sistem SEBELUM pengambilan.
type StockUsage struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	DateTime    time.Time `gorm:"not null;index:idx_usage_date_time" json:"date_time"`
	ItemName    string    `gorm:"size:200;not null" json:"item_name"`
	ItemNumber  string    `gorm:"size:50" json:"item_number"`
	QtyStock    int       `gorm:"default:0" json:"qty_stock"`
	QtyUsed     int       `gorm:"default:0" json:"qty_used"`
	MachineName string    `gorm:"size:100" json:"machine_name"`
	Notes       string    `gorm:"type:text" json:"notes"`
	IssuedBy    string    `gorm:"size:100" json:"issued_by"`
	CreatedAt   time.Time `json:"created_at"`
}

func (StockUsage) TableName() string { return "stock_usage" }
