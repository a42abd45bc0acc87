package service

import (
	"context"
	"strings"
	"time"

	"go-sparepart-pqt/models"
	"go-sparepart-pqt/utils"

	"gorm.io/gorm"
)

type WithdrawInput struct {
	ItemName    string
	Qty         string // mentah dari form; divalidasi di sini
	MachineName string
	RequestID   string
	Notes       string
	IssuedBy    string
}

type WithdrawResult struct {
	SpareID     uint   `json:"spare_id"`
	ItemName    string `json:"item_name"`
	ItemNumber  string `json:"item_number"`
	QtyUsed     int    `json:"qty_used"`
	StockBefore int    `json:"stock_before"`
	StockAfter  int    `json:"stock_after"`
	MachineName string `json:"machine_name"`
	ReferenceNo string `json:"reference_no"`
}

// Withdraw memvalidasi lalu mengeksekusi pengambilan sebagai satu unit atomik:
// update stok, insert stock_usage, upsert PQT, insert stock_movement.
// Keempatnya commit bersama atau rollback semua.
func (s *service) Withdraw(ctx context.Context, in WithdrawInput) (WithdrawResult, error) {
	var res WithdrawResult

	if strings.TrimSpace(in.ItemName) == "" {
		return res, &ValidationError{Field: "item_name", Message: "Item Name cannot be empty!"}
	}
	if strings.TrimSpace(in.MachineName) == "" {
		return res, &ValidationError{Field: "machine_name", Message: "Machine Name cannot be empty!"}
	}
	qtyUsed, err := ValidateQuantity(in.Qty, "Qty")
	if err != nil {
		return res, err
	}
	issuedBy := in.IssuedBy
	if issuedBy == "" {
		issuedBy = "ME Operator"
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		sp, err := lockSparepartByName(tx, strings.TrimSpace(in.ItemName))
		if err != nil {
			return err
		}

		if qtyUsed > sp.Stock {
			return &InsufficientStockError{Requested: qtyUsed, Available: sp.Stock}
		}

		now := time.Now()
		newStock := sp.Stock - qtyUsed

		if err := tx.Model(&models.Sparepart{}).Where("id = ?", sp.ID).
			Update("stock", newStock).Error; err != nil {
			return &StorageError{Op: "update sparepart stock", Err: err}
		}

		usage := models.StockUsage{
			DateTime:    now,
			ItemName:    sp.SpareName,
			ItemNumber:  sp.ProductNumber,
			QtyStock:    sp.Stock, // stok sebelum pengambilan
			QtyUsed:     qtyUsed,
			MachineName: strings.TrimSpace(in.MachineName),
			Notes:       in.Notes,
			IssuedBy:    issuedBy,
		}
		if err := tx.Create(&usage).Error; err != nil {
			return &StorageError{Op: "insert stock_usage", Err: err}
		}

		// Pengambilan dianggap akurat secara fisik saat barang diambil:
		// physical = system = stok baru, variance kembali 0, status Pending
		// sampai ada cek fisik independen berikutnya.
		if _, err := upsertPQT(tx, sp.ID, func(pqt *models.PhysicalQuantity) {
			pqt.ProductNumber = sp.ProductNumber
			pqt.SpareName = sp.SpareName
			pqt.SystemQty = newStock
			pqt.PhysicalQty = newStock
			pqt.Variance = 0
			pqt.CheckedBy = issuedBy
			pqt.CheckDate = &now
			pqt.Notes = in.Notes
			pqt.Status = models.PQTPending
		}); err != nil {
			return err
		}

		refNo := strings.TrimSpace(in.RequestID)
		if refNo == "" {
			refNo = utils.GenReferenceNo(int64(usage.ID), now)
		}
		movement := models.StockMovement{
			SpareID:      sp.ID,
			SpareName:    sp.SpareName,
			MovementType: models.MovementOut,
			Quantity:     qtyUsed,
			ReferenceNo:  refNo,
			Notes:        in.Notes,
			CreatedBy:    issuedBy,
			CreatedAt:    now,
		}
		if err := tx.Create(&movement).Error; err != nil {
			return &StorageError{Op: "insert stock_movement", Err: err}
		}

		res = WithdrawResult{
			SpareID:     sp.ID,
			ItemName:    sp.SpareName,
			ItemNumber:  sp.ProductNumber,
			QtyUsed:     qtyUsed,
			StockBefore: sp.Stock,
			StockAfter:  newStock,
			MachineName: usage.MachineName,
			ReferenceNo: refNo,
		}
		return nil
	})
	if err != nil {
		return WithdrawResult{}, err
	}
	return res, nil
}
