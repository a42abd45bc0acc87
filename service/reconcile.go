package service

import (
	"context"
	"time"

	"go-sparepart-pqt/models"

	"gorm.io/gorm"
)

type CheckInput struct {
	SpareID     uint
	PhysicalQty int
	CheckedBy   string
	Notes       string
}

type AdjustmentInput struct {
	SpareID        uint
	AdjustmentType models.AdjustmentType
	NewQty         int
	Reason         string
	AdjustedBy     string
	Notes          string
}

type AdjustmentResult struct {
	SpareID    uint   `json:"spare_id"`
	SpareName  string `json:"spare_name"`
	OldQty     int    `json:"old_qty"`
	NewQty     int    `json:"new_qty"`
	Difference int    `json:"difference"`
}

// RecordCheck mencatat hasil hitung fisik terhadap stok sistem saat ini.
// Variance = physical - system; kalau nol record langsung Verified, kalau
// tidak tetap Pending sampai ada adjustment eksplisit.
func (s *service) RecordCheck(ctx context.Context, in CheckInput) (models.PhysicalQuantity, error) {
	var result models.PhysicalQuantity

	if in.PhysicalQty < 0 {
		return result, &ValidationError{Field: "physical_qty", Message: "Physical Qty cannot be negative!"}
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		sp, err := lockSparepartByID(tx, in.SpareID)
		if err != nil {
			return err
		}

		now := time.Now()
		variance := in.PhysicalQty - sp.Stock
		status := models.PQTPending
		if variance == 0 {
			status = models.PQTVerified
		}

		result, err = upsertPQT(tx, sp.ID, func(pqt *models.PhysicalQuantity) {
			pqt.ProductNumber = sp.ProductNumber
			pqt.SpareName = sp.SpareName
			pqt.SystemQty = sp.Stock
			pqt.PhysicalQty = in.PhysicalQty
			pqt.Variance = variance
			pqt.CheckedBy = in.CheckedBy
			pqt.CheckDate = &now
			pqt.Notes = in.Notes
			pqt.Status = status
		})
		return err
	})
	if err != nil {
		return models.PhysicalQuantity{}, err
	}
	return result, nil
}

// ApplyAdjustment mengoreksi stok ke new_qty secara atomik: update stok,
// insert stock_adjustments, set PQT → Adjusted (variance 0), insert movement
// Adjust. Keempat write commit bersama atau tidak sama sekali.
func (s *service) ApplyAdjustment(ctx context.Context, in AdjustmentInput) (AdjustmentResult, error) {
	var res AdjustmentResult

	if in.NewQty < 0 {
		return res, &InvalidAdjustmentError{NewQty: in.NewQty}
	}
	switch in.AdjustmentType {
	case models.AdjustCorrection, models.AdjustDamage, models.AdjustLoss, models.AdjustFound, models.AdjustTransfer:
	default:
		return res, &ValidationError{Field: "adjustment_type", Message: "Unknown adjustment type!"}
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		sp, err := lockSparepartByID(tx, in.SpareID)
		if err != nil {
			return err
		}

		now := time.Now()
		oldQty := sp.Stock
		diff := in.NewQty - oldQty

		if err := tx.Model(&models.Sparepart{}).Where("id = ?", sp.ID).
			Update("stock", in.NewQty).Error; err != nil {
			return &StorageError{Op: "update sparepart stock", Err: err}
		}

		adj := models.StockAdjustment{
			SpareID:        sp.ID,
			SpareName:      sp.SpareName,
			AdjustmentType: in.AdjustmentType,
			OldQty:         oldQty,
			NewQty:         in.NewQty,
			Difference:     diff,
			Reason:         in.Reason,
			AdjustedBy:     in.AdjustedBy,
			AdjustmentDate: now,
			Notes:          in.Notes,
		}
		if err := tx.Create(&adj).Error; err != nil {
			return &StorageError{Op: "insert stock_adjustment", Err: err}
		}

		if _, err := upsertPQT(tx, sp.ID, func(pqt *models.PhysicalQuantity) {
			pqt.ProductNumber = sp.ProductNumber
			pqt.SpareName = sp.SpareName
			pqt.SystemQty = in.NewQty
			pqt.PhysicalQty = in.NewQty
			pqt.Variance = 0
			pqt.Status = models.PQTAdjusted
			pqt.AdjustmentDate = &now
		}); err != nil {
			return err
		}

		quantity := diff
		if quantity < 0 {
			quantity = -quantity
		}
		movement := models.StockMovement{
			SpareID:      sp.ID,
			SpareName:    sp.SpareName,
			MovementType: models.MovementAdjust,
			Quantity:     quantity,
			Notes:        in.Reason,
			CreatedBy:    in.AdjustedBy,
			CreatedAt:    now,
		}
		if err := tx.Create(&movement).Error; err != nil {
			return &StorageError{Op: "insert stock_movement", Err: err}
		}

		res = AdjustmentResult{
			SpareID:    sp.ID,
			SpareName:  sp.SpareName,
			OldQty:     oldQty,
			NewQty:     in.NewQty,
			Difference: diff,
		}
		return nil
	})
	if err != nil {
		return AdjustmentResult{}, err
	}
	return res, nil
}
