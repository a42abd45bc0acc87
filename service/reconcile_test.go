package service

import (
	"context"
	"testing"

	"go-sparepart-pqt/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordCheckLeavesVariancePending(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)
	sp := seedPart(t, db, "Bearing 6306", 10, 3)

	pqt, err := svc.RecordCheck(context.Background(), CheckInput{
		SpareID:     sp.ID,
		PhysicalQty: 8,
		CheckedBy:   "me",
		Notes:       "stock opname mingguan",
	})
	require.NoError(t, err)

	assert.Equal(t, 10, pqt.SystemQty)
	assert.Equal(t, 8, pqt.PhysicalQty)
	assert.Equal(t, -2, pqt.Variance)
	assert.Equal(t, models.PQTPending, pqt.Status)
	require.NotNil(t, pqt.CheckDate)
	requireVarianceInvariant(t, db, sp.ID)

	icon, cats := ClassifyStock(pqt.SystemQty, pqt.PhysicalQty, pqt.Variance, sp.MinStock, pqt.Status)
	assert.Equal(t, "❓", icon)
	assert.Equal(t, []StatusCategory{StatusVariance, StatusNoCheck}, cats)
}

func TestRecordCheckMatchingCountVerifies(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)
	sp := seedPart(t, db, "Motor Coupling", 35, 4)

	pqt, err := svc.RecordCheck(context.Background(), CheckInput{
		SpareID: sp.ID, PhysicalQty: 35, CheckedBy: "me",
	})
	require.NoError(t, err)

	assert.Equal(t, 0, pqt.Variance)
	assert.Equal(t, models.PQTVerified, pqt.Status)
}

func TestRecordCheckUpsertsSingleRecord(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)
	sp := seedPart(t, db, "Chain Sprocket", 45, 5)

	_, err := svc.RecordCheck(context.Background(), CheckInput{SpareID: sp.ID, PhysicalQty: 40})
	require.NoError(t, err)
	pqt, err := svc.RecordCheck(context.Background(), CheckInput{SpareID: sp.ID, PhysicalQty: 45})
	require.NoError(t, err)

	assert.Equal(t, int64(1), countRows(t, db, &models.PhysicalQuantity{}))
	assert.Equal(t, models.PQTVerified, pqt.Status)
}

func TestRecordCheckRejectsBadInput(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)

	_, err := svc.RecordCheck(context.Background(), CheckInput{SpareID: 999, PhysicalQty: 1})
	var nfErr *NotFoundError
	require.ErrorAs(t, err, &nfErr)

	sp := seedPart(t, db, "Seal 25x42x7", 100, 10)
	_, err = svc.RecordCheck(context.Background(), CheckInput{SpareID: sp.ID, PhysicalQty: -1})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
}

func TestApplyAdjustment(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)
	sp := seedPart(t, db, "Bearing 6205", 10, 5)

	// ada variance dari cek fisik sebelumnya
	_, err := svc.RecordCheck(context.Background(), CheckInput{SpareID: sp.ID, PhysicalQty: 7, CheckedBy: "me"})
	require.NoError(t, err)

	res, err := svc.ApplyAdjustment(context.Background(), AdjustmentInput{
		SpareID:        sp.ID,
		AdjustmentType: models.AdjustLoss,
		NewQty:         7,
		Reason:         "3 pcs hilang saat opname",
		AdjustedBy:     "admin",
	})
	require.NoError(t, err)

	assert.Equal(t, 10, res.OldQty)
	assert.Equal(t, 7, res.NewQty)
	assert.Equal(t, -3, res.Difference)

	var fresh models.Sparepart
	require.NoError(t, db.First(&fresh, sp.ID).Error)
	assert.Equal(t, 7, fresh.Stock)

	var adj models.StockAdjustment
	require.NoError(t, db.First(&adj).Error)
	assert.Equal(t, models.AdjustLoss, adj.AdjustmentType)
	assert.Equal(t, 10, adj.OldQty)
	assert.Equal(t, 7, adj.NewQty)
	assert.Equal(t, -3, adj.Difference)

	var pqt models.PhysicalQuantity
	require.NoError(t, db.Where("spare_id = ?", sp.ID).First(&pqt).Error)
	assert.Equal(t, models.PQTAdjusted, pqt.Status)
	assert.Equal(t, 7, pqt.SystemQty)
	assert.Equal(t, 0, pqt.Variance)
	require.NotNil(t, pqt.AdjustmentDate)
	requireVarianceInvariant(t, db, sp.ID)

	// movement Adjust dengan kuantitas absolut
	var movement models.StockMovement
	require.NoError(t, db.First(&movement).Error)
	assert.Equal(t, models.MovementAdjust, movement.MovementType)
	assert.Equal(t, 3, movement.Quantity)
}

func TestApplyAdjustmentRejectsNegative(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)
	sp := seedPart(t, db, "Oil Filter", 40, 4)

	_, err := svc.ApplyAdjustment(context.Background(), AdjustmentInput{
		SpareID:        sp.ID,
		AdjustmentType: models.AdjustCorrection,
		NewQty:         -1,
	})

	var iaErr *InvalidAdjustmentError
	require.ErrorAs(t, err, &iaErr)
	assert.Equal(t, -1, iaErr.NewQty)

	// tidak ada mutasi
	var fresh models.Sparepart
	require.NoError(t, db.First(&fresh, sp.ID).Error)
	assert.Equal(t, 40, fresh.Stock)
	assert.Equal(t, int64(0), countRows(t, db, &models.StockAdjustment{}))
	assert.Equal(t, int64(0), countRows(t, db, &models.StockMovement{}))
}

func TestApplyAdjustmentUnknownType(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)
	sp := seedPart(t, db, "Gasket Set", 60, 6)

	_, err := svc.ApplyAdjustment(context.Background(), AdjustmentInput{
		SpareID:        sp.ID,
		AdjustmentType: "Shrinkage",
		NewQty:         55,
	})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
}

func TestCatalogDeleteCascadesLedgerRows(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)
	sp := seedPart(t, db, "Belt B-85", 20, 2)

	_, err := svc.RecordCheck(context.Background(), CheckInput{SpareID: sp.ID, PhysicalQty: 18})
	require.NoError(t, err)
	_, err = svc.ApplyAdjustment(context.Background(), AdjustmentInput{
		SpareID: sp.ID, AdjustmentType: models.AdjustCorrection, NewQty: 18, AdjustedBy: "admin",
	})
	require.NoError(t, err)

	require.NoError(t, db.Delete(&models.Sparepart{}, sp.ID).Error)

	// pemangkasan katalog: baris PQT/adjustment/movement ikut terhapus
	assert.Equal(t, int64(0), countRows(t, db, &models.PhysicalQuantity{}))
	assert.Equal(t, int64(0), countRows(t, db, &models.StockAdjustment{}))
	assert.Equal(t, int64(0), countRows(t, db, &models.StockMovement{}))
}
