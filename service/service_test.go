package service

import (
	"testing"

	"go-sparepart-pqt/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB membuat database sqlite in-memory. Satu koneksi saja supaya
// transaksi tulis terserialisasi seperti row lock di postgres.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, db.AutoMigrate(
		&models.Sparepart{},
		&models.PhysicalQuantity{},
		&models.StockUsage{},
		&models.StockAdjustment{},
		&models.StockMovement{},
	))
	return db
}

func seedPart(t *testing.T, db *gorm.DB, name string, stock, minStock int) models.Sparepart {
	t.Helper()
	sp := models.Sparepart{
		ProductNumber: "PN-" + name,
		SpareName:     name,
		MaterialType:  "Steel",
		Stock:         stock,
		MinStock:      minStock,
		RackLocation:  "Rack T-01",
	}
	require.NoError(t, db.Create(&sp).Error)
	return sp
}

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

// requireVarianceInvariant: variance record PQT selalu physical - system.
func requireVarianceInvariant(t *testing.T, db *gorm.DB, spareID uint) {
	t.Helper()
	var pqt models.PhysicalQuantity
	require.NoError(t, db.Where("spare_id = ?", spareID).First(&pqt).Error)
	require.Equal(t, pqt.PhysicalQty-pqt.SystemQty, pqt.Variance)
}
