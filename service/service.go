package service

import (
	"context"
	"errors"
	"strconv"

	"go-sparepart-pqt/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Service adalah pintu masuk collaborator (HTTP/CLI) ke inti rekonsiliasi
// dan ledger. Semua operasi tulis berjalan dalam satu transaksi database
// dengan lock baris sparepart terkait.
type Service interface {
	// Withdraw mengeksekusi pengambilan sparepart secara atomik (4 writes).
	Withdraw(ctx context.Context, in WithdrawInput) (WithdrawResult, error)

	// RecordCheck mencatat hitungan fisik dan meng-upsert record PQT.
	RecordCheck(ctx context.Context, in CheckInput) (models.PhysicalQuantity, error)

	// ApplyAdjustment menerapkan koreksi stok out-of-band secara atomik.
	ApplyAdjustment(ctx context.Context, in AdjustmentInput) (AdjustmentResult, error)

	// LoadCatalogSnapshot memuat snapshot katalog di goroutine terpisah dan
	// mengirim sinyal bertipe (items, parts, complete/error) secara berurutan.
	LoadCatalogSnapshot(ctx context.Context) <-chan SnapshotSignal

	// ItemDetail mengambil detail satu item by name untuk panel detail.
	ItemDetail(ctx context.Context, itemName string) (ItemDetail, error)
}

type service struct{ db *gorm.DB }

func NewService(db *gorm.DB) Service { return &service{db: db} }

// withRowLock menambah SELECT ... FOR UPDATE supaya dua penulis terhadap part
// yang sama terserialisasi. SQLite tidak mengenal FOR UPDATE; writer-nya
// memang tunggal, jadi di sana cukup transaksi biasa.
func withRowLock(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

func lockSparepartByName(tx *gorm.DB, name string) (models.Sparepart, error) {
	var sp models.Sparepart
	err := withRowLock(tx).Where("spare_name = ?", name).First(&sp).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sp, &NotFoundError{Entity: "item", Key: name}
	}
	if err != nil {
		return sp, &StorageError{Op: "lock sparepart", Err: err}
	}
	return sp, nil
}

func lockSparepartByID(tx *gorm.DB, id uint) (models.Sparepart, error) {
	var sp models.Sparepart
	err := withRowLock(tx).Where("id = ?", id).First(&sp).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sp, &NotFoundError{Entity: "spare", Key: strconv.FormatUint(uint64(id), 10)}
	}
	if err != nil {
		return sp, &StorageError{Op: "lock sparepart", Err: err}
	}
	return sp, nil
}

// upsertPQT: read-then-insert-or-update di dalam transaksi yang sama, supaya
// keunikan "satu record PQT per part" eksplisit dan portable antar engine.
func upsertPQT(tx *gorm.DB, spareID uint, mutate func(pqt *models.PhysicalQuantity)) (models.PhysicalQuantity, error) {
	var pqt models.PhysicalQuantity
	err := tx.Where("spare_id = ?", spareID).First(&pqt).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		pqt = models.PhysicalQuantity{SpareID: spareID, Status: models.PQTPending}
		mutate(&pqt)
		if err := tx.Create(&pqt).Error; err != nil {
			return pqt, &StorageError{Op: "insert physical_quantity", Err: err}
		}
	case err != nil:
		return pqt, &StorageError{Op: "read physical_quantity", Err: err}
	default:
		mutate(&pqt)
		if err := tx.Save(&pqt).Error; err != nil {
			return pqt, &StorageError{Op: "update physical_quantity", Err: err}
		}
	}
	return pqt, nil
}
