package service

import "fmt"

// ValidationError: input tidak valid sebelum menyentuh database.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NotFoundError: item name atau spare id tidak dikenal.
type NotFoundError struct {
	Entity string
	Key    string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Entity, e.Key)
}

// InsufficientStockError membawa kedua angka untuk ditampilkan caller.
type InsufficientStockError struct {
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("not enough system stock: requested %d, available %d", e.Requested, e.Available)
}

// InvalidAdjustmentError: hasil penyesuaian akan negatif.
type InvalidAdjustmentError struct {
	NewQty int
}

func (e *InvalidAdjustmentError) Error() string {
	return fmt.Sprintf("adjusted quantity cannot be negative: %d", e.NewQty)
}

// StorageError membungkus kegagalan koneksi/transaksi dari store.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string { return fmt.Sprintf("storage: %s: %v", e.Op, e.Err) }

func (e *StorageError) Unwrap() error { return e.Err }
