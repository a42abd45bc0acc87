package service

import (
	"fmt"
	"strconv"
	"strings"

	"go-sparepart-pqt/models"
)

type StatusCategory string

const (
	StatusMissing  StatusCategory = "missing"
	StatusVariance StatusCategory = "variance"
	StatusLowStock StatusCategory = "low_stock"
	StatusMatch    StatusCategory = "match"
	StatusNoCheck  StatusCategory = "no_check"
)

// ClassifyStock memetakan kondisi stok ke ikon + kategori status.
// Urutan evaluasi adalah prioritas tampilan: stok habis menang atas segalanya,
// lalu variance (dengan sub-tag no_check kalau belum diverifikasi), lalu
// stok menipis, lalu match, sisanya belum pernah dicek fisik.
func ClassifyStock(systemQty, physicalQty, variance, minStock int, pqtStatus models.PQTStatus) (string, []StatusCategory) {
	switch {
	case systemQty == 0:
		return "🔴", []StatusCategory{StatusMissing}
	case variance != 0:
		if pqtStatus == models.PQTVerified {
			return "⚠️", []StatusCategory{StatusVariance}
		}
		return "❓", []StatusCategory{StatusVariance, StatusNoCheck}
	case systemQty <= minStock:
		return "🟡", []StatusCategory{StatusLowStock}
	case physicalQty == systemQty || pqtStatus == models.PQTVerified:
		return "✅", []StatusCategory{StatusMatch}
	default:
		return "📊", []StatusCategory{StatusNoCheck}
	}
}

// FormatVariance menampilkan variance dengan tanda +/-.
func FormatVariance(value int) string {
	if value > 0 {
		return fmt.Sprintf("+%d", value)
	}
	return strconv.Itoa(value)
}

// ValidateQuantity memeriksa input kuantitas mentah dari form. Tiga pesan
// berbeda: kosong, bukan angka, tidak positif.
func ValidateQuantity(value, fieldName string) (int, error) {
	if strings.TrimSpace(value) == "" {
		return 0, &ValidationError{Field: fieldName, Message: fmt.Sprintf("%s cannot be empty!", fieldName)}
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, &ValidationError{Field: fieldName, Message: fmt.Sprintf("Invalid %s format!", strings.ToLower(fieldName))}
	}
	if n <= 0 {
		return 0, &ValidationError{Field: fieldName, Message: fmt.Sprintf("%s must be positive!", fieldName)}
	}
	return n, nil
}
