package service

import (
	"testing"

	"go-sparepart-pqt/models"

	"github.com/stretchr/testify/assert"
)

func TestClassifyStock(t *testing.T) {
	tests := []struct {
		name      string
		systemQty int
		physical  int
		variance  int
		minStock  int
		pqtStatus models.PQTStatus
		wantIcon  string
		wantCats  []StatusCategory
	}{
		{
			name:      "stok habis menang atas semua sinyal lain",
			systemQty: 0, physical: 0, variance: 0, minStock: 5, pqtStatus: models.PQTPending,
			wantIcon: "🔴", wantCats: []StatusCategory{StatusMissing},
		},
		{
			name:      "stok habis walau ada variance",
			systemQty: 0, physical: 3, variance: 3, minStock: 5, pqtStatus: models.PQTVerified,
			wantIcon: "🔴", wantCats: []StatusCategory{StatusMissing},
		},
		{
			name:      "variance terverifikasi",
			systemQty: 10, physical: 8, variance: -2, minStock: 5, pqtStatus: models.PQTVerified,
			wantIcon: "⚠️", wantCats: []StatusCategory{StatusVariance},
		},
		{
			name:      "variance belum dicek dapat sub-tag no_check",
			systemQty: 10, physical: 8, variance: -2, minStock: 5, pqtStatus: models.PQTPending,
			wantIcon: "❓", wantCats: []StatusCategory{StatusVariance, StatusNoCheck},
		},
		{
			name:      "stok menipis",
			systemQty: 4, physical: 4, variance: 0, minStock: 5, pqtStatus: models.PQTVerified,
			wantIcon: "🟡", wantCats: []StatusCategory{StatusLowStock},
		},
		{
			name:      "match karena physical sama",
			systemQty: 20, physical: 20, variance: 0, minStock: 5, pqtStatus: models.PQTPending,
			wantIcon: "✅", wantCats: []StatusCategory{StatusMatch},
		},
		{
			name:      "match karena sudah verified",
			systemQty: 20, physical: 19, variance: 0, minStock: 5, pqtStatus: models.PQTVerified,
			wantIcon: "✅", wantCats: []StatusCategory{StatusMatch},
		},
		{
			name:      "belum pernah dicek fisik",
			systemQty: 20, physical: 19, variance: 0, minStock: 5, pqtStatus: models.PQTPending,
			wantIcon: "📊", wantCats: []StatusCategory{StatusNoCheck},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			icon, cats := ClassifyStock(tt.systemQty, tt.physical, tt.variance, tt.minStock, tt.pqtStatus)
			assert.Equal(t, tt.wantIcon, icon)
			assert.Equal(t, tt.wantCats, cats)
		})
	}
}

func TestFormatVariance(t *testing.T) {
	assert.Equal(t, "+3", FormatVariance(3))
	assert.Equal(t, "-2", FormatVariance(-2))
	assert.Equal(t, "0", FormatVariance(0))
}

func TestValidateQuantity(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantQty int
		wantMsg string
	}{
		{"valid", "7", 7, ""},
		{"valid dengan spasi", " 12 ", 12, ""},
		{"kosong", "   ", 0, "Qty cannot be empty!"},
		{"bukan angka", "abc", 0, "Invalid qty format!"},
		{"desimal juga ditolak", "2.5", 0, "Invalid qty format!"},
		{"nol", "0", 0, "Qty must be positive!"},
		{"negatif", "-4", 0, "Qty must be positive!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			qty, err := ValidateQuantity(tt.value, "Qty")
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantQty, qty)
				return
			}
			var vErr *ValidationError
			assert.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.wantMsg, vErr.Message)
		})
	}
}
