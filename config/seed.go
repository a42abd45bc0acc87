package config

import (
	"log"

	"go-sparepart-pqt/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedSpareparts mengisi katalog awal kalau tabel masih kosong.
func SeedSpareparts(db *gorm.DB) {
	var count int64
	db.Model(&models.Sparepart{}).Count(&count)
	if count > 0 {
		return
	}

	samples := []models.Sparepart{
		{ProductNumber: "B001", SpareName: "Bearing 6205", MaterialType: "Steel", Stock: 50, MinStock: 5, RackLocation: "Rack A-01"},
		{ProductNumber: "B002", SpareName: "Bearing 6306", MaterialType: "Steel", Stock: 30, MinStock: 3, RackLocation: "Rack A-02"},
		{ProductNumber: "S001", SpareName: "Seal 25x42x7", MaterialType: "Rubber", Stock: 100, MinStock: 10, RackLocation: "Rack B-01"},
		{ProductNumber: "B003", SpareName: "Belt B-85", MaterialType: "Rubber", Stock: 20, MinStock: 2, RackLocation: "Rack B-02"},
		{ProductNumber: "O001", SpareName: "Oil Filter", MaterialType: "Paper/Metal", Stock: 40, MinStock: 4, RackLocation: "Rack C-01"},
		{ProductNumber: "G001", SpareName: "Gasket Set", MaterialType: "Rubber", Stock: 60, MinStock: 6, RackLocation: "Rack C-02"},
		{ProductNumber: "P001", SpareName: "Pump Seal", MaterialType: "Ceramic", Stock: 25, MinStock: 3, RackLocation: "Rack D-01"},
		{ProductNumber: "V001", SpareName: "Valve Assembly", MaterialType: "Brass", Stock: 15, MinStock: 2, RackLocation: "Rack D-02"},
		{ProductNumber: "M001", SpareName: "Motor Coupling", MaterialType: "Steel", Stock: 35, MinStock: 4, RackLocation: "Rack E-01"},
		{ProductNumber: "C001", SpareName: "Chain Sprocket", MaterialType: "Steel", Stock: 45, MinStock: 5, RackLocation: "Rack E-02"},
	}

	for _, sp := range samples {
		if err := db.Create(&sp).Error; err != nil {
			log.Printf("seed sparepart %q: %v", sp.SpareName, err)
		}
	}
	log.Printf("seeded %d sample spareparts", len(samples))
}

// SeedUsers membuat akun operator awal kalau belum ada.
func SeedUsers(db *gorm.DB) {
	accounts := []struct {
		Username string
		Password string
		Role     string
	}{
		{"admin", "admin123", "admin"},
		{"user", "user123", "operator"},
		{"me", "me123", "operator"},
	}

	for _, a := range accounts {
		var cnt int64
		db.Model(&models.User{}).Where("username = ?", a.Username).Count(&cnt)
		if cnt > 0 {
			continue
		}
		hash, _ := bcrypt.GenerateFromPassword([]byte(a.Password), bcrypt.DefaultCost)
		u := models.User{Username: a.Username, PasswordHash: string(hash), Role: a.Role, IsActive: true}
		if err := db.Create(&u).Error; err != nil {
			log.Printf("seed user %q: %v", a.Username, err)
		}
	}
}
