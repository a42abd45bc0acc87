package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"go-sparepart-pqt/models"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type SparepartController struct{ db *gorm.DB }

func NewSparepartController(db *gorm.DB) *SparepartController {
	return &SparepartController{db: db}
}

type SparepartInput struct {
	ProductNumber string `json:"product_number"`
	SpareName     string `json:"spare_name" binding:"required"`
	MaterialType  string `json:"material_type"`
	Stock         int    `json:"stock"`
	MinStock      int    `json:"min_stock"`
	RackLocation  string `json:"rack_location"`
}

// GET /api/spareparts?q=
func (sc *SparepartController) List(c *gin.Context) {
	q := sc.db.Model(&models.Sparepart{}).Order("spare_name ASC")
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(spare_name) LIKE ? OR LOWER(material_type) LIKE ?", like, like)
	}

	var rows []models.Sparepart
	if err := q.Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal mengambil data", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rows})
}

// GET /api/spareparts/:id
func (sc *SparepartController) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "id tidak valid"})
		return
	}

	var sp models.Sparepart
	if err := sc.db.First(&sp, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Sparepart tidak ditemukan"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal mengambil data", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": sp})
}

// POST /api/spareparts
func (sc *SparepartController) Create(c *gin.Context) {
	var in SparepartInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Payload tidak valid", "error": err.Error()})
		return
	}
	if in.Stock < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Stock tidak boleh negatif"})
		return
	}

	minStock := in.MinStock
	if minStock == 0 {
		minStock = 5
	}

	sp := models.Sparepart{
		ProductNumber: in.ProductNumber,
		SpareName:     strings.TrimSpace(in.SpareName),
		MaterialType:  in.MaterialType,
		Stock:         in.Stock,
		MinStock:      minStock,
		RackLocation:  in.RackLocation,
	}
	if err := sc.db.Create(&sp).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			c.JSON(http.StatusConflict, gin.H{"message": "Spare name sudah dipakai"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal membuat sparepart", "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Sparepart dibuat", "data": sp})
}

// PUT /api/spareparts/:id — atribut katalog saja. Stok hanya berubah lewat
// withdraw/adjustment supaya invariant movement tetap terjaga.
func (sc *SparepartController) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "id tidak valid"})
		return
	}

	var sp models.Sparepart
	if err := sc.db.First(&sp, uint(id)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Sparepart tidak ditemukan"})
		return
	}

	var in struct {
		ProductNumber *string `json:"product_number"`
		SpareName     *string `json:"spare_name"`
		MaterialType  *string `json:"material_type"`
		MinStock      *int    `json:"min_stock"`
		RackLocation  *string `json:"rack_location"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Payload tidak valid", "error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if in.ProductNumber != nil {
		updates["product_number"] = *in.ProductNumber
	}
	if in.SpareName != nil {
		updates["spare_name"] = strings.TrimSpace(*in.SpareName)
	}
	if in.MaterialType != nil {
		updates["material_type"] = *in.MaterialType
	}
	if in.MinStock != nil {
		updates["min_stock"] = *in.MinStock
	}
	if in.RackLocation != nil {
		updates["rack_location"] = *in.RackLocation
	}
	if len(updates) > 0 {
		if err := sc.db.Model(&sp).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal update sparepart", "error": err.Error()})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Sparepart diupdate", "data": sp})
}

// DELETE /api/spareparts/:id — cascade menghapus PQT, adjustment, dan
// movement milik part ini (pemangkasan katalog yang disengaja).
func (sc *SparepartController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "id tidak valid"})
		return
	}

	res := sc.db.Delete(&models.Sparepart{}, uint(id))
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal menghapus sparepart", "error": res.Error.Error()})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Sparepart tidak ditemukan"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Sparepart dihapus"})
}
