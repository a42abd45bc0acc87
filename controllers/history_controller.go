package controllers

import (
	"net/http"
	"strconv"

	"go-sparepart-pqt/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HistoryController struct{ db *gorm.DB }

func NewHistoryController(db *gorm.DB) *HistoryController { return &HistoryController{db: db} }

func limitParam(c *gin.Context) int {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if err != nil || limit <= 0 || limit > 1000 {
		limit = 100
	}
	return limit
}

// GET /api/history/usage
func (hc *HistoryController) Usage(c *gin.Context) {
	var rows []models.StockUsage
	if err := hc.db.Order("date_time DESC").Limit(limitParam(c)).Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal mengambil data", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rows})
}

// GET /api/history/adjustments
func (hc *HistoryController) Adjustments(c *gin.Context) {
	var rows []models.StockAdjustment
	if err := hc.db.Order("adjustment_date DESC").Limit(limitParam(c)).Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal mengambil data", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rows})
}

// GET /api/history/movements
func (hc *HistoryController) Movements(c *gin.Context) {
	var rows []models.StockMovement
	if err := hc.db.Order("created_at DESC").Limit(limitParam(c)).Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal mengambil data", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rows})
}
