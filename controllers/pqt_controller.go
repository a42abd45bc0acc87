package controllers

import (
	"net/http"

	"go-sparepart-pqt/models"
	"go-sparepart-pqt/service"
	"go-sparepart-pqt/utils"

	"github.com/gin-gonic/gin"
)

type PQTController struct{ svc service.Service }

func NewPQTController(svc service.Service) *PQTController { return &PQTController{svc: svc} }

type CheckRequest struct {
	SpareID     uint   `json:"spare_id" binding:"required"`
	PhysicalQty *int   `json:"physical_qty" binding:"required"`
	Notes       string `json:"notes"`
}

// POST /api/pqt/check
func (pc *PQTController) RecordCheck(c *gin.Context) {
	var in CheckRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Payload tidak valid", "error": err.Error()})
		return
	}

	pqt, err := pc.svc.RecordCheck(c.Request.Context(), service.CheckInput{
		SpareID:     in.SpareID,
		PhysicalQty: *in.PhysicalQty,
		CheckedBy:   c.GetString("username"),
		Notes:       in.Notes,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}

	utils.Success(c, "Physical check recorded", gin.H{
		"record":   pqt,
		"variance": service.FormatVariance(pqt.Variance),
	})
}

type AdjustmentRequest struct {
	SpareID        uint                  `json:"spare_id" binding:"required"`
	AdjustmentType models.AdjustmentType `json:"adjustment_type" binding:"required"`
	NewQty         *int                  `json:"new_qty" binding:"required"`
	Reason         string                `json:"reason"`
	Notes          string                `json:"notes"`
}

// POST /api/pqt/adjust
func (pc *PQTController) ApplyAdjustment(c *gin.Context) {
	var in AdjustmentRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Payload tidak valid", "error": err.Error()})
		return
	}

	res, err := pc.svc.ApplyAdjustment(c.Request.Context(), service.AdjustmentInput{
		SpareID:        in.SpareID,
		AdjustmentType: in.AdjustmentType,
		NewQty:         *in.NewQty,
		Reason:         in.Reason,
		AdjustedBy:     c.GetString("username"),
		Notes:          in.Notes,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}

	utils.Success(c, "Stock adjusted", res)
}
