package controllers

import (
	"fmt"
	"net/http"

	"go-sparepart-pqt/service"

	"github.com/gin-gonic/gin"
)

type WithdrawalController struct{ svc service.Service }

func NewWithdrawalController(svc service.Service) *WithdrawalController {
	return &WithdrawalController{svc: svc}
}

type WithdrawRequest struct {
	ItemName    string `json:"item_name"`
	Qty         string `json:"qty"` // string mentah, validasi 3-pesan di service
	MachineName string `json:"machine_name"`
	RequestID   string `json:"request_id"`
	Notes       string `json:"notes"`
}

// POST /api/withdraw
func (wc *WithdrawalController) Withdraw(c *gin.Context) {
	var in WithdrawRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Payload tidak valid", "error": err.Error()})
		return
	}

	issuedBy := c.GetString("username")

	res, err := wc.svc.Withdraw(c.Request.Context(), service.WithdrawInput{
		ItemName:    in.ItemName,
		Qty:         in.Qty,
		MachineName: in.MachineName,
		RequestID:   in.RequestID,
		Notes:       in.Notes,
		IssuedBy:    issuedBy,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Sparepart taken successfully!",
		"summary": fmt.Sprintf("%s: %d → %d (taken %d for %s)",
			res.ItemName, res.StockBefore, res.StockAfter, res.QtyUsed, res.MachineName),
		"data": res,
	})
}
