package controllers

import (
	"errors"
	"net/http"

	"go-sparepart-pqt/service"

	"github.com/gin-gonic/gin"
)

// writeServiceError menerjemahkan taxonomy error service ke status + body JSON.
func writeServiceError(c *gin.Context, err error) {
	var (
		vErr  *service.ValidationError
		nfErr *service.NotFoundError
		isErr *service.InsufficientStockError
		iaErr *service.InvalidAdjustmentError
	)
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"message": vErr.Message, "field": vErr.Field})
	case errors.As(err, &nfErr):
		c.JSON(http.StatusNotFound, gin.H{"message": "Item not found!", "error": nfErr.Error()})
	case errors.As(err, &isErr):
		c.JSON(http.StatusConflict, gin.H{
			"message":   "Not enough system stock!",
			"requested": isErr.Requested,
			"available": isErr.Available,
		})
	case errors.As(err, &iaErr):
		c.JSON(http.StatusBadRequest, gin.H{"message": iaErr.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Transaction failed", "error": err.Error()})
	}
}
