package controllers

import (
	"net/http"

	"go-sparepart-pqt/service"
	"go-sparepart-pqt/utils"

	"github.com/gin-gonic/gin"
)

type SnapshotController struct{ svc service.Service }

func NewSnapshotController(svc service.Service) *SnapshotController {
	return &SnapshotController{svc: svc}
}

// GET /api/snapshot
//
// Collaborator HTTP mengonsumsi sinyal loader sesuai iramanya sendiri; di
// sini itu berarti menguras channel sampai complete lalu membalas satu JSON.
func (sc *SnapshotController) LoadSnapshot(c *gin.Context) {
	var (
		items []string
		parts []service.PartRow
	)
	for sig := range sc.svc.LoadCatalogSnapshot(c.Request.Context()) {
		switch sig.Kind {
		case service.SignalItems:
			items = sig.Items
		case service.SignalParts:
			parts = sig.Parts
		case service.SignalError:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load parts", "error": sig.Err.Error()})
			return
		}
	}

	utils.Success(c, "Snapshot loaded", gin.H{
		"items": items,
		"parts": parts,
	})
}

// GET /api/items/:name
func (sc *SnapshotController) ItemDetail(c *gin.Context) {
	detail, err := sc.svc.ItemDetail(c.Request.Context(), c.Param("name"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	utils.Success(c, "Item detail", gin.H{
		"detail":   detail,
		"variance": service.FormatVariance(detail.Variance),
	})
}
