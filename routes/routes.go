package routes

import (
	"go-sparepart-pqt/controllers"
	"go-sparepart-pqt/middlewares"

	"github.com/gin-gonic/gin"
)

type Controllers struct {
	Auth       *controllers.AuthController
	Withdrawal *controllers.WithdrawalController
	PQT        *controllers.PQTController
	Snapshot   *controllers.SnapshotController
	Sparepart  *controllers.SparepartController
	History    *controllers.HistoryController
}

func SetupRoutes(r *gin.Engine, ctl Controllers) {
	api := r.Group("/api")
	{
		api.POST("/login", ctl.Auth.Login)

		auth := api.Group("/", middlewares.AuthMiddleware())

		auth.POST("/withdraw", ctl.Withdrawal.Withdraw)

		pqt := auth.Group("/pqt")
		{
			pqt.POST("/check", ctl.PQT.RecordCheck)
			pqt.POST("/adjust", ctl.PQT.ApplyAdjustment)
		}

		auth.GET("/snapshot", ctl.Snapshot.LoadSnapshot)
		auth.GET("/items/:name", ctl.Snapshot.ItemDetail)

		sparepart := auth.Group("/spareparts")
		{
			sparepart.GET("/", ctl.Sparepart.List)
			sparepart.GET("/:id", ctl.Sparepart.Get)
			sparepart.POST("/", ctl.Sparepart.Create)
			sparepart.PUT("/:id", ctl.Sparepart.Update)
			sparepart.DELETE("/:id", ctl.Sparepart.Delete)
		}

		history := auth.Group("/history")
		{
			history.GET("/usage", ctl.History.Usage)
			history.GET("/adjustments", ctl.History.Adjustments)
			history.GET("/movements", ctl.History.Movements)
		}
	}
}
