package fakeapi

import (
	"github.com/gin-gonic/gin"
)

const (
	PathProducts  = "/products"
	PathWorkers   = "/workers"
	PathActions   = "/actions"
	PathEstimates = "/estimates"
	PathContracts = "/contracts"
	PathReports   = "/reports"
)

func registerRoutes(r *gin.Engine, s *Server) {
	r.POST("/token", s.login)

	products := r.Group(PathProducts)
	{
		products.GET("/", s.locked(listProducts))
		products.POST("/", s.locked(createProduct))
		products.PATCH("/:id", s.locked(updateProduct))
		products.DELETE("/:id", s.locked(deleteProduct))
		products.POST("/:id/restore", s.locked(restoreProduct))
		products.PATCH("/:id/toggle-favorite", s.locked(toggleFavorite))
	}

	workers := r.Group(PathWorkers)
	{
		workers.GET("/", s.locked(listWorkers))
		workers.POST("/", s.locked(createWorker))
		workers.PATCH("/:id", s.locked(renameWorker))
		workers.DELETE("/:id", s.locked(deleteWorker))
	}

	actions := r.Group(PathActions)
	{
		actions.POST("/receive-item/", s.locked(receiveItem))
		actions.POST("/issue-item/", s.locked(issueItem))
		actions.POST("/return-item/", s.locked(returnItem))
		actions.POST("/write-off-item/", s.locked(writeOffItem))
		actions.GET("/worker-stock/:id", s.locked(workerStock))
		actions.GET("/history/", s.locked(history))
		actions.POST("/history/cancel/:id", s.locked(cancelMovement))
		actions.POST("/universal-import/", s.locked(universalImport))
		actions.POST("/import-1c-estimate/", s.locked(import1C))
	}

	estimates := r.Group(PathEstimates)
	{
		estimates.GET("/", s.locked(listEstimates))
		estimates.POST("/", s.locked(createEstimate))
		estimates.GET("/:id", s.locked(getEstimate))
		estimates.PATCH("/:id", s.locked(updateEstimate))
		estimates.DELETE("/:id", s.locked(deleteEstimate))
		estimates.POST("/:id/ship", s.locked(shipEstimate))
		estimates.POST("/:id/assign-worker", s.locked(assignWorker))
		estimates.POST("/:id/issue-additional", s.locked(issueAdditional))
		estimates.PATCH("/:id/items/:item_id", s.locked(updateEstimateItem))
		estimates.POST("/:id/complete", s.locked(completeEstimate))
		estimates.POST("/:id/cancel", s.locked(cancelEstimate))
		estimates.POST("/:id/cancel-completion", s.locked(cancelCompletion))
		estimates.POST("/:id/reopen", s.locked(reopenEstimate))
	}

	contracts := r.Group(PathContracts)
	{
		contracts.GET("/", s.locked(listContracts))
		contracts.POST("/", s.locked(createContract))
		contracts.POST("/write-off-all-pipes", s.locked(writeOffAllPipes))
		contracts.GET("/:id", s.locked(getContract))
		contracts.PATCH("/:id", s.locked(updateContract))
		contracts.POST("/:id/write-off-pipes", s.locked(writeOffPipes))
		contracts.GET("/:id/generate-docx", s.locked(generateDocx))
		contracts.POST("/:id/calculate-revenue", s.locked(calculateRevenue))
	}

	reports := r.Group(PathReports)
	{
		reports.GET("/profit", s.locked(profitReport))
		reports.GET("/profit/:id/details", s.locked(profitDetails))
		reports.GET("/drilling-profit", s.locked(drillingProfit))
	}
	r.GET("/dashboard/summary", s.locked(dashboard))
	r.POST("/ai/chat", s.locked(chat))
}
