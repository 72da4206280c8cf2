package main

import (
	"github.com/gin-gonic/gin"

	"github.com/naqeebullahkahai-creator/skiller2-sub003/internal/interfaces/http/handlers"
	"github.com/naqeebullahkahai-creator/skiller2-sub003/internal/interfaces/http/middleware"
)

type routeDeps struct {
	authHandler         *handlers.AuthHandler
	walletHandler       *handlers.WalletHandler
	payoutHandler       *handlers.PayoutHandler
	subscriptionHandler *handlers.SubscriptionHandler
	depositHandler      *handlers.DepositHandler
	flashSaleHandler    *handlers.FlashSaleHandler
	productHandler      *handlers.ProductHandler
	settingsHandler     *handlers.AdminSettingsHandler
	authMiddleware      gin.HandlerFunc
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", d.authHandler.Register)
			auth.POST("/login", d.authHandler.Login)
			auth.GET("/me", d.authMiddleware, d.authHandler.GetMe)
		}

		// Wallet routes (protected)
		wallet := v1.Group("/wallet")
		wallet.Use(d.authMiddleware)
		{
			wallet.GET("", d.walletHandler.GetWallet)
			wallet.GET("/ledger", d.walletHandler.GetLedger)
		}

		// Payout routes (sellers)
		payouts := v1.Group("/payouts")
		payouts.Use(d.authMiddleware, middleware.RequireSeller())
		{
			payouts.POST("", middleware.IdempotencyMiddleware(), d.payoutHandler.Request)
			payouts.GET("", d.payoutHandler.ListMine)
		}

		// Subscription routes (sellers)
		subscription := v1.Group("/subscription")
		subscription.Use(d.authMiddleware, middleware.RequireSeller())
		{
			subscription.GET("", d.subscriptionHandler.GetOverview)
			subscription.GET("/deductions", d.subscriptionHandler.GetHistory)
			subscription.POST("/plan-change", d.subscriptionHandler.RequestPlanChange)
		}

		// Deposit routes (customers and sellers)
		deposits := v1.Group("/deposits")
		deposits.Use(d.authMiddleware)
		{
			deposits.POST("", middleware.IdempotencyMiddleware(), d.depositHandler.Create)
			deposits.GET("", d.depositHandler.ListMine)
			deposits.GET("/payment-methods", d.depositHandler.ListPaymentMethods)
		}

		// Product routes (sellers)
		products := v1.Group("/products")
		products.Use(d.authMiddleware, middleware.RequireSeller())
		{
			products.POST("", d.productHandler.Create)
			products.GET("", d.productHandler.ListMine)
		}

		// Flash sale routes
		flashSales := v1.Group("/flash-sales")
		{
			flashSales.GET("", d.flashSaleHandler.ListSales)
			flashSales.GET("/:id/products", d.flashSaleHandler.ListSaleProducts)
			flashSales.GET("/nominations", d.authMiddleware, middleware.RequireSeller(), d.flashSaleHandler.ListMyNominations)
			flashSales.POST("/:id/nominations", d.authMiddleware, middleware.RequireSeller(), d.flashSaleHandler.Nominate)
			flashSales.POST("/:id/products/:productId/sales", d.authMiddleware, d.flashSaleHandler.RecordSale)
		}

		// Admin routes (protected)
		admin := v1.Group("/admin")
		admin.Use(d.authMiddleware, middleware.RequireAdmin())
		{
			admin.POST("/wallets/:userId/earnings", middleware.IdempotencyMiddleware(), d.walletHandler.RecordEarning)
			admin.POST("/wallets/:userId/refund-deductions", middleware.IdempotencyMiddleware(), d.walletHandler.RecordRefundDeduction)

			admin.GET("/payouts", d.payoutHandler.ListByStatus)
			admin.POST("/payouts/:id/process", d.payoutHandler.Process)
			admin.POST("/payouts/:id/reject", d.payoutHandler.Reject)

			admin.GET("/plan-changes", d.subscriptionHandler.ListPlanChanges)
			admin.POST("/plan-changes/:id/resolve", d.subscriptionHandler.ResolvePlanChange)
			admin.POST("/subscriptions/:userId/deduct", d.subscriptionHandler.DeductNow)

			admin.GET("/deposits", d.depositHandler.ListByStatus)
			admin.POST("/deposits/:id/approve", d.depositHandler.Approve)
			admin.POST("/deposits/:id/reject", d.depositHandler.Reject)

			admin.POST("/payment-methods", d.depositHandler.CreatePaymentMethod)
			admin.PUT("/payment-methods/:id", d.depositHandler.UpdatePaymentMethod)

			admin.POST("/flash-sales", d.flashSaleHandler.CreateSale)
			admin.GET("/nominations", d.flashSaleHandler.ListNominations)
			admin.POST("/nominations/:id/approve", d.flashSaleHandler.ApproveNomination)
			admin.POST("/nominations/:id/reject", d.flashSaleHandler.RejectNomination)

			admin.GET("/settings", d.settingsHandler.List)
			admin.PUT("/settings/:key", d.settingsHandler.Update)
		}
	}
}
