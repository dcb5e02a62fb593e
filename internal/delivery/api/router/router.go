// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"insureflow/internal/delivery/api/middleware"
	"insureflow/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	CatalogHandler  *handler.CatalogHandler
	ChatHandler     *handler.ChatHandler
	DocumentHandler *handler.DocumentHandler
	FlowHandler     *handler.FlowHandler
	FormHandler     *handler.FormHandler
	PaymentHandler  *handler.PaymentHandler
	PurchaseHandler *handler.PurchaseHandler
	SessionAuth     *middleware.SessionAuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	catalogHandler  *handler.CatalogHandler
	chatHandler     *handler.ChatHandler
	documentHandler *handler.DocumentHandler
	flowHandler     *handler.FlowHandler
	formHandler     *handler.FormHandler
	paymentHandler  *handler.PaymentHandler
	purchaseHandler *handler.PurchaseHandler
	sessionAuth     *middleware.SessionAuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		catalogHandler:  params.CatalogHandler,
		chatHandler:     params.ChatHandler,
		documentHandler: params.DocumentHandler,
		flowHandler:     params.FlowHandler,
		formHandler:     params.FormHandler,
		paymentHandler:  params.PaymentHandler,
		purchaseHandler: params.PurchaseHandler,
		sessionAuth:     params.SessionAuth,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	e.POST("/sessions", r.flowHandler.CreateSession)

	// Catalog
	e.GET("/packages", r.catalogHandler.ListPackages)
	e.GET("/packages/:id", r.catalogHandler.GetPackage)

	// Auth proxy. Login and me pick up the session when a token is sent.
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login, r.sessionAuth.Optional)
		authGroup.GET("/me", r.authHandler.Me, r.sessionAuth.Optional)
		authGroup.POST("/logout", r.authHandler.Logout, r.sessionAuth.Authenticate)
	}

	// Document viewer proxy
	documentsGroup := e.Group("/documents")
	{
		documentsGroup.GET("/:id", r.documentHandler.GetDocument)
		documentsGroup.GET("/:id/overlay", r.documentHandler.GetOverlay)
		documentsGroup.GET("/:id/markdown", r.documentHandler.GetMarkdown)
		documentsGroup.GET("/:id/json", r.documentHandler.GetJSON)
		documentsGroup.PUT("/:id/json", r.documentHandler.PutJSON)
		documentsGroup.POST("/:id/process", r.documentHandler.Process)
		documentsGroup.POST("/:id/analyze-auto", r.documentHandler.AnalyzeAuto)
	}
	e.GET("/jobs/:id", r.documentHandler.GetJob)

	e.POST("/chat", r.chatHandler.Send)

	// Purchase history, scoped to the caller's session
	e.GET("/users/:id/insurance-purchases", r.purchaseHandler.ListUserPurchases, r.sessionAuth.Authenticate)
	e.GET("/purchases/:contractId", r.purchaseHandler.GetPurchase, r.sessionAuth.Authenticate)

	// Purchase flow, every route needs a session token
	flowGroup := e.Group("/flow")
	flowGroup.Use(r.sessionAuth.Authenticate)
	{
		flowGroup.GET("", r.flowHandler.GetState)
		flowGroup.PUT("/package", r.flowHandler.SelectPackage)
		flowGroup.PUT("/step", r.flowHandler.SetStep)
		flowGroup.DELETE("", r.flowHandler.Reset)

		flowGroup.GET("/documents", r.documentHandler.GetDocumentFlow)
		flowGroup.POST("/documents", r.documentHandler.Upload)
		flowGroup.PUT("/documents/viewer", r.documentHandler.UpdateViewer)
		flowGroup.DELETE("/documents", r.documentHandler.ClearDocuments)

		flowGroup.POST("/recommendation/accept", r.documentHandler.AcceptRecommendation)
		flowGroup.POST("/recommendation/decline", r.documentHandler.DeclineRecommendation)

		flowGroup.POST("/form/enter", r.formHandler.Enter)
		flowGroup.GET("/form", r.formHandler.Get)
		flowGroup.PATCH("/form", r.formHandler.UpdateFields)
		flowGroup.POST("/form/next", r.formHandler.Next)
		flowGroup.POST("/form/back", r.formHandler.Back)
		flowGroup.POST("/form/family-members", r.formHandler.AddFamilyMember)
		flowGroup.DELETE("/form/family-members/:index", r.formHandler.RemoveFamilyMember)
		flowGroup.POST("/form/files", r.formHandler.AttachFile)
		flowGroup.POST("/form/submit", r.formHandler.Submit)

		flowGroup.GET("/payment", r.paymentHandler.GetSummary)
		flowGroup.GET("/payment/qr", r.paymentHandler.GetQRCode)
		flowGroup.POST("/payment/confirm", r.paymentHandler.ConfirmPayment)
		flowGroup.GET("/contract", r.paymentHandler.GetContract)

		flowGroup.GET("/purchases", r.purchaseHandler.ListSessionPurchases)
	}
}
