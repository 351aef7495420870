// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"fishers/internal/delivery/api/middleware"
	"fishers/internal/delivery/api/router/handler"
	"fishers/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler        *handler.AuthHandler
	MemberHandler      *handler.MemberHandler
	DuesHandler        *handler.DuesHandler
	LedgerHandler      *handler.LedgerHandler
	ReportHandler      *handler.ReportHandler
	ReceiptHandler     *handler.ReceiptHandler
	AssociationHandler *handler.AssociationHandler
	AuthMiddleware     *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler        *handler.AuthHandler
	memberHandler      *handler.MemberHandler
	duesHandler        *handler.DuesHandler
	ledgerHandler      *handler.LedgerHandler
	reportHandler      *handler.ReportHandler
	receiptHandler     *handler.ReceiptHandler
	associationHandler *handler.AssociationHandler
	authMiddleware     *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:        params.AuthHandler,
		memberHandler:      params.MemberHandler,
		duesHandler:        params.DuesHandler,
		ledgerHandler:      params.LedgerHandler,
		reportHandler:      params.ReportHandler,
		receiptHandler:     params.ReceiptHandler,
		associationHandler: params.AssociationHandler,
		authMiddleware:     params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	e.POST("/auth/login", r.authHandler.Login)

	// Printed on receipts as a QR code, so it must stay public
	e.GET("/receipts/:number/verify", r.receiptHandler.VerifyReceipt)

	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate)
	apiV1.Use(r.authMiddleware.RequireRole(entity.RoleOperator))

	membersGroup := apiV1.Group("/members")
	{
		membersGroup.GET("", r.memberHandler.ListMembers)
		membersGroup.POST("", r.memberHandler.RegisterMember)
		membersGroup.GET("/:id", r.memberHandler.GetMember)
		membersGroup.PUT("/:id", r.memberHandler.UpdateMember)

		membersGroup.GET("/:id/documents", r.memberHandler.ListDocuments)
		membersGroup.POST("/:id/documents", r.memberHandler.UploadDocument)
		membersGroup.GET("/:id/documents/:docId/file", r.memberHandler.DownloadDocument)

		membersGroup.POST("/:id/dues", r.duesHandler.AddDues)
		membersGroup.POST("/:id/dues/generate", r.duesHandler.GenerateDues)

		membersGroup.GET("/:id/benefit", r.memberHandler.GetBenefit)
		membersGroup.GET("/:id/benefit/dossier", r.memberHandler.GetBenefitDossier)
	}

	duesGroup := apiV1.Group("/dues")
	{
		duesGroup.GET("/:id", r.duesHandler.GetDues)
		duesGroup.DELETE("/:id", r.duesHandler.DeleteDues)
		duesGroup.POST("/:id/pay", r.duesHandler.PayDues)
		duesGroup.POST("/:id/exempt", r.duesHandler.ExemptDues)
		duesGroup.GET("/:id/receipt", r.duesHandler.GetReceipt)
	}

	apiV1.GET("/reports", r.reportHandler.GetReport)

	ledgerGroup := apiV1.Group("/ledger")
	{
		ledgerGroup.GET("", r.ledgerHandler.ListEntries)
		ledgerGroup.POST("", r.ledgerHandler.CreateEntry)
		ledgerGroup.PUT("/:id", r.ledgerHandler.UpdateEntry)
		ledgerGroup.DELETE("/:id", r.ledgerHandler.DeleteEntry)
	}

	associationGroup := apiV1.Group("/association")
	{
		associationGroup.GET("", r.associationHandler.GetAssociation)
		associationGroup.GET("/logo", r.associationHandler.GetLogo)
		associationGroup.GET("/signature", r.associationHandler.GetSignature)

		adminOnly := r.authMiddleware.RequireRole(entity.RoleAdmin)
		associationGroup.PUT("", r.associationHandler.UpdateAssociation, adminOnly)
		associationGroup.PUT("/logo", r.associationHandler.SetLogo, adminOnly)
		associationGroup.PUT("/signature", r.associationHandler.SetSignature, adminOnly)
	}
}
