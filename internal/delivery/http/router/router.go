// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"lifeline/internal/delivery/http/router/handler"
	"lifeline/internal/delivery/middleware"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	FamilyHandler  *handler.FamilyHandler
	PairingHandler *handler.PairingHandler
	DeviceHandler  *handler.DeviceHandler
	TickHandler    *handler.TickHandler
	OIDCMiddleware *middleware.OIDCMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	familyHandler  *handler.FamilyHandler
	pairingHandler *handler.PairingHandler
	deviceHandler  *handler.DeviceHandler
	tickHandler    *handler.TickHandler
	oidcMiddleware *middleware.OIDCMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		familyHandler:  params.FamilyHandler,
		pairingHandler: params.PairingHandler,
		deviceHandler:  params.DeviceHandler,
		tickHandler:    params.TickHandler,
		oidcMiddleware: params.OIDCMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	v1 := e.Group("/v1")

	// Primary device
	families := v1.Group("/families")
	{
		families.POST("", r.familyHandler.SetupFamily)
		families.GET("/:id", r.familyHandler.GetFamily)
		families.PUT("/:id/settings", r.familyHandler.UpdateSettings)
		families.POST("/:id/activity", r.familyHandler.RecordActivity)
		families.POST("/:id/location", r.familyHandler.RecordLocation)
		families.POST("/:id/alert/resend", r.familyHandler.ResendAlert)
		families.GET("/:id/dispatches", r.familyHandler.GetDispatchHistory)
		families.GET("/:id/approval", r.pairingHandler.GetApproval)
		families.GET("/:id/approval/stream", r.pairingHandler.StreamApproval)
	}

	// Watcher side of the handshake
	codes := v1.Group("/pairing/codes")
	{
		codes.GET("/:code", r.pairingHandler.LookupCode)
		codes.DELETE("/:code", r.pairingHandler.CancelPairing)
		codes.GET("/:code/qrcode", r.pairingHandler.GetPairingQR)
		codes.POST("/:code/decision", r.pairingHandler.Decide)
	}
	v1.POST("/pairing/scan", r.pairingHandler.ScanCode)

	devices := v1.Group("/devices")
	{
		devices.POST("", r.deviceHandler.RegisterDevice)
		devices.DELETE("/:id", r.deviceHandler.RemoveDevice)
	}

	// External scheduler trigger
	internal := e.Group("/internal")
	internal.Use(r.oidcMiddleware.Verify)
	{
		internal.POST("/tick", r.tickHandler.Tick)
	}
}
