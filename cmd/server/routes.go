package main

import (
	"aarohan/handlers"
	"aarohan/middleware"

	"github.com/labstack/echo/v4"
)

// registerRoutes mounts every page and form endpoint of the app
func registerRoutes(e *echo.Echo) {
	// Static files
	e.Static("/static", "static")

	// Public pages
	e.GET("/", handlers.LandingHandler)
	e.GET("/sitemap.xml", handlers.GetSitemapHandler)
	e.GET("/robots.txt", handlers.GetRobotsHandler)

	// Auth
	e.GET("/auth", handlers.AuthPageHandler)
	e.POST("/auth", handlers.AuthPostHandler, middleware.AuthRateLimiter.Middleware())
	e.POST("/logout", handlers.LogoutHandler)

	// Cases
	e.GET("/pending-cases", handlers.PendingCasesHandler)
	e.GET("/pending-cases/export", handlers.ExportCasesHandler)
	e.POST("/cases/:id/join", handlers.JoinHearingHandler)
	e.GET("/enter-case", handlers.EnterCaseHandler)
	e.POST("/enter-case", handlers.EnterCasePostHandler, middleware.PublicFormRateLimiter.Middleware())

	// Courtroom (state lives in the visitor's container)
	e.GET("/courtroom", handlers.CourtroomIndexHandler)
	e.GET("/courtroom/", handlers.CourtroomIndexHandler)
	court := e.Group("/courtroom/:caseId")
	{
		court.GET("", handlers.CourtroomHandler)
		court.POST("/messages", handlers.SendMessageHandler)
		court.POST("/documents", handlers.UploadDocumentHandler, middleware.CourtroomUploadRateLimiter.Middleware())
		court.GET("/documents/:docID", handlers.DocumentHandler)
		court.POST("/camera", handlers.CameraHandler)
		court.POST("/microphone", handlers.MicrophoneHandler)
		court.POST("/capture", handlers.CaptureHandler)
		court.POST("/participants", handlers.AddParticipantHandler)
		court.POST("/participants/:pid/remove", handlers.RemoveParticipantHandler)
		court.POST("/leave", handlers.LeaveCourtroomHandler)
	}
}
