package router

import (
	"workzup_backend/internal/api/comm"
	"workzup_backend/internal/api/handlers"
	"workzup_backend/pkg/middlewares"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
)

// RegisterRoutes wire every endpoint onto the fiber app
// @title Workzup API
// @version 1.0
// @description API documentation for the Workzup job marketplace
// @host localhost:8080
// @BasePath /
func RegisterRoutes(app *fiber.App,
	memberHandler *handlers.MemberHandler,
	chatHandler *handlers.ChatHandler,
	jobHandler *handlers.JobHandler,
	recruiterHandler *handlers.RecruiterHandler,
	uploadHandler *handlers.UploadHandler,
) {
	app.Get("/swagger/*", swagger.HandlerDefault)
	app.Get("/health", comm.ConnectCheck)
	app.Post("/debug", comm.DebugLogFlag)

	memberRoutes := app.Group("/member")
	memberRoutes.Post("/register", memberHandler.Register)
	memberRoutes.Post("/login", memberHandler.Login)
	memberRoutes.Get("/find", memberHandler.FindByEmail)

	memberRoutes.Use(middlewares.JWTMiddleware())
	memberRoutes.Post("/logout", memberHandler.Logout)

	convRoutes := app.Group("/conversations", middlewares.JWTMiddleware())
	convRoutes.Get("/", chatHandler.ListConversations)
	convRoutes.Post("/", chatHandler.CreateConversation)
	convRoutes.Get("/:id", chatHandler.GetConversation)
	convRoutes.Post("/:id/archive", chatHandler.ArchiveConversation)
	convRoutes.Post("/:id/pin", chatHandler.PinConversation)
	convRoutes.Get("/:id/messages", chatHandler.GetMessages)
	convRoutes.Post("/:id/messages", chatHandler.SendMessage)
	convRoutes.Put("/:id/messages/:messageId", chatHandler.EditMessage)
	convRoutes.Delete("/:id/messages/:messageId", chatHandler.DeleteMessage)
	convRoutes.Post("/:id/messages/:messageId/read", chatHandler.MarkMessageAsRead)
	convRoutes.Post("/:id/read", chatHandler.MarkAllMessagesAsRead)
	convRoutes.Post("/:id/typing", chatHandler.SetTypingStatus)
	convRoutes.Get("/:id/typing", chatHandler.GetTypingUsers)

	app.Get("/messages/search", middlewares.JWTMiddleware(), chatHandler.SearchMessages)

	jobRoutes := app.Group("/jobs")
	jobRoutes.Get("/", jobHandler.ListPublicJobs)
	jobRoutes.Get("/search", jobHandler.SearchJobs)
	jobRoutes.Use(middlewares.JWTMiddleware())
	jobRoutes.Post("/", jobHandler.CreateJob)
	jobRoutes.Get("/:id", jobHandler.GetJob)
	jobRoutes.Put("/:id", jobHandler.UpdateJob)
	jobRoutes.Post("/:id/publish", jobHandler.PublishJob)

	recruiterRoutes := app.Group("/recruiters")
	recruiterRoutes.Get("/:id", recruiterHandler.GetProfile)
	recruiterRoutes.Get("/:id/reviews", recruiterHandler.ListReviews)
	recruiterRoutes.Use(middlewares.JWTMiddleware())
	recruiterRoutes.Put("/profile", recruiterHandler.UpsertProfile)
	recruiterRoutes.Post("/:id/reviews", recruiterHandler.AddReview)

	uploadRoutes := app.Group("/uploads", middlewares.JWTMiddleware())
	uploadRoutes.Post("/", uploadHandler.UploadAttachment)
	uploadRoutes.Get("/:objectId/url", uploadHandler.AttachmentURL)
}
