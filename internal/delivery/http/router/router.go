// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"cafemeetup/internal/delivery/http/middleware"
	"cafemeetup/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler       *handler.UserHandler
	MeetupHandler     *handler.MeetupHandler
	AttendanceHandler *handler.AttendanceHandler
	MessageHandler    *handler.MessageHandler
	RatingHandler     *handler.RatingHandler
	BlackBookHandler  *handler.BlackBookHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler       *handler.UserHandler
	meetupHandler     *handler.MeetupHandler
	attendanceHandler *handler.AttendanceHandler
	messageHandler    *handler.MessageHandler
	ratingHandler     *handler.RatingHandler
	blackBookHandler  *handler.BlackBookHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:       params.UserHandler,
		meetupHandler:     params.MeetupHandler,
		attendanceHandler: params.AttendanceHandler,
		messageHandler:    params.MessageHandler,
		ratingHandler:     params.RatingHandler,
		blackBookHandler:  params.BlackBookHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
		authGroup.POST("/refresh", r.userHandler.Refresh)
		authGroup.POST("/logout", r.userHandler.Logout)
	}

	// Profile routes that require authentication
	userGroup := e.Group("/user")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/profile", r.userHandler.GetProfile)
		userGroup.PATCH("/profile", r.userHandler.UpdateProfile)
		userGroup.POST("/profile/photo", r.userHandler.UploadPhoto)
	}

	// Lifecycle routes
	meetupGroup := e.Group("/meetup")
	meetupGroup.Use(r.authMiddleware.Authenticate)
	{
		meetupGroup.GET("/state", r.meetupHandler.GetState)
		meetupGroup.POST("/choose", r.meetupHandler.BecomeChooser)
		meetupGroup.POST("/be-chosen", r.meetupHandler.BecomeChosen)
		meetupGroup.POST("/withdraw", r.meetupHandler.BackToDefault)
		meetupGroup.GET("/candidates", r.meetupHandler.ListCandidates)
		meetupGroup.POST("/candidates/select", r.meetupHandler.SelectCandidate)
		meetupGroup.POST("/matches/:matchID/respond", r.meetupHandler.RespondToMatch)
		meetupGroup.POST("/matches/:matchID/proposals", r.meetupHandler.ProposeDates)
		meetupGroup.POST("/proposals/:proposalID/select", r.meetupHandler.SelectDateOption)
		meetupGroup.POST("/proposals/:proposalID/confirm", r.meetupHandler.ConfirmDate)
		meetupGroup.POST("/close", r.meetupHandler.CloseMeetup)
		meetupGroup.GET("/history", r.meetupHandler.History)
	}

	// Attendance routes
	attendanceGroup := e.Group("/attendance")
	attendanceGroup.Use(r.authMiddleware.Authenticate)
	{
		attendanceGroup.POST("/:proposalID/start", r.attendanceHandler.StartAttendance)
		attendanceGroup.GET("/:proposalID", r.attendanceHandler.GetMyAttendance)
		attendanceGroup.GET("/:proposalID/qr", r.attendanceHandler.AttendanceQR)
		attendanceGroup.POST("/:proposalID/verify", r.attendanceHandler.VerifyCode)
	}

	// Inbox routes
	messageGroup := e.Group("/messages")
	messageGroup.Use(r.authMiddleware.Authenticate)
	{
		messageGroup.GET("", r.messageHandler.Inbox)
		messageGroup.GET("/unread", r.messageHandler.UnreadCount)
		messageGroup.POST("/:messageID/read", r.messageHandler.MarkRead)
	}

	// Rating routes
	ratingGroup := e.Group("/ratings")
	ratingGroup.Use(r.authMiddleware.Authenticate)
	{
		ratingGroup.POST("/:proposalID", r.ratingHandler.RateDate)
		ratingGroup.GET("/summary", r.ratingHandler.Summary)
		ratingGroup.GET("/received", r.ratingHandler.Received)
	}

	// Black book routes
	blackBookGroup := e.Group("/black-book")
	blackBookGroup.Use(r.authMiddleware.Authenticate)
	{
		blackBookGroup.PUT("/notes", r.blackBookHandler.UpsertNote)
		blackBookGroup.GET("/notes", r.blackBookHandler.ListNotes)
		blackBookGroup.DELETE("/notes/:subjectID", r.blackBookHandler.DeleteNote)
	}
}
