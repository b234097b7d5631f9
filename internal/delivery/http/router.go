package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"meetingplanner/internal/delivery/http/controllers"
	"meetingplanner/internal/delivery/http/middleware"
)

// NewRouter initializes the HTTP router with all application routes. Handlers
// behind RequireUser expect the Authenticate middleware to run first.
func NewRouter(
	authController *controllers.AuthController,
	meetingController *controllers.MeetingController,
	scheduleController *controllers.ScheduleController,
) *http.ServeMux {
	mux := http.NewServeMux()
	auth := middleware.RequireUser

	// Auth
	mux.HandleFunc("POST /api/auth/register", authController.Register)
	mux.HandleFunc("POST /api/auth/login", authController.Login)
	mux.HandleFunc("POST /api/auth/logout", auth(authController.Logout))
	mux.HandleFunc("POST /api/auth/refresh", authController.Refresh)

	// Users
	mux.HandleFunc("GET /api/users", auth(authController.ListUsers))
	mux.HandleFunc("GET /api/users/{userID}", auth(authController.GetUser))

	// Meetings
	mux.HandleFunc("POST /api/meetings", auth(meetingController.Create))
	mux.HandleFunc("GET /api/meetings", auth(meetingController.List))
	mux.HandleFunc("PUT /api/meetings/{meetingID}", auth(meetingController.Update))
	mux.HandleFunc("DELETE /api/meetings/{meetingID}", auth(meetingController.Delete))
	mux.HandleFunc("POST /api/meetings/{meetingID}/join", auth(meetingController.Join))
	mux.HandleFunc("DELETE /api/meetings/{meetingID}/leave", auth(meetingController.Leave))
	mux.HandleFunc("GET /api/meetings/{meetingID}/participants", auth(meetingController.Participants))

	// Schedules
	mux.HandleFunc("POST /api/meetings/{meetingID}/schedules", auth(scheduleController.Create))
	mux.HandleFunc("GET /api/meetings/{meetingID}/schedules", auth(scheduleController.List))
	mux.HandleFunc("PUT /api/meetings/{meetingID}/schedules/{scheduleID}", auth(scheduleController.Update))
	mux.HandleFunc("DELETE /api/meetings/{meetingID}/schedules/{scheduleID}", auth(scheduleController.Delete))
	mux.HandleFunc("POST /api/meetings/{meetingID}/schedules/{scheduleID}/join", auth(scheduleController.Join))
	mux.HandleFunc("DELETE /api/meetings/{meetingID}/schedules/{scheduleID}/leave", auth(scheduleController.Leave))
	mux.HandleFunc("GET /api/meetings/{meetingID}/schedules/{scheduleID}/participants", auth(scheduleController.Participants))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
