package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	h "meetingplanner/internal/delivery/http/helpers"
	"meetingplanner/internal/domain"
)

// ScheduleRequest is the request body for creating and updating schedules.
type ScheduleRequest struct {
	Title    string `json:"title"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Location string `json:"location"`
}

// Validate implements Validator.
func (s ScheduleRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(s.Title) == "" {
		errs = append(errs, "title is required")
	}
	if strings.TrimSpace(s.Date) == "" {
		errs = append(errs, "date is required")
	}
	if strings.TrimSpace(s.Time) == "" {
		errs = append(errs, "time is required")
	}
	if strings.TrimSpace(s.Location) == "" {
		errs = append(errs, "location is required")
	}
	return errs
}

type ScheduleController struct {
	Logger  *slog.Logger
	Service domain.ScheduleService
}

func NewScheduleController(logger *slog.Logger, svc domain.ScheduleService) *ScheduleController {
	return &ScheduleController{
		Logger:  logger,
		Service: svc,
	}
}

// Create godoc
// @Summary Create a schedule under a meeting
// @Tags schedules
// @Accept json
// @Produce json
// @Param meetingID path string true "Meeting ID"
// @Param body body ScheduleRequest true "Schedule data"
// @Success 201 {object} helpers.APIResponse "data contains the created schedule"
// @Failure 400 {object} helpers.APIResponse "code: BAD_REQUEST"
// @Failure 404 {object} helpers.APIResponse "code: NOT_FOUND"
// @Failure 500 {object} helpers.APIResponse "code: INTERNAL_SERVER_ERROR"
// @Security BearerAuth
// @Router /meetings/{meetingID}/schedules [post]
func (c *ScheduleController) Create(w http.ResponseWriter, r *http.Request) {
	var req ScheduleRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	schedule, err := c.Service.Create(r.Context(), r.PathValue("meetingID"), userID(r), req.Title, req.Date, req.Time, req.Location)
	if err != nil {
		h.WriteDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, schedule)
}

// List godoc
// @Summary List schedules under a meeting
// @Tags schedules
// @Produce json
// @Param meetingID path string true "Meeting ID"
// @Success 200 {object} helpers.APIResponse "data contains the schedules"
// @Failure 404 {object} helpers.APIResponse "code: NOT_FOUND"
// @Failure 500 {object} helpers.APIResponse "code: INTERNAL_SERVER_ERROR"
// @Security BearerAuth
// @Router /meetings/{meetingID}/schedules [get]
func (c *ScheduleController) List(w http.ResponseWriter, r *http.Request) {
	schedules, err := c.Service.ListByMeeting(r.Context(), r.PathValue("meetingID"))
	if err != nil {
		h.WriteDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, schedules)
}

// Update godoc
// @Summary Update a schedule
// @Description Owner-only. The schedule must belong to the meeting in the path.
// @Tags schedules
// @Accept json
// @Produce json
// @Param meetingID path string true "Meeting ID"
// @Param scheduleID path string true "Schedule ID"
// @Param body body ScheduleRequest true "Schedule data"
// @Success 200 {object} helpers.APIResponse "data contains the updated schedule"
// @Failure 400 {object} helpers.APIResponse "code: BAD_REQUEST"
// @Failure 403 {object} helpers.APIResponse "code: PERMISSION_DENIED"
// @Failure 404 {object} helpers.APIResponse "code: NOT_FOUND"
// @Failure 500 {object} helpers.APIResponse "code: INTERNAL_SERVER_ERROR"
// @Security BearerAuth
// @Router /meetings/{meetingID}/schedules/{scheduleID} [put]
func (c *ScheduleController) Update(w http.ResponseWriter, r *http.Request) {
	var req ScheduleRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	schedule, err := c.Service.Update(r.Context(), r.PathValue("meetingID"), r.PathValue("scheduleID"), userID(r), req.Title, req.Date, req.Time, req.Location)
	if err != nil {
		h.WriteDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, schedule)
}

// Delete godoc
// @Summary Delete a schedule
// @Description Owner-only. Participant rows under the schedule are removed with it.
// @Tags schedules
// @Produce json
// @Param meetingID path string true "Meeting ID"
// @Param scheduleID path string true "Schedule ID"
// @Success 200 {object} helpers.APIResponse
// @Failure 403 {object} helpers.APIResponse "code: PERMISSION_DENIED"
// @Failure 404 {object} helpers.APIResponse "code: NOT_FOUND"
// @Failure 500 {object} helpers.APIResponse "code: INTERNAL_SERVER_ERROR"
// @Security BearerAuth
// @Router /meetings/{meetingID}/schedules/{scheduleID} [delete]
func (c *ScheduleController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.Delete(r.Context(), r.PathValue("meetingID"), r.PathValue("scheduleID"), userID(r)); err != nil {
		h.WriteDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, nil)
}

// Join godoc
// @Summary Join a schedule
// @Description Requires an existing membership in the parent meeting. Bounded by the meeting's max_participants.
// @Tags schedules
// @Produce json
// @Param meetingID path string true "Meeting ID"
// @Param scheduleID path string true "Schedule ID"
// @Success 201 {object} helpers.APIResponse "data contains the participant row"
// @Failure 400 {object} helpers.APIResponse "code: CONFLICT"
// @Failure 403 {object} helpers.APIResponse "code: PERMISSION_DENIED"
// @Failure 404 {object} helpers.APIResponse "code: NOT_FOUND"
// @Failure 500 {object} helpers.APIResponse "code: INTERNAL_SERVER_ERROR"
// @Security BearerAuth
// @Router /meetings/{meetingID}/schedules/{scheduleID}/join [post]
func (c *ScheduleController) Join(w http.ResponseWriter, r *http.Request) {
	participant, err := c.Service.Join(r.Context(), r.PathValue("meetingID"), r.PathValue("scheduleID"), userID(r))
	if err != nil {
		h.WriteDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, participant)
}

// Leave godoc
// @Summary Leave a schedule
// @Tags schedules
// @Produce json
// @Param meetingID path string true "Meeting ID"
// @Param scheduleID path string true "Schedule ID"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse "code: NOT_FOUND"
// @Failure 500 {object} helpers.APIResponse "code: INTERNAL_SERVER_ERROR"
// @Security BearerAuth
// @Router /meetings/{meetingID}/schedules/{scheduleID}/leave [delete]
func (c *ScheduleController) Leave(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.Leave(r.Context(), r.PathValue("meetingID"), r.PathValue("scheduleID"), userID(r)); err != nil {
		h.WriteDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, nil)
}

// Participants godoc
// @Summary List schedule participants
// @Tags schedules
// @Produce json
// @Param meetingID path string true "Meeting ID"
// @Param scheduleID path string true "Schedule ID"
// @Success 200 {object} helpers.APIResponse "data contains the participants"
// @Failure 404 {object} helpers.APIResponse "code: NOT_FOUND"
// @Failure 500 {object} helpers.APIResponse "code: INTERNAL_SERVER_ERROR"
// @Security BearerAuth
// @Router /meetings/{meetingID}/schedules/{scheduleID}/participants [get]
func (c *ScheduleController) Participants(w http.ResponseWriter, r *http.Request) {
	participants, err := c.Service.Participants(r.Context(), r.PathValue("meetingID"), r.PathValue("scheduleID"))
	if err != nil {
		h.WriteDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, participants)
}
