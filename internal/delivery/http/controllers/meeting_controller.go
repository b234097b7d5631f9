package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	h "meetingplanner/internal/delivery/http/helpers"
	"meetingplanner/internal/delivery/http/middleware"
	"meetingplanner/internal/domain"
)

// MeetingRequest is the request body for creating and updating meetings.
type MeetingRequest struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	MaxParticipants int    `json:"max_participants"`
}

// Validate implements Validator.
func (m MeetingRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(m.Title) == "" {
		errs = append(errs, "title is required")
	}
	if m.MaxParticipants <= 0 {
		errs = append(errs, "max_participants must be greater than 0")
	}
	return errs
}

type MeetingController struct {
	Logger  *slog.Logger
	Service domain.MeetingService
}

func NewMeetingController(logger *slog.Logger, svc domain.MeetingService) *MeetingController {
	return &MeetingController{
		Logger:  logger,
		Service: svc,
	}
}

// userID reads the authenticated user from the request context. Routes are
// wrapped with RequireUser, so the value is always present here.
func userID(r *http.Request) string {
	id, _ := middleware.UserIDFromContext(r.Context())
	return id
}

// Create godoc
// @Summary Create a meeting
// @Description Create a meeting owned by the caller. max_participants bounds the meeting and every schedule under it.
// @Tags meetings
// @Accept json
// @Produce json
// @Param body body MeetingRequest true "Meeting data"
// @Success 201 {object} helpers.APIResponse "data contains the created meeting"
// @Failure 400 {object} helpers.APIResponse "code: BAD_REQUEST"
// @Failure 401 {object} helpers.APIResponse "code: NOT_FOUND_TOKEN"
// @Failure 500 {object} helpers.APIResponse "code: INTERNAL_SERVER_ERROR"
// @Security BearerAuth
// @Router /meetings [post]
func (c *MeetingController) Create(w http.ResponseWriter, r *http.Request) {
	var req MeetingRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	meeting, err := c.Service.Create(r.Context(), req.Title, req.Description, req.MaxParticipants, userID(r))
	if err != nil {
		h.WriteDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, meeting)
}

// List godoc
// @Summary List meetings
// @Description All meetings, newest first.
// @Tags meetings
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains the meetings"
// @Failure 401 {object} helpers.APIResponse "code: NOT_FOUND_TOKEN"
// @Failure 500 {object} helpers.APIResponse "code: INTERNAL_SERVER_ERROR"
// @Security BearerAuth
// @Router /meetings [get]
func (c *MeetingController) List(w http.ResponseWriter, r *http.Request) {
	meetings, err := c.Service.List(r.Context())
	if err != nil {
		h.WriteDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, meetings)
}

// Update godoc
// @Summary Update a meeting
// @Description Owner-only. max_participants may not drop below the current participant count.
// @Tags meetings
// @Accept json
// @Produce json
// @Param meetingID path string true "Meeting ID"
// @Param body body MeetingRequest true "Meeting data"
// @Success 200 {object} helpers.APIResponse "data contains the updated meeting"
// @Failure 400 {object} helpers.APIResponse "code: BAD_REQUEST"
// @Failure 403 {object} helpers.APIResponse "code: PERMISSION_DENIED"
// @Failure 404 {object} helpers.APIResponse "code: NOT_FOUND"
// @Failure 500 {object} helpers.APIResponse "code: INTERNAL_SERVER_ERROR"
// @Security BearerAuth
// @Router /meetings/{meetingID} [put]
func (c *MeetingController) Update(w http.ResponseWriter, r *http.Request) {
	var req MeetingRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	meeting, err := c.Service.Update(r.Context(), r.PathValue("meetingID"), userID(r), req.Title, req.Description, req.MaxParticipants)
	if err != nil {
		h.WriteDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, meeting)
}

// Delete godoc
// @Summary Delete a meeting
// @Description Owner-only. Schedules and participant rows under the meeting are removed with it.
// @Tags meetings
// @Produce json
// @Param meetingID path string true "Meeting ID"
// @Success 200 {object} helpers.APIResponse
// @Failure 403 {object} helpers.APIResponse "code: PERMISSION_DENIED"
// @Failure 404 {object} helpers.APIResponse "code: NOT_FOUND"
// @Failure 500 {object} helpers.APIResponse "code: INTERNAL_SERVER_ERROR"
// @Security BearerAuth
// @Router /meetings/{meetingID} [delete]
func (c *MeetingController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.Delete(r.Context(), r.PathValue("meetingID"), userID(r)); err != nil {
		h.WriteDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, nil)
}

// Join godoc
// @Summary Join a meeting
// @Description Adds the caller as an ATTENDING participant. Owners join with the OWNER role. Fails when already joined or the meeting is full.
// @Tags meetings
// @Produce json
// @Param meetingID path string true "Meeting ID"
// @Success 201 {object} helpers.APIResponse "data contains the participant row"
// @Failure 400 {object} helpers.APIResponse "code: CONFLICT"
// @Failure 404 {object} helpers.APIResponse "code: NOT_FOUND"
// @Failure 500 {object} helpers.APIResponse "code: INTERNAL_SERVER_ERROR"
// @Security BearerAuth
// @Router /meetings/{meetingID}/join [post]
func (c *MeetingController) Join(w http.ResponseWriter, r *http.Request) {
	participant, err := c.Service.Join(r.Context(), r.PathValue("meetingID"), userID(r))
	if err != nil {
		h.WriteDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, participant)
}

// Leave godoc
// @Summary Leave a meeting
// @Description Removes the caller's own participant row.
// @Tags meetings
// @Produce json
// @Param meetingID path string true "Meeting ID"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse "code: NOT_FOUND"
// @Failure 500 {object} helpers.APIResponse "code: INTERNAL_SERVER_ERROR"
// @Security BearerAuth
// @Router /meetings/{meetingID}/leave [delete]
func (c *MeetingController) Leave(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.Leave(r.Context(), r.PathValue("meetingID"), userID(r)); err != nil {
		h.WriteDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, nil)
}

// Participants godoc
// @Summary List meeting participants
// @Tags meetings
// @Produce json
// @Param meetingID path string true "Meeting ID"
// @Success 200 {object} helpers.APIResponse "data contains the participants"
// @Failure 404 {object} helpers.APIResponse "code: NOT_FOUND"
// @Failure 500 {object} helpers.APIResponse "code: INTERNAL_SERVER_ERROR"
// @Security BearerAuth
// @Router /meetings/{meetingID}/participants [get]
func (c *MeetingController) Participants(w http.ResponseWriter, r *http.Request) {
	participants, err := c.Service.Participants(r.Context(), r.PathValue("meetingID"))
	if err != nil {
		h.WriteDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, participants)
}
