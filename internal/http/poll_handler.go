package api

import (
	"net/http"

	"polls-api/internal/domain/poll"
	"polls-api/internal/platform/apperr"
)

type createPollRequest struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

type pollSummaryView struct {
	ID       string      `json:"id"`
	Question string      `json:"question"`
	Options  []string    `json:"options"`
	Status   poll.Status `json:"status"`
}

type createPollResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	PollID  string          `json:"pollId"`
	Poll    pollSummaryView `json:"poll"`
}

type getPollResponse struct {
	Success bool      `json:"success"`
	Poll    poll.View `json:"poll"`
}

type listPollsResponse struct {
	Success bool           `json:"success"`
	Count   int            `json:"count"`
	Polls   []poll.Summary `json:"polls"`
}

type closePollResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	PollID  string      `json:"pollId"`
	Status  poll.Status `json:"status"`
}

type deletePollResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	PollID  string `json:"pollId"`
}

// @Summary     Create a poll
// @Tags        polls
// @Accept      json
// @Produce     json
// @Param       request  body      createPollRequest   true  "Question and options"
// @Success     201      {object}  createPollResponse
// @Failure     400      {object}  map[string]any      "validation error"
// @Failure     500      {object}  map[string]any      "server error"
// @Router      /api/polls/create [post]
func (h *Handler) handleCreatePoll(w http.ResponseWriter, r *http.Request) {
	var req createPollRequest
	if err := decodeJSON(w, r, &req); err != nil {
		errorResponse(w, r, apperr.BadRequest("invalid_input", "Request body must be {question: string, options: string[]}", err))
		return
	}

	p, err := h.pollSvc.Create(r.Context(), req.Question, req.Options)
	if err != nil {
		errorResponse(w, r, err)
		return
	}

	slogLogger.Info("poll created", "poll_id", p.ID, "options", len(p.Options))

	writeJSON(w, http.StatusCreated, createPollResponse{
		Success: true,
		Message: "Poll created successfully",
		PollID:  p.ID,
		Poll: pollSummaryView{
			ID:       p.ID,
			Question: p.Question,
			Options:  p.Options,
			Status:   p.Status,
		},
	})
}

// @Summary     List polls
// @Tags        polls
// @Produce     json
// @Success     200  {object}  listPollsResponse
// @Failure     500  {object}  map[string]any  "server error"
// @Router      /api/polls [get]
func (h *Handler) handleListPolls(w http.ResponseWriter, r *http.Request) {
	polls, err := h.pollSvc.List(r.Context())
	if err != nil {
		errorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, listPollsResponse{
		Success: true,
		Count:   len(polls),
		Polls:   polls,
	})
}

// @Summary     Get a poll
// @Tags        polls
// @Produce     json
// @Param       pollId  path      string  true  "Poll ID"
// @Success     200     {object}  getPollResponse
// @Failure     404     {object}  map[string]any  "not found"
// @Router      /api/polls/{pollId} [get]
func (h *Handler) handleGetPoll(w http.ResponseWriter, r *http.Request) {
	p, err := h.pollSvc.Get(r.Context(), pollIDParam(r))
	if err != nil {
		errorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, getPollResponse{Success: true, Poll: p})
}

// @Summary     Close a poll
// @Tags        polls
// @Produce     json
// @Param       pollId  path      string  true  "Poll ID"
// @Success     200     {object}  closePollResponse
// @Failure     400     {object}  map[string]any  "already closed"
// @Failure     404     {object}  map[string]any  "not found"
// @Router      /api/polls/{pollId}/close [put]
func (h *Handler) handleClosePoll(w http.ResponseWriter, r *http.Request) {
	id := pollIDParam(r)
	if err := h.pollSvc.Close(r.Context(), id); err != nil {
		errorResponse(w, r, err)
		return
	}

	slogLogger.Info("poll closed", "poll_id", id)

	writeJSON(w, http.StatusOK, closePollResponse{
		Success: true,
		Message: "Poll closed successfully",
		PollID:  id,
		Status:  poll.StatusClosed,
	})
}

// @Summary     Delete a poll
// @Tags        polls
// @Produce     json
// @Param       pollId  path      string  true  "Poll ID"
// @Success     200     {object}  deletePollResponse
// @Failure     404     {object}  map[string]any  "not found"
// @Router      /api/polls/{pollId} [delete]
func (h *Handler) handleDeletePoll(w http.ResponseWriter, r *http.Request) {
	id := pollIDParam(r)
	if err := h.pollSvc.Delete(r.Context(), id); err != nil {
		errorResponse(w, r, err)
		return
	}

	slogLogger.Info("poll deleted", "poll_id", id)

	writeJSON(w, http.StatusOK, deletePollResponse{
		Success: true,
		Message: "Poll deleted successfully",
		PollID:  id,
	})
}
