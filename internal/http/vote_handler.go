package api

import (
	"net/http"
	"strings"
	"time"

	"polls-api/internal/domain/poll"
	"polls-api/internal/metrics"
	"polls-api/internal/platform/apperr"
	"polls-api/internal/worker"
)

// voteRequest is decoded strictly: a fractional or quoted optionIndex fails
// to decode, and a missing one stays nil.
type voteRequest struct {
	OptionIndex *int    `json:"optionIndex"`
	VoterID     *string `json:"voterId,omitempty"`
}

type voteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	PollID  string `json:"pollId"`
	Option  string `json:"option"`
}

type pollResultsResponse struct {
	Success bool `json:"success"`
	poll.Results
}

// @Summary     Vote for an option
// @Description voterId is optional; the client address is used when it is absent.
// @Tags        votes
// @Accept      json
// @Produce     json
// @Param       pollId   path      string       true  "Poll ID"
// @Param       request  body      voteRequest  true  "Vote payload"
// @Success     200      {object}  voteResponse
// @Failure     400      {object}  map[string]any  "invalid option, closed poll or already voted"
// @Failure     404      {object}  map[string]any  "not found"
// @Failure     500      {object}  map[string]any  "server error"
// @Router      /api/polls/{pollId}/vote [post]
func (h *Handler) handleVote(w http.ResponseWriter, r *http.Request) {
	pollID := pollIDParam(r)

	var req voteRequest
	if err := decodeJSON(w, r, &req); err != nil {
		errorResponse(w, r, apperr.BadRequest("invalid_input", "optionIndex must be an integer", err))
		return
	}
	if req.OptionIndex == nil {
		errorResponse(w, r, apperr.BadRequest("invalid_input", "optionIndex is required", nil))
		return
	}

	voterID := clientIP(r)
	if req.VoterID != nil && strings.TrimSpace(*req.VoterID) != "" {
		voterID = *req.VoterID
	}

	receipt, err := h.pollSvc.Vote(r.Context(), pollID, *req.OptionIndex, voterID)
	metrics.IncVote(voteOutcome(err))
	if err != nil {
		errorResponse(w, r, err)
		return
	}

	select {
	case h.voteCh <- worker.VoteEvent{PollID: pollID, OptionIndex: *req.OptionIndex, At: time.Now()}:
	default:
	}

	writeJSON(w, http.StatusOK, voteResponse{
		Success: true,
		Message: "Vote recorded successfully",
		PollID:  receipt.PollID,
		Option:  receipt.Option,
	})
}

// @Summary     Poll results
// @Tags        polls
// @Produce     json
// @Param       pollId  path      string  true  "Poll ID"
// @Success     200     {object}  pollResultsResponse
// @Failure     404     {object}  map[string]any  "not found"
// @Failure     500     {object}  map[string]any  "server error"
// @Router      /api/polls/{pollId}/results [get]
func (h *Handler) handlePollResults(w http.ResponseWriter, r *http.Request) {
	res, err := h.pollSvc.Results(r.Context(), pollIDParam(r))
	if err != nil {
		errorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, pollResultsResponse{Success: true, Results: res})
}
