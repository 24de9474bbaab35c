package api

import (
	"errors"
	"net/http"

	"polls-api/internal/domain/poll"
	"polls-api/internal/platform/apperr"
)

func errorResponse(w http.ResponseWriter, r *http.Request, err error) {
	appErr := mapError(err)
	if appErr.StatusCode() >= http.StatusInternalServerError {
		slogLogger.Error("request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
	}
	writeJSON(w, appErr.StatusCode(), appErr.Body())
}

func mapError(err error) *apperr.AppError {
	if err == nil {
		return apperr.Internal("internal_error", "Internal server error", nil)
	}

	switch {
	case errors.Is(err, poll.ErrPollNotFound):
		return apperr.NotFound("poll_not_found", "Poll not found", err)
	case errors.Is(err, poll.ErrQuestionRequired):
		return apperr.BadRequest("invalid_question", "Question is required", err)
	case errors.Is(err, poll.ErrTooFewOptions):
		return apperr.BadRequest("invalid_options", "At least 2 non-empty options are required", err)
	case errors.Is(err, poll.ErrInvalidOption):
		return apperr.BadRequest("invalid_option", "Invalid option index", err)
	case errors.Is(err, poll.ErrVoterRequired):
		return apperr.BadRequest("invalid_voter", "Voter identity is required", err)
	case errors.Is(err, poll.ErrPollClosed):
		return apperr.BadRequest("poll_closed", "Poll is closed", err)
	case errors.Is(err, poll.ErrAlreadyClosed):
		return apperr.BadRequest("poll_already_closed", "Poll is already closed", err)
	case errors.Is(err, poll.ErrAlreadyVoted):
		return apperr.BadRequest("already_voted", "You have already voted in this poll", err)
	default:
		return apperr.FromError(err)
	}
}

// voteOutcome labels a vote attempt for metrics.
func voteOutcome(err error) string {
	switch {
	case err == nil:
		return "accepted"
	case errors.Is(err, poll.ErrAlreadyVoted):
		return "duplicate"
	case errors.Is(err, poll.ErrPollClosed):
		return "closed"
	case errors.Is(err, poll.ErrPollNotFound):
		return "not_found"
	case errors.Is(err, poll.ErrInvalidOption), errors.Is(err, poll.ErrVoterRequired):
		return "invalid"
	default:
		return "error"
	}
}
