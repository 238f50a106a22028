package rest

import (
	"log/slog"
	"net/http"

	"github.com/DanielPopoola/laybuy-gateway/internal/api"
	"github.com/DanielPopoola/laybuy-gateway/internal/application"
	"github.com/DanielPopoola/laybuy-gateway/internal/domain"
)

// BuildErrorResponse maps an error to its HTTP status and error envelope.
// Internal failures get a fixed message so store or driver details never reach the client.
func BuildErrorResponse(err error) (int, api.ErrorResponse) {
	statusCode := application.ToHTTPStatus(err)
	errorCode := application.ToErrorCode(err)

	message := err.Error()
	if errorCode == application.ErrCodeInternal || errorCode == domain.ErrCodeInternal {
		message = "An internal error occurred"
	}

	return statusCode, api.ErrorResponse{
		Success: false,
		Error: api.ErrorDetail{
			Code:    errorCode,
			Message: message,
		},
	}
}

// WriteError maps application errors to HTTP responses
func WriteError(w http.ResponseWriter, err error, logger *slog.Logger) {
	statusCode, response := BuildErrorResponse(err)

	if statusCode >= http.StatusInternalServerError {
		logger.Error("request failed",
			"status", statusCode,
			"code", response.Error.Code,
			"error", err,
		)
	}

	respondWithJSON(w, statusCode, response, logger)
}

// ParamErrorHandler reports parameter binding failures as INVALID_INPUT.
func ParamErrorHandler(logger *slog.Logger) func(w http.ResponseWriter, r *http.Request, err error) {
	return func(w http.ResponseWriter, r *http.Request, err error) {
		WriteError(w, domain.NewInvalidInputError(err.Error()), logger)
	}
}
