package httpapi

import (
	"context"
	"errors"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/phl-league/internal/usecase"
)

const (
	apiVersion  = "2.0"
	errorDomain = "phl-league"

	dependencyUnavailableMessage = "league backend request failed"
	backendTimeoutMessage        = "league backend did not answer in time"
	internalErrorMessage         = "internal server error"
)

type envelope struct {
	APIVersion string     `json:"apiVersion"`
	Data       any        `json:"data,omitempty"`
	Error      *errorBody `json:"error,omitempty"`
}

type errorBody struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Status  string      `json:"status"`
	Errors  []errorItem `json:"errors,omitempty"`
}

type errorItem struct {
	Domain  string `json:"domain"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

// errorClass is one row of the league error catalog. A class with a fixed
// message never echoes the wrapped error text to the client.
type errorClass struct {
	target     error
	HTTPStatus int
	Reason     string
	Status     string
	message    string
}

var internalErrorClass = errorClass{
	HTTPStatus: http.StatusInternalServerError,
	Reason:     "internalError",
	Status:     "INTERNAL",
	message:    internalErrorMessage,
}

// Order matters: a backend failure caused by a deadline is still reported as
// the backend being unavailable.
var errorCatalog = []errorClass{
	{target: usecase.ErrInvalidInput, HTTPStatus: http.StatusBadRequest, Reason: "invalidLeagueInput", Status: "INVALID_ARGUMENT"},
	{target: usecase.ErrNotFound, HTTPStatus: http.StatusNotFound, Reason: "leagueRecordNotFound", Status: "NOT_FOUND"},
	{target: usecase.ErrUnauthorized, HTTPStatus: http.StatusUnauthorized, Reason: "adminTokenRejected", Status: "UNAUTHENTICATED"},
	{target: usecase.ErrDependencyUnavailable, HTTPStatus: http.StatusServiceUnavailable, Reason: "leagueBackendUnavailable", Status: "UNAVAILABLE", message: dependencyUnavailableMessage},
	{target: usecase.ErrSnapshotSuperseded, HTTPStatus: http.StatusConflict, Reason: "snapshotSuperseded", Status: "ABORTED"},
	{target: context.DeadlineExceeded, HTTPStatus: http.StatusGatewayTimeout, Reason: "leagueBackendTimeout", Status: "DEADLINE_EXCEEDED", message: backendTimeoutMessage},
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	_, span := startSpan(ctx, "httpapi.writeJSON")
	defer span.End()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = sonic.ConfigDefault.NewEncoder(w).Encode(payload)
}

func writeSuccess(ctx context.Context, w http.ResponseWriter, status int, data any) {
	ctx, span := startSpan(ctx, "httpapi.writeSuccess")
	defer span.End()

	writeJSON(ctx, w, status, envelope{APIVersion: apiVersion, Data: data})
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	ctx, span := startSpan(ctx, "httpapi.writeError")
	defer span.End()

	class := mapError(ctx, err)
	message := class.message
	if message == "" {
		message = err.Error()
	}
	writeClass(ctx, w, class, message)
}

func writeInternalError(ctx context.Context, w http.ResponseWriter) {
	writeClass(ctx, w, internalErrorClass, internalErrorMessage)
}

func writeClass(ctx context.Context, w http.ResponseWriter, class errorClass, message string) {
	writeJSON(ctx, w, class.HTTPStatus, envelope{
		APIVersion: apiVersion,
		Error: &errorBody{
			Code:    class.HTTPStatus,
			Message: message,
			Status:  class.Status,
			Errors:  []errorItem{{Domain: errorDomain, Reason: class.Reason, Message: message}},
		},
	})
}

func mapError(ctx context.Context, err error) errorClass {
	_, span := startSpan(ctx, "httpapi.mapError")
	defer span.End()

	for _, class := range errorCatalog {
		if errors.Is(err, class.target) {
			return class
		}
	}
	return internalErrorClass
}
