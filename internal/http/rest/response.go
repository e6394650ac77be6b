package rest

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/civitrack/civitrack/util"
	"github.com/civitrack/civitrack/util/errs"
	"github.com/civitrack/civitrack/util/tracing"
	"github.com/civitrack/civitrack/util/values"
)

type ServerResponse struct {
	Message    string      `json:"message"`
	Status     string      `json:"status"`
	StatusCode int         `json:"-"`
	Data       interface{} `json:"data,omitempty"`
}

func respondWithError(err error, message, status string, tc *tracing.Context) *ServerResponse {
	if err != nil {
		requestID := ""
		if tc != nil {
			requestID = tc.RequestID
		}
		log.Printf("[%s]: %s: %v", requestID, message, err)
	}
	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
	}
}

// respondWithTypedError maps the error taxonomy onto response statuses so
// callers can tell bad input, a vanished entity, a benign no-op and a
// retryable store failure apart.
func respondWithTypedError(err error, fallback string, tc *tracing.Context) *ServerResponse {
	switch {
	case errs.IsValidation(err):
		return respondWithError(err, err.Error(), values.BadRequestBody, tc)
	case errs.IsNotFound(err):
		return respondWithError(err, err.Error(), values.NotFound, tc)
	case errs.IsNoWork(err):
		// Benign: nothing to do is not a failure.
		return &ServerResponse{
			Message:    err.Error(),
			Status:     values.NoWork,
			StatusCode: util.StatusCode(values.NoWork),
		}
	default:
		return respondWithError(err, fallback, values.Error, tc)
	}
}

func writeJSONResponse(w http.ResponseWriter, body []byte, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if _, err := w.Write(body); err != nil {
		log.Printf("unable to write response body: %v", err)
	}
}

func writeErrorResponse(w http.ResponseWriter, err error, status, message string) {
	if err != nil {
		log.Printf("%s: %v", message, err)
	}
	resp := ServerResponse{
		Message: message,
		Status:  status,
	}
	body, marshalErr := json.Marshal(resp)
	if marshalErr != nil {
		http.Error(w, message, http.StatusInternalServerError)
		return
	}
	writeJSONResponse(w, body, util.StatusCode(status))
}
