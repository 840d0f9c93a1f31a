package api

import (
	"encoding/json"
	"net/http"
)

type APIError struct {
	Status int
	Err    Error
}

// Handler is an endpoint that returns a data payload or an APIError;
// Wrap turns it into the uniform {ok, data, error} envelope.
type Handler func(r *http.Request) (any, *APIError)

func Wrap(h Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, apiErr := h(r)
		if apiErr != nil {
			writeEnvelope(w, apiErr.Status, Response{OK: false, Error: &apiErr.Err})
			return
		}
		writeEnvelope(w, http.StatusOK, Response{OK: true, Data: data})
	}
}

func WrapMethod(method string, h Handler) http.HandlerFunc {
	return Wrap(func(r *http.Request) (any, *APIError) {
		if r.Method != method {
			return nil, &APIError{
				Status: http.StatusMethodNotAllowed,
				Err:    Error{Code: "method_not_allowed", Message: "method not allowed"},
			}
		}
		return h(r)
	})
}

func ValidationError(details map[string]string) *APIError {
	return &APIError{
		Status: http.StatusBadRequest,
		Err: Error{
			Code:    "validation_error",
			Message: "invalid request",
			Details: details,
		},
	}
}

func writeEnvelope(w http.ResponseWriter, status int, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}
