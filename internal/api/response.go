package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/DataDog/jsonapi"
	"go.uber.org/zap"

	"github.com/rpattn/dinaquery/internal/domain"
)

// JSONAPIMediaType is the JSON:API media type.
const JSONAPIMediaType = "application/vnd.api+json"

const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(payload)
}

// renderJSONAPI marshals before writing so a marshal failure leaves the
// response untouched.
func (h *Handler) renderJSONAPI(w http.ResponseWriter, status int, payload any, opts ...jsonapi.MarshalOption) {
	data, err := jsonapi.Marshal(payload, opts...)
	if err != nil {
		h.renderError(w, fmt.Errorf("failed to marshal response: %w", err))
		return
	}

	w.Header().Set("Content-Type", JSONAPIMediaType)
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

// renderError maps domain errors to HTTP status codes and writes a JSON:API
// error document.
func (h *Handler) renderError(w http.ResponseWriter, err error) {
	status, code, title := http.StatusInternalServerError, "internal_error", "Internal Server Error"
	switch {
	case errors.Is(err, domain.ErrInvalidArgument):
		status, code, title = http.StatusBadRequest, "invalid_argument", "Invalid Argument"
	case errors.Is(err, domain.ErrNotFound):
		status, code, title = http.StatusNotFound, "not_found", "Not Found"
	}

	detail := err.Error()
	if status == http.StatusInternalServerError {
		h.logger.Error("request failed", zap.Error(err))
		detail = "an unexpected error occurred"
	}

	renderErrors(w, status, []*jsonapi.Error{{
		Status: &status,
		Code:   code,
		Title:  title,
		Detail: detail,
	}})
}

func renderErrors(w http.ResponseWriter, status int, errs []*jsonapi.Error) {
	data, err := json.Marshal(map[string][]*jsonapi.Error{"errors": errs})
	if err != nil {
		http.Error(w, http.StatusText(status), status)
		return
	}
	w.Header().Set("Content-Type", JSONAPIMediaType)
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid request body: %v", domain.ErrInvalidArgument, err)
	}
	return nil
}
