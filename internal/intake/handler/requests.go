package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"amply/internal/intake/models"
	dErrors "amply/pkg/domain-errors"
)

// fieldChangeRequest carries one raw value. A missing "value" key decodes to
// nil and is validated as a missing value.
type fieldChangeRequest struct {
	Value any `json:"value"`
}

// decodeDraft reads the body as a single JSON object. Values keep their JSON
// types, so a number sent for risk stays a number and is rejected as such.
func (h *Handler) decodeDraft(w http.ResponseWriter, r *http.Request) (models.Draft, error) {
	var raw any
	if err := h.decode(w, r, &raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, dErrors.New(dErrors.CodeBadRequest, "request body must be a JSON object")
		}
		return nil, err
	}
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, dErrors.New(dErrors.CodeBadRequest, "request body must be a JSON object")
	}
	return models.Draft(obj), nil
}

// decodeFieldChange tolerates an empty body, which means "no value".
func (h *Handler) decodeFieldChange(w http.ResponseWriter, r *http.Request) (fieldChangeRequest, error) {
	var req fieldChangeRequest
	if err := h.decode(w, r, &req); err != nil && !errors.Is(err, io.EOF) {
		return fieldChangeRequest{}, err
	}
	return req, nil
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v any) error {
	if h.maxBodyBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	}
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return io.EOF
		}
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return dErrors.New(dErrors.CodeBadRequest, "request body too large")
		}
		return dErrors.Wrap(err, dErrors.CodeBadRequest, "invalid JSON body")
	}
	if dec.More() {
		return dErrors.New(dErrors.CodeBadRequest, "request body must contain a single JSON value")
	}
	return nil
}
