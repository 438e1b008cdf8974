package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"amply/internal/intake/feedback"
	"amply/internal/intake/models"
	"amply/internal/intake/service"
	"amply/internal/platform/config"
	"amply/internal/platform/metrics"
	"amply/internal/platform/middleware"
	dErrors "amply/pkg/domain-errors"
	"amply/pkg/platform/httputil"
	"amply/pkg/requestcontext"
)

// Service defines the intake operations the transport needs.
type Service interface {
	Submit(ctx context.Context, draft models.Draft, fb service.Feedback) (models.SubmissionOutcome, error)
	FieldChanged(ctx context.Context, field string, value any, fb service.Feedback) (models.ValidationResult, bool)
	List(ctx context.Context) ([]models.Entry, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Entry, error)
}

// Handler serves the intake form's feedback channel over JSON.
type Handler struct {
	logger       *slog.Logger
	intake       Service
	metrics      *metrics.Metrics
	reference    config.Reference
	maxBodyBytes int64
}

// New creates a new intake Handler. maxBodyBytes bounds request bodies.
func New(intake Service, reference config.Reference, logger *slog.Logger, m *metrics.Metrics, maxBodyBytes int64) *Handler {
	return &Handler{
		logger:       logger,
		intake:       intake,
		metrics:      m,
		reference:    reference,
		maxBodyBytes: maxBodyBytes,
	}
}

// Register registers the intake routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	intakeRouter := chi.NewRouter()
	intakeRouter.Use(middleware.Recovery(h.logger))
	intakeRouter.Use(middleware.RequestID)
	intakeRouter.Use(middleware.ClientMetadata)
	intakeRouter.Use(middleware.RequestTime)
	intakeRouter.Use(middleware.Logger(h.logger))
	intakeRouter.Use(middleware.ContentTypeJSON)
	intakeRouter.Use(middleware.Latency(h.metrics))

	intakeRouter.Post("/entities", h.handleSubmit)
	intakeRouter.Post("/entities/fields/{field}", h.handleFieldChanged)
	intakeRouter.Get("/entities", h.handleList)
	intakeRouter.Get("/entities/{id}", h.handleGet)
	intakeRouter.Get("/reference", h.handleReference)

	r.Mount("/", intakeRouter)
}

// handleSubmit runs one submission attempt. Accepted drafts answer 201,
// rejected ones 422; both carry the full evaluation and what the form shows.
func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	draft, err := h.decodeDraft(w, r)
	if err != nil {
		h.logger.WarnContext(ctx, "invalid submit request",
			"request_id", requestID,
			"error", err.Error(),
		)
		httputil.WriteError(w, err)
		return
	}

	panel := feedback.NewPanel()
	outcome, err := h.intake.Submit(ctx, draft, panel)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to submit entity",
			"request_id", requestID,
			"error", err.Error(),
		)
		httputil.WriteError(w, err)
		return
	}

	status := http.StatusUnprocessableEntity
	if outcome.Accepted {
		status = http.StatusCreated
	}
	httputil.WriteJSON(w, status, toSubmitResponse(outcome, panel.Snapshot()))
}

func (h *Handler) handleFieldChanged(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	field, ok := models.ParseFieldName(chi.URLParam(r, "field"))
	if !ok {
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "unknown field"))
		return
	}

	req, err := h.decodeFieldChange(w, r)
	if err != nil {
		h.logger.WarnContext(ctx, "invalid field change request",
			"request_id", requestID,
			"field", string(field),
			"error", err.Error(),
		)
		httputil.WriteError(w, err)
		return
	}

	panel := feedback.NewPanel()
	result, immediate := h.intake.FieldChanged(ctx, string(field), req.Value, panel)

	resp := fieldChangeResponse{
		Field:     field,
		Immediate: immediate,
		Feedback:  panel.Snapshot(),
	}
	if immediate {
		resp.Result = &result
	}
	httputil.WriteJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	entries, err := h.intake.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list entries",
			"request_id", requestcontext.RequestID(ctx),
			"error", err.Error(),
		)
		httputil.WriteError(w, err)
		return
	}
	if entries == nil {
		entries = []models.Entry{}
	}
	httputil.WriteJSON(w, http.StatusOK, listResponse{Entries: entries, Count: len(entries)})
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid entry id"))
		return
	}

	entry, err := h.intake.Get(ctx, id)
	if err != nil {
		if !dErrors.HasCode(err, dErrors.CodeNotFound) {
			h.logger.ErrorContext(ctx, "failed to load entry",
				"request_id", requestcontext.RequestID(ctx),
				"error", err.Error(),
			)
		}
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, entry)
}

func (h *Handler) handleReference(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, referenceResponse{
		Countries:  h.reference.Countries,
		RiskLevels: h.reference.RiskLevels,
		MinYear:    h.reference.MinYear,
	})
}
