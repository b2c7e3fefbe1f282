// Package handler exposes the local coverage service over HTTP. Callers are
// authenticated and authorized upstream.
package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"beacon/internal/local/models"
	id "beacon/pkg/domain"
	dErrors "beacon/pkg/domain-errors"
	"beacon/pkg/platform/httputil"
	"beacon/pkg/requestcontext"
)

// Service is the subset of the local coverage service the handler calls.
type Service interface {
	GetProjectScorecard(ctx context.Context, projectID id.ProjectID) (*models.Scorecard, error)
	GetCachedProjectScorecard(ctx context.Context, projectID id.ProjectID) (*models.Scorecard, error)
	GenerateGaps(sc *models.Scorecard) []models.Gap
	BuildLocalIssuesForProject(ctx context.Context, projectID id.ProjectID, target models.IssueTarget) ([]models.Issue, error)
	BuildLocalIssuesForProjectReadOnly(ctx context.Context, projectID id.ProjectID, target models.IssueTarget) ([]models.Issue, error)
	AddSignal(ctx context.Context, req *models.AddSignalRequest) (*models.LocalSignal, error)
	UpdateProjectLocalConfig(ctx context.Context, projectID id.ProjectID, patch *models.LocalConfigPatch) (*models.LocalConfig, error)
	InvalidateCoverage(ctx context.Context, projectID id.ProjectID) error
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Handler{service: service, logger: logger}
}

// Register mounts the local coverage routes on r.
func (h *Handler) Register(r chi.Router) {
	r.Route("/projects/{projectID}/local", func(r chi.Router) {
		r.Get("/scorecard", h.handleGetScorecard)
		r.Get("/gaps", h.handleGetGaps)
		r.Get("/issues", h.handleGetIssues)
		r.Post("/signals", h.handleAddSignal)
		r.Patch("/config", h.handleUpdateConfig)
		r.Delete("/coverage", h.handleInvalidateCoverage)
	})
}

func (h *Handler) handleGetScorecard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	projectID, ok := h.projectID(w, r)
	if !ok {
		return
	}
	cachedOnly, err := queryBool(r, "cached")
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}

	var sc *models.Scorecard
	if cachedOnly {
		sc, err = h.service.GetCachedProjectScorecard(ctx, projectID)
		if err == nil && sc == nil {
			err = dErrors.New(dErrors.CodeNotFound, "no cached scorecard for project")
		}
	} else {
		sc, err = h.service.GetProjectScorecard(ctx, projectID)
	}
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromScorecard(sc))
}

func (h *Handler) handleGetGaps(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	projectID, ok := h.projectID(w, r)
	if !ok {
		return
	}
	sc, err := h.service.GetProjectScorecard(ctx, projectID)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, &GapsResponse{
		ProjectID:           projectID.String(),
		ApplicabilityStatus: string(sc.ApplicabilityStatus),
		Gaps:                h.service.GenerateGaps(sc),
	})
}

func (h *Handler) handleGetIssues(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	projectID, ok := h.projectID(w, r)
	if !ok {
		return
	}
	readOnly, err := queryBool(r, "readonly")
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	target, err := issueTarget(r)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}

	var issues []models.Issue
	if readOnly {
		issues, err = h.service.BuildLocalIssuesForProjectReadOnly(ctx, projectID, target)
	} else {
		issues, err = h.service.BuildLocalIssuesForProject(ctx, projectID, target)
	}
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, &IssuesResponse{
		ProjectID: projectID.String(),
		ReadOnly:  readOnly,
		Issues:    issues,
	})
}

func (h *Handler) handleAddSignal(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	projectID, ok := h.projectID(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeJSON[AddSignalRequest](w, r)
	if !ok {
		return
	}
	signal, err := h.service.AddSignal(ctx, req.toModel(projectID))
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, signal)
}

func (h *Handler) handleUpdateConfig(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	projectID, ok := h.projectID(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeJSON[UpdateConfigRequest](w, r)
	if !ok {
		return
	}
	cfg, err := h.service.UpdateProjectLocalConfig(ctx, projectID, req.toPatch())
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, cfg)
}

func (h *Handler) handleInvalidateCoverage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	projectID, ok := h.projectID(w, r)
	if !ok {
		return
	}
	if err := h.service.InvalidateCoverage(ctx, projectID); err != nil {
		h.writeError(ctx, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) projectID(w http.ResponseWriter, r *http.Request) (id.ProjectID, bool) {
	projectID, err := id.ParseProjectID(chi.URLParam(r, "projectID"))
	if err != nil {
		httputil.WriteError(w, err)
		return "", false
	}
	return projectID, true
}

func (h *Handler) writeError(ctx context.Context, w http.ResponseWriter, err error) {
	if httputil.StatusFromCode(dErrors.CodeOf(err)) >= http.StatusInternalServerError {
		h.logger.ErrorContext(ctx, "local coverage request failed",
			"request_id", requestcontext.RequestID(ctx),
			"error", err)
	} else {
		h.logger.WarnContext(ctx, "local coverage request rejected",
			"request_id", requestcontext.RequestID(ctx),
			"error", err)
	}
	httputil.WriteError(w, err)
}

func queryBool(r *http.Request, key string) (bool, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, dErrors.New(dErrors.CodeBadRequest, key+" must be a boolean")
	}
	return v, nil
}

func issueTarget(r *http.Request) (models.IssueTarget, error) {
	q := r.URL.Query()
	target := models.IssueTarget{
		FocusKey:  q.Get("focus_key"),
		DraftType: q.Get("draft_type"),
	}
	if raw := q.Get("product_id"); raw != "" {
		productID, err := id.ParseProductID(raw)
		if err != nil {
			return target, err
		}
		target.ProductID = &productID
	}
	return target, nil
}
