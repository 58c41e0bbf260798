// Package rest exposes the content service over HTTP. The management surface
// lives under /v1; serving lives under /api with the same URL scheme the
// documents themselves embed.
package rest

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/critfumble/content-api/internal/entities/content"
	"github.com/critfumble/content-api/internal/errors"
	contentsvc "github.com/critfumble/content-api/internal/services/content"
)

// HandlerConfig holds dependencies for the REST handler
type HandlerConfig struct {
	ContentService contentsvc.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.ContentService == nil {
		vb.RequiredField("ContentService")
	}

	return vb.Build()
}

// Handler routes HTTP requests to the content service
type Handler struct {
	service contentsvc.Service
}

// NewHandler creates a new REST handler
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{service: cfg.ContentService}, nil
}

// Routes returns the full route tree
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Route("/v1", func(r chi.Router) {
		r.Post("/generate/{contentType}", h.GenerateItem)

		r.Route("/packs", func(r chi.Router) {
			r.Post("/", h.CreatePack)
			r.Get("/", h.ListPacks)
			r.Get("/{packID}", h.GetPack)
			r.Delete("/{packID}", h.DeletePack)
			r.Post("/{packID}/activate", h.ActivatePack)
			r.Post("/{packID}/deactivate", h.DeactivatePack)
			r.Post("/{packID}/items/{contentType}", h.UploadItems)
		})
	})

	// Serving routes mirror the url field embedded in every document
	r.Route("/api", func(r chi.Router) {
		r.Get("/{contentType}", h.ListItems)
		r.Get("/{contentType}/{index}", h.GetItem)
	})

	return r
}

func contentTypeParam(r *http.Request) (content.Type, error) {
	raw := chi.URLParam(r, "contentType")
	t, ok := content.ParseType(raw)
	if !ok {
		return "", errors.InvalidArgumentf("unknown content type: %s", raw)
	}
	return t, nil
}

// GenerateItem serializes one form-field record. The response is a
// single-element array so the body can be saved directly as an uploadable
// item file.
func (h *Handler) GenerateItem(w http.ResponseWriter, r *http.Request) {
	t, err := contentTypeParam(r)
	if err != nil {
		errors.Render(w, r, err)
		return
	}

	var fields content.Fields
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		errors.Render(w, r, errors.InvalidArgument("request body must be a JSON object of form fields"))
		return
	}

	output, err := h.service.GenerateItem(r.Context(), &contentsvc.GenerateItemInput{
		ContentType: t,
		Fields:      fields,
	})
	if err != nil {
		errors.Render(w, r, err)
		return
	}

	render.JSON(w, r, []content.Document{output.Document})
}

// CreatePackRequest is the request body for creating a pack
type CreatePackRequest struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// CreatePack creates a new, inactive pack
func (h *Handler) CreatePack(w http.ResponseWriter, r *http.Request) {
	var req CreatePackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errors.Render(w, r, errors.InvalidArgument("invalid request body"))
		return
	}

	output, err := h.service.CreatePack(r.Context(), &contentsvc.CreatePackInput{
		Name:    req.Name,
		Version: req.Version,
	})
	if err != nil {
		errors.Render(w, r, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, output.Pack)
}

// ListPacks lists packs, newest first. ?active=true restricts to activated packs.
func (h *Handler) ListPacks(w http.ResponseWriter, r *http.Request) {
	output, err := h.service.ListPacks(r.Context(), &contentsvc.ListPacksInput{
		ActiveOnly: r.URL.Query().Get("active") == "true",
	})
	if err != nil {
		errors.Render(w, r, err)
		return
	}

	render.JSON(w, r, output.Packs)
}

// GetPack retrieves one pack's metadata
func (h *Handler) GetPack(w http.ResponseWriter, r *http.Request) {
	output, err := h.service.GetPack(r.Context(), &contentsvc.GetPackInput{
		PackID: chi.URLParam(r, "packID"),
	})
	if err != nil {
		errors.Render(w, r, err)
		return
	}

	render.JSON(w, r, output.Pack)
}

// DeletePack removes a pack and its items
func (h *Handler) DeletePack(w http.ResponseWriter, r *http.Request) {
	_, err := h.service.DeletePack(r.Context(), &contentsvc.DeletePackInput{
		PackID: chi.URLParam(r, "packID"),
	})
	if err != nil {
		errors.Render(w, r, err)
		return
	}

	render.NoContent(w, r)
}

// ActivatePack starts serving a pack's items
func (h *Handler) ActivatePack(w http.ResponseWriter, r *http.Request) {
	h.setActive(w, r, true)
}

// DeactivatePack stops serving a pack's items without deleting them
func (h *Handler) DeactivatePack(w http.ResponseWriter, r *http.Request) {
	h.setActive(w, r, false)
}

func (h *Handler) setActive(w http.ResponseWriter, r *http.Request, active bool) {
	output, err := h.service.SetPackActive(r.Context(), &contentsvc.SetPackActiveInput{
		PackID: chi.URLParam(r, "packID"),
		Active: active,
	})
	if err != nil {
		errors.Render(w, r, err)
		return
	}

	render.JSON(w, r, output.Pack)
}

// UploadItemsResponse is the response body for a bulk upload
type UploadItemsResponse struct {
	Results  []contentsvc.ItemResult `json:"results"`
	Accepted int                     `json:"accepted"`
	Rejected int                     `json:"rejected"`
}

// UploadItems bulk-uploads documents of one content type into a pack. The
// response reports per-item outcomes; a partial upload is a 200.
func (h *Handler) UploadItems(w http.ResponseWriter, r *http.Request) {
	t, err := contentTypeParam(r)
	if err != nil {
		errors.Render(w, r, err)
		return
	}

	var docs []content.Document
	if err := json.NewDecoder(r.Body).Decode(&docs); err != nil {
		errors.Render(w, r, errors.InvalidArgument("request body must be a JSON array of documents"))
		return
	}

	output, err := h.service.UploadItems(r.Context(), &contentsvc.UploadItemsInput{
		PackID:      chi.URLParam(r, "packID"),
		ContentType: t,
		Documents:   docs,
	})
	if err != nil {
		errors.Render(w, r, err)
		return
	}

	render.JSON(w, r, UploadItemsResponse{
		Results:  output.Results,
		Accepted: output.Accepted,
		Rejected: output.Rejected,
	})
}

// ListItems serves every document of one type from the activated packs
func (h *Handler) ListItems(w http.ResponseWriter, r *http.Request) {
	t, err := contentTypeParam(r)
	if err != nil {
		errors.Render(w, r, err)
		return
	}

	output, err := h.service.ListItems(r.Context(), &contentsvc.ListItemsInput{ContentType: t})
	if err != nil {
		errors.Render(w, r, err)
		return
	}

	render.JSON(w, r, output.Items)
}

// GetItem serves one document by its index slug
func (h *Handler) GetItem(w http.ResponseWriter, r *http.Request) {
	t, err := contentTypeParam(r)
	if err != nil {
		errors.Render(w, r, err)
		return
	}

	output, err := h.service.GetItem(r.Context(), &contentsvc.GetItemInput{
		ContentType: t,
		Index:       chi.URLParam(r, "index"),
	})
	if err != nil {
		errors.Render(w, r, err)
		return
	}

	render.JSON(w, r, output.Item)
}
