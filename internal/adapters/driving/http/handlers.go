package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"sync"

	"github.com/freezing-point/fp-core/internal/core/domain"
	"github.com/freezing-point/fp-core/internal/core/ports/driving"
)

// ErrorResponse represents an API error response
// @Description API error response
type ErrorResponse struct {
	Error string `json:"error" example:"invalid request body"`
}

// StatusResponse represents a simple status response
// @Description Simple status response
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}

// VersionResponse represents the API version response
// @Description API version response
type VersionResponse struct {
	Version string `json:"version" example:"1.0.0"`
}

// ComponentHealth is the health of one dependency
type ComponentHealth struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// HealthResponse aggregates component health
type HealthResponse struct {
	Status     string                     `json:"status"`
	Components map[string]ComponentHealth `json:"components"`
}

// Health endpoints

// handleHealth godoc
// @Summary      Health check
// @Description  Returns the health of the API and its backing stores. Always 200; degraded dependencies are reported per component.
// @Tags         Health
// @Produce      json
// @Success      200  {object}  HealthResponse
// @Router       /health [get]
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{
		Status: "healthy",
		Components: map[string]ComponentHealth{
			"server": {Status: "healthy"},
		},
	}

	if s.db != nil {
		if err := s.db.Ping(r.Context()); err != nil {
			resp.Status = "degraded"
			resp.Components["database"] = ComponentHealth{Status: "unhealthy", Error: err.Error()}
		} else {
			resp.Components["database"] = ComponentHealth{Status: "healthy"}
		}
	}

	if s.redisClient != nil {
		if err := s.redisClient.Ping(r.Context()); err != nil {
			resp.Status = "degraded"
			resp.Components["redis"] = ComponentHealth{Status: "unhealthy", Error: err.Error()}
		} else {
			resp.Components["redis"] = ComponentHealth{Status: "healthy"}
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

// handleReady godoc
// @Summary      Readiness check
// @Description  Returns 200 once the database connection is usable
// @Tags         Health
// @Produce      json
// @Success      200  {object}  StatusResponse
// @Failure      503  {object}  ErrorResponse  "Database unreachable"
// @Router       /ready [get]
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if s.db != nil {
		if err := s.db.Ping(r.Context()); err != nil {
			writeError(w, http.StatusServiceUnavailable, "database unreachable")
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

// handleVersion godoc
// @Summary      Get API version
// @Description  Returns the current API version
// @Tags         Health
// @Produce      json
// @Success      200  {object}  VersionResponse
// @Router       /version [get]
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"version": s.version})
}

// Auth endpoints

// handleLogin godoc
// @Summary      Admin login
// @Description  Authenticate with the shared admin password to receive a JWT token
// @Tags         Authentication
// @Accept       json
// @Produce      json
// @Param        request  body      domain.LoginRequest  true  "Admin password"
// @Success      200      {object}  domain.LoginResponse
// @Failure      400      {object}  ErrorResponse  "Invalid request body"
// @Failure      401      {object}  ErrorResponse  "Invalid credentials"
// @Failure      500      {object}  ErrorResponse  "Internal server error"
// @Router       /auth/login [post]
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := s.authService.Authenticate(r.Context(), req)
	if err != nil {
		switch err {
		case domain.ErrInvalidCredentials:
			writeError(w, http.StatusUnauthorized, "invalid credentials")
		case domain.ErrInvalidInput:
			writeError(w, http.StatusBadRequest, "password is required")
		default:
			writeError(w, http.StatusInternalServerError, "authentication failed")
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// handleLogout godoc
// @Summary      Logout
// @Description  Invalidate the current session token
// @Tags         Authentication
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  StatusResponse
// @Router       /auth/logout [post]
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	token := extractBearerToken(r)
	if token == "" {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		return
	}

	_ = s.authService.Logout(r.Context(), token)
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Public site endpoints

// HomeResponse carries the records for the landing page, one list per
// content kind. A kind whose fetch failed degrades to an empty list.
type HomeResponse struct {
	Research []*domain.ContentRecord `json:"research"`
	Signal   []*domain.ContentRecord `json:"signal"`
	Observer []*domain.ContentRecord `json:"observer"`
}

// handleHome godoc
// @Summary      Landing page records
// @Description  Fetches the latest records of every kind in parallel. A failed kind comes back empty rather than failing the page.
// @Tags         Content
// @Produce      json
// @Param        limit  query     int  false  "Max records per kind (default all)"
// @Success      200    {object}  HomeResponse
// @Router       /home [get]
func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	results := make(map[domain.Kind][]*domain.ContentRecord, 3)
	var mu sync.Mutex
	var wg sync.WaitGroup

	for _, kind := range domain.Kinds() {
		wg.Add(1)
		go func(kind domain.Kind) {
			defer wg.Done()

			var records []*domain.ContentRecord
			var err error
			if limit > 0 {
				records, err = s.contentService.ListLatest(r.Context(), kind, limit)
			} else {
				records, err = s.contentService.ListAll(r.Context(), kind)
			}
			if err != nil {
				records = []*domain.ContentRecord{}
			}

			mu.Lock()
			results[kind] = records
			mu.Unlock()
		}(kind)
	}
	wg.Wait()

	writeJSON(w, http.StatusOK, HomeResponse{
		Research: results[domain.KindResearch],
		Signal:   results[domain.KindSignal],
		Observer: results[domain.KindObserver],
	})
}

// handleListContent godoc
// @Summary      List content records
// @Description  Returns all records of one kind, newest first. An optional limit caps the result.
// @Tags         Content
// @Produce      json
// @Param        kind   path      string  true   "Content kind"  Enums(research, signal, observer)
// @Param        limit  query     int     false  "Max records"
// @Success      200    {array}   domain.ContentRecord
// @Failure      400    {object}  ErrorResponse  "Unknown content kind"
// @Failure      500    {object}  ErrorResponse  "Internal server error"
// @Router       /content/{kind} [get]
func (s *Server) handleListContent(w http.ResponseWriter, r *http.Request) {
	kind, ok := pathKind(w, r)
	if !ok {
		return
	}

	var records []*domain.ContentRecord
	var err error
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, convErr := strconv.Atoi(raw)
		if convErr != nil || limit <= 0 {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		records, err = s.contentService.ListLatest(r.Context(), kind, limit)
	} else {
		records, err = s.contentService.ListAll(r.Context(), kind)
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list content")
		return
	}

	writeJSON(w, http.StatusOK, records)
}

// handleGetContent godoc
// @Summary      Get content record
// @Description  Get one stored record by kind and id
// @Tags         Content
// @Produce      json
// @Param        kind  path      string  true  "Content kind"  Enums(research, signal, observer)
// @Param        id    path      string  true  "Record ID"
// @Success      200   {object}  domain.ContentRecord
// @Failure      400   {object}  ErrorResponse  "Unknown content kind"
// @Failure      404   {object}  ErrorResponse  "Record not found"
// @Failure      500   {object}  ErrorResponse  "Internal server error"
// @Router       /content/{kind}/{id} [get]
func (s *Server) handleGetContent(w http.ResponseWriter, r *http.Request) {
	kind, ok := pathKind(w, r)
	if !ok {
		return
	}
	id := r.PathValue("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing record id")
		return
	}

	record, err := s.contentService.Get(r.Context(), kind, id)
	if err != nil {
		switch err {
		case domain.ErrNotFound:
			writeError(w, http.StatusNotFound, "record not found")
		default:
			writeError(w, http.StatusInternalServerError, "failed to get record")
		}
		return
	}

	writeJSON(w, http.StatusOK, record)
}

// handleRenderContent godoc
// @Summary      Render content record
// @Description  Returns the display units for one record: badges resolved against the live taxonomy, body laid out per the record's template, styles from the typography settings.
// @Tags         Content
// @Produce      json
// @Param        kind  path      string  true  "Content kind"  Enums(research, signal, observer)
// @Param        id    path      string  true  "Record ID"
// @Success      200   {object}  domain.RenderedRecord
// @Failure      400   {object}  ErrorResponse  "Unknown content kind"
// @Failure      404   {object}  ErrorResponse  "Record not found"
// @Failure      500   {object}  ErrorResponse  "Internal server error"
// @Router       /content/{kind}/{id}/render [get]
func (s *Server) handleRenderContent(w http.ResponseWriter, r *http.Request) {
	kind, ok := pathKind(w, r)
	if !ok {
		return
	}
	id := r.PathValue("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing record id")
		return
	}

	rendered, err := s.renderService.Render(r.Context(), kind, id)
	if err != nil {
		switch err {
		case domain.ErrNotFound:
			writeError(w, http.StatusNotFound, "record not found")
		default:
			writeError(w, http.StatusInternalServerError, "failed to render record")
		}
		return
	}

	writeJSON(w, http.StatusOK, rendered)
}

// Content authoring endpoints

// handleCreateContent godoc
// @Summary      Create content record
// @Description  Create a new record. The template type is fixed at creation and cannot change later.
// @Tags         Content
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      driving.CreateContentRequest  true  "Record fields"
// @Success      201      {object}  domain.ContentRecord
// @Failure      400      {object}  ErrorResponse  "Invalid input"
// @Failure      401      {object}  ErrorResponse  "Unauthorized"
// @Failure      500      {object}  ErrorResponse  "Internal server error"
// @Router       /content [post]
func (s *Server) handleCreateContent(w http.ResponseWriter, r *http.Request) {
	var req driving.CreateContentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	record, err := s.contentService.Create(r.Context(), req)
	if err != nil {
		switch err {
		case domain.ErrInvalidKind:
			writeError(w, http.StatusBadRequest, "unknown content kind")
		case domain.ErrInvalidTemplate:
			writeError(w, http.StatusBadRequest, "unknown template type")
		case domain.ErrInvalidInput:
			writeError(w, http.StatusBadRequest, "invalid input")
		default:
			writeError(w, http.StatusInternalServerError, "failed to create record")
		}
		return
	}

	writeJSON(w, http.StatusCreated, record)
}

// handleUpdateContent godoc
// @Summary      Update content record
// @Description  Merge partial edits into an existing record. Omitted fields are untouched; the template type is immutable.
// @Tags         Content
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        kind     path      string                        true  "Content kind"  Enums(research, signal, observer)
// @Param        id       path      string                        true  "Record ID"
// @Param        request  body      driving.UpdateContentRequest  true  "Fields to change"
// @Success      200      {object}  domain.ContentRecord
// @Failure      400      {object}  ErrorResponse  "Invalid input"
// @Failure      401      {object}  ErrorResponse  "Unauthorized"
// @Failure      404      {object}  ErrorResponse  "Record not found"
// @Failure      500      {object}  ErrorResponse  "Internal server error"
// @Router       /content/{kind}/{id} [put]
func (s *Server) handleUpdateContent(w http.ResponseWriter, r *http.Request) {
	kind, ok := pathKind(w, r)
	if !ok {
		return
	}
	id := r.PathValue("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing record id")
		return
	}

	var req driving.UpdateContentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	record, err := s.contentService.Update(r.Context(), kind, id, req)
	if err != nil {
		switch err {
		case domain.ErrNotFound:
			writeError(w, http.StatusNotFound, "record not found")
		case domain.ErrInvalidInput:
			writeError(w, http.StatusBadRequest, "invalid input")
		default:
			writeError(w, http.StatusInternalServerError, "failed to update record")
		}
		return
	}

	writeJSON(w, http.StatusOK, record)
}

// handleDeleteContent godoc
// @Summary      Delete content record
// @Description  Delete a record and best-effort remove its uploaded assets. Asset cleanup failures are reported in the response, never as a delete failure.
// @Tags         Content
// @Produce      json
// @Security     BearerAuth
// @Param        kind  path      string  true  "Content kind"  Enums(research, signal, observer)
// @Param        id    path      string  true  "Record ID"
// @Success      200   {object}  driving.DeleteContentResponse
// @Failure      400   {object}  ErrorResponse  "Unknown content kind"
// @Failure      401   {object}  ErrorResponse  "Unauthorized"
// @Failure      404   {object}  ErrorResponse  "Record not found"
// @Failure      500   {object}  ErrorResponse  "Internal server error"
// @Router       /content/{kind}/{id} [delete]
func (s *Server) handleDeleteContent(w http.ResponseWriter, r *http.Request) {
	kind, ok := pathKind(w, r)
	if !ok {
		return
	}
	id := r.PathValue("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing record id")
		return
	}

	resp, err := s.contentService.Delete(r.Context(), kind, id)
	if err != nil {
		switch err {
		case domain.ErrNotFound:
			writeError(w, http.StatusNotFound, "record not found")
		default:
			writeError(w, http.StatusInternalServerError, "failed to delete record")
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// validateBlocksRequest carries a block list for advisory validation
type validateBlocksRequest struct {
	Blocks domain.BlockList `json:"blocks"`
}

// validateBlocksResponse lists the problems found; an empty list means clean
type validateBlocksResponse struct {
	Problems []string `json:"problems"`
}

// handleValidateBlocks godoc
// @Summary      Validate blocks
// @Description  Runs the advisory block checks the editor surfaces before save. Problems never block submission.
// @Tags         Content
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      validateBlocksRequest  true  "Blocks to check"
// @Success      200      {object}  validateBlocksResponse
// @Failure      400      {object}  ErrorResponse  "Invalid request body"
// @Router       /content/validate-blocks [post]
func (s *Server) handleValidateBlocks(w http.ResponseWriter, r *http.Request) {
	var req validateBlocksRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	problems := s.contentService.ValidateBlocks(req.Blocks)
	if problems == nil {
		problems = []string{}
	}

	writeJSON(w, http.StatusOK, validateBlocksResponse{Problems: problems})
}

// handlePreview godoc
// @Summary      Preview a record
// @Description  Renders an unsaved record against the live taxonomy and typography, for the authoring preview pane
// @Tags         Content
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      domain.ContentRecord  true  "Record to render"
// @Success      200      {object}  domain.RenderedRecord
// @Failure      400      {object}  ErrorResponse  "Invalid request body"
// @Failure      500      {object}  ErrorResponse  "Internal server error"
// @Router       /render/preview [post]
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	var record domain.ContentRecord
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	taxonomy, err := s.taxonomyService.Load(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load taxonomy")
		return
	}
	typography, err := s.typographyService.Get(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load typography")
		return
	}

	writeJSON(w, http.StatusOK, s.renderService.RenderRecord(&record, taxonomy, typography))
}

// Taxonomy endpoints

// handleListTags godoc
// @Summary      List tags
// @Tags         Taxonomy
// @Produce      json
// @Success      200  {array}   domain.Tag
// @Failure      500  {object}  ErrorResponse  "Internal server error"
// @Router       /tags [get]
func (s *Server) handleListTags(w http.ResponseWriter, r *http.Request) {
	tags, err := s.taxonomyService.ListTags(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list tags")
		return
	}
	writeJSON(w, http.StatusOK, tags)
}

// handleCreateTag godoc
// @Summary      Create tag
// @Tags         Taxonomy
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      driving.CreateTagRequest  true  "Tag fields"
// @Success      201      {object}  domain.Tag
// @Failure      400      {object}  ErrorResponse  "Name and color are required"
// @Failure      401      {object}  ErrorResponse  "Unauthorized"
// @Failure      500      {object}  ErrorResponse  "Internal server error"
// @Router       /tags [post]
func (s *Server) handleCreateTag(w http.ResponseWriter, r *http.Request) {
	var req driving.CreateTagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	tag, err := s.taxonomyService.CreateTag(r.Context(), req)
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			writeError(w, http.StatusBadRequest, "name and color are required")
		default:
			writeError(w, http.StatusInternalServerError, "failed to create tag")
		}
		return
	}

	writeJSON(w, http.StatusCreated, tag)
}

// handleUpdateTag godoc
// @Summary      Update tag
// @Tags         Taxonomy
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string                    true  "Tag ID"
// @Param        request  body      driving.UpdateTagRequest  true  "Fields to change"
// @Success      200      {object}  domain.Tag
// @Failure      400      {object}  ErrorResponse  "Invalid input"
// @Failure      401      {object}  ErrorResponse  "Unauthorized"
// @Failure      404      {object}  ErrorResponse  "Tag not found"
// @Failure      500      {object}  ErrorResponse  "Internal server error"
// @Router       /tags/{id} [put]
func (s *Server) handleUpdateTag(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing tag id")
		return
	}

	var req driving.UpdateTagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	tag, err := s.taxonomyService.UpdateTag(r.Context(), id, req)
	if err != nil {
		switch err {
		case domain.ErrNotFound:
			writeError(w, http.StatusNotFound, "tag not found")
		case domain.ErrInvalidInput:
			writeError(w, http.StatusBadRequest, "invalid input")
		default:
			writeError(w, http.StatusInternalServerError, "failed to update tag")
		}
		return
	}

	writeJSON(w, http.StatusOK, tag)
}

// handleDeleteTag godoc
// @Summary      Delete tag
// @Description  Delete a tag. Content records referencing it keep the dangling id; the renderer simply omits the badge.
// @Tags         Taxonomy
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Tag ID"
// @Success      200  {object}  StatusResponse
// @Failure      400  {object}  ErrorResponse  "Missing tag ID"
// @Failure      401  {object}  ErrorResponse  "Unauthorized"
// @Failure      404  {object}  ErrorResponse  "Tag not found"
// @Failure      500  {object}  ErrorResponse  "Internal server error"
// @Router       /tags/{id} [delete]
func (s *Server) handleDeleteTag(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing tag id")
		return
	}

	if err := s.taxonomyService.DeleteTag(r.Context(), id); err != nil {
		switch err {
		case domain.ErrNotFound:
			writeError(w, http.StatusNotFound, "tag not found")
		default:
			writeError(w, http.StatusInternalServerError, "failed to delete tag")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// handleListDomains godoc
// @Summary      List domains
// @Tags         Taxonomy
// @Produce      json
// @Success      200  {array}   domain.Domain
// @Failure      500  {object}  ErrorResponse  "Internal server error"
// @Router       /domains [get]
func (s *Server) handleListDomains(w http.ResponseWriter, r *http.Request) {
	domains, err := s.taxonomyService.ListDomains(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list domains")
		return
	}
	writeJSON(w, http.StatusOK, domains)
}

// handleCreateDomain godoc
// @Summary      Create domain
// @Tags         Taxonomy
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      driving.CreateDomainRequest  true  "Domain fields"
// @Success      201      {object}  domain.Domain
// @Failure      400      {object}  ErrorResponse  "Name is required"
// @Failure      401      {object}  ErrorResponse  "Unauthorized"
// @Failure      500      {object}  ErrorResponse  "Internal server error"
// @Router       /domains [post]
func (s *Server) handleCreateDomain(w http.ResponseWriter, r *http.Request) {
	var req driving.CreateDomainRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	d, err := s.taxonomyService.CreateDomain(r.Context(), req)
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			writeError(w, http.StatusBadRequest, "name is required")
		default:
			writeError(w, http.StatusInternalServerError, "failed to create domain")
		}
		return
	}

	writeJSON(w, http.StatusCreated, d)
}

// handleUpdateDomain godoc
// @Summary      Update domain
// @Tags         Taxonomy
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string                       true  "Domain ID"
// @Param        request  body      driving.UpdateDomainRequest  true  "Fields to change"
// @Success      200      {object}  domain.Domain
// @Failure      400      {object}  ErrorResponse  "Invalid input"
// @Failure      401      {object}  ErrorResponse  "Unauthorized"
// @Failure      404      {object}  ErrorResponse  "Domain not found"
// @Failure      500      {object}  ErrorResponse  "Internal server error"
// @Router       /domains/{id} [put]
func (s *Server) handleUpdateDomain(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing domain id")
		return
	}

	var req driving.UpdateDomainRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	d, err := s.taxonomyService.UpdateDomain(r.Context(), id, req)
	if err != nil {
		switch err {
		case domain.ErrNotFound:
			writeError(w, http.StatusNotFound, "domain not found")
		case domain.ErrInvalidInput:
			writeError(w, http.StatusBadRequest, "invalid input")
		default:
			writeError(w, http.StatusInternalServerError, "failed to update domain")
		}
		return
	}

	writeJSON(w, http.StatusOK, d)
}

// handleDeleteDomain godoc
// @Summary      Delete domain
// @Description  Delete a domain. Content records referencing it keep the dangling id; the renderer simply omits the badge.
// @Tags         Taxonomy
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Domain ID"
// @Success      200  {object}  StatusResponse
// @Failure      400  {object}  ErrorResponse  "Missing domain ID"
// @Failure      401  {object}  ErrorResponse  "Unauthorized"
// @Failure      404  {object}  ErrorResponse  "Domain not found"
// @Failure      500  {object}  ErrorResponse  "Internal server error"
// @Router       /domains/{id} [delete]
func (s *Server) handleDeleteDomain(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing domain id")
		return
	}

	if err := s.taxonomyService.DeleteDomain(r.Context(), id); err != nil {
		switch err {
		case domain.ErrNotFound:
			writeError(w, http.StatusNotFound, "domain not found")
		default:
			writeError(w, http.StatusInternalServerError, "failed to delete domain")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// Typography endpoints

// handleGetTypography godoc
// @Summary      Get typography settings
// @Description  Returns the active typography settings, falling back to the built-in defaults when nothing has been saved
// @Tags         Typography
// @Produce      json
// @Success      200  {object}  domain.TypographySettings
// @Failure      500  {object}  ErrorResponse  "Internal server error"
// @Router       /typography [get]
func (s *Server) handleGetTypography(w http.ResponseWriter, r *http.Request) {
	settings, err := s.typographyService.Get(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to get typography")
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

// handleUpdateTypography godoc
// @Summary      Update typography settings
// @Description  Replaces individual styles; omitted styles keep their current values. The change applies to subsequent renders without a restart.
// @Tags         Typography
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      driving.UpdateTypographyRequest  true  "Styles to replace"
// @Success      200      {object}  domain.TypographySettings
// @Failure      400      {object}  ErrorResponse  "Invalid request body"
// @Failure      401      {object}  ErrorResponse  "Unauthorized"
// @Failure      500      {object}  ErrorResponse  "Internal server error"
// @Router       /typography [put]
func (s *Server) handleUpdateTypography(w http.ResponseWriter, r *http.Request) {
	var req driving.UpdateTypographyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	settings, err := s.typographyService.Update(r.Context(), req)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to update typography")
		return
	}

	writeJSON(w, http.StatusOK, settings)
}

// Upload endpoint

const maxUploadBytes = 32 << 20

// handleUpload godoc
// @Summary      Upload asset
// @Description  Uploads a file to the external asset service and returns its durable URL. Multipart form with a "file" part and an optional "folder" field.
// @Tags         Assets
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file    formData  file    true   "File to upload"
// @Param        folder  formData  string  false  "Destination folder hint"
// @Success      201     {object}  driving.UploadResponse
// @Failure      400     {object}  ErrorResponse  "Missing file"
// @Failure      401     {object}  ErrorResponse  "Unauthorized"
// @Failure      422     {object}  ErrorResponse  "Upload rejected by the asset service"
// @Failure      502     {object}  ErrorResponse  "Asset service unreachable"
// @Router       /uploads [post]
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	resp, err := s.assetService.Upload(r.Context(), &domain.AssetUpload{
		FileName:    header.Filename,
		ContentType: contentType,
		Folder:      r.FormValue("folder"),
		Body:        file,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUploadRejected):
			writeError(w, http.StatusUnprocessableEntity, "upload rejected")
		case errors.Is(err, domain.ErrServiceUnavailable):
			writeError(w, http.StatusBadGateway, "asset service unavailable")
		default:
			writeError(w, http.StatusInternalServerError, "upload failed")
		}
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// Helpers

// pathKind parses the {kind} path segment, writing a 400 on failure
func pathKind(w http.ResponseWriter, r *http.Request) (domain.Kind, bool) {
	kind := domain.Kind(r.PathValue("kind"))
	if !kind.IsValid() {
		writeError(w, http.StatusBadRequest, "unknown content kind")
		return "", false
	}
	return kind, true
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
