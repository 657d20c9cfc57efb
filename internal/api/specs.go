package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/specwave/spec-core/internal/spec"
)

// specID reassembles a spec identifier from the two URL segments.
func specID(r *http.Request) string {
	return chi.URLParam(r, "namespace") + "/" + chi.URLParam(r, "name")
}

// specList is the standard envelope for endpoints returning multiple specs.
func specList(specs []*spec.DeviceSpec) map[string]any {
	if specs == nil {
		specs = []*spec.DeviceSpec{}
	}
	return map[string]any{"specs": specs, "count": len(specs)}
}

// handleListSpecs returns all registered specs, with optional query filters.
//
// Query parameters:
//   - manufacturer: filter by manufacturer (case-insensitive)
//   - capability: filter by functional capability name
//   - command: filter by supported command
//   - software_capability: filter by core or extended capability flag
func (s *Server) handleListSpecs(w http.ResponseWriter, r *http.Request) {
	if manufacturer := r.URL.Query().Get("manufacturer"); manufacturer != "" {
		writeJSON(w, http.StatusOK, specList(s.query.ByManufacturer(manufacturer)))
		return
	}

	if capability := r.URL.Query().Get("capability"); capability != "" {
		writeJSON(w, http.StatusOK, specList(s.query.ByCapability(capability)))
		return
	}

	if command := r.URL.Query().Get("command"); command != "" {
		writeJSON(w, http.StatusOK, specList(s.query.ByCommand(command)))
		return
	}

	if swCap := r.URL.Query().Get("software_capability"); swCap != "" {
		writeJSON(w, http.StatusOK, specList(s.query.BySoftwareCapability(swCap)))
		return
	}

	writeJSON(w, http.StatusOK, specList(s.store.List()))
}

// handleGetSpec returns a single spec by its exact ID.
func (s *Server) handleGetSpec(w http.ResponseWriter, r *http.Request) {
	id := specID(r)

	sp, ok := s.store.Get(id)
	if !ok {
		writeNotFound(w, "spec not found: "+id)
		return
	}

	writeJSON(w, http.StatusOK, sp)
}

// handleSearchSpecs returns specs matching a free-text query over ID, name,
// manufacturer, and category.
func (s *Server) handleSearchSpecs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		writeBadRequest(w, "query parameter q is required")
		return
	}
	writeJSON(w, http.StatusOK, specList(s.query.Search(q)))
}

// handleStats returns aggregate registry statistics.
func (s *Server) handleStats(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.query.Stats())
}

// handleCategories returns every category with registered specs.
func (s *Server) handleCategories(w http.ResponseWriter, _ *http.Request) {
	categories := s.store.Categories()
	if categories == nil {
		categories = []string{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"categories": categories})
}

// handleManufacturers returns every distinct manufacturer.
func (s *Server) handleManufacturers(w http.ResponseWriter, _ *http.Request) {
	manufacturers := s.query.Manufacturers()
	if manufacturers == nil {
		manufacturers = []string{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"manufacturers": manufacturers})
}

// handleCompleteSpecs returns specs with all three implementations.
func (s *Server) handleCompleteSpecs(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, specList(s.query.Complete()))
}

// handleSpecsByCategory returns all specs in a category.
func (s *Server) handleSpecsByCategory(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	writeJSON(w, http.StatusOK, specList(s.store.GetByCategory(category)))
}

// handleSpecsByMode returns all specs classified into a deployment mode.
func (s *Server) handleSpecsByMode(w http.ResponseWriter, r *http.Request) {
	mode := spec.DeploymentMode(chi.URLParam(r, "mode"))
	if !spec.ValidDeploymentMode(mode) {
		writeBadRequest(w, "unknown deployment mode: "+string(mode))
		return
	}
	writeJSON(w, http.StatusOK, specList(s.query.ByDeploymentMode(mode)))
}

// handleResolve performs three-tier resolution: exact, then category
// generic, then a synthesized stub. It never fails.
//
// Query parameters:
//   - id: requested spec ID (required)
//   - category: category hint for generic fallback (optional)
func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		writeBadRequest(w, "query parameter id is required")
		return
	}
	category := r.URL.Query().Get("category")

	res := s.resolver.Resolve(id, category)
	writeJSON(w, http.StatusOK, map[string]any{
		"requested_id": res.RequestedID,
		"source":       res.Source,
		"spec":         res.Spec,
	})
}

// handleClassifySpec returns the deployment mode and recommendation for a
// registered spec.
func (s *Server) handleClassifySpec(w http.ResponseWriter, r *http.Request) {
	id := specID(r)

	sp, ok := s.store.Get(id)
	if !ok {
		writeNotFound(w, "spec not found: "+id)
		return
	}

	writeJSON(w, http.StatusOK, spec.Recommend(sp))
}

// handlePlanSpec builds a deployment plan for a registered spec.
//
// Query parameters:
//   - require: repeatable; implementation types the caller insists on
//     (hardware_driver, digital_asset, simulation_model)
func (s *Server) handlePlanSpec(w http.ResponseWriter, r *http.Request) {
	id := specID(r)

	sp, ok := s.store.Get(id)
	if !ok {
		writeNotFound(w, "spec not found: "+id)
		return
	}

	requirements := r.URL.Query()["require"]
	writeJSON(w, http.StatusOK, spec.BuildPlan(sp, requirements...))
}

// handleRecommendations lists the deployment modes a spec supports.
func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	id := specID(r)

	sp, ok := s.store.Get(id)
	if !ok {
		writeNotFound(w, "spec not found: "+id)
		return
	}

	recs := spec.DeploymentRecommendations(sp)
	if recs == nil {
		recs = []spec.ModeRecommendation{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"recommendations": recs})
}

// handleValidateConfig validates a proposed device configuration against a
// spec's setup fields.
func (s *Server) handleValidateConfig(w http.ResponseWriter, r *http.Request) {
	id := specID(r)

	sp, ok := s.store.Get(id)
	if !ok {
		writeNotFound(w, "spec not found: "+id)
		return
	}

	var values map[string]any
	if err := json.NewDecoder(r.Body).Decode(&values); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	if err := spec.ValidateConfig(sp, values); err != nil {
		writeJSON(w, http.StatusOK, map[string]any{"valid": false, "error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"valid": true})
}

// handleRegisterSpec registers a custom spec and, when a repository is
// configured, persists it so it survives restarts.
func (s *Server) handleRegisterSpec(w http.ResponseWriter, r *http.Request) {
	var sp spec.DeviceSpec
	if err := json.NewDecoder(r.Body).Decode(&sp); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	if err := spec.Validate(&sp); err != nil {
		writeError(w, http.StatusUnprocessableEntity, ErrCodeValidation, err.Error())
		return
	}

	if err := s.store.Register(&sp); err != nil {
		writeInternalError(w, "failed to register spec")
		return
	}

	if s.repo != nil {
		if err := s.repo.Save(r.Context(), &sp); err != nil {
			s.logger.Error("persisting custom spec", "id", sp.ID, "error", err)
			writeInternalError(w, "spec registered but could not be persisted")
			return
		}
	}

	if s.notifier != nil {
		if err := s.notifier.SpecRegistered(&sp); err != nil {
			s.logger.Warn("announcing spec registration", "id", sp.ID, "error", err)
		}
	}

	s.logger.Info("custom spec registered", "id", sp.ID, "category", sp.Category)
	writeJSON(w, http.StatusCreated, &sp)
}

// handleDeleteSpec removes a spec from the registry and, when persisted,
// from the repository.
func (s *Server) handleDeleteSpec(w http.ResponseWriter, r *http.Request) {
	id := specID(r)

	if !s.store.Remove(id) {
		writeNotFound(w, "spec not found: "+id)
		return
	}

	if s.loader != nil {
		// Forget ownership so the next discovery run can re-register the
		// ID, e.g. the catalogue entry a custom override was shadowing.
		s.loader.Release(id)
	}

	if s.repo != nil {
		if err := s.repo.Delete(r.Context(), id); err != nil && !errors.Is(err, spec.ErrSpecNotFound) {
			s.logger.Error("deleting persisted spec", "id", id, "error", err)
		}
	}

	if s.notifier != nil {
		if err := s.notifier.SpecRemoved(id); err != nil {
			s.logger.Warn("announcing spec removal", "id", id, "error", err)
		}
	}

	s.logger.Info("spec removed", "id", id)
	w.WriteHeader(http.StatusNoContent)
}

// handleRunDiscovery re-runs spec discovery and returns the report.
// Discovery is idempotent, so triggering it repeatedly is safe.
func (s *Server) handleRunDiscovery(w http.ResponseWriter, _ *http.Request) {
	if s.loader == nil {
		writeError(w, http.StatusServiceUnavailable, ErrCodeInternal, "discovery is not configured")
		return
	}
	writeJSON(w, http.StatusOK, s.loader.Run())
}
