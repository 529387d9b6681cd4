package scenario

import (
	"errors"
	"net/http"
	"time"

	"github.com/de-tools/ecodent-simulator/pkg/adapters"
	"github.com/de-tools/ecodent-simulator/pkg/display"
	"github.com/de-tools/ecodent-simulator/pkg/models/api"
	"github.com/de-tools/ecodent-simulator/pkg/models/domain"
	"github.com/de-tools/ecodent-simulator/pkg/services/config"
	"github.com/de-tools/ecodent-simulator/pkg/services/preset"
	"github.com/de-tools/ecodent-simulator/pkg/services/scenario"
	"github.com/de-tools/ecodent-simulator/pkg/services/session"
	"github.com/de-tools/ecodent-simulator/pkg/services/workflow"
	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type Handler struct {
	calc      *scenario.Calculator
	presets   preset.Service
	catalog   workflow.Catalog
	profiles  config.Registry
	formatter *display.Formatter

	now   func() time.Time
	newID func() string
}

func NewHandler(
	calc *scenario.Calculator,
	presets preset.Service,
	catalog workflow.Catalog,
	profiles config.Registry,
	formatter *display.Formatter,
) *Handler {
	if profiles == nil {
		profiles = config.NewEmptyRegistry()
	}
	return &Handler{
		calc:      calc,
		presets:   presets,
		catalog:   catalog,
		profiles:  profiles,
		formatter: formatter,
		now:       func() time.Time { return time.Now().UTC() },
		newID:     uuid.NewString,
	}
}

func (h *Handler) ListPresets(w http.ResponseWriter, r *http.Request) {
	response := make([]api.RegionPresets, 0, len(domain.Regions))
	for _, region := range domain.Regions {
		presets, err := h.presets.ListPresets(region)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		response = append(response, adapters.MapRegionPresetsDomainToApi(region, presets))
	}
	h.writeJSON(w, r, http.StatusOK, response)
}

func (h *Handler) GetPreset(w http.ResponseWriter, r *http.Request) {
	region, err := domain.ParseRegion(chi.URLParam(r, "region"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	tier, err := domain.ParseTier(chi.URLParam(r, "tier"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	p, err := h.presets.GetPreset(region, tier)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, adapters.MapPresetDomainToApi(p))
}

func (h *Handler) GetEconomics(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusOK, adapters.MapEconomicsDomainToApi(h.calc.Economics()))
}

func (h *Handler) GetWorkflow(w http.ResponseWriter, r *http.Request) {
	response := adapters.MapWorkflowDomainToApi(h.catalog.Steps(), h.catalog.Included(), h.catalog.AvoidedCosts())
	h.writeJSON(w, r, http.StatusOK, response)
}

// ComputeQuery computes a scenario from query parameters, the same raw
// values a form would submit.
func (h *Handler) ComputeQuery(w http.ResponseWriter, r *http.Request) {
	in, err := adapters.ParseScenarioQuery(r.URL.Query().Get)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeCalculation(w, r, in)
}

func (h *Handler) ComputeBody(w http.ResponseWriter, r *http.Request) {
	var req api.ScenarioInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeErrorResponse(w, r, api.ErrorResponse{
			Status:  http.StatusBadRequest,
			Code:    api.CodeInvalidRequest,
			Message: "invalid request body: " + err.Error(),
		})
		return
	}
	in, err := adapters.MapScenarioInputApiToDomain(req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeCalculation(w, r, in)
}

// ApplyEvents replays edits on top of client-held state. Each request gets
// its own session.
func (h *Handler) ApplyEvents(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	var req api.EventsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeErrorResponse(w, r, api.ErrorResponse{
			Status:  http.StatusBadRequest,
			Code:    api.CodeInvalidRequest,
			Message: "invalid request body: " + err.Error(),
		})
		return
	}

	var s *session.Session
	if req.State == nil {
		var err error
		s, err = session.New(h.calc, h.presets)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
	} else {
		in, err := adapters.MapScenarioInputApiToDomain(*req.State)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		s = session.Restore(h.calc, h.presets, in)
	}

	for i, ev := range req.Events {
		if _, err := s.Apply(adapters.MapEventApiToDomain(ev)); err != nil {
			logger.Debug().Err(err).Int("event_index", i).Msg("event rejected")
			resp := errorResponseFor(err)
			if resp.Status < http.StatusInternalServerError {
				resp.Status = http.StatusBadRequest
			}
			idx := i
			resp.EventIndex = &idx
			h.writeErrorResponse(w, r, resp)
			return
		}
	}

	in, res := s.Input(), s.Result()
	h.writeJSON(w, r, http.StatusOK, api.EventsResponse{
		State:   adapters.MapScenarioInputDomainToApi(in),
		Result:  adapters.MapScenarioResultDomainToApi(res),
		Display: adapters.MapScenarioDisplayToApi(h.formatter.Scenario(in, res)),
	})
}

func (h *Handler) ListProfiles(w http.ResponseWriter, r *http.Request) {
	names, err := h.profiles.GetProfiles(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, adapters.MapProfilesToApi(names))
}

func (h *Handler) ComputeProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.profiles.GetProfile(r.Context(), chi.URLParam(r, "profile"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeCalculation(w, r, profile.Input)
}

func (h *Handler) writeCalculation(w http.ResponseWriter, r *http.Request, in domain.ScenarioInput) {
	in = scenario.ClampInput(in)
	res := h.calc.Compute(in)

	calc := adapters.MapCalculation(h.newID(), h.now(), in, res, h.formatter)
	zerolog.Ctx(r.Context()).Debug().
		Str("calculation_id", calc.CalculationID).
		Str("role", string(in.Role)).
		Str("region", string(in.Region)).
		Float64("monthly_income", res.MonthlyIncome).
		Msg("scenario computed")

	h.writeJSON(w, r, http.StatusOK, calc)
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		zerolog.Ctx(r.Context()).Error().
			Err(err).
			Msg("failed to encode response")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	h.writeErrorResponse(w, r, errorResponseFor(err))
}

func (h *Handler) writeErrorResponse(w http.ResponseWriter, r *http.Request, resp api.ErrorResponse) {
	logger := zerolog.Ctx(r.Context())
	if resp.Status >= http.StatusInternalServerError {
		logger.Error().Str("code", resp.Code).Msg(resp.Message)
	} else {
		logger.Debug().Str("code", resp.Code).Msg(resp.Message)
	}
	h.writeJSON(w, r, resp.Status, resp)
}

func errorResponseFor(err error) api.ErrorResponse {
	resp := api.ErrorResponse{Message: err.Error()}
	switch {
	case errors.Is(err, session.ErrUnknownEvent):
		resp.Status, resp.Code = http.StatusBadRequest, api.CodeUnknownEvent
	case errors.Is(err, domain.ErrUnknownRole):
		resp.Status, resp.Code = http.StatusBadRequest, api.CodeUnknownRole
	case errors.Is(err, domain.ErrUnknownRegion):
		resp.Status, resp.Code = http.StatusBadRequest, api.CodeUnknownRegion
	case errors.Is(err, domain.ErrUnknownTier):
		resp.Status, resp.Code = http.StatusNotFound, api.CodeUnknownTier
	case errors.Is(err, config.ErrProfileNotFound):
		resp.Status, resp.Code = http.StatusNotFound, api.CodeUnknownProfile
	default:
		resp.Status, resp.Code = http.StatusInternalServerError, api.CodeInternal
		resp.Message = "internal error"
	}
	return resp
}
