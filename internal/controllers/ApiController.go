package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	json "github.com/goccy/go-json"

	"aurad/internal/models"
	"aurad/internal/providers"
	"aurad/internal/services"
)

const maxRequestBodySize = 1 << 20 // 1 MB

// maxNameLength bounds the submitted name, in runes.
const maxNameLength = 20

type ApiController struct {
	logger  providers.Logger
	service services.AuraServiceInterface
	cache   providers.CacheProviderInterface
	metrics providers.MetricsProviderInterface
}

func NewApiController(logger providers.Logger, service services.AuraServiceInterface, cache providers.CacheProviderInterface, metrics providers.MetricsProviderInterface) *ApiController {
	return &ApiController{
		logger:  logger,
		service: service,
		cache:   cache,
		metrics: metrics,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	gson, err := json.Marshal(v)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(gson)
}

func (ac *ApiController) serveFromCacheOrCompute(w http.ResponseWriter, cacheKey string, compute func() (any, error)) {
	if data, ok := ac.cache.Get(cacheKey); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
		return
	}

	result, err := compute()
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	gson, err := json.Marshal(result)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	ac.cache.Set(cacheKey, gson)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

// validName returns the trimmed name, or false when it is empty or too
// long. Trimming happens here so the draw hash always sees the canonical
// form.
func validName(name string) (string, bool) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" || len([]rune(trimmed)) > maxNameLength {
		return "", false
	}
	return trimmed, true
}

type drawRequest struct {
	Name string `json:"name"`
}

func (ac *ApiController) Draw(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var payload drawRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	name, ok := validName(payload.Name)
	if !ok {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	start := time.Now()
	outcome := ac.service.Draw(name, time.Now())
	ac.metrics.ObservePersistenceDuration(time.Since(start))

	ac.metrics.IncDraws(outcome.IsNewDiscovery)
	ac.metrics.IncFeeds("draw")
	if outcome.Evolved {
		ac.metrics.IncEvolutions()
	}
	writeJSON(w, http.StatusOK, outcome)
}

func (ac *ApiController) Reroll(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var payload drawRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	name, ok := validName(payload.Name)
	if !ok {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	outcome, err := ac.service.Reroll(name, time.Now())
	if err != nil {
		if errors.Is(err, services.ErrNoDrawToday) {
			http.Error(w, "Conflict", http.StatusConflict)
			return
		}
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	ac.metrics.IncRerolls()
	writeJSON(w, http.StatusOK, outcome)
}

type feedRequest struct {
	AdWatched bool `json:"adWatched"`
}

func (ac *ApiController) Feed(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var payload feedRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	outcome, err := ac.service.ManualFeed(payload.AdWatched, time.Now())
	if err != nil {
		if errors.Is(err, services.ErrAdRequired) {
			writeJSON(w, http.StatusForbidden, map[string]string{"error": "ad_required"})
			return
		}
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	ac.metrics.IncFeeds("manual")
	if outcome.Evolved {
		ac.metrics.IncEvolutions()
	}
	writeJSON(w, http.StatusOK, outcome)
}

type mascotRequest struct {
	PersonaID models.PersonaID `json:"personaId"`
}

func (ac *ApiController) SwitchMascot(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var payload mascotRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	outcome, err := ac.service.SwitchMascot(payload.PersonaID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUnknownPersona):
			http.Error(w, "Bad Request", http.StatusBadRequest)
		case errors.Is(err, services.ErrNotDiscovered):
			http.Error(w, "Not Found", http.StatusNotFound)
		default:
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		}
		return
	}
	writeJSON(w, http.StatusOK, outcome)
}

func (ac *ApiController) GetState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ac.service.LoadState(time.Now()))
}

func (ac *ApiController) GetQuote(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	date := models.DateString(now)
	ac.serveFromCacheOrCompute(w, "quote:"+date, func() (any, error) {
		return map[string]string{"date": date, "quote": ac.service.DailyQuote(now)}, nil
	})
}

func (ac *ApiController) GetPartner(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.URL.Query().Get("id"))
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	now := time.Now()
	date := models.DateString(now)
	partner, perr := ac.service.Partner(models.PersonaID(id), now)
	if perr != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	ac.serveFromCacheOrCompute(w, "partner:"+date+":"+strconv.Itoa(id), func() (any, error) {
		return partner, nil
	})
}
