package httpx

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pulseworks/campaignpulse/internal/config"
	"github.com/pulseworks/campaignpulse/internal/insights"
	"github.com/pulseworks/campaignpulse/internal/models"
	"github.com/pulseworks/campaignpulse/internal/report"
	"github.com/pulseworks/campaignpulse/internal/timerange"
	"github.com/pulseworks/campaignpulse/internal/utils"
)

func NewRouter(log *slog.Logger, f *report.Fetcher, cfg config.Config) http.Handler {
	mux := chi.NewRouter()
	mux.Use(utils.RequestID)
	mux.Use(utils.Logger(log))
	mux.Use(utils.Instrument)
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); w.Write([]byte("ok")) })
	mux.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); w.Write([]byte("ready")) })
	mux.Method(http.MethodGet, "/metrics", promhttp.Handler())

	mux.Route("/api", func(r chi.Router) {
		r.Get("/campaigns", func(w http.ResponseWriter, req *http.Request) {
			rows, code, err := fetchFromQuery(f, req)
			if err != nil {
				http.Error(w, err.Error(), code)
				return
			}
			writeJSON(w, rows)
		})

		r.Get("/campaigns/summary", func(w http.ResponseWriter, req *http.Request) {
			rows, code, err := fetchFromQuery(f, req)
			if err != nil {
				http.Error(w, err.Error(), code)
				return
			}
			writeJSON(w, report.Summarize(rows))
		})

		r.Get("/insights/sections", func(w http.ResponseWriter, req *http.Request) {
			writeJSON(w, insights.SectionNames())
		})
		r.Get("/insights/sections/{name}", func(w http.ResponseWriter, req *http.Request) {
			name, ok := pathName(req)
			if !ok {
				http.Error(w, "bad section name", 400)
				return
			}
			s, ok := insights.Section(name)
			if !ok {
				http.Error(w, "unknown section", 404)
				return
			}
			writeJSON(w, s)
		})
		r.Get("/insights/metrics/{name}", func(w http.ResponseWriter, req *http.Request) {
			name, ok := pathName(req)
			if !ok {
				http.Error(w, "bad metric name", 400)
				return
			}
			m, ok := insights.Metric(name)
			if !ok {
				http.Error(w, "unknown metric", 404)
				return
			}
			writeJSON(w, m)
		})
		r.Get("/education/{name}", func(w http.ResponseWriter, req *http.Request) {
			name, ok := pathName(req)
			if !ok {
				http.Error(w, "bad metric name", 400)
				return
			}
			e, ok := insights.Education(name)
			if !ok {
				http.Error(w, "unknown metric", 404)
				return
			}
			writeJSON(w, e)
		})
	})

	return mux
}

// fetchFromQuery runs the report pipeline for the request's range selector.
// Defaults to last_30_days, matching the dashboard's initial view.
func fetchFromQuery(f *report.Fetcher, r *http.Request) ([]models.CampaignMetrics, int, error) {
	q := r.URL.Query()
	code := q.Get("range")
	if code == "" {
		code = string(timerange.Last30Days)
	}
	sel, err := timerange.Parse(code)
	if err != nil {
		return nil, 400, err
	}

	if sel == timerange.Custom {
		start, err := time.Parse(time.RFC3339, q.Get("start"))
		if err != nil {
			return nil, 400, errors.New("custom range requires start (RFC3339)")
		}
		end, err := time.Parse(time.RFC3339, q.Get("end"))
		if err != nil {
			return nil, 400, errors.New("custom range requires end (RFC3339)")
		}
		rows, err := f.FetchCampaignMetricsRange(r.Context(), start, end)
		return rows, statusFor(err), err
	}

	rows, err := f.FetchCampaignMetrics(r.Context(), sel)
	return rows, statusFor(err), err
}

func statusFor(err error) int {
	var le *report.ListError
	switch {
	case err == nil:
		return 200
	case errors.Is(err, timerange.ErrInvalidRange):
		return 400
	case errors.As(err, &le):
		return 502
	}
	return 500
}

func pathName(r *http.Request) (string, bool) {
	name, err := url.PathUnescape(chi.URLParam(r, "name"))
	if err != nil || name == "" {
		return "", false
	}
	return name, true
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", " ")
	enc.Encode(v)
}
