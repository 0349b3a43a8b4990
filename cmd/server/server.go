package main

import (
	"html/template"
	"io/fs"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/Simplici0/indcalc/internal/api"
	"github.com/Simplici0/indcalc/internal/metrics"
	"github.com/Simplici0/indcalc/internal/presets"
	"github.com/Simplici0/indcalc/web"
)

type server struct {
	presets  *presets.Store
	logger   *zap.Logger
	metrics  *metrics.Recorder
	currency string
}

func (s *server) routes(reg *prometheus.Registry) http.Handler {
	static, err := fs.Sub(web.FS, "static")
	if err != nil {
		panic(err)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(static))))
	r.Get("/", s.handleHome)
	r.Get("/lp", s.handleLPForm)
	r.Post("/lp", s.handleLPSubmit)
	r.Get("/eoq", s.handleEOQForm)
	r.Post("/eoq", s.handleEOQSubmit)
	r.Get("/queue", s.handleQueueForm)
	r.Post("/queue", s.handleQueueSubmit)
	r.Get("/bep", s.handleBEPForm)
	r.Post("/bep", s.handleBEPSubmit)
	r.Get("/settings", s.handleSettingsForm)
	r.Post("/settings", s.handleSettingsSubmit)
	r.Get("/healthz", s.handleHealth)
	r.Route("/api", api.NewHandler(s.logger, s.metrics, s.currency).RegisterRoutes)
	if reg != nil {
		r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	}

	return r
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}` + "\n"))
}

func (s *server) renderTemplate(w http.ResponseWriter, status int, page string, data any) {
	templates, err := template.ParseFS(web.FS,
		"templates/layout.html",
		"templates/results.html",
		"templates/"+page,
	)
	if err != nil {
		s.logger.Error("parse template", zap.String("page", page), zap.Error(err))
		http.Error(w, "failed to parse template", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := templates.ExecuteTemplate(w, "layout.html", data); err != nil {
		s.logger.Error("render template", zap.String("page", page), zap.Error(err))
	}
}

func (s *server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("elapsed", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}
