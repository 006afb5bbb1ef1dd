// Package web serves the dashboard to a browser.
package web

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"time"

	"github.com/etnz/balancete"
	"github.com/etnz/balancete/renderer"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

//go:embed templates/*.html
var templateFS embed.FS

// maxUploadSize limits the size of an uploaded sheet.
const maxUploadSize = 10 << 20

// Server serves the HTML dashboard and its JSON API.
type Server struct {
	dash *balancete.Dashboard
	tmpl *template.Template
	log  logrus.FieldLogger
}

// NewServer returns a Server for dash.
func NewServer(dash *balancete.Dashboard, log logrus.FieldLogger) (*Server, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}
	tmpl, err := template.New("base").ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Server{dash: dash, tmpl: tmpl, log: log}, nil
}

// Router returns the http handler of the server.
func (s *Server) Router() http.Handler {
	r := mux.NewRouter()
	r.Use(s.logRequests)

	r.HandleFunc("/", s.index).Methods(http.MethodGet)
	r.HandleFunc("/upload", s.upload).Methods(http.MethodPost)
	r.HandleFunc("/reset", s.reset).Methods(http.MethodPost)
	r.HandleFunc("/insights", s.insights).Methods(http.MethodPost)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/dashboard", s.apiDashboard).Methods(http.MethodGet)
	api.HandleFunc("/insights", s.apiInsights).Methods(http.MethodPost)

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "ok")
	}).Methods(http.MethodGet)
	return r
}

func (s *Server) index(w http.ResponseWriter, r *http.Request) {
	view := renderer.ParseView(r.URL.Query().Get("view"))
	page := s.newPage(view, r.URL.Query().Get("msg"))

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.ExecuteTemplate(w, "dashboard.html", page); err != nil {
		s.log.WithError(err).Error("cannot execute dashboard template")
		http.Error(w, "Template Error", http.StatusInternalServerError)
	}
}

func (s *Server) upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		http.Error(w, "Arquivo inválido ou grande demais", http.StatusBadRequest)
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "Campo 'file' ausente", http.StatusBadRequest)
		return
	}
	defer file.Close()

	if err := s.dash.Upload(r.Context(), header.Filename, file); err != nil {
		if errors.Is(err, balancete.ErrNotPersisted) {
			redirect(w, r, "Planilha carregada, mas não foi possível salvá-la localmente.")
			return
		}
		http.Error(w, fmt.Sprintf("Não foi possível ler a planilha: %v", err), http.StatusBadRequest)
		return
	}
	redirect(w, r, "")
}

func (s *Server) reset(w http.ResponseWriter, r *http.Request) {
	if err := s.dash.Reset(); err != nil {
		redirect(w, r, "Dados removidos da tela, mas não foi possível limpar o armazenamento.")
		return
	}
	redirect(w, r, "")
}

func (s *Server) insights(w http.ResponseWriter, r *http.Request) {
	if _, err := s.dash.RequestInsights(r.Context()); err != nil {
		http.Error(w, insightError(err), insightStatus(err))
		return
	}
	redirect(w, r, "")
}

// dashboardResponse is the body of GET /api/dashboard.
type dashboardResponse struct {
	Data     *balancete.DashboardData `json:"data"`
	Summary  balancete.Summary        `json:"summary"`
	Warnings []string                 `json:"warnings"`
	Insight  string                   `json:"insight"`
	Loading  bool                     `json:"loading"`
}

func (s *Server) apiDashboard(w http.ResponseWriter, r *http.Request) {
	data := s.dash.Data()
	summary := balancete.Summarize(data)
	resp := dashboardResponse{
		Data:     data,
		Summary:  summary,
		Warnings: []string{},
		Insight:  s.dash.Insight(),
		Loading:  s.dash.Loading(),
	}
	if data != nil {
		resp.Warnings = append(resp.Warnings, summary.Warnings()...)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) apiInsights(w http.ResponseWriter, r *http.Request) {
	text, err := s.dash.RequestInsights(r.Context())
	if err != nil {
		writeJSON(w, insightStatus(err), map[string]string{"error": insightError(err)})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"insight": text})
}

func insightStatus(err error) int {
	switch {
	case errors.Is(err, balancete.ErrNoData), errors.Is(err, balancete.ErrInsightPending), errors.Is(err, balancete.ErrStale):
		return http.StatusConflict
	case errors.Is(err, balancete.ErrNoAdvisor):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func insightError(err error) string {
	switch {
	case errors.Is(err, balancete.ErrNoData):
		return "Importe uma planilha antes de pedir uma análise."
	case errors.Is(err, balancete.ErrInsightPending):
		return "Uma análise já está sendo gerada."
	case errors.Is(err, balancete.ErrStale):
		return "Os dados mudaram durante a análise, tente novamente."
	case errors.Is(err, balancete.ErrNoAdvisor):
		return "Nenhum serviço de análise configurado."
	}
	return err.Error()
}

func redirect(w http.ResponseWriter, r *http.Request, msg string) {
	target := "/"
	if msg != "" {
		target += "?msg=" + url.QueryEscape(msg)
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.log.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   rec.status,
			"duration": time.Since(start).String(),
		}).Info("request")
	})
}
