// Package server exposes the validator over HTTP.
//
// Routes:
//
//	GET  /api/health    liveness check
//	POST /api/validate  body is a zipped feed; ?format=proto for protobuf output,
//	                    ?exclude=shapes.txt (repeatable) to skip files
//	GET  /metrics       Prometheus metrics
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	gtfsvalidator "github.com/theoremus-urban-solutions/gtfs-validator"
	"github.com/theoremus-urban-solutions/gtfs-validator/formatter"
)

// MaxFeedBytes caps the size of an uploaded feed.
const MaxFeedBytes = 512 << 20

type Server struct {
	opts     gtfsvalidator.Options
	gatherer prometheus.Gatherer
	log      *zap.Logger
	http     *http.Server
}

// New builds a server validating with opts. Metrics are served from g.
func New(addr string, opts gtfsvalidator.Options, g prometheus.Gatherer) *Server {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	s := &Server{opts: opts, gatherer: g, log: log}
	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      5 * time.Minute,
		IdleTimeout:       60 * time.Second,
	}
	return s
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", handleHealth)
	mux.HandleFunc("POST /api/validate", s.handleValidate)
	mux.Handle("GET /metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	return mux
}

// ListenAndServe blocks until ctx is done, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	errc := make(chan error, 1)
	go func() {
		s.log.Info("server listening", zap.String("addr", s.http.Addr))
		errc <- s.http.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	s.log.Info("shutdown signal received")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	s.log.Info("server shut down successfully")
	return nil
}

type healthResponse struct {
	Status string `json:"status"`
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(healthResponse{Status: "ok"})
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: msg})
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	tmp, err := os.CreateTemp("", "gtfs-*.zip")
	if err != nil {
		writeError(w, http.StatusInternalServerError, "cannot buffer feed")
		return
	}
	defer os.Remove(tmp.Name())

	n, err := io.Copy(tmp, http.MaxBytesReader(w, r.Body, MaxFeedBytes))
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		writeError(w, http.StatusBadRequest, "cannot read feed: "+err.Error())
		return
	}
	if n == 0 {
		writeError(w, http.StatusBadRequest, "empty request body")
		return
	}

	opts := s.opts
	if ex := r.URL.Query()["exclude"]; len(ex) > 0 {
		opts.Exclude = ex
	}
	report, err := gtfsvalidator.New(opts).Run(r.Context(), tmp.Name())
	if err != nil {
		s.log.Error("validation failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	exporter := formatter.New(r.URL.Query().Get("format") == "proto")
	if exporter.Extension() == "pb" {
		w.Header().Set("Content-Type", "application/x-protobuf")
	} else {
		w.Header().Set("Content-Type", "application/json")
	}
	w.Header().Set("X-Run-Id", report.RunID)
	if err := exporter.Export(w, report.Notices); err != nil {
		s.log.Warn("writing response failed", zap.Error(err))
	}
}
