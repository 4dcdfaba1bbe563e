package main

import (
	"io"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/cooper-710/mocap-app/pkg/mocap"
	"github.com/cooper-710/mocap-app/pkg/mocap/output"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the extraction API for the visualization frontend",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := mocap.Options{FPSGuess: fps}
			router := newRouter(opts)
			log.Printf("listening on %s", addr)
			return http.ListenAndServe(addr, router)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "Listen address")
	return cmd
}

func newRouter(opts mocap.Options) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Post("/api/metrics", handleMetricsUpload(opts))
	r.Get("/api/metrics", handleMetricsURL(opts))
	r.Post("/api/rows", handleRowsUpload(opts))

	return r
}

// handleMetricsUpload parses an uploaded workbook body. The extraction
// result is always 200: failures ride in the ok/why fields.
func handleMetricsUpload(opts mocap.Options) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		data, err := io.ReadAll(req.Body)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusOK, mocap.NeededMetricsFromBytes(data, opts))
	}
}

// handleMetricsURL fetches a workbook by URL. Acquisition failures map
// to 502 since they come from the upstream fetch.
func handleMetricsURL(opts mocap.Options) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		url := req.URL.Query().Get("url")
		if url == "" {
			http.Error(w, "missing url parameter", http.StatusBadRequest)
			return
		}
		res, err := mocap.NeededMetricsFromURL(req.Context(), url, opts)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadGateway)
			return
		}
		writeJSON(w, http.StatusOK, res)
	}
}

func handleRowsUpload(opts mocap.Options) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		data, err := io.ReadAll(req.Body)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		sheets, err := mocap.ExtractBytes(data, opts)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusOK, sheets)
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	data, err := output.ToJSON(v, false)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(data)
}
