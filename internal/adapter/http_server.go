package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"
	"unicode"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

const shutdownTimeout = 5 * time.Second

// KeyFinder answers a single query: which keys contain these notes.
type KeyFinder interface {
	Find(tokens []string) (notes []string, keys []string, err error)
}

type keysRequest struct {
	Notes []string `json:"notes"`
}

type keysResponse struct {
	Notes []string `json:"notes"`
	Keys  []string `json:"keys"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// HTTPServer exposes a KeyFinder over HTTP.
type HTTPServer struct {
	finder  KeyFinder
	handler http.Handler
}

// NewHTTPServer routes the key queries and wraps them with CORS handling for
// the given origins (all origins when empty).
func NewHTTPServer(finder KeyFinder, allowedOrigins []string) *HTTPServer {
	s := &HTTPServer{finder: finder}

	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	router.HandleFunc("/v1/keys", s.handleKeysQuery).Methods(http.MethodGet)
	router.HandleFunc("/v1/keys", s.handleKeysBody).Methods(http.MethodPost)

	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}

	s.handler = cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
	}).Handler(router)

	return s
}

// Handler returns the routed handler.
func (s *HTTPServer) Handler() http.Handler {
	return s.handler
}

// ListenAndServe serves on addr until ctx is cancelled.
func (s *HTTPServer) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)

	go func() {
		slog.Info("http server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}

		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		slog.Info("http server shutting down", "addr", addr)

		return srv.Shutdown(shutdownCtx)
	}
}

func (s *HTTPServer) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// handleKeysQuery serves GET /v1/keys?notes=C,E,G. Sharps must be
// percent-encoded (%23).
func (s *HTTPServer) handleKeysQuery(w http.ResponseWriter, r *http.Request) {
	tokens := splitNotes(r.URL.Query().Get("notes"))
	s.respondKeys(w, tokens)
}

func (s *HTTPServer) handleKeysBody(w http.ResponseWriter, r *http.Request) {
	var req keysRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	s.respondKeys(w, req.Notes)
}

func (s *HTTPServer) respondKeys(w http.ResponseWriter, tokens []string) {
	notes, keys, err := s.finder.Find(tokens)
	if err != nil {
		slog.Debug("key query rejected", "notes", tokens, "error", err)
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})

		return
	}

	writeJSON(w, http.StatusOK, keysResponse{Notes: notes, Keys: keys})
}

func splitNotes(raw string) []string {
	return strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}
