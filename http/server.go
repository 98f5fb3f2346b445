package http

import (
	"context"
	"embed"
	"html/template"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/fwojciec/linkx"
	"github.com/fwojciec/linkx/view"
)

// ShutdownTimeout is the time given for outstanding requests to finish
// before the server is shut down.
const ShutdownTimeout = 1 * time.Second

//go:embed templates/*.html
var templateFS embed.FS

var indexTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

// Server serves the link extractor view as a single web page.
type Server struct {
	ln     net.Listener
	server *http.Server

	// Bind address for the server's listener, e.g. "localhost:8080".
	Addr string

	View   *view.View
	Logger *slog.Logger
}

// NewServer returns a Server rendering v.
func NewServer(v *view.View, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Server{
		View:   v,
		Logger: logger,
	}
	s.server = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler returns the HTTP handler for the page.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("POST /{$}", s.handleSubmit)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	return mux
}

// Open begins listening on Addr and serving in the background.
func (s *Server) Open() (err error) {
	if s.ln, err = net.Listen("tcp", s.Addr); err != nil {
		return err
	}
	go func() { _ = s.server.Serve(s.ln) }()
	return nil
}

// Close gracefully shuts down the server.
func (s *Server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// URL returns the local base URL of the running server.
func (s *Server) URL() string {
	if s.ln == nil {
		return ""
	}
	return "http://" + s.ln.Addr().String()
}

// page is the template data for the index page.
type page struct {
	view.State
	Rows       []string
	InputError string
	Year       int
	Messages   messages
}

type messages struct {
	LinkCopied      string
	LinkCopyFailed  string
	LinksCopied     string
	LinksCopyFailed string
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusOK, "")
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	url := r.PostFormValue("url")

	err := s.View.Submit(r.Context(), url)
	if linkx.ErrorCode(err) == linkx.EINVALID {
		s.render(w, http.StatusBadRequest, linkx.ErrorMessage(err))
		return
	}
	if err != nil {
		s.Logger.Warn("extraction failed", "url", url, "err", err)
	}
	s.render(w, http.StatusOK, "")
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) render(w http.ResponseWriter, status int, inputError string) {
	state := s.View.Snapshot()
	data := page{
		State:      state,
		Rows:       state.Links(),
		InputError: inputError,
		Year:       time.Now().Year(),
		Messages: messages{
			LinkCopied:      view.MsgLinkCopied,
			LinkCopyFailed:  view.MsgLinkCopyFailed,
			LinksCopied:     view.MsgLinksCopied,
			LinksCopyFailed: view.MsgLinksCopyFailed,
		},
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := indexTemplate.Execute(w, data); err != nil {
		s.Logger.Error("render page", "err", err)
	}
}
