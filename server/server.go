package server

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"io/fs"
	"log"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/miya9209-prog/ms-blog-maker-V1/generator"
	"github.com/miya9209-prog/ms-blog-maker-V1/product"
	"github.com/miya9209-prog/ms-blog-maker-V1/publisher"
)

//go:embed web/static
var embeddedStatic embed.FS

const generateTimeout = 60 * time.Second

type Server struct {
	agent    *generator.Agent
	fetcher  *product.Fetcher
	store    *sessionStore
	staticFS http.Handler
}

func New(agent *generator.Agent, fetcher *product.Fetcher) (*Server, error) {
	if agent == nil {
		return nil, errors.New("generator agent required")
	}
	if fetcher == nil {
		fetcher = product.NewFetcher(0)
	}

	sub, err := fs.Sub(embeddedStatic, "web/static")
	if err != nil {
		return nil, err
	}

	return &Server{
		agent:    agent,
		fetcher:  fetcher,
		store:    newStore(),
		staticFS: http.FileServer(http.FS(sub)),
	}, nil
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/sessions", s.handleSessionCreate)
	mux.HandleFunc("/api/sessions/", s.handleSessionByID)
	mux.HandleFunc("/api/product", s.handleProductFetch)
	mux.Handle("/", s.staticHandler())
	return logMiddleware(mux)
}

func (s *Server) staticHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		upath := r.URL.Path
		if strings.HasPrefix(upath, "/api/") {
			http.NotFound(w, r)
			return
		}
		if upath == "/" {
			r.URL.Path = "/index.html"
		}
		s.staticFS.ServeHTTP(w, r)
	})
}

// --- Handlers ---

type sessionResp struct {
	SessionID string         `json:"session_id"`
	Post      generator.Post `json:"post"`
}

func (s *Server) handleSessionCreate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	req, ok := decodeRequest(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), generateTimeout)
	defer cancel()
	post, err := s.agent.Generate(ctx, req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	id := uuid.NewString()
	s.store.set(id, &Session{ID: id, Request: req, Post: post})
	writeJSON(w, sessionResp{SessionID: id, Post: post})
}

func (s *Server) handleSessionByID(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/sessions/")
	parts := strings.Split(strings.Trim(rest, "/"), "/")
	if len(parts) == 0 || parts[0] == "" {
		http.NotFound(w, r)
		return
	}
	id := parts[0]
	sess, ok := s.store.get(id)
	if !ok {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}

	switch {
	case len(parts) == 1:
		s.handleSession(w, r, sess)
	case len(parts) == 3 && parts[1] == "download":
		s.handleDownload(w, r, sess, parts[2])
	case len(parts) == 2 && parts[1] == "preview":
		s.handlePreview(w, r, sess)
	default:
		http.NotFound(w, r)
	}
}

func (s *Server) handleSession(w http.ResponseWriter, r *http.Request, sess *Session) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, sessionResp{SessionID: sess.ID, Post: sess.Post})
	case http.MethodPost:
		// Regenerate: same form, fresh model call, result replaces the old one.
		req, ok := decodeRequest(w, r)
		if !ok {
			return
		}
		ctx, cancel := context.WithTimeout(r.Context(), generateTimeout)
		defer cancel()
		post, err := s.agent.Generate(ctx, req)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadGateway)
			return
		}
		s.store.set(sess.ID, &Session{ID: sess.ID, Request: req, Post: post})
		writeJSON(w, sessionResp{SessionID: sess.ID, Post: post})
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request, sess *Session, format string) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	post := sess.Post
	var d publisher.Download
	switch format {
	case "txt":
		d = publisher.TextDownload(post.GeneratedAt, post.Title, post.Text)
	case "html":
		d = publisher.HTMLDownload(post.GeneratedAt, post.Title, post.Body)
	case "md":
		d = publisher.MarkdownDownload(post.GeneratedAt, post.Title, post.Text)
	default:
		http.Error(w, "unknown download format", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", d.ContentType)
	w.Header().Set("Content-Disposition",
		mime.FormatMediaType("attachment", map[string]string{"filename": d.Name}))
	w.Write(d.Content)
}

func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request, sess *Session) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	frag, err := publisher.PreviewHTML(sess.Post.Text)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(frag))
}

type productFetchReq struct {
	URL string `json:"url"`
}

func (s *Server) handleProductFetch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req productFetchReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	// An unreachable page still answers 200 with whatever fields came back empty.
	writeJSON(w, s.fetcher.Fetch(r.Context(), req.URL))
}

// --- Helpers ---

// decodeRequest parses the shared form payload and enforces the one required
// field. The error text shows up directly in the UI, so it stays in Korean.
func decodeRequest(w http.ResponseWriter, r *http.Request) (generator.Request, bool) {
	var req generator.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return generator.Request{}, false
	}
	if strings.TrimSpace(req.Topic) == "" {
		http.Error(w, "주제/상품명(필수)을 입력해주세요.", http.StatusBadRequest)
		return generator.Request{}, false
	}
	return req, true
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func logMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("[server] %s %s %s", r.Method, r.URL.Path, time.Since(start).Round(time.Millisecond))
	})
}
