package handlers

import (
	"net/http"
	"path/filepath"
)

// PageHandler serves the static home/login/register views.
type PageHandler struct {
	staticDir string
}

func NewPageHandler(staticDir string) *PageHandler {
	return &PageHandler{staticDir: staticDir}
}

func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, filepath.Join(h.staticDir, "index.html"))
}

func (h *PageHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, filepath.Join(h.staticDir, "login.html"))
}

func (h *PageHandler) RegisterPage(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, filepath.Join(h.staticDir, "register.html"))
}
