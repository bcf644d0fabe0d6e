package http

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/midas-agency/midas/internal/web/content"
	"github.com/midas-agency/midas/internal/web/domain"
	"github.com/midas-agency/midas/internal/web/service"
	"github.com/midas-agency/midas/internal/web/session"
	"github.com/midas-agency/midas/pkg/slogx"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// PagesHandler renders the marketing site and the signed-in portal page.
type PagesHandler struct {
	DirectoryService *service.DirectoryService

	tmpl *template.Template
}

func NewPagesHandler(directory *service.DirectoryService) *PagesHandler {
	return &PagesHandler{
		DirectoryService: directory,
		tmpl:             template.Must(template.ParseFS(templateFS, "templates/*.tmpl")),
	}
}

// pageData is the payload every template receives. User is the session user
// when signed in, for the shared navigation.
type pageData struct {
	Title string
	User  *domain.PublicUser
	Data  any
}

func (h *PagesHandler) render(w http.ResponseWriter, r *http.Request, name, title string, data any) {
	payload := pageData{Title: title, Data: data}
	if user, ok := session.UserFromContext(r.Context()); ok {
		payload.User = &user
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.ExecuteTemplate(w, name, payload); err != nil {
		slogx.FromContext(r.Context()).Error("render page failed", "template", name, "err", err)
	}
}

func (h *PagesHandler) HandleHome(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "home.html.tmpl", "Midas Agency", map[string]any{
		"Services":  content.Services(),
		"WorkCards": content.WorkCards(),
	})
}

func (h *PagesHandler) HandleServices(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "services.html.tmpl", "Services", content.Services())
}

func (h *PagesHandler) HandleServiceDetail(w http.ResponseWriter, r *http.Request) {
	svc, ok := content.ServiceBySlug(r.PathValue("slug"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	h.render(w, r, "service.html.tmpl", svc.Title, map[string]any{
		"Service":     svc,
		"CaseStudies": content.CaseStudiesByCategory(svc.Slug),
	})
}

func (h *PagesHandler) HandleCaseStudies(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "case_studies.html.tmpl", "Case Studies", content.CaseStudies())
}

func (h *PagesHandler) HandleWork(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "work.html.tmpl", "Our Work", map[string]any{
		"Cards":       content.WorkCards(),
		"CaseStudies": content.CaseStudies(),
	})
}

func (h *PagesHandler) HandleCaseStudy(w http.ResponseWriter, r *http.Request) {
	cs, ok := content.CaseStudyByID(r.PathValue("id"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	h.render(w, r, "case_study.html.tmpl", cs.Title, cs)
}

func (h *PagesHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	if _, ok := session.UserFromContext(r.Context()); ok {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	h.render(w, r, "login.html.tmpl", "Sign In", nil)
}

func (h *PagesHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	if _, ok := session.UserFromContext(r.Context()); ok {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	h.render(w, r, "register.html.tmpl", "Create Account", nil)
}

// HandleDashboard renders the signed-in client's profile. A missing session
// redirects to the login page.
func (h *PagesHandler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	user, ok := session.UserFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	h.render(w, r, "dashboard.html.tmpl", "Dashboard", map[string]any{"Profile": user})
}

// HandleKOL renders the first page of the KOL roster for signed-in clients.
// A directory failure degrades to a notice instead of failing the page.
func (h *PagesHandler) HandleKOL(w http.ResponseWriter, r *http.Request) {
	if _, ok := session.UserFromContext(r.Context()); !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	data := map[string]any{}
	page, err := h.DirectoryService.List(r.Context(), 0, 0)
	if err != nil {
		slogx.FromContext(r.Context()).Warn("kol directory unavailable", "err", err)
		data["DirectoryError"] = "The KOL directory is temporarily unavailable."
	} else {
		data["Directory"] = page
	}

	h.render(w, r, "kol.html.tmpl", "KOL Directory", data)
}
