package http

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/urlopy/urlopy-backend-go/internal/domain/auth"
	"github.com/urlopy/urlopy-backend-go/internal/domain/dashboard"
	"github.com/urlopy/urlopy-backend-go/internal/domain/leave"
	"github.com/urlopy/urlopy-backend-go/internal/domain/user"
	"github.com/urlopy/urlopy-backend-go/internal/handler/http/middleware"
	"github.com/urlopy/urlopy-backend-go/internal/handler/http/response"
	"github.com/urlopy/urlopy-backend-go/internal/pkg/jwt"
	"github.com/urlopy/urlopy-backend-go/internal/pkg/validator"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageNames = []string{
	"login.html",
	"dashboard.html",
	"leaves.html",
	"leave_form.html",
	"error.html",
}

type WebHandler interface {
	LoginPage(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
	Dashboard(w http.ResponseWriter, r *http.Request)
	Leaves(w http.ResponseWriter, r *http.Request)
	MyLeaves(w http.ResponseWriter, r *http.Request)
	LeaveForm(w http.ResponseWriter, r *http.Request)
	SubmitLeave(w http.ResponseWriter, r *http.Request)
	EditLeaveForm(w http.ResponseWriter, r *http.Request)
	EditLeave(w http.ResponseWriter, r *http.Request)
	DeleteLeave(w http.ResponseWriter, r *http.Request)
	ApproveLeave(w http.ResponseWriter, r *http.Request)
	RejectLeave(w http.ResponseWriter, r *http.Request)
}

type WebHandlerImpl struct {
	jwtService       jwt.Service
	authService      auth.AuthService
	userService      user.UserService
	leaveService     leave.LeaveService
	dashboardService dashboard.DashboardService
	pages            map[string]*template.Template
}

func NewWebHandler(
	jwtService jwt.Service,
	authService auth.AuthService,
	userService user.UserService,
	leaveService leave.LeaveService,
	dashboardService dashboard.DashboardService,
) (WebHandler, error) {
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		tmpl, err := template.New(name).ParseFS(templateFS, "templates/layout.html", "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		pages[name] = tmpl
	}

	return &WebHandlerImpl{
		jwtService:       jwtService,
		authService:      authService,
		userService:      userService,
		leaveService:     leaveService,
		dashboardService: dashboardService,
		pages:            pages,
	}, nil
}

type pageData struct {
	Title  string
	Actor  *user.UserResponse
	Admin  bool
	Error  string
	Errors map[string]string
	Data   any
}

type loginPageData struct {
	Names []string
	Name  string
}

type leavesPageData struct {
	Mine   bool
	Leaves []leave.LeaveResponse
}

type leaveFormData struct {
	Action   string
	Edit     bool
	DateFrom string
	DateTo   string
	Comment  string
}

func (h *WebHandlerImpl) render(w http.ResponseWriter, r *http.Request, status int, page string, data pageData) {
	if actor, ok := middleware.ActorFromContext(r.Context()); ok {
		resp := actor.ToResponse()
		data.Actor = &resp
		data.Admin = actor.IsAdmin()
	}

	var buf bytes.Buffer
	if err := h.pages[page].ExecuteTemplate(&buf, "layout", data); err != nil {
		slog.Error("Render template error", "page", page, "error", err)
		http.Error(w, "An unexpected error occurred", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (h *WebHandlerImpl) renderError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := response.ErrorStatus(err)
	if status == http.StatusInternalServerError {
		slog.Error("Web handler error", "path", r.URL.Path, "error", err)
	}
	h.render(w, r, status, "error.html", pageData{Title: http.StatusText(status), Error: message})
}

// LoginPage implements WebHandler. Users with a valid session go straight to
// the dashboard.
func (h *WebHandlerImpl) LoginPage(w http.ResponseWriter, r *http.Request) {
	if h.hasSession(r) {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	h.renderLogin(w, r, http.StatusOK, "", "")
}

func (h *WebHandlerImpl) hasSession(r *http.Request) bool {
	token := sessionToken(r)
	if token == "" {
		return false
	}
	parsed, err := h.jwtService.JWTAuth().Decode(token)
	if err != nil || parsed == nil || parsed.Expiration().Before(time.Now()) {
		return false
	}
	return !h.jwtService.IsTokenRevoked(parsed.JwtID())
}

func (h *WebHandlerImpl) renderLogin(w http.ResponseWriter, r *http.Request, status int, name, errMsg string) {
	users, err := h.userService.List(r.Context())
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	names := make([]string, 0, len(users))
	for _, u := range users {
		names = append(names, u.Name)
	}

	h.render(w, r, status, "login.html", pageData{
		Title: "Logowanie",
		Error: errMsg,
		Data:  loginPageData{Names: names, Name: name},
	})
}

// Login implements WebHandler.
func (h *WebHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderLogin(w, r, http.StatusBadRequest, "", "Invalid form")
		return
	}

	req := auth.LoginRequest{Name: r.PostFormValue("name"), Password: r.PostFormValue("password")}
	tokenResponse, err := h.authService.Login(r.Context(), req)
	if err != nil {
		var verrs validator.ValidationErrors
		switch {
		case errors.Is(err, auth.ErrInvalidCredentials):
			h.renderLogin(w, r, http.StatusUnauthorized, req.Name, "Nieprawidłowa nazwa użytkownika lub hasło")
		case errors.As(err, &verrs):
			h.renderLogin(w, r, http.StatusUnauthorized, req.Name, "Podaj nazwę użytkownika i hasło")
		default:
			h.renderError(w, r, err)
		}
		return
	}

	http.SetCookie(w, h.jwtService.SessionCookie(tokenResponse.AccessToken, tokenResponse.ExpiresAt))
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// Logout implements WebHandler. An invalid session is cleared all the same.
func (h *WebHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.authService.Logout(r.Context(), sessionToken(r)); err != nil {
		slog.Warn("Logout with invalid session", "error", err)
	}
	http.SetCookie(w, h.jwtService.ClearSessionCookie())
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// Dashboard implements WebHandler.
func (h *WebHandlerImpl) Dashboard(w http.ResponseWriter, r *http.Request) {
	resp, err := h.dashboardService.GetDashboard(r.Context(), r.URL.Query().Get("year"))
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, "dashboard.html", pageData{
		Title: fmt.Sprintf("Dni robocze urlopu %d", resp.Year),
		Data:  resp,
	})
}

// Leaves implements WebHandler.
func (h *WebHandlerImpl) Leaves(w http.ResponseWriter, r *http.Request) {
	leaves, err := h.leaveService.List(r.Context(), leave.LeaveFilter{})
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, "leaves.html", pageData{
		Title: "Wszystkie urlopy",
		Data:  leavesPageData{Leaves: leave.ToResponses(leaves)},
	})
}

// MyLeaves implements WebHandler.
func (h *WebHandlerImpl) MyLeaves(w http.ResponseWriter, r *http.Request) {
	actor, _ := middleware.ActorFromContext(r.Context())
	leaves, err := h.leaveService.ListMine(r.Context(), actor)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, "leaves.html", pageData{
		Title: "Moje urlopy",
		Data:  leavesPageData{Mine: true, Leaves: leave.ToResponses(leaves)},
	})
}

// LeaveForm implements WebHandler.
func (h *WebHandlerImpl) LeaveForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "leave_form.html", pageData{
		Title: "Nowy urlop",
		Data:  leaveFormData{Action: "/leaves/form"},
	})
}

func formComment(r *http.Request) *string {
	comment := r.PostFormValue("comment")
	if strings.TrimSpace(comment) == "" {
		return nil
	}
	return &comment
}

// renderFormError re-renders the form with field errors, or the error page
// for anything else.
func (h *WebHandlerImpl) renderFormError(w http.ResponseWriter, r *http.Request, err error, title string, form leaveFormData) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		h.renderError(w, r, err)
		return
	}
	h.render(w, r, http.StatusUnprocessableEntity, "leave_form.html", pageData{
		Title:  title,
		Error:  "Popraw błędy w formularzu",
		Errors: verrs.ToMap(),
		Data:   form,
	})
}

// SubmitLeave implements WebHandler.
func (h *WebHandlerImpl) SubmitLeave(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderError(w, r, err)
		return
	}
	actor, _ := middleware.ActorFromContext(r.Context())

	req := leave.CreateLeaveRequest{
		DateFrom: r.PostFormValue("date_from"),
		DateTo:   r.PostFormValue("date_to"),
		Comment:  formComment(r),
	}
	if _, err := h.leaveService.Create(r.Context(), actor, req); err != nil {
		h.renderFormError(w, r, err, "Nowy urlop", leaveFormData{
			Action:   "/leaves/form",
			DateFrom: req.DateFrom,
			DateTo:   req.DateTo,
			Comment:  r.PostFormValue("comment"),
		})
		return
	}

	http.Redirect(w, r, "/leaves/html", http.StatusSeeOther)
}

func (h *WebHandlerImpl) pathLeaveID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		h.renderError(w, r, leave.ErrLeaveNotFound)
		return 0, false
	}
	return id, true
}

// EditLeaveForm implements WebHandler.
func (h *WebHandlerImpl) EditLeaveForm(w http.ResponseWriter, r *http.Request) {
	actor, _ := middleware.ActorFromContext(r.Context())
	if !actor.IsAdmin() {
		h.renderError(w, r, user.ErrAdminPrivilegeRequired)
		return
	}
	id, ok := h.pathLeaveID(w, r)
	if !ok {
		return
	}

	l, err := h.leaveService.Get(r.Context(), id)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	form := leaveFormData{
		Action:   fmt.Sprintf("/leaves/%d/edit", id),
		Edit:     true,
		DateFrom: l.From().String(),
		DateTo:   l.To().String(),
	}
	if l.Comment != nil {
		form.Comment = *l.Comment
	}
	h.render(w, r, http.StatusOK, "leave_form.html", pageData{Title: "Edycja urlopu", Data: form})
}

// EditLeave implements WebHandler.
func (h *WebHandlerImpl) EditLeave(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathLeaveID(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		h.renderError(w, r, err)
		return
	}
	actor, _ := middleware.ActorFromContext(r.Context())

	req := leave.UpdateLeaveRequest{
		DateFrom: r.PostFormValue("date_from"),
		DateTo:   r.PostFormValue("date_to"),
		Comment:  formComment(r),
	}
	if _, err := h.leaveService.Update(r.Context(), actor, id, req); err != nil {
		h.renderFormError(w, r, err, "Edycja urlopu", leaveFormData{
			Action:   fmt.Sprintf("/leaves/%d/edit", id),
			Edit:     true,
			DateFrom: req.DateFrom,
			DateTo:   req.DateTo,
			Comment:  r.PostFormValue("comment"),
		})
		return
	}

	http.Redirect(w, r, "/leaves/html", http.StatusSeeOther)
}

// DeleteLeave implements WebHandler.
func (h *WebHandlerImpl) DeleteLeave(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathLeaveID(w, r)
	if !ok {
		return
	}
	actor, _ := middleware.ActorFromContext(r.Context())

	if err := h.leaveService.Delete(r.Context(), actor, id); err != nil {
		h.renderError(w, r, err)
		return
	}
	http.Redirect(w, r, "/leaves/html", http.StatusSeeOther)
}

// ApproveLeave implements WebHandler.
func (h *WebHandlerImpl) ApproveLeave(w http.ResponseWriter, r *http.Request) {
	h.reviewLeave(w, r, h.leaveService.Approve)
}

// RejectLeave implements WebHandler.
func (h *WebHandlerImpl) RejectLeave(w http.ResponseWriter, r *http.Request) {
	h.reviewLeave(w, r, h.leaveService.Reject)
}

func (h *WebHandlerImpl) reviewLeave(w http.ResponseWriter, r *http.Request, fn reviewFunc) {
	id, ok := h.pathLeaveID(w, r)
	if !ok {
		return
	}
	actor, _ := middleware.ActorFromContext(r.Context())

	if _, err := fn(r.Context(), actor, id); err != nil {
		h.renderError(w, r, err)
		return
	}
	http.Redirect(w, r, "/leaves/html", http.StatusSeeOther)
}
