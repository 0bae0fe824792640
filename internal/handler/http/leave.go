package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/urlopy/urlopy-backend-go/internal/domain/leave"
	"github.com/urlopy/urlopy-backend-go/internal/domain/user"
	"github.com/urlopy/urlopy-backend-go/internal/handler/http/response"
)

type LeaveHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: leaveService}
}

func leaveID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(w, "Invalid leave ID", nil)
		return 0, false
	}
	return id, true
}

// parseLeaveFilter reads the optional user_id and status query parameters.
func parseLeaveFilter(r *http.Request) (leave.LeaveFilter, map[string]string) {
	var (
		filter  leave.LeaveFilter
		details = map[string]string{}
	)

	if raw := r.URL.Query().Get("user_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			details["user_id"] = "user_id must be a number"
		} else {
			filter.UserID = &id
		}
	}
	if raw := r.URL.Query().Get("status"); raw != "" {
		status := leave.Status(raw)
		if !status.IsValid() {
			details["status"] = "status must be one of pending, approved, rejected"
		} else {
			filter.Status = &status
		}
	}

	if len(details) == 0 {
		return filter, nil
	}
	return filter, details
}

// List implements LeaveHandler.
func (h *LeaveHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter, details := parseLeaveFilter(r)
	if details != nil {
		response.BadRequest(w, "Invalid filter", details)
		return
	}

	leaves, err := h.leaveService.List(r.Context(), filter)
	if err != nil {
		slog.Error("List leaves error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, leave.ToResponses(leaves))
}

// ListMine implements LeaveHandler.
func (h *LeaveHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	actor, ok := mustActor(w, r)
	if !ok {
		return
	}

	leaves, err := h.leaveService.ListMine(r.Context(), actor)
	if err != nil {
		slog.Error("List my leaves error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, leave.ToResponses(leaves))
}

// Get implements LeaveHandler.
func (h *LeaveHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := leaveID(w, r)
	if !ok {
		return
	}

	l, err := h.leaveService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, l.ToResponse())
}

// Create implements LeaveHandler.
func (h *LeaveHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := mustActor(w, r)
	if !ok {
		return
	}

	var req leave.CreateLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateLeave decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.leaveService.Create(r.Context(), actor, req)
	if err != nil {
		slog.Error("CreateLeave service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Leave submitted", created.ToResponse())
}

// Update implements LeaveHandler.
func (h *LeaveHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	actor, ok := mustActor(w, r)
	if !ok {
		return
	}
	id, ok := leaveID(w, r)
	if !ok {
		return
	}

	var req leave.UpdateLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateLeave decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.leaveService.Update(r.Context(), actor, id, req)
	if err != nil {
		slog.Error("UpdateLeave service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Leave updated", updated.ToResponse())
}

// Delete implements LeaveHandler.
func (h *LeaveHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := mustActor(w, r)
	if !ok {
		return
	}
	id, ok := leaveID(w, r)
	if !ok {
		return
	}

	if err := h.leaveService.Delete(r.Context(), actor, id); err != nil {
		slog.Error("DeleteLeave service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Leave deleted", nil)
}

// Approve implements LeaveHandler.
func (h *LeaveHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, h.leaveService.Approve, "Leave approved")
}

// Reject implements LeaveHandler.
func (h *LeaveHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, h.leaveService.Reject, "Leave rejected")
}

type reviewFunc func(ctx context.Context, actor user.User, id int64) (leave.Leave, error)

func (h *LeaveHandlerImpl) review(w http.ResponseWriter, r *http.Request, fn reviewFunc, message string) {
	actor, ok := mustActor(w, r)
	if !ok {
		return
	}
	id, ok := leaveID(w, r)
	if !ok {
		return
	}

	reviewed, err := fn(r.Context(), actor, id)
	if err != nil {
		slog.Error("ReviewLeave service error", "error", err, "leave_id", id)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, message, reviewed.ToResponse())
}
