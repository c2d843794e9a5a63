package task

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ayush/donepath/internal/common"
	"github.com/ayush/donepath/internal/flash"
	"github.com/ayush/donepath/internal/middleware"
	"github.com/ayush/donepath/internal/models"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// TaskStore defines the interface for task persistence.
type TaskStore interface {
	CreateTask(ctx context.Context, t *models.Task) (*models.Task, error)
	GetTaskByID(ctx context.Context, id int64) (*models.Task, error)
	ListTasksByUser(ctx context.Context, userID int64) ([]models.Task, error)
	UpdateTask(ctx context.Context, t *models.Task) error
	SetTaskCompleted(ctx context.Context, id int64, completed bool) error
	DeleteTask(ctx context.Context, id int64) error
}

// UserStore resolves the authenticated user for the home view.
type UserStore interface {
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
}

// Handler holds task HTTP handlers.
type Handler struct {
	appName string
	tasks   TaskStore
	users   UserStore
	now     func() time.Time
}

func NewHandler(appName string, tasks TaskStore, users UserStore) *Handler {
	return &Handler{appName: appName, tasks: tasks, users: users, now: time.Now}
}

// taskView is the wire shape of a task: due_date as "2006-01-02",
// due_time as "HH:MM".
type taskView struct {
	ID        int64   `json:"id"`
	Content   string  `json:"content"`
	Completed bool    `json:"completed"`
	Priority  int     `json:"priority"`
	DueDate   *string `json:"due_date"`
	DueTime   *string `json:"due_time"`
}

func toViews(tasks []models.Task) []taskView {
	views := make([]taskView, 0, len(tasks))
	for _, t := range tasks {
		v := taskView{
			ID:        t.ID,
			Content:   t.Content,
			Completed: t.Completed,
			Priority:  t.Priority,
			DueTime:   t.DueTime,
		}
		if t.DueDate != nil {
			s := t.DueDate.Format(dateLayout)
			v.DueDate = &s
		}
		views = append(views, v)
	}
	return views
}

// Home renders the three-bucket task view. The optional `priority` query
// param restricts all buckets to one priority; a non-numeric value is
// ignored. A `status` query param is accepted but has no effect on the
// rendered lists: the view always shows all three buckets.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	user, err := h.users.GetUserByID(r.Context(), userID)
	if err != nil {
		log.Printf("get user %d: %v", userID, err)
		http.Error(w, `{"error":"database error"}`, http.StatusInternalServerError)
		return
	}

	tasks, err := h.tasks.ListTasksByUser(r.Context(), userID)
	if err != nil {
		log.Printf("list tasks for user %d: %v", userID, err)
		http.Error(w, `{"error":"database error"}`, http.StatusInternalServerError)
		return
	}

	today := DateOnly(h.now())
	filtered := FilterPriority(tasks, r.URL.Query().Get("priority"))
	buckets := Categorize(filtered, today)

	writeJSON(w, http.StatusOK, map[string]any{
		"app_name":     h.appName,
		"user":         user,
		"current_date": today.Format(dateLayout),
		"flash":        flash.Pop(w, r),
		"overdue":      toViews(buckets.Overdue),
		"upcoming":     toViews(buckets.Upcoming),
		"completed":    toViews(buckets.Completed),
	})
}

// Add creates a task for the current user. An empty content field is a
// silent no-op: no task is created and no error is reported.
func (h *Handler) Add(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	form, err := parseTaskForm(r, false)
	if err != nil {
		flash.Set(w, formErrorMessage(err))
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	if form.content == "" {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	t := &models.Task{
		Content:  form.content,
		Priority: form.priority,
		DueDate:  form.dueDate,
		DueTime:  form.dueTime,
		UserID:   userID,
	}
	if _, err := h.tasks.CreateTask(r.Context(), t); err != nil {
		log.Printf("create task: %v", err)
		flash.Set(w, "Something went wrong. Please try again.")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	flash.Set(w, "Task Added Successfully!")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Delete removes a task owned by the current user.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	t, ok := h.ownedTask(w, r, "delete")
	if !ok {
		return
	}

	if err := h.tasks.DeleteTask(r.Context(), t.ID); err != nil {
		log.Printf("delete task %d: %v", t.ID, err)
		flash.Set(w, "Something went wrong. Please try again.")
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	flash.Set(w, "Task Deleted Successfully!")
	http.Redirect(w, r, "/", http.StatusFound)
}

// Complete toggles the completed flag of a task owned by the current user.
func (h *Handler) Complete(w http.ResponseWriter, r *http.Request) {
	t, ok := h.ownedTask(w, r, "update")
	if !ok {
		return
	}

	if err := h.tasks.SetTaskCompleted(r.Context(), t.ID, !t.Completed); err != nil {
		log.Printf("toggle task %d: %v", t.ID, err)
		flash.Set(w, "Something went wrong. Please try again.")
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	flash.Set(w, "Task updated successfully!")
	http.Redirect(w, r, "/", http.StatusFound)
}

// Edit overwrites content, due date/time, and priority of a task owned by
// the current user. Unlike Add, priority is required here.
func (h *Handler) Edit(w http.ResponseWriter, r *http.Request) {
	t, ok := h.ownedTask(w, r, "edit")
	if !ok {
		return
	}

	form, err := parseTaskForm(r, true)
	if err != nil {
		flash.Set(w, formErrorMessage(err))
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	t.Content = form.content
	t.DueDate = form.dueDate
	t.DueTime = form.dueTime
	t.Priority = form.priority
	if err := h.tasks.UpdateTask(r.Context(), t); err != nil {
		log.Printf("update task %d: %v", t.ID, err)
		flash.Set(w, "Something went wrong. Please try again.")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	flash.Set(w, "Task updated successfully!")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// ownedTask loads the task from the {id} URL param and checks ownership.
// On any failure it flashes a message, redirects home, and returns ok=false
// with the stored task untouched.
func (h *Handler) ownedTask(w http.ResponseWriter, r *http.Request, verb string) (*models.Task, bool) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusFound)
		return nil, false
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		flash.Set(w, "Task not found.")
		http.Redirect(w, r, "/", http.StatusFound)
		return nil, false
	}

	t, err := h.tasks.GetTaskByID(r.Context(), id)
	if err != nil {
		if !errors.Is(err, common.ErrNotFound) {
			log.Printf("get task %d: %v", id, err)
		}
		flash.Set(w, "Task not found.")
		http.Redirect(w, r, "/", http.StatusFound)
		return nil, false
	}

	if t.UserID != userID {
		flash.Set(w, "Not authorized to "+verb+" this task.")
		http.Redirect(w, r, "/", http.StatusFound)
		return nil, false
	}

	return t, true
}

func formErrorMessage(err error) string {
	switch {
	case errors.Is(err, common.ErrInvalidDateFormat):
		return "Invalid date format. Please use YYYY-MM-DD."
	case errors.Is(err, common.ErrInvalidTimeFormat):
		return "Invalid time format. Please use HH:MM."
	case errors.Is(err, common.ErrMissingField):
		return "Priority must be a number."
	default:
		return "Something went wrong. Please try again."
	}
}
