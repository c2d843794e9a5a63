package auth

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/ayush/donepath/internal/common"
	"github.com/ayush/donepath/internal/flash"
	"github.com/ayush/donepath/internal/models"
)

// UserStore defines the interface for user persistence.
type UserStore interface {
	CreateUser(ctx context.Context, fullName, email, username, hashedPw string) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// Sessions issues and revokes authenticated sessions.
type Sessions interface {
	Create(ctx context.Context, userID int64) (string, error)
	Delete(ctx context.Context, sessionID string) error
}

// Handler holds auth-related HTTP handlers.
type Handler struct {
	appName  string
	users    UserStore
	sessions Sessions
}

func NewHandler(appName string, users UserStore, sessions Sessions) *Handler {
	return &Handler{appName: appName, users: users, sessions: sessions}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// SignupForm serves the signup form descriptor.
func (h *Handler) SignupForm(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"app_name": h.appName,
		"form":     "signup",
		"fields":   []string{"full_name", "email", "username", "password"},
		"flash":    flash.Pop(w, r),
	})
}

// Signup registers a new user. Email and username are normalized to
// lowercase; the username uniqueness check runs before the email one, so a
// request colliding on both reports the username conflict.
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	fullName := strings.TrimSpace(r.PostFormValue("full_name"))
	email := strings.ToLower(strings.TrimSpace(r.PostFormValue("email")))
	username := strings.ToLower(strings.TrimSpace(r.PostFormValue("username")))
	password := r.PostFormValue("password")

	log.Printf("signup attempt: username=%s email=%s", username, email)

	if err := h.checkAvailable(r.Context(), username, email); err != nil {
		switch {
		case errors.Is(err, common.ErrDuplicateUsername):
			flash.Set(w, "Username already exists.")
		case errors.Is(err, common.ErrDuplicateEmail):
			flash.Set(w, "Email already registered.")
		default:
			flash.Set(w, "Something went wrong. Please try again.")
		}
		http.Redirect(w, r, "/signup", http.StatusSeeOther)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		flash.Set(w, "Something went wrong. Please try again.")
		http.Redirect(w, r, "/signup", http.StatusSeeOther)
		return
	}

	if _, err := h.users.CreateUser(r.Context(), fullName, email, username, string(hashed)); err != nil {
		log.Printf("create user: %v", err)
		flash.Set(w, "Something went wrong. Please try again.")
		http.Redirect(w, r, "/signup", http.StatusSeeOther)
		return
	}

	flash.Set(w, "Account created! Please log in.")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *Handler) checkAvailable(ctx context.Context, username, email string) error {
	if _, err := h.users.GetUserByUsername(ctx, username); err == nil {
		return common.ErrDuplicateUsername
	} else if !errors.Is(err, common.ErrNotFound) {
		return err
	}
	if _, err := h.users.GetUserByEmail(ctx, email); err == nil {
		return common.ErrDuplicateEmail
	} else if !errors.Is(err, common.ErrNotFound) {
		return err
	}
	return nil
}

// LoginForm serves the login form descriptor.
func (h *Handler) LoginForm(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"app_name": h.appName,
		"form":     "login",
		"fields":   []string{"username", "password"},
		"flash":    flash.Pop(w, r),
	})
}

// Login authenticates a user and creates a session. An unknown username and
// a wrong password produce the identical flash message.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	username := strings.TrimSpace(r.PostFormValue("username"))
	password := r.PostFormValue("password")

	user, err := h.users.GetUserByUsername(r.Context(), username)
	if err != nil || bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		log.Printf("login failed: username=%s", username)
		flash.Set(w, "Invalid username or password.")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	sid, err := h.sessions.Create(r.Context(), user.ID)
	if err != nil {
		log.Printf("create session: %v", err)
		flash.Set(w, "Something went wrong. Please try again.")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    sid,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(SessionTTL / time.Second),
	})

	flash.Set(w, "Logged in successfully!")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Logout destroys the current session unconditionally.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(SessionCookie); err == nil {
		h.sessions.Delete(r.Context(), cookie.Value)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})

	http.Redirect(w, r, "/login", http.StatusFound)
}
