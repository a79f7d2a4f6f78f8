package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/vanshikachilkoti/Wordlookup-Dictionary/repository"
	"github.com/vanshikachilkoti/Wordlookup-Dictionary/types"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// SessionCookieName carries the server-side session token for browser
// clients.
const SessionCookieName = "session_token"

const sessionCookieMaxAge = 24 * 60 * 60

type AuthHandler struct {
	users    UserStore
	sessions SessionStore
	secret   string
	log      *slog.Logger
}

func NewAuthHandler(users UserStore, sessions SessionStore, secret string, log *slog.Logger) *AuthHandler {
	return &AuthHandler{users: users, sessions: sessions, secret: secret, log: log}
}

// Attach resolves the request's identity and stores it in the context
// under "userId". The session cookie is tried first; a Bearer JWT is
// accepted as an alternative for non-browser clients. Requests without
// a valid credential pass through anonymous — enforcement belongs to
// RequireUser.
func (h *AuthHandler) Attach() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, err := c.Cookie(SessionCookieName); err == nil && token != "" {
			userID, err := h.sessions.UserIDForToken(token)
			if err == nil {
				c.Set("userId", userID)
				c.Next()
				return
			}
			if !errors.Is(err, repository.ErrNoSession) {
				h.log.Error("session lookup failed", "err", err)
			}
		}
		if userID, ok := h.userIDFromBearer(c); ok {
			c.Set("userId", userID)
		}
		c.Next()
	}
}

// RequireUser guards the HTML pages: unauthenticated requests are
// redirected to the login page rather than rejected with an error.
func (h *AuthHandler) RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := c.Get("userId"); !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

func (h *AuthHandler) userIDFromBearer(c *gin.Context) (int, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return 0, false
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return 0, false
	}
	token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(h.secret), nil
	})
	if err != nil || !token.Valid {
		return 0, false
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, false
	}
	userID, ok := claims["userId"].(float64)
	if !ok {
		return 0, false
	}
	return int(userID), true
}

func (h *AuthHandler) ShowSignup(c *gin.Context) {
	c.HTML(http.StatusOK, "signup.html", gin.H{})
}

func (h *AuthHandler) Signup(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	password := c.PostForm("password")
	if len(username) < 3 || len(username) > 50 {
		c.HTML(http.StatusBadRequest, "signup.html", gin.H{
			"Error": "Username must be between 3 and 50 characters",
		})
		return
	}
	if password == "" {
		c.HTML(http.StatusBadRequest, "signup.html", gin.H{
			"Error": "Password is required",
		})
		return
	}

	user, err := h.users.Create(username, password)
	if err != nil {
		if errors.Is(err, repository.ErrUsernameTaken) {
			c.HTML(http.StatusConflict, "signup.html", gin.H{
				"Error": "Username already exists",
			})
			return
		}
		h.log.Error("signup failed", "username", username, "err", err)
		c.HTML(http.StatusInternalServerError, "signup.html", gin.H{
			"Error": "Something went wrong, please try again",
		})
		return
	}

	h.startSession(c, user.ID)
}

func (h *AuthHandler) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{})
}

func (h *AuthHandler) Login(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	password := c.PostForm("password")

	user, err := h.users.Verify(username, password)
	if err != nil {
		if !errors.Is(err, repository.ErrInvalidCredentials) {
			h.log.Error("login failed", "username", username, "err", err)
		}
		c.HTML(http.StatusUnauthorized, "login.html", gin.H{
			"Error": "Invalid credentials",
		})
		return
	}

	h.startSession(c, user.ID)
}

// Logout clears any active session regardless of prior state.
func (h *AuthHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(SessionCookieName); err == nil && token != "" {
		if err := h.sessions.Delete(token); err != nil {
			h.log.Error("session delete failed", "err", err)
		}
	}
	c.SetCookie(SessionCookieName, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/login")
}

// IssueToken exchanges valid credentials for a short-lived JWT so
// non-browser clients can call the API without cookie handling.
func (h *AuthHandler) IssueToken(c *gin.Context) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.NewErrorResponse(types.ErrorCodeValidation, err.Error()))
		return
	}
	user, err := h.users.Verify(req.Username, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, types.NewErrorResponse(types.ErrorCodeUnauthorized, "Invalid username or password"))
		return
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": user.ID,
		"exp":    time.Now().Add(24 * time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(h.secret))
	if err != nil {
		h.log.Error("token signing failed", "err", err)
		c.JSON(http.StatusInternalServerError, types.NewErrorResponse(types.ErrorCodeInternal, "Failed to generate token"))
		return
	}
	c.JSON(http.StatusOK, types.NewSuccessResponse(gin.H{"token": signed}))
}

func (h *AuthHandler) startSession(c *gin.Context, userID int) {
	token, err := h.sessions.Create(userID)
	if err != nil {
		h.log.Error("session create failed", "userId", userID, "err", err)
		c.HTML(http.StatusInternalServerError, "login.html", gin.H{
			"Error": "Something went wrong, please try again",
		})
		return
	}
	c.SetCookie(SessionCookieName, token, sessionCookieMaxAge, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}
