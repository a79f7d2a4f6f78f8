package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
)

func (s *HandlersTestSuite) TestSignupLogsUserIn() {
	w := s.postForm("/signup", url.Values{"username": {"alice"}, "password": {"pw1"}}, "")

	s.Equal(http.StatusFound, w.Code)
	s.Equal("/", w.Header().Get("Location"))

	token := sessionCookie(w)
	s.NotEmpty(token)
	userID, err := s.sessions.UserIDForToken(token)
	s.NoError(err)
	s.Equal(1, userID)
}

func (s *HandlersTestSuite) TestSignupDuplicateKeepsOriginalPassword() {
	s.signupAs("alice", "pw1")

	w := s.postForm("/signup", url.Values{"username": {"alice"}, "password": {"pw2"}}, "")
	s.Equal(http.StatusConflict, w.Code)
	s.Contains(w.Body.String(), "Username already exists")
	s.Empty(sessionCookie(w))

	// The original credentials still verify; the second password never
	// reached the store.
	_, err := s.users.Verify("alice", "pw1")
	s.NoError(err)
	_, err = s.users.Verify("alice", "pw2")
	s.Error(err)
}

func (s *HandlersTestSuite) TestSignupRejectsShortUsername() {
	w := s.postForm("/signup", url.Values{"username": {"ab"}, "password": {"pw"}}, "")
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlersTestSuite) TestLoginValidCredentials() {
	s.signupAs("alice", "pw1")

	w := s.postForm("/login", url.Values{"username": {"alice"}, "password": {"pw1"}}, "")
	s.Equal(http.StatusFound, w.Code)
	s.Equal("/", w.Header().Get("Location"))
	s.NotEmpty(sessionCookie(w))
}

func (s *HandlersTestSuite) TestLoginWrongPasswordCreatesNoSession() {
	s.signupAs("alice", "pw1")
	before := s.sessions.count()

	w := s.postForm("/login", url.Values{"username": {"alice"}, "password": {"nope"}}, "")
	s.Equal(http.StatusUnauthorized, w.Code)
	s.Contains(w.Body.String(), "Invalid credentials")
	s.Equal(before, s.sessions.count())
}

func (s *HandlersTestSuite) TestLoginUnknownUsername() {
	w := s.postForm("/login", url.Values{"username": {"ghost"}, "password": {"pw"}}, "")
	s.Equal(http.StatusUnauthorized, w.Code)
	s.Zero(s.sessions.count())
}

func (s *HandlersTestSuite) TestLogoutClearsSession() {
	token := s.signupAs("alice", "pw1")

	w := s.get("/logout", token)
	s.Equal(http.StatusFound, w.Code)
	s.Equal("/login", w.Header().Get("Location"))

	_, err := s.sessions.UserIDForToken(token)
	s.Error(err)

	// The protected page no longer accepts the old cookie.
	w = s.get("/dashboard", token)
	s.Equal(http.StatusFound, w.Code)
	s.Equal("/login", w.Header().Get("Location"))
}

func (s *HandlersTestSuite) TestLogoutWithoutSessionStillRedirects() {
	w := s.get("/logout", "")
	s.Equal(http.StatusFound, w.Code)
	s.Equal("/login", w.Header().Get("Location"))
}

func (s *HandlersTestSuite) TestIssueTokenAndBearerAccess() {
	s.signupAs("alice", "pw1")

	body, _ := json.Marshal(map[string]string{"username": "alice", "password": "pw1"})
	req := httptest.NewRequest(http.MethodPost, "/api/token", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	s.Require().Equal(http.StatusOK, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Require().True(resp.Success)
	s.Require().NotEmpty(resp.Data.Token)

	// A Bearer token works on protected routes without any cookie.
	req = httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+resp.Data.Token)
	w = httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	s.Equal(http.StatusOK, w.Code)
}

func (s *HandlersTestSuite) TestIssueTokenBadCredentials() {
	body, _ := json.Marshal(map[string]string{"username": "alice", "password": "pw"})
	req := httptest.NewRequest(http.MethodPost, "/api/token", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *HandlersTestSuite) TestGarbageBearerTokenIsAnonymous() {
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	s.Equal(http.StatusFound, w.Code)
	s.Equal("/login", w.Header().Get("Location"))
}
