package handlers

import (
	"net/http"
	"net/url"
)

func (s *HandlersTestSuite) TestHomeRequiresLogin() {
	w := s.get("/", "")
	s.Equal(http.StatusFound, w.Code)
	s.Equal("/login", w.Header().Get("Location"))
}

func (s *HandlersTestSuite) TestHomeGetRendersEmptyForm() {
	token := s.signupAs("alice", "pw1")

	w := s.get("/", token)
	s.Equal(http.StatusOK, w.Code)
	s.Empty(s.history.entries)
}

func (s *HandlersTestSuite) TestLookupRecordsHistoryAndEchoesDefinition() {
	token := s.signupAs("alice", "pw1")

	w := s.postForm("/", url.Values{"word": {"Test"}}, token)
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "a test definition")

	s.Require().Len(s.history.entries, 1)
	entry := s.history.entries[0]
	s.Equal("test", entry.Word) // normalized lowercase
	s.Equal("a test definition", entry.Definition)
	s.Equal(1, entry.UserID)
}

func (s *HandlersTestSuite) TestLookupNormalizesWord() {
	token := s.signupAs("alice", "pw1")

	s.postForm("/", url.Values{"word": {"  HeLLo  "}}, token)
	s.Equal([]string{"hello"}, s.fetcher.words)
}

func (s *HandlersTestSuite) TestLookupEmptyWordFetchesNothing() {
	token := s.signupAs("alice", "pw1")

	w := s.postForm("/", url.Values{"word": {"   "}}, token)
	s.Equal(http.StatusOK, w.Code)
	s.Empty(s.fetcher.words)
	s.Empty(s.history.entries)
}

func (s *HandlersTestSuite) TestLookupNotFoundSentinelIsRecorded() {
	s.fetcher.definition = "Definition not found."
	token := s.signupAs("alice", "pw1")

	w := s.postForm("/", url.Values{"word": {"qqqq"}}, token)
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "Definition not found.")
	s.Require().Len(s.history.entries, 1)
	s.Equal("Definition not found.", s.history.entries[0].Definition)
}
