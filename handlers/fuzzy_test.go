package handlers

import (
	"net/http"
)

func (s *HandlersTestSuite) TestFuzzyIsPublic() {
	s.suggester.matches = []string{"apple"}
	w := s.get("/fuzzy?q=appel", "")
	s.Equal(http.StatusOK, w.Code)
}

func (s *HandlersTestSuite) TestFuzzyEmptyQuerySkipsSuggester() {
	w := s.get("/fuzzy?q=", "")
	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`[]`, w.Body.String())
	s.Zero(s.suggester.calls)

	w = s.get("/fuzzy?q=%20%20", "")
	s.JSONEq(`[]`, w.Body.String())
	s.Zero(s.suggester.calls)
}

func (s *HandlersTestSuite) TestFuzzyReturnsBareArray() {
	s.suggester.matches = []string{"apple", "ample", "maple"}

	w := s.get("/fuzzy?q=appel", "")
	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`["apple","ample","maple"]`, w.Body.String())
	s.Equal(1, s.suggester.calls)
}

func (s *HandlersTestSuite) TestFuzzyDegradedSuggesterYieldsEmptyArray() {
	s.suggester.matches = nil // unconfigured token or remote failure

	w := s.get("/fuzzy?q=appel", "")
	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`[]`, w.Body.String())
}

func (s *HandlersTestSuite) TestFuzzyLimitParsedAndClamped() {
	s.get("/fuzzy?q=a&limit=3", "")
	s.get("/fuzzy?q=a&limit=999", "")
	s.get("/fuzzy?q=a&limit=bogus", "")
	s.get("/fuzzy?q=a", "")

	s.Equal([]int{3, maxFuzzyLimit, 5, 5}, s.suggester.limits)
}
