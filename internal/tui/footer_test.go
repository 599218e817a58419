package tui

import (
	"strings"
	"testing"

	"github.com/verte-zerg/speedtype/internal/engine"
)

type fixedSource struct {
	texts []string
	next  int
}

func (s *fixedSource) Next() (string, error) {
	text := s.texts[s.next%len(s.texts)]
	s.next++
	return text, nil
}

func newTestModel(t *testing.T, strict bool, texts ...string) *Model {
	t.Helper()
	eng, err := engine.New(&fixedSource{texts: texts}, strict)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return NewModel(eng)
}

func TestRenderFooterFormats(t *testing.T) {
	m := newTestModel(t, true, "abcd")
	out := m.renderFooter()
	if out == "" {
		t.Fatalf("expected footer output")
	}
	if !containsAll(out, []string{"Time 0s", "Speed 0 WPM", "Accuracy 0%", "Strict on", "restart"}) {
		t.Fatalf("footer missing expected segments: %s", out)
	}
	if strings.Contains(out, "Finished") {
		t.Fatalf("unexpected finished banner: %s", out)
	}
}

func TestRenderFooterFinished(t *testing.T) {
	m := newTestModel(t, false, "ab")
	m.handleRunes([]rune("ab"))
	out := m.renderFooter()
	if !containsAll(out, []string{"Strict off", "Finished: 24 WPM", "100% accuracy", "in 1s"}) {
		t.Fatalf("footer missing finished segments: %s", out)
	}
}

func containsAll(haystack string, needles []string) bool {
	for _, needle := range needles {
		if !strings.Contains(haystack, needle) {
			return false
		}
	}
	return true
}
