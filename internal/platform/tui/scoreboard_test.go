package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/storage"
)

type fakeSource struct {
	entries []storage.ScoreEntry
	err     error
	asked   []string
}

func (f *fakeSource) TopScores(outcome string, limit int) ([]storage.ScoreEntry, error) {
	f.asked = append(f.asked, outcome)
	if f.err != nil {
		return nil, f.err
	}
	var out []storage.ScoreEntry
	for _, e := range f.entries {
		if outcome == "" || e.Outcome == outcome {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeSource) Stats() (*storage.Stats, error) {
	return &storage.Stats{Games: len(f.entries)}, nil
}

func sampleSource() *fakeSource {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	return &fakeSource{entries: []storage.ScoreEntry{
		{Player: "ann", Score: 640, Killed: 64, Outcome: "won", Duration: 95 * time.Second, CreatedAt: now},
		{Player: "bob", Score: 120, Killed: 12, Outcome: "lost", Duration: 40 * time.Second, CreatedAt: now},
		{Player: "cid", Score: 30, Killed: 3, Outcome: "quit", Duration: 5 * time.Second, CreatedAt: now},
	}}
}

func TestScoreboardTabs(t *testing.T) {
	src := sampleSource()
	m := NewScoreboardModel(src, 100, 30)

	if m.Filter().Title != "All" || len(m.Scores()) != 3 {
		t.Fatalf("initial tab = %q with %d scores", m.Filter().Title, len(m.Scores()))
	}

	tests := []struct {
		key      tea.KeyMsg
		title    string
		expected int
	}{
		{tea.KeyMsg{Type: tea.KeyTab}, "Victories", 1},
		{tea.KeyMsg{Type: tea.KeyTab}, "Defeats", 1},
		{tea.KeyMsg{Type: tea.KeyShiftTab}, "Victories", 1},
		{tea.KeyMsg{Type: tea.KeyShiftTab}, "All", 3},
		{tea.KeyMsg{Type: tea.KeyShiftTab}, "Abandoned", 1},
		{tea.KeyMsg{Type: tea.KeyTab}, "All", 3},
	}

	for i, tt := range tests {
		next, _ := m.Update(tt.key)
		m = next.(ScoreboardModel)
		if m.Filter().Title != tt.title {
			t.Errorf("step %d: tab = %q, expected %q", i, m.Filter().Title, tt.title)
		}
		if len(m.Scores()) != tt.expected {
			t.Errorf("step %d: %d scores, expected %d", i, len(m.Scores()), tt.expected)
		}
	}
}

func TestScoreboardView(t *testing.T) {
	m := NewScoreboardModel(sampleSource(), 100, 30)
	view := m.View()

	for _, want := range []string{"HIGH SCORES", "Victories", "ann", "640", "1:35"} {
		if !strings.Contains(view, want) {
			t.Errorf("view does not contain %q", want)
		}
	}
}

func TestScoreboardEmptyAndError(t *testing.T) {
	empty := NewScoreboardModel(&fakeSource{}, 80, 24)
	if !strings.Contains(empty.View(), "No scores recorded yet") {
		t.Error("empty scoreboard should invite the user to play")
	}

	broken := NewScoreboardModel(&fakeSource{err: errors.New("disk on fire")}, 80, 24)
	if !strings.Contains(broken.View(), "disk on fire") {
		t.Error("scoreboard should show the load error")
	}

	none := NewScoreboardModel(nil, 80, 24)
	if len(none.Scores()) != 0 {
		t.Error("scoreboard without a source should be empty")
	}
}

func TestScoreboardQuit(t *testing.T) {
	m := NewScoreboardModel(sampleSource(), 80, 24)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m = next.(ScoreboardModel)

	if !m.IsQuitting() {
		t.Error("q should quit the scoreboard")
	}
	if cmd == nil {
		t.Error("expected a quit command")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}
