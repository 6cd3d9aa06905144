package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/barista/internal/fortune"
	"github.com/vovakirdan/barista/internal/storage"
)

func TestHistoryRows(t *testing.T) {
	rows := historyRows([]storage.PourEntry{{
		Stats:   fortune.PourStats{FillPercentage: 104.31, Spilled: true, TimeTaken: 4.17},
		Fortune: fortune.CoffeeFortune{Rating: 3, Title: "The Flood"},
	}})

	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	expected := []string{"1", "104.3%", "4.2s", "yes", "3/10", "The Flood"}
	for i, want := range expected {
		if rows[0][i] != want {
			t.Errorf("column %d = %q, expected %q", i, rows[0][i], want)
		}
	}
}

func TestHistoryWithoutStore(t *testing.T) {
	m := NewHistoryModel(nil, 100, 30)

	if !strings.Contains(m.View(), "journal is disabled") {
		t.Error("expected disabled message without a store")
	}
}

func TestHistoryToggle(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "pours.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	low := fortune.PourStats{FillPercentage: 30, TimeTaken: 1}
	high := fortune.PourStats{FillPercentage: 88, TimeTaken: 3}
	store.SavePour("", high, fortune.Result{Fortune: fortune.CoffeeFortune{Rating: 9, Title: "Gold"}, Source: fortune.SourceRemote})
	store.SavePour("", low, fortune.Result{Fortune: fortune.Offline(low), Source: fortune.SourceOffline})

	m := NewHistoryModel(store, 100, 30)
	if m.view != HistoryRecent || len(m.pours) != 2 || m.pours[0].Stats != low {
		t.Fatalf("recent view should list the newest pour first, got %+v", m.pours)
	}
	if !strings.Contains(m.View(), "RECENT POURS") {
		t.Error("missing recent title")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(HistoryModel)
	if m.view != HistoryBest || m.pours[0].Stats != high {
		t.Errorf("best view should list the highest rating first, got %+v", m.pours)
	}
	if !strings.Contains(m.View(), "BEST POURS") {
		t.Error("missing best title")
	}
	if m.summary.Pours != 2 || m.summary.BestRating != 9 {
		t.Errorf("unexpected summary %+v", m.summary)
	}
}
