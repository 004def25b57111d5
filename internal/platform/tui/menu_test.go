package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/chubbycorn/internal/games/chubbycorn"
)

func menuSend(m MenuModel, msg tea.Msg) MenuModel {
	next, _ := m.Update(msg)
	return next.(MenuModel)
}

func TestMenuListsModes(t *testing.T) {
	m := NewMenuModel(nil, testRuntime())

	view := m.View()
	for _, title := range []string{"Chubbycorn", "Chubbycorn (Classic)"} {
		if !strings.Contains(view, title) {
			t.Errorf("menu view missing %q", title)
		}
	}
}

func TestMenuDifficultyCycles(t *testing.T) {
	m := NewMenuModel(nil, testRuntime())
	if m.Difficulty() != "normal" {
		t.Fatalf("Difficulty() = %q, expected normal", m.Difficulty())
	}

	m = menuSend(m, tea.KeyMsg{Type: tea.KeyRight})
	if m.Difficulty() != "easy" {
		t.Errorf("after right Difficulty() = %q, expected easy", m.Difficulty())
	}

	m = menuSend(m, tea.KeyMsg{Type: tea.KeyLeft})
	m = menuSend(m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.Difficulty() != "fixed" {
		t.Errorf("after wrapping left Difficulty() = %q, expected fixed", m.Difficulty())
	}
}

func TestMenuResult(t *testing.T) {
	tests := []struct {
		name   string
		keys   []tea.KeyMsg
		gameID string
		scores bool
		quit   bool
	}{
		{"select first", []tea.KeyMsg{{Type: tea.KeyEnter}}, chubbycorn.IDCanonical, false, false},
		{"select second", []tea.KeyMsg{{Type: tea.KeyDown}, {Type: tea.KeyEnter}}, chubbycorn.IDClassic, false, false},
		{"scoreboard", []tea.KeyMsg{{Type: tea.KeyTab}}, "", true, false},
		{"quit", []tea.KeyMsg{runeKey('q')}, "", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMenuModel(nil, testRuntime())
			for _, k := range tt.keys {
				m = menuSend(m, k)
			}

			r := m.result()
			if r.GameID != tt.gameID || r.WantsScoreboard != tt.scores || r.Quit != tt.quit {
				t.Errorf("result() = %+v, expected game %q scores %v quit %v", r, tt.gameID, tt.scores, tt.quit)
			}
		})
	}
}

func TestSessionModelFlow(t *testing.T) {
	m := NewSessionModel(nil, testRuntime(), "bob", nil)

	step := func(msg tea.Msg) {
		t.Helper()
		next, _ := m.Update(msg)
		m = next.(SessionModel)
	}

	step(tea.KeyMsg{Type: tea.KeyRight}) // easy
	step(tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenGame {
		t.Fatalf("screen = %v after select, expected game", m.screen)
	}

	step(TickMsg{})
	if got := m.game.gameState.Lives; got != 5 {
		t.Errorf("Lives = %d, expected 5 on easy", got)
	}

	// Back from the title screen returns to the menu without quitting
	step(runeKey('b'))
	if m.screen != screenMenu || m.quitting {
		t.Errorf("screen = %v quitting = %v, expected menu", m.screen, m.quitting)
	}

	step(tea.KeyMsg{Type: tea.KeyTab})
	if m.screen != screenScores {
		t.Fatalf("screen = %v after tab, expected scores", m.screen)
	}
	if !strings.Contains(m.View(), "HIGH SCORES") {
		t.Error("scoreboard view missing title")
	}

	step(tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu {
		t.Errorf("screen = %v after esc, expected menu", m.screen)
	}

	step(runeKey('q'))
	if !m.quitting {
		t.Error("q in the menu did not quit the session")
	}
}
