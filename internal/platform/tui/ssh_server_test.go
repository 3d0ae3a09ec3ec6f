package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/nightshift/internal/core"
)

func sessionUpdate(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update() returned %T", next)
	}
	return sm, cmd
}

func TestSessionGameRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	m := NewSessionModel(newTestStore(t), core.DefaultConfig(), "tester")

	m, cmd := sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenGame || cmd == nil {
		t.Fatalf("enter on the first item should start a game (screen %d)", m.screen)
	}

	m, _ = sessionUpdate(t, m, TickMsg(time.Now()))
	m, _ = sessionUpdate(t, m, runeKey('p'))
	m, _ = sessionUpdate(t, m, TickMsg(time.Now()))
	m, _ = sessionUpdate(t, m, runeKey('b'))
	if m.screen != screenMenu {
		t.Fatalf("back from a paused game should return to the menu (screen %d)", m.screen)
	}
	if m.quitting {
		t.Error("returning to the menu should not end the session")
	}
}

func TestSessionScoreboardRoundTrip(t *testing.T) {
	m := NewSessionModel(nil, core.DefaultConfig(), "tester")

	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.screen != screenScoreboard {
		t.Fatalf("tab should open the scoreboard (screen %d)", m.screen)
	}

	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu || m.quitting {
		t.Errorf("esc should return to the menu (screen %d, quitting %v)", m.screen, m.quitting)
	}
}

func TestSessionFilterLab(t *testing.T) {
	m := NewSessionModel(nil, core.DefaultConfig(), "tester")
	for range m.menu.items {
		m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}

	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenFilterLab {
		t.Fatalf("last menu item should open the filter lab (screen %d)", m.screen)
	}
	if m.View() == "" {
		t.Error("filter lab should render")
	}

	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenMenu {
		t.Errorf("enter should close the lab (screen %d)", m.screen)
	}
}

func TestSessionQuit(t *testing.T) {
	m := NewSessionModel(nil, core.DefaultConfig(), "tester")
	m, cmd := sessionUpdate(t, m, runeKey('q'))
	if !m.quitting || cmd == nil {
		t.Error("q should end the session")
	}
	if m.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestDefaultSSHServerConfig(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	if cfg.Address != ":23234" || cfg.TickRate != 60 || cfg.IdleTimeout != 30*time.Minute {
		t.Errorf("DefaultSSHServerConfig() = %+v", cfg)
	}
}
