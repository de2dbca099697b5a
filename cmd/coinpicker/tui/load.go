package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// CoinLoader loads the coin list. Load never fails; an unavailable source
// yields an empty list.
type CoinLoader interface {
	Load(ctx context.Context) []string
}

// LoadCoins returns a command that runs one load and reports it as a
// CoinsLoadedMsg tagged with seq.
func LoadCoins(ctx context.Context, loader CoinLoader, seq int) tea.Cmd {
	return func() tea.Msg {
		return CoinsLoadedMsg{Items: loader.Load(ctx), Seq: seq}
	}
}
