package tui

// --- Inter-component messages ---

// CoinsLoadedMsg carries the result of a coin list load. Seq identifies the
// load request; results of superseded requests are discarded.
type CoinsLoadedMsg struct {
	Items []string
	Seq   int
}

// CoinChosenMsg is sent when the user picks the coin under the cursor.
type CoinChosenMsg struct{ Symbol string }

// FavoriteToggledMsg is sent after a coin's favorite state flips.
type FavoriteToggledMsg struct {
	Symbol   string
	Favorite bool
}

// DropdownToggledMsg is sent when the panel opens or closes.
type DropdownToggledMsg struct{ Open bool }
