package game

import (
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

type Phase string

const (
	AwaitingPlay        Phase = "awaiting_play"
	AwaitingColorChoice Phase = "awaiting_color_choice"
	GameOver            Phase = "game_over"
)

type PlayerInfo struct {
	Index    int    `json:"index"`
	Name     string `json:"name"`
	HandSize int    `json:"hand_size"`
}

// Snapshot is a deep copy of the full game state. Mutating it never
// affects the game it was taken from.
type Snapshot struct {
	NumPlayers        int           `json:"num_players"`
	Players           []PlayerInfo  `json:"players"`
	Hands             [][]card.Card `json:"hands"`
	DiscardTop        card.Card     `json:"discard_top"`
	DiscardCount      int           `json:"discard_count"`
	DrawPileCount     int           `json:"draw_pile_count"`
	CurrentPlayer     int           `json:"current_player"`
	Direction         int           `json:"direction"`
	CurrentColor      color.Color   `json:"current_color"`
	PendingDraw       int           `json:"pending_draw"`
	Phase             Phase         `json:"phase"`
	PendingCard       *card.Card    `json:"pending_card,omitempty"`
	Winner            *int          `json:"winner"`
	Turn              int           `json:"turn"`
	HasDrawn          bool          `json:"has_drawn"`
	ConsecutivePasses int           `json:"consecutive_passes"`
	HouseRules        HouseRules    `json:"house_rules"`
}

// State is what a strategy sees when deciding: only the acting player's hand
// is exposed.
type State struct {
	TopCard           card.Card
	CurrentColor      color.Color
	PendingDraw       int
	CurrentPlayer     int
	CurrentPlayerHand []card.Card
	PlayerSequence    []string
	PlayerHandCounts  []int
	Direction         int
}
