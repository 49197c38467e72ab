package player

import (
	"math/rand"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
)

const Random = "random"

type randomPlayer struct {
	basicPlayer
	rng *rand.Rand
}

// NewRandomPlayer picks cards and colors at random. A seed makes it repeatable.
func NewRandomPlayer(seed *int64) game.Strategy {
	return &randomPlayer{basicPlayer: basicPlayer{name: Random}, rng: game.NewRand(seed)}
}

func (p *randomPlayer) PickColor(gameState game.State) color.Color {
	return color.All[p.rng.Intn(len(color.All))]
}

func (p *randomPlayer) Play(playableCards []card.Card, gameState game.State) card.Card {
	return playableCards[p.rng.Intn(len(playableCards))]
}
