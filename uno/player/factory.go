package player

import (
	"strings"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/game"
)

// Names lists the strategies New understands.
var Names = []string{Naive, Good, Random}

// New builds a fresh strategy for one game. An empty name picks the naive one.
func New(name string, seed *int64) (game.Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", Naive:
		return NewNaivePlayer(), nil
	case Good:
		return NewGoodPlayer(), nil
	case Random:
		return NewRandomPlayer(seed), nil
	default:
		return nil, consts.ErrorsInvalidArgument.Withf("unknown strategy '%s', expected one of %s", name, strings.Join(Names, ", "))
	}
}
