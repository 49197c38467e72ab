package game_test

import (
	"testing"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
	"github.com/stretchr/testify/require"
)

func TestCards(t *testing.T) {
	pile := game.NewPile()
	pile.Add(card.NewNumberCard(color.Blue, 5))
	pile.Add(card.NewNumberCard(color.Green, 5))
	pile.Add(card.NewNumberCard(color.Green, 7))
	require.Equal(t, []card.Card{
		card.NewNumberCard(color.Blue, 5),
		card.NewNumberCard(color.Green, 5),
		card.NewNumberCard(color.Green, 7),
	}, pile.Cards())
	require.Equal(t, 3, pile.Len())
}

func TestTop(t *testing.T) {
	pile := game.NewPile()
	_, ok := pile.Top()
	require.False(t, ok)
	pile.Add(card.NewNumberCard(color.Blue, 5))
	pile.Add(card.NewNumberCard(color.Green, 5))
	pile.Add(card.NewNumberCard(color.Green, 7))
	top, ok := pile.Top()
	require.True(t, ok)
	require.Equal(t, card.NewNumberCard(color.Green, 7), top)
}

func TestReclaim(t *testing.T) {
	t.Run("keeps_the_top_card", func(t *testing.T) {
		pile := game.NewPile()
		pile.Add(card.NewNumberCard(color.Blue, 5))
		pile.Add(card.NewWildCard())
		pile.Add(card.NewNumberCard(color.Green, 7))
		require.Equal(t, 2, pile.Reclaimable(1))

		reclaimed := pile.Reclaim(1)
		require.Equal(t, []card.Card{
			card.NewNumberCard(color.Blue, 5),
			card.NewWildCard(),
		}, reclaimed)
		require.Equal(t, []card.Card{card.NewNumberCard(color.Green, 7)}, pile.Cards())
	})

	t.Run("returns_nothing_when_only_the_top_remains", func(t *testing.T) {
		pile := game.NewPile()
		pile.Add(card.NewNumberCard(color.Green, 7))
		require.Empty(t, pile.Reclaim(1))
		require.Equal(t, 0, pile.Reclaimable(1))
		require.Equal(t, 1, pile.Len())
	})
}
