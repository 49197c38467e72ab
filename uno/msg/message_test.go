package msg_test

import (
	"testing"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/msg"
	"github.com/stretchr/testify/require"
)

func TestMessageWriter(t *testing.T) {
	m := msg.Message
	require.Equal(t, "First card is red 7\n", m.FirstCardPlayed(card.NewNumberCard(color.Red, 7)))
	require.Equal(t, "Jinx drew a card!\n", m.PlayerDrewCards("Jinx", []card.Card{card.NewWildCard()}))
	require.Equal(t, "Jinx drew 4 cards!\n", m.PlayerDrewCards("Jinx", make([]card.Card, 4)))
	require.Equal(t, "Zoe played wild_draw_four!\n", m.PlayerPlayedCard("Zoe", card.NewWildDrawFourCard()))
	require.Equal(t, "Zoe picked color blue!\n", m.PlayerPickedColor("Zoe", color.Blue))
	require.Equal(t, "Lulu's turn skipped!\n", m.PlayerTurnSkipped("Lulu"))
	require.Equal(t, "Lulu wins with 55 points!\n", m.WinnerFound("Lulu", 55))
	require.Equal(t, "Game g1 started with Annie, Braum and Zoe\n", m.GameCreated("g1", []string{"Annie", "Braum", "Zoe"}))
}

func TestJoin(t *testing.T) {
	require.Equal(t, "", msg.Join(nil))
	require.Equal(t, "Annie", msg.Join([]string{"Annie"}))
	require.Equal(t, "Annie and Braum", msg.Join([]string{"Annie", "Braum"}))
}

func TestLine(t *testing.T) {
	require.Equal(t, "Zoe passed!", msg.Line(msg.Message.PlayerPassed("Zoe")))
	require.Equal(t, "Turn order has been reversed, play goes to the left!", msg.Line(msg.Message.TurnOrderReversed(-1)))
}
