package msg

import (
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

var Message = MessageWriter{}

// MessageWriter renders game events as plain one-line narration.
type MessageWriter struct{}

func (m MessageWriter) GameCreated(gameID string, playerNames []string) string {
	return Sprintfln("Game %s started with %s", gameID, Join(playerNames))
}

func (m MessageWriter) FirstCardPlayed(c card.Card) string {
	return Sprintfln("First card is %s", c.Name())
}

func (m MessageWriter) PlayerDrewCards(playerName string, cards []card.Card) string {
	if len(cards) == 1 {
		return Sprintfln("%s drew a card!", playerName)
	}
	return Sprintfln("%s drew %d cards!", playerName, len(cards))
}

func (m MessageWriter) PlayerPassed(playerName string) string {
	return Sprintfln("%s passed!", playerName)
}

func (m MessageWriter) PlayerPickedColor(playerName string, c color.Color) string {
	return Sprintfln("%s picked color %s!", playerName, c.Name())
}

func (m MessageWriter) PlayerPlayedCard(playerName string, c card.Card) string {
	return Sprintfln("%s played %s!", playerName, c.Name())
}

func (m MessageWriter) PlayerTurnSkipped(playerName string) string {
	return Sprintfln("%s's turn skipped!", playerName)
}

func (m MessageWriter) TurnOrderReversed(direction int) string {
	if direction < 0 {
		return Sprintln("Turn order has been reversed, play goes to the left!")
	}
	return Sprintln("Turn order has been reversed, play goes to the right!")
}

func (m MessageWriter) Welcome() string {
	return Sprintfln(
		"WELCOME TO %s%s%s",
		color.Red.Paint("U"),
		color.Yellow.Paint("N"),
		color.Blue.Paint("O"),
	)
}

func (m MessageWriter) WinnerFound(playerName string, score int) string {
	return Sprintfln("%s wins with %d points!", playerName, score)
}
