package game

import (
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/action"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/event"
)

// checkTurn rejects anything but the current player of a running game.
func (g *Game) checkTurn(player int, operation string) error {
	if player < 0 || player >= len(g.seats) {
		return consts.ErrorsInvalidArgument.Withf("player index %d out of range [0, %d)", player, len(g.seats))
	}
	if g.phase == GameOver {
		return consts.ErrorsInvalidStateTransition.Withf("cannot %s: the game is over", operation)
	}
	if current := g.cycler.Current(); player != current {
		return consts.ErrorsInvalidStateTransition.Withf("cannot %s: it is player %d's turn, not player %d's", operation, current, player)
	}
	return nil
}

func (g *Game) checkPhase(expected Phase, operation string) error {
	if g.phase != expected {
		return consts.ErrorsInvalidStateTransition.Withf("cannot %s while in phase %s", operation, g.phase)
	}
	return nil
}

// canPlay applies Playable, narrowed to stackable draw cards while a penalty is owed.
func (g *Game) canPlay(c card.Card) bool {
	top := g.TopCard()
	if g.pendingDraw > 0 {
		return stackable(c, top)
	}
	return Playable(c, top, g.currentColor)
}

// PlayableCards lists the cards player could legally play right now.
func (g *Game) PlayableCards(player int) []card.Card {
	if player < 0 || player >= len(g.seats) {
		return nil
	}
	hand := g.seats[player].hand
	if g.pendingDraw == 0 {
		return hand.PlayableCards(g.TopCard(), g.currentColor)
	}
	var playableCards []card.Card
	for _, c := range hand.Cards() {
		if g.canPlay(c) {
			playableCards = append(playableCards, c)
		}
	}
	return playableCards
}

// PlayCard plays the card at handIndex of player's hand and resolves its effects.
func (g *Game) PlayCard(player int, handIndex int) error {
	if err := g.checkTurn(player, "play a card"); err != nil {
		return err
	}
	if err := g.checkPhase(AwaitingPlay, "play a card"); err != nil {
		return err
	}

	s := g.seats[player]
	candidate, err := s.hand.At(handIndex)
	if err != nil {
		return err
	}
	if !g.canPlay(candidate) {
		if g.pendingDraw > 0 {
			return consts.ErrorsCardNotPlayable.Withf("%s cannot answer a pending draw of %d", candidate.Name(), g.pendingDraw)
		}
		return consts.ErrorsCardNotPlayable.Withf("%s cannot be played on %s with current color %s", candidate.Name(), g.TopCard().Name(), g.currentColor)
	}

	_, _ = s.hand.RemoveAt(handIndex)
	g.pile.Add(candidate)
	g.consecutivePasses = 0
	if !candidate.IsWild() {
		g.currentColor = candidate.Color
	}
	g.events.CardPlayed.Emit(event.CardPlayedPayload{PlayerIndex: player, PlayerName: s.name, Card: candidate})

	if s.hand.Empty() {
		g.finish(player)
		return nil
	}

	actions := candidate.Actions()
	if action.Has(actions, action.PickColor) {
		g.phase = AwaitingColorChoice
		g.pendingCard = &candidate
		return nil
	}
	g.resolveActions(actions)
	return nil
}

// ChooseColor settles the color of the wild just played and resolves the rest of its effects.
func (g *Game) ChooseColor(player int, chosen color.Color) error {
	if err := g.checkTurn(player, "choose a color"); err != nil {
		return err
	}
	if err := g.checkPhase(AwaitingColorChoice, "choose a color"); err != nil {
		return err
	}
	if !chosen.Chosen() {
		return consts.ErrorsInvalidArgument.Withf("color must be one of red, yellow, green or blue, got %s", chosen)
	}

	pendingCard := g.pendingCard
	g.currentColor = chosen
	g.phase = AwaitingPlay
	g.pendingCard = nil
	g.events.ColorPicked.Emit(event.ColorPickedPayload{PlayerIndex: player, PlayerName: g.seats[player].name, Color: chosen})

	if g.openingChoice {
		g.openingChoice = false
		return nil
	}

	var actions []action.Action
	if pendingCard != nil {
		for _, a := range pendingCard.Actions() {
			if a.Kind != action.PickColor {
				actions = append(actions, a)
			}
		}
	}
	g.resolveActions(actions)
	return nil
}

func (g *Game) resolveActions(actions []action.Action) {
	skip := action.Has(actions, action.SkipTurn)
	if action.Has(actions, action.ReverseTurns) {
		if len(g.seats) == 2 {
			skip = true
		} else {
			g.cycler.Reverse()
			g.events.TurnOrderReversed.Emit(event.TurnOrderReversedPayload{Direction: g.cycler.Direction()})
		}
	}
	stacked := false
	if penalty := action.DrawAmount(actions); penalty > 0 {
		if g.rules.StackDrawCards {
			g.pendingDraw += penalty
			stacked = true
		} else {
			g.giveCards(g.cycler.Peek(), penalty)
		}
	}
	if skip && !stacked {
		g.skipped(g.cycler.Next())
	}
	g.advance()
}

func (g *Game) advance() {
	g.cycler.Next()
	g.turn++
	g.hasDrawn = false
}

// DrawForTurn draws once for the current turn. An owed penalty is drawn in
// full and ends the turn. Otherwise one card is drawn: the player keeps the
// turn if it is playable and passes if it is not.
func (g *Game) DrawForTurn(player int) ([]card.Card, error) {
	if err := g.checkTurn(player, "draw"); err != nil {
		return nil, err
	}
	if err := g.checkPhase(AwaitingPlay, "draw"); err != nil {
		return nil, err
	}
	if g.hasDrawn {
		return nil, consts.ErrorsInvalidStateTransition.Withf("player %d already drew this turn, play or pass", player)
	}
	drawn, _ := g.drawForTurn(player)
	return drawn, nil
}

func (g *Game) drawForTurn(player int) (drawn []card.Card, keep bool) {
	if g.pendingDraw > 0 {
		penalty := g.pendingDraw
		g.pendingDraw = 0
		drawn = g.giveCards(player, penalty)
		g.advance()
		return drawn, false
	}

	drawn = g.giveCards(player, 1)
	if len(drawn) == 1 && g.canPlay(drawn[0]) {
		g.hasDrawn = true
		return drawn, true
	}
	g.pass(player)
	return drawn, false
}

// DrawCards draws count cards at once. An owed penalty must be drawn in full
// and ends the turn; any other draw leaves the player current.
func (g *Game) DrawCards(player int, count int) ([]card.Card, error) {
	if err := g.checkTurn(player, "draw"); err != nil {
		return nil, err
	}
	if err := g.checkPhase(AwaitingPlay, "draw"); err != nil {
		return nil, err
	}
	if count < 1 {
		return nil, consts.ErrorsInvalidArgument.Withf("count must be at least 1, got %d", count)
	}
	if g.pendingDraw > 0 && count != g.pendingDraw {
		return nil, consts.ErrorsInvalidArgument.Withf("a penalty of %d cards is owed, got count %d", g.pendingDraw, count)
	}
	if available := g.available(); available < count {
		return nil, consts.ErrorsNoCardsAvailable.Withf("only %d cards left to draw, %d requested", available, count)
	}
	if g.pendingDraw > 0 {
		drawn, _ := g.drawForTurn(player)
		return drawn, nil
	}
	drawn := g.giveCards(player, count)
	g.hasDrawn = true
	return drawn, nil
}

// Pass ends the turn of a player who already drew.
func (g *Game) Pass(player int) error {
	if err := g.checkTurn(player, "pass"); err != nil {
		return err
	}
	if err := g.checkPhase(AwaitingPlay, "pass"); err != nil {
		return err
	}
	if !g.hasDrawn {
		return consts.ErrorsInvalidStateTransition.Withf("player %d must draw before passing", player)
	}
	g.pass(player)
	return nil
}

func (g *Game) pass(player int) {
	g.consecutivePasses++
	g.events.PlayerPassed.Emit(event.PlayerPassedPayload{PlayerIndex: player, PlayerName: g.seats[player].name})
	if g.consecutivePasses >= len(g.seats) && g.available() == 0 {
		g.finish(g.lowestHand())
		return
	}
	g.advance()
}

// lowestHand picks the winner of a blocked game: the fewest points in hand,
// ties going to the lower seat.
func (g *Game) lowestHand() int {
	winner, lowest := 0, g.seats[0].hand.Points()
	for index, s := range g.seats[1:] {
		if points := s.hand.Points(); points < lowest {
			winner, lowest = index+1, points
		}
	}
	return winner
}

func (g *Game) finish(winner int) {
	g.phase = GameOver
	g.winner = winner
	g.pendingCard = nil
	g.openingChoice = false
	g.events.GameWon.Emit(event.GameWonPayload{
		PlayerIndex: winner,
		PlayerName:  g.seats[winner].name,
		Scores:      Score(g.hands(), winner),
	})
}

// AutoPlay takes the current turn for player using strategy.
func (g *Game) AutoPlay(player int, strategy Strategy) error {
	if err := g.checkTurn(player, "auto-play"); err != nil {
		return err
	}
	if g.phase == AwaitingColorChoice {
		return g.ChooseColor(player, g.pickColor(player, strategy))
	}

	s := g.seats[player]
	if playableCards := g.PlayableCards(player); len(playableCards) > 0 {
		selectedCard := strategy.Play(playableCards, g.stateFor(player))
		if !contains(playableCards, selectedCard) {
			selectedCard = playableCards[0]
		}
		return g.playAndPick(player, s.hand.IndexOf(selectedCard), strategy)
	}
	if g.hasDrawn {
		return g.Pass(player)
	}
	if _, keep := g.drawForTurn(player); keep {
		return g.playAndPick(player, s.hand.Size()-1, strategy)
	}
	return nil
}

func (g *Game) playAndPick(player int, handIndex int, strategy Strategy) error {
	if err := g.PlayCard(player, handIndex); err != nil {
		return err
	}
	if g.phase == AwaitingColorChoice {
		return g.ChooseColor(player, g.pickColor(player, strategy))
	}
	return nil
}

func (g *Game) pickColor(player int, strategy Strategy) color.Color {
	picked := strategy.PickColor(g.stateFor(player))
	if !picked.Chosen() {
		return color.Red
	}
	return picked
}
