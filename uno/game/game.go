package game

import (
	"math/rand"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/event"
)

type Options struct {
	Players int
	// Seed makes the shuffle and seat names reproducible. Nil seeds from the clock.
	Seed *int64
	// Names overrides seat names by index. Missing or blank entries get a bot name.
	Names      []string
	HouseRules HouseRules
	// Deck replaces the shuffled deck with a fixed order. It must hold exactly
	// the 108 standard cards.
	Deck   []card.Card
	Events *event.Bus
}

type Game struct {
	seats  []*seat
	cycler *Cycler
	deck   *Deck
	pile   *Pile
	rng    *rand.Rand
	rules  HouseRules
	events *event.Bus

	currentColor      color.Color
	pendingDraw       int
	phase             Phase
	pendingCard       *card.Card
	openingChoice     bool
	winner            int
	turn              int
	hasDrawn          bool
	consecutivePasses int
}

// New deals a fresh game and flips the first card.
func New(opts Options) (*Game, error) {
	if opts.Players < consts.MinPlayers || opts.Players > consts.MaxPlayers {
		return nil, consts.ErrorsInvalidArgument.Withf("num_players must be between %d and %d, got %d", consts.MinPlayers, consts.MaxPlayers, opts.Players)
	}
	if len(opts.Names) > opts.Players {
		return nil, consts.ErrorsInvalidArgument.Withf("%d names given for %d players", len(opts.Names), opts.Players)
	}

	rng := NewRand(opts.Seed)
	cards := opts.Deck
	if cards == nil {
		cards = BuildStandardDeck()
		shuffleCards(cards, rng)
	} else if !isStandardDeck(cards) {
		return nil, consts.ErrorsInvalidArgument.Withf("deck must contain exactly the %d standard cards", consts.DeckSize)
	}

	events := opts.Events
	if events == nil {
		events = event.NewBus()
	}

	g := &Game{
		seats:        newSeats(seatNames(opts.Players, opts.Names, rng)),
		cycler:       NewCycler(opts.Players, 0),
		deck:         NewDeck(cards),
		pile:         NewPile(),
		rng:          rng,
		rules:        opts.HouseRules,
		events:       events,
		currentColor: color.Wild,
		phase:        AwaitingPlay,
		winner:       -1,
	}
	g.dealStartingCards()
	g.playFirstCard()
	return g, nil
}

func isStandardDeck(cards []card.Card) bool {
	if len(cards) != consts.DeckSize {
		return false
	}
	counts := make(map[card.Card]int)
	for _, c := range BuildStandardDeck() {
		counts[c]++
	}
	for _, c := range cards {
		counts[c]--
		if counts[c] < 0 {
			return false
		}
	}
	return true
}

func (g *Game) dealStartingCards() {
	for _, s := range g.seats {
		hand, _ := g.deck.Draw(consts.CardsPerPlayer)
		s.hand.AddCards(hand)
	}
}

// playFirstCard flips cards until one may open the pile. Without
// FirstCardEffects only number cards open; WildDrawFour never does.
// Rejected cards go to the bottom of the deck.
func (g *Game) playFirstCard() {
	for {
		firstCard, _ := g.deck.DrawOne()
		if firstCard.Rank == card.WildDrawFour || (!firstCard.Rank.IsNumber() && !g.rules.FirstCardEffects) {
			g.deck.PutBottom(firstCard)
			continue
		}
		g.pile.Add(firstCard)
		g.events.FirstCardPlayed.Emit(event.FirstCardPlayedPayload{Card: firstCard})
		g.applyFirstCard(firstCard)
		return
	}
}

// applyFirstCard resolves an opening card against the first player without
// counting a turn.
func (g *Game) applyFirstCard(firstCard card.Card) {
	if !firstCard.IsWild() {
		g.currentColor = firstCard.Color
	}
	first := g.cycler.Current()
	switch firstCard.Rank {
	case card.Skip:
		g.skipCurrent()
	case card.Reverse:
		if len(g.seats) == 2 {
			g.skipCurrent()
			return
		}
		g.cycler.Reverse()
		g.events.TurnOrderReversed.Emit(event.TurnOrderReversedPayload{Direction: g.cycler.Direction()})
	case card.DrawTwo:
		if g.rules.StackDrawCards {
			g.pendingDraw = 2
			return
		}
		g.giveCards(first, 2)
		g.skipCurrent()
	case card.Wild:
		g.phase = AwaitingColorChoice
		g.pendingCard = &firstCard
		g.openingChoice = true
	}
}

// skipCurrent moves past the current player without giving them a turn.
func (g *Game) skipCurrent() {
	skipped := g.cycler.Current()
	g.cycler.Next()
	g.skipped(skipped)
}

func (g *Game) skipped(player int) {
	g.events.TurnSkipped.Emit(event.TurnSkippedPayload{PlayerIndex: player, PlayerName: g.seats[player].name})
}

// available counts the cards a draw could reach, reshuffles included.
func (g *Game) available() int {
	return g.deck.Len() + g.pile.Reclaimable(1)
}

// take draws up to amount cards, reshuffling the discard pile under the
// deck whenever it runs out. It returns fewer cards only when both are spent.
func (g *Game) take(amount int) []card.Card {
	drawn := make([]card.Card, 0, amount)
	for len(drawn) < amount {
		if g.deck.Len() == 0 {
			reclaimed, err := ReshuffleFromDiscard(g.pile, 1, g.rng)
			if err != nil {
				break
			}
			g.deck.PutBottom(reclaimed...)
		}
		want := amount - len(drawn)
		if deckSize := g.deck.Len(); want > deckSize {
			want = deckSize
		}
		cards, _ := g.deck.Draw(want)
		drawn = append(drawn, cards...)
	}
	return drawn
}

func (g *Game) giveCards(player int, amount int) []card.Card {
	drawn := g.take(amount)
	if len(drawn) == 0 {
		return drawn
	}
	s := g.seats[player]
	s.hand.AddCards(drawn)
	g.events.CardsDrawn.Emit(event.CardsDrawnPayload{PlayerIndex: player, PlayerName: s.name, Cards: drawn})
	return drawn
}

func (g *Game) Events() *event.Bus {
	return g.events
}

func (g *Game) Phase() Phase {
	return g.phase
}

func (g *Game) CurrentPlayer() int {
	return g.cycler.Current()
}

func (g *Game) NumPlayers() int {
	return len(g.seats)
}

func (g *Game) PlayerName(player int) string {
	if player < 0 || player >= len(g.seats) {
		return ""
	}
	return g.seats[player].name
}

// Winner returns the winning seat once the game is over.
func (g *Game) Winner() (int, bool) {
	return g.winner, g.winner >= 0
}

func (g *Game) Hand(player int) []card.Card {
	if player < 0 || player >= len(g.seats) {
		return nil
	}
	return g.seats[player].hand.Cards()
}

func (g *Game) TopCard() card.Card {
	top, _ := g.pile.Top()
	return top
}

func (g *Game) CurrentColor() color.Color {
	return g.currentColor
}

func (g *Game) PendingDraw() int {
	return g.pendingDraw
}

func (g *Game) Turn() int {
	return g.turn
}

func (g *Game) HouseRules() HouseRules {
	return g.rules
}

// CardCount totals the cards across deck, pile and hands. It is always 108.
func (g *Game) CardCount() int {
	total := g.deck.Len() + g.pile.Len()
	for _, s := range g.seats {
		total += s.hand.Size()
	}
	return total
}

func (g *Game) hands() [][]card.Card {
	hands := make([][]card.Card, 0, len(g.seats))
	for _, s := range g.seats {
		hands = append(hands, s.hand.Cards())
	}
	return hands
}

// Scores is only available once the game is over.
func (g *Game) Scores() (map[int]int, error) {
	if g.phase != GameOver {
		return nil, consts.ErrorsInvalidStateTransition.Withf("scores are available once the game is over, phase is %s", g.phase)
	}
	return Score(g.hands(), g.winner), nil
}

func (g *Game) Snapshot() Snapshot {
	players := make([]PlayerInfo, 0, len(g.seats))
	for index, s := range g.seats {
		players = append(players, PlayerInfo{Index: index, Name: s.name, HandSize: s.hand.Size()})
	}

	snapshot := Snapshot{
		NumPlayers:        len(g.seats),
		Players:           players,
		Hands:             g.hands(),
		DiscardTop:        g.TopCard(),
		DiscardCount:      g.pile.Len(),
		DrawPileCount:     g.deck.Len(),
		CurrentPlayer:     g.cycler.Current(),
		Direction:         g.cycler.Direction(),
		CurrentColor:      g.currentColor,
		PendingDraw:       g.pendingDraw,
		Phase:             g.phase,
		Turn:              g.turn,
		HasDrawn:          g.hasDrawn,
		ConsecutivePasses: g.consecutivePasses,
		HouseRules:        g.rules,
	}
	if g.pendingCard != nil {
		pendingCard := *g.pendingCard
		snapshot.PendingCard = &pendingCard
	}
	if g.winner >= 0 {
		winner := g.winner
		snapshot.Winner = &winner
	}
	return snapshot
}

// stateFor builds the strategy view for player.
func (g *Game) stateFor(player int) State {
	playerSequence := make([]string, 0, len(g.seats))
	playerHandCounts := make([]int, 0, len(g.seats))
	g.cycler.ForEach(func(index int) {
		playerSequence = append(playerSequence, g.seats[index].name)
		playerHandCounts = append(playerHandCounts, g.seats[index].hand.Size())
	})

	return State{
		TopCard:           g.TopCard(),
		CurrentColor:      g.currentColor,
		PendingDraw:       g.pendingDraw,
		CurrentPlayer:     player,
		CurrentPlayerHand: g.seats[player].hand.Cards(),
		PlayerSequence:    playerSequence,
		PlayerHandCounts:  playerHandCounts,
		Direction:         g.cycler.Direction(),
	}
}
