package action

import "fmt"

type Kind int

const (
	SkipTurn Kind = iota + 1
	ReverseTurns
	DrawCards
	PickColor
)

// Action is one effect a played card has on turn order or hands.
// Amount is only meaningful for DrawCards.
type Action struct {
	Kind   Kind
	Amount int
}

func NewDrawCardsAction(amount int) Action {
	return Action{Kind: DrawCards, Amount: amount}
}

func NewReverseTurnsAction() Action {
	return Action{Kind: ReverseTurns}
}

func NewSkipTurnAction() Action {
	return Action{Kind: SkipTurn}
}

func NewPickColorAction() Action {
	return Action{Kind: PickColor}
}

func (a Action) String() string {
	switch a.Kind {
	case SkipTurn:
		return "skip"
	case ReverseTurns:
		return "reverse"
	case DrawCards:
		return fmt.Sprintf("draw %d", a.Amount)
	case PickColor:
		return "pick color"
	default:
		return "none"
	}
}

// DrawAmount sums the cards the victim of these actions has to draw.
func DrawAmount(actions []Action) int {
	amount := 0
	for _, a := range actions {
		if a.Kind == DrawCards {
			amount += a.Amount
		}
	}
	return amount
}

// Has reports whether any action is of the given kind.
func Has(actions []Action, kind Kind) bool {
	for _, a := range actions {
		if a.Kind == kind {
			return true
		}
	}
	return false
}
