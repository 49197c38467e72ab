package card

import (
	"fmt"

	corejson "github.com/ratel-online/core/util/json"
	"github.com/ratel-online/uno/uno/card/action"
	"github.com/ratel-online/uno/uno/card/color"
)

// Card is an immutable (color, rank) pair. Wild ranks always carry color.Wild.
type Card struct {
	Color color.Color `json:"color"`
	Rank  Rank        `json:"rank"`
}

func NewNumberCard(cardColor color.Color, number int) Card {
	return Card{Color: cardColor, Rank: Rank(number)}
}

func NewSkipCard(cardColor color.Color) Card {
	return Card{Color: cardColor, Rank: Skip}
}

func NewReverseCard(cardColor color.Color) Card {
	return Card{Color: cardColor, Rank: Reverse}
}

func NewDrawTwoCard(cardColor color.Color) Card {
	return Card{Color: cardColor, Rank: DrawTwo}
}

func NewWildCard() Card {
	return Card{Color: color.Wild, Rank: Wild}
}

func NewWildDrawFourCard() Card {
	return Card{Color: color.Wild, Rank: WildDrawFour}
}

func (c Card) IsWild() bool {
	return c.Rank.IsWild()
}

func (c Card) Actions() []action.Action {
	switch c.Rank {
	case Skip:
		return []action.Action{action.NewSkipTurnAction()}
	case Reverse:
		return []action.Action{action.NewReverseTurnsAction()}
	case DrawTwo:
		return []action.Action{
			action.NewDrawCardsAction(2),
			action.NewSkipTurnAction(),
		}
	case Wild:
		return []action.Action{action.NewPickColorAction()}
	case WildDrawFour:
		return []action.Action{
			action.NewPickColorAction(),
			action.NewDrawCardsAction(4),
			action.NewSkipTurnAction(),
		}
	default:
		return []action.Action{}
	}
}

// Points is the card's value when counted in a loser's hand.
func (c Card) Points() int {
	switch {
	case c.Rank.IsNumber():
		return int(c.Rank)
	case c.Rank.IsWild():
		return 50
	default:
		return 20
	}
}

func (c Card) Validate() error {
	if !c.Rank.Valid() {
		return fmt.Errorf("invalid rank %d", int(c.Rank))
	}
	if c.Rank.IsWild() != (c.Color == color.Wild) {
		return fmt.Errorf("card %s has an impossible color", c.Name())
	}
	if !c.Color.Valid() {
		return fmt.Errorf("invalid color %d", int(c.Color))
	}
	return nil
}

// Name renders the card without terminal colors, e.g. "red 7" or "wild_draw_four".
func (c Card) Name() string {
	if c.IsWild() {
		return c.Rank.String()
	}
	return fmt.Sprintf("%s %s", c.Color.Name(), c.Rank)
}

func (c Card) String() string {
	switch c.Rank {
	case Skip:
		return c.Color.Paint("(/)") + fmt.Sprintf("(%s)", c.Color.Name())
	case Reverse:
		return c.Color.Paint("<=>") + fmt.Sprintf("(%s)", c.Color.Name())
	case DrawTwo:
		return c.Color.Paint("+2!") + fmt.Sprintf("(%s)", c.Color.Name())
	case Wild:
		return c.Color.Paint("(*)")
	case WildDrawFour:
		return c.Color.Paint("+4!")
	default:
		return c.Color.Paintf("[%d]", int(c.Rank)) + fmt.Sprintf("(%s)", c.Color.Name())
	}
}

func (c *Card) UnmarshalJSON(data []byte) error {
	type plain Card
	var decoded plain
	if err := corejson.Unmarshal(data, &decoded); err != nil {
		return err
	}
	parsed := Card(decoded)
	if err := parsed.Validate(); err != nil {
		return err
	}
	*c = parsed
	return nil
}
