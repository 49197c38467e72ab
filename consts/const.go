package consts

import (
	"fmt"
	"time"
)

const (
	MinPlayers     = 2
	MaxPlayers     = 10
	CardsPerPlayer = 7
	DeckSize       = 108

	DefaultStrategy = "naive"
	DefaultAddr     = ":9999"

	HistoryTimeout = 2 * time.Second
)

// Error kinds reported to callers.
const (
	KindGameNotFound           = "GameNotFoundError"
	KindInvalidStateTransition = "InvalidStateTransitionError"
	KindCardNotPlayable        = "CardNotPlayableError"
	KindNoCardsAvailable       = "NoCardsAvailableError"
	KindInvalidArgument        = "InvalidArgumentError"
)

type Error struct {
	Code int
	Kind string
	Msg  string
}

func (e Error) Error() string {
	return e.Msg
}

// Is matches any error of the same kind, whatever its detail message.
func (e Error) Is(target error) bool {
	t, ok := target.(Error)
	return ok && t.Code == e.Code
}

// Withf returns a copy of e carrying a detailed message.
func (e Error) Withf(format string, args ...interface{}) Error {
	e.Msg = fmt.Sprintf(format, args...)
	return e
}

func NewErr(code int, kind string, msg string) Error {
	return Error{Code: code, Kind: kind, Msg: msg}
}

var (
	ErrorsGameNotFound           = NewErr(1, KindGameNotFound, "Game not found. ")
	ErrorsInvalidStateTransition = NewErr(2, KindInvalidStateTransition, "Invalid state transition. ")
	ErrorsCardNotPlayable        = NewErr(3, KindCardNotPlayable, "Card not playable. ")
	ErrorsNoCardsAvailable       = NewErr(4, KindNoCardsAvailable, "No cards available. ")
	ErrorsInvalidArgument        = NewErr(5, KindInvalidArgument, "Invalid argument. ")
)
