package core

import "errors"

var (
	ErrExhausted        = errors.New("no unseen combinations left")
	ErrInvalidSelection = errors.New("invalid selection")
	ErrInvalidAnswer    = errors.New("answer must be a number or 'skip'")
	ErrEmptyDeck        = errors.New("deck is empty")
	ErrRoundOver        = errors.New("round is already over")
	ErrExit             = errors.New("exit requested")
)
