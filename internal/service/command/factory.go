package command

import (
	"github.com/sandevgo/fakenews/internal/core"
	"github.com/sandevgo/fakenews/internal/service/arithmetic"
	"github.com/sandevgo/fakenews/internal/service/headline"
	"github.com/sandevgo/fakenews/internal/service/horoscope"
)

// NewActivities returns the main menu entries in display order.
func NewActivities(
	headlines *headline.Service,
	horoscopes *horoscope.Service,
	problems *arithmetic.Service,
	deal Dealer,
) []core.Activity {
	return []core.Activity{
		NewHeadlineCommand(headlines),
		NewHoroscopeCommand(horoscopes),
		NewMathCommand(problems),
		NewBlackjackCommand(deal),
	}
}
