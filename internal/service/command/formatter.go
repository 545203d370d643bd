package command

import (
	"fmt"
	"strings"

	"github.com/sandevgo/fakenews/internal/core"
	"github.com/sandevgo/fakenews/internal/service/arithmetic"
	"github.com/sandevgo/fakenews/internal/service/blackjack"
	"github.com/sandevgo/fakenews/internal/service/headline"
	"github.com/sandevgo/fakenews/internal/service/horoscope"
	"github.com/sandevgo/fakenews/internal/service/ui"
)

const separatorWidth = 60

type ResponseFormatter struct{}

func NewResponseFormatter() *ResponseFormatter {
	return &ResponseFormatter{}
}

func (f *ResponseFormatter) Separator() string {
	return strings.Repeat("-", separatorWidth) + "\n"
}

func (f *ResponseFormatter) Title(title string) string {
	return ui.HeadlineStyle.Render(title) + "\n"
}

func (f *ResponseFormatter) Info(message string) string {
	return ui.InfoStyle.Render(message) + "\n"
}

func (f *ResponseFormatter) Success(message string) string {
	return ui.SuccessStyle.Render(message) + "\n"
}

func (f *ResponseFormatter) Error(message string) string {
	return ui.ErrorStyle.Render("Error: "+message) + "\n"
}

func (f *ResponseFormatter) List(items []string) string {
	var sb strings.Builder
	for i, item := range items {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, item))
	}
	return sb.String()
}

func (f *ResponseFormatter) Menu(activities []core.Activity) string {
	items := make([]string, 0, len(activities)+1)
	for _, a := range activities {
		items = append(items, a.Description())
	}
	items = append(items, "Exit")
	return f.Combine("\n", f.Title("Main Menu"), f.List(items))
}

func (f *ResponseFormatter) Headline(h headline.Headline) string {
	return f.Combine(
		"\n",
		f.Separator(),
		h.Outlet+"\n",
		h.Dateline()+"\n",
		f.Title(h.Title),
		f.Separator(),
	)
}

func (f *ResponseFormatter) Horoscope(r horoscope.Reading) string {
	return f.Combine(
		"\n",
		f.Separator(),
		r.Date.Format(horoscope.DateLayout)+"\n",
		f.Title(r.Text()),
		f.Separator(),
	)
}

func (f *ResponseFormatter) Problem(p arithmetic.Problem) string {
	return f.Combine("\n", f.Title(fmt.Sprintf("What is %s?", p)))
}

func (f *ResponseFormatter) Verdict(p arithmetic.Problem, v arithmetic.Verdict) string {
	switch v {
	case arithmetic.VerdictCorrect:
		return f.Success("Correct!")
	case arithmetic.VerdictSkipped:
		return f.Info("Problem skipped.")
	default:
		return f.Info(fmt.Sprintf("Incorrect. The correct answer is %s.", arithmetic.FormatAnswer(p.Answer())))
	}
}

func (f *ResponseFormatter) Hand(label string, h blackjack.Hand, hideFirst bool) string {
	if hideFirst {
		return fmt.Sprintf("%s: %s\n", label, h.Render(true))
	}
	return fmt.Sprintf("%s: %s (%d)\n", label, h.Render(false), h.Value())
}

func (f *ResponseFormatter) Table(rd *blackjack.Round) string {
	return f.Combine(
		f.Hand("Dealer's hand", rd.Dealer, !rd.DealerRevealed()),
		f.Hand("Your hand", rd.Player, false),
	)
}

func (f *ResponseFormatter) Outcome(o blackjack.Outcome) string {
	switch o.Reason {
	case blackjack.ReasonNatural:
		return f.Success("Blackjack! You win!")
	case blackjack.ReasonPlayerBust:
		return f.Info("Bust! You went over 21. Dealer wins.")
	case blackjack.ReasonDealerBust:
		return f.Success("Dealer busts! You win!")
	case blackjack.ReasonTie:
		return f.Info("It's a tie!")
	}
	if o.Winner == blackjack.WinnerPlayer {
		return f.Success("You win!")
	}
	return f.Info("Dealer wins.")
}

func (f *ResponseFormatter) Exhausted(what string) string {
	return f.Info(fmt.Sprintf("\nNo more unique %s available. You've seen them all!", what))
}

func (f *ResponseFormatter) Combine(sections ...string) string {
	return strings.Join(sections, "")
}
