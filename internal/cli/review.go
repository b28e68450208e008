package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redchainhq/redchain/internal/coach"
	"github.com/redchainhq/redchain/internal/game"
	"github.com/redchainhq/redchain/internal/keyring"
	"github.com/redchainhq/redchain/internal/logger"
)

type ReviewCmd struct {
	NoCoach bool `help:"Skip the AI debrief."`
}

func (c *ReviewCmd) Run(ctx *Context) error {
	store, err := ctx.Game()
	if err != nil {
		return err
	}
	state := store.State()
	accent := AccentStyle(state)
	now := time.Now()

	series := game.WeekSeries(state, now)
	rate := game.WeeklyCompletionRate(state, now)
	medal := game.MedalFor(rate)

	fmt.Println(accent.Render("WEEKLY REVIEW"))
	fmt.Println()

	habitCount := len(state.Habits)
	for _, day := range series {
		bar := ""
		if habitCount > 0 {
			width := day.Count * 20 / habitCount
			bar = accent.Render(strings.Repeat("█", width))
		}
		fmt.Printf("%s  %-20s %d/%d\n", day.Day, bar, day.Count, habitCount)
	}

	fmt.Println()
	fmt.Printf("Completion: %.0f%%\n", rate)
	fmt.Printf("Medal:      %s\n", accent.Render(string(medal)))

	if c.NoCoach {
		return nil
	}

	apiKey, err := keyring.GetAPIKey()
	if err != nil {
		// No key is a normal state, the debrief just falls back.
		logger.Debug("no coach API key available", "error", err)
	}

	titles := make([]string, 0, habitCount)
	for _, h := range state.Habits {
		titles = append(titles, h.Title)
	}

	reqCtx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()
	debrief := coach.New(apiKey).Debrief(reqCtx, series, rate, titles)

	fmt.Println()
	fmt.Println(accent.Render("COACH"))
	fmt.Println(debrief)
	return nil
}
