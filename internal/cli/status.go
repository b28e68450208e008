package cli

import (
	"fmt"
	"time"

	"github.com/redchainhq/redchain/internal/constants"
	"github.com/redchainhq/redchain/internal/game"
)

type StatusCmd struct{}

func (c *StatusCmd) Run(ctx *Context) error {
	store, err := ctx.Game()
	if err != nil {
		return err
	}
	state := store.State()
	accent := AccentStyle(state)

	fmt.Println(accent.Render("REDCHAIN"))
	fmt.Println()
	fmt.Printf("Rank:   %s\n", FormatRank(state.Stats.RankIndex))
	fmt.Printf("Points: %d\n", state.Stats.Points)

	// XP toward the next rank, flat at the top of the ladder.
	if state.Stats.RankIndex < len(constants.Ranks)-1 {
		into := state.Stats.TotalXP % constants.XPPerRank
		fmt.Printf("XP:     %d (%d/%d to %s)\n",
			state.Stats.TotalXP, into, constants.XPPerRank, constants.Ranks[state.Stats.RankIndex+1])
	} else {
		fmt.Printf("XP:     %d (max rank)\n", state.Stats.TotalXP)
	}

	now := time.Now()
	fmt.Printf("Week:   %.0f%% complete\n", game.WeeklyCompletionRate(state, now))
	fmt.Println()

	if len(state.Habits) == 0 {
		fmt.Println("No habits yet. Add one with 'redchain habit add'.")
		return nil
	}

	today := now.Format(constants.DateFormat)
	for _, h := range state.Habits {
		mark := "[ ]"
		if h.CompletedOn(today) {
			mark = accent.Render("[x]")
		}
		fmt.Printf("%s %-30s %s\n", mark, h.Title, StreakLabel(game.Streak(h.CompletedDays, now)))
	}
	return nil
}

type QuoteCmd struct{}

func (c *QuoteCmd) Run(ctx *Context) error {
	store, err := ctx.Game()
	if err != nil {
		return err
	}
	accent := AccentStyle(store.State())
	fmt.Println(accent.Render(game.DailyQuote(time.Now())))
	return nil
}
