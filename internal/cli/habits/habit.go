package habits

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/redchainhq/redchain/internal/cli"
	"github.com/redchainhq/redchain/internal/constants"
	"github.com/redchainhq/redchain/internal/game"
	"github.com/redchainhq/redchain/internal/utils"
)

type HabitCmd struct {
	Add    HabitAddCmd    `cmd:"" help:"Add a new habit."`
	List   HabitListCmd   `cmd:"" help:"List habits."`
	Done   HabitDoneCmd   `cmd:"" help:"Mark a habit done for today, with photo proof."`
	Log    HabitLogCmd    `cmd:"" help:"Show habit log (ASCII history)."`
	Delete HabitDeleteCmd `cmd:"" help:"Delete a habit and its proofs."`
}

type HabitAddCmd struct {
	Title string `arg:"" help:"Habit title."`
}

func (c *HabitAddCmd) Run(ctx *cli.Context) error {
	store, err := ctx.Game()
	if err != nil {
		return err
	}

	habit, err := store.AddHabit(c.Title, time.Now())
	if err != nil {
		return err
	}
	fmt.Printf("Added habit: %s (ID: %s)\n", habit.Title, habit.ID)
	return nil
}

type HabitListCmd struct{}

func (c *HabitListCmd) Run(ctx *cli.Context) error {
	store, err := ctx.Game()
	if err != nil {
		return err
	}
	state := store.State()

	if len(state.Habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	now := time.Now()
	today := utils.DateKey(now)
	for _, h := range state.Habits {
		mark := "[ ]"
		if h.CompletedOn(today) {
			mark = "[x]"
		}
		fmt.Printf("%s %-30s %-16s %s\n",
			mark, h.Title, cli.StreakLabel(game.Streak(h.CompletedDays, now)), h.ID)
	}
	return nil
}

type HabitDoneCmd struct {
	Habit string `arg:"" help:"Habit title or ID."`
	Proof string `short:"p" help:"Path to a proof photo." type:"existingfile"`
}

func (c *HabitDoneCmd) Run(ctx *cli.Context) error {
	store, err := ctx.Game()
	if err != nil {
		return err
	}

	habit, err := cli.FindHabit(store.State(), c.Habit)
	if err != nil {
		return err
	}

	var image []byte
	if c.Proof != "" {
		image, err = os.ReadFile(c.Proof)
		if err != nil {
			return fmt.Errorf("failed to read proof photo: %w", err)
		}
	}

	res, err := store.RecordCompletion(habit.ID, image, time.Now())
	if err != nil {
		return err
	}
	if !res.Awarded {
		fmt.Printf("Habit %q is already done today.\n", habit.Title)
		return nil
	}

	fmt.Printf("Chained: %s (+%d XP, +%d points)\n",
		habit.Title, constants.XPPerCompletion, constants.PointsPerCompletion)
	if c.Proof == "" {
		fmt.Println("No proof attached.")
	} else if res.VaultErr != nil {
		fmt.Printf("⚠ Completion saved, but the proof image could not be stored: %v\n", res.VaultErr)
	} else {
		fmt.Printf("Proof stored as %s\n", res.Proof.ID)
	}
	return nil
}

type HabitLogCmd struct {
	Days  int    `help:"Number of days to show." default:"14"`
	Habit string `help:"Show log for specific habit only."`
}

func (c *HabitLogCmd) Run(ctx *cli.Context) error {
	store, err := ctx.Game()
	if err != nil {
		return err
	}
	state := store.State()

	habits := state.Habits
	if c.Habit != "" {
		habit, err := cli.FindHabit(state, c.Habit)
		if err != nil {
			return err
		}
		habits = habits[:0:0]
		habits = append(habits, habit)
	}
	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	endDay := time.Now()
	startDay := endDay.AddDate(0, 0, -(c.Days - 1))

	fmt.Printf("Habit log (last %d days):\n\n", c.Days)

	const maxNameLen = 20
	fmt.Print(strings.Repeat(" ", maxNameLen))
	for i := 0; i < c.Days; i++ {
		fmt.Printf(" %5s", startDay.AddDate(0, 0, i).Format("01/02"))
	}
	fmt.Println()
	fmt.Println(strings.Repeat("-", maxNameLen+6*c.Days))

	for _, habit := range habits {
		name := habit.Title
		if len(name) > maxNameLen {
			name = name[:maxNameLen-3] + "..."
		} else {
			name = name + strings.Repeat(" ", maxNameLen-len(name))
		}
		fmt.Print(name)

		for i := 0; i < c.Days; i++ {
			day := utils.DateKey(startDay.AddDate(0, 0, i))
			if habit.CompletedOn(day) {
				fmt.Print("  x   ")
			} else {
				fmt.Print("  .   ")
			}
		}
		fmt.Println()
	}
	return nil
}

type HabitDeleteCmd struct {
	Habit string `arg:"" help:"Habit title or ID to delete."`
}

func (c *HabitDeleteCmd) Run(ctx *cli.Context) error {
	store, err := ctx.Game()
	if err != nil {
		return err
	}

	habit, err := cli.FindHabit(store.State(), c.Habit)
	if err != nil {
		return err
	}

	if err := store.DeleteHabit(habit.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted habit: %s\n", habit.Title)
	fmt.Println("(Its proof records and stored photos were removed too)")
	return nil
}
