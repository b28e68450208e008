package themes

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/redchainhq/redchain/internal/cli"
)

type ThemeCmd struct {
	List   ThemeListCmd   `cmd:"" help:"List the theme catalog." default:"1"`
	Unlock ThemeUnlockCmd `cmd:"" help:"Spend points to unlock a theme."`
	Select ThemeSelectCmd `cmd:"" help:"Select an unlocked theme."`
}

type ThemeListCmd struct{}

func (c *ThemeListCmd) Run(ctx *cli.Context) error {
	store, err := ctx.Game()
	if err != nil {
		return err
	}
	state := store.State()

	fmt.Printf("Points: %d\n\n", state.Stats.Points)
	for _, t := range state.Themes {
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Hex)).Render("██")

		status := fmt.Sprintf("locked (%d points)", t.Cost)
		if t.Unlocked {
			status = "unlocked"
		}
		marker := "  "
		if t.ID == state.ActiveThemeID {
			marker = "▶ "
			status = "active"
		}
		fmt.Printf("%s%s %-16s %-20s %s\n", marker, swatch, t.ID, t.Name, status)
	}
	return nil
}

type ThemeUnlockCmd struct {
	ID string `arg:"" help:"Theme ID to unlock."`
}

func (c *ThemeUnlockCmd) Run(ctx *cli.Context) error {
	store, err := ctx.Game()
	if err != nil {
		return err
	}

	res, err := store.UnlockTheme(c.ID)
	if err != nil {
		return err
	}
	if !res.Purchased {
		if res.Theme.Unlocked {
			fmt.Printf("Theme %s is already unlocked.\n", res.Theme.Name)
			return nil
		}
		return fmt.Errorf("not enough points for %s: need %d, have %d",
			res.Theme.Name, res.Theme.Cost, res.Points)
	}

	fmt.Printf("Unlocked %s. %d points remaining.\n", res.Theme.Name, res.Points)
	return nil
}

type ThemeSelectCmd struct {
	ID string `arg:"" help:"Theme ID to activate."`
}

func (c *ThemeSelectCmd) Run(ctx *cli.Context) error {
	store, err := ctx.Game()
	if err != nil {
		return err
	}

	if err := store.SelectTheme(c.ID); err != nil {
		return err
	}
	state := store.State()
	theme := state.ActiveTheme()
	fmt.Printf("Active theme: %s\n", cli.AccentStyle(state).Render(theme.Name))
	return nil
}
