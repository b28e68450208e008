package cli

import (
	"fmt"
	"os"

	"github.com/redchainhq/redchain/internal/constants"
)

type ProofCmd struct {
	List   ProofListCmd   `cmd:"" help:"List recorded proofs." default:"1"`
	Export ProofExportCmd `cmd:"" help:"Export a proof image to a file."`
}

type ProofListCmd struct {
	Limit int `help:"Maximum entries to show." default:"20"`
}

func (c *ProofListCmd) Run(ctx *Context) error {
	store, err := ctx.Game()
	if err != nil {
		return err
	}
	state := store.State()

	if len(state.ProofLog) == 0 {
		fmt.Println("No proofs recorded yet.")
		return nil
	}

	// Habit titles by ID; deleted habits leave dangling references.
	titles := make(map[string]string, len(state.Habits))
	for _, h := range state.Habits {
		titles[h.ID] = h.Title
	}

	shown := 0
	for _, p := range state.ProofLog {
		if shown == c.Limit {
			break
		}
		title := titles[p.HabitID]
		if title == "" {
			title = "(deleted habit)"
		}
		fmt.Printf("%s  %s  %s\n", p.ID, p.Date.Format(constants.DateFormat), title)
		shown++
	}
	if rest := len(state.ProofLog) - shown; rest > 0 {
		fmt.Printf("... and %d more (use --limit)\n", rest)
	}
	return nil
}

type ProofExportCmd struct {
	ID  string `arg:"" help:"Proof ID to export."`
	Out string `short:"o" help:"Output file path." required:""`
}

func (c *ProofExportCmd) Run(ctx *Context) error {
	store, err := ctx.Game()
	if err != nil {
		return err
	}

	image, err := store.ProofImage(c.ID)
	if err != nil {
		return fmt.Errorf("failed to read proof image: %w", err)
	}
	if image == nil {
		return fmt.Errorf("no image stored for proof %s", c.ID)
	}

	if err := os.WriteFile(c.Out, image, 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", c.Out, err)
	}
	fmt.Printf("Exported proof %s to %s (%d bytes)\n", c.ID, c.Out, len(image))
	return nil
}
