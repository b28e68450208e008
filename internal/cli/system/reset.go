package system

import (
	"fmt"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/redchainhq/redchain/internal/cli"
	"github.com/redchainhq/redchain/internal/constants"
)

// ResetCmd wipes all progress. The confirmation phrase must be typed verbatim;
// there is no --force escape hatch on purpose.
type ResetCmd struct{}

func (c *ResetCmd) Run(ctx *cli.Context) error {
	store, err := ctx.Game()
	if err != nil {
		return err
	}

	fmt.Println("This permanently erases every habit, proof, point and rank.")
	fmt.Println("A backup of the current state is written first.")
	fmt.Println()
	fmt.Println("To proceed, type exactly:")
	fmt.Printf("  %s\n", constants.ResetPhrase)

	var phrase string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Confirmation phrase").
				Value(&phrase).
				Validate(func(s string) error {
					if s != constants.ResetPhrase {
						return fmt.Errorf("phrase does not match")
					}
					return nil
				}),
		),
	).WithTheme(huh.ThemeDracula())

	if err := form.Run(); err != nil {
		return fmt.Errorf("reset aborted: %w", err)
	}

	ctx.PerformAutomaticBackup()
	store.Reset(time.Now())
	fmt.Println("All progress erased. The chain starts again today.")
	return nil
}
