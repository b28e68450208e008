package system

import (
	"fmt"

	"github.com/redchainhq/redchain/internal/cli"
)

type InitCmd struct{}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if _, err := ctx.Doc.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized redchain storage at: %s\n", ctx.DocPath())
	fmt.Println("Start the chain with 'redchain habit add' or launch 'redchain tui'.")
	return nil
}
