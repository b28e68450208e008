package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/redchainhq/redchain/internal/cli"
	apperrors "github.com/redchainhq/redchain/internal/errors"
	"github.com/redchainhq/redchain/internal/cli/habits"
	"github.com/redchainhq/redchain/internal/cli/system"
	"github.com/redchainhq/redchain/internal/cli/themes"
	"github.com/redchainhq/redchain/internal/constants"
	"github.com/redchainhq/redchain/internal/logger"
	"github.com/redchainhq/redchain/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"GameState document path." type:"path" default:"~/.config/redchain/redchain.json"`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Init     system.InitCmd   `cmd:"" help:"Initialize redchain storage."`
	Tui      system.TuiCmd    `cmd:"" help:"Launch the interactive dashboard." default:"1"`
	Status   cli.StatusCmd    `cmd:"" help:"Show rank, points and today's chain."`
	Habit    habits.HabitCmd  `cmd:"" help:"Manage habits."`
	Theme    themes.ThemeCmd  `cmd:"" help:"Manage color themes."`
	Progress cli.ProgressCmd  `cmd:"" help:"Show the monthly completion heatmap."`
	Review   cli.ReviewCmd    `cmd:"" help:"Weekly review with medal and coach debrief."`
	Proof    cli.ProofCmd     `cmd:"" help:"Inspect and export proof photos."`
	Quote    cli.QuoteCmd     `cmd:"" help:"Show today's discipline quote."`
	Backup   system.BackupCmd `cmd:"" help:"Manage backups."`
	Reset    system.ResetCmd  `cmd:"" help:"Erase all progress."`
	Doctor   system.DoctorCmd `cmd:"" help:"Run health diagnostics."`
	Keyring  struct {
		Set    system.KeyringSetCmd    `cmd:"" help:"Store the coach API key."`
		Show   system.KeyringShowCmd   `cmd:"" help:"Show the stored key (masked)."`
		Clear  system.KeyringClearCmd  `cmd:"" help:"Remove the stored key."`
		Status system.KeyringStatusCmd `cmd:"" help:"Check keyring availability."`
	} `cmd:"" help:"Manage the coach API key."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Habit chain game: photographic proof, XP, ranks and a coach with no mercy"),
		kong.UsageOnError(),
		kong.Vars{"version": constants.Version},
	)

	configDir := filepath.Dir(CLI.Config)
	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: configDir}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	appCtx := &cli.Context{
		Doc:   storage.NewJSONStore(CLI.Config),
		Vault: storage.NewVault(filepath.Join(configDir, constants.VaultFileName)),
	}
	err := ctx.Run(appCtx)
	appCtx.Vault.Close()
	if err != nil {
		apperrors.Fatal(err)
	}
}
