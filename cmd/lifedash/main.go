package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/julianstephens/lifedash/internal/cli"
	"github.com/julianstephens/lifedash/internal/cli/backups"
	"github.com/julianstephens/lifedash/internal/cli/checkin"
	"github.com/julianstephens/lifedash/internal/cli/session"
	"github.com/julianstephens/lifedash/internal/cli/settings"
	"github.com/julianstephens/lifedash/internal/cli/system"
	"github.com/julianstephens/lifedash/internal/constants"
	"github.com/julianstephens/lifedash/internal/errors"
	"github.com/julianstephens/lifedash/internal/keyring"
	"github.com/julianstephens/lifedash/internal/logger"
	"github.com/julianstephens/lifedash/internal/notifier"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Journal path or PostgreSQL connection string. For PostgreSQL, credentials must NOT be embedded in the connection string. Use LIFEDASH_DB_CONNECTION, .pgpass, or the OS keyring instead." type:"string" default:"~/.config/lifedash/lifedash.db"`
	Debug   bool   `help:"Write debug logs to stderr as well as the log file."`

	Init     system.InitCmd       `cmd:"" help:"Initialize lifedash storage."`
	Tui      system.TuiCmd        `cmd:"" help:"Launch the interactive dashboard." default:"1"`
	Start    session.StartCmd     `cmd:"" help:"Run a Start My Day session in the terminal."`
	History  session.HistoryCmd   `cmd:"" help:"Show journaled sessions, check-ins and wheel snapshots."`
	Mood     checkin.MoodCmd      `cmd:"" help:"Record a mood check-in."`
	Wheel    checkin.WheelCmd     `cmd:"" help:"Rate your Wheel of Life or show the latest snapshot."`
	Settings settings.SettingsCmd `cmd:"" help:"Manage application settings."`
	Keyring  system.KeyringCmd    `cmd:"" help:"Manage the connection string stored in the OS keyring."`
	Backup   struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Back up the SQLite journal." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore the journal from a backup."`
	} `cmd:"" help:"Manage journal backups."`
}

func main() {
	// a missing .env is fine
	_ = godotenv.Load()

	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Life dashboard: life-area cards, Start My Day, mood check-ins and the Wheel of Life"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	configDir, err := os.UserConfigDir()
	if err != nil {
		errors.Fatalf("locating config directory: %w", err)
	}
	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Join(configDir, constants.AppName),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "warning: file logging disabled: %v\n", err)
	}

	connStr := cli.ResolveConnString(CLI.Config, os.Getenv, keyring.Resolve)
	store, err := cli.OpenStore(connStr, connStr == CLI.Config)
	if err != nil {
		errors.Fatal(err)
	}
	defer store.Close()

	// init opens the store itself and the keyring commands never touch it
	if cmd := ctx.Selected(); cmd != nil && cmd.Name != "init" && !isKeyringCmd(ctx) {
		if err := store.Load(); err != nil {
			errors.Fatal(err)
		}
	}

	appCtx := cli.NewContext(store)
	appCtx.Notifier = notifier.New()

	if err := ctx.Run(appCtx); err != nil {
		store.Close()
		errors.Fatal(err)
	}
}

func isKeyringCmd(ctx *kong.Context) bool {
	for _, p := range ctx.Path {
		if p.Command != nil && p.Command.Name == "keyring" {
			return true
		}
	}
	return false
}
