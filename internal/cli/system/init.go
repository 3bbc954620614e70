package system

import (
	"fmt"
	"os"

	"github.com/julianstephens/lifedash/internal/cli"
)

type InitCmd struct {
	Force bool `help:"Delete the existing journal before initializing. SQLite only."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		path := ctx.Store.GetConfigPath()
		if _, err := os.Stat(path); err == nil {
			// close first so the file is not held open
			if err := ctx.Store.Close(); err != nil {
				return fmt.Errorf("failed to close existing journal: %w", err)
			}
			if err := os.Remove(path); err != nil {
				return fmt.Errorf("failed to delete existing journal: %w", err)
			}
			ctx.Printf("Deleted existing journal at: %s\n", path)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to access existing journal: %w", err)
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	ctx.Printf("Initialized lifedash storage at: %s\n", ctx.Store.GetConfigPath())
	return nil
}
