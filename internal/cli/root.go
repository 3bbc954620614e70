package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/julianstephens/lifedash/internal/constants"
	"github.com/julianstephens/lifedash/internal/journal"
	"github.com/julianstephens/lifedash/internal/notifier"
	"github.com/julianstephens/lifedash/internal/storage"
	"github.com/julianstephens/lifedash/internal/storage/postgres"
	"github.com/julianstephens/lifedash/internal/storage/sqlite"
)

// Context is handed to every command's Run method.
type Context struct {
	Store    storage.Provider
	Notifier notifier.Sender
	Out      io.Writer
	Now      func() time.Time
	// Ticks builds the tick source for headless sessions.
	Ticks func(interval time.Duration) (<-chan time.Time, func())
}

// NewContext fills in production defaults for anything left nil.
func NewContext(store storage.Provider) *Context {
	c := &Context{Store: store}
	c.defaults()
	return c
}

func (c *Context) defaults() {
	if c.Out == nil {
		c.Out = os.Stdout
	}
	if c.Now == nil {
		c.Now = time.Now
	}
	if c.Notifier == nil {
		c.Notifier = notifier.Nop{}
	}
	if c.Ticks == nil {
		c.Ticks = func(d time.Duration) (<-chan time.Time, func()) {
			t := time.NewTicker(d)
			return t.C, t.Stop
		}
	}
}

func (c *Context) Printf(format string, args ...any) {
	c.defaults()
	fmt.Fprintf(c.Out, format, args...)
}

func (c *Context) Println(args ...any) {
	c.defaults()
	fmt.Fprintln(c.Out, args...)
}

// Clock reads the context's clock.
func (c *Context) Clock() time.Time {
	c.defaults()
	return c.Now()
}

// Tick starts the context's tick source.
func (c *Context) Tick(interval time.Duration) (<-chan time.Time, func()) {
	c.defaults()
	return c.Ticks(interval)
}

func (c *Context) Notify(ctx context.Context, text string) error {
	c.defaults()
	return c.Notifier.Notify(ctx, text)
}

// Recorder returns a journal recorder bound to the context's store and clock.
func (c *Context) Recorder() *journal.Recorder {
	c.defaults()
	return journal.New(c.Store, journal.WithClock(c.Now))
}

// ResolveConnString picks the journal location: the environment wins,
// then an explicitly passed --config, then the keyring, then the default
// path.
func ResolveConnString(flag string, getenv func(string) string, fromKeyring func() string) string {
	if v := strings.TrimSpace(getenv(constants.EnvDBConnection)); v != "" {
		return v
	}
	if flag != "" && flag != constants.DefaultConfigPath {
		return flag
	}
	if fromKeyring != nil {
		if v := fromKeyring(); v != "" {
			return v
		}
	}
	if flag != "" {
		return flag
	}
	return constants.DefaultConfigPath
}

// ExpandPath replaces a leading ~ with the user's home directory.
func ExpandPath(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("expanding %s: %w", path, err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

// OpenStore builds the provider for a connection string without opening it.
// Passwords are rejected only when requireNoPassword is set, which is the
// case for values typed on the command line.
func OpenStore(connStr string, requireNoPassword bool) (storage.Provider, error) {
	if postgres.IsConnString(connStr) {
		if requireNoPassword {
			if err := postgres.ValidateConnString(connStr); err != nil {
				return nil, err
			}
		}
		return postgres.New(connStr), nil
	}
	path, err := ExpandPath(connStr)
	if err != nil {
		return nil, err
	}
	return sqlite.New(path), nil
}
