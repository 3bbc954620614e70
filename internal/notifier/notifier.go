// Package notifier pushes desktop notifications through the companion
// tray app's local webhook.
package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/mitchellh/go-ps"

	"github.com/julianstephens/lifedash/internal/constants"
)

var (
	ErrTrayNotRunning = errors.New(constants.TrayAppExecutable + " is not running")
	ErrBadLockfile    = errors.New("tray lockfile is malformed")
)

// Sender is anything that can deliver a notification.
type Sender interface {
	Notify(ctx context.Context, text string) error
}

type Payload struct {
	Text       string `json:"text"`
	DurationMs uint32 `json:"duration_ms"`
}

type Notifier struct {
	client      *http.Client
	configDir   func() (string, error)
	findProcess func(pid int) (ps.Process, error)
}

type Option func(*Notifier)

// WithConfigDir overrides where the tray app's config directory is looked up.
func WithConfigDir(fn func() (string, error)) Option {
	return func(n *Notifier) { n.configDir = fn }
}

func WithProcessFinder(fn func(pid int) (ps.Process, error)) Option {
	return func(n *Notifier) { n.findProcess = fn }
}

func WithHTTPClient(c *http.Client) Option {
	return func(n *Notifier) { n.client = c }
}

func New(opts ...Option) *Notifier {
	n := &Notifier{
		client:      &http.Client{Timeout: 5 * time.Second},
		configDir:   os.UserConfigDir,
		findProcess: ps.FindProcess,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

func (n *Notifier) Notify(ctx context.Context, text string) error {
	dir, err := n.TrayConfigDir()
	if err != nil {
		return err
	}
	ep, err := n.endpoint(filepath.Join(dir, constants.NotifierLockfileName))
	if err != nil {
		return err
	}
	return n.send(ctx, ep, Payload{Text: text, DurationMs: constants.NotificationDurationMs})
}

// TrayConfigDir returns the tray app's config directory, honouring a
// lockfile_dir override in its settings.json.
func (n *Notifier) TrayConfigDir() (string, error) {
	base, err := n.configDir()
	if err != nil {
		return "", fmt.Errorf("locating user config dir: %w", err)
	}
	dir := filepath.Join(base, constants.TrayAppIdentifier)

	data, err := os.ReadFile(filepath.Join(dir, "settings.json"))
	if err != nil {
		return dir, nil
	}
	var store struct {
		Settings struct {
			LockfileDir string `json:"lockfile_dir"`
		} `json:"settings"`
	}
	if json.Unmarshal(data, &store) == nil && store.Settings.LockfileDir != "" {
		return store.Settings.LockfileDir, nil
	}
	return dir, nil
}

type endpoint struct {
	port   int
	secret string
}

// endpoint parses a "port|pid|secret" lockfile and checks that pid is
// the tray app.
func (n *Notifier) endpoint(lockfile string) (endpoint, error) {
	raw, err := os.ReadFile(lockfile)
	if err != nil {
		return endpoint{}, ErrTrayNotRunning
	}
	parts := strings.Split(strings.TrimSpace(string(raw)), "|")
	if len(parts) != 3 {
		return endpoint{}, ErrBadLockfile
	}

	port, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return endpoint{}, fmt.Errorf("%w: invalid port %q", ErrBadLockfile, parts[0])
	}
	if port < 1 || port > 65535 {
		return endpoint{}, fmt.Errorf("%w: port %d outside 1-65535", ErrBadLockfile, port)
	}
	pid, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return endpoint{}, fmt.Errorf("%w: invalid pid %q", ErrBadLockfile, parts[1])
	}
	secret := strings.TrimSpace(parts[2])
	if secret == "" {
		return endpoint{}, fmt.Errorf("%w: secret is empty", ErrBadLockfile)
	}

	proc, err := n.findProcess(pid)
	if err != nil || proc == nil {
		return endpoint{}, ErrTrayNotRunning
	}
	if !strings.HasPrefix(proc.Executable(), constants.TrayAppExecutable) {
		return endpoint{}, fmt.Errorf("process %d is %s, not %s", pid, proc.Executable(), constants.TrayAppExecutable)
	}
	return endpoint{port: port, secret: secret}, nil
}

func (n *Notifier) send(ctx context.Context, ep endpoint, p Payload) error {
	body, err := json.Marshal(p)
	if err != nil {
		return err
	}
	url := fmt.Sprintf("http://127.0.0.1:%d", ep.port)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Lifedash-Secret", ep.secret)

	res, err := n.client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusOK {
		return nil
	}
	msg, _ := io.ReadAll(res.Body)
	return fmt.Errorf("notification failed with status %d: %s", res.StatusCode, strings.TrimSpace(string(msg)))
}

// Nop discards notifications.
type Nop struct{}

func (Nop) Notify(context.Context, string) error { return nil }
