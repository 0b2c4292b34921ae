package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/cwel/imgtab/internal/clipboard"
	"github.com/cwel/imgtab/internal/config"
	"github.com/cwel/imgtab/internal/logging"
	"github.com/cwel/imgtab/internal/manager"
	"github.com/cwel/imgtab/internal/model"
	"github.com/cwel/imgtab/internal/store"
)

// app bundles what every command needs: config, logger and a manager with
// the persisted session restored.
type app struct {
	cfg *config.Config
	log *zap.Logger
	mgr *manager.Manager
}

// newApp loads config, opens the log file and restores the session. Images
// from the record that no longer load are reported on stderr and dropped.
func newApp() (*app, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log := logging.NewOrNop(logging.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development,
		OutputPaths: []string{cfg.LogFile()},
	})

	mgr := manager.New(manager.Options{
		Store:     store.DefaultStore(),
		Clipboard: clipboard.System{},
		Logger:    log,
		Document:  cfg.DocumentOptions(),
	})
	if err := mgr.Restore(); err != nil {
		var le *model.LoadError
		if !errors.As(err, &le) {
			return nil, err
		}
		warn(err)
	}

	return &app{cfg: cfg, log: log, mgr: mgr}, nil
}

// close persists the session and flushes the log.
func (a *app) close() error {
	err := a.mgr.Persist()
	_ = a.log.Sync()
	return err
}

// selectPath opens path (or selects it if already open) so the manager's
// selected-document operations act on it.
func (a *app) selectPath(path string) error {
	if err := a.mgr.OpenPaths([]string{path}); err != nil {
		return err
	}
	if !a.mgr.SelectPath(path) {
		return fmt.Errorf("not open: %s", path)
	}
	return nil
}

// requireOpen selects a document that must already be in the session.
func (a *app) requireOpen(path string) error {
	if !a.mgr.SelectPath(path) {
		return fmt.Errorf("not open: %s (see 'imgtab ls')", path)
	}
	return nil
}

// warn prints each joined error on its own line.
func warn(err error) {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			fmt.Fprintf(os.Stderr, "warning: %v\n", e)
		}
		return
	}
	fmt.Fprintf(os.Stderr, "warning: %v\n", err)
}

// confirm resolves a confirmation request: --yes answers it, otherwise the
// user is asked on stdin. Anything but y/yes declines.
func confirm(in io.Reader, out io.Writer, req *model.ConfirmationRequired, yes bool) bool {
	if yes {
		return true
	}
	fmt.Fprintf(out, "%s [y/N] ", req.Prompt)
	line, _ := bufio.NewReader(in).ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}

// withConfirmation runs op unconfirmed first and, if it asks for
// confirmation, asks the user and runs it again confirmed.
func withConfirmation(op func(confirmed bool) error, yes bool) error {
	err := op(false)
	var cr *model.ConfirmationRequired
	if !errors.As(err, &cr) {
		return err
	}
	if !confirm(os.Stdin, os.Stdout, cr, yes) {
		return fmt.Errorf("%s: cancelled", cr.Op)
	}
	return op(true)
}
