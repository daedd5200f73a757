package app

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"webpreview/config"
	"webpreview/log"
)

// RunOptions add the background services to Options.
type RunOptions struct {
	Options
	// WorkspaceDir is watched for .webpreview.yaml changes. Empty disables it.
	WorkspaceDir string
	// Watch reloads settings when the config files change.
	Watch bool
}

// Run is the main entrypoint into the application. The relay server and the
// config watcher run next to the program and stop when it exits.
func Run(ctx context.Context, opts RunOptions) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	h, err := newHome(ctx, opts.Options)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		h,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(), // drag needs motion without a held button too
		tea.WithContext(ctx),
	)
	h.send = p.Send

	g, gctx := errgroup.WithContext(ctx)

	if addr := opts.Settings.RelayAddr; addr != "" {
		g.Go(func() error {
			// The preview keeps working in the terminal without the relay.
			if err := h.hub.Serve(gctx, addr); err != nil {
				p.Send(err)
			}
			return nil
		})
	}

	if opts.Watch {
		watcher, err := config.NewWatcher(opts.WorkspaceDir)
		if err != nil {
			log.WarningLog.Printf("config watching disabled: %v", err)
		} else {
			g.Go(func() error {
				err := watcher.Run(gctx, func(s config.Settings) {
					p.Send(settingsChangedMsg{settings: applyOverrides(s, opts.Options)})
				})
				if err != nil {
					p.Send(err)
				}
				return nil
			})
		}
	}

	g.Go(func() error {
		defer cancel()
		if _, err := p.Run(); err != nil && ctx.Err() == nil {
			return fmt.Errorf("program: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// applyOverrides keeps command line settings in force across reloads.
func applyOverrides(s config.Settings, opts Options) config.Settings {
	if opts.Settings.RelayAddr != "" {
		s.RelayAddr = opts.Settings.RelayAddr
	}
	return s
}
