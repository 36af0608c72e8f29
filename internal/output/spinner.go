package output

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh/spinner"
)

// SpinnerOption configures a spinner.
type SpinnerOption func(*spinnerConfig)

type spinnerConfig struct {
	title string
}

// WithTitle sets the spinner title.
func WithTitle(title string) SpinnerOption {
	return func(c *spinnerConfig) {
		c.title = title
	}
}

// RunWithSpinner executes an action with a spinner and returns its error.
// Without a TTY the action runs directly. The action always runs to
// completion before RunWithSpinner returns.
func RunWithSpinner(ctx context.Context, action func() error, opts ...SpinnerOption) error {
	cfg := &spinnerConfig{
		title: "Working...",
	}

	for _, opt := range opts {
		opt(cfg)
	}

	if !IsTTY() {
		return action()
	}

	errCh := make(chan error, 1)
	done := make(chan struct{})

	go func() {
		errCh <- action()
		close(done)
	}()

	spinnerErr := spinner.New().
		Title(cfg.title).
		Context(ctx).
		Action(func() {
			<-done
		}).
		Run()

	err := <-errCh
	if err != nil {
		return err
	}
	if spinnerErr != nil && ctx.Err() == nil {
		return fmt.Errorf("spinner error: %w", spinnerErr)
	}
	return nil
}
