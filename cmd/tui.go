package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/aurabeat/internal/ui"
	"github.com/urfave/cli/v3"
)

// Now opens the live now-playing terminal view.
func (r *Runner) Now(ctx context.Context, cmd *cli.Command) error {
	r.loadConfig(cmd)
	configPath := cmd.String("config")

	// Fail before entering the alternate screen if no tokens are saved.
	if _, err := r.cliAccessToken(ctx, configPath); err != nil {
		return err
	}

	svc, err := r.ensureSpotify()
	if err != nil {
		return err
	}

	token := func(ctx context.Context) (string, error) {
		return r.cliAccessToken(ctx, configPath)
	}

	model := ui.NewModel(ctx, svc, token)
	program := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("terminal UI error: %w", err)
	}

	return nil
}
