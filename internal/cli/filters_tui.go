package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/filterpanel/internal/config"
	"github.com/rshade/filterpanel/internal/filtering"
	"github.com/rshade/filterpanel/internal/render"
	"github.com/rshade/filterpanel/internal/tui"
)

func newFiltersTUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Browse and manage lists interactively",
		Long: `Opens blocklists and allowlists in tabs. Use the arrow keys to page, 1-9 to
sort by a column, space to select rows and ? for all key bindings. The blocklists
tab opens first unless --allowlist is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Log lines on stderr would tear the full-screen view.
			if config.GetLoggingConfig().File == "" {
				quiet := zerolog.Nop()
				cmd.SetContext(quiet.WithContext(cmd.Context()))
			}

			kinds := []filtering.Kind{filtering.KindBlocklist, filtering.KindAllowlist}
			if kindFromFlags(cmd) == filtering.KindAllowlist {
				kinds[0], kinds[1] = kinds[1], kinds[0]
			}

			screens := make([]*filtering.Screen, 0, len(kinds))
			for _, kind := range kinds {
				screen, err := newScreen(cmd, kind, screenConfig{selectable: true})
				if err != nil {
					return err
				}
				screens = append(screens, screen)
			}

			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			styled := render.IsTerminal(out)
			model := tui.NewModel(ctx, styled, screens...)

			opts := []tea.ProgramOption{
				tea.WithContext(ctx),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(out),
			}
			if styled {
				opts = append(opts, tea.WithAltScreen())
			}

			if _, err := tea.NewProgram(model, opts...).Run(); err != nil {
				return fmt.Errorf("running interactive view: %w", err)
			}
			return nil
		},
	}
}
