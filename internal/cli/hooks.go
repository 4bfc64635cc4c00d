package cli

import (
	"github.com/spf13/cobra"

	"github.com/MKhiriev/mobile-e2e-config/internal/adapter"
	"github.com/MKhiriev/mobile-e2e-config/models"
)

func (a *app) newPrepareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prepare",
		Short: "Run the on-prepare hook of the selected configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, cfg, log, err := a.load("prepare")
			if err != nil {
				return err
			}

			if cfg.Hooks.OnPrepare == nil {
				log.Debug().Str("target", string(settings.Target)).Msg("no on-prepare hook")
				return nil
			}
			cfg.Hooks.OnPrepare()
			return nil
		},
	}
}

func (a *app) newCompleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "complete",
		Short: "Run the on-complete hook of the selected configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, cfg, log, err := a.load("complete")
			if err != nil {
				return err
			}

			if cfg.Hooks.OnComplete == nil {
				log.Debug().Str("target", string(settings.Target)).Msg("no on-complete hook")
				return nil
			}
			cfg.Hooks.OnComplete()
			return nil
		},
	}
}

// newAfterTestCmd runs the after-test hook against the session named by
// --session-id. A session that cannot be reached never fails the command.
func (a *app) newAfterTestCmd() *cobra.Command {
	var result models.TestResult

	cmd := &cobra.Command{
		Use:   "after-test",
		Short: "Run the after-test hook for one finished test",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, cfg, log, err := a.load("after-test")
			if err != nil {
				return err
			}

			if cfg.Hooks.AfterTest == nil {
				log.Debug().Str("target", string(settings.Target)).Msg("no after-test hook")
				return nil
			}

			var session models.Session
			if !result.Passed {
				session, err = adapter.NewWebDriverSession(settings.WebDriver, settings.BrowserStack)
				if err != nil {
					log.Warn().Err(err).Msg("webdriver session unavailable")
				}
			}

			cfg.Hooks.AfterTest(log.WithContext(cmd.Context()), session, result)
			return nil
		},
	}

	cmd.Flags().StringVar(&result.Parent, "suite", "", "Name of the suite the test belongs to")
	cmd.Flags().StringVar(&result.Title, "title", "", "Test title")
	cmd.Flags().BoolVar(&result.Passed, "passed", false, "Whether the test passed")

	return cmd
}
