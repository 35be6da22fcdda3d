package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/showreel/internal/config"
)

func newValidateCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <deck>",
		Short: "Check a deck file without playing it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateDeckPath(args[0]); err != nil {
				return err
			}

			app, err := newAppContext(root)
			if err != nil {
				return err
			}
			defer app.Close() //nolint:errcheck

			return runValidate(app, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(app *AppContext, path string, cmd *cobra.Command) error {
	doc, err := config.ParseFile(path)
	if err != nil {
		app.Log.WithFields(map[string]any{"path": path}).Warn(err, "deck invalid")
		return err
	}
	s, err := config.Resolve(doc)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✔ %s: %s deck, %d slides, speed %s, autoplay %s\n",
		path, s.Variant.Name, s.Slides.Len(), s.Speed, describeInterval(s.AutoplayDelay))
	return nil
}

func describeInterval(d time.Duration) string {
	if d <= 0 {
		return "off"
	}
	return d.String()
}
