package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/showreel/internal/clock"
	"github.com/alexisbeaulieu97/showreel/internal/config"
	"github.com/alexisbeaulieu97/showreel/internal/deck"
	"github.com/alexisbeaulieu97/showreel/internal/effect"
	"github.com/alexisbeaulieu97/showreel/internal/store"
	"github.com/alexisbeaulieu97/showreel/internal/tui"
	"github.com/alexisbeaulieu97/showreel/internal/widget"
	"github.com/alexisbeaulieu97/showreel/pkg/diff"
	showreelerrors "github.com/alexisbeaulieu97/showreel/pkg/errors"
)

type playOptions struct {
	DeckPath       string
	NoEffects      bool
	SeenFile       string
	ResetSeen      bool
	Gate           string
	NonInteractive bool
}

var playCmdRunner = runPlay

func bindPlayFlags(cmd *cobra.Command, opts *playOptions) {
	cmd.Flags().BoolVar(&opts.NoEffects, "no-effects", false, "Disable transition effects")
	cmd.Flags().StringVar(&opts.SeenFile, "seen-file", defaultSeenFile(), "File that remembers dismissed welcome screens (in memory when empty)")
	cmd.Flags().BoolVar(&opts.ResetSeen, "reset-seen", false, "Show the welcome screen again even if it was dismissed")
	cmd.Flags().StringVar(&opts.Gate, "gate", "", "Override when scroll input belongs to the slideshow (pointer or viewport)")
}

func newPlayCmd(root *rootFlags) *cobra.Command {
	opts := &playOptions{}

	cmd := &cobra.Command{
		Use:   "play <deck>",
		Short: "Play a slideshow or welcome deck",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return executePlay(cmd, root, opts, args[0])
		},
	}
	bindPlayFlags(cmd, opts)

	return cmd
}

func executePlay(cmd *cobra.Command, root *rootFlags, opts *playOptions, path string) error {
	opts.DeckPath = path
	opts.NonInteractive = !term.IsTerminal(int(os.Stdout.Fd()))

	if err := validatePlayOptions(*opts); err != nil {
		return err
	}

	app, err := newAppContext(root)
	if err != nil {
		return err
	}
	defer app.Close() //nolint:errcheck

	return playCmdRunner(app, *opts, cmd.OutOrStdout())
}

func runPlay(app *AppContext, opts playOptions, out io.Writer) error {
	raw, err := os.ReadFile(opts.DeckPath)
	if err != nil {
		return showreelerrors.NewParseError(opts.DeckPath, 0, err)
	}
	doc, err := config.ParseFile(opts.DeckPath)
	if err != nil {
		return err
	}

	if opts.NonInteractive {
		settings, err := config.Resolve(doc)
		if err != nil {
			return err
		}
		printDeck(out, settings)
		return nil
	}

	loop := clock.NewLoop(time.Now())
	sess, err := newSession(app, loop, doc, raw, opts)
	if err != nil {
		return err
	}
	defer sess.detach()

	if sess.hidden {
		fmt.Fprintln(out, "Welcome already seen; use --reset-seen to show it again.")
		return nil
	}

	program := tea.NewProgram(sess.model, tea.WithAltScreen(), tea.WithMouseAllMotion(), tea.WithReportFocus())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go watchReload(ctx, program, opts.DeckPath, raw, app)

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}

	if sess.outcome != nil && sess.outcome.Navigated {
		fmt.Fprintf(out, "→ %s\n", sess.outcome.Target)
	}
	return nil
}

// session is one hosted widget ready to hand to Bubbletea.
type session struct {
	model   tui.Model
	outcome *tui.Outcome
	hidden  bool
	detach  func()
}

type seenStore interface {
	widget.SeenStore
	Forget(key string) error
}

func newSession(app *AppContext, loop *clock.Loop, doc *config.Document, raw []byte, opts playOptions) (*session, error) {
	var canvas *effect.Canvas
	wopts := []widget.Option{widget.WithLogger(app.Log)}
	if opts.NoEffects {
		wopts = append(wopts, widget.WithoutEffects())
	} else {
		background, err := colorful.Hex(doc.Colors.Primary)
		if err != nil {
			background = colorful.Color{}
		}
		canvas = effect.NewCanvas(lipgloss.ColorProfile(), background)
		wopts = append(wopts, widget.WithSurface(canvas))
	}
	if opts.Gate != "" {
		gate, err := deck.ParseGate(opts.Gate)
		if err != nil {
			return nil, err
		}
		wopts = append(wopts, widget.WithGate(gate))
	}

	if deck.Name(doc.Variant) == deck.Welcome {
		return newWelcomeSession(app, loop, raw, opts, canvas, wopts)
	}

	show, err := widget.NewSlideshow(loop, deck.Name(doc.Variant), wopts...)
	if err != nil {
		return nil, err
	}
	if err := show.ConfigChange(raw); err != nil {
		return nil, err
	}
	show.Attach()

	return &session{
		model:  tui.NewSlideshowModel(loop, show, canvas, app.Log),
		detach: show.Detach,
	}, nil
}

func newWelcomeSession(app *AppContext, loop *clock.Loop, raw []byte, opts playOptions, canvas *effect.Canvas, wopts []widget.Option) (*session, error) {
	seen := openSeenStore(app, opts.SeenFile)
	outcome := &tui.Outcome{}

	w, err := widget.NewWelcome(loop, seen, outcome.Navigate, wopts...)
	if err != nil {
		return nil, err
	}
	if err := w.ConfigChange(raw); err != nil {
		return nil, err
	}

	if opts.ResetSeen {
		if err := seen.Forget(w.Settings().Welcome.SeenKey); err != nil {
			app.Log.Warn(err, "failed to reset welcome flag")
		}
	}
	w.Attach()

	return &session{
		model:   tui.NewWelcomeModel(loop, w, canvas, outcome, app.Log),
		outcome: outcome,
		hidden:  w.Phase() == widget.PhaseHidden,
		detach:  w.Detach,
	}, nil
}

// openSeenStore falls back to an in-memory store when the file cannot be used, so a
// broken flag file never blocks the welcome screen.
func openSeenStore(app *AppContext, path string) seenStore {
	if path == "" {
		return store.NewMemory()
	}
	s, err := store.NewSeenStore(path)
	if err != nil {
		app.Log.WithFields(map[string]any{"path": path}).Warn(err, "seen store unavailable, using memory")
		return store.NewMemory()
	}
	return s
}

// watchReload re-reads the deck on SIGHUP and hands it to the running widget when it
// changed.
func watchReload(ctx context.Context, program *tea.Program, path string, last []byte, app *AppContext) {
	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	defer signal.Stop(hup)

	for {
		select {
		case <-ctx.Done():
			return
		case <-hup:
			data, changed, err := reloadDeck(path, last, app)
			if err != nil {
				app.Log.Warn(err, "reload failed")
				continue
			}
			if !changed {
				continue
			}
			last = data
			program.Send(tui.ReloadMsg{Data: data})
		}
	}
}

func reloadDeck(path string, last []byte, app *AppContext) ([]byte, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false, err
	}

	sum := diff.Lines(last, data, path)
	log := app.Log.WithFields(map[string]any{"path": path, "added": sum.Added, "removed": sum.Removed})
	if !sum.Changed() {
		log.Debug("deck unchanged, skipping reload")
		return data, false, nil
	}
	log.Info("reloading deck")
	log.Debug(sum.Text)
	return data, true, nil
}

// printDeck is the plain rendering used when stdout is not a terminal.
func printDeck(out io.Writer, s config.Settings) {
	if s.Variant.Name == deck.Welcome {
		fmt.Fprintf(out, "%s\n\n%s\n\n", s.Welcome.Title, s.Welcome.Message)
		fmt.Fprintf(out, "  %s → %s\n", s.Welcome.BookingText, s.Welcome.BookingLink)
		fmt.Fprintf(out, "  %s → %s\n", s.Welcome.EnterText, s.Welcome.EnterLink)
		return
	}

	fmt.Fprintf(out, "%s\n", s.Title)
	if s.Subtitle != "" {
		fmt.Fprintf(out, "%s\n", s.Subtitle)
	}
	for _, slide := range s.Slides.All() {
		fmt.Fprintf(out, "\n%s  %s\n%s\n", slide.Number, slide.Label, slide.Title)
		if slide.Tagline != "" {
			fmt.Fprintf(out, "%s\n", slide.Tagline)
		}
		if slide.Description != "" {
			fmt.Fprintf(out, "%s\n", slide.Description)
		}
	}
}
