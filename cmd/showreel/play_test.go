package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/showreel/internal/clock"
	"github.com/alexisbeaulieu97/showreel/internal/config"
	"github.com/alexisbeaulieu97/showreel/internal/store"
	"github.com/alexisbeaulieu97/showreel/internal/widget"
)

const journeyDeck = `variant: journey
title: "Product Journey"
slide_count: 2
slides:
  - label: SKETCH
    title: From Concept
    tagline: to Canvas
  - label: DESIGN
    title: Shaping Ideas
`

const welcomeDeck = `variant: welcome
welcome:
  title: Hello
  message: Glad you came
  seen_key: test_seen
`

func TestPlayCommandParsesFlags(t *testing.T) {
	calls := stubPlayRunner(t)
	path := writeDeck(t, journeyDeck)
	seen := filepath.Join(t.TempDir(), "seen.json")

	_, err := executeCommand(newRootCmd(), "play", path, "--no-effects", "--gate", "viewport", "--seen-file", seen, "--reset-seen")
	require.NoError(t, err)
	require.Len(t, *calls, 1)

	opts := (*calls)[0]
	require.Equal(t, path, opts.DeckPath)
	require.True(t, opts.NoEffects)
	require.True(t, opts.ResetSeen)
	require.Equal(t, "viewport", opts.Gate)
	require.Equal(t, seen, opts.SeenFile)
}

func TestRootShorthandPlaysDeck(t *testing.T) {
	calls := stubPlayRunner(t)
	path := writeDeck(t, journeyDeck)

	_, err := executeCommand(newRootCmd(), path, "--no-effects")
	require.NoError(t, err)
	require.Len(t, *calls, 1)
	require.Equal(t, path, (*calls)[0].DeckPath)
	require.True(t, (*calls)[0].NoEffects)
}

func TestRootWithoutArgsPrintsHelp(t *testing.T) {
	calls := stubPlayRunner(t)

	out, err := executeCommand(newRootCmd())
	require.NoError(t, err)
	require.Empty(t, *calls)
	require.Contains(t, out, "showreel")
}

func TestPlayCommandValidatesDeckPath(t *testing.T) {
	stubPlayRunner(t)

	_, err := executeCommand(newRootCmd(), "play", "/path/does/not/exist.yaml")
	require.Error(t, err)
	require.Contains(t, err.Error(), "does not exist")
}

func TestValidatePlayOptions(t *testing.T) {
	t.Parallel()
	path := writeDeck(t, journeyDeck)

	cases := []struct {
		name    string
		opts    playOptions
		wantErr string
	}{
		{name: "valid", opts: playOptions{DeckPath: path, Gate: "pointer"}},
		{name: "empty path", opts: playOptions{}, wantErr: "required"},
		{name: "directory", opts: playOptions{DeckPath: filepath.Dir(path)}, wantErr: "is a directory"},
		{name: "unknown gate", opts: playOptions{DeckPath: path, Gate: "hover"}, wantErr: "--gate"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := validatePlayOptions(tc.opts)
			if tc.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			require.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestRunPlayNonInteractivePrintsDeck(t *testing.T) {
	path := writeDeck(t, journeyDeck)
	buf := &bytes.Buffer{}

	err := runPlay(testApp(), playOptions{DeckPath: path, NonInteractive: true}, buf)
	require.NoError(t, err)

	out := buf.String()
	require.Contains(t, out, "Product Journey")
	require.Contains(t, out, "SKETCH")
	require.Contains(t, out, "From Concept")
	require.Contains(t, out, "to Canvas")
	require.Contains(t, out, "Shaping Ideas")
}

func TestRunPlayNonInteractivePrintsWelcome(t *testing.T) {
	path := writeDeck(t, welcomeDeck)
	buf := &bytes.Buffer{}

	require.NoError(t, runPlay(testApp(), playOptions{DeckPath: path, NonInteractive: true}, buf))
	require.Contains(t, buf.String(), "Hello")
	require.Contains(t, buf.String(), "#booking")
	require.Contains(t, buf.String(), "#home")
}

func TestRunPlayRejectsInvalidDeck(t *testing.T) {
	path := writeDeck(t, "variant: carousel\n")

	err := runPlay(testApp(), playOptions{DeckPath: path, NonInteractive: true}, &bytes.Buffer{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "variant")
}

func TestRunPlaySkipsSeenWelcome(t *testing.T) {
	path := writeDeck(t, welcomeDeck)
	seenPath := filepath.Join(t.TempDir(), "seen.json")
	seen, err := store.NewSeenStore(seenPath)
	require.NoError(t, err)
	require.NoError(t, seen.MarkSeen("test_seen"))

	buf := &bytes.Buffer{}
	require.NoError(t, runPlay(testApp(), playOptions{DeckPath: path, SeenFile: seenPath}, buf))
	require.Contains(t, buf.String(), "already seen")
}

func TestNewSessionResetSeenShowsWelcome(t *testing.T) {
	path := writeDeck(t, welcomeDeck)
	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	seenPath := filepath.Join(t.TempDir(), "seen.json")
	seen, err := store.NewSeenStore(seenPath)
	require.NoError(t, err)
	require.NoError(t, seen.MarkSeen("test_seen"))

	loop := clock.NewLoop(time.Unix(0, 0))
	opts := playOptions{DeckPath: path, SeenFile: seenPath, ResetSeen: true, NoEffects: true}
	doc, err := config.ParseFile(path)
	require.NoError(t, err)

	sess, err := newSession(testApp(), loop, doc, raw, opts)
	require.NoError(t, err)
	t.Cleanup(sess.detach)

	require.False(t, sess.hidden)
	require.NotNil(t, sess.outcome)

	reloaded, err := store.NewSeenStore(seenPath)
	require.NoError(t, err)
	isSeen, _ := reloaded.Seen("test_seen")
	require.False(t, isSeen)
}

func TestNewSessionSlideshowAppliesGate(t *testing.T) {
	path := writeDeck(t, journeyDeck)
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	doc, err := config.ParseFile(path)
	require.NoError(t, err)

	loop := clock.NewLoop(time.Unix(0, 0))
	sess, err := newSession(testApp(), loop, doc, raw, playOptions{DeckPath: path, Gate: "viewport", NoEffects: true})
	require.NoError(t, err)

	require.False(t, sess.hidden)
	require.Nil(t, sess.outcome)
	require.Equal(t, 1, loop.Pending(), "only the autoplay timer is armed")

	sess.detach()
	require.Zero(t, loop.Pending())
}

func TestOpenSeenStoreFallsBackToMemory(t *testing.T) {
	t.Parallel()

	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	s := openSeenStore(testApp(), filepath.Join(blocker, "nested", "seen.json"))
	_, ok := s.(*store.Memory)
	require.True(t, ok)

	_, ok = openSeenStore(testApp(), "").(*store.Memory)
	require.True(t, ok)
}

var _ widget.SeenStore = (*store.SeenStore)(nil)

func TestReloadDeckSkipsUnchangedFile(t *testing.T) {
	t.Parallel()
	path := writeDeck(t, journeyDeck)

	_, changed, err := reloadDeck(path, []byte(journeyDeck), testApp())
	require.NoError(t, err)
	require.False(t, changed)

	require.NoError(t, os.WriteFile(path, []byte(strings.Replace(journeyDeck, "SKETCH", "DRAFT", 1)), 0o644))
	data, changed, err := reloadDeck(path, []byte(journeyDeck), testApp())
	require.NoError(t, err)
	require.True(t, changed)
	require.Contains(t, string(data), "DRAFT")

	_, _, err = reloadDeck(filepath.Join(t.TempDir(), "gone.yaml"), nil, testApp())
	require.Error(t, err)
}
