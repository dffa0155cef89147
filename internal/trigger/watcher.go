package trigger

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// DefaultDebounce suppresses a repeated key inside this window.
const DefaultDebounce = 500 * time.Millisecond

// interruptKey is what Ctrl-C delivers once the terminal no longer raises SIGINT.
const interruptKey = "\x03"

// Watcher reads keys from an input stream and fires the bound commands one at a time.
type Watcher struct {
	log      logrus.FieldLogger
	bindings *Bindings
	table    *Table
	in       io.Reader
	debounce time.Duration
	split    bufio.SplitFunc
	now      func() time.Time
}

// NewWatcher creates a keyboard-edge watcher. Each input line is one key press unless
// KeyPerRune is set.
func NewWatcher(log logrus.FieldLogger, bindings *Bindings, table *Table, in io.Reader, debounce time.Duration) *Watcher {
	return &Watcher{
		log:      log.WithField("component", "trigger_watcher"),
		bindings: bindings,
		table:    table,
		in:       in,
		debounce: debounce,
		split:    bufio.ScanLines,
		now:      time.Now,
	}
}

// KeyPerRune makes every rune of input one key press, for a terminal in raw mode.
// Ctrl-C stops the watcher.
func (w *Watcher) KeyPerRune() *Watcher {
	w.split = bufio.ScanRunes

	return w
}

// Run blocks until the quit key, end of input, or ctx is done. Commands run serially, so two
// triggers never overlap. A failing command is logged and the watcher keeps going.
// A read blocked on input is abandoned when ctx is done.
func (w *Watcher) Run(ctx context.Context) error {
	keys := make(chan string)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(keys)

		return w.read(gctx, keys)
	})

	g.Go(func() error {
		return w.dispatch(gctx, keys)
	})

	done := make(chan error, 1)
	go func() { done <- g.Wait() }()

	var err error
	select {
	case err = <-done:
	case <-ctx.Done():
		err = ctx.Err()
	}

	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	return nil
}

func (w *Watcher) read(ctx context.Context, keys chan<- string) error {
	scanner := bufio.NewScanner(w.in)
	scanner.Split(w.split)

	for scanner.Scan() {
		if scanner.Text() == interruptKey {
			w.log.Debug("interrupt key pressed")
			return context.Canceled
		}

		key := strings.TrimSpace(scanner.Text())
		if key == "" {
			continue
		}

		if key == w.bindings.Quit {
			w.log.Debug("quit key pressed")
			return nil
		}

		select {
		case keys <- key:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	return scanner.Err()
}

func (w *Watcher) dispatch(ctx context.Context, keys <-chan string) error {
	last := make(map[string]time.Time)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case key, ok := <-keys:
			if !ok {
				return nil
			}

			now := w.now()
			if prev, seen := last[key]; seen && now.Sub(prev) < w.debounce {
				w.log.WithField("key", key).Debug("ignoring repeated key")
				continue
			}

			last[key] = now

			w.fire(ctx, key)
		}
	}
}

func (w *Watcher) fire(ctx context.Context, key string) {
	name, ok := w.bindings.Lookup(key)
	if !ok {
		w.log.WithField("key", key).Warn("no check bound to key")
		return
	}

	log := w.log.WithFields(logrus.Fields{"key": key, "command": name})
	log.Debug("key triggered")

	if err := w.table.Invoke(ctx, name); err != nil {
		log.WithError(err).Error("triggered command failed")
	}
}
