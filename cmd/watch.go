package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ethpandaops/snapcheck/internal/testing/check"
	"github.com/ethpandaops/snapcheck/internal/trigger"
	"github.com/spf13/cobra"
)

var watchDebounce time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Fire checks from key presses",
	Long: `Reads key presses from stdin and runs the check bound to each. On a terminal every key
fires immediately. Piped input is read one key per line.

Bindings come from the key bindings file (YAML). When the file does not exist, "r" runs the
whole battery and 1-9 then a-z run the checks in battery order. Triggers never overlap.

Example bindings file:
  quit: q
  bindings:
    - {key: "r", check: all}
    - {key: "1", check: game_window}`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		restore, raw, err := trigger.RawInput(os.Stdin)
		if err != nil {
			return err
		}
		defer restore()

		out := io.Writer(os.Stdout)
		if raw {
			out = trigger.NewCRLFWriter(os.Stdout)
			Logger.SetOutput(trigger.NewCRLFWriter(Logger.Out))
		}

		h := newHarness(Logger, appConfig, out)

		tbl, err := h.commands()
		if err != nil {
			return err
		}

		bindings, err := resolveBindings(appConfig.BindingsPath)
		if err != nil {
			return err
		}

		if err := bindings.Validate(tbl); err != nil {
			return fmt.Errorf("invalid key bindings: %w", err)
		}

		printBindings(out, bindings)

		w := trigger.NewWatcher(Logger, bindings, tbl, os.Stdin, watchDebounce)
		if raw {
			w.KeyPerRune()
		}

		return w.Run(ctx)
	},
}

func resolveBindings(path string) (*trigger.Bindings, error) {
	bindings, err := trigger.LoadBindings(path)
	if errors.Is(err, fs.ErrNotExist) {
		Logger.WithField("path", path).Info("No key bindings file, using defaults")
		return trigger.DefaultBindings(check.Names()), nil
	}

	return bindings, err
}

func printBindings(w io.Writer, b *trigger.Bindings) {
	fmt.Fprintln(w, "Key bindings:")

	for _, binding := range b.Bindings {
		fmt.Fprintf(w, "  %-4s %s\n", binding.Key, binding.Command)
	}

	fmt.Fprintf(w, "  %-4s quit\n\n", b.Quit)
}

func init() {
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", trigger.DefaultDebounce, "Ignore a repeated key inside this window")
	rootCmd.AddCommand(watchCmd)
}
