package trigger

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	errEmptyKey     = errors.New("binding key is empty")
	errDuplicateKey = errors.New("key bound twice")
)

// DefaultQuitKey stops the watcher.
const DefaultQuitKey = "q"

// Binding maps one key to one command.
type Binding struct {
	Key     string `yaml:"key"`
	Command string `yaml:"check"`
}

// Bindings is the key-binding file.
type Bindings struct {
	Quit     string    `yaml:"quit"`
	Bindings []Binding `yaml:"bindings"`
}

// LoadBindings reads a YAML bindings file.
func LoadBindings(path string) (*Bindings, error) {
	data, err := os.ReadFile(path) //nolint:gosec // operator supplied path
	if err != nil {
		return nil, fmt.Errorf("reading bindings %s: %w", path, err)
	}

	var b Bindings
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("parsing bindings %s: %w", path, err)
	}

	if b.Quit == "" {
		b.Quit = DefaultQuitKey
	}

	return &b, nil
}

// DefaultBindings binds "r" to the battery and 1-9 then a-z (skipping r and q) to commands
// in order.
func DefaultBindings(commands []string) *Bindings {
	keys := make([]string, 0, 9+26)
	for c := '1'; c <= '9'; c++ {
		keys = append(keys, string(c))
	}

	for c := 'a'; c <= 'z'; c++ {
		if c == 'r' || c == 'q' {
			continue
		}

		keys = append(keys, string(c))
	}

	b := &Bindings{
		Quit:     DefaultQuitKey,
		Bindings: []Binding{{Key: "r", Command: RunAllCommand}},
	}

	for i, name := range commands {
		if i >= len(keys) {
			break
		}

		b.Bindings = append(b.Bindings, Binding{Key: keys[i], Command: name})
	}

	return b
}

// Validate checks every binding targets a registered command and no key is reused.
func (b *Bindings) Validate(table *Table) error {
	seen := map[string]bool{b.Quit: true}

	for _, binding := range b.Bindings {
		key := strings.TrimSpace(binding.Key)
		if key == "" {
			return fmt.Errorf("%w for %s", errEmptyKey, binding.Command)
		}

		if seen[key] {
			return fmt.Errorf("%w: %q", errDuplicateKey, key)
		}

		seen[key] = true

		if !table.Has(binding.Command) {
			return fmt.Errorf("binding %q: %w: %s (known: %s)",
				key, ErrUnknownCommand, binding.Command, strings.Join(table.sortedNames(), ", "))
		}
	}

	return nil
}

// Lookup returns the command bound to key.
func (b *Bindings) Lookup(key string) (string, bool) {
	for _, binding := range b.Bindings {
		if strings.TrimSpace(binding.Key) == key {
			return binding.Command, true
		}
	}

	return "", false
}
