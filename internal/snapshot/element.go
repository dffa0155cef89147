package snapshot

import (
	"errors"
	"fmt"
)

// ErrElementMissing is returned when a UI subtree index does not exist.
var ErrElementMissing = errors.New("ui element missing")

// Element is a node of a host UI tree.
type Element struct {
	Text     string     `yaml:"text"`
	Children []*Element `yaml:"children"`
}

// Child walks down the tree following child indices.
func (e *Element) Child(path ...int) (*Element, error) {
	cur := e
	for depth, idx := range path {
		if cur == nil {
			return nil, fmt.Errorf("%w: nil node at depth %d of %v", ErrElementMissing, depth, path)
		}

		if idx < 0 || idx >= len(cur.Children) || cur.Children[idx] == nil {
			return nil, fmt.Errorf("%w: child %d at depth %d of %v (has %d)", ErrElementMissing, idx, depth, path, len(cur.Children))
		}

		cur = cur.Children[idx]
	}

	if cur == nil {
		return nil, fmt.Errorf("%w: nil node at %v", ErrElementMissing, path)
	}

	return cur, nil
}
