package catalog

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Bound is a numeric range endpoint. It keeps the number as written so that
// integer bounds stay exact over the whole int64 range, which a float64
// would not.
type Bound struct {
	text string
}

// NewBound wraps the textual form of a number.
func NewBound(text string) *Bound {
	return &Bound{text: text}
}

func (b *Bound) String() string {
	if b == nil {
		return ""
	}

	return b.text
}

// UnmarshalYAML accepts any scalar.
func (b *Bound) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: bound must be a number", node.Line)
	}

	b.text = node.Value

	return nil
}

// UnmarshalTOML accepts integers, floats and strings.
func (b *Bound) UnmarshalTOML(v any) error {
	switch v := v.(type) {
	default:
		return fmt.Errorf("bound must be a number, got %T", v)
	case int64:
		b.text = strconv.FormatInt(v, 10)
	case float64:
		b.text = strconv.FormatFloat(v, 'g', -1, 64)
	case string:
		b.text = v
	}

	return nil
}

func (b *Bound) intOr(fallback int64) (int64, error) {
	if b == nil {
		return fallback, nil
	}

	v, err := strconv.ParseInt(b.text, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not an integer: %w", b.text, errors.Unwrap(err))
	}

	return v, nil
}

func (b *Bound) floatOr(fallback float64) (float64, error) {
	if b == nil {
		return fallback, nil
	}

	v, err := strconv.ParseFloat(b.text, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number: %w", b.text, errors.Unwrap(err))
	}

	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q is not a finite number", b.text)
	}

	return v, nil
}
