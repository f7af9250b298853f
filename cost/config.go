package cost

import (
	"errors"
	"fmt"
)

// ErrBadConfig indicates an out-of-range tunable.
var ErrBadConfig = errors.New("cost: invalid configuration")

// Default tunables. A penalty of 10 makes a 10% fidelity loss weigh about
// as much as one extra hop.
const (
	DefaultWindow          = 8
	DefaultDecay           = 0.5
	DefaultFidelityPenalty = 10.0
)

// Config holds the evaluator tunables.
type Config struct {
	// Window is the number of lookahead two-qubit operations scored.
	// Zero disables the secondary term.
	Window int `toml:"window"`

	// Decay weighs lookahead position pos by Decay^(pos+1); in (0,1).
	Decay float64 `toml:"decay"`

	// FidelityPenalty is k in k·(1−f); non-negative.
	FidelityPenalty float64 `toml:"fidelity_penalty"`
}

// DefaultConfig returns {Window: 8, Decay: 0.5, FidelityPenalty: 10}.
func DefaultConfig() Config {
	return Config{
		Window:          DefaultWindow,
		Decay:           DefaultDecay,
		FidelityPenalty: DefaultFidelityPenalty,
	}
}

// Validate reports the first out-of-range field.
func (c Config) Validate() error {
	switch {
	case c.Window < 0:
		return fmt.Errorf("Validate: window=%d < 0: %w", c.Window, ErrBadConfig)
	case !(c.Decay > 0 && c.Decay < 1):
		return fmt.Errorf("Validate: decay=%v outside (0,1): %w", c.Decay, ErrBadConfig)
	case c.FidelityPenalty < 0:
		return fmt.Errorf("Validate: fidelity_penalty=%v < 0: %w", c.FidelityPenalty, ErrBadConfig)
	}
	return nil
}
