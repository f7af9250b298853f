package emit

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/qmap/mapping"
)

// Len returns the number of steps.
func (r *Result) Len() int { return len(r.Steps) }

// Swaps returns the inserted swap records in output order.
func (r *Result) Swaps() []SwapRecord {
	var out []SwapRecord
	for _, s := range r.Steps {
		if s.Kind == StepSwap {
			out = append(out, *s.Swap)
		}
	}
	return out
}

// SwapCount returns how many swaps were inserted.
func (r *Result) SwapCount() int {
	n := 0
	for _, s := range r.Steps {
		if s.Kind == StepSwap {
			n++
		}
	}
	return n
}

// ForcedCount returns how many swaps came from the stall fallback.
func (r *Result) ForcedCount() int {
	n := 0
	for _, s := range r.Steps {
		if s.Kind == StepSwap && s.Swap.Forced {
			n++
		}
	}
	return n
}

// SwapCost returns Σ (1 − fidelity) over inserted swaps.
func (r *Result) SwapCost() float64 {
	var c float64
	for _, s := range r.Steps {
		if s.Kind == StepSwap {
			c += s.Swap.Cost()
		}
	}
	return c
}

// Initial returns the layout before the first step.
func (r *Result) Initial() mapping.Layout { return r.Snapshots[0].Layout }

// Final returns the layout after the last step.
func (r *Result) Final() mapping.Layout { return r.Snapshots[len(r.Snapshots)-1].Layout }

// WriteIR writes the result in the qmap text dialect, one instruction per
// line. A current_layout line opens the program and follows every swap.
func (r *Result) WriteIR(w io.Writer) error {
	bw := bufio.NewWriter(w)
	snap := 1
	fmt.Fprintf(bw, "qmap.current_layout %s\n", r.Initial())
	for _, s := range r.Steps {
		switch s.Kind {
		case StepSingle:
			fmt.Fprintf(bw, "%s %%%s\n", s.Op.Gate, s.Sites[0])
		case StepTwo:
			fmt.Fprintf(bw, "qmap.two_qubit @%s(%%%s, %%%s)\n", s.Op.Gate, s.Sites[0], s.Sites[1])
		case StepSwap:
			if c := s.Swap.Cost(); c > 0 {
				fmt.Fprintf(bw, "qmap.insert_swap %%%s, %%%s {cost=%.2f}\n", s.Sites[0], s.Sites[1], c)
			} else {
				fmt.Fprintf(bw, "qmap.insert_swap %%%s, %%%s\n", s.Sites[0], s.Sites[1])
			}
			if snap < len(r.Snapshots) {
				fmt.Fprintf(bw, "qmap.current_layout %s\n", r.Snapshots[snap].Layout)
				snap++
			}
		}
	}
	return bw.Flush()
}

// IR returns WriteIR's output as a string.
func (r *Result) IR() string {
	var sb strings.Builder
	_ = r.WriteIR(&sb)
	return sb.String()
}
