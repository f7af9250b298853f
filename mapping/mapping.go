package mapping

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/qmap/circuit"
	"github.com/katalvlaran/qmap/topology"
)

// Sentinel errors for mapping construction and updates.
var (
	// ErrNotBijective indicates an assignment that is not a permutation.
	ErrNotBijective = errors.New("mapping: assignment is not a bijection")

	// ErrUnmapped indicates a qubit or site outside the mapping.
	ErrUnmapped = errors.New("mapping: qubit or site not mapped")

	// ErrInvalidSwap indicates a swap of a site with itself or with an
	// unmapped site.
	ErrInvalidSwap = errors.New("mapping: invalid swap")
)

// Mapping is the mutable bijection logical qubit ↔ site.
type Mapping struct {
	phys []topology.Site // indexed by circuit.Qubit
	log  []circuit.Qubit // indexed by topology.Site
}

// Identity returns the mapping q_i → P_i over n qubits.
func Identity(n int) *Mapping {
	m := &Mapping{
		phys: make([]topology.Site, n),
		log:  make([]circuit.Qubit, n),
	}
	for i := 0; i < n; i++ {
		m.phys[i] = topology.Site(i)
		m.log[i] = circuit.Qubit(i)
	}
	return m
}

// New builds a mapping from assign, where assign[q] is the site of qubit q.
// assign must be a permutation of 0..len(assign)-1.
func New(assign []topology.Site) (*Mapping, error) {
	n := len(assign)
	m := &Mapping{
		phys: make([]topology.Site, n),
		log:  make([]circuit.Qubit, n),
	}
	seen := make([]bool, n)
	for q, s := range assign {
		if s < 0 || int(s) >= n {
			return nil, fmt.Errorf("New: %s → %s out of 0..%d: %w", circuit.Qubit(q), s, n-1, ErrNotBijective)
		}
		if seen[s] {
			return nil, fmt.Errorf("New: %s assigned twice: %w", s, ErrNotBijective)
		}
		seen[s] = true
		m.phys[q] = s
		m.log[s] = circuit.Qubit(q)
	}
	return m, nil
}

// Len returns the number of qubits (equal to the number of sites).
func (m *Mapping) Len() int { return len(m.phys) }

// PhysicalOf returns the site currently holding q.
func (m *Mapping) PhysicalOf(q circuit.Qubit) (topology.Site, error) {
	if q < 0 || int(q) >= len(m.phys) {
		return 0, fmt.Errorf("PhysicalOf(%s): %w", q, ErrUnmapped)
	}
	return m.phys[q], nil
}

// LogicalAt returns the qubit currently at s.
func (m *Mapping) LogicalAt(s topology.Site) (circuit.Qubit, error) {
	if s < 0 || int(s) >= len(m.log) {
		return 0, fmt.Errorf("LogicalAt(%s): %w", s, ErrUnmapped)
	}
	return m.log[s], nil
}

// ApplySwap exchanges the occupants of sites a and b.
// Complexity: O(1).
func (m *Mapping) ApplySwap(a, b topology.Site) error {
	n := topology.Site(len(m.log))
	if a < 0 || a >= n || b < 0 || b >= n {
		return fmt.Errorf("ApplySwap(%s,%s): %w", a, b, ErrInvalidSwap)
	}
	if a == b {
		return fmt.Errorf("ApplySwap(%s,%s): same site: %w", a, b, ErrInvalidSwap)
	}
	qa, qb := m.log[a], m.log[b]
	m.log[a], m.log[b] = qb, qa
	m.phys[qa], m.phys[qb] = b, a
	return nil
}

// Clone returns an independent copy.
func (m *Mapping) Clone() *Mapping {
	c := &Mapping{
		phys: make([]topology.Site, len(m.phys)),
		log:  make([]circuit.Qubit, len(m.log)),
	}
	copy(c.phys, m.phys)
	copy(c.log, m.log)
	return c
}

// Snapshot returns an immutable copy of the current assignment.
func (m *Mapping) Snapshot() Layout {
	out := make([]topology.Site, len(m.phys))
	copy(out, m.phys)
	return Layout{sites: out}
}

// Validate checks that the two tables are mutual inverses covering every
// qubit and site exactly once.
func (m *Mapping) Validate() error {
	if len(m.phys) != len(m.log) {
		return fmt.Errorf("Validate: %d qubits vs %d sites: %w", len(m.phys), len(m.log), ErrNotBijective)
	}
	for q, s := range m.phys {
		if s < 0 || int(s) >= len(m.log) || m.log[s] != circuit.Qubit(q) {
			return fmt.Errorf("Validate: %s → %s not inverted: %w", circuit.Qubit(q), s, ErrNotBijective)
		}
	}
	return nil
}

// String renders the mapping as "{q0->P0, q1->P1}".
func (m *Mapping) String() string { return m.Snapshot().String() }

// Layout is a frozen assignment, indexed by logical qubit.
type Layout struct {
	sites []topology.Site
}

// Len returns the number of qubits in the layout.
func (l Layout) Len() int { return len(l.sites) }

// Site returns the site of q, or -1 if q is outside the layout.
func (l Layout) Site(q circuit.Qubit) topology.Site {
	if q < 0 || int(q) >= len(l.sites) {
		return -1
	}
	return l.sites[q]
}

// Sites returns a copy of the qubit → site table.
func (l Layout) Sites() []topology.Site {
	out := make([]topology.Site, len(l.sites))
	copy(out, l.sites)
	return out
}

// Mapping rebuilds a mutable Mapping from the layout.
func (l Layout) Mapping() (*Mapping, error) { return New(l.sites) }

// Equal reports whether two layouts assign every qubit to the same site.
func (l Layout) Equal(o Layout) bool {
	if len(l.sites) != len(o.sites) {
		return false
	}
	for i := range l.sites {
		if l.sites[i] != o.sites[i] {
			return false
		}
	}
	return true
}

// String renders "{q0->P0, q1->P1}", the form used by the IR dump.
func (l Layout) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for q, s := range l.sites {
		if q > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s->%s", circuit.Qubit(q), s)
	}
	sb.WriteByte('}')
	return sb.String()
}
