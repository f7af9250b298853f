package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/qmap/topology"
)

// FidelityFn produces the fidelity of the edge (u,v) given an optional
// *rand.Rand source. It must be deterministic for a given RNG seed and must
// return a value in (0,1]; topology.New rejects anything else.
type FidelityFn func(rng *rand.Rand, u, v topology.Site) float64

// ConstantFidelity returns a FidelityFn that always yields f.
// Panics if f is outside (0,1].
func ConstantFidelity(f float64) FidelityFn {
	if !(f > 0 && f <= 1) {
		panic(fmt.Sprintf("builder: ConstantFidelity(%v) outside (0,1]", f))
	}
	return func(_ *rand.Rand, _, _ topology.Site) float64 { return f }
}

// UniformFidelity returns a FidelityFn drawing from U[lo,hi].
// Panics unless 0 < lo <= hi <= 1. The returned function needs a non-nil
// RNG; use it through WithUniformFidelity so BuildTopology can check that.
func UniformFidelity(lo, hi float64) FidelityFn {
	if !(lo > 0 && lo <= hi && hi <= 1) {
		panic(fmt.Sprintf("builder: UniformFidelity(%v,%v) invalid", lo, hi))
	}
	return func(rng *rand.Rand, _, _ topology.Site) float64 {
		return lo + rng.Float64()*(hi-lo)
	}
}
