package ga

import "math/rand"

// Mutation perturbs an offspring before it joins the next generation. It may
// modify g in place and returns the genotype to insert.
type Mutation interface {
	Mutate(g *Genotype) *Genotype
}

// NoMutation passes genotypes through untouched.
type NoMutation struct{}

func (NoMutation) Mutate(g *Genotype) *Genotype { return g }

// SwapMutation swaps two randomly chosen parameters with a chance of
// Probability percent. Both positions may coincide, in which case the
// parameters are unchanged.
type SwapMutation struct {
	Probability float64
	Rand        *rand.Rand
}

// NewSwapMutation returns a swap mutation firing with probability percent.
func NewSwapMutation(probability float64, rng *rand.Rand) *SwapMutation {
	return &SwapMutation{Probability: probability, Rand: rng}
}

func (m *SwapMutation) Mutate(g *Genotype) *Genotype {
	if g == nil || g.Len() == 0 || m.Probability <= 0 {
		return g
	}
	if m.Rand.Float64()*100 >= m.Probability {
		return g
	}
	i, j := m.Rand.Intn(g.Len()), m.Rand.Intn(g.Len())
	g.Params[i], g.Params[j] = g.Params[j], g.Params[i]
	g.Reset()
	return g
}
