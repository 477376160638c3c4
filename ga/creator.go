package ga

import "math/rand"

// Creator produces fresh genotypes for an initial population.
type Creator interface {
	Make() *Genotype
}

// CreatorFunc adapts a plain function to Creator.
type CreatorFunc func() *Genotype

// Make calls f().
func (f CreatorFunc) Make() *Genotype { return f() }

// FillPopulation calls creator.Make exactly count times and inserts every
// result into p.
func FillPopulation(p *Population, creator Creator, count int) {
	for i := 0; i < count; i++ {
		p.Insert(creator.Make())
	}
}

// RandomCreator draws every parameter uniformly from [Lower, Upper).
type RandomCreator struct {
	Evaluator Evaluator
	Size      int
	Lower     float64
	Upper     float64
	Rand      *rand.Rand
}

// Make returns a new random genotype.
func (c *RandomCreator) Make() *Genotype {
	params := make([]float64, c.Size)
	for i := range params {
		params[i] = c.Lower + c.Rand.Float64()*(c.Upper-c.Lower)
	}
	return NewGenotype(c.Evaluator, params)
}
