package ga

import (
	"gonum.org/v1/gonum/floats"
)

// Crossover turns a set of parents into offspring. Parents are never
// modified; offspring are always fresh genotypes. Nil parents are skipped.
type Crossover interface {
	Cross(parents []*Genotype) []*Genotype
}

// DefaultLineSearchIterations is the number of step halvings tried by
// LocalSearch when Iterations is zero.
const DefaultLineSearchIterations = 10

// LocalSearch is a single-parent "crossover" performing one descent step.
//
// It estimates a descent direction by one-sided finite differences: every
// parameter is moved by Step on its own and the sign of the fitness change
// picks the direction for that parameter. It then walks along the direction
// starting at Lambda0, halving the step up to Iterations times, and keeps the
// first point that beats the parent. If none does, the offspring is an exact
// copy of the parent. Each parent passed in yields one offspring.
type LocalSearch struct {
	Step       float64
	Lambda0    float64
	Iterations int
}

func (c LocalSearch) Cross(parents []*Genotype) []*Genotype {
	var offspring []*Genotype
	for _, p := range compact(parents) {
		offspring = append(offspring, c.descend(p))
	}
	return offspring
}

func (c LocalSearch) descend(parent *Genotype) *Genotype {
	base := parent.Fitness()
	child := parent.Clone()
	n := parent.Len()
	if n == 0 {
		return child
	}

	direction := make([]float64, n)
	for i := range direction {
		child.Params[i] = parent.Params[i] + c.Step
		child.Reset()
		if child.Fitness()-base > 0 {
			direction[i] = -1.0
		} else {
			direction[i] = 1.0
		}
		child.Params[i] = parent.Params[i]
	}

	iterations := c.Iterations
	if iterations == 0 {
		iterations = DefaultLineSearchIterations
	}
	lambda := c.Lambda0
	for iter := 0; iter < iterations; iter++ {
		floats.AddScaledTo(child.Params, parent.Params, lambda, direction)
		child.Reset()
		if child.Fitness() < base {
			return child
		}
		lambda /= 2.0
	}
	return parent.Clone()
}

// Recombination moves two parents along the line joining them.
//
// With v = a - b, both offspring are translated by v scaled to length
// |v| + Gain*fitness(a)/fitness(b). A coordinate pushed above Top is set to
// Top - d/2 and one pushed below Bottom to Bottom + d/2, d being that
// coordinate's translation; large translations can therefore still leave
// values outside [Bottom, Top]. Parents are processed in pairs; an unpaired
// parent is passed through as a copy.
type Recombination struct {
	Bottom float64
	Top    float64
	Gain   float64
}

func (c Recombination) Cross(parents []*Genotype) []*Genotype {
	ps := compact(parents)
	var offspring []*Genotype
	for len(ps) >= 2 {
		a, b := c.recombine(ps[0], ps[1])
		offspring = append(offspring, a, b)
		ps = ps[2:]
	}
	for _, p := range ps {
		offspring = append(offspring, p.Clone())
	}
	return offspring
}

func (c Recombination) recombine(a, b *Genotype) (*Genotype, *Genotype) {
	n := min(a.Len(), b.Len())
	childA, childB := a.Clone(), b.Clone()
	if n == 0 {
		return childA, childB
	}

	v := make([]float64, n)
	floats.SubTo(v, a.Params[:n], b.Params[:n])
	length := floats.Norm(v, 2)
	if length <= 0 {
		return childA, childB
	}

	ratio := 1.0
	if fb := b.Fitness(); fb != 0 {
		ratio = a.Fitness() / fb
	}
	delta := c.Gain * ratio

	d := make([]float64, n)
	floats.ScaleTo(d, (length+delta)/length, v)
	floats.Add(childA.Params[:n], d)
	floats.Add(childB.Params[:n], d)
	for i, di := range d {
		childA.Params[i] = c.clamp(childA.Params[i], di)
		childB.Params[i] = c.clamp(childB.Params[i], di)
	}
	childA.Reset()
	childB.Reset()
	return childA, childB
}

func (c Recombination) clamp(x, d float64) float64 {
	if x > c.Top {
		return c.Top - d/2
	}
	if x < c.Bottom {
		return c.Bottom + d/2
	}
	return x
}
