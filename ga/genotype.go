// Package ga implements a generational genetic algorithm over real-valued
// parameter vectors, minimising a caller supplied loss.
package ga

// Evaluator computes the loss of a parameter vector. Lower is better
// everywhere in this package.
type Evaluator interface {
	Evaluate(params []float64) float64
}

// EvaluatorFunc adapts a plain function to Evaluator.
type EvaluatorFunc func(params []float64) float64

// Evaluate calls f(params).
func (f EvaluatorFunc) Evaluate(params []float64) float64 { return f(params) }

// Genotype is a candidate solution: a parameter vector plus a lazily
// computed, cached fitness.
//
// Params may be modified in place, but Reset must be called afterwards so the
// next Fitness call recomputes. Evaluators commonly share one network, so
// Fitness calls against the same evaluator must not run concurrently.
type Genotype struct {
	Params []float64

	eval      Evaluator
	fitness   float64
	evaluated bool
}

// NewGenotype creates a genotype scored by eval. The genotype takes ownership
// of params.
func NewGenotype(eval Evaluator, params []float64) *Genotype {
	return &Genotype{Params: params, eval: eval}
}

// Fitness returns the cached fitness, evaluating it first when needed.
func (g *Genotype) Fitness() float64 {
	if !g.evaluated {
		if g.eval == nil {
			panic("ga: genotype has no evaluator")
		}
		g.fitness = g.eval.Evaluate(g.Params)
		g.evaluated = true
	}
	return g.fitness
}

// Evaluated reports whether a fitness value is cached.
func (g *Genotype) Evaluated() bool { return g.evaluated }

// Reset drops the cached fitness.
func (g *Genotype) Reset() { g.evaluated = false }

// Evaluator returns the evaluator scoring this genotype.
func (g *Genotype) Evaluator() Evaluator { return g.eval }

// Len returns the number of parameters.
func (g *Genotype) Len() int { return len(g.Params) }

// Clone returns a deep copy of the parameters sharing the evaluator. The
// cached fitness, if any, is carried over.
func (g *Genotype) Clone() *Genotype {
	params := make([]float64, len(g.Params))
	copy(params, g.Params)
	return &Genotype{
		Params:    params,
		eval:      g.eval,
		fitness:   g.fitness,
		evaluated: g.evaluated,
	}
}
