package ga

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Evolver runs the generational loop.
//
// Each generation drains the previous population completely: Selection takes
// parents, Crossover turns them into offspring, Mutation perturbs every
// offspring and the result joins the next population. After a generation is
// built the Stop function decides whether to continue. Population sizes
// should be a multiple of the selection arity; a short final draw is handled
// by skipping the missing parents.
type Evolver struct {
	Selection Selection
	Crossover Crossover
	// Mutation defaults to NoMutation.
	Mutation Mutation
	Stop     StopFunction
	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// Evolve runs an Evolver built from the given strategies.
func Evolve(initial *Population, selection Selection, crossover Crossover, mutation Mutation, stop StopFunction) *Population {
	e := &Evolver{
		Selection: selection,
		Crossover: crossover,
		Mutation:  mutation,
		Stop:      stop,
	}
	return e.Run(initial)
}

// Run evolves a copy of initial until Stop reports done and returns the
// final generation. initial itself is left untouched.
func (e *Evolver) Run(initial *Population) *Population {
	logger := e.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("run", uuid.NewString())
	mutation := e.Mutation
	if mutation == nil {
		mutation = NoMutation{}
	}

	start := time.Now()
	child := initial.Clone()
	generation := 0
	logger.Info("evolution started", "size", child.Count())

	for !e.Stop.Done(child) {
		generation++
		genStart := time.Now()

		parents := child
		child = NewPopulation()
		for parents.Count() > 0 {
			selected := compact(e.Selection.Parents(parents))
			if len(selected) == 0 {
				logger.Warn("selection returned no parents", "generation", generation, "remaining", parents.Count())
				break
			}
			for _, offspring := range e.Crossover.Cross(selected) {
				if offspring == nil {
					continue
				}
				child.Insert(mutation.Mutate(offspring))
			}
		}

		logger.Debug("generation finished",
			"generation", generation,
			"size", child.Count(),
			"elapsed", time.Since(genStart))
	}

	logger.Info("evolution finished",
		"generations", generation,
		"size", child.Count(),
		"elapsed", time.Since(start))
	return child
}
