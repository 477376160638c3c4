package ga

import (
	"fmt"
	"io"
	"log/slog"
	"math"

	"gonum.org/v1/gonum/stat"
)

// StopFunction is asked once per generation, with the freshly built
// population, whether evolution should stop. It is also where progress is
// reported and the best genotype across generations is tracked.
type StopFunction interface {
	Done(p *Population) bool
}

// TraceFunc writes a caller defined evaluation trace of the best genotype as
// part of the final report.
type TraceFunc func(w io.Writer, best *Genotype)

// GenerationStats summarises one observed generation.
type GenerationStats struct {
	Epoch    int
	Size     int
	Best     float64
	Worst    float64
	Mean     float64
	StdDev   float64
	Median   float64
	BestEver float64
}

// History is the list of observed generations in order.
type History []GenerationStats

// Monitor is the stock StopFunction. It stops after Epochs generations, or
// earlier when the best fitness reaches FitnessThreshold (if
// FitnessTermination is set) or has not improved for MaxStagnation
// generations (if non-zero).
//
// A Monitor keeps running state and must be created once per evolve run.
type Monitor struct {
	Epochs             int
	FitnessTermination bool
	FitnessThreshold   float64
	MaxStagnation      int

	// Out receives progress lines and the final report; nil discards them.
	Out io.Writer
	// Trace, when set, is appended to the final report.
	Trace  TraceFunc
	Logger *slog.Logger

	counter      int
	lastImproved int
	best         *Genotype
	history      History
	finished     bool
}

// NewMonitor returns a monitor stopping after epochs generations.
func NewMonitor(epochs int, out io.Writer) *Monitor {
	return &Monitor{Epochs: epochs, Out: out}
}

// Done implements StopFunction. Once it has returned true it keeps doing so.
// The population handed to the final call still competes for Best, but is
// not counted as an epoch.
func (m *Monitor) Done(p *Population) bool {
	if m.finished {
		return true
	}
	if m.counter >= m.Epochs {
		m.track(p.Beauty())
		return m.finish()
	}

	m.observe(p)
	m.counter++

	if m.converged() {
		return m.finish()
	}
	return false
}

// Best returns a copy of the best genotype seen so far, or nil.
func (m *Monitor) Best() *Genotype {
	if m.best == nil {
		return nil
	}
	return m.best.Clone()
}

// Epoch returns the number of generations observed.
func (m *Monitor) Epoch() int { return m.counter }

// History returns the per-generation statistics recorded so far.
func (m *Monitor) History() History { return m.history }

func (m *Monitor) observe(p *Population) {
	beauty, monster := p.Beauty(), p.Monster()
	if beauty == nil {
		m.logger().Warn("empty population", "epoch", m.counter+1)
		return
	}

	if m.track(beauty) {
		fmt.Fprintf(m.out(), "Epoch %d\tbest=%g\tworst=%g\n", m.counter+1, beauty.Fitness(), monster.Fitness())
		m.lastImproved = m.counter
	}

	fitnesses := p.Fitnesses()
	mean, std := stat.MeanStdDev(fitnesses, nil)
	if len(fitnesses) < 2 {
		std = 0
	}
	gs := GenerationStats{
		Epoch:    m.counter + 1,
		Size:     len(fitnesses),
		Best:     beauty.Fitness(),
		Worst:    monster.Fitness(),
		Mean:     mean,
		StdDev:   std,
		Median:   stat.Quantile(0.5, stat.Empirical, fitnesses, nil),
		BestEver: m.best.Fitness(),
	}
	m.history = append(m.history, gs)

	m.logger().Debug("generation observed",
		"epoch", gs.Epoch,
		"size", gs.Size,
		"best", gs.Best,
		"mean", gs.Mean,
		"best_ever", gs.BestEver)
}

// track records g as the best genotype when it beats the current one.
func (m *Monitor) track(g *Genotype) bool {
	if g == nil || (m.best != nil && !(g.Fitness() < m.best.Fitness())) {
		return false
	}
	// Offspring may be mutated in place later; keep our own copy.
	m.best = g.Clone()
	return true
}

func (m *Monitor) converged() bool {
	if m.best == nil {
		return false
	}
	if m.FitnessTermination && m.best.Fitness() <= m.FitnessThreshold {
		m.logger().Info("fitness threshold reached", "epoch", m.counter, "fitness", m.best.Fitness())
		return true
	}
	if m.MaxStagnation > 0 && m.counter-m.lastImproved > m.MaxStagnation {
		m.logger().Info("best fitness stagnated", "epoch", m.counter, "since", m.lastImproved+1)
		return true
	}
	return false
}

func (m *Monitor) finish() bool {
	if m.finished {
		return true
	}
	m.finished = true

	w := m.out()
	fmt.Fprintln(w, "=== Result ===")
	if m.best == nil {
		fmt.Fprintln(w, "No genotype observed.")
		return true
	}
	fmt.Fprintf(w, "Epochs: %d\n", m.counter)
	fmt.Fprintf(w, "Fitness: %g\n", m.best.Fitness())
	if m.Trace != nil {
		m.Trace(w, m.best)
	}
	fmt.Fprintln(w, "Parameters:")
	for _, v := range m.best.Params {
		fmt.Fprintf(w, "%g\n", v)
	}
	return true
}

func (m *Monitor) out() io.Writer {
	if m.Out == nil {
		return io.Discard
	}
	return m.Out
}

func (m *Monitor) logger() *slog.Logger {
	if m.Logger == nil {
		return slog.Default()
	}
	return m.Logger
}

// BestFitness returns the lowest best-of-generation fitness recorded, or +Inf
// for an empty history.
func (h History) BestFitness() float64 {
	best := math.Inf(1)
	for _, gs := range h {
		best = math.Min(best, gs.Best)
	}
	return best
}
