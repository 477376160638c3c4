package ga

import (
	"math"

	"github.com/google/btree"
)

// member is one population slot. seq breaks fitness ties in insertion order.
type member struct {
	fitness  float64
	seq      uint64
	genotype *Genotype
}

func lessMember(a, b member) bool {
	if a.fitness != b.fitness {
		return a.fitness < b.fitness
	}
	return a.seq < b.seq
}

// rankKey maps NaN to +Inf so that broken evaluations rank as monsters
// instead of corrupting the ordering.
func rankKey(fitness float64) float64 {
	if math.IsNaN(fitness) {
		return math.Inf(1)
	}
	return fitness
}

const btreeDegree = 16

// Population is a ranked multiset of genotypes ordered by fitness. Several
// genotypes may share a fitness value; ties keep insertion order. Take*
// methods return nil on an empty population.
type Population struct {
	tree *btree.BTreeG[member]
	seq  uint64
}

// NewPopulation creates an empty population.
func NewPopulation() *Population {
	return &Population{tree: btree.NewG[member](btreeDegree, lessMember)}
}

// Insert adds g ranked by its fitness, evaluating it if necessary. Nil
// genotypes are ignored.
func (p *Population) Insert(g *Genotype) {
	if g == nil {
		return
	}
	p.tree.ReplaceOrInsert(member{fitness: rankKey(g.Fitness()), seq: p.seq, genotype: g})
	p.seq++
}

// TakeBeauty removes and returns the member with the lowest fitness.
func (p *Population) TakeBeauty() *Genotype {
	m, ok := p.tree.DeleteMin()
	if !ok {
		return nil
	}
	return m.genotype
}

// TakeMonster removes and returns the member with the highest fitness.
func (p *Population) TakeMonster() *Genotype {
	m, ok := p.tree.DeleteMax()
	if !ok {
		return nil
	}
	return m.genotype
}

// TakeMiddle removes and returns the member at rank Count()/2.
func (p *Population) TakeMiddle() *Genotype {
	m, ok := p.at(p.tree.Len() / 2)
	if !ok {
		return nil
	}
	p.tree.Delete(m)
	return m.genotype
}

// Beauty returns the lowest fitness member without removing it.
func (p *Population) Beauty() *Genotype {
	m, ok := p.tree.Min()
	if !ok {
		return nil
	}
	return m.genotype
}

// Monster returns the highest fitness member without removing it.
func (p *Population) Monster() *Genotype {
	m, ok := p.tree.Max()
	if !ok {
		return nil
	}
	return m.genotype
}

// Count returns the number of members.
func (p *Population) Count() int { return p.tree.Len() }

// Clear removes all members.
func (p *Population) Clear() { p.tree.Clear(false) }

// Clone returns a population holding the same genotypes. The two populations
// can then be drained independently.
func (p *Population) Clone() *Population {
	return &Population{tree: p.tree.Clone(), seq: p.seq}
}

// Members returns the genotypes in ascending fitness order.
func (p *Population) Members() []*Genotype {
	out := make([]*Genotype, 0, p.tree.Len())
	p.tree.Ascend(func(m member) bool {
		out = append(out, m.genotype)
		return true
	})
	return out
}

// Fitnesses returns the ranking keys in ascending order.
func (p *Population) Fitnesses() []float64 {
	out := make([]float64, 0, p.tree.Len())
	p.tree.Ascend(func(m member) bool {
		out = append(out, m.fitness)
		return true
	})
	return out
}

func (p *Population) at(index int) (member, bool) {
	var (
		found member
		ok    bool
		i     int
	)
	p.tree.Ascend(func(m member) bool {
		if i == index {
			found, ok = m, true
			return false
		}
		i++
		return true
	})
	return found, ok
}
