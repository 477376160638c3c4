package ga

// Selection removes parents from the population being drained. Returned
// entries are nil when the population ran out during the draw.
type Selection interface {
	Parents(p *Population) []*Genotype
	// Arity is the number of parents taken per call. Population sizes should
	// be a multiple of it.
	Arity() int
}

// BestSelection takes the single best member.
type BestSelection struct{}

func (BestSelection) Parents(p *Population) []*Genotype {
	return []*Genotype{p.TakeBeauty()}
}

func (BestSelection) Arity() int { return 1 }

// BestWorstSelection pairs the best member with the worst one.
type BestWorstSelection struct{}

func (BestWorstSelection) Parents(p *Population) []*Genotype {
	return []*Genotype{p.TakeBeauty(), p.TakeMonster()}
}

func (BestWorstSelection) Arity() int { return 2 }

// BestBestSelection pairs the two best members.
type BestBestSelection struct{}

func (BestBestSelection) Parents(p *Population) []*Genotype {
	return []*Genotype{p.TakeBeauty(), p.TakeBeauty()}
}

func (BestBestSelection) Arity() int { return 2 }

// compact drops nil genotypes, keeping order.
func compact(gs []*Genotype) []*Genotype {
	out := gs[:0:0]
	for _, g := range gs {
		if g != nil {
			out = append(out, g)
		}
	}
	return out
}
