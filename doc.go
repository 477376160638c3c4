// Package ga4nn trains the weights of small neural networks with a genetic
// algorithm.
//
// The module is split in two packages. Package nn builds networks out of
// layers of input, linear, sigmoid and feedback nodes wired together by
// connectors; recurrent wiring reads the previous pass's outputs. Package ga
// holds the optimizer: genotypes (parameter vectors with a cached fitness),
// a population ranked from best (lowest fitness) to worst, and pluggable
// selection, crossover, mutation and stop strategies driven by Evolve.
//
// Basic usage:
//
//	config, err := ga.LoadConfig("configs/xor.ini")
//	if err != nil {
//		log.Fatalf("Error loading config: %v", err)
//	}
//
//	net, err := config.Network.Build()
//	if err != nil {
//		log.Fatalf("Error building network: %v", err)
//	}
//	eval := ga.NetworkEvaluator(net, func(net *nn.Network) float64 {
//		out := net.Compute([]float64{1, 0})
//		return (out[0] - 1) * (out[0] - 1)
//	})
//
//	rng := config.Rand()
//	pop := ga.NewPopulation()
//	ga.FillPopulation(pop, config.NewCreator(eval, len(net.Weights()), rng), config.Evolution.PopSize)
//
//	monitor := config.NewMonitor(os.Stdout, nil)
//	evolver, err := config.NewEvolver(rng, monitor, nil)
//	if err != nil {
//		log.Fatalf("Error creating evolver: %v", err)
//	}
//	evolver.Run(pop)
//	net.SetWeights(monitor.Best().Params)
package ga4nn
