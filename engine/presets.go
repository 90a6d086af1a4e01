// Package engine - parameter presets by problem size.
//
// Three tiers tuned for city counts under 50, 50–100, and above 100.
// The tiers trade run time for quality: larger instances get bigger
// populations, longer budgets, stronger mutation and deeper elitism.
package engine

// Preset bundles one configuration per engine plus a shared generation
// budget for the comparison harness.
type Preset struct {
	SGA         SGAConfig
	HGA         HGAConfig
	PSO         PSOConfig
	Generations int
}

// SmallPreset targets instances under 50 cities: fast runs, good for
// testing and demos.
func SmallPreset() Preset {
	return Preset{
		SGA: SGAConfig{Population: 100, CrossoverRate: 0.85, MutationRate: 0.15, TournamentK: 3, Elitism: 5},
		HGA: HGAConfig{
			Population: 50, CrossoverRate: 0.7, MutationRate: 0.15, TournamentK: 3, Elitism: 5,
			ACORate: 0.5, Alpha: 1.0, Beta: 3.0, Evaporation: 0.3, Q: 100,
			InitialPheromone: 0.1, PheromoneFloor: DefaultPheromoneFloor,
			EliteDeposit: 3, Immigrants: 3,
		},
		PSO: PSOConfig{
			Particles: 15, Inertia: 0.4, Cognitive: 2.0, Social: 2.0,
			UseLocalSearch: true, LocalSearchPasses: DefaultLocalSearchPasses,
		},
		Generations: 750,
	}
}

// MediumPreset targets 50–100 cities: balanced quality and run time.
func MediumPreset() Preset {
	return Preset{
		SGA: SGAConfig{Population: 100, CrossoverRate: 0.85, MutationRate: 0.15, TournamentK: 3, Elitism: 10},
		HGA: HGAConfig{
			Population: 100, CrossoverRate: 0.7, MutationRate: 0.15, TournamentK: 3, Elitism: 5,
			ACORate: 0.5, Alpha: 1.0, Beta: 3.0, Evaporation: 0.3, Q: 100,
			InitialPheromone: 0.1, PheromoneFloor: DefaultPheromoneFloor,
			EliteDeposit: 5, Immigrants: 5,
		},
		PSO: PSOConfig{
			Particles: 25, Inertia: 0.5, Cognitive: 2.0, Social: 2.0,
			UseLocalSearch: true, LocalSearchPasses: DefaultLocalSearchPasses,
		},
		Generations: 1500,
	}
}

// LargePreset targets instances above 100 cities: maximum solution
// quality at the cost of long runs.
func LargePreset() Preset {
	return Preset{
		SGA: SGAConfig{Population: 200, CrossoverRate: 0.85, MutationRate: 0.20, TournamentK: 5, Elitism: 15},
		HGA: HGAConfig{
			Population: 200, CrossoverRate: 0.65, MutationRate: 0.20, TournamentK: 5, Elitism: 10,
			ACORate: 0.6, Alpha: 1.2, Beta: 2.5, Evaporation: 0.4, Q: 100,
			InitialPheromone: 0.05, PheromoneFloor: DefaultPheromoneFloor,
			EliteDeposit: 10, Immigrants: 8,
		},
		PSO: PSOConfig{
			Particles: 30, Inertia: 0.6, Cognitive: 1.8, Social: 2.2,
			UseLocalSearch: true, LocalSearchPasses: DefaultLocalSearchPasses,
		},
		Generations: 5000,
	}
}

// PresetFor selects the tier for a city count: <50 small, ≤100 medium,
// otherwise large.
func PresetFor(numCities int) Preset {
	switch {
	case numCities < 50:
		return SmallPreset()
	case numCities <= 100:
		return MediumPreset()
	default:
		return LargePreset()
	}
}
