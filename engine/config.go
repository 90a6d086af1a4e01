// Package engine - engine configurations with documented defaults.
//
// Plain exported structs with Default* constructors and Validate methods.
// All parameter validation happens here, at configuration load; the hot
// loops trust validated values. Every Validate failure wraps ErrBadConfig
// so callers can match the class with errors.Is and still read the field
// in the message.
package engine

import "fmt"

// Defaults - single source of truth, mirrored by Default*Config.
const (
	// DefaultPopulation is the GA population size (SGA and the HGA-ACO
	// GA sub-population).
	DefaultPopulation = 100

	// DefaultCrossoverRate is the probability a selected pair undergoes
	// ordered crossover; otherwise one parent passes through unchanged.
	DefaultCrossoverRate = 0.85

	// DefaultMutationRate is the per-position swap mutation probability.
	DefaultMutationRate = 0.15

	// DefaultTournamentK is the tournament size for parent selection.
	DefaultTournamentK = 3

	// DefaultElitism is the number of top individuals carried unchanged
	// into the next generation.
	DefaultElitism = 5

	// DefaultACORate is the fraction of the HGA-ACO population size
	// constructed by ants each generation.
	DefaultACORate = 0.5

	// DefaultAlpha weights pheromone desirability in ant construction.
	DefaultAlpha = 1.0

	// DefaultBeta weights inverse distance in ant construction.
	DefaultBeta = 3.0

	// DefaultEvaporation is the per-generation pheromone decay rate ρ.
	DefaultEvaporation = 0.3

	// DefaultQ scales pheromone deposits: each elite tour adds Q/cost to
	// every one of its edges.
	DefaultQ = 100.0

	// DefaultInitialPheromone seeds every edge of a fresh matrix.
	DefaultInitialPheromone = 0.1

	// DefaultPheromoneFloor is the small positive clamp that keeps
	// construction probabilities away from zero-probability traps.
	DefaultPheromoneFloor = 1e-6

	// DefaultEliteDeposit is how many combined-pool top tours deposit.
	DefaultEliteDeposit = 3

	// DefaultImmigrants is how many best ant tours are injected into the
	// GA sub-population each generation.
	DefaultImmigrants = 3

	// DefaultParticles is the PSO swarm size.
	DefaultParticles = 15

	// DefaultInertia / DefaultCognitive / DefaultSocial are the velocity
	// retention weights (w, c1, c2).
	DefaultInertia   = 0.4
	DefaultCognitive = 2.0
	DefaultSocial    = 2.0

	// DefaultLocalSearchPasses bounds the 2-opt refinement per particle
	// per generation; the cap is mandatory (no unbounded work per tick).
	DefaultLocalSearchPasses = 2
)

// SGAConfig parameterizes the standard genetic algorithm.
type SGAConfig struct {
	Population    int
	CrossoverRate float64
	MutationRate  float64
	TournamentK   int
	Elitism       int
}

// DefaultSGAConfig returns the documented defaults.
func DefaultSGAConfig() SGAConfig {
	return SGAConfig{
		Population:    DefaultPopulation,
		CrossoverRate: DefaultCrossoverRate,
		MutationRate:  DefaultMutationRate,
		TournamentK:   DefaultTournamentK,
		Elitism:       DefaultElitism,
	}
}

// Validate checks internal consistency.
func (c SGAConfig) Validate() error {
	if c.Population < 2 {
		return fmt.Errorf("%w: population must be ≥ 2, got %d", ErrBadConfig, c.Population)
	}
	if c.CrossoverRate < 0 || c.CrossoverRate > 1 {
		return fmt.Errorf("%w: crossover rate must be in [0,1], got %v", ErrBadConfig, c.CrossoverRate)
	}
	if c.MutationRate < 0 || c.MutationRate > 1 {
		return fmt.Errorf("%w: mutation rate must be in [0,1], got %v", ErrBadConfig, c.MutationRate)
	}
	if c.TournamentK < 1 || c.TournamentK > c.Population {
		return fmt.Errorf("%w: tournament size must be in [1,population], got %d", ErrBadConfig, c.TournamentK)
	}
	if c.Elitism < 0 || c.Elitism >= c.Population {
		return fmt.Errorf("%w: elitism must be in [0,population), got %d", ErrBadConfig, c.Elitism)
	}

	return nil
}

// HGAConfig parameterizes the hybrid GA/ACO engine. The GA fields mirror
// SGAConfig; the remainder governs ant construction and the pheromone
// matrix.
type HGAConfig struct {
	Population    int
	CrossoverRate float64
	MutationRate  float64
	TournamentK   int
	Elitism       int

	// ACORate is the ant sub-population size as a fraction of Population
	// (at least one ant per generation once > 0).
	ACORate float64

	Alpha            float64
	Beta             float64
	Evaporation      float64 // ρ, in (0,1)
	Q                float64
	InitialPheromone float64
	PheromoneFloor   float64
	EliteDeposit     int
	Immigrants       int
}

// DefaultHGAConfig returns the documented defaults.
func DefaultHGAConfig() HGAConfig {
	return HGAConfig{
		Population:       50,
		CrossoverRate:    0.7,
		MutationRate:     DefaultMutationRate,
		TournamentK:      DefaultTournamentK,
		Elitism:          DefaultElitism,
		ACORate:          DefaultACORate,
		Alpha:            DefaultAlpha,
		Beta:             DefaultBeta,
		Evaporation:      DefaultEvaporation,
		Q:                DefaultQ,
		InitialPheromone: DefaultInitialPheromone,
		PheromoneFloor:   DefaultPheromoneFloor,
		EliteDeposit:     DefaultEliteDeposit,
		Immigrants:       DefaultImmigrants,
	}
}

// Validate checks internal consistency.
func (c HGAConfig) Validate() error {
	ga := SGAConfig{
		Population:    c.Population,
		CrossoverRate: c.CrossoverRate,
		MutationRate:  c.MutationRate,
		TournamentK:   c.TournamentK,
		Elitism:       c.Elitism,
	}
	if err := ga.Validate(); err != nil {
		return err
	}
	if c.ACORate < 0 || c.ACORate > 1 {
		return fmt.Errorf("%w: ACO rate must be in [0,1], got %v", ErrBadConfig, c.ACORate)
	}
	if c.Alpha < 0 || c.Beta < 0 {
		return fmt.Errorf("%w: alpha and beta must be non-negative", ErrBadConfig)
	}
	if c.Evaporation <= 0 || c.Evaporation >= 1 {
		return fmt.Errorf("%w: evaporation must be in (0,1), got %v", ErrBadConfig, c.Evaporation)
	}
	if c.Q <= 0 {
		return fmt.Errorf("%w: Q must be positive, got %v", ErrBadConfig, c.Q)
	}
	if c.InitialPheromone <= 0 || c.PheromoneFloor <= 0 {
		return fmt.Errorf("%w: pheromone seed and floor must be positive", ErrBadConfig)
	}
	if c.PheromoneFloor > c.InitialPheromone {
		return fmt.Errorf("%w: pheromone floor exceeds the initial level", ErrBadConfig)
	}
	if c.EliteDeposit < 1 {
		return fmt.Errorf("%w: elite deposit count must be ≥ 1, got %d", ErrBadConfig, c.EliteDeposit)
	}
	if c.Immigrants < 0 || c.Immigrants >= c.Population {
		return fmt.Errorf("%w: immigrants must be in [0,population), got %d", ErrBadConfig, c.Immigrants)
	}

	return nil
}

// PSOConfig parameterizes the discrete particle swarm.
type PSOConfig struct {
	Particles int
	Inertia   float64 // w: probability of retaining each old velocity op
	Cognitive float64 // c1: weight toward the personal best
	Social    float64 // c2: weight toward the global best

	// UseLocalSearch toggles the bounded 2-opt pass after each move.
	UseLocalSearch    bool
	LocalSearchPasses int

	// VelocityCap bounds the velocity length; 0 means 2·n.
	VelocityCap int
}

// DefaultPSOConfig returns the documented defaults.
func DefaultPSOConfig() PSOConfig {
	return PSOConfig{
		Particles:         DefaultParticles,
		Inertia:           DefaultInertia,
		Cognitive:         DefaultCognitive,
		Social:            DefaultSocial,
		UseLocalSearch:    true,
		LocalSearchPasses: DefaultLocalSearchPasses,
		VelocityCap:       0,
	}
}

// Validate checks internal consistency.
func (c PSOConfig) Validate() error {
	if c.Particles < 2 {
		return fmt.Errorf("%w: swarm needs ≥ 2 particles, got %d", ErrBadConfig, c.Particles)
	}
	if c.Inertia < 0 || c.Inertia > 1 {
		return fmt.Errorf("%w: inertia must be in [0,1], got %v", ErrBadConfig, c.Inertia)
	}
	if c.Cognitive < 0 || c.Social < 0 {
		return fmt.Errorf("%w: cognitive/social weights must be non-negative", ErrBadConfig)
	}
	if c.UseLocalSearch && c.LocalSearchPasses < 1 {
		return fmt.Errorf("%w: local search needs ≥ 1 pass, got %d", ErrBadConfig, c.LocalSearchPasses)
	}
	if c.VelocityCap < 0 {
		return fmt.Errorf("%w: velocity cap must be ≥ 0, got %d", ErrBadConfig, c.VelocityCap)
	}

	return nil
}
