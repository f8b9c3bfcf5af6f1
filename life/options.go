package life

import "math/rand/v2"

type settings struct {
	rng            *rand.Rand
	maxGenerations int
	limited        bool
	workers        int
}

// Option configures a Game at construction time
type Option func(*settings)

// WithSeed seeds the source used to randomize the initial grid, making runs reproducible
func WithSeed(seed uint64) Option {
	return func(s *settings) {
		s.rng = rand.New(rand.NewPCG(seed, 0))
	}
}

// WithRand injects the random source used to randomize the initial grid
func WithRand(rng *rand.Rand) Option {
	return func(s *settings) {
		s.rng = rng
	}
}

// WithMaxGenerations bounds the run: IsMaxGenerationsExceeded turns true once the generation
// counter reaches n. Without this option the game is unbounded.
func WithMaxGenerations(n int) Option {
	return func(s *settings) {
		s.maxGenerations = n
		s.limited = true
	}
}

// WithWorkers evaluates each generation across n goroutines. n <= 1 keeps Step sequential.
func WithWorkers(n int) Option {
	return func(s *settings) {
		s.workers = n
	}
}

func newSettings(opts []Option) settings {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return s
}
