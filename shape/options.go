package shape

// Weights are the relative contributions of the desirability terms.
type Weights struct {
	Adjacency float64 // favors candidates touching exactly two shape cells
	Radial    float64 // favors candidates near the expected radius
	Balance   float64 // penalizes candidates that drag the centroid
}

// DefaultWeights returns the 0.4/0.4/0.2 split.
func DefaultWeights() Weights {
	return Weights{Adjacency: 0.4, Radial: 0.4, Balance: 0.2}
}

// Params are the tunable constants of a Grower.
type Params struct {
	Weights Weights

	// Randomness is the amplitude of uniform noise added to each desirability
	// score before ranking. Zero ranks greedily.
	Randomness float64

	// Admit is the probability that a ranked candidate after the first is
	// taken when its frontier cell is expanded. Skipped candidates stay
	// eligible and the frontier cell is revisited later.
	Admit float64

	// SmoothProbability is the chance of running the notch-filling pass on a
	// shape that stopped short of its target.
	SmoothProbability float64

	// Candidates is how many shapes GrowBest grows before picking one.
	// Values below 2 are raised to 2.
	Candidates int

	// Jitter bounds the symmetric noise added to quality scores in GrowBest.
	Jitter float64

	// ConnectProbability is the chance that a follow-up shape in Layout is
	// seeded on the boundary of earlier shapes rather than at the nearest
	// free cell.
	ConnectProbability float64
}

// DefaultParams returns the parameters used by hexlogo.
func DefaultParams() Params {
	return Params{
		Weights:            DefaultWeights(),
		Randomness:         0.3,
		Admit:              0.85,
		SmoothProbability:  0.7,
		Candidates:         3,
		Jitter:             0.1,
		ConnectProbability: 0.7,
	}
}

// Option adjusts Params when creating a Grower.
type Option func(*Params)

// WithWeights overrides the desirability weights.
func WithWeights(w Weights) Option {
	return func(p *Params) {
		p.Weights = w
	}
}

// WithRandomness sets the score noise amplitude.
func WithRandomness(r float64) Option {
	return func(p *Params) {
		p.Randomness = max(r, 0)
	}
}

// WithAdmit sets the admission probability, clamped to [0, 1].
func WithAdmit(a float64) Option {
	return func(p *Params) {
		p.Admit = min(max(a, 0), 1)
	}
}

// WithSmoothProbability sets the smoothing probability, clamped to [0, 1].
func WithSmoothProbability(pr float64) Option {
	return func(p *Params) {
		p.SmoothProbability = min(max(pr, 0), 1)
	}
}

// WithCandidates sets how many candidates GrowBest compares.
func WithCandidates(n int) Option {
	return func(p *Params) {
		p.Candidates = n
	}
}

// WithJitter sets the quality jitter bound.
func WithJitter(j float64) Option {
	return func(p *Params) {
		p.Jitter = max(j, 0)
	}
}

// WithConnectProbability sets the boundary-seeding probability, clamped to
// [0, 1].
func WithConnectProbability(pr float64) Option {
	return func(p *Params) {
		p.ConnectProbability = min(max(pr, 0), 1)
	}
}

// WithParams replaces all parameters at once.
func WithParams(params Params) Option {
	return func(p *Params) {
		*p = params
	}
}
