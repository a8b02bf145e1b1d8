package ptfmine

import "github.com/pkg/errors"

// Config is the set of options for Mine.
type Config struct {
	// K is the number of top itemsets to return. Required, >= 1.
	K int
	// Parallel selects the parallel orchestrator over the sequential driver
	// path.
	Parallel bool
	// Workers is the fixed worker-pool size. Required (and must be >= 1)
	// iff Parallel is true; ignored otherwise.
	Workers int
}

// Validate rejects a Config before any work starts.
func (c Config) Validate() error {
	if c.K <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "k must be >= 1, got %d", c.K)
	}
	if c.Parallel && c.Workers <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "workers must be >= 1 when parallel, got %d", c.Workers)
	}
	return nil
}
