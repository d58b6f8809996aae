package sim

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cory-johannsen/dicesim/internal/dice"
)

// Simulator wraps a Source and logger to provide logged simulation runs.
// Every run is logged at info level with a run id, parameters and elapsed time.
type Simulator struct {
	src    dice.Source
	logger *zap.Logger
}

// NewSimulator creates a Simulator that draws from src and logs to logger.
//
// Precondition: src and logger must be non-nil.
func NewSimulator(src dice.Source, logger *zap.Logger) *Simulator {
	return &Simulator{src: src, logger: logger}
}

// Run validates p, runs the simulation and logs the outcome.
//
// Postcondition: Returns a Result satisfying all invariants, or the
// validation error when p is invalid.
func (s *Simulator) Run(p Params) (Result, error) {
	runID := uuid.New().String()
	if err := p.Validate(); err != nil {
		s.logger.Warn("rejected simulation parameters",
			zap.String("run_id", runID),
			zap.Error(err),
		)
		return Result{}, err
	}

	start := time.Now()
	result := Run(p, s.src)

	s.logger.Info("simulation complete",
		zap.String("run_id", runID),
		zap.Int("sides", p.Sides),
		zap.Int("dice", p.Dice),
		zap.Int64("rolls", p.Rolls),
		zap.Duration("elapsed", time.Since(start)),
	)
	s.logger.Debug("simulation counts",
		zap.String("run_id", runID),
		zap.Int64s("face_counts", result.FaceCounts),
		zap.Int64s("sum_counts", result.SumCounts),
		zap.Int("min_sum", result.MinSum),
		zap.Int("max_sum", result.MaxSum),
	)
	return result, nil
}
