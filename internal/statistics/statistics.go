// Package statistics aggregates net outcomes across simulation attempts.
package statistics

import (
	"fmt"
	"math"
	"sort"
)

// Statistics tracks the distribution of per-attempt net winnings.
type Statistics struct {
	Attempts int
	Sum      float64
	Sum2     float64   // sum of squares for variance calculation
	Values   []float64 // retained for median/percentile calculation

	Busted  int // attempts that ended with the bankroll below the table minimum
	QuitUp  int // attempts that ended at or above the quit threshold
	MaxBet  int // largest bet placed in any attempt
	Wins    int
	Losses  int
	Pushes  int
	Rounds  int
}

// Add incorporates one attempt's net result.
func (s *Statistics) Add(net float64) {
	s.Attempts++
	s.Sum += net
	s.Sum2 += net * net
	s.Values = append(s.Values, net)
}

// Mean returns the arithmetic mean net result per attempt
func (s *Statistics) Mean() float64 {
	if s.Attempts == 0 {
		return 0
	}
	return s.Sum / float64(s.Attempts)
}

// Variance returns the sample variance of attempt results
func (s *Statistics) Variance() float64 {
	if s.Attempts < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.Sum2 - float64(s.Attempts)*mean*mean) / float64(s.Attempts-1)
}

// StdDev returns the sample standard deviation
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Attempts == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Attempts))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Median returns the median attempt result
func (s *Statistics) Median() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Percentile returns the value at the given percentile (0.0 to 1.0)
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1
	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// Validate checks internal consistency of the aggregate counters.
func (s *Statistics) Validate() error {
	if s.Attempts <= 0 {
		return fmt.Errorf("invalid attempt count: %d", s.Attempts)
	}
	if len(s.Values) != s.Attempts {
		return fmt.Errorf("values length (%d) does not match attempt count (%d)", len(s.Values), s.Attempts)
	}
	if s.Wins+s.Losses+s.Pushes != s.Rounds {
		return fmt.Errorf("outcome counts (%d+%d+%d) do not match rounds played (%d)",
			s.Wins, s.Losses, s.Pushes, s.Rounds)
	}
	return nil
}
