// Package rank turns raw contribution totals into a percentile and a
// letter grade. Each signal is normalized against a community median
// through a cumulative distribution function, then blended with fixed
// weights; the result is the share of users estimated to score higher.
package rank

import "math"

// Inputs are the raw totals the percentile is computed from. AllCommits
// selects the all-time commit median instead of the trailing-year one.
type Inputs struct {
	AllCommits bool
	Commits    int
	PRs        int
	Issues     int
	Reviews    int
	Stars      int
	Followers  int
}

// Result is a computed rank: the letter grade and the percentile of
// users estimated to score higher (lower is better).
type Result struct {
	Level      string
	Percentile float64
}

// Community medians per signal. Commit counts have two medians because
// the all-time total sits on a very different scale than one year.
const (
	commitsMedian    = 250.0
	allCommitsMedian = 1000.0
	prsMedian        = 50.0
	issuesMedian     = 25.0
	reviewsMedian    = 2.0
	starsMedian      = 50.0
	followersMedian  = 10.0

	commitsWeight   = 2.0
	prsWeight       = 3.0
	issuesWeight    = 1.0
	reviewsWeight   = 1.0
	starsWeight     = 4.0
	followersWeight = 1.0

	totalWeight = commitsWeight + prsWeight + issuesWeight +
		reviewsWeight + starsWeight + followersWeight
)

var (
	thresholds = []float64{1, 12.5, 25, 37.5, 50, 62.5, 75, 87.5, 100}
	levels     = []string{"S", "A+", "A", "A-", "B+", "B", "B-", "C+", "C"}
)

// exponentialCDF models signals where activity compounds slowly; at the
// median it evaluates to 0.5 and it saturates quickly past it.
func exponentialCDF(x float64) float64 {
	return 1 - math.Pow(2, -x)
}

// logNormalCDF approximates a heavy-tailed distribution for popularity
// signals, where a handful of accounts hold most of the mass.
func logNormalCDF(x float64) float64 {
	return x / (1 + x)
}

// Compute blends the weighted per-signal scores into a percentile and
// maps it onto the letter grade scale. S is the top grade, C the lowest.
func Compute(in Inputs) Result {
	median := commitsMedian
	if in.AllCommits {
		median = allCommitsMedian
	}

	score := (commitsWeight*exponentialCDF(float64(in.Commits)/median) +
		prsWeight*exponentialCDF(float64(in.PRs)/prsMedian) +
		issuesWeight*exponentialCDF(float64(in.Issues)/issuesMedian) +
		reviewsWeight*exponentialCDF(float64(in.Reviews)/reviewsMedian) +
		starsWeight*logNormalCDF(float64(in.Stars)/starsMedian) +
		followersWeight*logNormalCDF(float64(in.Followers)/followersMedian)) / totalWeight

	percentile := (1 - score) * 100

	level := levels[len(levels)-1]
	for i, t := range thresholds {
		if percentile <= t {
			level = levels[i]
			break
		}
	}

	return Result{Level: level, Percentile: percentile}
}
