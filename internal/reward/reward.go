// Package reward scores one coordination step. The scalar is a
// weighted blend of gas production, holder stability, and consumption
// efficiency; the breakdown is kept alongside the scalar so recorded
// episodes stay inspectable.
package reward

import (
	"math"

	"github.com/oreforge/steelmas/internal/config"
	"github.com/oreforge/steelmas/internal/plant"
)

// #region types

// Breakdown carries the unweighted component scores.
type Breakdown struct {
	Production float64 `json:"production"`
	Stability  float64 `json:"stability"`
	Efficiency float64 `json:"efficiency"`
}

// Reward is the scored step.
type Reward struct {
	Total     float64   `json:"total"`
	Breakdown Breakdown `json:"breakdown"`
}

// #endregion types

// #region calculate

// Calculate scores the transition into next. consumed maps each gas to
// the total consumption flow actually granted this step.
func Calculate(next plant.Observation, consumed map[plant.GasType]float64, c config.RewardConfig) Reward {
	b := Breakdown{
		Production: production(next, c),
		Stability:  stability(next, c),
		Efficiency: efficiency(next, consumed, c),
	}
	total := c.ProductionWeight*b.Production +
		c.StabilityWeight*b.Stability +
		c.EfficiencyWeight*b.Efficiency
	return Reward{Total: total, Breakdown: b}
}

// production rewards BFG make normalized against the plant maximum.
func production(next plant.Observation, c config.RewardConfig) float64 {
	if c.BFGMaxSupply <= 0 {
		return 0
	}
	s := next.Gas[plant.GasBFG].Supply / c.BFGMaxSupply
	return clamp01(s)
}

// stability penalizes holders outside the target band, twice as hard
// per unit of excursion as the band is wide.
func stability(next plant.Observation, c config.RewardConfig) float64 {
	score := 1.0
	for _, g := range plant.GasTypes {
		soc := next.Gas[g].SOC
		var excursion float64
		switch {
		case soc < c.SOCLow:
			excursion = c.SOCLow - soc
		case soc > c.SOCHigh:
			excursion = soc - c.SOCHigh
		}
		score -= 2 * excursion / float64(len(plant.GasTypes))
	}
	return clamp01(score)
}

// efficiency rewards consuming the gas that was made. Utilization in
// the configured band scores full marks; outside it the score falls
// off linearly.
func efficiency(next plant.Observation, consumed map[plant.GasType]float64, c config.RewardConfig) float64 {
	var sum float64
	for _, g := range plant.GasTypes {
		supply := next.Gas[g].Supply
		if supply <= 0 {
			// Nothing produced; consuming from the holder is fine.
			sum += 1
			continue
		}
		u := consumed[g] / supply
		switch {
		case u >= c.UtilizationLow && u <= c.UtilizationHigh:
			sum += 1
		case u < c.UtilizationLow:
			sum += clamp01(u / c.UtilizationLow)
		default:
			sum += clamp01(1 - (u - c.UtilizationHigh))
		}
	}
	return sum / float64(len(plant.GasTypes))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// #endregion calculate

// #region episode

// EpisodeMetrics summarizes the rewards of one episode.
type EpisodeMetrics struct {
	Steps      int     `json:"steps"`
	Cumulative float64 `json:"cumulative"`
	Mean       float64 `json:"mean"`
	Std        float64 `json:"std"`
	Min        float64 `json:"min"`
	Max        float64 `json:"max"`
}

// Summarize folds a reward series into episode metrics.
func Summarize(totals []float64) EpisodeMetrics {
	m := EpisodeMetrics{Steps: len(totals)}
	if len(totals) == 0 {
		return m
	}
	m.Min = totals[0]
	m.Max = totals[0]
	for _, r := range totals {
		m.Cumulative += r
		if r < m.Min {
			m.Min = r
		}
		if r > m.Max {
			m.Max = r
		}
	}
	m.Mean = m.Cumulative / float64(len(totals))
	var sq float64
	for _, r := range totals {
		d := r - m.Mean
		sq += d * d
	}
	m.Std = math.Sqrt(sq / float64(len(totals)))
	return m
}

// #endregion episode
