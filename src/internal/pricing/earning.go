package pricing

import "math"

type Earning struct {
	Gross       int64
	PlatformFee int64
	Net         int64
}

// NormalizeDistance substitutes the configured default when the measured
// distance is missing or invalid. Underpaying a rider because GPS data is
// absent is worse than paying for the default distance, so the fallback is
// policy, not an error; the second return flags the order for audit.
func NormalizeDistance(cfg Config, distanceKm float64) (float64, bool) {
	if distanceKm <= 0 || math.IsNaN(distanceKm) || math.IsInf(distanceKm, 0) {
		return cfg.DefaultDistanceKm, true
	}
	return distanceKm, false
}

// EstimateEarning computes the rider's gross and net pay for a distance.
func EstimateEarning(cfg Config, distanceKm float64) Earning {
	distanceKm, _ = NormalizeDistance(cfg, distanceKm)
	gross := round(float64(cfg.RiderBasePay) + distanceKm*float64(cfg.RiderPerKmRate))
	fee := round(float64(gross) * cfg.RiderPlatformFeePercent / 100)
	return Earning{
		Gross:       gross,
		PlatformFee: fee,
		Net:         gross - fee,
	}
}
