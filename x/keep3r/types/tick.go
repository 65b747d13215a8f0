package types

// Staleness classifies a tick cache against the current reward period.
type Staleness int

const (
	// TickUpdated means the cache was refreshed in the current reward period.
	TickUpdated Staleness = iota
	// TickOutdated means the cache is exactly one reward period old.
	TickOutdated
	// TickExpired means the cache is older than one reward period or was never filled.
	TickExpired
)

// String implements fmt.Stringer.
func (s Staleness) String() string {
	switch s {
	case TickUpdated:
		return "updated"
	case TickOutdated:
		return "outdated"
	case TickExpired:
		return "expired"
	default:
		return "unknown"
	}
}

// Observation is the result of observing a liquidity's oracle pool.
type Observation struct {
	Tick      TickCache
	Staleness Staleness
	Success   bool
}

// PeriodStart returns the start of the reward period containing ts.
func PeriodStart(ts, rewardPeriod uint64) uint64 {
	return ts - ts%rewardPeriod
}

// ClassifyTick computes the staleness of a cache refreshed in cachedPeriod.
func ClassifyTick(cachedPeriod, now, rewardPeriod uint64) Staleness {
	current := PeriodStart(now, rewardPeriod)
	switch {
	case cachedPeriod == current:
		return TickUpdated
	case current >= rewardPeriod && cachedPeriod == current-rewardPeriod:
		return TickOutdated
	default:
		return TickExpired
	}
}

// ObservationWindow returns the secondsAgo offsets that must be requested from the pool
// oracle for the given staleness. Updated caches need no observation.
func ObservationWindow(staleness Staleness, now, rewardPeriod uint64) []uint32 {
	sinceStart := uint32(now - PeriodStart(now, rewardPeriod))
	switch staleness {
	case TickOutdated:
		return []uint32{sinceStart}
	case TickExpired:
		return []uint32{sinceStart, sinceStart + uint32(rewardPeriod)}
	default:
		return nil
	}
}

// RefreshTick derives the new tick cache from the cached one and the oracle result.
// A failed or malformed observation yields a zero tick with Success unset; the cached
// state must then be left untouched by the caller.
func RefreshTick(cached TickCache, now, rewardPeriod uint64, ticks []int64, ok bool) Observation {
	staleness := ClassifyTick(cached.Period, now, rewardPeriod)
	if staleness == TickUpdated {
		return Observation{Tick: cached, Staleness: staleness, Success: true}
	}

	obs := Observation{Staleness: staleness}
	if !ok {
		return obs
	}

	switch staleness {
	case TickOutdated:
		if len(ticks) < 1 {
			return obs
		}
		obs.Tick = TickCache{Current: ticks[0], Difference: ticks[0] - cached.Current}
	case TickExpired:
		if len(ticks) < 2 {
			return obs
		}
		obs.Tick = TickCache{Current: ticks[0], Difference: ticks[0] - ticks[1]}
	}
	obs.Tick.Period = PeriodStart(now, rewardPeriod)
	obs.Success = true
	return obs
}

// OrientedDifference returns the tick difference measured in the KP3R direction.
func OrientedDifference(tick TickCache, kp3rToken0 bool) int64 {
	if kp3rToken0 {
		return tick.Difference
	}
	return -tick.Difference
}
