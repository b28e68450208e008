package game

import (
	"time"

	"github.com/redchainhq/redchain/internal/constants"
	"github.com/redchainhq/redchain/internal/logger"
	"github.com/redchainhq/redchain/internal/utils"
)

// RolloverResult describes one evaluation of the day-boundary check.
type RolloverResult struct {
	FirstRun    bool // lastCheckDate was unset and has been seeded
	Advanced    bool // a day boundary was crossed
	MissedCount int  // habits without a completion yesterday
	Penalty     int  // points/XP deducted (0 when nothing was missed)
}

// Rollover runs the daily boundary check. It is re-entrant and idempotent:
// the lastCheckDate guard advances in the same transition as the penalty, so
// any number of calls within one calendar day applies at most one penalty.
//
// The check only ever looks back exactly one day. If the process was away for
// several days, days older than yesterday are neither penalized nor marked
// missed; returning users get the lenient single-day reckoning on purpose.
func (s *Store) Rollover(now time.Time) RolloverResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	today := utils.DateKey(now)

	if s.state.LastCheckDate == "" {
		s.state.LastCheckDate = today
		s.persist()
		return RolloverResult{FirstRun: true}
	}
	if s.state.LastCheckDate == today {
		return RolloverResult{}
	}

	yesterday := utils.DaysAgo(now, 1)
	missed := 0
	for _, h := range s.state.Habits {
		if !h.CompletedOn(yesterday) {
			missed++
		}
	}

	res := RolloverResult{Advanced: true, MissedCount: missed}
	if missed > 0 {
		before := s.state.Stats
		s.state.Stats = ApplyMissPenalty(before, missed)
		res.Penalty = missed * constants.MissPenalty
		logger.Info("miss penalty applied",
			"missed", missed,
			"penalty", res.Penalty,
			"points", s.state.Stats.Points,
			"xp", s.state.Stats.TotalXP)
	}
	s.state.LastCheckDate = today
	s.persist()
	return res
}
