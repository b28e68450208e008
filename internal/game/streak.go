package game

import (
	"time"

	"github.com/redchainhq/redchain/internal/constants"
	"github.com/redchainhq/redchain/internal/utils"
)

// StreakInfo describes a habit's consecutive-completion run.
//
// When Active is false the Count is forward-looking: it reports what the
// streak becomes if today's completion lands, i.e. the raw historical run
// plus one. "Show the stake, not just the history" is the display policy, so
// a habit with no completions at all reads as a 1-day streak at stake.
type StreakInfo struct {
	Count  int
	Active bool
}

// Streak derives the current streak from a habit's completed-day keys and a
// reference instant. The walk starts at today when today is completed,
// otherwise at yesterday, and steps backward one calendar day per iteration
// until the first gap. The walk is bounded so pathological data still
// terminates.
func Streak(completedDays []string, now time.Time) StreakInfo {
	days := make(map[string]struct{}, len(completedDays))
	for _, d := range completedDays {
		days[d] = struct{}{}
	}

	today := utils.DateKey(now)
	_, completedToday := days[today]

	cursor := now
	if !completedToday {
		cursor = cursor.AddDate(0, 0, -1)
	}

	count := 0
	for i := 0; i < constants.StreakWalkLimit; i++ {
		if _, ok := days[utils.DateKey(cursor)]; !ok {
			break
		}
		count++
		cursor = cursor.AddDate(0, 0, -1)
	}

	if completedToday {
		return StreakInfo{Count: count, Active: true}
	}
	return StreakInfo{Count: count + 1, Active: false}
}
