package job

import "github.com/osse101/JobEconomy_Go/internal/domain"

// ExpToLevel returns the exp needed to advance from level to level+1
func ExpToLevel(level int) int {
	return level * ExpPerLevel
}

// ApplyLevelUp advances stats by at most one level. Exp beyond the
// threshold carries over and may qualify for another level on the next
// check.
func ApplyLevelUp(stats domain.JobStats) (domain.JobStats, bool) {
	threshold := ExpToLevel(stats.Level)
	if stats.Exp < threshold {
		return stats, false
	}
	return domain.JobStats{Level: stats.Level + 1, Exp: stats.Exp - threshold}, true
}
