package domain

import (
	"github.com/shopspring/decimal"
)

// UnemployedJob is the pseudo-job every player holds until they pick one.
// It only carries salary settings and never has reward tables.
const UnemployedJob = "Unemployed"

// ActionCategory is the kind of in-world action that can earn a reward
type ActionCategory string

const (
	CategoryBreak ActionCategory = "break"
	CategoryPlace ActionCategory = "place"
	CategoryKill  ActionCategory = "kill"
	CategoryCatch ActionCategory = "catch"
)

// ActionCategories lists every category in catalog file order
var ActionCategories = []ActionCategory{CategoryBreak, CategoryPlace, CategoryKill, CategoryCatch}

// Valid reports whether c is a known category
func (c ActionCategory) Valid() bool {
	switch c {
	case CategoryBreak, CategoryPlace, CategoryKill, CategoryCatch:
		return true
	}
	return false
}

// Reward is the exp and currency granted for one action on one subject
type Reward struct {
	ExpReward int             `json:"exp_reward" yaml:"expreward"`
	Pay       decimal.Decimal `json:"pay" yaml:"pay"`
}

// JobDefinition describes a configured job
type JobDefinition struct {
	Name           string                               `json:"name"`
	Salary         decimal.Decimal                      `json:"salary"`
	SalaryDisabled bool                                 `json:"salary_disabled"`
	Rewards        map[ActionCategory]map[string]Reward `json:"rewards,omitempty"`
}

// Reward returns the reward for subject under category, if configured
func (j *JobDefinition) Reward(category ActionCategory, subject string) (Reward, bool) {
	if j == nil || j.Rewards == nil {
		return Reward{}, false
	}
	table, ok := j.Rewards[category]
	if !ok {
		return Reward{}, false
	}
	r, ok := table[subject]
	return r, ok
}

// JobStats is the progress a player has made in one job
type JobStats struct {
	Level int `json:"level"`
	Exp   int `json:"exp"`
}

// NewJobStats returns the starting stats for a job the player has never held
func NewJobStats() JobStats {
	return JobStats{Level: 1, Exp: 0}
}

// PlayerJobRecord is the persisted job state of a single player
type PlayerJobRecord struct {
	PlayerID             string              `json:"player_id"`
	CurrentJob           string              `json:"current_job"`
	Stats                map[string]JobStats `json:"stats"`
	NotificationsEnabled bool                `json:"notifications_enabled"`
}

// NewPlayerJobRecord synthesizes the record for a player seen for the first time
func NewPlayerJobRecord(playerID string) *PlayerJobRecord {
	return &PlayerJobRecord{
		PlayerID:             playerID,
		CurrentJob:           UnemployedJob,
		Stats:                make(map[string]JobStats),
		NotificationsEnabled: true,
	}
}

// StatsFor returns the stats for job, falling back to the level 1 defaults
func (r *PlayerJobRecord) StatsFor(job string) JobStats {
	if s, ok := r.Stats[job]; ok {
		return s
	}
	return NewJobStats()
}

// EnsureStats initializes stats for job only when they are absent.
// It returns true when new stats were created.
func (r *PlayerJobRecord) EnsureStats(job string) bool {
	if r.Stats == nil {
		r.Stats = make(map[string]JobStats)
	}
	if _, ok := r.Stats[job]; ok {
		return false
	}
	r.Stats[job] = NewJobStats()
	return true
}

// Clone returns a deep copy so callers can mutate without touching cached state
func (r *PlayerJobRecord) Clone() *PlayerJobRecord {
	if r == nil {
		return nil
	}
	c := *r
	c.Stats = make(map[string]JobStats, len(r.Stats))
	for k, v := range r.Stats {
		c.Stats[k] = v
	}
	return &c
}

// LevelUpResult is the outcome of a level check
type LevelUpResult struct {
	LeveledUp bool   `json:"leveled_up"`
	Job       string `json:"job,omitempty"`
	NewLevel  int    `json:"new_level,omitempty"`
}

// JobInfo summarizes a player's progress in their current job
type JobInfo struct {
	PlayerID             string `json:"player_id"`
	Job                  string `json:"job"`
	Level                int    `json:"level"`
	Exp                  int    `json:"exp"`
	ExpToNextLevel       int    `json:"exp_to_next_level"`
	NotificationsEnabled bool   `json:"notifications_enabled"`

	Salary  decimal.Decimal                      `json:"salary"`
	Rewards map[ActionCategory]map[string]Reward `json:"rewards,omitempty"`
}
