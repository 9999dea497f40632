package catalog

import (
	"github.com/osse101/JobEconomy_Go/internal/domain"
)

// Snapshot is an immutable view of the job catalog. Readers hold on to a
// snapshot for the duration of one operation; reloads publish a new one.
type Snapshot struct {
	jobs        map[string]*domain.JobDefinition
	order       []string
	jobList     []string
	salaryDelay int
}

// NewSnapshot builds a snapshot from job definitions in file order.
// Job names are normalized to title case.
func NewSnapshot(jobList []string, salaryDelay int, defs ...*domain.JobDefinition) *Snapshot {
	s := &Snapshot{
		jobs:        make(map[string]*domain.JobDefinition, len(defs)),
		order:       make([]string, 0, len(defs)),
		jobList:     append([]string(nil), jobList...),
		salaryDelay: salaryDelay,
	}
	for _, def := range defs {
		name := NormalizeJobName(def.Name)
		def.Name = name
		if _, dup := s.jobs[name]; !dup {
			s.order = append(s.order, name)
		}
		s.jobs[name] = def
	}
	return s
}

// Job returns the definition for name, normalizing it first
func (s *Snapshot) Job(name string) (*domain.JobDefinition, bool) {
	def, ok := s.jobs[NormalizeJobName(name)]
	return def, ok
}

// JobExists reports whether a job section exists for name
func (s *Snapshot) JobExists(name string) bool {
	_, ok := s.Job(name)
	return ok
}

// LookupReward returns the configured reward; absence is not an error
func (s *Snapshot) LookupReward(job string, category domain.ActionCategory, subject string) (domain.Reward, bool) {
	def, ok := s.Job(job)
	if !ok {
		return domain.Reward{}, false
	}
	return def.Reward(category, subject)
}

// JobNames is the display list configured under the jobs key
func (s *Snapshot) JobNames() []string {
	return append([]string(nil), s.jobList...)
}

// Definitions returns job definitions in file order, Unemployed included
func (s *Snapshot) Definitions() []*domain.JobDefinition {
	defs := make([]*domain.JobDefinition, 0, len(s.order))
	for _, name := range s.order {
		defs = append(defs, s.jobs[name])
	}
	return defs
}

// SalaryDelay is the salary interval in seconds
func (s *Snapshot) SalaryDelay() int {
	return s.salaryDelay
}
