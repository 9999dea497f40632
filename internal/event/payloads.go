package event

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/osse101/JobEconomy_Go/internal/domain"
)

// RewardPaidPayloadV1 is published after an action reward was granted
type RewardPaidPayloadV1 struct {
	PlayerID  string                `json:"player_id"`
	Job       string                `json:"job"`
	Category  domain.ActionCategory `json:"category"`
	Subject   string                `json:"subject"`
	Exp       int                   `json:"exp"`
	Pay       decimal.Decimal       `json:"pay"`
	Timestamp int64                 `json:"timestamp"`
}

// ExpGainedPayloadV1 is published whenever exp is added
type ExpGainedPayloadV1 struct {
	PlayerID string `json:"player_id"`
	Job      string `json:"job"`
	Amount   int    `json:"amount"`
	TotalExp int    `json:"total_exp"`
}

// JobLevelUpPayloadV1 is the typed payload for job level up events
type JobLevelUpPayloadV1 struct {
	PlayerID string `json:"player_id"`
	Job      string `json:"job"`
	OldLevel int    `json:"old_level"`
	NewLevel int    `json:"new_level"`
}

// JobChangedPayloadV1 is published after a successful job switch
type JobChangedPayloadV1 struct {
	PlayerID    string `json:"player_id"`
	PreviousJob string `json:"previous_job"`
	NewJob      string `json:"new_job"`
}

// SalaryPaidPayloadV1 is published for each salary deposit
type SalaryPaidPayloadV1 struct {
	PlayerID string          `json:"player_id"`
	Job      string          `json:"job"`
	Amount   decimal.Decimal `json:"amount"`
}

// SalaryTickCompletePayloadV1 summarizes one salary run
type SalaryTickCompletePayloadV1 struct {
	Paid     int       `json:"paid"`
	Skipped  int       `json:"skipped"`
	Failed   int       `json:"failed"`
	Duration float64   `json:"duration_seconds"`
	RanAt    time.Time `json:"ran_at"`
}

// CatalogReloadedPayloadV1 is published after every reload attempt.
// On failure Success is false and the previous catalog stays active.
type CatalogReloadedPayloadV1 struct {
	Success     bool     `json:"success"`
	Jobs        []string `json:"jobs,omitempty"`
	SalaryDelay int      `json:"salary_delay,omitempty"`
	Error       string   `json:"error,omitempty"`
}

// PlayerSessionPayloadV1 is published on connect and disconnect
type PlayerSessionPayloadV1 struct {
	PlayerID string `json:"player_id"`
	Name     string `json:"name,omitempty"`
}

func newEvent(t Type, payload interface{}, metadata Metadata) Event {
	return Event{
		Version:  EventSchemaVersion,
		Type:     t,
		Payload:  payload,
		Metadata: metadata,
	}
}

// NewActionEvent wraps an action reported by the host
func NewActionEvent(action domain.ActionEvent) Event {
	return newEvent(ActionPerformed, action, nil)
}

// NewRewardPaidEvent creates a new reward paid event
func NewRewardPaidEvent(playerID, job string, category domain.ActionCategory, subject string, exp int, pay decimal.Decimal) Event {
	return newEvent(RewardPaid, RewardPaidPayloadV1{
		PlayerID:  playerID,
		Job:       job,
		Category:  category,
		Subject:   subject,
		Exp:       exp,
		Pay:       pay,
		Timestamp: time.Now().Unix(),
	}, Metadata{"job": job, "category": string(category)})
}

// NewExpGainedEvent creates a new exp gained event
func NewExpGainedEvent(playerID, job string, amount, total int) Event {
	return newEvent(ExpGained, ExpGainedPayloadV1{
		PlayerID: playerID,
		Job:      job,
		Amount:   amount,
		TotalExp: total,
	}, Metadata{"job": job})
}

// NewJobLevelUpEvent creates a new job level up event
func NewJobLevelUpEvent(playerID, job string, oldLevel, newLevel int) Event {
	return newEvent(JobLevelUp, JobLevelUpPayloadV1{
		PlayerID: playerID,
		Job:      job,
		OldLevel: oldLevel,
		NewLevel: newLevel,
	}, Metadata{"job": job})
}

// NewJobChangedEvent creates a new job changed event
func NewJobChangedEvent(playerID, previous, next string) Event {
	return newEvent(JobChanged, JobChangedPayloadV1{
		PlayerID:    playerID,
		PreviousJob: previous,
		NewJob:      next,
	}, Metadata{"job": next})
}

// NewSalaryPaidEvent creates a new salary paid event
func NewSalaryPaidEvent(playerID, job string, amount decimal.Decimal) Event {
	return newEvent(SalaryPaid, SalaryPaidPayloadV1{
		PlayerID: playerID,
		Job:      job,
		Amount:   amount,
	}, Metadata{"job": job})
}

// NewSalaryTickCompleteEvent creates a new salary tick summary event
func NewSalaryTickCompleteEvent(paid, skipped, failed int, duration time.Duration, ranAt time.Time) Event {
	return newEvent(SalaryTickComplete, SalaryTickCompletePayloadV1{
		Paid:     paid,
		Skipped:  skipped,
		Failed:   failed,
		Duration: duration.Seconds(),
		RanAt:    ranAt,
	}, nil)
}

// NewCatalogReloadedEvent creates a new catalog reloaded event
func NewCatalogReloadedEvent(jobs []string, salaryDelay int) Event {
	return newEvent(CatalogReloaded, CatalogReloadedPayloadV1{
		Success:     true,
		Jobs:        jobs,
		SalaryDelay: salaryDelay,
	}, nil)
}

// NewCatalogReloadFailedEvent reports a reload that kept the previous catalog
func NewCatalogReloadFailedEvent(err error) Event {
	return newEvent(CatalogReloaded, CatalogReloadedPayloadV1{Error: err.Error()}, nil)
}

// NewPlayerConnectedEvent creates a new player connected event
func NewPlayerConnectedEvent(playerID, name string) Event {
	return newEvent(PlayerConnected, PlayerSessionPayloadV1{PlayerID: playerID, Name: name}, nil)
}

// NewPlayerDisconnectedEvent creates a new player disconnected event
func NewPlayerDisconnectedEvent(playerID string) Event {
	return newEvent(PlayerDisconnected, PlayerSessionPayloadV1{PlayerID: playerID}, nil)
}
