package domain

import "time"

// Event type constants used across the application for event bus subscriptions
// and metrics tracking.
//
// Event types follow the pattern: <entity>.<action> (e.g., "job.level_up")
const (
	// EventTypeActionPerformed is published by the host when a player breaks, places, kills or catches something
	EventTypeActionPerformed = "action.performed"

	// EventTypeRewardPaid is published after an action reward has been deposited
	EventTypeRewardPaid = "reward.paid"

	// EventTypeExpGained is published whenever exp is added to a player's current job
	EventTypeExpGained = "job.exp_gained"

	// EventTypeJobLevelUp is published when a player reaches the next level of their job
	EventTypeJobLevelUp = "job.level_up"

	// EventTypeJobChanged is published when a player switches jobs
	EventTypeJobChanged = "job.changed"

	// EventTypeSalaryPaid is published for each player paid during a salary tick
	EventTypeSalaryPaid = "salary.paid"

	// EventTypeSalaryTickComplete is published once every online player has been processed
	EventTypeSalaryTickComplete = "salary.tick_complete"

	// EventTypeCatalogReloaded is published after the job catalog was swapped
	EventTypeCatalogReloaded = "catalog.reloaded"

	// EventTypePlayerConnected / EventTypePlayerDisconnected track host sessions
	EventTypePlayerConnected    = "player.connected"
	EventTypePlayerDisconnected = "player.disconnected"
)

// EventLogEntry is one persisted job history event
type EventLogEntry struct {
	ID        int64                  `json:"id"`
	EventType string                 `json:"event_type"`
	PlayerID  string                 `json:"player_id,omitempty"`
	Payload   map[string]interface{} `json:"payload"`
	CreatedAt time.Time              `json:"created_at"`
}
