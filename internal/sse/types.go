package sse

// PlayerMessagePayload is a chat line addressed to one player
type PlayerMessagePayload struct {
	PlayerID string `json:"player_id"`
	Message  string `json:"message"`
}

// JobLevelUpPayload represents the SSE payload for job level up events
type JobLevelUpPayload struct {
	PlayerID string `json:"player_id"`
	Job      string `json:"job"`
	OldLevel int    `json:"old_level"`
	NewLevel int    `json:"new_level"`
}

// JobChangedPayload is sent when a player switches jobs
type JobChangedPayload struct {
	PlayerID    string `json:"player_id"`
	PreviousJob string `json:"previous_job"`
	Job         string `json:"job"`
}

// SalaryTickPayload summarizes a payroll run
type SalaryTickPayload struct {
	Paid    int `json:"paid"`
	Skipped int `json:"skipped"`
	Failed  int `json:"failed"`
}

// CatalogReloadedPayload lists the jobs after a successful reload
type CatalogReloadedPayload struct {
	Jobs        []string `json:"jobs"`
	SalaryDelay int      `json:"salary_delay"`
}
