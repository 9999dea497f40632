package domain

import "strings"

// MinecraftNamespace is stripped from subject ids reported by the host
const MinecraftNamespace = "minecraft:"

// ActionEvent is a single in-world action reported by the host runtime.
//
// Only the fields relevant to Category are read:
//   - break: Subject is the block type, HasCreator marks player-placed blocks
//   - place: Subject is the block type
//   - kill: Subject is the victim entity type, KillerIsPlayer must be true
//   - catch: IsFish must be true, Subject is the fish sub-type
type ActionEvent struct {
	PlayerID       string         `json:"player_id" validate:"required,uuid"`
	Category       ActionCategory `json:"category" validate:"required,oneof=break place kill catch"`
	Subject        string         `json:"subject" validate:"required,max=128"`
	HasCreator     bool           `json:"has_creator,omitempty"`
	KillerIsPlayer bool           `json:"killer_is_player,omitempty"`
	IsFish         bool           `json:"is_fish,omitempty"`
}

// NormalizeSubject lowercases the id and drops the minecraft namespace so that
// "minecraft:STONE" and "stone" address the same catalog entry
func NormalizeSubject(subject string) string {
	s := strings.ToLower(strings.TrimSpace(subject))
	return strings.TrimPrefix(s, MinecraftNamespace)
}
