package roster

import "errors"

// ErrPlayerNotFound is returned when no player matches the given identity.
var ErrPlayerNotFound = errors.New("player not found")

// RosterStore defines the interface for interacting with the club roster.
type RosterStore interface {
	UpsertPlayer(p *Player) error
	GetPlayer(playerID string) (*Player, error)
	GetPlayerByAccessCode(code string) (*Player, error)
	GetAllPlayers() ([]Player, error)
	UpdateProfile(playerID string, update ProfileUpdate) error
	DeletePlayer(playerID string) error
	Clear()
}
