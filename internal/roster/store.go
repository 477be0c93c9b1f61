package roster

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/log"
)

// New creates a new RosterStore.
func New(db *sql.DB) RosterStore {
	return &store{
		db: db,
	}
}

const playerColumns = `id, name, nickname, jersey_number, position, image_url, fun_fact, year_joined, is_captain, is_admin, email, access_code, card_config_json`

// UpsertPlayer inserts a new player or overwrites an existing one entirely.
func (s *store) UpsertPlayer(p *Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cardJSON, err := marshalCardConfig(p.CardConfig)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(`
		INSERT INTO players (`+playerColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			nickname = excluded.nickname,
			jersey_number = excluded.jersey_number,
			position = excluded.position,
			image_url = excluded.image_url,
			fun_fact = excluded.fun_fact,
			year_joined = excluded.year_joined,
			is_captain = excluded.is_captain,
			is_admin = excluded.is_admin,
			email = excluded.email,
			access_code = excluded.access_code,
			card_config_json = excluded.card_config_json;
	`, p.ID, p.Name, nullIfEmpty(p.Nickname), p.JerseyNumber, p.Position, p.ImageURL, p.FunFact,
		p.YearJoined, p.IsCaptain, p.IsAdmin, p.Email, p.AccessCode, cardJSON)
	if err != nil {
		return fmt.Errorf("failed to upsert player %s: %w", p.ID, err)
	}
	return nil
}

// GetPlayer retrieves a single player by id.
func (s *store) GetPlayer(playerID string) (*Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRow(`SELECT `+playerColumns+` FROM players WHERE id = ?`, playerID)
	return scanPlayer(row)
}

// GetPlayerByAccessCode retrieves the player whose access code matches exactly.
// The access code is the club's primitive login credential.
func (s *store) GetPlayerByAccessCode(code string) (*Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRow(`SELECT `+playerColumns+` FROM players WHERE access_code = ?`, code)
	return scanPlayer(row)
}

// GetAllPlayers retrieves the full roster ordered by name.
func (s *store) GetAllPlayers() ([]Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`SELECT ` + playerColumns + ` FROM players ORDER BY name`)
	if err != nil {
		log.Error("Failed to query all players", "error", err)
		return nil, err
	}
	defer rows.Close()

	var players []Player
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			log.Error("Failed to scan player row", "error", err)
			continue
		}
		players = append(players, *p)
	}
	return players, rows.Err()
}

// UpdateProfile applies a player's self-service edits. Role flags, jersey
// number and access code are deliberately not touchable here.
func (s *store) UpdateProfile(playerID string, update ProfileUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cardJSON, err := marshalCardConfig(update.CardConfig)
	if err != nil {
		return err
	}

	res, err := s.db.Exec(`
		UPDATE players SET name = ?, nickname = ?, fun_fact = ?, card_config_json = ?
		WHERE id = ?
	`, update.Name, nullIfEmpty(update.Nickname), update.FunFact, cardJSON, playerID)
	if err != nil {
		return fmt.Errorf("failed to update profile for %s: %w", playerID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrPlayerNotFound
	}
	return nil
}

// DeletePlayer removes a player. Attendance history rows for the player are
// left in place; the leaderboard assembler only reports rostered players.
func (s *store) DeletePlayer(playerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec(`DELETE FROM players WHERE id = ?`, playerID)
	if err != nil {
		return fmt.Errorf("failed to delete player %s: %w", playerID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrPlayerNotFound
	}
	return nil
}

func (s *store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec(`DELETE FROM players`); err != nil {
		log.Error("Failed to clear players table", "error", err)
	}
}

// scanPlayer scans a single player row from a row or rows scanner.
func scanPlayer(scanner interface{ Scan(...any) error }) (*Player, error) {
	var p Player
	var nickname, cardJSON sql.NullString

	err := scanner.Scan(
		&p.ID, &p.Name, &nickname, &p.JerseyNumber, &p.Position, &p.ImageURL, &p.FunFact,
		&p.YearJoined, &p.IsCaptain, &p.IsAdmin, &p.Email, &p.AccessCode, &cardJSON,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}

	p.Nickname = nickname.String
	if cardJSON.Valid && cardJSON.String != "" {
		var cfg CardConfig
		if err := json.Unmarshal([]byte(cardJSON.String), &cfg); err != nil {
			log.Error("Failed to unmarshal card_config_json", "error", err, "playerID", p.ID)
		} else {
			p.CardConfig = &cfg
		}
	}
	return &p, nil
}

func marshalCardConfig(cfg *CardConfig) (any, error) {
	if cfg == nil {
		return nil, nil
	}
	b, err := json.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal card config: %w", err)
	}
	return string(b), nil
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
