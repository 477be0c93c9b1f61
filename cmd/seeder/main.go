package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/askelund/huddle/internal/attendance"
	"github.com/askelund/huddle/internal/config"
	"github.com/askelund/huddle/internal/database"
	"github.com/askelund/huddle/internal/gallery"
	"github.com/askelund/huddle/internal/roster"
	"github.com/askelund/huddle/internal/schedule"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

var seedPlayers = []roster.Player{
	{ID: "p-astrid", Name: "Astrid Holm", Nickname: "Zip", JerseyNumber: 7, Position: roster.PositionHandler, YearJoined: 2019, IsCaptain: true, AccessCode: "ZIP-7"},
	{ID: "p-bo", Name: "Bo Kristensen", JerseyNumber: 23, Position: roster.PositionCutter, YearJoined: 2021, AccessCode: "BK-23"},
	{ID: "p-clara", Name: "Clara Leth", Nickname: "Huck", JerseyNumber: 4, Position: roster.PositionHybrid, YearJoined: 2020, IsAdmin: true, AccessCode: "HUCK-4"},
	{ID: "p-emil", Name: "Emil Thorsen", JerseyNumber: 11, Position: roster.PositionCutter, YearJoined: 2023, AccessCode: "ET-11"},
	{ID: "p-freja", Name: "Freja Dahl", JerseyNumber: 2, Position: roster.PositionHandler, YearJoined: 2022, AccessCode: "FD-2"},
}

func main() {
	log.Info("Starting database seeder...")
	cfg := config.Load()

	db, teardown, err := database.InitDB(cfg.DBName, cfg.Turso.PrimaryURL, cfg.Turso.AuthToken, cfg.MigrationsDir)
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer teardown()

	rosterStore := roster.New(db)
	eventStore := schedule.New(db)
	attendanceStore := attendance.New(db)
	galleryStore := gallery.New(db)

	for i := range seedPlayers {
		if err := rosterStore.UpsertPlayer(&seedPlayers[i]); err != nil {
			log.Fatalf("Failed to seed player %s: %s", seedPlayers[i].Name, err)
		}
	}
	log.Info("Seeded roster", "players", len(seedPlayers))

	// Eight weekly practices ending this week, plus one upcoming match.
	eventIDs := make([]string, 0, 8)
	now := time.Now()
	for week := 8; week >= 1; week-- {
		date := now.AddDate(0, 0, -7*week)
		event := &schedule.Event{
			ID:        uuid.NewString(),
			Title:     fmt.Sprintf("Practice week %d", date.Day()),
			Date:      date.Format("2006-01-02"),
			StartTime: "18:00",
			EndTime:   "20:00",
			Location:  "Fælledparken",
			Type:      schedule.EventPractice,
		}
		if err := eventStore.UpsertEvent(event); err != nil {
			log.Fatalf("Failed to seed event: %s", err)
		}
		eventIDs = append(eventIDs, event.ID)
	}
	match := &schedule.Event{
		ID:        uuid.NewString(),
		Title:     "League round 1",
		Date:      now.AddDate(0, 0, 5).Format("2006-01-02"),
		StartTime: "10:00",
		Location:  "Valby Idrætspark",
		Type:      schedule.EventMatch,
		Opponent:  "Aarhus Hucks",
	}
	if err := eventStore.UpsertEvent(match); err != nil {
		log.Fatalf("Failed to seed match: %s", err)
	}
	log.Info("Seeded events", "practices", len(eventIDs), "matches", 1)

	// Random but plausible attendance history.
	rng := rand.New(rand.NewSource(42))
	for _, eventID := range eventIDs {
		records := make([]attendance.Record, 0, len(seedPlayers))
		for _, p := range seedPlayers {
			present := rng.Float64() < 0.8
			records = append(records, attendance.Record{
				PlayerID:        p.ID,
				EventID:         eventID,
				IsPresent:       present,
				IsEarly:         present && rng.Float64() < 0.3,
				IsOnTime:        present && rng.Float64() < 0.5,
				HasDoubleJersey: present && rng.Float64() < 0.4,
			})
		}
		if err := attendanceStore.BulkUpsert(eventID, records); err != nil {
			log.Fatalf("Failed to seed attendance for event %s: %s", eventID, err)
		}
	}
	log.Info("Seeded attendance history")

	album := gallery.Album{
		ID:        uuid.NewString(),
		Title:     "Season kickoff",
		EventDate: now.AddDate(0, 0, -56).Format("2006-01-02"),
	}
	if err := galleryStore.CreateAlbum(album); err != nil {
		log.Fatalf("Failed to seed album: %s", err)
	}
	if err := galleryStore.AddPhoto(gallery.Photo{AlbumID: album.ID, URL: "/img/kickoff-1.jpg", Caption: "First pull of the season"}); err != nil {
		log.Fatalf("Failed to seed photo: %s", err)
	}
	log.Info("Seeded gallery")

	log.Info("Seeding complete")
}
