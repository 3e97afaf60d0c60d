// Command import pre-loads the participant directory from a registration
// CSV. Expected columns: name, email, skills (skills comma-separated within
// the field). Everyone starts out looking for a team.
package main

import (
	"encoding/csv"
	"flag"
	"log"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/Scriptome-AI/hackathon-hackagent/internal/match"
	"github.com/Scriptome-AI/hackathon-hackagent/internal/model"
	"github.com/Scriptome-AI/hackathon-hackagent/internal/store"
)

func main() {
	csvPath := flag.String("csv", "", "registration CSV to import (name,email,skills)")
	dataDir := flag.String("data", "data", "data directory holding the JSON documents")
	flag.Parse()

	if *csvPath == "" {
		log.Fatal("usage: import -csv registrations.csv [-data data]")
	}

	f, err := os.Open(*csvPath)
	if err != nil {
		log.Fatalf("open csv: %v", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		log.Fatalf("read csv: %v", err)
	}

	var participants []model.Participant
	for i, row := range rows {
		if len(row) < 2 {
			log.Printf("skipping row %d: expected at least name,email", i+1)
			continue
		}
		name := strings.TrimSpace(row[0])
		email := strings.TrimSpace(row[1])
		// Header row
		if i == 0 && strings.EqualFold(email, "email") {
			continue
		}
		if name == "" || email == "" {
			log.Printf("skipping row %d: blank name or email", i+1)
			continue
		}
		var skills []string
		if len(row) > 2 {
			skills = match.Split(row[2])
		}
		participants = append(participants, model.Participant{
			Name:           name,
			Email:          email,
			Skills:         skills,
			LookingForTeam: true,
		})
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	if err := os.MkdirAll(*dataDir, 0o755); err != nil {
		log.Fatalf("create data dir: %v", err)
	}

	st := store.Open(*dataDir, logger)
	st.ReplaceParticipants(participants)
	logger.Info("participants imported", zap.Int("count", len(participants)), zap.String("dir", *dataDir))
}
