// Package store owns the in-memory participant, project, and submission
// collections and their persisted JSON documents. Every mutating operation
// flushes the affected document synchronously before returning; a failed
// flush is logged and swallowed, leaving the in-memory state authoritative.
package store

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/Scriptome-AI/hackathon-hackagent/internal/model"
)

const (
	participantsFile = "participants.json"
	projectsFile     = "projects.json"
	submissionsFile  = "submissions.json"
)

// Store is the single owner of the record collections. All operations are
// atomic with respect to each other; callers never hold a mutable reference
// into the store.
type Store struct {
	mu  sync.Mutex
	dir string
	log *zap.Logger

	participants []model.Participant
	projects     []model.Project
	submissions  []model.Submission
}

// Open loads the persisted documents from dir. A missing or unparsable
// document degrades to an empty collection rather than failing startup.
func Open(dir string, log *zap.Logger) *Store {
	s := &Store{dir: dir, log: log}
	s.load(participantsFile, &s.participants)
	s.load(projectsFile, &s.projects)
	s.load(submissionsFile, &s.submissions)
	log.Info("store opened",
		zap.String("dir", dir),
		zap.Int("participants", len(s.participants)),
		zap.Int("projects", len(s.projects)),
		zap.Int("submissions", len(s.submissions)))
	return s
}

func (s *Store) load(name string, v interface{}) {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.log.Warn("read document failed, starting empty", zap.String("file", name), zap.Error(err))
		}
		return
	}
	if err := json.Unmarshal(data, v); err != nil {
		s.log.Warn("parse document failed, starting empty", zap.String("file", name), zap.Error(err))
	}
}

// save must be called with s.mu held. Documents are pretty-printed so that
// the data directory stays human-diffable.
func (s *Store) save(name string, v interface{}) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		s.log.Error("marshal document failed", zap.String("file", name), zap.Error(err))
		return
	}
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		s.log.Error("write document failed, in-memory state retained", zap.String("file", name), zap.Error(err))
	}
}

// Participants returns a snapshot of the participant collection in store order.
func (s *Store) Participants() []model.Participant {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Participant, len(s.participants))
	copy(out, s.participants)
	return out
}

// ParticipantByEmail looks up a participant; email comparison is
// case-insensitive.
func (s *Store) ParticipantByEmail(email string) (model.Participant, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.participants {
		if strings.EqualFold(s.participants[i].Email, email) {
			return s.participants[i], true
		}
	}
	return model.Participant{}, false
}

// UpdateParticipant applies mutate to the participant with the given email
// and flushes the document. Returns ErrNotFound if the email is unknown.
func (s *Store) UpdateParticipant(email string, mutate func(*model.Participant)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.participants {
		if strings.EqualFold(s.participants[i].Email, email) {
			mutate(&s.participants[i])
			s.save(participantsFile, s.participants)
			return nil
		}
	}
	return ErrNotFound
}

// ReplaceParticipants swaps in a new participant collection. Used by the
// import step only.
func (s *Store) ReplaceParticipants(ps []model.Participant) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.participants = make([]model.Participant, len(ps))
	copy(s.participants, ps)
	s.save(participantsFile, s.participants)
}

// Projects returns a snapshot of the project collection in insertion order.
func (s *Store) Projects() []model.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Project, len(s.projects))
	copy(out, s.projects)
	return out
}

func (s *Store) ProjectByID(id string) (model.Project, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.projects {
		if s.projects[i].ID == id {
			return s.projects[i], true
		}
	}
	return model.Project{}, false
}

// AddProject appends a project and flushes the document.
func (s *Store) AddProject(p model.Project) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.projects = append(s.projects, p)
	s.save(projectsFile, s.projects)
}

// UpdateProject applies mutate to the project with the given id and flushes
// the document. If mutate returns an error the project is left untouched and
// nothing is written. Returns ErrNotFound if the id is unknown.
func (s *Store) UpdateProject(id string, mutate func(*model.Project) error) (model.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.projects {
		if s.projects[i].ID == id {
			if err := mutate(&s.projects[i]); err != nil {
				return model.Project{}, err
			}
			s.save(projectsFile, s.projects)
			return s.projects[i], nil
		}
	}
	return model.Project{}, ErrNotFound
}

// Submissions returns a snapshot of the submission audit log.
func (s *Store) Submissions() []model.Submission {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Submission, len(s.submissions))
	copy(out, s.submissions)
	return out
}

// AddSubmission appends a submission record and flushes the audit document.
func (s *Store) AddSubmission(sub model.Submission) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.submissions = append(s.submissions, sub)
	s.save(submissionsFile, s.submissions)
}
