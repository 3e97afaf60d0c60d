package service

import (
	"errors"

	"go.uber.org/zap"

	"github.com/Scriptome-AI/hackathon-hackagent/internal/match"
	"github.com/Scriptome-AI/hackathon-hackagent/internal/model"
	"github.com/Scriptome-AI/hackathon-hackagent/internal/store"
)

// maxSuggestions caps team-find teammate suggestions.
const maxSuggestions = 5

// ParticipantService answers skill searches and maintains participant
// records. Participants themselves are created by the import step, never
// here.
type ParticipantService struct {
	store *store.Store
	log   *zap.Logger
}

func NewParticipantService(st *store.Store, log *zap.Logger) *ParticipantService {
	return &ParticipantService{store: st, log: log}
}

// FindBySkills returns every participant with at least one skill tag
// containing at least one of the comma-separated query terms. A blank query
// is rejected before the store is touched.
func (s *ParticipantService) FindBySkills(query string) ([]model.Participant, error) {
	terms := match.Terms(query)
	if len(terms) == 0 {
		return nil, ErrEmptyQuery
	}
	return match.Participants(s.store.Participants(), terms), nil
}

// SuggestTeammates returns up to maxSuggestions participants who are still
// looking for a team and match the query, in store order.
func (s *ParticipantService) SuggestTeammates(query string) ([]model.Participant, error) {
	terms := match.Terms(query)
	if len(terms) == 0 {
		return nil, ErrEmptyQuery
	}
	var out []model.Participant
	for _, p := range s.store.Participants() {
		if !p.LookingForTeam {
			continue
		}
		if match.Skills(p.Skills, terms) {
			out = append(out, p)
			if len(out) == maxSuggestions {
				break
			}
		}
	}
	return out, nil
}

// UpdateSkills replaces the skill list of the participant registered under
// email. Returns ErrNotFound when the email is not pre-registered.
func (s *ParticipantService) UpdateSkills(email, raw string) (model.Participant, error) {
	skills := match.Split(raw)
	if len(skills) == 0 {
		return model.Participant{}, ErrEmptyQuery
	}
	var updated model.Participant
	err := s.store.UpdateParticipant(email, func(p *model.Participant) {
		p.Skills = skills
		updated = *p
	})
	if errors.Is(err, store.ErrNotFound) {
		return model.Participant{}, ErrNotFound
	}
	if err != nil {
		return model.Participant{}, err
	}
	s.log.Info("skills updated", zap.String("email", email), zap.Int("skills", len(skills)))
	return updated, nil
}

// MarkTeamRequested flips lookingForTeam off for the participant who just
// posted a team request. Unregistered emails are a silent no-op.
func (s *ParticipantService) MarkTeamRequested(email string) {
	err := s.store.UpdateParticipant(email, func(p *model.Participant) {
		p.LookingForTeam = false
	})
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		s.log.Warn("mark team requested failed", zap.String("email", email), zap.Error(err))
	}
}

// List returns all participants in store order.
func (s *ParticipantService) List() []model.Participant {
	return s.store.Participants()
}

// Stats summarizes the participant directory.
type Stats struct {
	Total          int
	WithSkills     int
	LookingForTeam int
}

func (s *ParticipantService) Stats() Stats {
	var st Stats
	for _, p := range s.store.Participants() {
		st.Total++
		if p.HasSkills() {
			st.WithSkills++
		}
		if p.LookingForTeam {
			st.LookingForTeam++
		}
	}
	return st
}
