package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Scriptome-AI/hackathon-hackagent/internal/model"
	"github.com/Scriptome-AI/hackathon-hackagent/internal/store"
)

// ProjectService runs the proposal lifecycle: propose → approve/reject →
// join → submit. Every mutation is persisted before the call returns;
// notifications are the caller's concern and always happen after.
type ProjectService struct {
	store *store.Store
	log   *zap.Logger
}

func NewProjectService(st *store.Store, log *zap.Logger) *ProjectService {
	return &ProjectService{store: st, log: log}
}

// newID generates a time-based project token. IDs are millisecond
// timestamps; disambiguate if two proposals land in the same millisecond.
func (s *ProjectService) newID() string {
	id := fmt.Sprintf("P%d", time.Now().UnixMilli())
	for i := 1; ; i++ {
		if _, exists := s.store.ProjectByID(id); !exists {
			return id
		}
		id = fmt.Sprintf("P%d-%d", time.Now().UnixMilli(), i)
	}
}

// Propose records a new pending project with the proposer as its first team
// member and returns the created record.
func (s *ProjectService) Propose(title, description, goals, skillsNeeded, proposerID, proposerName string) model.Project {
	p := model.Project{
		ID:           s.newID(),
		Title:        title,
		Description:  description,
		Goals:        goals,
		SkillsNeeded: skillsNeeded,
		Proposer:     model.Proposer{ID: proposerID, Name: proposerName},
		Status:       model.StatusPending,
		CreatedAt:    time.Now().UTC(),
		TeamMembers:  []string{proposerID},
	}
	s.store.AddProject(p)
	s.log.Info("project proposed",
		zap.String("project_id", p.ID),
		zap.String("title", p.Title),
		zap.String("proposer", proposerID))
	return p
}

// Decide approves or rejects a pending project, recording the decider and
// timestamp. A project is decided exactly once: ErrAlreadyDecided for
// anything past pending, ErrNotFound for unknown ids.
func (s *ProjectService) Decide(id string, approve bool, deciderID string) (model.Project, error) {
	updated, err := s.store.UpdateProject(id, func(p *model.Project) error {
		if p.Decided() {
			return ErrAlreadyDecided
		}
		now := time.Now().UTC()
		if approve {
			p.Status = model.StatusApproved
			p.ApprovedAt = &now
			p.ApprovedBy = deciderID
		} else {
			p.Status = model.StatusRejected
			p.RejectedAt = &now
			p.RejectedBy = deciderID
		}
		return nil
	})
	if errors.Is(err, store.ErrNotFound) {
		return model.Project{}, ErrNotFound
	}
	if err != nil {
		return model.Project{}, err
	}
	s.log.Info("project decided",
		zap.String("project_id", id),
		zap.String("status", updated.Status),
		zap.String("decider", deciderID))
	return updated, nil
}

// Join adds userID to an approved project's roster and returns the updated
// record. Unknown or undecided/rejected ids report ErrNotFound; joining
// twice reports ErrAlreadyMember with the unchanged project.
func (s *ProjectService) Join(id, userID string) (model.Project, error) {
	updated, err := s.store.UpdateProject(id, func(p *model.Project) error {
		if p.Status != model.StatusApproved {
			return ErrNotFound
		}
		if p.IsMember(userID) {
			return ErrAlreadyMember
		}
		p.TeamMembers = append(p.TeamMembers, userID)
		return nil
	})
	if errors.Is(err, store.ErrNotFound) {
		return model.Project{}, ErrNotFound
	}
	if errors.Is(err, ErrAlreadyMember) {
		p, _ := s.store.ProjectByID(id)
		return p, ErrAlreadyMember
	}
	if err != nil {
		return model.Project{}, err
	}
	s.log.Info("team member joined",
		zap.String("project_id", id),
		zap.String("user", userID),
		zap.Int("team_size", len(updated.TeamMembers)))
	return updated, nil
}

// ListApproved returns approved projects in store insertion order.
func (s *ProjectService) ListApproved() []model.Project {
	var out []model.Project
	for _, p := range s.store.Projects() {
		if p.Status == model.StatusApproved {
			out = append(out, p)
		}
	}
	return out
}

// MyProjects returns the approved projects whose roster contains userID.
func (s *ProjectService) MyProjects(userID string) []model.Project {
	var out []model.Project
	for _, p := range s.store.Projects() {
		if p.Status == model.StatusApproved && p.IsMember(userID) {
			out = append(out, p)
		}
	}
	return out
}

// Submit appends a free-form submission record to the audit log. It does not
// touch any Project.
func (s *ProjectService) Submit(projectName, description, link, userID string) model.Submission {
	sub := model.Submission{
		ID:          uuid.NewString(),
		ProjectName: projectName,
		Description: description,
		Link:        link,
		SubmittedBy: userID,
		SubmittedAt: time.Now().UTC(),
	}
	s.store.AddSubmission(sub)
	s.log.Info("submission recorded",
		zap.String("submission_id", sub.ID),
		zap.String("project_name", projectName),
		zap.String("user", userID))
	return sub
}
