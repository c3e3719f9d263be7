package service

import (
	"github.com/google/uuid"

	"EpicBackend/internal/model"
)

// Roster is the persistence contract for the partner document.
type Roster interface {
	Load() ([]model.Partner, error)
	Save(partners []model.Partner) error
}

// Team manages the partner organizations and their members. Operations on an
// absent partner or member are silent no-ops.
type Team interface {
	Partners() ([]model.Partner, error)
	UpdatePartner(id, name, description string) error
	// AddMember assigns the member a fresh id and returns it.
	AddMember(partnerID string, m model.Member) (string, error)
	UpdateMember(partnerID, memberID string, m model.Member) error
	DeleteMember(partnerID, memberID string) error
}

type teamImpl struct {
	repo Roster
}

func NewTeam(repo Roster) Team {
	return &teamImpl{repo: repo}
}

func (s *teamImpl) Partners() ([]model.Partner, error) {
	return s.repo.Load()
}

func (s *teamImpl) UpdatePartner(id, name, description string) error {
	partners, err := s.repo.Load()
	if err != nil {
		return err
	}
	for i := range partners {
		if partners[i].ID == id {
			partners[i].Name = name
			partners[i].Description = description
			break
		}
	}
	return s.repo.Save(partners)
}

func (s *teamImpl) AddMember(partnerID string, m model.Member) (string, error) {
	partners, err := s.repo.Load()
	if err != nil {
		return "", err
	}
	m.ID = uuid.NewString()
	for i := range partners {
		if partners[i].ID == partnerID {
			partners[i].Members = append(partners[i].Members, m)
			break
		}
	}
	if err := s.repo.Save(partners); err != nil {
		return "", err
	}
	return m.ID, nil
}

func (s *teamImpl) UpdateMember(partnerID, memberID string, m model.Member) error {
	partners, err := s.repo.Load()
	if err != nil {
		return err
	}
	for i := range partners {
		if partners[i].ID != partnerID {
			continue
		}
		for j := range partners[i].Members {
			if partners[i].Members[j].ID == memberID {
				m.ID = memberID
				partners[i].Members[j] = m
				break
			}
		}
		break
	}
	return s.repo.Save(partners)
}

func (s *teamImpl) DeleteMember(partnerID, memberID string) error {
	partners, err := s.repo.Load()
	if err != nil {
		return err
	}
	for i := range partners {
		if partners[i].ID != partnerID {
			continue
		}
		kept := make([]model.Member, 0, len(partners[i].Members))
		for _, m := range partners[i].Members {
			if m.ID != memberID {
				kept = append(kept, m)
			}
		}
		partners[i].Members = kept
		break
	}
	return s.repo.Save(partners)
}
