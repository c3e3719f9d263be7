package jsonfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"EpicBackend/internal/model"
)

// Roster persists the partner list as one bare JSON array shared by all team
// endpoints.
type Roster struct {
	mu   sync.Mutex
	path string
}

func NewRoster(path string) *Roster {
	return &Roster{path: path}
}

// Bootstrap seeds the roster with the default partner organizations on first
// run. An existing roster file is left untouched.
func (r *Roster) Bootstrap() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return err
	}
	if _, err := os.Stat(r.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}
	return r.save(defaultPartners())
}

func (r *Roster) Load() ([]model.Partner, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("read roster %s: %w", r.path, err)
	}
	var partners []model.Partner
	if err := json.Unmarshal(data, &partners); err != nil {
		return nil, fmt.Errorf("parse roster %s: %w", r.path, err)
	}
	return partners, nil
}

func (r *Roster) Save(partners []model.Partner) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.save(partners)
}

func (r *Roster) save(partners []model.Partner) error {
	if partners == nil {
		partners = []model.Partner{}
	}
	data, err := json.MarshalIndent(partners, "", "  ")
	if err != nil {
		return err
	}
	return writeFileAtomic(r.path, data)
}

func defaultPartners() []model.Partner {
	return []model.Partner{
		{ID: "1", Name: "Agricultural Engineering Institute", Description: "Leading research in sustainable irrigation systems and water resource management.", Members: []model.Member{}},
		{ID: "2", Name: "Environmental Science Center", Description: "Specializing in climate adaptation strategies and community-based water management.", Members: []model.Member{}},
		{ID: "3", Name: "Development Studies Foundation", Description: "Focusing on gender equity in irrigation access and participatory approaches.", Members: []model.Member{}},
		{ID: "4", Name: "Technology Innovation Lab", Description: "Developing smart irrigation systems and IoT solutions for precision agriculture.", Members: []model.Member{}},
		{ID: "5", Name: "Agricultural Economics Research", Description: "Coordinating field studies and community engagement programs.", Members: []model.Member{}},
		{ID: "6", Name: "Data Analytics Institute", Description: "Leading data analysis and modeling efforts for irrigation system effectiveness.", Members: []model.Member{}},
		{ID: "7", Name: "Water Resources Center", Description: "Providing strategic guidance and oversight for research initiatives.", Members: []model.Member{}},
		{ID: "8", Name: "International Water Management", Description: "Regional advisory and technical support for water management projects.", Members: []model.Member{}},
	}
}
