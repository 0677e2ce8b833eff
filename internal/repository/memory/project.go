package memory

import (
	"context"
	"fmt"
	"strings"

	"github.com/db-keli/task-management/internal/entities"
	"github.com/db-keli/task-management/internal/identity"
)

// AddProject appends a project to the store, assigning an ID when the
// project carries none. Budget is re-checked here so a project mutated
// after creation cannot slip past the invariant.
func (m *Memory) AddProject(_ context.Context, project *entities.Project) (*entities.Project, error) {
	if project == nil {
		return nil, fmt.Errorf("%w: project cannot be null", entities.ErrInvalidArgument)
	}
	if len(m.projects) >= m.cfg.ProjectCapacity {
		return nil, fmt.Errorf("%w: maximum projects limit reached (%d)", entities.ErrCapacityExceeded, m.cfg.ProjectCapacity)
	}
	if project.Budget <= 0 {
		return nil, fmt.Errorf("%w: budget must be positive, provided: %v", entities.ErrInvalidArgument, project.Budget)
	}

	if project.ID == "" {
		id, err := m.issuer.NextID(identity.KindProject)
		if err != nil {
			return nil, fmt.Errorf("generate project id: %w", err)
		}
		project.ID = id
	} else if m.projectExists(project.ID) {
		return nil, fmt.Errorf("%w: project ID already exists: %s", entities.ErrDuplicateID, project.ID)
	}

	m.projects = append(m.projects, *project)
	m.log.Infow("project added", "project_id", project.ID, "type", project.Type)
	return project, nil
}

// GetProjectByID scans the store in insertion order.
func (m *Memory) GetProjectByID(_ context.Context, id string) (*entities.Project, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: project ID cannot be null", entities.ErrProjectNotFound)
	}
	for i := range m.projects {
		if m.projects[i].ID == id {
			p := m.projects[i]
			return &p, nil
		}
	}
	return nil, fmt.Errorf("%w: project ID %q does not exist", entities.ErrProjectNotFound, id)
}

func (m *Memory) projectExists(id string) bool {
	for i := range m.projects {
		if m.projects[i].ID == id {
			return true
		}
	}
	return false
}

// GetAllProjects returns a snapshot in insertion order; mutating it
// does not affect the store.
func (m *Memory) GetAllProjects(_ context.Context) ([]entities.Project, error) {
	all := make([]entities.Project, len(m.projects))
	copy(all, m.projects)
	return all, nil
}

// FilterProjectsByType matches the type tag case-insensitively; an
// unknown type yields an empty result, never an error.
func (m *Memory) FilterProjectsByType(_ context.Context, projectType string) ([]entities.Project, error) {
	filtered := make([]entities.Project, 0)
	if projectType == "" {
		return filtered, nil
	}
	for i := range m.projects {
		if strings.EqualFold(string(m.projects[i].Type), projectType) {
			filtered = append(filtered, m.projects[i])
		}
	}
	return filtered, nil
}

// FilterProjectsByBudget returns projects whose budget lies in
// [min, max], in insertion order.
func (m *Memory) FilterProjectsByBudget(_ context.Context, min, max float64) ([]entities.Project, error) {
	filtered := make([]entities.Project, 0)
	for i := range m.projects {
		if b := m.projects[i].Budget; b >= min && b <= max {
			filtered = append(filtered, m.projects[i])
		}
	}
	return filtered, nil
}

// DeleteProject removes the project, shifting later entries down to
// close the gap, and atomically clears both relationship indexes for
// the ID. The issued ID is never reused.
func (m *Memory) DeleteProject(_ context.Context, id string) (bool, error) {
	if id == "" {
		return false, nil
	}
	for i := range m.projects {
		if m.projects[i].ID != id {
			continue
		}
		m.projects = append(m.projects[:i], m.projects[i+1:]...)
		delete(m.projectTasks, id)
		delete(m.projectAssignees, id)
		m.log.Infow("project deleted", "project_id", id)
		return true, nil
	}
	return false, nil
}
