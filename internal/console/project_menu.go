package console

import (
	"context"
	"fmt"

	"github.com/db-keli/task-management/internal/entities"
)

func (m *Menu) projectMenu(ctx context.Context) {
	for {
		m.printHeader("Project Catalog")
		fmt.Fprintln(m.out, "1. View All Projects")
		fmt.Fprintln(m.out, "2. Add New Project")
		fmt.Fprintln(m.out, "3. View Project Details")
		fmt.Fprintln(m.out, "4. Filter by Type")
		fmt.Fprintln(m.out, "5. Filter by Budget Range")
		fmt.Fprintln(m.out, "6. Assign User to Project")
		fmt.Fprintln(m.out, "7. Remove User from Project")
		fmt.Fprintln(m.out, "8. Delete Project")
		fmt.Fprintln(m.out, "9. Back to Main Menu")

		choice, ok := m.readInt("Enter your choice: ", 1, 9)
		if !ok {
			return
		}
		switch choice {
		case 1:
			projects, err := m.uc.GetAllProjects(ctx)
			if err != nil {
				m.printErr(err)
				continue
			}
			m.renderProjects(projects)
		case 2:
			m.addProject(ctx)
		case 3:
			m.showProjectDetails(ctx)
		case 4:
			t, ok := m.readNonEmpty("Project type (Software/Hardware): ")
			if !ok {
				return
			}
			projects, err := m.uc.FilterProjectsByType(ctx, t)
			if err != nil {
				m.printErr(err)
				continue
			}
			m.renderProjects(projects)
		case 5:
			min, ok := m.readPositiveFloat("Minimum budget: ")
			if !ok {
				return
			}
			max, ok := m.readPositiveFloat("Maximum budget: ")
			if !ok {
				return
			}
			projects, err := m.uc.FilterProjectsByBudget(ctx, min, max)
			if err != nil {
				m.printErr(err)
				continue
			}
			m.renderProjects(projects)
		case 6:
			m.assignUser(ctx)
		case 7:
			m.unassignUser(ctx)
		case 8:
			id, ok := m.readNonEmpty("Project ID to delete: ")
			if !ok {
				return
			}
			removed, err := m.uc.DeleteProject(ctx, id)
			if err != nil {
				m.printErr(err)
				continue
			}
			if removed {
				m.printOK("Project deleted")
			} else {
				fmt.Fprintln(m.out, "No project with that ID")
			}
		case 9:
			return
		}
	}
}

func (m *Menu) addProject(ctx context.Context) {
	software, ok := m.readYesNo("Software project?")
	if !ok {
		return
	}
	projectType := string(entities.TypeHardware)
	if software {
		projectType = string(entities.TypeSoftware)
	}
	name, ok := m.readNonEmpty("Project name: ")
	if !ok {
		return
	}
	description, ok := m.readNonEmpty("Description: ")
	if !ok {
		return
	}
	budget, ok := m.readPositiveFloat("Budget: ")
	if !ok {
		return
	}
	teamSize, ok := m.readInt("Team size: ", 1, 1000)
	if !ok {
		return
	}

	project, err := m.uc.CreateProject(ctx, projectType, name, description, budget, teamSize)
	if err != nil {
		m.printErr(err)
		return
	}
	if _, err := m.uc.AddProject(ctx, project); err != nil {
		m.printErr(err)
		return
	}
	m.printOK(fmt.Sprintf("Project %s added", project.ID))
}

func (m *Menu) showProjectDetails(ctx context.Context) {
	id, ok := m.readNonEmpty("Project ID: ")
	if !ok {
		return
	}
	project, err := m.uc.GetProjectByID(ctx, id)
	if err != nil {
		m.printErr(err)
		return
	}
	tasks, err := m.uc.GetTasksForProject(ctx, id)
	if err != nil {
		m.printErr(err)
		return
	}
	completion, err := m.uc.GetProjectCompletionPercentage(ctx, id)
	if err != nil {
		m.printErr(err)
		return
	}
	assigned, err := m.uc.GetAssignedUserIDsForProject(ctx, id)
	if err != nil {
		m.printErr(err)
		return
	}

	m.printHeader(fmt.Sprintf("Project Details: %s", project.ID))
	fmt.Fprintf(m.out, "Name: %s\nType: %s\nDescription: %s\nBudget: $%.2f\nTeam Size: %d\n",
		project.Name, project.Type, project.Description, project.Budget, project.TeamSize)
	m.renderTasks(tasks)
	fmt.Fprintf(m.out, "Assigned users: %v\n", assigned)
	fmt.Fprintf(m.out, "Completion rate: %.0f%%\n", completion*100)
}

func (m *Menu) assignUser(ctx context.Context) {
	projectID, ok := m.readNonEmpty("Project ID: ")
	if !ok {
		return
	}
	userID, ok := m.readNonEmpty("User ID: ")
	if !ok {
		return
	}
	assigned, err := m.uc.AssignUserToProject(ctx, projectID, userID)
	if err != nil {
		m.printErr(err)
		return
	}
	if assigned {
		m.printOK("User assigned")
	} else {
		fmt.Fprintln(m.out, "Not assigned (unknown project or already assigned)")
	}
}

func (m *Menu) unassignUser(ctx context.Context) {
	projectID, ok := m.readNonEmpty("Project ID: ")
	if !ok {
		return
	}
	userID, ok := m.readNonEmpty("User ID: ")
	if !ok {
		return
	}
	removed, err := m.uc.RemoveUserFromProject(ctx, projectID, userID)
	if err != nil {
		m.printErr(err)
		return
	}
	if removed {
		m.printOK("User removed from project")
	} else {
		fmt.Fprintln(m.out, "No such assignment")
	}
}
