package console

import (
	"context"
	"fmt"

	"github.com/db-keli/task-management/internal/entities"
)

func (m *Menu) taskMenu(ctx context.Context) {
	for {
		m.printHeader("Task Management")
		fmt.Fprintln(m.out, "1. List Tasks for Project")
		fmt.Fprintln(m.out, "2. Add New Task")
		fmt.Fprintln(m.out, "3. Update Task Status")
		fmt.Fprintln(m.out, "4. Remove Task")
		fmt.Fprintln(m.out, "5. Back to Main Menu")

		choice, ok := m.readInt("Enter your choice: ", 1, 5)
		if !ok {
			return
		}
		switch choice {
		case 1:
			projectID, ok := m.readNonEmpty("Project ID: ")
			if !ok {
				return
			}
			tasks, err := m.uc.GetTasksForProject(ctx, projectID)
			if err != nil {
				m.printErr(err)
				continue
			}
			m.renderTasks(tasks)
		case 2:
			m.addTask(ctx)
		case 3:
			m.updateTaskStatus(ctx)
		case 4:
			projectID, ok := m.readNonEmpty("Project ID: ")
			if !ok {
				return
			}
			taskID, ok := m.readNonEmpty("Task ID: ")
			if !ok {
				return
			}
			if err := m.uc.RemoveTaskFromProject(ctx, projectID, taskID); err != nil {
				m.printErr(err)
				continue
			}
			m.printOK("Task removed")
		case 5:
			return
		}
	}
}

func (m *Menu) readStatus() (entities.TaskStatus, bool) {
	fmt.Fprintln(m.out, "1. NotStarted")
	fmt.Fprintln(m.out, "2. InProgress")
	fmt.Fprintln(m.out, "3. Done")
	choice, ok := m.readInt("Status: ", 1, 3)
	if !ok {
		return "", false
	}
	switch choice {
	case 2:
		return entities.StatusInProgress, true
	case 3:
		return entities.StatusDone, true
	default:
		return entities.StatusNotStarted, true
	}
}

func (m *Menu) addTask(ctx context.Context) {
	projectID, ok := m.readNonEmpty("Project ID: ")
	if !ok {
		return
	}
	name, ok := m.readNonEmpty("Task name: ")
	if !ok {
		return
	}
	status, ok := m.readStatus()
	if !ok {
		return
	}

	task, err := m.uc.CreateTask(ctx, name, status)
	if err != nil {
		m.printErr(err)
		return
	}
	if err := m.uc.AddTaskToProject(ctx, projectID, task); err != nil {
		m.printErr(err)
		return
	}
	m.printOK(fmt.Sprintf("Task %s added to %s", task.ID, projectID))
}

func (m *Menu) updateTaskStatus(ctx context.Context) {
	projectID, ok := m.readNonEmpty("Project ID: ")
	if !ok {
		return
	}
	taskID, ok := m.readNonEmpty("Task ID: ")
	if !ok {
		return
	}
	tasks, err := m.uc.GetTasksForProject(ctx, projectID)
	if err != nil {
		m.printErr(err)
		return
	}
	for _, t := range tasks {
		if t != nil && t.ID == taskID {
			status, ok := m.readStatus()
			if !ok {
				return
			}
			if m.uc.UpdateTaskStatus(t, status) {
				m.printOK("Status updated")
			}
			return
		}
	}
	fmt.Fprintf(m.out, "No task %s in project %s\n", taskID, projectID)
}
