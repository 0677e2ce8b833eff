package console

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/db-keli/task-management/internal/entities"
)

func (m *Menu) renderProjects(projects []entities.Project) {
	if len(projects) == 0 {
		fmt.Fprintln(m.out, "No projects available.")
		return
	}
	w := tabwriter.NewWriter(m.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tTYPE\tBUDGET\tTEAM")
	for _, p := range projects {
		fmt.Fprintf(w, "%s\t%s\t%s\t$%.2f\t%d\n", p.ID, p.Name, p.Type, p.Budget, p.TeamSize)
	}
	_ = w.Flush()
}

func (m *Menu) renderTasks(tasks []*entities.Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(m.out, "No tasks.")
		return
	}
	w := tabwriter.NewWriter(m.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tSTATUS\tASSIGNEE")
	for _, t := range tasks {
		if t == nil {
			continue
		}
		assignee := t.AssignedUserID
		if assignee == "" {
			assignee = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", t.ID, t.Name, t.Status, assignee)
	}
	_ = w.Flush()
}

func (m *Menu) renderUsers(users []entities.User) {
	if len(users) == 0 {
		fmt.Fprintln(m.out, "No users.")
		return
	}
	w := tabwriter.NewWriter(m.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tROLE")
	for _, u := range users {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", u.ID, u.Name, u.Email, u.Role)
	}
	_ = w.Flush()
}

func (m *Menu) showStatusReport(ctx context.Context) {
	rows, err := m.uc.GenerateStatusReport(ctx)
	if err != nil {
		m.printErr(err)
		return
	}
	if len(rows) == 0 {
		fmt.Fprintln(m.out, "No projects available.")
		return
	}

	m.printHeader("Project Status Report")
	w := tabwriter.NewWriter(m.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PROJECT ID\tPROJECT NAME\tTASKS\tCOMPLETED\tPROGRESS (%)")
	for _, r := range rows {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%.1f\n", r.ProjectID, r.ProjectName, r.TotalTasks, r.CompletedTasks, r.Completion*100)
	}
	_ = w.Flush()

	avg := m.uc.CalculateAverageCompletion(rows)
	fmt.Fprintf(m.out, "AVERAGE COMPLETION: %.1f%%\n", avg*100)
}
