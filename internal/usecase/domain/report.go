// Package domain contains application usecases orchestrating domain logic by report.
package domain

import (
	"context"
	"fmt"

	"github.com/db-keli/task-management/internal/entities"
	"github.com/db-keli/task-management/internal/identity"
)

// GenerateStatusReport computes one row per project in store order.
// The report is all-or-nothing: the first project without tasks aborts
// the build. Rows are derived fresh on every call, never cached. Zero
// projects yield an empty report without error.
func (u *Usecase) GenerateStatusReport(ctx context.Context) ([]entities.StatusReportRow, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	projects, err := u.repo.GetAllProjects(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]entities.StatusReportRow, 0, len(projects))
	for _, p := range projects {
		tasks, err := u.repo.GetTasksForProject(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		if len(tasks) == 0 {
			return nil, fmt.Errorf("%w: project %s (%s) has no tasks", entities.ErrEmptyProject, p.ID, p.Name)
		}

		completed := 0
		for _, t := range tasks {
			if t != nil && t.Completed() {
				completed++
			}
		}
		rows = append(rows, entities.StatusReportRow{
			ProjectID:      p.ID,
			ProjectName:    p.Name,
			TotalTasks:     len(tasks),
			CompletedTasks: completed,
			Completion:     entities.CompletionRatio(tasks),
		})
	}

	if reportID, err := u.issuer.NextID(identity.KindStatusReport); err == nil {
		u.log.Infow("status report generated", "report_id", reportID, "rows", len(rows))
	}
	return rows, nil
}

// CalculateAverageCompletion is the arithmetic mean of the rows'
// completion ratios, 0.0 for an empty row set.
func (u *Usecase) CalculateAverageCompletion(rows []entities.StatusReportRow) float64 {
	if len(rows) == 0 {
		return 0.0
	}
	total := 0.0
	for _, r := range rows {
		total += r.Completion
	}
	return total / float64(len(rows))
}
