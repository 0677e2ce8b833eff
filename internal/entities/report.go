// Package entities contains core business entities.
package entities

// StatusReportRow is one line of a project status report. Rows are
// derived on demand and never persisted or cached.
type StatusReportRow struct {
	ProjectID      string
	ProjectName    string
	TotalTasks     int
	CompletedTasks int
	Completion     float64
}

// CompletionRatio returns the completed share of the given tasks in
// [0,1]. An empty task list yields 0.0.
func CompletionRatio(tasks []*Task) float64 {
	if len(tasks) == 0 {
		return 0.0
	}
	completed := 0
	for _, t := range tasks {
		if t != nil && t.Completed() {
			completed++
		}
	}
	return float64(completed) / float64(len(tasks))
}
