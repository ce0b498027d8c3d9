package model

// AnalyticsSnapshot is the dashboard count payload. Field names match
// the existing client contract, including the legacy casing.
type AnalyticsSnapshot struct {
	HighPriority       int64 `json:"highPriority"`
	LowPriority        int64 `json:"lowPriority"`
	ModeratePriority   int64 `json:"moderatePriority"`
	IncompleteDueTasks int64 `json:"IncompleteDuetasks"`
	Todo               int64 `json:"Todo"`
	Backlog            int64 `json:"Backlog"`
	Done               int64 `json:"Done"`
	InProgress         int64 `json:"Inprogress"`
}
