package entity

// Stats holds the aggregate counters shown at the top of the dashboard plus
// the per-tab counts. They are recomputed from both feed snapshots on every
// render; the two feeds advance independently, so nothing here may be cached
// across updates.
type Stats struct {
	Total   int `json:"total"`
	Pending int `json:"pending"`
	Solved  int `json:"solved"`

	AllCount         int `json:"allCount"`
	PendingCount     int `json:"pendingCount"`
	SolvedCount      int `json:"solvedCount"`
	DeviceAlertCount int `json:"deviceAlertCount"`
}

// ComputeStats derives the counters from one consistent pair of snapshots.
//
// Pending counts every device alert regardless of status. That over-counts
// resolved alerts, but it matches the numbers the deployed dashboard has
// always shown and downstream displays key off them, so it is preserved
// rather than fixed. See DESIGN.md.
func ComputeStats(cases []Case, alerts []DeviceAlert) Stats {
	var pendingCases, solvedCases int
	for _, c := range cases {
		if c.Resolved() {
			solvedCases++
		} else {
			pendingCases++
		}
	}

	return Stats{
		Total:            len(cases) + len(alerts),
		Pending:          pendingCases + len(alerts),
		Solved:           solvedCases,
		AllCount:         len(cases),
		PendingCount:     pendingCases,
		SolvedCount:      solvedCases,
		DeviceAlertCount: len(alerts),
	}
}
