package seeder

import "time"

// Outcome records what happened to one record during a run.
type Outcome struct {
	Name    string `json:"name"`
	Created bool   `json:"created"`
	ID      string `json:"id,omitempty"`
	Reason  string `json:"reason,omitempty"`
}

// Report aggregates per-item outcomes for one seed run. A run that hits
// a structural failure (a listing call failing, context cancelled)
// returns the partial report alongside the error.
type Report struct {
	StartedAt      time.Time      `json:"started_at"`
	FinishedAt     time.Time      `json:"finished_at"`
	Cleared        map[string]int `json:"cleared"`
	Categories     []Outcome      `json:"categories"`
	Customizations []Outcome      `json:"customizations"`
	MenuItems      []Outcome      `json:"menu_items"`
	Links          []Outcome      `json:"links"`
}

func newReport() *Report {
	return &Report{
		StartedAt: time.Now(),
		Cleared:   make(map[string]int),
	}
}

func (r *Report) finish() {
	r.FinishedAt = time.Now()
}

// Summary returns created/skipped totals per phase.
func (r *Report) Summary() map[string]int {
	return map[string]int{
		"categories_created":     createdCount(r.Categories),
		"categories_skipped":     len(r.Categories) - createdCount(r.Categories),
		"customizations_created": createdCount(r.Customizations),
		"customizations_skipped": len(r.Customizations) - createdCount(r.Customizations),
		"menu_items_created":     createdCount(r.MenuItems),
		"menu_items_skipped":     len(r.MenuItems) - createdCount(r.MenuItems),
		"links_created":          createdCount(r.Links),
		"links_skipped":          len(r.Links) - createdCount(r.Links),
	}
}

func createdCount(outcomes []Outcome) int {
	n := 0
	for _, o := range outcomes {
		if o.Created {
			n++
		}
	}
	return n
}

func created(name, id string) Outcome {
	return Outcome{Name: name, Created: true, ID: id}
}

func skipped(name string, err error) Outcome {
	return Outcome{Name: name, Reason: err.Error()}
}
