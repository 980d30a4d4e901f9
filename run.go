package papersect

import "time"

// Run identifies one crawl whose records are stored together.
type Run struct {
	ID        string    `json:"id"`
	SeedURL   string    `json:"seedUrl"`
	Mode      string    `json:"mode"`
	StartedAt time.Time `json:"startedAt"`
}

// Validate returns an error if the run contains invalid fields.
func (r *Run) Validate() error {
	if r.SeedURL == "" {
		return Errorf(EINVALID, "run seed URL required")
	}
	return nil
}

// RecordFilter represents a filter for stored records.
type RecordFilter struct {
	RunID     *string
	URL       *string
	Available *bool

	// Restrict result set range.
	Offset int
	Limit  int
}
