package domain

// CleanupResult reports a delete whose primary operation succeeded while
// some best-effort side effects may have failed. Callers log the failures;
// they are never surfaced as a delete failure.
type CleanupResult struct {
	Attempted int      `json:"attempted"`
	Failed    int      `json:"failed"`
	Errors    []string `json:"errors,omitempty"`
}

// RecordFailure notes one failed side effect
func (c *CleanupResult) RecordFailure(err error) {
	c.Failed++
	if err != nil {
		c.Errors = append(c.Errors, err.Error())
	}
}

// AllSucceeded reports whether every side effect completed
func (c *CleanupResult) AllSucceeded() bool {
	return c.Failed == 0
}
