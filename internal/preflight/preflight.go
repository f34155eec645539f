package preflight

import "errors"

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// Err converts a failed Result into an error.
func (r Result) Err() error {
	if r.Passed {
		return nil
	}
	return errors.New(r.Name + ": " + r.Detail)
}
