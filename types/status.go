package types

// Status represents the possible outcomes of a scenario or step execution
type Status string

const (
	StatusPassed    Status = "passed"
	StatusFailed    Status = "failed"
	StatusSkipped   Status = "skipped"
	StatusUndefined Status = "undefined"
	StatusUntested  Status = "untested"
)

// CountsAsSkipped reports whether the status is counted against the skipped
// total in reports. Untested scenarios are merged with skipped ones; the
// execution engine makes no further distinction between the two.
func (s Status) CountsAsSkipped() bool {
	return s == StatusSkipped || s == StatusUntested
}
