package constants

// DocumentStatus is the canonical lifecycle status for rows in documents.
type DocumentStatus string

// Stable values (store these exact strings in DB).
const (
	StatusUploaded   DocumentStatus = "uploaded"   // row created, original blob persisted
	StatusQueued     DocumentStatus = "queued"     // extraction task published
	StatusProcessing DocumentStatus = "processing" // a worker picked the task up
	StatusProcessed  DocumentStatus = "processed"  // terminal success
	StatusFailed     DocumentStatus = "failed"     // terminal failure
)

// transitions holds the legal lifecycle steps. uploaded -> processing is
// allowed so a republished task for a document that never reached queued
// can still be worked on.
var transitions = map[DocumentStatus][]DocumentStatus{
	StatusUploaded:   {StatusQueued, StatusProcessing},
	StatusQueued:     {StatusProcessing},
	StatusProcessing: {StatusProcessed, StatusFailed},
}

// IsTerminal reports whether no automatic transition may leave s.
func (s DocumentStatus) IsTerminal() bool {
	return s == StatusProcessed || s == StatusFailed
}

// CanTransition reports whether s -> to is a legal lifecycle step.
func (s DocumentStatus) CanTransition(to DocumentStatus) bool {
	for _, next := range transitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

func (s DocumentStatus) String() string {
	return string(s)
}

// Statuses lists every valid status value, for schema validation.
func Statuses() []string {
	return []string{
		string(StatusUploaded),
		string(StatusQueued),
		string(StatusProcessing),
		string(StatusProcessed),
		string(StatusFailed),
	}
}
