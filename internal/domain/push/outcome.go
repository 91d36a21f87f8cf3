package push

// Status is the tri-state result of attempting one notification for one user.
type Status string

const (
	StatusSuccess Status = "success"
	StatusSkipped Status = "skipped"
	StatusFailed  Status = "failed"
)

// Outcome describes what happened to a single (user, kind) dispatch.
// Content is populated only on success; Reason only on skip/failure.
type Outcome struct {
	UserID  string
	Kind    Kind
	Status  Status
	Content string
	Reason  string
}

func SuccessOutcome(userID string, kind Kind, content string) Outcome {
	return Outcome{UserID: userID, Kind: kind, Status: StatusSuccess, Content: content}
}

func SkippedOutcome(userID string, kind Kind, reason string) Outcome {
	return Outcome{UserID: userID, Kind: kind, Status: StatusSkipped, Reason: reason}
}

func FailedOutcome(userID string, kind Kind, reason string) Outcome {
	return Outcome{UserID: userID, Kind: kind, Status: StatusFailed, Reason: reason}
}

// Summary aggregates the outcomes of one fan-out run.
type Summary struct {
	Total     int
	Succeeded int
	Skipped   int
	Failed    int
}

func (s *Summary) Record(o Outcome) {
	s.Total++
	switch o.Status {
	case StatusSuccess:
		s.Succeeded++
	case StatusSkipped:
		s.Skipped++
	case StatusFailed:
		s.Failed++
	}
}
