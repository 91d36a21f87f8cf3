package response

import (
	"health-push/internal/domain/push"
	"health-push/internal/usecase/queries"
)

type PushRecordResponse struct {
	ID       string `json:"id"`
	UserID   string `json:"user_id"`
	PushType string `json:"push_type"`
	Content  string `json:"content"`
	PushTime int64  `json:"push_time"`
	IsRead   bool   `json:"is_read"`
}

func FromPushRecordList(items []*queries.PushRecordView) []*PushRecordResponse {
	res := make([]*PushRecordResponse, len(items))
	for i, it := range items {
		res[i] = &PushRecordResponse{
			ID:       it.ID.String(),
			UserID:   it.UserID,
			PushType: it.PushType,
			Content:  it.Content,
			PushTime: it.PushTime.Unix(),
			IsRead:   it.IsRead,
		}
	}
	return res
}

type OutcomeResponse struct {
	UserID  string `json:"user_id"`
	Kind    string `json:"kind"`
	Status  string `json:"status"`
	Content string `json:"content,omitempty"`
	Reason  string `json:"reason,omitempty"`
}

func FromOutcome(o push.Outcome) *OutcomeResponse {
	return &OutcomeResponse{
		UserID:  o.UserID,
		Kind:    o.Kind.String(),
		Status:  string(o.Status),
		Content: o.Content,
		Reason:  o.Reason,
	}
}

type SummaryResponse struct {
	Kind      string `json:"kind"`
	Total     int    `json:"total"`
	Succeeded int    `json:"succeeded"`
	Skipped   int    `json:"skipped"`
	Failed    int    `json:"failed"`
}

func FromSummary(kind push.Kind, s push.Summary) *SummaryResponse {
	return &SummaryResponse{
		Kind:      kind.String(),
		Total:     s.Total,
		Succeeded: s.Succeeded,
		Skipped:   s.Skipped,
		Failed:    s.Failed,
	}
}
