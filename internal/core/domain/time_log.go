package domain

import "time"

// ApprovalStatus is the review state of a time log.
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

// TimeLog is a tracked span of work. A user has at most one active log at a time.
type TimeLog struct {
	TimeLogID       string         `json:"timeLogID"`
	UserID          string         `json:"userID"`
	Description     string         `json:"description"`
	StartTime       time.Time      `json:"startTime"`
	EndTime         *time.Time     `json:"endTime,omitempty"`
	DurationSeconds int64          `json:"durationSeconds"`
	IsActive        bool           `json:"isActive"`
	ApprovalStatus  ApprovalStatus `json:"approvalStatus"`
	InvoiceID       *string        `json:"invoiceID,omitempty"`
	AuditFields
}

// Stop ends an active timer at now.
func (t *TimeLog) Stop(now time.Time) {
	end := now
	if end.Before(t.StartTime) {
		end = t.StartTime
	}
	t.EndTime = &end
	t.DurationSeconds = int64(end.Sub(t.StartTime) / time.Second)
	t.IsActive = false
}
