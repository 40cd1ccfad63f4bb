package dto

import (
	"time"

	"github.com/SscSPs/gigster_garage_backend/internal/core/domain"
)

// StartTimerRequest starts a new running time log.
type StartTimerRequest struct {
	Description string  `json:"description" binding:"required,max=500"`
	InvoiceID   *string `json:"invoiceID" binding:"omitempty,uuid"`
}

// TimeLogResponse is the API view of a time log.
type TimeLogResponse struct {
	TimeLogID       string     `json:"timeLogID"`
	UserID          string     `json:"userID"`
	Description     string     `json:"description"`
	StartTime       time.Time  `json:"startTime"`
	EndTime         *time.Time `json:"endTime,omitempty"`
	DurationSeconds int64      `json:"durationSeconds"`
	IsActive        bool       `json:"isActive"`
	ApprovalStatus  string     `json:"approvalStatus"`
	InvoiceID       *string    `json:"invoiceID,omitempty"`
}

// ListTimeLogsResponse wraps a page of time logs.
type ListTimeLogsResponse struct {
	TimeLogs []TimeLogResponse `json:"timeLogs"`
}

// ToTimeLogResponse converts a domain.TimeLog to a TimeLogResponse DTO
func ToTimeLogResponse(t *domain.TimeLog) TimeLogResponse {
	return TimeLogResponse{
		TimeLogID:       t.TimeLogID,
		UserID:          t.UserID,
		Description:     t.Description,
		StartTime:       t.StartTime,
		EndTime:         t.EndTime,
		DurationSeconds: t.DurationSeconds,
		IsActive:        t.IsActive,
		ApprovalStatus:  string(t.ApprovalStatus),
		InvoiceID:       t.InvoiceID,
	}
}

// ToListTimeLogsResponse converts a slice of time logs.
func ToListTimeLogsResponse(logs []domain.TimeLog) ListTimeLogsResponse {
	out := make([]TimeLogResponse, len(logs))
	for i := range logs {
		out[i] = ToTimeLogResponse(&logs[i])
	}
	return ListTimeLogsResponse{TimeLogs: out}
}
