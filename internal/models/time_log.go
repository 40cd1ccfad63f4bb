package models

import "time"

// TimeLog is a row of the time_logs table.
type TimeLog struct {
	TimeLogID       string     `db:"time_log_id"`
	UserID          string     `db:"user_id"`
	Description     string     `db:"description"`
	StartTime       time.Time  `db:"start_time"`
	EndTime         *time.Time `db:"end_time"`
	DurationSeconds int64      `db:"duration_seconds"`
	IsActive        bool       `db:"is_active"`
	ApprovalStatus  string     `db:"approval_status"`
	InvoiceID       *string    `db:"invoice_id"`
	AuditFields
}
