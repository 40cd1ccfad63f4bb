package mapping

import (
	"github.com/SscSPs/gigster_garage_backend/internal/core/domain"
	"github.com/SscSPs/gigster_garage_backend/internal/models"
)

// ToModelTimeLog converts a domain TimeLog to a model TimeLog
func ToModelTimeLog(d domain.TimeLog) models.TimeLog {
	return models.TimeLog{
		TimeLogID:       d.TimeLogID,
		UserID:          d.UserID,
		Description:     d.Description,
		StartTime:       d.StartTime,
		EndTime:         d.EndTime,
		DurationSeconds: d.DurationSeconds,
		IsActive:        d.IsActive,
		ApprovalStatus:  string(d.ApprovalStatus),
		InvoiceID:       d.InvoiceID,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTimeLog converts a model TimeLog to a domain TimeLog
func ToDomainTimeLog(m models.TimeLog) domain.TimeLog {
	return domain.TimeLog{
		TimeLogID:       m.TimeLogID,
		UserID:          m.UserID,
		Description:     m.Description,
		StartTime:       m.StartTime,
		EndTime:         m.EndTime,
		DurationSeconds: m.DurationSeconds,
		IsActive:        m.IsActive,
		ApprovalStatus:  domain.ApprovalStatus(m.ApprovalStatus),
		InvoiceID:       m.InvoiceID,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTimeLogSlice converts a slice of model TimeLogs to a slice of domain TimeLogs
func ToDomainTimeLogSlice(ms []models.TimeLog) []domain.TimeLog {
	ds := make([]domain.TimeLog, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTimeLog(m)
	}
	return ds
}
