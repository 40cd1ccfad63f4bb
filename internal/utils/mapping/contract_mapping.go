package mapping

import (
	"github.com/SscSPs/gigster_garage_backend/internal/core/domain"
	"github.com/SscSPs/gigster_garage_backend/internal/models"
)

// ToModelContract converts a domain Contract to a model Contract
func ToModelContract(d domain.Contract) models.Contract {
	return models.Contract{
		ContractID:         d.ContractID,
		ContractNumber:     d.ContractNumber,
		Title:              d.Title,
		ClientName:         d.ClientName,
		ClientEmail:        nullString(d.ClientEmail),
		Content:            d.Content,
		Status:             string(d.Status),
		ContractValue:      d.ContractValue,
		Currency:           d.Currency,
		EffectiveDate:      d.EffectiveDate,
		ExpirationDate:     d.ExpirationDate,
		AutoRenewal:        d.AutoRenewal,
		RenewalPeriodDays:  d.RenewalPeriodDays,
		NoticePeriodDays:   d.NoticePeriodDays,
		RequiresSignature:  d.RequiresSignature,
		BusinessSignedAt:   d.BusinessSignedAt,
		BusinessSignerName: nullString(d.BusinessSignerName),
		ClientSignedAt:     d.ClientSignedAt,
		ClientSignerName:   nullString(d.ClientSignerName),
		SentAt:             d.SentAt,
		LastReminderSent:   d.LastReminderSent,
		ReminderCount:      d.ReminderCount,
		AuditFields:        ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainContract converts a model Contract to a domain Contract
func ToDomainContract(m models.Contract) domain.Contract {
	return domain.Contract{
		ContractID:         m.ContractID,
		ContractNumber:     m.ContractNumber,
		Title:              m.Title,
		ClientName:         m.ClientName,
		ClientEmail:        m.ClientEmail.String,
		Content:            m.Content,
		Status:             domain.ContractStatus(m.Status),
		ContractValue:      m.ContractValue,
		Currency:           m.Currency,
		EffectiveDate:      m.EffectiveDate,
		ExpirationDate:     m.ExpirationDate,
		AutoRenewal:        m.AutoRenewal,
		RenewalPeriodDays:  m.RenewalPeriodDays,
		NoticePeriodDays:   m.NoticePeriodDays,
		RequiresSignature:  m.RequiresSignature,
		BusinessSignedAt:   m.BusinessSignedAt,
		BusinessSignerName: m.BusinessSignerName.String,
		ClientSignedAt:     m.ClientSignedAt,
		ClientSignerName:   m.ClientSignerName.String,
		SentAt:             m.SentAt,
		LastReminderSent:   m.LastReminderSent,
		ReminderCount:      m.ReminderCount,
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainContractSlice converts a slice of model Contracts to a slice of domain Contracts
func ToDomainContractSlice(ms []models.Contract) []domain.Contract {
	ds := make([]domain.Contract, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainContract(m)
	}
	return ds
}
