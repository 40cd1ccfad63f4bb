package dto

import (
	"time"

	"github.com/SscSPs/gigster_garage_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateContractRequest defines the data needed to draft a contract.
type CreateContractRequest struct {
	ContractNumber    string          `json:"contractNumber" binding:"omitempty,max=50"` // Generated when empty
	Title             string          `json:"title" binding:"required,max=200"`
	ClientName        string          `json:"clientName" binding:"required,max=200"`
	ClientEmail       string          `json:"clientEmail" binding:"omitempty,email"`
	Content           string          `json:"content" binding:"required"`
	ContractValue     decimal.Decimal `json:"contractValue" binding:"gte=0"`
	Currency          string          `json:"currency" binding:"omitempty,len=3,uppercase"`
	EffectiveDate     *time.Time      `json:"effectiveDate"`
	ExpirationDate    *time.Time      `json:"expirationDate"`
	AutoRenewal       bool            `json:"autoRenewal"`
	RenewalPeriodDays *int            `json:"renewalPeriodDays" binding:"omitempty,min=1,max=3650"`
	NoticePeriodDays  *int            `json:"noticePeriodDays" binding:"omitempty,min=1,max=365"`
	RequiresSignature *bool           `json:"requiresSignature"` // Defaults to true
}

// SignContractRequest records one party's signature.
type SignContractRequest struct {
	Party      string `json:"party" binding:"required,oneof=business client"`
	SignerName string `json:"signerName" binding:"required,max=200"`
}

// ContractResponse is the API view of a contract.
type ContractResponse struct {
	ContractID         string          `json:"contractID"`
	ContractNumber     string          `json:"contractNumber"`
	Title              string          `json:"title"`
	ClientName         string          `json:"clientName"`
	ClientEmail        string          `json:"clientEmail,omitempty"`
	Content            string          `json:"content"`
	Status             string          `json:"status"`
	ContractValue      decimal.Decimal `json:"contractValue"`
	Currency           string          `json:"currency"`
	EffectiveDate      *time.Time      `json:"effectiveDate,omitempty"`
	ExpirationDate     *time.Time      `json:"expirationDate,omitempty"`
	AutoRenewal        bool            `json:"autoRenewal"`
	RenewalPeriodDays  int             `json:"renewalPeriodDays"`
	NoticePeriodDays   int             `json:"noticePeriodDays"`
	RequiresSignature  bool            `json:"requiresSignature"`
	BusinessSignedAt   *time.Time      `json:"businessSignedAt,omitempty"`
	BusinessSignerName string          `json:"businessSignerName,omitempty"`
	ClientSignedAt     *time.Time      `json:"clientSignedAt,omitempty"`
	ClientSignerName   string          `json:"clientSignerName,omitempty"`
	SentAt             *time.Time      `json:"sentAt,omitempty"`
	LastReminderSent   *time.Time      `json:"lastReminderSent,omitempty"`
	ReminderCount      int             `json:"reminderCount"`
	CreatedAt          time.Time       `json:"createdAt"`
	CreatedBy          string          `json:"createdBy"`
}

// ListContractsResponse wraps a page of contracts.
type ListContractsResponse struct {
	Contracts []ContractResponse `json:"contracts"`
}

// ContractStatusUpdateResponse is returned by the manual contract sweep.
type ContractStatusUpdateResponse struct {
	Message            string `json:"message"`
	ExpirationWarnings int    `json:"expirationWarnings"`
	AutoRenewals       int    `json:"autoRenewals"`
	Expired            int    `json:"expired"`
}

// ToContractResponse converts a domain.Contract to a ContractResponse DTO
func ToContractResponse(c *domain.Contract) ContractResponse {
	return ContractResponse{
		ContractID:         c.ContractID,
		ContractNumber:     c.ContractNumber,
		Title:              c.Title,
		ClientName:         c.ClientName,
		ClientEmail:        c.ClientEmail,
		Content:            c.Content,
		Status:             string(c.Status),
		ContractValue:      c.ContractValue,
		Currency:           c.Currency,
		EffectiveDate:      c.EffectiveDate,
		ExpirationDate:     c.ExpirationDate,
		AutoRenewal:        c.AutoRenewal,
		RenewalPeriodDays:  c.RenewalPeriodDays,
		NoticePeriodDays:   c.NoticePeriodDays,
		RequiresSignature:  c.RequiresSignature,
		BusinessSignedAt:   c.BusinessSignedAt,
		BusinessSignerName: c.BusinessSignerName,
		ClientSignedAt:     c.ClientSignedAt,
		ClientSignerName:   c.ClientSignerName,
		SentAt:             c.SentAt,
		LastReminderSent:   c.LastReminderSent,
		ReminderCount:      c.ReminderCount,
		CreatedAt:          c.CreatedAt,
		CreatedBy:          c.CreatedBy,
	}
}

// ToListContractsResponse converts a slice of contracts.
func ToListContractsResponse(contracts []domain.Contract) ListContractsResponse {
	out := make([]ContractResponse, len(contracts))
	for i := range contracts {
		out[i] = ToContractResponse(&contracts[i])
	}
	return ListContractsResponse{Contracts: out}
}
