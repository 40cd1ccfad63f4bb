package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ContractStatus is the signing and lifecycle state of a contract.
type ContractStatus string

const (
	ContractDraft            ContractStatus = "draft"
	ContractSent             ContractStatus = "sent"
	ContractViewed           ContractStatus = "viewed"
	ContractPendingSignature ContractStatus = "pending_signature"
	ContractPartiallySigned  ContractStatus = "partially_signed"
	ContractFullySigned      ContractStatus = "fully_signed"
	ContractExecuted         ContractStatus = "executed"
	ContractExpired          ContractStatus = "expired"
)

const (
	DefaultNoticePeriodDays  = 30
	DefaultRenewalPeriodDays = 365
	// ReminderCooldown is the minimum gap between two expiration notices.
	ReminderCooldown = 7 * 24 * time.Hour
)

// IsActive reports whether the contract is in force.
func (s ContractStatus) IsActive() bool {
	return s == ContractFullySigned || s == ContractExecuted
}

// AwaitingSignature reports whether the contract is out for signing.
func (s ContractStatus) AwaitingSignature() bool {
	switch s {
	case ContractSent, ContractViewed, ContractPendingSignature, ContractPartiallySigned:
		return true
	}
	return false
}

// SignatureParty identifies who is signing.
type SignatureParty string

const (
	PartyBusiness SignatureParty = "business"
	PartyClient   SignatureParty = "client"
)

// IsValid reports whether p is a known signing party.
func (p SignatureParty) IsValid() bool {
	return p == PartyBusiness || p == PartyClient
}

// Contract is an agreement between the business and a client.
type Contract struct {
	ContractID         string          `json:"contractID"`
	ContractNumber     string          `json:"contractNumber"`
	Title              string          `json:"title"`
	ClientName         string          `json:"clientName"`
	ClientEmail        string          `json:"clientEmail"`
	Content            string          `json:"content"`
	Status             ContractStatus  `json:"status"`
	ContractValue      decimal.Decimal `json:"contractValue"`
	Currency           string          `json:"currency"`
	EffectiveDate      *time.Time      `json:"effectiveDate,omitempty"`
	ExpirationDate     *time.Time      `json:"expirationDate,omitempty"`
	AutoRenewal        bool            `json:"autoRenewal"`
	RenewalPeriodDays  int             `json:"renewalPeriodDays"`
	NoticePeriodDays   int             `json:"noticePeriodDays"`
	RequiresSignature  bool            `json:"requiresSignature"` // Client countersignature required
	BusinessSignedAt   *time.Time      `json:"businessSignedAt,omitempty"`
	BusinessSignerName string          `json:"businessSignerName,omitempty"`
	ClientSignedAt     *time.Time      `json:"clientSignedAt,omitempty"`
	ClientSignerName   string          `json:"clientSignerName,omitempty"`
	SentAt             *time.Time      `json:"sentAt,omitempty"`
	LastReminderSent   *time.Time      `json:"lastReminderSent,omitempty"`
	ReminderCount      int             `json:"reminderCount"`
	AuditFields
}

// HasAllSignatures reports whether every required signature is present.
// The business always signs; the client only when RequiresSignature is set.
func (c *Contract) HasAllSignatures() bool {
	if c.BusinessSignedAt == nil {
		return false
	}
	if c.RequiresSignature && c.ClientSignedAt == nil {
		return false
	}
	return true
}

// Sign records a signature and advances the status. It returns false if the
// party already signed.
func (c *Contract) Sign(party SignatureParty, signer string, now time.Time) bool {
	at := now
	switch party {
	case PartyBusiness:
		if c.BusinessSignedAt != nil {
			return false
		}
		c.BusinessSignedAt = &at
		c.BusinessSignerName = signer
	case PartyClient:
		if c.ClientSignedAt != nil {
			return false
		}
		c.ClientSignedAt = &at
		c.ClientSignerName = signer
	default:
		return false
	}

	if c.HasAllSignatures() {
		c.Status = ContractFullySigned
	} else {
		c.Status = ContractPartiallySigned
	}
	return true
}

// ContractAction is what the lifecycle monitor should do with a contract.
type ContractAction int

const (
	ContractNoAction ContractAction = iota
	ContractSendExpirationNotice
	ContractAutoRenew
	ContractMarkExpired
)

func (a ContractAction) String() string {
	switch a {
	case ContractSendExpirationNotice:
		return "expiration_notice"
	case ContractAutoRenew:
		return "auto_renew"
	case ContractMarkExpired:
		return "mark_expired"
	}
	return "none"
}

// EvaluateContract decides the lifecycle action for an active contract on the given day.
func EvaluateContract(c Contract, now time.Time) ContractAction {
	if !c.Status.IsActive() || c.ExpirationDate == nil {
		return ContractNoAction
	}

	today := LocalDate(now)
	expiration := CalendarDate(*c.ExpirationDate)

	if today.After(expiration) {
		if c.AutoRenewal {
			return ContractAutoRenew
		}
		return ContractMarkExpired
	}

	notice := c.NoticePeriodDays
	if notice <= 0 {
		notice = DefaultNoticePeriodDays
	}
	windowStart := expiration.AddDate(0, 0, -notice)
	if today.After(windowStart) && today.Before(expiration) {
		if c.LastReminderSent == nil || now.Sub(*c.LastReminderSent) >= ReminderCooldown {
			return ContractSendExpirationNotice
		}
	}
	return ContractNoAction
}

// Renew pushes the expiration date forward by the renewal period and resets reminders.
func (c *Contract) Renew() {
	if c.ExpirationDate == nil {
		return
	}
	period := c.RenewalPeriodDays
	if period <= 0 {
		period = DefaultRenewalPeriodDays
	}
	next := c.ExpirationDate.AddDate(0, 0, period)
	c.ExpirationDate = &next
	c.LastReminderSent = nil
	c.ReminderCount = 0
}

// RecordReminder notes that an expiration notice went out.
func (c *Contract) RecordReminder(now time.Time) {
	at := now
	c.LastReminderSent = &at
	c.ReminderCount++
}

// DaysUntil returns the whole days from now until the contract expires.
func (c *Contract) DaysUntil(now time.Time) int {
	if c.ExpirationDate == nil {
		return 0
	}
	return daysBetween(LocalDate(now), CalendarDate(*c.ExpirationDate))
}

// ContractSweepResult summarises one pass of the contract lifecycle monitor.
type ContractSweepResult struct {
	ExpirationWarnings int `json:"expirationWarnings"`
	AutoRenewals       int `json:"autoRenewals"`
	Expired            int `json:"expired"`
}

// ContractStats aggregates contract portfolio figures.
type ContractStats struct {
	Total             int             `json:"total"`
	Active            int             `json:"active"`
	ExpiringSoon      int             `json:"expiringSoon"`
	Expired           int             `json:"expired"`
	PendingSignatures int             `json:"pendingSignatures"`
	AutoRenewals      int             `json:"autoRenewals"`
	ActiveValue       decimal.Decimal `json:"activeValue"`
}
