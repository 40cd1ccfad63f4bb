package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Contract is a row of the contracts table.
type Contract struct {
	ContractID         string          `db:"contract_id"`
	ContractNumber     string          `db:"contract_number"`
	Title              string          `db:"title"`
	ClientName         string          `db:"client_name"`
	ClientEmail        sql.NullString  `db:"client_email"`
	Content            string          `db:"content"`
	Status             string          `db:"status"`
	ContractValue      decimal.Decimal `db:"contract_value"`
	Currency           string          `db:"currency"`
	EffectiveDate      *time.Time      `db:"effective_date"`
	ExpirationDate     *time.Time      `db:"expiration_date"`
	AutoRenewal        bool            `db:"auto_renewal"`
	RenewalPeriodDays  int             `db:"renewal_period_days"`
	NoticePeriodDays   int             `db:"notice_period_days"`
	RequiresSignature  bool            `db:"requires_signature"`
	BusinessSignedAt   *time.Time      `db:"business_signed_at"`
	BusinessSignerName sql.NullString  `db:"business_signer_name"`
	ClientSignedAt     *time.Time      `db:"client_signed_at"`
	ClientSignerName   sql.NullString  `db:"client_signer_name"`
	SentAt             *time.Time      `db:"sent_at"`
	LastReminderSent   *time.Time      `db:"last_reminder_sent"`
	ReminderCount      int             `db:"reminder_count"`
	AuditFields
}
