package domain

import "time"

// StatusTransition is the outcome of evaluating an entity against a reference date.
type StatusTransition struct {
	Changed   bool
	NewStatus InvoiceStatus
}

// CalendarDate returns the calendar day a stored date names. Due and expiration
// dates are persisted as UTC midnight, so the day is read in UTC whatever zone
// the driver hands the value back in.
func CalendarDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// LocalDate returns the calendar day t falls on in its own location, expressed
// as UTC midnight so it can be compared with CalendarDate.
func LocalDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}

// EvaluateInvoiceStatus decides whether inv should move to a new status on the given day.
// A sent invoice becomes overdue once today is strictly after its due date; the
// comparison is made on calendar days so an invoice due today is not yet overdue.
func EvaluateInvoiceStatus(inv Invoice, today time.Time) StatusTransition {
	if inv.Status.IsTerminal() {
		return StatusTransition{}
	}
	if inv.Status != InvoiceSent || inv.DueDate == nil {
		return StatusTransition{}
	}

	if LocalDate(today).After(CalendarDate(*inv.DueDate)) {
		return StatusTransition{Changed: true, NewStatus: InvoiceOverdue}
	}
	return StatusTransition{}
}

// DaysOverdue returns the whole days elapsed since the due date, or 0 when the
// due date has not passed yet.
func DaysOverdue(due, now time.Time) int {
	days := daysBetween(CalendarDate(due), LocalDate(now))
	if days < 0 {
		return 0
	}
	return days
}
