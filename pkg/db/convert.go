package db

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sarvistore/shiftdesk/pkg/core/model"
	"github.com/sarvistore/shiftdesk/pkg/core/requests"
)

// Timestamps are stored as RFC3339 strings in the sheet. Blank cells mean
// "not yet", which maps to the zero time.

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func joinDates(dates []string) string {
	return strings.Join(dates, ",")
}

func splitDates(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	dates := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			dates = append(dates, trimmed)
		}
	}
	return dates
}

// Model converts a shift record to its domain form.
func (s Shift) Model() model.Shift {
	return model.Shift{
		EmployeeID: s.EmployeeID,
		Date:       s.Date,
		StartTime:  s.StartTime,
		EndTime:    s.EndTime,
		Role:       model.Role(s.Role),
		Task:       s.Task,
	}
}

// ShiftRecord builds a database record for a domain shift, minting a row ID.
func ShiftRecord(m model.Shift) Shift {
	return Shift{
		ID:         uuid.New().String(),
		EmployeeID: m.EmployeeID,
		Date:       m.Date,
		StartTime:  m.StartTime,
		EndTime:    m.EndTime,
		Role:       string(m.Role),
		Task:       m.Task,
	}
}

// Model converts a time-off record to its domain form.
func (r TimeOffRequest) Model() requests.TimeOffRequest {
	return requests.TimeOffRequest{
		ID:            r.ID,
		EmployeeName:  r.EmployeeName,
		EmployeeEmail: r.EmployeeEmail,
		Dates:         splitDates(r.Dates),
		Reason:        r.Reason,
		Status:        requests.TimeOffStatus(r.Status),
		AdminNote:     r.AdminNote,
		CreatedAt:     parseTime(r.CreatedAt),
		DecidedAt:     parseTime(r.DecidedAt),
		DecidedBy:     r.DecidedBy,
	}
}

// TimeOffRecord builds a database record for a domain time-off request.
func TimeOffRecord(m requests.TimeOffRequest) TimeOffRequest {
	return TimeOffRequest{
		ID:            m.ID,
		EmployeeName:  m.EmployeeName,
		EmployeeEmail: m.EmployeeEmail,
		Dates:         joinDates(m.Dates),
		Reason:        m.Reason,
		Status:        string(m.Status),
		AdminNote:     m.AdminNote,
		CreatedAt:     formatTime(m.CreatedAt),
		DecidedAt:     formatTime(m.DecidedAt),
		DecidedBy:     m.DecidedBy,
	}
}

// Model converts an offer record to its domain form.
func (o ShiftOffer) Model() requests.ShiftOffer {
	return requests.ShiftOffer{
		ID:             o.ID,
		OffererName:    o.OffererName,
		OffererEmail:   o.OffererEmail,
		RecipientName:  o.RecipientName,
		RecipientEmail: o.RecipientEmail,
		ShiftDate:      o.ShiftDate,
		ShiftStart:     o.ShiftStart,
		ShiftEnd:       o.ShiftEnd,
		ShiftRole:      model.Role(o.ShiftRole),
		Status:         requests.OfferStatus(o.Status),
		RecipientNote:  o.RecipientNote,
		AdminNote:      o.AdminNote,
		CreatedAt:      parseTime(o.CreatedAt),
		RecipientAt:    parseTime(o.RecipientAt),
		AdminDecidedAt: parseTime(o.AdminDecidedAt),
		AdminDecidedBy: o.AdminDecidedBy,
		RevokedAt:      parseTime(o.RevokedAt),
	}
}

// OfferRecord builds a database record for a domain shift offer.
func OfferRecord(m requests.ShiftOffer) ShiftOffer {
	return ShiftOffer{
		ID:             m.ID,
		OffererName:    m.OffererName,
		OffererEmail:   m.OffererEmail,
		RecipientName:  m.RecipientName,
		RecipientEmail: m.RecipientEmail,
		ShiftDate:      m.ShiftDate,
		ShiftStart:     m.ShiftStart,
		ShiftEnd:       m.ShiftEnd,
		ShiftRole:      string(m.ShiftRole),
		Status:         string(m.Status),
		RecipientNote:  m.RecipientNote,
		AdminNote:      m.AdminNote,
		CreatedAt:      formatTime(m.CreatedAt),
		RecipientAt:    formatTime(m.RecipientAt),
		AdminDecidedAt: formatTime(m.AdminDecidedAt),
		AdminDecidedBy: m.AdminDecidedBy,
		RevokedAt:      formatTime(m.RevokedAt),
	}
}

// Model converts a swap record to its domain form.
func (s ShiftSwap) Model() requests.ShiftSwap {
	return requests.ShiftSwap{
		ID:             s.ID,
		InitiatorName:  s.InitiatorName,
		InitiatorEmail: s.InitiatorEmail,
		PartnerName:    s.PartnerName,
		PartnerEmail:   s.PartnerEmail,
		InitiatorShift: requests.ShiftSnapshot{
			Date:  s.InitiatorDate,
			Start: s.InitiatorStart,
			End:   s.InitiatorEnd,
			Role:  model.Role(s.InitiatorRole),
		},
		PartnerShift: requests.ShiftSnapshot{
			Date:  s.PartnerDate,
			Start: s.PartnerStart,
			End:   s.PartnerEnd,
			Role:  model.Role(s.PartnerRole),
		},
		Status:         requests.SwapStatus(s.Status),
		PartnerNote:    s.PartnerNote,
		AdminNote:      s.AdminNote,
		CreatedAt:      parseTime(s.CreatedAt),
		PartnerAt:      parseTime(s.PartnerAt),
		AdminDecidedAt: parseTime(s.AdminDecidedAt),
		AdminDecidedBy: s.AdminDecidedBy,
		RevokedAt:      parseTime(s.RevokedAt),
	}
}

// SwapRecord builds a database record for a domain shift swap.
func SwapRecord(m requests.ShiftSwap) ShiftSwap {
	return ShiftSwap{
		ID:             m.ID,
		InitiatorName:  m.InitiatorName,
		InitiatorEmail: m.InitiatorEmail,
		PartnerName:    m.PartnerName,
		PartnerEmail:   m.PartnerEmail,
		InitiatorDate:  m.InitiatorShift.Date,
		InitiatorStart: m.InitiatorShift.Start,
		InitiatorEnd:   m.InitiatorShift.End,
		InitiatorRole:  string(m.InitiatorShift.Role),
		PartnerDate:    m.PartnerShift.Date,
		PartnerStart:   m.PartnerShift.Start,
		PartnerEnd:     m.PartnerShift.End,
		PartnerRole:    string(m.PartnerShift.Role),
		Status:         string(m.Status),
		PartnerNote:    m.PartnerNote,
		AdminNote:      m.AdminNote,
		CreatedAt:      formatTime(m.CreatedAt),
		PartnerAt:      formatTime(m.PartnerAt),
		AdminDecidedAt: formatTime(m.AdminDecidedAt),
		AdminDecidedBy: m.AdminDecidedBy,
		RevokedAt:      formatTime(m.RevokedAt),
	}
}
