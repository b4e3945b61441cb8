package db

// Shift represents a database shift record. One row per (employee, date).
type Shift struct {
	ID         string `ssql_header:"id" ssql_type:"uuid"`
	EmployeeID string `ssql_header:"employee_id" ssql_type:"text"`
	Date       string `ssql_header:"date" ssql_type:"date"`
	StartTime  string `ssql_header:"start_time" ssql_type:"time"`
	EndTime    string `ssql_header:"end_time" ssql_type:"time"`
	Role       string `ssql_header:"role" ssql_type:"text"`
	Task       string `ssql_header:"task" ssql_type:"text"`
}

// TimeOffRequest represents a database time-off request record.
// Dates are stored comma-joined since a request may cover non-contiguous days.
type TimeOffRequest struct {
	ID            string `ssql_header:"id" ssql_type:"uuid"`
	EmployeeName  string `ssql_header:"employee_name" ssql_type:"text"`
	EmployeeEmail string `ssql_header:"employee_email" ssql_type:"text"`
	Dates         string `ssql_header:"dates" ssql_type:"text"`
	Reason        string `ssql_header:"reason" ssql_type:"text"`
	Status        string `ssql_header:"status" ssql_type:"text"`
	AdminNote     string `ssql_header:"admin_note" ssql_type:"text"`
	CreatedAt     string `ssql_header:"created_at" ssql_type:"timestamp"`
	DecidedAt     string `ssql_header:"decided_at" ssql_type:"timestamp"`
	DecidedBy     string `ssql_header:"decided_by" ssql_type:"text"`
}

// ShiftOffer represents a database shift offer record with the offered
// shift's content snapshotted at submission time.
type ShiftOffer struct {
	ID             string `ssql_header:"id" ssql_type:"uuid"`
	OffererName    string `ssql_header:"offerer_name" ssql_type:"text"`
	OffererEmail   string `ssql_header:"offerer_email" ssql_type:"text"`
	RecipientName  string `ssql_header:"recipient_name" ssql_type:"text"`
	RecipientEmail string `ssql_header:"recipient_email" ssql_type:"text"`
	ShiftDate      string `ssql_header:"shift_date" ssql_type:"date"`
	ShiftStart     string `ssql_header:"shift_start" ssql_type:"time"`
	ShiftEnd       string `ssql_header:"shift_end" ssql_type:"time"`
	ShiftRole      string `ssql_header:"shift_role" ssql_type:"text"`
	Status         string `ssql_header:"status" ssql_type:"text"`
	RecipientNote  string `ssql_header:"recipient_note" ssql_type:"text"`
	AdminNote      string `ssql_header:"admin_note" ssql_type:"text"`
	CreatedAt      string `ssql_header:"created_at" ssql_type:"timestamp"`
	RecipientAt    string `ssql_header:"recipient_responded_at" ssql_type:"timestamp"`
	AdminDecidedAt string `ssql_header:"admin_decided_at" ssql_type:"timestamp"`
	AdminDecidedBy string `ssql_header:"admin_decided_by" ssql_type:"text"`
	RevokedAt      string `ssql_header:"revoked_at" ssql_type:"timestamp"`
}

// ShiftSwap represents a database shift swap record with both sides'
// shift content snapshotted at proposal time.
type ShiftSwap struct {
	ID             string `ssql_header:"id" ssql_type:"uuid"`
	InitiatorName  string `ssql_header:"initiator_name" ssql_type:"text"`
	InitiatorEmail string `ssql_header:"initiator_email" ssql_type:"text"`
	PartnerName    string `ssql_header:"partner_name" ssql_type:"text"`
	PartnerEmail   string `ssql_header:"partner_email" ssql_type:"text"`
	InitiatorDate  string `ssql_header:"initiator_date" ssql_type:"date"`
	InitiatorStart string `ssql_header:"initiator_start" ssql_type:"time"`
	InitiatorEnd   string `ssql_header:"initiator_end" ssql_type:"time"`
	InitiatorRole  string `ssql_header:"initiator_role" ssql_type:"text"`
	PartnerDate    string `ssql_header:"partner_date" ssql_type:"date"`
	PartnerStart   string `ssql_header:"partner_start" ssql_type:"time"`
	PartnerEnd     string `ssql_header:"partner_end" ssql_type:"time"`
	PartnerRole    string `ssql_header:"partner_role" ssql_type:"text"`
	Status         string `ssql_header:"status" ssql_type:"text"`
	PartnerNote    string `ssql_header:"partner_note" ssql_type:"text"`
	AdminNote      string `ssql_header:"admin_note" ssql_type:"text"`
	CreatedAt      string `ssql_header:"created_at" ssql_type:"timestamp"`
	PartnerAt      string `ssql_header:"partner_responded_at" ssql_type:"timestamp"`
	AdminDecidedAt string `ssql_header:"admin_decided_at" ssql_type:"timestamp"`
	AdminDecidedBy string `ssql_header:"admin_decided_by" ssql_type:"text"`
	RevokedAt      string `ssql_header:"revoked_at" ssql_type:"timestamp"`
}

// LivePeriod represents a pay period that has been published to employees.
type LivePeriod struct {
	ID          string `ssql_header:"id" ssql_type:"uuid"`
	PeriodIndex int    `ssql_header:"period_index" ssql_type:"int"`
}

// Announcement represents an admin announcement record.
type Announcement struct {
	ID        string `ssql_header:"id" ssql_type:"uuid"`
	Subject   string `ssql_header:"subject" ssql_type:"text"`
	Message   string `ssql_header:"message" ssql_type:"text"`
	Active    bool   `ssql_header:"active" ssql_type:"bool"`
	CreatedAt string `ssql_header:"created_at" ssql_type:"timestamp"`
}

// StaffingTarget represents the target headcount for one weekday.
type StaffingTarget struct {
	ID      string `ssql_header:"id" ssql_type:"uuid"`
	Weekday string `ssql_header:"weekday" ssql_type:"text"`
	Target  int    `ssql_header:"target" ssql_type:"int"`
}
