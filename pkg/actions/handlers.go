package actions

import (
	"context"
	"encoding/json"

	"github.com/sarvistore/shiftdesk/pkg/core/model"
	"github.com/sarvistore/shiftdesk/pkg/core/requests"
	"github.com/sarvistore/shiftdesk/pkg/core/schedule"
	"github.com/sarvistore/shiftdesk/pkg/core/services"
	"github.com/sarvistore/shiftdesk/pkg/db"
)

type submitTimeOffPayload struct {
	Dates  []string `json:"dates" validate:"required,min=1"`
	Reason string   `json:"reason"`
}

type requestIDPayload struct {
	RequestID string `json:"requestId" validate:"required"`
}

type decisionPayload struct {
	RequestID string `json:"requestId" validate:"required"`
	Note      string `json:"note"`
}

type denyPayload struct {
	RequestID string `json:"requestId" validate:"required"`
	Reason    string `json:"reason"`
}

type submitOfferPayload struct {
	RecipientEmail string `json:"recipientEmail" validate:"required,email"`
	ShiftDate      string `json:"shiftDate" validate:"required"`
	ShiftStart     string `json:"shiftStart"`
	ShiftEnd       string `json:"shiftEnd"`
	ShiftRole      string `json:"shiftRole"`
}

type shiftSidePayload struct {
	Date  string `json:"date" validate:"required"`
	Start string `json:"start"`
	End   string `json:"end"`
	Role  string `json:"role"`
}

type submitSwapPayload struct {
	PartnerEmail   string           `json:"partnerEmail" validate:"required,email"`
	InitiatorShift shiftSidePayload `json:"initiatorShift" validate:"required"`
	PartnerShift   shiftSidePayload `json:"partnerShift" validate:"required"`
}

type shiftPayload struct {
	EmployeeID string `json:"employeeId" validate:"required"`
	Date       string `json:"date" validate:"required"`
	StartTime  string `json:"startTime" validate:"required"`
	EndTime    string `json:"endTime" validate:"required"`
	Role       string `json:"role"`
	Task       string `json:"task"`
}

type batchSaveShiftsPayload struct {
	Shifts      []shiftPayload `json:"shifts"`
	PeriodDates []string       `json:"periodDates" validate:"required,min=1"`
}

type saveLivePeriodsPayload struct {
	LivePeriods []int `json:"livePeriods" validate:"required"`
}

func (d *Dispatcher) submitTimeOffRequest(ctx context.Context, caller string, payload json.RawMessage) Response {
	var p submitTimeOffPayload
	if errInfo := d.decode(payload, &p); errInfo != nil {
		return Response{Success: false, Error: errInfo}
	}
	req, err := services.SubmitTimeOff(ctx, d.state, d.store, d.logger, caller, p.Dates, p.Reason, d.now())
	if err != nil {
		return errorResponse(err)
	}
	return success(req)
}

func (d *Dispatcher) cancelTimeOffRequest(ctx context.Context, caller string, payload json.RawMessage) Response {
	var p requestIDPayload
	if errInfo := d.decode(payload, &p); errInfo != nil {
		return Response{Success: false, Error: errInfo}
	}
	req, err := services.CancelTimeOff(ctx, d.state, d.store, d.logger, p.RequestID, caller, d.now())
	if err != nil {
		return errorResponse(err)
	}
	return success(req)
}

func (d *Dispatcher) approveTimeOffRequest(ctx context.Context, caller string, payload json.RawMessage) Response {
	var p decisionPayload
	if errInfo := d.decode(payload, &p); errInfo != nil {
		return Response{Success: false, Error: errInfo}
	}
	req, err := services.ApproveTimeOff(ctx, d.state, d.store, d.logger, p.RequestID, caller, p.Note, d.now())
	if err != nil {
		return errorResponse(err)
	}
	return success(req)
}

func (d *Dispatcher) denyTimeOffRequest(ctx context.Context, caller string, payload json.RawMessage) Response {
	var p denyPayload
	if errInfo := d.decode(payload, &p); errInfo != nil {
		return Response{Success: false, Error: errInfo}
	}
	req, err := services.DenyTimeOff(ctx, d.state, d.store, d.logger, p.RequestID, caller, p.Reason, d.now())
	if err != nil {
		return errorResponse(err)
	}
	return success(req)
}

func (d *Dispatcher) revokeTimeOffRequest(ctx context.Context, caller string, payload json.RawMessage) Response {
	var p decisionPayload
	if errInfo := d.decode(payload, &p); errInfo != nil {
		return Response{Success: false, Error: errInfo}
	}
	req, err := services.RevokeTimeOff(ctx, d.state, d.store, d.logger, p.RequestID, caller, p.Note, d.now())
	if err != nil {
		return errorResponse(err)
	}
	return success(req)
}

// verifyShiftSnapshot refuses a submission whose shift details no longer
// match the grid. Clients send the snapshot they rendered, so a stale page
// cannot act on a shift that has since been edited. Omitted details skip the
// check; a missing shift falls through to the lifecycle's own error.
func (d *Dispatcher) verifyShiftSnapshot(email, date, start, end, role string) *ErrorInfo {
	if start == "" && end == "" && role == "" {
		return nil
	}
	emp, err := d.state.EmployeeByEmail(email)
	if err != nil {
		return nil
	}
	shift, ok := d.state.Shifts.Get(emp.ID, date)
	if !ok {
		return nil
	}
	if (start != "" && start != shift.StartTime) ||
		(end != "" && end != shift.EndTime) ||
		(role != "" && role != string(shift.Role)) {
		return &ErrorInfo{Code: CodeValidation, Message: "shift details are out of date; reload the schedule and retry"}
	}
	return nil
}

func (d *Dispatcher) submitShiftOffer(ctx context.Context, caller string, payload json.RawMessage) Response {
	var p submitOfferPayload
	if errInfo := d.decode(payload, &p); errInfo != nil {
		return Response{Success: false, Error: errInfo}
	}
	if errInfo := d.verifyShiftSnapshot(caller, p.ShiftDate, p.ShiftStart, p.ShiftEnd, p.ShiftRole); errInfo != nil {
		return Response{Success: false, Error: errInfo}
	}
	offer, err := services.SubmitShiftOffer(ctx, d.state, d.store, d.logger, caller, p.RecipientEmail, p.ShiftDate, d.now())
	if err != nil {
		return errorResponse(err)
	}
	return success(offer)
}

func (d *Dispatcher) cancelShiftOffer(ctx context.Context, caller string, payload json.RawMessage) Response {
	var p requestIDPayload
	if errInfo := d.decode(payload, &p); errInfo != nil {
		return Response{Success: false, Error: errInfo}
	}
	offer, err := services.CancelShiftOffer(ctx, d.state, d.store, d.logger, p.RequestID, caller, d.now())
	if err != nil {
		return errorResponse(err)
	}
	return success(offer)
}

func (d *Dispatcher) acceptShiftOffer(ctx context.Context, caller string, payload json.RawMessage) Response {
	var p requestIDPayload
	if errInfo := d.decode(payload, &p); errInfo != nil {
		return Response{Success: false, Error: errInfo}
	}
	offer, err := services.AcceptShiftOffer(ctx, d.state, d.store, d.logger, p.RequestID, caller, d.now())
	if err != nil {
		return errorResponse(err)
	}
	return success(offer)
}

func (d *Dispatcher) declineShiftOffer(ctx context.Context, caller string, payload json.RawMessage) Response {
	var p decisionPayload
	if errInfo := d.decode(payload, &p); errInfo != nil {
		return Response{Success: false, Error: errInfo}
	}
	offer, err := services.DeclineShiftOffer(ctx, d.state, d.store, d.logger, p.RequestID, caller, p.Note, d.now())
	if err != nil {
		return errorResponse(err)
	}
	return success(offer)
}

func (d *Dispatcher) approveShiftOffer(ctx context.Context, caller string, payload json.RawMessage) Response {
	var p requestIDPayload
	if errInfo := d.decode(payload, &p); errInfo != nil {
		return Response{Success: false, Error: errInfo}
	}
	offer, err := services.ApproveShiftOffer(ctx, d.state, d.store, d.logger, p.RequestID, caller, d.now())
	if err != nil {
		return errorResponse(err)
	}
	return success(offer)
}

func (d *Dispatcher) rejectShiftOffer(ctx context.Context, caller string, payload json.RawMessage) Response {
	var p decisionPayload
	if errInfo := d.decode(payload, &p); errInfo != nil {
		return Response{Success: false, Error: errInfo}
	}
	offer, err := services.RejectShiftOffer(ctx, d.state, d.store, d.logger, p.RequestID, caller, p.Note, d.now())
	if err != nil {
		return errorResponse(err)
	}
	return success(offer)
}

func (d *Dispatcher) revokeShiftOffer(ctx context.Context, caller string, payload json.RawMessage) Response {
	var p requestIDPayload
	if errInfo := d.decode(payload, &p); errInfo != nil {
		return Response{Success: false, Error: errInfo}
	}
	offer, err := services.RevokeShiftOffer(ctx, d.state, d.store, d.logger, p.RequestID, caller, d.now())
	if err != nil {
		return errorResponse(err)
	}
	return success(offer)
}

func (d *Dispatcher) submitSwapRequest(ctx context.Context, caller string, payload json.RawMessage) Response {
	var p submitSwapPayload
	if errInfo := d.decode(payload, &p); errInfo != nil {
		return Response{Success: false, Error: errInfo}
	}
	if errInfo := d.verifyShiftSnapshot(caller, p.InitiatorShift.Date, p.InitiatorShift.Start, p.InitiatorShift.End, p.InitiatorShift.Role); errInfo != nil {
		return Response{Success: false, Error: errInfo}
	}
	if errInfo := d.verifyShiftSnapshot(p.PartnerEmail, p.PartnerShift.Date, p.PartnerShift.Start, p.PartnerShift.End, p.PartnerShift.Role); errInfo != nil {
		return Response{Success: false, Error: errInfo}
	}
	swap, err := services.SubmitShiftSwap(ctx, d.state, d.store, d.logger,
		caller, p.PartnerEmail, p.InitiatorShift.Date, p.PartnerShift.Date, d.now())
	if err != nil {
		return errorResponse(err)
	}
	return success(swap)
}

func (d *Dispatcher) cancelSwapRequest(ctx context.Context, caller string, payload json.RawMessage) Response {
	var p requestIDPayload
	if errInfo := d.decode(payload, &p); errInfo != nil {
		return Response{Success: false, Error: errInfo}
	}
	swap, err := services.CancelShiftSwap(ctx, d.state, d.store, d.logger, p.RequestID, caller, d.now())
	if err != nil {
		return errorResponse(err)
	}
	return success(swap)
}

func (d *Dispatcher) acceptSwapRequest(ctx context.Context, caller string, payload json.RawMessage) Response {
	var p requestIDPayload
	if errInfo := d.decode(payload, &p); errInfo != nil {
		return Response{Success: false, Error: errInfo}
	}
	swap, err := services.AcceptShiftSwap(ctx, d.state, d.store, d.logger, p.RequestID, caller, d.now())
	if err != nil {
		return errorResponse(err)
	}
	return success(swap)
}

func (d *Dispatcher) declineSwapRequest(ctx context.Context, caller string, payload json.RawMessage) Response {
	var p decisionPayload
	if errInfo := d.decode(payload, &p); errInfo != nil {
		return Response{Success: false, Error: errInfo}
	}
	swap, err := services.DeclineShiftSwap(ctx, d.state, d.store, d.logger, p.RequestID, caller, p.Note, d.now())
	if err != nil {
		return errorResponse(err)
	}
	return success(swap)
}

func (d *Dispatcher) approveSwapRequest(ctx context.Context, caller string, payload json.RawMessage) Response {
	var p requestIDPayload
	if errInfo := d.decode(payload, &p); errInfo != nil {
		return Response{Success: false, Error: errInfo}
	}
	swap, err := services.ApproveShiftSwap(ctx, d.state, d.store, d.logger, p.RequestID, caller, d.now())
	if err != nil {
		return errorResponse(err)
	}
	return success(swap)
}

func (d *Dispatcher) rejectSwapRequest(ctx context.Context, caller string, payload json.RawMessage) Response {
	var p decisionPayload
	if errInfo := d.decode(payload, &p); errInfo != nil {
		return Response{Success: false, Error: errInfo}
	}
	swap, err := services.RejectShiftSwap(ctx, d.state, d.store, d.logger, p.RequestID, caller, p.Note, d.now())
	if err != nil {
		return errorResponse(err)
	}
	return success(swap)
}

func (d *Dispatcher) revokeSwapRequest(ctx context.Context, caller string, payload json.RawMessage) Response {
	var p requestIDPayload
	if errInfo := d.decode(payload, &p); errInfo != nil {
		return Response{Success: false, Error: errInfo}
	}
	swap, err := services.RevokeShiftSwap(ctx, d.state, d.store, d.logger, p.RequestID, caller, d.now())
	if err != nil {
		return errorResponse(err)
	}
	return success(swap)
}

func (d *Dispatcher) batchSaveShifts(ctx context.Context, caller string, payload json.RawMessage) Response {
	var p batchSaveShiftsPayload
	if errInfo := d.decode(payload, &p); errInfo != nil {
		return Response{Success: false, Error: errInfo}
	}

	period, err := schedule.PeriodIndex(p.PeriodDates[0], d.state.Gate.Anchor())
	if err != nil {
		return errorResponse(requests.Validationf("invalid period date %q", p.PeriodDates[0]))
	}
	for _, date := range p.PeriodDates {
		idx, err := schedule.PeriodIndex(date, d.state.Gate.Anchor())
		if err != nil || idx != period {
			return errorResponse(requests.Validationf("period dates span more than one pay period"))
		}
	}

	shifts := make([]model.Shift, 0, len(p.Shifts))
	for _, s := range p.Shifts {
		shifts = append(shifts, model.Shift{
			EmployeeID: s.EmployeeID,
			Date:       s.Date,
			StartTime:  s.StartTime,
			EndTime:    s.EndTime,
			Role:       model.Role(s.Role),
			Task:       s.Task,
		})
	}

	report, err := services.SaveScheduleDraft(ctx, d.state, d.store, d.logger, caller, period, shifts)
	if err != nil {
		return errorResponse(err)
	}
	return success(report)
}

func (d *Dispatcher) saveLivePeriods(ctx context.Context, caller string, payload json.RawMessage) Response {
	var p saveLivePeriodsPayload
	if errInfo := d.decode(payload, &p); errInfo != nil {
		return Response{Success: false, Error: errInfo}
	}

	want := make(map[int]bool, len(p.LivePeriods))
	for _, period := range p.LivePeriods {
		want[period] = true
	}

	// Publish newly listed periods; return dropped ones to edit mode. A
	// period that leaves the list keeps its last published snapshot.
	for _, period := range p.LivePeriods {
		if err := services.PublishPeriod(ctx, d.state, d.store, d.logger, caller, period); err != nil {
			return errorResponse(err)
		}
	}
	for _, period := range d.state.Gate.LivePeriods() {
		if !want[period] {
			if err := services.SetPeriodEditMode(d.state, d.logger, caller, period); err != nil {
				return errorResponse(err)
			}
		}
	}
	return success(d.state.Gate.LivePeriods())
}

type allData struct {
	Employees       []model.Employee          `json:"employees"`
	Shifts          []model.Shift             `json:"shifts"`
	TimeOffRequests []requests.TimeOffRequest `json:"timeOffRequests"`
	ShiftOffers     []requests.ShiftOffer     `json:"shiftOffers"`
	ShiftSwaps      []requests.ShiftSwap      `json:"shiftSwaps"`
	LivePeriods     []int                     `json:"livePeriods"`
	Announcement    *db.Announcement          `json:"announcement,omitempty"`
	StaffingTargets []db.StaffingTarget       `json:"staffingTargets"`
}

// getAllData returns the bootstrap snapshot. Admins see the full draft grid;
// everyone else sees only published shifts.
func (d *Dispatcher) getAllData(ctx context.Context, caller string, payload json.RawMessage) Response {
	var shifts []model.Shift
	if d.state.IsAdmin(caller) {
		shifts = d.state.Shifts.All()
	} else {
		shifts = d.state.Gate.PublishedShifts()
	}

	return success(allData{
		Employees:       d.state.Employees,
		Shifts:          shifts,
		TimeOffRequests: d.state.Registry.TimeOff,
		ShiftOffers:     d.state.Registry.Offers,
		ShiftSwaps:      d.state.Registry.Swaps,
		LivePeriods:     d.state.Gate.LivePeriods(),
		Announcement:    d.state.Announcement,
		StaffingTargets: d.state.StaffingTargets,
	})
}
