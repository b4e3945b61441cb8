// Package actions exposes the request lifecycles behind the named-action
// contract the clients speak: one action string, a JSON payload, a caller
// identity, and a uniform success/error envelope back.
package actions

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/sarvistore/shiftdesk/pkg/core/requests"
	"github.com/sarvistore/shiftdesk/pkg/core/services"
)

// Error codes surfaced in the response envelope.
const (
	CodeBadPayload    = "bad_payload"
	CodeUnknownAction = "unknown_action"
	CodeValidation    = "validation_error"
	CodeNotInState    = "not_in_state"
	CodeNotFound      = "not_found"
	CodeStorage       = "storage_error"
)

// Response is the envelope every action returns.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorInfo  `json:"error,omitempty"`
}

// ErrorInfo carries a stable machine code and a human message.
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Store is the full database surface the dispatcher hands to the lifecycle
// operations.
type Store interface {
	services.TimeOffStore
	services.OfferStore
	services.SwapStore
	services.PublishStore
	services.AdminStore
}

// Dispatcher routes named actions to lifecycle operations against one shared
// state. Time is injected so expiry and date cutoffs are testable.
type Dispatcher struct {
	state    *services.State
	store    Store
	logger   *zap.Logger
	validate *validator.Validate
	now      func() time.Time
	handlers map[string]handlerFunc
}

// NewDispatcher creates a dispatcher over the given state and database.
func NewDispatcher(state *services.State, store Store, logger *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		state:    state,
		store:    store,
		logger:   logger,
		validate: validator.New(),
		now:      time.Now,
	}
	d.handlers = d.routes()
	return d
}

// WithClock overrides the dispatcher's time source.
func (d *Dispatcher) WithClock(now func() time.Time) *Dispatcher {
	d.now = now
	return d
}

// State exposes the working set for read-side callers.
func (d *Dispatcher) State() *services.State {
	return d.state
}

// Dispatch runs one named action for a caller and returns the envelope.
// Validation failures never reach the database.
func (d *Dispatcher) Dispatch(ctx context.Context, action, callerEmail string, payload json.RawMessage) Response {
	handler, ok := d.handlers[action]
	if !ok {
		d.logger.Warn("unknown action", zap.String("action", action), zap.String("caller", callerEmail))
		return failure(CodeUnknownAction, "unknown action: "+action)
	}

	resp := handler(ctx, callerEmail, payload)
	if resp.Error != nil {
		d.logger.Debug("action failed",
			zap.String("action", action),
			zap.String("caller", callerEmail),
			zap.String("code", resp.Error.Code),
			zap.String("message", resp.Error.Message),
		)
	}
	return resp
}

type handlerFunc func(ctx context.Context, callerEmail string, payload json.RawMessage) Response

func (d *Dispatcher) routes() map[string]handlerFunc {
	return map[string]handlerFunc{
		"submitTimeOffRequest":  d.submitTimeOffRequest,
		"cancelTimeOffRequest":  d.cancelTimeOffRequest,
		"approveTimeOffRequest": d.approveTimeOffRequest,
		"denyTimeOffRequest":    d.denyTimeOffRequest,
		"revokeTimeOffRequest":  d.revokeTimeOffRequest,

		"submitShiftOffer":  d.submitShiftOffer,
		"cancelShiftOffer":  d.cancelShiftOffer,
		"acceptShiftOffer":  d.acceptShiftOffer,
		"declineShiftOffer": d.declineShiftOffer,
		"approveShiftOffer": d.approveShiftOffer,
		"rejectShiftOffer":  d.rejectShiftOffer,
		"revokeShiftOffer":  d.revokeShiftOffer,

		"submitSwapRequest":  d.submitSwapRequest,
		"cancelSwapRequest":  d.cancelSwapRequest,
		"acceptSwapRequest":  d.acceptSwapRequest,
		"declineSwapRequest": d.declineSwapRequest,
		"approveSwapRequest": d.approveSwapRequest,
		"rejectSwapRequest":  d.rejectSwapRequest,
		"revokeSwapRequest":  d.revokeSwapRequest,

		"batchSaveShifts": d.batchSaveShifts,
		"saveLivePeriods": d.saveLivePeriods,
		"getAllData":      d.getAllData,
	}
}

// decode unmarshals and validates a payload into dst.
func (d *Dispatcher) decode(payload json.RawMessage, dst interface{}) *ErrorInfo {
	if len(payload) == 0 {
		payload = json.RawMessage("{}")
	}
	if err := json.Unmarshal(payload, dst); err != nil {
		return &ErrorInfo{Code: CodeBadPayload, Message: "malformed payload: " + err.Error()}
	}
	if err := d.validate.Struct(dst); err != nil {
		return &ErrorInfo{Code: CodeBadPayload, Message: "invalid payload: " + err.Error()}
	}
	return nil
}

func success(data interface{}) Response {
	return Response{Success: true, Data: data}
}

func failure(code, message string) Response {
	return Response{Success: false, Error: &ErrorInfo{Code: code, Message: message}}
}

// errorResponse maps a lifecycle error onto the envelope's code taxonomy.
func errorResponse(err error) Response {
	var notInState *requests.NotInStateError
	if errors.As(err, &notInState) {
		return failure(CodeNotInState, notInState.Error())
	}
	var outstanding *requests.OutstandingRequestError
	if errors.As(err, &outstanding) {
		return failure(CodeValidation, outstanding.Error())
	}
	var validation *requests.ValidationError
	if errors.As(err, &validation) {
		return failure(CodeValidation, validation.Error())
	}
	if errors.Is(err, requests.ErrNotFound) {
		return failure(CodeNotFound, err.Error())
	}
	return failure(CodeStorage, err.Error())
}
