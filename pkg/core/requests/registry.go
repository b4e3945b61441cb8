package requests

// Registry holds all three request collections in memory. It is the one
// place the single-outstanding-request invariant can be answered from.
type Registry struct {
	TimeOff []TimeOffRequest
	Offers  []ShiftOffer
	Swaps   []ShiftSwap
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Outstanding returns the kind of request the employee already has in
// flight, if any. Only requests the employee initiated count; being the
// recipient of an offer or the partner of a swap never blocks them.
func (r *Registry) Outstanding(email string) (Kind, bool) {
	for i := range r.TimeOff {
		if r.TimeOff[i].EmployeeEmail == email && r.TimeOff[i].Status.Outstanding() {
			return KindTimeOff, true
		}
	}
	for i := range r.Offers {
		if r.Offers[i].OffererEmail == email && r.Offers[i].Status.Active() {
			return KindOffer, true
		}
	}
	for i := range r.Swaps {
		if r.Swaps[i].InitiatorEmail == email && r.Swaps[i].Status.Active() {
			return KindSwap, true
		}
	}
	return "", false
}

// TimeOffByID returns a pointer into the registry, or ErrNotFound.
func (r *Registry) TimeOffByID(id string) (*TimeOffRequest, error) {
	for i := range r.TimeOff {
		if r.TimeOff[i].ID == id {
			return &r.TimeOff[i], nil
		}
	}
	return nil, ErrNotFound
}

// OfferByID returns a pointer into the registry, or ErrNotFound.
func (r *Registry) OfferByID(id string) (*ShiftOffer, error) {
	for i := range r.Offers {
		if r.Offers[i].ID == id {
			return &r.Offers[i], nil
		}
	}
	return nil, ErrNotFound
}

// SwapByID returns a pointer into the registry, or ErrNotFound.
func (r *Registry) SwapByID(id string) (*ShiftSwap, error) {
	for i := range r.Swaps {
		if r.Swaps[i].ID == id {
			return &r.Swaps[i], nil
		}
	}
	return nil, ErrNotFound
}

// AddTimeOff appends a request and returns a pointer to the stored copy.
func (r *Registry) AddTimeOff(req TimeOffRequest) *TimeOffRequest {
	r.TimeOff = append(r.TimeOff, req)
	return &r.TimeOff[len(r.TimeOff)-1]
}

// AddOffer appends an offer and returns a pointer to the stored copy.
func (r *Registry) AddOffer(offer ShiftOffer) *ShiftOffer {
	r.Offers = append(r.Offers, offer)
	return &r.Offers[len(r.Offers)-1]
}

// AddSwap appends a swap and returns a pointer to the stored copy.
func (r *Registry) AddSwap(swap ShiftSwap) *ShiftSwap {
	r.Swaps = append(r.Swaps, swap)
	return &r.Swaps[len(r.Swaps)-1]
}

// RemoveTimeOff deletes a request by ID. Used to roll back a submission
// whose persistence failed.
func (r *Registry) RemoveTimeOff(id string) {
	for i := range r.TimeOff {
		if r.TimeOff[i].ID == id {
			r.TimeOff = append(r.TimeOff[:i], r.TimeOff[i+1:]...)
			return
		}
	}
}

// RemoveOffer deletes an offer by ID.
func (r *Registry) RemoveOffer(id string) {
	for i := range r.Offers {
		if r.Offers[i].ID == id {
			r.Offers = append(r.Offers[:i], r.Offers[i+1:]...)
			return
		}
	}
}

// RemoveSwap deletes a swap by ID.
func (r *Registry) RemoveSwap(id string) {
	for i := range r.Swaps {
		if r.Swaps[i].ID == id {
			r.Swaps = append(r.Swaps[:i], r.Swaps[i+1:]...)
			return
		}
	}
}
