package models

// SelectSlotsRequest is the payload for running the selection core over the
// wire: a raw slot list plus the parameters the core needs.
type SelectSlotsRequest struct {
	Slots    []TimeSlot `json:"slots" binding:"required"`
	Timezone string     `json:"timezone"`
	MaxSlots int        `json:"maxSlots"`
}

// SelectSlotsResponse carries the reduced slot list, chronologically ordered.
type SelectSlotsResponse struct {
	Slots []TimeSlot `json:"slots"`
}

// SuggestionResult is the response for a full suggestion run: provider
// availability for the requested dates, reduced per day by the selection core.
type SuggestionResult struct {
	RequestID string     `json:"requestId"`
	UserID    string     `json:"userId"`
	Timezone  string     `json:"timezone"`
	Dates     []string   `json:"dates"` // "2006-01-02", in request order
	Slots     []TimeSlot `json:"slots"`
}
