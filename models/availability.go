package models

// ProviderSlot is one opening as the scheduling provider's API returns it.
// Times are RFC 3339 strings; malformed entries are dropped during
// normalization rather than surfaced as errors.
type ProviderSlot struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Status    string `json:"status,omitempty"` // only "available" entries are kept
}

// ProviderAvailability is the provider API's response envelope for a single
// user and date.
type ProviderAvailability struct {
	User  string         `json:"user"`
	Date  string         `json:"date"`
	Slots []ProviderSlot `json:"slots"`
}
