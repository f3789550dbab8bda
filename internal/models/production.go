package models

// ProductionEntry is one recorded production event. Quantity and
// Timestamp are kept as stored text: the log predates strict typing and
// the report engine is required to tolerate malformed historic values.
type ProductionEntry struct {
	ID        int    `json:"id"`
	Owner     string `json:"owner"`     // display name at the time of entry
	Category  string `json:"category"`  // mold label
	Quantity  string `json:"quantity"`  // non-negative integer literal
	Timestamp string `json:"timestamp"` // local civil time, second precision
	Model     string `json:"model"`     // optional free-text model
}

// EntryUpdate carries the fields of a partial entry update.
// Nil fields are left untouched.
type EntryUpdate struct {
	Category *string
	Quantity *string
	Model    *string
}
