package model

// Todo is the persisted task entity. IDs are assigned by the store on
// creation and never reused after deletion.
type Todo struct {
	ID          int64  `json:"id"          db:"id"`
	Title       string `json:"title"       db:"title"`
	Description string `json:"description" db:"description"`
	Notes       string `json:"notes"       db:"notes"`
	ExpiryDate  *Date  `json:"expiry_date" db:"expiry_date"`
}

// CreateInput is the payload for creating a todo. Description and notes
// default to the empty string; a JSON null for either is equivalent to
// omitting it.
type CreateInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Notes       string `json:"notes"`
	ExpiryDate  *Date  `json:"expiry_date"`
}

// UpdateInput is the payload for a partial update. Only fields present
// in the payload are applied; null clears a field where clearing is
// legal (title may never be empty or null).
type UpdateInput struct {
	Title       Field[string] `json:"title"`
	Description Field[string] `json:"description"`
	Notes       Field[string] `json:"notes"`
	ExpiryDate  Field[Date]   `json:"expiry_date"`
}

// Empty reports whether the payload carries no recognized fields.
func (in *UpdateInput) Empty() bool {
	return !in.Title.IsSet() && !in.Description.IsSet() &&
		!in.Notes.IsSet() && !in.ExpiryDate.IsSet()
}
