package model

// StartSessionRequest opens a bundle-building session. Type selects the
// flow: "dynamic" requires Preferences, "thematic" requires ThemeID.
type StartSessionRequest struct {
	Type        SessionKind  `json:"type"`
	Preferences *Preferences `json:"preferences,omitempty"`
	ThemeID     string       `json:"themeId,omitempty"`
}

// ConfigureItemRequest sets a product's purchase option and quantity.
// An empty OptionID selects the base-price degenerate case.
type ConfigureItemRequest struct {
	OptionID string `json:"optionId"`
	Quantity int    `json:"quantity"`
}

// AssignDateRequest sets or defers the visit date for a session item.
// Date and ChooseLater are mutually exclusive; both empty clears the state.
type AssignDateRequest struct {
	Date        *string `json:"date"`
	ChooseLater bool    `json:"chooseLater"`
}

// UpdateBookingDateRequest sets the visit date on a purchased item.
type UpdateBookingDateRequest struct {
	Date string `json:"date"`
}
