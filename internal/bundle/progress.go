package bundle

// Progress is the UI-facing tier-progress signal derived from the selected
// item count alone. Percentage drives a progress bar; Message names the next
// unmet tier.
type Progress struct {
	Percentage int    `json:"percentage"`
	Message    string `json:"message"`
}

// ProgressFor maps a selected-item count to its progress signal.
// The percentages sit deliberately past the nominal 33%/66% tier markers so a
// filled bar visually clears the marker instead of landing on it.
func ProgressFor(count int) Progress {
	switch {
	case count <= 0:
		return Progress{Percentage: 2, Message: "Add 2 more to unlock savings"}
	case count == 1:
		return Progress{Percentage: 16, Message: "Add 1 more to unlock savings"}
	case count == 2:
		return Progress{Percentage: 35, Message: "Add 1 more for 8% off"}
	case count == 3:
		return Progress{Percentage: 68, Message: "Add 1 more for 12% off"}
	default:
		return Progress{Percentage: 100, Message: "Maximum savings unlocked!"}
	}
}
