package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit        // q, Esc, Ctrl+C
	IntentTogglePause // Space
	IntentToggleMute  // m
	IntentResize      // Terminal resize event
)

var intentNames = [...]string{
	IntentNone:        "none",
	IntentQuit:        "quit",
	IntentTogglePause: "pause",
	IntentToggleMute:  "mute",
	IntentResize:      "resize",
}

func (t IntentType) String() string {
	if int(t) < len(intentNames) {
		return intentNames[t]
	}
	return "unknown"
}
