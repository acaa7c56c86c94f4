package core

// Voice identifies the sound resource bound to a category
type Voice int

const (
	VoiceLoA        Voice = iota // Category 0 melody
	VoiceLoB                     // Category 1 melody
	VoiceLoC                     // Category 2 melody
	VoiceLoD                     // Category 3 melody
	VoicePercussion              // Root loop
	VoiceCount
)

var voiceNames = [VoiceCount]string{"lo-a", "lo-b", "lo-c", "lo-d", "percussion"}

func (v Voice) String() string {
	if v < 0 || v >= VoiceCount {
		return "unknown"
	}
	return voiceNames[v]
}

// Looped reports whether the voice repeats until stopped
func (v Voice) Looped() bool {
	return v == VoicePercussion
}
