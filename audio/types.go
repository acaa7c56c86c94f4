package audio

import "errors"

// Sentinel errors
var (
	ErrNotInitialized = errors.New("audio: speaker not initialized")
	ErrUnknownVoice   = errors.New("audio: unknown voice")
)
