package constant

// Pulse scales
const (
	RootPulseScale      = 1.3
	LeafPulseScale      = 2.6
	LeafSoftPulseScale  = 1.5
	PulseRiseFraction   = 0.1
	PulseSettleFraction = 0.9
)

// Glyphs
const (
	NodeGlyph = '●'
	LinkGlyph = '·'
)

// StatusBarHeight reserves terminal rows below the canvas
const StatusBarHeight = 1
