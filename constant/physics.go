package constant

// Node motion
const (
	// Friction divides the implicit per-tick displacement
	Friction = 1.01

	// BounceStrength is the velocity retained on wall impact
	BounceStrength = 0.5

	// SpawnJitter seeds the previous position so new nodes glide in
	SpawnJitter = 1.0
)

// Node geometry
const (
	RootRadius    = 20.0
	MinLeafRadius = 15.0
	MaxLeafRadius = 70.0
)

// Links
const (
	// MaxLinkLength caps the rest length of a new link
	MaxLinkLength = 90.0

	// LinkCorrectionDivisor further softens the per-endpoint half-correction
	LinkCorrectionDivisor = 4.0
)

// Scene
const (
	// ProximityThreshold is the distance under which a touch attaches to an existing node
	ProximityThreshold = 120.0

	// BlackHoleRadius of the deletion region
	BlackHoleRadius = 200.0

	// BlackHoleOffsetY places the black hole center below the canvas bottom edge
	BlackHoleOffsetY = -150.0

	// CategoryCount is the number of leaf categories cycled by root creation
	CategoryCount = 4
)
