package core

// Category is a node's palette slot, cycled round-robin by root creation
type Category int

const (
	Category0 Category = iota
	Category1
	Category2
	Category3
	CategoryCount
)

// Style is the fixed color and voice pair a node renders and sounds with
type Style struct {
	Fill   RGB
	Stroke RGB
	Voice  Voice
}

// Leaf palette, translucent colors composed over the canvas background
var categoryColors = [CategoryCount]RGB{
	RGBA(0.89, 0.574, 0.096, 0.78), // amber
	RGBA(0.14, 0.569, 0.669, 0.6),  // teal
	RGBA(0.8, 0.6, 0.7, 0.6),       // mauve
	RGBA(0.627, 0.012, 0, 0.6),     // crimson
}

// RootFill is the near-transparent root body color
var RootFill = RGBA(0, 0, 0, 0.05)

// Valid reports whether c indexes the palette
func (c Category) Valid() bool {
	return c >= 0 && c < CategoryCount
}

// Next advances the round-robin counter, wrapping at CategoryCount
func (c Category) Next() Category {
	return (c + 1) % CategoryCount
}

// Color returns the category's leaf color
func (c Category) Color() RGB {
	if !c.Valid() {
		return RGBBlack
	}
	return categoryColors[c]
}

// StyleFor resolves the palette entry for a node.
// Roots share one body color and the percussion voice, their rim keeps the category color
func StyleFor(c Category, root bool) Style {
	if root {
		return Style{Fill: RootFill, Stroke: c.Color(), Voice: VoicePercussion}
	}
	return Style{Fill: c.Color(), Stroke: RGBWhite, Voice: Voice(c)}
}
