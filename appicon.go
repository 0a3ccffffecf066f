// Package appicon renders the Blockbuster-style ticket icon for the
// NintendoEmulator app and assembles the macOS icon set from it.
package appicon

import "image/color"

// Brand colors of the ticket motif.
var (
	// Blue is the ticket body color.
	Blue = color.NRGBA{R: 0, G: 51, B: 153, A: 255}

	// Yellow is the border and lettering color.
	Yellow = color.NRGBA{R: 255, G: 204, B: 0, A: 255}

	// shadowColor is the half-transparent black behind the lettering.
	shadowColor = color.NRGBA{A: 128}
)

// Label text drawn on the larger icon sizes.
const (
	primaryLabel   = "N64"
	secondaryLabel = "EMULATOR"
)

// Sizes lists the icon edge lengths of the macOS icon set, in render
// order.
var Sizes = []int{16, 32, 64, 128, 256, 512, 1024}

// maxDoubleDensity is the largest size that also gets an @2x variant.
const maxDoubleDensity = 512
