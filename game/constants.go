package game

import (
	"image/color"
	"math"
)

// Gameplay constants
const (
	gravity          = 900.0               // pixels per second squared
	ballRadius       = 12.0
	wallInset        = 20.0                // playfield border thickness
	wallRestitution  = 0.92                // speed retained after a wall bounce
	flipperLength    = 110.0
	flipperThickness = 18.0
	flipperRestAngle = -22 * math.Pi / 180 // radians
	flipperFlipAngle = 25 * math.Pi / 180  // radians, fully activated
	flipperSpeed     = 400 * math.Pi / 180 // radians per second
	flipperSnapTol   = 1e-3                // radians, snap-to-target tolerance
	flipperImpulse   = 120.0               // contact impulse along the normal
	flipperPushOut   = 4.0                 // pixels, anti-sticking separation
	leftFlipperKick  = 60.0                // extra upward kick, left side only
	bumperRadius     = 28.0
	bumperForce      = 650.0               // contact impulse along the normal
	bumperDamping    = 0.4                 // fraction of bumper force applied
	bumperClearance  = 2.0                 // pixels past the contact radius
	launchSpeed      = 720.0               // pixels per second, upward
	launchJitter     = 120.0               // max horizontal speed at launch
	drainMargin      = 40.0                // pixels past the bottom edge
	maxDeltaTime     = 0.1                 // seconds, clamp for stalls
	flashDuration    = 0.3                 // seconds, bumper hit flash
)

// Color constants
var (
	colorBackground  = color.NRGBA{R: 25, G: 25, B: 35, A: 255}
	colorWhite       = color.NRGBA{R: 235, G: 235, B: 235, A: 255}
	colorFlipper     = color.NRGBA{R: 80, G: 200, B: 120, A: 255}
	colorBumperBlue  = color.NRGBA{R: 115, G: 190, B: 255, A: 255}
	colorBumperRed   = color.NRGBA{R: 230, G: 80, B: 80, A: 255}
	colorBall        = color.NRGBA{R: 255, G: 210, B: 90, A: 255}
	colorShadow      = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
	colorWallFrame   = color.NRGBA{R: 50, G: 60, B: 70, A: 255}
	colorChute       = color.NRGBA{R: 90, G: 100, B: 120, A: 255}
	colorLauncherRim = color.NRGBA{R: 70, G: 80, B: 95, A: 255}
)
