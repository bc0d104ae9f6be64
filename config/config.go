package config

import (
	"image/color"
	"time"

	"github.com/yohamta/donburi/ecs"
)

// Default is the render layer all demo renderers draw on.
const Default = ecs.LayerID(0)

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// PlayerConfig contains player movement configuration
type PlayerConfig struct {
	Accel     float64
	MaxSpeed  float64
	JumpSpeed float64
	Gravity   float64
	Friction  float64

	FrameWidth  int
	FrameHeight int
}

// PatrolConfig contains NPC walker configuration
type PatrolConfig struct {
	Speed       float64
	FrameWidth  int
	FrameHeight int
}

// PhysicsConfig contains global physics configuration
type PhysicsConfig struct {
	MaxFallSpeed float64
	ContactProbe float64 // probe distance for wall-contact checks, in pixels
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu    bool // Skip menu and go directly to game
	ShowOverlay bool // Draw derived state bitmask and active clip per character
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Patrol PatrolConfig
var Physics PhysicsConfig
var Debug DebugConfig

// Tick is the fixed simulation step handed to the animation registry.
// Ebiten dispatches Update at 60 TPS.
const Tick = time.Second / 60

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		Title:  "animrule demo",
	}

	Player = PlayerConfig{
		Accel:       0.5,
		MaxSpeed:    3.0,
		JumpSpeed:   -8.0,
		Gravity:     0.4,
		Friction:    0.4,
		FrameWidth:  16,
		FrameHeight: 24,
	}

	Patrol = PatrolConfig{
		Speed:       1.0,
		FrameWidth:  16,
		FrameHeight: 16,
	}

	Physics = PhysicsConfig{
		MaxFallSpeed: 8.0,
		ContactProbe: 1.0,
	}
}
