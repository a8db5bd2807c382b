// Package config centralizes all tunable game parameters.
package config

import "time"

// View resolution - the visible viewport in logical units.
// Actual rendering scales to fit terminal size.
const (
	ViewWidth  = 120 // Logical viewport width
	ViewHeight = 80  // Logical viewport height (in sub-pixels, so 40 terminal rows)
)

// Max render resolution in terminal cells; larger terminals get a centered frame.
const (
	MaxTermWidth  = 160
	MaxTermHeight = 50
)

// Simulation timing
const (
	TickRate = 60
	TickTime = time.Second / TickRate
)

// Client rendering
const (
	ClientTargetFPS       = 60
	ClientTargetFrameTime = time.Second / ClientTargetFPS
)

// Road geometry. Lanes are normalized x positions, left to right.
var Lanes = [...]float64{-0.6, -0.2, 0.2, 0.6}

const (
	StartLane = 1
	CarStartX = 0.0 // Car starts centered and eases into StartLane

	SpawnZ   = -1200.0 // Where obstacles and power-ups appear
	CullZ    = 300.0   // Past the camera, removed
	DepthMax = 1200.0  // Depth used for perspective scale

	RoadSegmentCount   = 10
	RoadSegmentSpacing = 200.0
	RoadSegmentStep    = 3.0
	RoadSegmentWrap    = 2000.0

	LaneMarkerCount   = 50
	LaneMarkerSpacing = 100.0
	LaneMarkerStep    = 6.0
	LaneMarkerWrap    = 5000.0

	TreeCount       = 30
	TreeSpacing     = 80.0
	TreeOffset      = 200.0
	BuildingCount   = 20
	BuildingSpacing = 150.0
	BuildingOffset  = 300.0
	CloudCount      = 8

	ObjectStep = 5.0 // Obstacle/power-up advance per tick at 60 km/h
)

// Car handling
const (
	InitialMaxSpeed     = 300.0
	MaxSpeedCap         = 350.0
	MaxSpeedStep        = 8.0
	DifficultyDistance  = 1000.0 // Metres between max-speed increases
	StartSpeed          = 60.0
	MinSpeed            = 30.0
	CruiseSpeed         = 80.0
	Acceleration        = 0.8
	Deceleration        = 0.4
	BoostSpeedModifier  = 1.5
	LaneTransitionSpeed = 0.08
	LaneSnapDistance    = 0.01
	SpeedReference      = 60.0 // Speed at which the road moves at its base rate
)

// Collision windows (z) and lateral tolerances (x).
const (
	ObstacleWindow    = 80.0
	ObstacleTolerance = 0.15
	PowerupWindow     = 50.0
	PowerupTolerance  = 0.2
	ComboDecayHorizon = 100.0
	ComboDecay        = 0.01
	OilSpeedFactor    = 0.7
	RampBonus         = 50
	SparkCount        = 8
)

// Spawning probabilities per tick.
const (
	ObstacleSpawnBase    = 0.015
	ObstacleSpawnPerKmh  = 1.0 / 15000
	PowerupSpawnBase     = 0.008
	PowerupSpawnPerMetre = 1.0 / 100000
	ExhaustRate          = 0.3
	SpeedParticleMin     = 100.0
)

// Power-ups
const (
	PowerupDuration     = 5 * time.Second
	CoinValue           = 5
	CoinScore           = 25
	MultiplierValue     = 2
	AchievementPopup    = 3 * time.Second
	ScorePopupLifetime  = time.Second
	ScreenShakeDuration = 500 * time.Millisecond
	ExplosionDuration   = 600 * time.Millisecond
	RampJumpDuration    = 300 * time.Millisecond
)

// Performance monitor
const (
	LowFPSThreshold = 30
	LowFPSStrikes   = 3
)

// Inactivity
const (
	InactivityWarnUser       = 90  // Seconds
	InactivityDisconnectUser = 120 // Seconds
)

// Shutdown
const (
	ShutdownDisplaySeconds = 10.0 // Seconds to show shutdown message before auto-disconnect
)

// Leaderboard
const (
	BestRunsKept      = 5
	MaxUsernameLength = 16
)
