package loop

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomz197/roadrush/internal/audio"
	"github.com/tomz197/roadrush/internal/config"
	"github.com/tomz197/roadrush/internal/draw"
	"github.com/tomz197/roadrush/internal/input"
	lc "github.com/tomz197/roadrush/internal/loop/config"
	"github.com/tomz197/roadrush/internal/object"
)

func newPlaying(t *testing.T) *State {
	t.Helper()
	s := NewState(DefaultSettings(), 42)
	s.StartGame()
	s.DrainEvents()
	s.Car.X = lc.Lanes[lc.StartLane]
	return s
}

func noInput() input.Input { return input.Input{Number: -1} }

func sounds(events []Event) []audio.Tone {
	var out []audio.Tone
	for _, e := range events {
		if e.Kind == EventSound {
			out = append(out, e.Tone)
		}
	}
	return out
}

func kinds(events []Event) []EventKind {
	var out []EventKind
	for _, e := range events {
		out = append(out, e.Kind)
	}
	return out
}

func TestNewState(t *testing.T) {
	s := NewState(DefaultSettings(), 1)
	assert.Equal(t, GameStateStart, s.GameState)
	assert.Equal(t, lc.InitialMaxSpeed, s.MaxSpeed)
	assert.Equal(t, 1, s.Car.CurrentLane)
	assert.Equal(t, -0.2, s.Car.X)
	assert.Len(t, s.Achievements, 6)
	assert.Zero(t, s.UnlockedCount())
	assert.NotNil(t, s.Road)
}

func TestStartGameResetsRunButKeepsAchievements(t *testing.T) {
	s := newPlaying(t)
	s.Score, s.Coins, s.Combo, s.MaxCombo, s.Distance = 500, 10, 4, 6, 300
	s.Achievements[0].Unlocked = true
	s.Obstacles = append(s.Obstacles, object.NewObstacle(0, object.ObstacleCar))
	s.activatePowerup(object.PowerupMultiplier)
	s.Multiplier = 2

	s.StartGame()
	assert.Equal(t, GameStatePlaying, s.GameState)
	assert.Zero(t, s.Score)
	assert.Zero(t, s.Coins)
	assert.Zero(t, s.Combo)
	assert.Zero(t, s.MaxCombo)
	assert.Zero(t, s.Distance)
	assert.Equal(t, lc.StartSpeed, s.Speed)
	assert.Equal(t, 1, s.Multiplier)
	assert.Empty(t, s.Obstacles)
	assert.Empty(t, s.Active)
	assert.True(t, s.Achievements[0].Unlocked)
	assert.Equal(t, []EventKind{EventMusicStart}, kinds(s.DrainEvents()))
}

func TestStepIsNoopOutsidePlaying(t *testing.T) {
	s := NewState(DefaultSettings(), 1)
	require.NoError(t, s.Step(input.Input{Accelerate: true}))
	assert.Equal(t, lc.StartSpeed, s.Speed)
	assert.Zero(t, s.Distance)
	assert.Zero(t, s.Ticks)
}

func TestSpeedControl(t *testing.T) {
	s := newPlaying(t)
	require.NoError(t, s.Step(input.Input{Accelerate: true}))
	assert.InDelta(t, 60.8, s.Speed, 1e-9)
	assert.InDelta(t, 1, s.Distance, 1e-6)
	assert.True(t, s.Car.Boosting)

	s.Speed = s.MaxSpeed
	require.NoError(t, s.Step(input.Input{Accelerate: true}))
	assert.Equal(t, s.MaxSpeed, s.Speed)

	s.activatePowerup(object.PowerupSpeed)
	require.NoError(t, s.Step(input.Input{Accelerate: true}))
	assert.InDelta(t, s.MaxSpeed+0.8, s.Speed, 1e-9)

	s.Speed = 30.5
	require.NoError(t, s.Step(input.Input{Brake: true}))
	assert.Equal(t, lc.MinSpeed, s.Speed)
	assert.False(t, s.Car.Boosting)

	s.Speed = 80.1
	require.NoError(t, s.Step(noInput()))
	assert.Equal(t, lc.CruiseSpeed, s.Speed)

	s.Speed = 70
	require.NoError(t, s.Step(noInput()))
	assert.Equal(t, 70.0, s.Speed)
}

func TestLaneTaps(t *testing.T) {
	s := newPlaying(t)
	require.NoError(t, s.Step(input.Input{LeftTaps: 3}))
	assert.Equal(t, 0, s.Car.TargetLane)
	// Only the one tap that moved the car beeps.
	assert.Equal(t, []audio.Tone{toneLane}, sounds(s.DrainEvents()))

	require.NoError(t, s.Step(input.Input{RightTaps: 2}))
	assert.Equal(t, 2, s.Car.TargetLane)
	assert.Len(t, sounds(s.DrainEvents()), 2)
}

func TestOilSlowsAndResetsComboOnce(t *testing.T) {
	s := newPlaying(t)
	s.Combo = 5
	oil := object.NewObstacle(1, object.ObstacleOil)
	oil.Z = -10
	s.Obstacles = append(s.Obstacles, oil)

	require.NoError(t, s.Step(noInput()))
	assert.Equal(t, GameStatePlaying, s.GameState)
	assert.InDelta(t, 42, s.Speed, 1e-9)
	assert.Zero(t, s.Combo)
	assert.True(t, oil.Hit)
	assert.Equal(t, lc.ScreenShakeDuration-lc.TickTime, s.Shake)
	assert.Contains(t, sounds(s.DrainEvents()), toneOil)

	require.NoError(t, s.Step(noInput()))
	assert.InDelta(t, 42, s.Speed, 1e-9)
	assert.NotContains(t, sounds(s.DrainEvents()), toneOil)
}

func TestRampBonusAndJump(t *testing.T) {
	s := newPlaying(t)
	ramp := object.NewObstacle(1, object.ObstacleRamp)
	ramp.Z = -10
	s.Obstacles = append(s.Obstacles, ramp)

	require.NoError(t, s.Step(noInput()))
	assert.Equal(t, lc.RampBonus, s.Score)
	assert.Equal(t, lc.RampJumpDuration, s.Car.Jump)
	assert.Contains(t, sounds(s.DrainEvents()), toneRamp)
}

func TestFatalCollisionEndsRun(t *testing.T) {
	s := newPlaying(t)
	s.Score = 120
	car := object.NewObstacle(1, object.ObstacleCar)
	car.Z = -10
	s.Obstacles = append(s.Obstacles, car)

	require.NoError(t, s.Step(noInput()))
	assert.Equal(t, GameStateGameOver, s.GameState)
	assert.Equal(t, lc.ScreenShakeDuration, s.Shake)
	assert.Equal(t, lc.ExplosionDuration, s.Explosion)
	assert.NotEmpty(t, s.Effects)

	events := s.DrainEvents()
	assert.Equal(t, []EventKind{EventMusicStop, EventSound, EventGameOver}, kinds(events))
	assert.Equal(t, toneCrash, events[1].Tone)
	assert.Equal(t, 120, events[2].Summary.Score)
	assert.Equal(t, 120, s.FinalSummary().Score)

	// Further steps do nothing, Animate keeps the explosion going.
	require.NoError(t, s.Step(input.Input{Accelerate: true}))
	assert.Equal(t, lc.StartSpeed, s.Speed)
	require.NoError(t, s.Animate())
	assert.Equal(t, lc.ExplosionDuration-lc.TickTime, s.Explosion)
}

func TestShieldDeflectsOnce(t *testing.T) {
	s := newPlaying(t)
	s.activatePowerup(object.PowerupShield)
	s.syncCar()
	assert.True(t, s.Car.Shielded)

	truck := object.NewObstacle(1, object.ObstacleTruck)
	truck.Z = -20
	s.Obstacles = append(s.Obstacles, truck)

	require.NoError(t, s.Step(noInput()))
	assert.Equal(t, GameStatePlaying, s.GameState)
	sparks := 0
	for _, e := range s.Effects {
		if p, ok := e.(*object.Particle); ok && p.Color == draw.Spark {
			sparks++
		}
	}
	assert.Equal(t, lc.SparkCount, sparks)

	for i := 0; i < 4; i++ {
		require.NoError(t, s.Step(noInput()))
	}
	deflects := 0
	for _, tn := range sounds(s.DrainEvents()) {
		if tn == toneDeflect {
			deflects++
		}
	}
	assert.Equal(t, 1, deflects)
	assert.True(t, truck.Passed)
}

func TestPassingScoresWithMultiplier(t *testing.T) {
	s := newPlaying(t)
	s.activatePowerup(object.PowerupMultiplier)
	s.Multiplier = lc.MultiplierValue
	truck := object.NewObstacle(3, object.ObstacleTruck)
	truck.Z = -2
	s.Obstacles = append(s.Obstacles, truck)

	require.NoError(t, s.Step(noInput()))
	assert.True(t, truck.Passed)
	assert.Equal(t, 70, s.Score)
	assert.Equal(t, 1.0, s.Combo)
	assert.Equal(t, 1.0, s.MaxCombo)
	assert.Contains(t, sounds(s.DrainEvents()), passTone(1))

	// Already passed, never scored again.
	require.NoError(t, s.Step(noInput()))
	assert.Equal(t, 70, s.Score)
}

func TestObstacleRemovedPastCamera(t *testing.T) {
	s := newPlaying(t)
	o := object.NewObstacle(3, object.ObstacleCone)
	o.Z = lc.CullZ - 1
	o.Passed = true
	s.Obstacles = []*object.Obstacle{o}

	require.NoError(t, s.updateObstacles(s.UpdateContext()))
	assert.Empty(t, s.Obstacles)
}

func TestCollectCoin(t *testing.T) {
	s := newPlaying(t)
	coin := object.NewPowerup(1, object.PowerupCoin)
	coin.Z = -3
	s.Powerups = append(s.Powerups, coin)

	require.NoError(t, s.Step(noInput()))
	assert.Equal(t, lc.CoinValue, s.Coins)
	assert.Equal(t, lc.CoinScore, s.Score)
	assert.True(t, coin.Collected)
	assert.NotContains(t, s.Powerups, coin)
	assert.Contains(t, sounds(s.DrainEvents()), toneCoin)
}

func TestPowerupMissedInOtherLane(t *testing.T) {
	s := newPlaying(t)
	p := object.NewPowerup(3, object.PowerupShield)
	p.Z = -3
	s.Powerups = []*object.Powerup{p}

	require.NoError(t, s.updatePowerups(s.UpdateContext()))
	assert.False(t, p.Collected)
	assert.False(t, s.ShieldActive())
}

func TestPowerupTimerAndReactivation(t *testing.T) {
	s := newPlaying(t)
	s.activatePowerup(object.PowerupSpeed)
	ticks := int(lc.PowerupDuration / lc.TickTime)
	for i := 0; i < ticks; i++ {
		s.tickPowerups()
	}
	assert.True(t, s.BoostActive())
	s.tickPowerups()
	assert.False(t, s.BoostActive())

	s.activatePowerup(object.PowerupSpeed)
	for i := 0; i < ticks/2; i++ {
		s.tickPowerups()
	}
	s.activatePowerup(object.PowerupSpeed)
	require.Len(t, s.Active, 1)
	assert.Equal(t, lc.PowerupDuration, s.Active[0].Left)
}

func TestMultiplierExpiryRestoresOne(t *testing.T) {
	s := newPlaying(t)
	s.collectPowerup(object.NewPowerup(0, object.PowerupMultiplier))
	assert.Equal(t, 2, s.Multiplier)
	s.deactivatePowerup(object.PowerupMultiplier)
	assert.Equal(t, 1, s.Multiplier)
	assert.Empty(t, s.Active)
}

func TestComboDecay(t *testing.T) {
	s := newPlaying(t)
	s.Combo = 1
	s.decayCombo()
	assert.InDelta(t, 0.99, s.Combo, 1e-9)

	far := object.NewObstacle(0, object.ObstacleCone)
	far.Z = -500
	s.Obstacles = []*object.Obstacle{far}
	s.decayCombo()
	assert.InDelta(t, 0.99, s.Combo, 1e-9)

	far.Z = 150
	s.Combo = 0.005
	s.decayCombo()
	assert.Zero(t, s.Combo)
}

func TestDifficultyOncePerMilestone(t *testing.T) {
	s := newPlaying(t)
	s.Distance = 999
	s.raiseDifficulty()
	assert.Equal(t, lc.InitialMaxSpeed, s.MaxSpeed)

	s.Distance = 1000.2
	s.raiseDifficulty()
	s.Distance = 1000.9
	s.raiseDifficulty()
	assert.Equal(t, lc.InitialMaxSpeed+lc.MaxSpeedStep, s.MaxSpeed)

	s.MaxSpeed = 348
	s.Distance = 2000.1
	s.raiseDifficulty()
	assert.Equal(t, lc.MaxSpeedCap, s.MaxSpeed)
}

func TestAchievementsUnlockOnceAndPersist(t *testing.T) {
	s := newPlaying(t)
	s.Distance = 100
	s.checkAchievements()
	events := s.DrainEvents()
	require.Len(t, events, 1)
	assert.Equal(t, EventAchievement, events[0].Kind)
	assert.Equal(t, "first_100m", events[0].Achievement.ID)
	require.NotNil(t, s.Popup)
	assert.Equal(t, lc.AchievementPopup, s.Popup.Left)

	s.checkAchievements()
	assert.Empty(t, s.DrainEvents())

	s.StartGame()
	s.Distance = 150
	s.checkAchievements()
	assert.Equal(t, []EventKind{EventMusicStart}, kinds(s.DrainEvents()))
	assert.Equal(t, 1, s.UnlockedCount())
}

func TestAchievementThresholds(t *testing.T) {
	tests := []struct {
		id  string
		set func(*State)
	}{
		{"speed_demon", func(s *State) { s.Speed = 200 }},
		{"coin_collector", func(s *State) { s.Coins = 50 }},
		{"combo_master", func(s *State) { s.Combo = 10 }},
		{"survivor", func(s *State) { s.Distance = 2000 }},
		{"ultimate_driver", func(s *State) { s.Score = 10000 }},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			s := newPlaying(t)
			tt.set(s)
			s.checkAchievements()
			var ids []string
			for _, e := range s.DrainEvents() {
				ids = append(ids, e.Achievement.ID)
			}
			assert.Contains(t, ids, tt.id)
		})
	}
}

func TestAchievementPopupExpires(t *testing.T) {
	s := newPlaying(t)
	s.Popup = &AchievementPopup{Left: lc.TickTime}
	s.tickTimers()
	assert.Nil(t, s.Popup)
}

func TestMiniMap(t *testing.T) {
	s := newPlaying(t)
	for _, z := range []float64{-1200, 0, 2000} {
		o := object.NewObstacle(2, object.ObstacleCar)
		o.Z = z
		s.Obstacles = append(s.Obstacles, o)
	}
	m := s.MiniMap()
	assert.InDelta(t, 0.42, m.CarX, 1e-9)
	require.Len(t, m.Dots, 3)
	assert.InDelta(t, 10.0/140, m.Dots[0].Row, 1e-9)
	assert.InDelta(t, 30.0/140, m.Dots[1].Row, 1e-9)
	assert.InDelta(t, 130.0/140, m.Dots[2].Row, 1e-9)
	assert.Equal(t, 2, m.Dots[0].Lane)
}

func TestHUDAndSummary(t *testing.T) {
	s := newPlaying(t)
	s.Score, s.Speed, s.Distance, s.Coins = 321, 123.9, 456.7, 15
	s.MaxCombo = 7.6
	s.activatePowerup(object.PowerupShield)

	h := s.HUD()
	assert.Equal(t, 123, h.Speed)
	assert.Equal(t, 456, h.Distance)
	require.Len(t, h.Powerups, 1)
	assert.Equal(t, object.PowerupShield, h.Powerups[0].Kind)
	assert.InDelta(t, 5, h.Powerups[0].Seconds, 1e-9)

	assert.Equal(t, Summary{Score: 321, Distance: 456, BestCombo: 7, Coins: 15}, s.Summary())
}

func TestComboColorTiers(t *testing.T) {
	assert.Equal(t, draw.Text, ComboColor(5))
	assert.Equal(t, draw.ComboWarm, ComboColor(6))
	assert.Equal(t, draw.ComboHot, ComboColor(11))
	assert.Equal(t, draw.ComboMax, ComboColor(16))
}

type fakeSink struct {
	audio.Nop
	tones   []audio.Tone
	started int
	stopped int
}

func (f *fakeSink) Play(t audio.Tone) { f.tones = append(f.tones, t) }
func (f *fakeSink) StartMusic()       { f.started++ }
func (f *fakeSink) StopMusic()        { f.stopped++ }

func TestDispatchHonoursSettings(t *testing.T) {
	events := []Event{
		{Kind: EventMusicStart},
		{Kind: EventSound, Tone: toneCoin},
		{Kind: EventAchievement},
		{Kind: EventGameOver},
		{Kind: EventMusicStop},
	}

	sink := &fakeSink{}
	Dispatch(sink, events, DefaultSettings())
	assert.Equal(t, []audio.Tone{toneCoin, toneAchievement}, sink.tones)
	assert.Equal(t, 1, sink.started)
	assert.Equal(t, 1, sink.stopped)

	sink = &fakeSink{}
	Dispatch(sink, events, Settings{})
	assert.Empty(t, sink.tones)
	assert.Zero(t, sink.started)
	assert.Equal(t, 1, sink.stopped)
}

func TestUpdateRoutesMenus(t *testing.T) {
	s := NewState(DefaultSettings(), 3)

	require.NoError(t, s.Update(input.Input{Options: true, Number: -1}))
	assert.Equal(t, GameStateSettings, s.GameState)

	require.NoError(t, s.Update(input.Input{Number: 1}))
	assert.False(t, s.Settings.SoundEnabled)
	require.NoError(t, s.Update(input.Input{Number: 2}))
	assert.False(t, s.Settings.MusicEnabled)
	assert.Equal(t, []EventKind{EventMusicStop}, kinds(s.DrainEvents()))
	require.NoError(t, s.Update(input.Input{Number: 3}))
	assert.Equal(t, config.QualityHigh, s.Settings.ParticleQuality)
	require.NoError(t, s.Update(input.Input{Number: 3}))
	assert.Equal(t, config.QualityLow, s.Settings.ParticleQuality)

	require.NoError(t, s.Update(input.Input{Escape: true, Number: -1}))
	assert.Equal(t, GameStateStart, s.GameState)

	require.NoError(t, s.Update(input.Input{Space: true, Number: -1}))
	assert.Equal(t, GameStatePlaying, s.GameState)

	s.GameOver()
	require.NoError(t, s.Update(input.Input{Enter: true, Number: -1}))
	assert.Equal(t, GameStatePlaying, s.GameState)
	assert.Zero(t, s.Score)
}

func TestClock(t *testing.T) {
	c := NewClock(60, 5)
	assert.Equal(t, 0, c.Advance(10*time.Millisecond))
	assert.Equal(t, 1, c.Advance(10*time.Millisecond))
	assert.Equal(t, 5, c.Advance(time.Second))
	assert.Equal(t, 0, c.Advance(time.Millisecond))
}

func TestPerfMonitorForcesLowQuality(t *testing.T) {
	s := NewState(DefaultSettings(), 1)
	m := &PerfMonitor{}
	slow := 100 * time.Millisecond // 10 fps
	for sample := 0; sample < lc.LowFPSStrikes; sample++ {
		for i := 0; i < 10; i++ {
			m.Apply(s, slow)
		}
	}
	assert.Equal(t, config.QualityMedium, s.Settings.ParticleQuality)
	for i := 0; i < 10; i++ {
		m.Apply(s, slow)
	}
	assert.Equal(t, config.QualityLow, s.Settings.ParticleQuality)
	assert.InDelta(t, 10, m.FPS, 1e-9)

	fast := &PerfMonitor{strikes: 2}
	for i := 0; i < 50; i++ {
		fast.Frame(20 * time.Millisecond)
	}
	assert.Equal(t, 1, fast.strikes)
}

type panelPainter struct {
	titles []string
	texts  []string
}

func (p *panelPainter) Fill(x, y, w, h float64, c draw.Color)     {}
func (p *panelPainter) Polygon(points []draw.Point, c draw.Color) {}
func (p *panelPainter) Text(x, y float64, s string, c draw.Color) {
	p.texts = append(p.texts, s)
}
func (p *panelPainter) Panel(title string, lines []string, accent draw.Color) {
	p.titles = append(p.titles, title)
}

func TestDrawPerState(t *testing.T) {
	s := NewState(DefaultSettings(), 9)
	p := &panelPainter{}
	require.NoError(t, s.Draw(p, []string{"best: 100"}))
	assert.Equal(t, []string{"ROAD RUSH"}, p.titles)

	s.ShowSettings()
	p = &panelPainter{}
	require.NoError(t, s.Draw(p, nil))
	assert.Equal(t, []string{"SETTINGS"}, p.titles)

	s.HideSettings()
	s.StartGame()
	s.Popup = &AchievementPopup{Achievement: s.Achievements[0], Left: time.Second}
	p = &panelPainter{}
	require.NoError(t, s.Draw(p, nil))
	assert.Empty(t, p.titles)
	assert.NotEmpty(t, p.texts)
	assert.Contains(t, p.texts[len(p.texts)-1], "Getting Started")

	s.GameOver()
	p = &panelPainter{}
	require.NoError(t, s.Draw(p, nil))
	assert.Equal(t, []string{"GAME OVER"}, p.titles)
}

func countSpawned(s *State, c draw.Color) int {
	n := 0
	for _, o := range s.toSpawn {
		if p, ok := o.(*object.Particle); ok && p.Color == c {
			n++
		}
	}
	return n
}

func TestSpeedLineRateFollowsQuality(t *testing.T) {
	const ticks = 5000
	tests := []struct {
		quality string
		rate    float64
	}{
		{config.QualityLow, 0.1},
		{config.QualityMedium, 0.2},
		{config.QualityHigh, 0.4},
	}
	for _, tt := range tests {
		t.Run(tt.quality, func(t *testing.T) {
			s := newPlaying(t)
			s.Settings.ParticleQuality = tt.quality
			s.Speed = 200
			for i := 0; i < ticks; i++ {
				s.spawnParticles()
			}
			got := float64(countSpawned(s, draw.SpeedLine)) / ticks
			assert.InDelta(t, tt.rate, got, 0.03)
			assert.InDelta(t, lc.ExhaustRate, float64(countSpawned(s, draw.Exhaust))/ticks, 0.03)
		})
	}
}

func TestNoSpeedLinesWhenSlow(t *testing.T) {
	s := newPlaying(t)
	s.Settings.ParticleQuality = config.QualityHigh
	s.Speed = lc.SpeedParticleMin
	for i := 0; i < 500; i++ {
		s.spawnParticles()
	}
	assert.Zero(t, countSpawned(s, draw.SpeedLine))
}

func TestStartGameEasesCarIntoStartLane(t *testing.T) {
	s := NewState(DefaultSettings(), 3)
	s.StartGame()
	assert.Equal(t, lc.CarStartX, s.Car.X)
	assert.Equal(t, lc.StartLane, s.Car.TargetLane)

	require.NoError(t, s.Step(noInput()))
	assert.Less(t, s.Car.X, lc.CarStartX)
	assert.Greater(t, s.Car.X, lc.Lanes[lc.StartLane])

	for i := 0; i < 200 && s.GameState == GameStatePlaying; i++ {
		s.Obstacles = s.Obstacles[:0]
		require.NoError(t, s.Step(noInput()))
	}
	assert.Equal(t, lc.Lanes[lc.StartLane], s.Car.X)
}

func TestFatalKindsEndTheRun(t *testing.T) {
	for _, kind := range []object.ObstacleKind{
		object.ObstacleCar, object.ObstacleTruck, object.ObstacleCone,
		object.ObstacleMotorcycle, object.ObstacleBarrier, object.ObstacleOil, object.ObstacleRamp,
	} {
		t.Run(kind.String(), func(t *testing.T) {
			s := newPlaying(t)
			ended := s.hitObstacle(object.NewObstacle(1, kind))
			assert.Equal(t, kind.Fatal(), ended)
			assert.Equal(t, kind.Fatal(), s.GameState == GameStateGameOver)
		})
	}
}

func TestCoinIsNotTimed(t *testing.T) {
	s := newPlaying(t)
	s.collectPowerup(object.NewPowerup(1, object.PowerupCoin))
	assert.Empty(t, s.Active)

	s.activatePowerup(object.PowerupCoin)
	assert.Empty(t, s.Active)

	s.collectPowerup(object.NewPowerup(1, object.PowerupShield))
	require.Len(t, s.Active, 1)
	assert.True(t, s.ShieldActive())
}

func TestPerfMonitorOnlyForcesOnSlowSamples(t *testing.T) {
	m := &PerfMonitor{strikes: lc.LowFPSStrikes + 2}
	var forced bool
	for i := 0; i < 50; i++ {
		forced = m.Frame(20*time.Millisecond) || forced
	}
	assert.False(t, forced, "a 50 fps sample never forces low quality")
	assert.Equal(t, lc.LowFPSStrikes+1, m.strikes)

	for i := 0; i < 10; i++ {
		forced = m.Frame(100 * time.Millisecond)
	}
	assert.True(t, forced)
}
