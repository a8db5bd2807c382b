package loop

import (
	lc "github.com/tomz197/roadrush/internal/loop/config"
)

// Metric is the run statistic an achievement watches.
type Metric int

const (
	MetricDistance Metric = iota
	MetricSpeed
	MetricCoins
	MetricCombo
	MetricScore
)

// Achievement unlocks once when its metric reaches Threshold.
type Achievement struct {
	ID        string
	Name      string
	Desc      string
	Metric    Metric
	Threshold float64
	Unlocked  bool
}

// NewAchievements returns the full locked achievement list.
func NewAchievements() []Achievement {
	return []Achievement{
		{ID: "first_100m", Name: "Getting Started", Desc: "Travel 100m", Metric: MetricDistance, Threshold: 100},
		{ID: "speed_demon", Name: "Speed Demon", Desc: "Reach 200 km/h", Metric: MetricSpeed, Threshold: 200},
		{ID: "coin_collector", Name: "Coin Collector", Desc: "Collect 50 coins", Metric: MetricCoins, Threshold: 50},
		{ID: "combo_master", Name: "Combo Master", Desc: "Achieve 10x combo", Metric: MetricCombo, Threshold: 10},
		{ID: "survivor", Name: "Survivor", Desc: "Travel 2000m", Metric: MetricDistance, Threshold: 2000},
		{ID: "ultimate_driver", Name: "Ultimate Driver", Desc: "Score 10000 points", Metric: MetricScore, Threshold: 10000},
	}
}

func (s *State) metric(m Metric) float64 {
	switch m {
	case MetricDistance:
		return s.Distance
	case MetricSpeed:
		return s.Speed
	case MetricCoins:
		return float64(s.Coins)
	case MetricCombo:
		return s.Combo
	case MetricScore:
		return float64(s.Score)
	}
	return 0
}

// checkAchievements unlocks every achievement whose threshold is met.
func (s *State) checkAchievements() {
	for i := range s.Achievements {
		a := &s.Achievements[i]
		if a.Unlocked || s.metric(a.Metric) < a.Threshold {
			continue
		}
		a.Unlocked = true
		s.Popup = &AchievementPopup{Achievement: *a, Left: lc.AchievementPopup}
		s.emit(Event{Kind: EventAchievement, Achievement: *a})
	}
}

// UnlockedCount returns how many achievements have been earned.
func (s *State) UnlockedCount() int {
	n := 0
	for _, a := range s.Achievements {
		if a.Unlocked {
			n++
		}
	}
	return n
}
