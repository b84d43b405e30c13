package config

import "sync"

// Settings holds runtime render configuration.
type Settings struct {
	mu            sync.RWMutex
	shadowsOn     bool
	dayNightOn    bool
	dayNightSpeed float32
	moveSpeed     float32
}

var global = &Settings{
	shadowsOn:     true,
	dayNightOn:    true,
	dayNightSpeed: 0.05,
	moveSpeed:     30.0,
}

// ShadowsEnabled reports whether the shadow pass runs.
func ShadowsEnabled() bool {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return global.shadowsOn
}

// SetShadowsEnabled toggles the shadow pass.
func SetShadowsEnabled(on bool) {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.shadowsOn = on
}

// DayNightEnabled reports whether the light direction animates.
func DayNightEnabled() bool {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return global.dayNightOn
}

// SetDayNightEnabled toggles the day-night cycle.
func SetDayNightEnabled(on bool) {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.dayNightOn = on
}

// DayNightSpeed returns the cycle speed in cycles per second.
func DayNightSpeed() float32 {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return global.dayNightSpeed
}

// SetDayNightSpeed sets the cycle speed, clamped to a sane range.
func SetDayNightSpeed(speed float32) {
	if speed < 0 {
		speed = 0
	}
	if speed > 1 {
		speed = 1
	}
	global.mu.Lock()
	defer global.mu.Unlock()
	global.dayNightSpeed = speed
}

// MovementSpeed returns the fly-camera speed in units per second.
func MovementSpeed() float32 {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return global.moveSpeed
}

// SetMovementSpeed sets the fly-camera speed, clamped to a sane range.
func SetMovementSpeed(speed float32) {
	if speed < 1 {
		speed = 1
	}
	if speed > 100 {
		speed = 100
	}
	global.mu.Lock()
	defer global.mu.Unlock()
	global.moveSpeed = speed
}
