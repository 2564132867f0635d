package entity

import (
	"math"

	"github.com/jakecoffman/cp"
)

// PursuitHazard is the rising boundary chasing the actor upward.
// Regress is the permanent setback accumulated from hits.
type PursuitHazard struct {
	BaseY     float64
	StartTime float64
	Regress   float64
	SurfaceY  float64
}

// NewPursuitHazard creates a hazard starting to rise at startTime
func NewPursuitHazard(baseY, startTime float64) *PursuitHazard {
	return &PursuitHazard{
		BaseY:     baseY,
		StartTime: startTime,
		SurfaceY:  baseY,
	}
}

// Advance recomputes the surface height for time now
func (h *PursuitHazard) Advance(now, riseSpeed, wobbleFreq, wobbleAmp float64) float64 {
	h.SurfaceY = h.BaseY - h.Regress +
		(now-h.StartTime)*riseSpeed +
		math.Sin(now*wobbleFreq)*wobbleAmp
	return h.SurfaceY
}

// AccessRule decides who may pass a knock-back zone
type AccessRule int

const (
	AllowIfRich AccessRule = iota
	AllowIfLightSkin
)

// ParseAccessRule maps a stage-file name to a rule; unknown names fall back to AllowIfRich
func ParseAccessRule(s string) AccessRule {
	if s == "skin_light" {
		return AllowIfLightSkin
	}
	return AllowIfRich
}

func (r AccessRule) String() string {
	if r == AllowIfLightSkin {
		return "skin_light"
	}
	return "rich"
}

// Allows evaluates the rule against actor attributes
func (r AccessRule) Allows(attrs Attributes) bool {
	switch r {
	case AllowIfLightSkin:
		return attrs.Skin == SkinLight
	default:
		return attrs.Wealth == WealthRich
	}
}

// KnockbackZone is a static region repelling actors its rule denies
type KnockbackZone struct {
	Access  AccessRule
	PushDir float64 // +1 or -1
	Bounds  cp.BB
}
