package feedback

import (
	"github.com/phanxgames/areas"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Fader tweens an alpha value towards 1 when its zone goes in and towards 0
// when it goes out. Feed Alpha to a label or popup each frame.
type Fader struct {
	// Duration of a full fade in seconds.
	Duration float32
	// Ease defaults to ease.OutQuad.
	Ease ease.TweenFunc

	alpha   float32
	target  float32
	tween   *gween.Tween
	handles []areas.CallbackHandle
}

// NewFader creates a fully transparent fader.
func NewFader(duration float32) *Fader {
	return &Fader{Duration: duration, Ease: ease.OutQuad}
}

// Attach subscribes the fader to z's in and out events.
func (f *Fader) Attach(z *areas.Zone) {
	f.handles = append(f.handles,
		z.OnIn(func(areas.Event) { f.FadeTo(1) }),
		z.OnOut(func(areas.Event) { f.FadeTo(0) }),
	)
}

// Detach removes every subscription made by Attach.
func (f *Fader) Detach() {
	for _, h := range f.handles {
		h.Remove()
	}
	f.handles = nil
}

// FadeTo starts a tween from the current alpha to target. The tween length
// scales with the distance left to cover.
func (f *Fader) FadeTo(target float32) {
	if target == f.target && f.tween != nil {
		return
	}
	f.target = target
	dist := target - f.alpha
	if dist < 0 {
		dist = -dist
	}
	if dist == 0 || f.Duration <= 0 {
		f.alpha = target
		f.tween = nil
		return
	}
	easeFn := f.Ease
	if easeFn == nil {
		easeFn = ease.OutQuad
	}
	f.tween = gween.New(f.alpha, target, f.Duration*dist, easeFn)
}

// Update advances the tween by dt seconds and returns the current alpha.
func (f *Fader) Update(dt float32) float32 {
	if f.tween == nil {
		return f.alpha
	}
	val, done := f.tween.Update(dt)
	f.alpha = val
	if done {
		f.alpha = f.target
		f.tween = nil
	}
	return f.alpha
}

// Alpha returns the current alpha.
func (f *Fader) Alpha() float32 { return f.alpha }

// Animating reports whether a tween is in progress.
func (f *Fader) Animating() bool { return f.tween != nil }
