// Package feedback provides small feature-module helpers that react to zone
// events: a label fader driven by [gween] tweens and synthesized sound cues
// built on [beep].
//
// [gween]: https://github.com/tanema/gween
// [beep]: https://github.com/gopxl/beep
package feedback
