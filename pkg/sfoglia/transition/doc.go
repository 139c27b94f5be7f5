// Package transition defines how cards and headers look and move while a
// screen enters or leaves the stack.
//
// Everything here is data and pure functions: a Spec pairs the open and
// close animation configs, an interpolator maps progress values to a
// fixed-schema style, and a Preset bundles a spec with matching card and
// header interpolators plus a gesture direction. The navigator evaluates
// interpolators fresh every frame, so they must be deterministic; given
// identical props twice they return identical styles.
//
// # Choosing a transition
//
//	// Per screen, any field may be overridden; unset fields fall back to
//	// the preset, then to the stack default.
//	resolved := transition.Resolve(transition.Choice{
//	    Preset: &modal,
//	    Card:   transition.CardFade,
//	}, transition.SlideHorizontal())
//
// # Tuning
//
// The timing and spring parameters behind the built-in presets are
// empirical UX constants, not derived values. LoadTuning reads a TOML
// file that overrides them per preset, along with the gesture response
// distances, so devices with unusual screens can adjust the feel without
// a rebuild.
package transition
