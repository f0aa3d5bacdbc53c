// Package ui provides the terminal front end for the wheel of names.
//
// The centrepiece is Model, a Bubble Tea program that renders a wheel.Wheel
// as a vertical drum of coloured sectors with a pointer on the highlighted
// one. The model never picks a winner itself: it asks the wheel for a spin,
// animates the highlight toward the committed target, and hands the spin
// handle back when the animation lands.
//
// # Components Overview
//
//	Model    - Interactive picker (name input, contestant list, wheel)
//	Spinner  - Single-line spinner used by the headless pick command
//	PlanSpin - Decelerating tick schedule that stops on a target sector
//
// # Color Scheme
//
// Sector colours come from the configured palette, cycling by position.
// Status colours follow the same palette:
//
//	ColorSuccess (green)  - Winners and completed spins
//	ColorError   (red)    - Failures and remove markers
//	ColorWarning (yellow) - Flash messages
//	ColorAccent  (blue)   - Focused input and the add button
//
// Use DisableColors() to switch to monochrome output (for --no-color flag).
//
// # Key Bindings
//
//	enter        Add the typed name
//	ctrl+s       Spin (space or s with the list focused)
//	tab          Switch between input and list
//	ctrl+d       Remove the selected contestant (delete, backspace or x in the list)
//	f1 / ?       Toggle help
//	ctrl+c / esc Quit (q in the list)
package ui
