// Package checklist reads and rewrites a markdown task checklist.
//
// # Item Grammar
//
// A checklist item is a single line: optional indentation, an optional
// bullet ("-", "*" or "+") followed by whitespace, a checkbox marker
// ("[ ]" pending, "[x]" or "[X]" complete), then free text:
//
//	- [ ] wire the parser
//	  * [x] handlers.go (2026-10-18 14:03:00)
//	[ ] bare marker
//
// Any other line is opaque text and is preserved byte for byte.
//
// # Update Levels
//
// The Updater applies one mutation per changed file. How much it rewrites
// depends on the resource level:
//
//   - Full, Normal: flip the first pending item naming the file and stamp
//     it, or append a stamped completed item; then append a progress
//     record block.
//   - Light: append a completed item without a timestamp when no pending
//     item names the file; leave matching items alone.
//   - Minimal: append a pending "(pending verification)" item when no
//     pending item names the file; leave matching items alone.
//
// Record blocks accumulate; nothing is ever deleted or deduplicated.
//
// # Write-back
//
// Documents are read whole and written whole through a temp file renamed
// over the original, so a failed write leaves the previous content.
package checklist
