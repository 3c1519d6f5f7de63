// Package gallerytea hosts a gallery inside a Bubble Tea program.
//
// Allowed here:
//   - the tea.Model wrapper, mouse-to-gesture mapping, and tick scheduling
//     of the gallery's delayed messages
//   - lipgloss rendering of the slide strip
//
// Not allowed here:
//   - transition semantics (package gallery owns those)
//   - application key handling or layout policy (that is the embedding app's)
package gallerytea
