// Package htmlview derives an HTML render tree and a scoped stylesheet from a
// gallery value, and decodes browser pointer-event payloads into gallery
// messages.
//
// Allowed here:
//   - pure View/Stylesheet derivation from gallery.Gallery
//   - gesture attribute wiring and pointer payload decoding
//
// Not allowed here:
//   - state transitions or scheduling (see package gallery)
package htmlview
