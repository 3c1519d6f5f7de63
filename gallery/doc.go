// Package gallery contains the carousel state machine and its message contract.
//
// Allowed here:
//   - the immutable Gallery value, its configuration, and the Msg protocol
//   - the Update transition function and scheduled follow-up effects
//   - host-loop plumbing (Program, Flush) for delivering delayed messages
//
// Not allowed here:
//   - rendering of any kind (see htmlview and gallerytea)
//   - decoding of host input events into messages
package gallery
