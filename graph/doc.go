// SPDX-License-Identifier: EPL-2.0

// Package graph turns a render request into a linear processing graph:
// one playback stage that applies pitch and tempo together, followed by the
// effect nodes of the chain in slot order.
//
// Slot order is signal order. Swapping two slots generally changes the
// result, and the builder never reorders them.
package graph
