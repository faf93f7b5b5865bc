// Package scene provides the coordinate-frame collaborators the input
// pipeline acts on: vectors, rotations, constrained frames with
// reference hierarchies and kernel sharing, and the interactive Body
// that ties a frame to a binding profile and gesture controller.
package scene
