// Package engine advances a particle system by one frame.
//
// A step runs in four phases:
//
//   - force pass: first-half particles are compared against second-half
//     particles on a pool of workers, each owning a contiguous slice of the
//     first half. Workers only read particles; velocity deltas go into a
//     private buffer per worker and colliding pairs into a private list.
//   - reduce: after the join, buffers are added to velocities in worker order.
//   - merge: colliding pairs are resolved one at a time in ascending index
//     order, so every absorbed particle has exactly one writer.
//   - integrate: active particles move by their velocity and are emitted as
//     draw instructions coloured by speed.
//
// For a fixed worker count the result is deterministic.
//
// # Thread Safety
//
// An Engine must not be stepped from several goroutines at once.
package engine
