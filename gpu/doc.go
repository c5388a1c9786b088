// Package gpu realizes the shading contract on a gogpu/wgpu
// hal.Device: render pipelines per variant, uniform buffers, 2D, cube
// and depth textures, mesh buffers, and bind group construction for
// the canonical groups.
//
// The package receives the device and queue from the host; it never
// creates them. All GPU writes go through the host's queue before a
// draw is recorded, and nothing here mutates a resource while a draw
// that reads it is in flight.
package gpu
