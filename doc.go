// Package shade is the shading core of a small forward renderer: three
// vertex+fragment WGSL program variants and the resource-binding
// contract they share.
//
// The three variants are:
//
//   - UnlitTextured: clip-space passthrough plus a single diffuse
//     texture sample. No lighting state.
//   - LitReflective: tangent-space normal mapping with a
//     Fresnel-Schlick weighted blend between point-light diffuse and an
//     environment cube-map reflection.
//   - LitSimple: tangent-space normal mapping with Lambertian diffuse
//     and a constant-coefficient ambient term.
//
// Every variant partitions its GPU resources into the same canonical
// bind groups (GroupMaterial, GroupFrame, GroupObject, GroupLight,
// GroupEnvironment), so a host renderer can swap materials and share
// bind groups between the lit pipelines without rebuilding them.
// BindGroupLayouts returns the contract; the gpu subpackage realizes
// it on a gogpu/wgpu hal.Device.
//
// The lighting math exists in exactly two places that mirror each
// other line for line: shaders/shading_common.wgsl for the GPU, and
// the shademath subpackage for CPU-side evaluation and tests.
//
// The core is stateless per invocation. All uniforms and textures are
// written by the host before a draw and are read-only while it runs;
// synchronizing those writes between draws is the host's job.
// Numerically degenerate input (zero-length normals or tangents
// feeding a normalize) is deliberately not guarded and propagates NaN
// into the output color rather than branching in the fragment stage.
package shade
