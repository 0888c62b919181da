// Package warp implements a parametric geometric image distortion engine.
//
// # Overview
//
// warp applies inverse-mapped distortions (pinch, twirl, Mobius, Joukowski,
// Perlin displacement, and about twenty more) to RGBA8 pixel buffers. Each
// filter declares a parameter schema and an inverse mapping from output
// pixel coordinates to source coordinates; the engine drives a zoom-aware
// resampling pass that resolves edges, bilinear-samples the source, and
// writes a freshly allocated destination buffer.
//
// # Quick Start
//
//	src := warp.FromImage(img)
//	eng := warp.NewEngine()
//
//	dst, err := eng.Render(warp.NewStaticSource(src), warp.Request{
//	    FilterID: "twirl",
//	    Params:   warp.Params{"angle": 120.0},
//	    Scale:    1.0,
//	    Edge:     warp.EdgeClamp,
//	})
//
// # Architecture
//
// The library is organized into:
//   - Filters: one Descriptor per distortion, registered at init
//   - Engine: source cache, geometry resolution, parallel resampling loop
//   - Sampler/edge: bilinear sampling with clamp/wrap/mirror/transparent
//     edge policies
//   - Loop: a single-slot, latest-request-wins render mailbox
//
// # Coordinate System
//
// Uses standard raster coordinates: origin (0,0) at top-left, X right,
// Y down. Filter parameters author angles in degrees; centers and radii are
// percentages of the source dimensions. A scale parameter of 100% maps one
// complex unit to half the shorter image dimension.
//
// # Concurrency
//
// A render pass partitions destination rows across workers; pixels are
// independent by construction. Render never publishes a partial buffer.
package warp
