// Package clothoid smooths the corners of 2D polylines with clothoid
// transitions.
//
// A clothoid, or Euler spiral, is a curve whose curvature changes linearly
// with arc length. Replacing a sharp corner with a pair of clothoids, and a
// circular arc between them where needed, yields a path that is continuous in
// heading and curvature. A vehicle or machine tool can follow such a path
// without jerks in steering.
//
// # Joints
//
// [Joint] is the central type. It observes three points, start, corner and
// end, and replaces the corner with five sub-curves:
//
//   - a [Line] along the incoming leg
//   - a [Clothoid] that grows curvature from zero
//   - an [Arc] at the maximum curvature, only when the corner is sharp
//     enough to need it
//   - a second [Clothoid] that relaxes curvature back to zero
//   - a [Line] along the outgoing leg
//
// [JointOpts.Sharpness] sets how quickly curvature may change, and
// [JointOpts.MaxCurvature] caps the curvature itself. After moving any of the
// observed points, call [Joint.Update].
//
// # Curves
//
// [Line], [Arc] and [Clothoid] implement the [Curve] interface. Curves are
// parametrized by arc length and can be sampled either with a fixed number of
// points ([Curve.Waypoints]) or with a fixed spacing
// ([Curve.WaypointsSpaced]). Hidden curves, see [Curve.SetVisible], are
// skipped by [AppendCurves].
//
// # Numerics
//
// Positions along clothoids are computed with composite Simpson integration,
// see [Integral] and [MovingIntegral], and with a precomputed table of the
// normalized Fresnel integrals, see [FresnelTable]. The integration helpers
// are generic over [Summable] values, so the same code integrates scalars
// ([Scalar]) and vectors ([Vec2]).
//
// Spaced sampling always ends exactly on the interval's end point. A final
// step shorter than [SnapTolerance] is merged into the step before it.
//
// # Logging
//
// The package logs how joints were solved at [log/slog.LevelDebug]. Nothing
// is logged unless a logger is installed with [SetLogger].
package clothoid
