// Package descriptor renders machine-readable XML job descriptors.
//
// Each reconciled jacket job becomes one <BookJacket> document carrying the
// order metadata, cleaned title, physical specifications with millimetre
// unit annotations, the computed manufacturing route, material details, and
// the source artwork URL. The documents are bundled one-per-job into a ZIP
// archive for the downstream imposition system.
package descriptor
