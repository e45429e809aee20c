// Package diag defines the structured diagnostic model shared by every
// pipeline stage.
//
//   - Severity is a five-level enum (Help, Note, Warning, Error, Bug);
//     Bug marks broken pipeline invariants, never user mistakes.
//   - Code is a compact numeric identifier with a stable string form;
//     the numeric ranges group codes by the stage that produces them.
//   - Diagnostic carries the message plus an ordered list of Labels
//     (span + optional message) and free-text notes. The first label is the
//     primary one. Labels within one diagnostic must not overlap; the
//     ReportBuilder enforces that at construction time.
//
// Package diag does no formatting or IO. Rendering lives in internal/diagfmt;
// collection and stage gating live in the driver. Stages emit through a
// Reporter (usually a BagReporter writing into a Bag) so that producers stay
// decoupled from storage.
package diag
