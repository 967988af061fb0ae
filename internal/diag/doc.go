// Package diag defines the diagnostic model shared by every generator phase.
//
//   - Deterministic, serialisable records capturing findings from the lexer,
//     parser, parameter model, and permutation engine.
//   - Light-weight utilities (Reporter, Bag) that let producers emit
//     diagnostics without coupling to storage or formatting layers.
//
// Package diag performs no formatting or IO. Rendering lives in
// internal/diagfmt; orchestration lives in internal/driver and the CLI.
//
// Diagnostic is the central record: Severity (Info/Warning/Error), a compact
// numeric Code with a stable string form, a short actionable Message, the
// primary source.Span, and optional Notes. Notes must add context ("defaulted
// parameter declared here") rather than repeat the message.
//
// Codes partition into user errors (lexical, syntactic, parameter-model) and
// internal invariant violations; the split is observable through
// Code.Internal so callers can distinguish "your declaration is wrong" from
// "the generator is wrong".
//
// Phases emit through a Reporter, usually via ReportError(...).WithNote(...)
// builder chains, and the driver collects per-file Bags which support
// sorting, deduplication, and merge.
package diag
