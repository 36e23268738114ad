// Package diagram composes grid views around one matrix operation and keeps
// them synchronized under pointer hover.
//
// What:
//
//   - Three archetypes, each a concrete type behind the Diagram interface:
//     MultiplyDiagram (A×B=C, three views), TransposeDiagram (A and Aᵗ, two
//     views with mirrored axes) and PackingDiagram (matrix against the flat
//     literal that packs it, row- or column-major).
//   - Every archetype is a two-state machine: idle (no cell hovered) and
//     focused(row, col). Hover-enter focuses, a further hover refocuses
//     without an idle round-trip, and the (-1,-1) leave signal returns to
//     idle, clearing every participating view.
//   - Catalog holds an ordered set of diagram definitions and mounts one at a
//     time, tearing the previous diagram down before the next is built.
//     Definitions can be loaded from YAML files.
//
// Shape incompatibility is not an internal failure: NewMultiply over
// incompatible operands builds a designed error state with placeholder result
// cells and a static message naming both shapes. Any other construction
// problem (nil operand, malformed definition) is a programming-time defect
// and is returned as an error.
//
// Errors:
//
//   - ErrNilOperand: a nil matrix was passed to a constructor.
//   - ErrUnknownKind: a selection or definition names no known archetype.
//   - ErrBadDefinition: a catalog definition cannot produce a diagram.
//   - ErrNoDefinitions: a catalog was built from an empty definition set.
package diagram
