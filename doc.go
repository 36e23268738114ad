// Package matlens renders interactive, didactic diagrams of matrix
// arithmetic: hover a cell of a product and watch the operand row and column
// light up while the dot product behind it is worked out term by term.
//
// 🚀 What is matlens?
//
//	A small, deterministic library plus terminal shell that brings together:
//		• Dense matrices: flat row-major float32 storage with shape-aware ops
//		• Grid views: per-cell display handles and three highlight channels
//		• Linked diagrams: multiplication, transposition and packing-order
//		  illustrations that keep two or three grids synchronized under hover
//		• A catalog: numbered diagram definitions, switchable at runtime,
//		  loadable from YAML
//
// ✨ Why matlens?
//
//   - Teaching-first – every highlight reproduces the exact arithmetic
//   - Rock-solid indexing – one row-major offset law shared by buffer and view
//   - Designed error states – incompatible shapes render, they don't crash
//   - Scriptable – bring your own matrices via a YAML catalog file
//
// Everything is organized under four subpackages:
//
//	matrix/   — Dense storage, transpose, dot product, multiplication
//	gridview/ — display handles, highlight channels, hover contract
//	diagram/  — the linked-diagram archetypes and the catalog
//	tui/      — the bubbletea shell rendering it all in a terminal
//
// Quick ASCII example, hovering result cell (0,1):
//
//	 A            B            A×B
//	[1  2]      [5 |6|]      [19 |22|]
//	[3  4]      [7 |8|]      [43  50 ]
//
//	(1 × 6) + (2 × 8) = 22
//
// Run `matlens tui` and press 1..5 to walk the built-in catalog.
package matlens
