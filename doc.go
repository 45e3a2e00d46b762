// Package hopfield is an associative memory you can train on bipolar
// patterns and ask to repair damaged ones.
//
// 🚀 What is hopfield?
//
//	A small, pure-Go Hopfield network toolkit:
//		• Patterns: fixed-length vectors of −1/+1, parsed from "+-" glyphs
//		• Training: Hebbian outer products or the Moore–Penrose projection rule
//		• Recall: synchronous (frozen snapshot) or asynchronous (in place)
//		• Diagnostics: energy, pairwise similarity, cross-talk warnings
//		• Rendering: glyph grids and weight tables for the terminal
//
// ✨ Why choose hopfield?
//
//   - Pure functions for training; immutable weights shared safely
//   - Recall never panics and never fails for lack of convergence
//   - Observer hooks (OnSweep, OnFlip) instead of printing from the core
//
// Under the hood, everything is organized under these subpackages:
//
//	bipolar/  — Pattern type, validation, similarity and cross-talk checks
//	hopfield/ — Weights, Hebb & Pseudoinverse rules, Network, Recall
//	matrix/   — dense row-major matrices: Mul, Transpose, LU, Inverse
//	render/   — bordered glyph grids and aligned matrix tables
//	config/   — YAML scenarios with .env and HOPFIELD_* overrides
//	logging/  — leveled slog logger and JSONL recall event log
//	cmd/      — the hopfield CLI (recall, weights, similarity, version)
//
// Quick ASCII example:
//
//	stored      probe       recalled
//	● ○ ●       ● ○ ●       ● ○ ●
//	○ ● ○   →   ○ ○ ○   →   ○ ● ○
//	● ○ ●       ● ○ ●       ● ○ ●
//
//	go install github.com/katalvlaran/hopfield/cmd/hopfield@latest
package hopfield
