// Package matrix provides the dense linear-algebra kernels used to build
// Hopfield weight matrices.
//
// 🚀 What is inside?
//
//	A small, deterministic, zero-dependency toolkit over float64 matrices:
//	  • Dense: row-major storage with bounds-checked At/Set
//	  • Mul, Transpose, MatVec: the products needed by the pseudoinverse rule
//	  • LU (Doolittle, no pivoting) and Inverse built on top of it
//	  • Central validators and sentinel errors (match with errors.Is)
//
// ✨ Numeric policy:
//   - Loop orders are fixed, so results are reproducible bit-for-bit.
//   - A pivot whose magnitude is ≤ the configured tolerance is reported as
//     ErrSingular. The default tolerance is exact zero; callers working on
//     integer-valued Gram matrices pass WithPivotTolerance to absorb drift.
//
// ⚙️ Usage:
//
//	u, _ := matrix.NewDenseFrom([][]float64{{1, -1}, {-1, -1}, {1, 1}})
//	ut, _ := matrix.Transpose(u)
//	g, _ := matrix.Mul(ut, u)     // Gram matrix Uᵀ·U
//	gi, err := matrix.Inverse(g)  // ErrSingular when columns are dependent
//
// Performance:
//
//   - Mul: O(r·n·c); Transpose, MatVec: O(r·c)
//   - LU, Inverse: O(n³) time, O(n²) memory
package matrix
