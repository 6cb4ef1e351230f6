// Package cycle implements incremental acyclicity checking over a
// block.Matrix's nonzero sparsity pattern.
//
// HasCycle(a, b) answers: would inserting the directed edge a→b close a
// cycle in the graph already induced by {(u,v) : |Φ[u,v]| > Tau}? This holds
// iff a directed path from b to a already exists, which is what is checked
// here: the search walks backward from a over existing in-edges
// (predecessors), and reports true if it reaches b.
//
// Predecessors of a node u are read directly off block.Matrix's column
// storage, with no sibling indirection: for each position k in rows[u],
// Value(u,k) is Φ[rows[u][k], u], the weight of the candidate in-edge
// rows[u][k] → u.
//
// A Checker owns its DFS scratch buffers (a color mark and an explicit
// stack) sized to a configured capacity and reuses them across calls — it
// never allocates inside HasCycle. The capacity is an explicit, documented
// configuration (DefaultCapacity, matching the historical MAX_CCS_ARRAY_SIZE
// of the reference implementation this solver is based on); NewChecker
// rejects a node count larger than the configured capacity with
// ErrCapacityExceeded.
package cycle

// DefaultCapacity is the default upper bound on the number of nodes a
// Checker can handle without reallocating its scratch buffers.
const DefaultCapacity = 4000
