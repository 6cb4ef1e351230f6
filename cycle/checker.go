package cycle

import (
	"math"

	"github.com/katalvlaran/ccdr/block"
)

// Option configures a Checker at construction time.
type Option func(*options)

type options struct {
	capacity int
}

// WithCapacity overrides the checker's scratch-buffer capacity. Panics if n
// is non-positive, mirroring the teacher package's policy of panicking only
// on nonsensical constructor arguments (a programmer error), never on
// user-supplied graph data.
func WithCapacity(n int) Option {
	if n <= 0 {
		panic("cycle: WithCapacity: capacity must be positive")
	}

	return func(o *options) { o.capacity = n }
}

// Checker performs iterative reachability DFS over a block.Matrix's nonzero
// sparsity pattern, reusing its scratch buffers across calls.
//
// A Checker is bound to a fixed capacity at construction and can be reused
// across every HasCycle call made during a single λ solve; it is not safe
// for concurrent use.
type Checker struct {
	capacity int
	color    []uint8
	stack    []int
	touched  []int
}

// NewChecker constructs a Checker whose scratch buffers can handle up to
// capacity nodes (DefaultCapacity unless overridden by WithCapacity). It
// fails with ErrCapacityExceeded if p exceeds that capacity.
func NewChecker(p int, opts ...Option) (*Checker, error) {
	o := options{capacity: DefaultCapacity}
	for _, opt := range opts {
		opt(&o)
	}

	if p > o.capacity {
		return nil, ErrCapacityExceeded
	}

	return &Checker{
		capacity: o.capacity,
		color:    make([]uint8, o.capacity),
		stack:    make([]int, 0, o.capacity),
		touched:  make([]int, 0, o.capacity),
	}, nil
}

// Capacity returns the checker's configured scratch capacity.
func (c *Checker) Capacity() int { return c.capacity }

// HasCycle reports whether adding the directed edge a→b would close a cycle
// in the graph already induced by m's nonzero pattern — equivalently,
// whether a path b → … → a already exists. It walks backward from a over
// existing in-edges (predecessors); reaching b this way means the forward
// path b → … → a is already present. A self-loop (a == b) always reports
// true.
func (c *Checker) HasCycle(m *block.Matrix, a, b int) bool {
	if a == b {
		return true
	}

	c.stack = c.stack[:0]
	c.touched = c.touched[:0]

	c.mark(a)
	c.stack = append(c.stack, a)

	found := false
	for len(c.stack) > 0 && !found {
		u := c.stack[len(c.stack)-1]
		c.stack = c.stack[:len(c.stack)-1]

		for k := 0; k < m.RowSize(u); k++ {
			if math.Abs(m.Value(u, k)) <= block.Tau {
				continue // no in-edge v -> u on this block slot
			}

			v := m.Row(u, k)
			if v == b {
				found = true
				break
			}
			if c.color[v] == 0 {
				c.mark(v)
				c.stack = append(c.stack, v)
			}
		}
	}

	c.reset()

	return found
}

// mark records v as visited and remembers it for O(touched) cleanup.
func (c *Checker) mark(v int) {
	c.color[v] = 1
	c.touched = append(c.touched, v)
}

// reset clears only the entries touched by the last call, avoiding an O(p)
// scan of the whole scratch buffer on every HasCycle invocation.
func (c *Checker) reset() {
	for _, v := range c.touched {
		c.color[v] = 0
	}
	c.touched = c.touched[:0]
}
