// SPDX-License-Identifier: MIT

package orbit

import "fmt"

// walker encapsulates mutable BFS state.
type walker struct {
	perms [][]int
	opts  Options
	queue []int
	res   *Result
}

// Walk explores the orbit of start under perms.
func Walk(perms [][]int, n, start int, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := validate(perms, n); err != nil {
		return nil, err
	}
	if start < 0 || start >= n {
		return nil, fmt.Errorf("orbit.Walk: %d of %d: %w", start, n, ErrStartOutOfRange)
	}

	w := newWalker(perms, n, o)
	w.enqueue(start, 0, -1, -1)

	return w.res, w.loop()
}

func newWalker(perms [][]int, n int, o Options) *walker {
	w := &walker{
		perms: perms,
		opts:  o,
		queue: make([]int, 0, n),
		res: &Result{
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
			Via:    make([]int, n),
		},
	}
	for i := 0; i < n; i++ {
		w.res.Depth[i], w.res.Parent[i], w.res.Via[i] = -1, -1, -1
	}

	return w
}

func (w *walker) enqueue(atom, depth, parent, via int) {
	w.res.Depth[atom] = depth
	w.res.Parent[atom] = parent
	w.res.Via[atom] = via
	w.queue = append(w.queue, atom)
}

// loop processes the queue until empty or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		atom := w.queue[0]
		w.queue = w.queue[1:]
		depth := w.res.Depth[atom]
		w.res.Order = append(w.res.Order, atom)
		w.opts.OnVisit(atom, depth)

		for k, p := range w.perms {
			if !w.opts.FilterPermutation(k) {
				continue
			}
			if next := p[atom]; w.res.Depth[next] < 0 {
				w.enqueue(next, depth+1, atom, k)
			}
		}
	}

	return nil
}

// Partition returns rep with rep[i] the lowest atom index in the orbit of i.
func Partition(n int, perms [][]int, opts ...Option) ([]int, error) {
	if err := validate(perms, n); err != nil {
		return nil, err
	}
	rep := make([]int, n)
	for i := range rep {
		rep[i] = -1
	}
	for i := 0; i < n; i++ {
		if rep[i] >= 0 {
			continue
		}
		res, err := Walk(perms, n, i, opts...)
		if err != nil {
			return nil, err
		}
		// Seeds run in index order, so i is the orbit minimum.
		for _, m := range res.Order {
			rep[m] = i
		}
	}

	return rep, nil
}

// Classes groups atom indices by representative, ordered by representative.
func Classes(rep []int) [][]int {
	index := make(map[int]int)
	var out [][]int
	for i, r := range rep {
		k, ok := index[r]
		if !ok {
			k = len(out)
			index[r] = k
			out = append(out, nil)
		}
		out[k] = append(out[k], i)
	}

	return out
}

func validate(perms [][]int, n int) error {
	for k, p := range perms {
		if len(p) != n {
			return fmt.Errorf("orbit: permutation %d has %d entries, want %d: %w", k, len(p), n, ErrPermutationSize)
		}
		for _, j := range p {
			if j < 0 || j >= n {
				return fmt.Errorf("orbit: permutation %d entry %d: %w", k, j, ErrPermutationRange)
			}
		}
	}

	return nil
}
