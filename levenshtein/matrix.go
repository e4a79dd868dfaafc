package levenshtein

import "github.com/katalvlaran/seqmetric/sequence"

// arena is the (n+1)x(m+1) DP table stored row-major in one buffer.
// Cell (i, j) holds the distance between a[:i] and b[:j].
type arena struct {
	n, m   int
	stride int
	cells  []int
}

func newArena(n, m int) *arena {
	d := &arena{n: n, m: m, stride: m + 1, cells: make([]int, (n+1)*(m+1))}
	for i := 0; i <= n; i++ {
		d.cells[i*d.stride] = i
	}
	for j := 0; j <= m; j++ {
		d.cells[j] = j
	}

	return d
}

func (d *arena) at(i, j int) int { return d.cells[i*d.stride+j] }

// relax computes cell (i, j) from its three already-filled neighbours.
func (d *arena) relax(i, j int, same bool) {
	k := i*d.stride + j
	diag := d.cells[k-d.stride-1]
	if same {
		d.cells[k] = diag
		return
	}
	d.cells[k] = 1 + min(d.cells[k-d.stride], d.cells[k-1], diag)
}

// fillRows fills the interior row by row.
func fillRows[T any](d *arena, a, b sequence.Sequence[T], eq sequence.EqualFunc[T]) {
	for i := 1; i <= d.n; i++ {
		ai := a.At(i - 1)
		for j := 1; j <= d.m; j++ {
			d.relax(i, j, eq(ai, b.At(j-1)))
		}
	}
}

// backtrace walks a filled arena from (n, m) back to (0, 0) and returns the
// edit script in forward order. Matches are preferred, then substitutions,
// deletions and finally insertions.
func backtrace[T any](d *arena, a, b sequence.Sequence[T], eq sequence.EqualFunc[T]) []Op {
	script := make([]Op, 0, max(d.n, d.m))
	i, j := d.n, d.m
	for i > 0 || j > 0 {
		cur := d.at(i, j)
		switch {
		case i > 0 && j > 0 && eq(a.At(i-1), b.At(j-1)):
			script = append(script, Op{Kind: Match, I: i - 1, J: j - 1})
			i, j = i-1, j-1
		case i > 0 && j > 0 && cur == d.at(i-1, j-1)+1:
			script = append(script, Op{Kind: Substitute, I: i - 1, J: j - 1})
			i, j = i-1, j-1
		case i > 0 && cur == d.at(i-1, j)+1:
			script = append(script, Op{Kind: Delete, I: i - 1, J: j})
			i--
		default:
			script = append(script, Op{Kind: Insert, I: i, J: j - 1})
			j--
		}
	}

	// reverse in place
	for l, r := 0, len(script)-1; l < r; l, r = l+1, r-1 {
		script[l], script[r] = script[r], script[l]
	}

	return script
}

// borderScript is the script when one side is empty: delete all of a or insert all of b.
func borderScript(n, m int) []Op {
	if n == 0 && m == 0 {
		return []Op{}
	}
	script := make([]Op, 0, n+m)
	for i := 0; i < n; i++ {
		script = append(script, Op{Kind: Delete, I: i, J: 0})
	}
	for j := 0; j < m; j++ {
		script = append(script, Op{Kind: Insert, I: 0, J: j})
	}

	return script
}
