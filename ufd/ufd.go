package ufd

// UFD is a union-find structure over the fixed element range [0, n).
// The zero value is unusable; construct with New.
type UFD struct {
	parent  []int
	rank    []int
	classes int
}

// New constructs a UFD with n singleton classes. n may be zero.
// Complexity: O(n) time and memory.
func New(n int) *UFD {
	u := &UFD{
		parent: make([]int, n),
		rank:   make([]int, n),
	}
	u.Reset()

	return u
}

// NumberOfElements returns the fixed element count n.
// Complexity: O(1).
func (u *UFD) NumberOfElements() int { return len(u.parent) }

// NumberOfClasses returns the current number of disjoint classes K.
// It strictly decreases only through Merge and is restored by Reset.
// Complexity: O(1).
func (u *UFD) NumberOfClasses() int { return u.classes }

// Reset returns every element to its own singleton class. No memory is
// reallocated, so Reset is safe to call once per contraction round.
// Complexity: O(n).
func (u *UFD) Reset() {
	for i := range u.parent {
		u.parent[i] = i
		u.rank[i] = 0
	}
	u.classes = len(u.parent)
}

// Find returns the representative of x's class, compressing the path
// by pointing each visited node at its grandparent.
// Complexity: amortized near-O(1).
func (u *UFD) Find(x int) int {
	for u.parent[x] != x {
		u.parent[x] = u.parent[u.parent[x]]
		x = u.parent[x]
	}

	return x
}

// Merge unites the classes of a and b using union by rank.
// Merging elements already in one class is a no-op.
// Complexity: amortized near-O(1).
func (u *UFD) Merge(a, b int) {
	rootA := u.Find(a)
	rootB := u.Find(b)
	if rootA == rootB {
		return
	}
	// Attach the smaller-rank tree under the larger-rank root.
	if u.rank[rootA] < u.rank[rootB] {
		u.parent[rootA] = rootB
	} else {
		u.parent[rootB] = rootA
		if u.rank[rootA] == u.rank[rootB] {
			u.rank[rootA]++
		}
	}
	u.classes--
}

// DenseRelabeling returns a bijection from the K class representatives
// to [0, K). Dense ids are assigned in first-touch order of a linear
// scan over [0, n), so the class containing the smallest element gets
// id 0, the class containing the smallest element not in it gets id 1,
// and so on. Deterministic for a given merge history.
// Complexity: O(n).
func (u *UFD) DenseRelabeling() map[int]int {
	toDense := make(map[int]int, u.classes)
	next := 0
	for i := range u.parent {
		root := u.Find(i)
		if _, seen := toDense[root]; !seen {
			toDense[root] = next
			next++
		}
	}

	return toDense
}
