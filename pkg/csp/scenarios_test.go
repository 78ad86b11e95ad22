package csp

// Shared problem builders for the solver tests: the Australia map-coloring
// problem, N-queens and a few small graphs. Each builder returns a fresh
// problem so tests never share variable state.

// australia builds the classic three-color map over the seven Australian
// regions, with a binary all-different constraint per land border and a
// trivially-true unary constraint registering the island of Tasmania.
func australia() *Problem[string] {
	domain := []string{"Red", "Green", "Blue"}
	names := []string{"nt", "q", "nsw", "v", "t", "sa", "wa"}
	byName := NewVariablesFromNames(names, domain)

	borders := [][2]string{
		{"sa", "wa"}, {"sa", "nt"}, {"sa", "q"}, {"sa", "nsw"}, {"sa", "v"},
		{"wa", "nt"}, {"nt", "q"}, {"q", "nsw"}, {"nsw", "v"},
	}
	constraints := make([]*Constraint[string], 0, len(borders)+1)
	for _, border := range borders {
		constraints = append(constraints, MustConstraint(
			[]*Variable[string]{byName[border[0]], byName[border[1]]},
			AllDifferent[string],
		))
	}
	constraints = append(constraints, MustConstraint(
		[]*Variable[string]{byName["t"]},
		AlwaysSatisfied[string],
	))
	return MustProblem(constraints, byName)
}

// queensConstraint forbids two queens colDist columns apart from sharing a
// row or a diagonal. With fewer than two assigned values the pair cannot
// be refuted yet.
func queensConstraint(colDist int) Evaluator[int] {
	return func(assigned []int) bool {
		if len(assigned) < 2 {
			return true
		}
		diff := assigned[0] - assigned[1]
		if diff < 0 {
			diff = -diff
		}
		return assigned[0] != assigned[1] && diff != colDist
	}
}

// nQueens builds the N-queens problem: one variable per column holding the
// queen's row, one pairwise constraint per column pair.
func nQueens(n int) *Problem[int] {
	rows := make([]int, n)
	for i := range rows {
		rows[i] = i
	}
	queens := make([]*Variable[int], n)
	for i := range queens {
		queens[i] = NewVariable(rows)
	}

	var constraints []*Constraint[int]
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			constraints = append(constraints, MustConstraint(
				[]*Variable[int]{queens[i], queens[j]},
				queensConstraint(j-i),
			))
		}
	}
	return MustProblem(constraints, nil)
}

// divisibilityProblem builds the AC-3 divisibility scenario: x in {2,5},
// y in {2,4}, z in {2,5}, with z required to divide both x and y.
func divisibilityProblem() (*Problem[int], *Variable[int], *Variable[int], *Variable[int]) {
	divides := func(assigned []int) bool {
		if len(assigned) < 2 {
			return true
		}
		return assigned[0]%assigned[1] == 0
	}
	x := NewVariable([]int{2, 5})
	y := NewVariable([]int{2, 4})
	z := NewVariable([]int{2, 5})
	p := MustProblem([]*Constraint[int]{
		MustConstraint([]*Variable[int]{x, z}, divides),
		MustConstraint([]*Variable[int]{y, z}, divides),
	}, nil)
	return p, x, y, z
}

// chainProblem builds the tree-CSP scenario: a chain a-b-c-d with
// all-different on adjacent pairs over domains {1,2,3}.
func chainProblem() *Problem[int] {
	domain := []int{1, 2, 3}
	byName := NewVariablesFromNames([]string{"a", "b", "c", "d"}, domain)
	links := [][2]string{{"a", "b"}, {"b", "c"}, {"c", "d"}}
	constraints := make([]*Constraint[int], 0, len(links))
	for _, link := range links {
		constraints = append(constraints, MustConstraint(
			[]*Variable[int]{byName[link[0]], byName[link[1]]},
			AllDifferent[int],
		))
	}
	return MustProblem(constraints, byName)
}
