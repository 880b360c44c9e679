package operations

import (
	"RelAlgDb/internal/common"
	"RelAlgDb/internal/condition"
	r "RelAlgDb/internal/relation"
)

// Every operation returns a fresh relation and leaves its inputs untouched.

// Project restricts every row to columns, in the given order. Columns a row
// does not have are left out of that row.
func Project(rel r.Relation, columns []string) r.Relation {
	rows := make([]r.Row, 0, len(rel.Rows))
	for _, row := range rel.Rows {
		var out r.Row
		for _, col := range columns {
			if v, ok := row.Get(col); ok {
				out.Set(col, v)
			}
		}
		rows = append(rows, out)
	}
	return r.New(rows...)
}

// Select keeps the rows for which cond holds, in order.
func Select(rel r.Relation, cond condition.Condition) r.Relation {
	rows := make([]r.Row, 0, len(rel.Rows))
	for _, row := range rel.Rows {
		if cond.Evaluate(row) {
			rows = append(rows, row.Clone())
		}
	}
	return r.New(rows...)
}

// Rename attaches label to a copy of rel. Rows are unchanged.
func Rename(rel r.Relation, label string) r.Relation {
	out := rel.Clone()
	out.Label = label
	return out
}

// Union concatenates a and b and drops structural duplicates, keeping the
// first occurrence.
func Union(a, b r.Relation) r.Relation {
	seen := make(map[string]struct{}, len(a.Rows)+len(b.Rows))
	rows := make([]r.Row, 0, len(a.Rows)+len(b.Rows))
	for _, src := range [][]r.Row{a.Rows, b.Rows} {
		for _, row := range src {
			key := row.Key()
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			rows = append(rows, row.Clone())
		}
	}
	return r.New(rows...)
}

// Difference keeps the rows of a that match no row of b.
func Difference(a, b r.Relation) r.Relation {
	exclude := make(map[string]struct{}, len(b.Rows))
	for _, row := range b.Rows {
		exclude[row.Key()] = struct{}{}
	}

	rows := make([]r.Row, 0, len(a.Rows))
	for _, row := range a.Rows {
		if _, ok := exclude[row.Key()]; !ok {
			rows = append(rows, row.Clone())
		}
	}
	return r.New(rows...)
}

// Product pairs every row of a with every row of b. On a column collision b's
// value wins.
func Product(a, b r.Relation) r.Relation {
	rows := make([]r.Row, 0, len(a.Rows)*len(b.Rows))
	for _, ar := range a.Rows {
		for _, br := range b.Rows {
			rows = append(rows, ar.Merge(br))
		}
	}
	return r.New(rows...)
}

// Join is the natural join of a and b on the columns their first rows share.
// With no shared columns it is the product.
func Join(a, b r.Relation) r.Relation {
	shared := CommonColumns(a, b)

	var rows []r.Row
	for _, ar := range a.Rows {
		for _, br := range b.Rows {
			if matches(ar, br, shared) {
				rows = append(rows, ar.Merge(br))
			}
		}
	}
	return r.New(rows...)
}

// CommonColumns lists the columns of a's first row that b's first row also
// has, in a's order.
func CommonColumns(a, b r.Relation) []string {
	colsB := make(map[string]struct{})
	for _, col := range b.Columns() {
		colsB[col] = struct{}{}
	}

	var shared []string
	for _, col := range a.Columns() {
		if _, ok := colsB[col]; ok {
			shared = append(shared, col)
		}
	}
	return shared
}

func matches(ar, br r.Row, columns []string) bool {
	for _, col := range columns {
		av, _ := ar.Get(col)
		bv, _ := br.Get(col)
		if !common.StrictEqual(av, bv) {
			return false
		}
	}
	return true
}
