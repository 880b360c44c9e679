package operations

import (
	"reflect"
	"testing"

	"RelAlgDb/internal/condition"
	r "RelAlgDb/internal/relation"
)

func employees() r.Relation {
	return r.New(
		r.NewRow("id", int64(1), "name", "Alice", "dept", "HR", "age", int64(30)),
		r.NewRow("id", int64(2), "name", "Bob", "dept", "Engineering", "age", int64(25)),
		r.NewRow("id", int64(3), "name", "Charlie", "dept", "Engineering", "age", int64(35)),
	)
}

func departments() r.Relation {
	return r.New(
		r.NewRow("dept", "HR", "manager", "Sarah"),
		r.NewRow("dept", "Engineering", "manager", "Alice"),
	)
}

func mustCondition(t *testing.T, s string) condition.Condition {
	t.Helper()
	cond, err := condition.Parse(s)
	if err != nil {
		t.Fatalf("Failed to parse condition %q: %v", s, err)
	}
	return cond
}

func names(rel r.Relation) []any {
	var out []any
	for _, row := range rel.Rows {
		v, _ := row.Get("name")
		out = append(out, v)
	}
	return out
}

func TestProject(t *testing.T) {
	got := Project(employees(), []string{"name", "age"})
	if got.Len() != 3 {
		t.Fatalf("Expected 3 rows, got %d", got.Len())
	}
	for _, row := range got.Rows {
		if !reflect.DeepEqual(row.Keys(), []string{"name", "age"}) {
			t.Errorf("Expected keys [name age], got %v", row.Keys())
		}
	}
}

func TestProjectMissingColumn(t *testing.T) {
	got := Project(employees(), []string{"name", "salary"})
	if keys := got.Rows[0].Keys(); !reflect.DeepEqual(keys, []string{"name"}) {
		t.Errorf("Expected missing column to be absent, got %v", keys)
	}
}

func TestProjectComposition(t *testing.T) {
	twice := Project(Project(employees(), []string{"id", "name", "age"}), []string{"age", "name"})
	once := Project(employees(), []string{"age", "name"})
	if !twice.Equal(once) {
		t.Errorf("Project(Project(e, superset), subset) = %v, want %v", twice.Rows, once.Rows)
	}
}

func TestSelect(t *testing.T) {
	got := Select(employees(), mustCondition(t, "dept=Engineering"))
	if want := []any{"Bob", "Charlie"}; !reflect.DeepEqual(names(got), want) {
		t.Errorf("Select names = %v, want %v", names(got), want)
	}
}

func TestSelectAllIsIdentity(t *testing.T) {
	e := employees()
	got := Select(e, mustCondition(t, "age>0"))
	if !got.Equal(e) {
		t.Errorf("Expected every row back in order, got %v", got.Rows)
	}
}

func TestRename(t *testing.T) {
	e := employees()
	got := Rename(e, "Staff")
	if got.Label != "Staff" {
		t.Errorf("Expected label Staff, got %q", got.Label)
	}
	if !got.Equal(e) {
		t.Errorf("Rename changed the rows")
	}
	if e.Label != "" {
		t.Errorf("Rename mutated its input")
	}
}

func TestUnion(t *testing.T) {
	e := employees()
	self := Union(e, e)
	if !self.Equal(e) {
		t.Errorf("Union(e, e) = %v, want e", self.Rows)
	}

	reordered := r.New(r.NewRow("age", int64(30), "dept", "HR", "name", "Alice", "id", int64(1)))
	got := Union(reordered, e)
	if got.Len() != 3 {
		t.Fatalf("Expected 3 rows, got %d", got.Len())
	}
	if keys := got.Rows[0].Keys(); keys[0] != "age" {
		t.Errorf("Expected the first occurrence to win, got %v", keys)
	}

	seen := map[string]bool{}
	for _, row := range Union(e, departments()).Rows {
		if seen[row.Key()] {
			t.Errorf("Duplicate row %v in union", row)
		}
		seen[row.Key()] = true
	}
}

func TestDifference(t *testing.T) {
	e := employees()
	eng := Select(e, mustCondition(t, "dept=Engineering"))
	got := Difference(e, eng)
	if want := []any{"Alice"}; !reflect.DeepEqual(names(got), want) {
		t.Errorf("Difference names = %v, want %v", names(got), want)
	}

	for _, row := range got.Rows {
		for _, other := range eng.Rows {
			if row.Equal(other) {
				t.Errorf("Row %v of the difference also appears in b", row)
			}
		}
	}

	if Difference(e, e).Len() != 0 {
		t.Errorf("Expected e - e to be empty")
	}
}

func TestProduct(t *testing.T) {
	e, d := employees(), departments()
	got := Product(e, d)
	if got.Len() != e.Len()*d.Len() {
		t.Fatalf("Expected %d rows, got %d", e.Len()*d.Len(), got.Len())
	}

	// dept collides; the right-hand value wins.
	first := got.Rows[0]
	if v, _ := first.Get("dept"); v != "HR" {
		t.Errorf("Expected dept HR, got %v", v)
	}
	second := got.Rows[1]
	if v, _ := second.Get("dept"); v != "Engineering" {
		t.Errorf("Expected dept Engineering from the right row, got %v", v)
	}
	if !reflect.DeepEqual(second.Keys(), []string{"id", "name", "dept", "age", "manager"}) {
		t.Errorf("Unexpected merged keys %v", second.Keys())
	}
}

func TestJoin(t *testing.T) {
	got := Join(employees(), departments())
	if got.Len() != 3 {
		t.Fatalf("Expected 3 rows, got %d", got.Len())
	}
	wantManagers := []any{"Sarah", "Alice", "Alice"}
	for i, row := range got.Rows {
		if v, _ := row.Get("manager"); v != wantManagers[i] {
			t.Errorf("Row %d manager = %v, want %v", i, v, wantManagers[i])
		}
	}
}

func TestJoinWithoutCommonColumnsIsProduct(t *testing.T) {
	a := r.New(r.NewRow("x", int64(1)), r.NewRow("x", int64(2)))
	b := r.New(r.NewRow("y", "a"), r.NewRow("y", "b"), r.NewRow("y", "c"))
	if got := Join(a, b); !got.Equal(Product(a, b)) {
		t.Errorf("Join without shared columns = %v, want product", got.Rows)
	}
}

func TestJoinStrictEquality(t *testing.T) {
	a := r.New(r.NewRow("k", int64(5), "a", "left"))
	b := r.New(r.NewRow("k", "5", "b", "right"))
	if got := Join(a, b); got.Len() != 0 {
		t.Errorf("Expected 5 and \"5\" not to join, got %v", got.Rows)
	}

	c := r.New(r.NewRow("k", 5.0, "c", "float"))
	if got := Join(a, c); got.Len() != 1 {
		t.Errorf("Expected int64(5) and 5.0 to join, got %v", got.Rows)
	}
}

func TestOperationsOnEmpty(t *testing.T) {
	empty := r.New()
	e := employees()

	cases := map[string]r.Relation{
		"project":     Project(empty, []string{"name"}),
		"select":      Select(empty, mustCondition(t, "age>1")),
		"rename":      Rename(empty, "x"),
		"difference":  Difference(empty, e),
		"product":     Product(e, empty),
		"join left":   Join(empty, e),
		"join right":  Join(e, empty),
		"union empty": Union(empty, empty),
	}
	for name, got := range cases {
		if got.Len() != 0 {
			t.Errorf("%s on an empty relation returned %d rows", name, got.Len())
		}
	}

	if got := Difference(e, empty); !got.Equal(e) {
		t.Errorf("e - empty = %v, want e", got.Rows)
	}
	if got := Union(empty, e); !got.Equal(e) {
		t.Errorf("empty ∪ e = %v, want e", got.Rows)
	}
}

func TestCommonColumns(t *testing.T) {
	if got := CommonColumns(employees(), departments()); !reflect.DeepEqual(got, []string{"dept"}) {
		t.Errorf("CommonColumns = %v", got)
	}
	if got := CommonColumns(r.New(), departments()); len(got) != 0 {
		t.Errorf("Expected no common columns with an empty relation, got %v", got)
	}
}

func TestInputsAreNotMutated(t *testing.T) {
	e, d := employees(), departments()
	before := e.Clone()
	Product(e, d)
	Join(e, d)
	Union(e, d)
	Project(e, []string{"name"})
	if !e.Equal(before) || !reflect.DeepEqual(e.Rows[0].Keys(), before.Rows[0].Keys()) {
		t.Errorf("An operation mutated its input")
	}
}

func TestLargeIntegerRowsStayDistinct(t *testing.T) {
	a := r.New(r.NewRow("id", int64(9007199254740993)))
	b := r.New(r.NewRow("id", int64(9007199254740992)))

	if got := Union(a, b); got.Len() != 2 {
		t.Errorf("Union kept %d rows, want 2", got.Len())
	}
	if got := Difference(a, b); got.Len() != 1 {
		t.Errorf("Difference kept %d rows, want 1", got.Len())
	}
	if got := Join(a, b); got.Len() != 0 {
		t.Errorf("Join produced %d rows, want 0", got.Len())
	}
	if got := Union(a, r.New(r.NewRow("id", 9007199254740992.0))); got.Len() != 2 {
		t.Errorf("Union with an integral float kept %d rows, want 2", got.Len())
	}
}
