package condition

import (
	"errors"
	"testing"

	"RelAlgDb/internal/common"
	"RelAlgDb/internal/relation"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input   string
		column  string
		op      string
		literal relation.Value
	}{
		{"dept=Engineering", "dept", "=", "Engineering"},
		{" age >= 30 ", "age", ">=", int64(30)},
		{"name != 'Bob'", "name", "!=", "Bob"},
		{`name="Alice"`, "name", "=", "Alice"},
		{"name='Alice\"", "name", "=", "'Alice\""},
		{"age<3.5", "age", "<", "3.5"},
		{"age==3", "age", "==", int64(3)},
		{"note=a=b", "note", "=", "a=b"},
	}

	for _, tt := range tests {
		cond, err := Parse(tt.input)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", tt.input, err)
		}
		if cond.Column != tt.column || cond.Op != tt.op || cond.Literal != tt.literal {
			t.Errorf("Parse(%q) = {%q %q %#v}, want {%q %q %#v}",
				tt.input, cond.Column, cond.Op, cond.Literal, tt.column, tt.op, tt.literal)
		}
	}
}

func TestParseMalformed(t *testing.T) {
	for _, input := range []string{"age", "=30", "age>", ""} {
		_, err := Parse(input)
		var perr *common.ParseError
		if !errors.As(err, &perr) {
			t.Errorf("Parse(%q) error = %v, want ParseError", input, err)
			continue
		}
		if perr.Fragment != input {
			t.Errorf("Parse(%q) fragment = %q", input, perr.Fragment)
		}
	}
}

func TestEvaluate(t *testing.T) {
	row := relation.NewRow("name", "Bob", "dept", "Engineering", "age", int64(25), "code", "5")

	tests := []struct {
		condition string
		want      bool
	}{
		{"dept=Engineering", true},
		{"dept!=Engineering", false},
		{"age=25", true},
		{"age='25'", true},
		{"code=5", true},
		{"age>20", true},
		{"age>=25", true},
		{"age<25", false},
		{"age<=25", true},
		{"name>Alice", true},
		{"name<Alice", false},
		{"name>5", false},
		{"name<5", false},
		{"missing=5", false},
		{"missing!=5", true},
		{"missing>5", false},
		{"age==25", false},
		{"age=>25", false},
	}

	for _, tt := range tests {
		got, err := Evaluate(tt.condition, row)
		if err != nil {
			t.Fatalf("Evaluate(%q) failed: %v", tt.condition, err)
		}
		if got != tt.want {
			t.Errorf("Evaluate(%q) = %v, want %v", tt.condition, got, tt.want)
		}
	}
}

func TestEvaluateMixedOrdering(t *testing.T) {
	// Text that reads as a number orders numerically against a number literal.
	row := relation.NewRow("v", "10")
	got, err := Evaluate("v>9", row)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if !got {
		t.Errorf("Expected \"10\" > 9 to hold")
	}

	// Two texts order lexicographically.
	got, _ = Evaluate("v>'9'", row)
	if got {
		t.Errorf("Expected \"10\" > \"9\" to be false lexicographically")
	}
}
