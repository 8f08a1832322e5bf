package match

import (
	"errors"
	"testing"
)

func TestCompile_Valid(t *testing.T) {
	p, err := Compile(`^([A-Z]) (\d+)$`, []string{"letter", "num"})
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	if got := p.Columns(); len(got) != 2 || got[0] != "letter" || got[1] != "num" {
		t.Errorf("Columns() = %v, want [letter num]", got)
	}
	if p.Expr() != `^([A-Z]) (\d+)$` {
		t.Errorf("Expr() = %q", p.Expr())
	}
}

func TestCompile_ArityMismatch(t *testing.T) {
	_, err := Compile(`^([A-Z]) (\d+)$`, []string{"a", "b", "c"})
	var aerr *ArityError
	if !errors.As(err, &aerr) {
		t.Fatalf("Compile() error = %v, want *ArityError", err)
	}
	if aerr.Groups != 2 || aerr.Columns != 3 {
		t.Errorf("ArityError = %+v, want Groups=2 Columns=3", aerr)
	}
}

func TestCompile_EmptyPattern(t *testing.T) {
	if _, err := Compile("", []string{"a"}); err == nil {
		t.Error("Compile() expected error for empty pattern")
	}
}

func TestCompile_NoColumns(t *testing.T) {
	if _, err := Compile(`(\d+)`, nil); err == nil {
		t.Error("Compile() expected error for missing columns")
	}
}

func TestCompile_EmptyColumnName(t *testing.T) {
	if _, err := Compile(`(\d+) (\d+)`, []string{"a", ""}); err == nil {
		t.Error("Compile() expected error for empty column name")
	}
}

func TestCompile_DuplicateColumnName(t *testing.T) {
	if _, err := Compile(`(\d+) (\d+)`, []string{"a", "a"}); err == nil {
		t.Error("Compile() expected error for duplicate column name")
	}
}

func TestCompile_InvalidRegex(t *testing.T) {
	if _, err := Compile(`([unclosed`, []string{"a"}); err == nil {
		t.Error("Compile() expected error for invalid regex")
	}
}

func TestCompile_NonCapturingGroupsDoNotCount(t *testing.T) {
	p, err := Compile(`(?:prefix )?(\w+)`, []string{"word"})
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	res := p.Match("prefix hello")
	if !res.OK() || res.Values[0] != "hello" {
		// (?:...) is non-capturing, only (\w+) produces a value
		t.Errorf("Match() = %+v", res)
	}
}
