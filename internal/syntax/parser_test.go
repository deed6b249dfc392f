package syntax

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-test/deep"

	"github.com/you-not-fish/tinyc/internal/diag"
)

// ----------------------------------------------------------------------------
// Test helpers

func parseFile(t *testing.T, src string) *File {
	t.Helper()
	f, err := ParseString("test.tny", src)
	if err != nil {
		t.Fatalf("Parse(%q): %v", src, err)
	}
	if f == nil {
		t.Fatal("Parse returned nil")
	}
	return f
}

func parseError(t *testing.T, src string) (*File, *diag.Error) {
	t.Helper()
	f, err := ParseString("test.tny", src)
	if err == nil {
		t.Fatalf("Parse(%q): expected an error", src)
	}
	e, ok := diag.As(err)
	if !ok {
		t.Fatalf("Parse(%q): error %v is not a *diag.Error", src, err)
	}
	return f, e
}

// stmts returns the statements of a sequence as a slice.
func stmts(s Stmt) []Stmt {
	var list []Stmt
	for ; s != nil; s = s.Next() {
		list = append(list, s)
	}
	return list
}

func stmtTypeName(s Stmt) string {
	switch s.(type) {
	case *IfStmt:
		return "IfStmt"
	case *RepeatStmt:
		return "RepeatStmt"
	case *AssignStmt:
		return "AssignStmt"
	case *ReadStmt:
		return "ReadStmt"
	case *WriteStmt:
		return "WriteStmt"
	}
	return "unknown"
}

// ----------------------------------------------------------------------------
// Statements

func TestParseStatements(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		kinds []string
	}{
		{"assign", "x := 1", []string{"AssignStmt"}},
		{"read", "read x", []string{"ReadStmt"}},
		{"write", "write x + 1", []string{"WriteStmt"}},
		{"if", "if x < 1 then write x end", []string{"IfStmt"}},
		{"if else", "if x < 1 then write x else write 0 end", []string{"IfStmt"}},
		{"repeat", "repeat x := x - 1 until x = 0", []string{"RepeatStmt"}},
		{"sequence", "read x; x := x * 2; write x", []string{"ReadStmt", "AssignStmt", "WriteStmt"}},
		{"trailing semi", "read x;", []string{"ReadStmt"}},
		{"trailing semi before end", "if (a < 0) then a := a + 1; end", []string{"IfStmt"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := parseFile(t, tt.src)
			list := stmts(f.Body)
			if len(list) != len(tt.kinds) {
				t.Fatalf("got %d statements, want %d", len(list), len(tt.kinds))
			}
			for i, s := range list {
				if got := stmtTypeName(s); got != tt.kinds[i] {
					t.Errorf("statement %d: got %s, want %s", i, got, tt.kinds[i])
				}
			}
		})
	}
}

func TestParseIfStmt(t *testing.T) {
	f := parseFile(t, "if a < 0 then read b; write b else write a end")

	s, ok := f.Body.(*IfStmt)
	if !ok {
		t.Fatalf("got %T, want *IfStmt", f.Body)
	}
	if got := ExprString(s.Cond); got != "(a<0)" {
		t.Errorf("Cond = %s, want (a<0)", got)
	}
	if n := len(stmts(s.Then)); n != 2 {
		t.Errorf("Then has %d statements, want 2", n)
	}
	if n := len(stmts(s.Else)); n != 1 {
		t.Errorf("Else has %d statements, want 1", n)
	}
	if s.Next() != nil {
		t.Error("IfStmt should have no sibling")
	}
}

func TestParseRepeatStmt(t *testing.T) {
	f := parseFile(t, "repeat fact := fact * x; x := x - 1 until x = 0")

	s, ok := f.Body.(*RepeatStmt)
	if !ok {
		t.Fatalf("got %T, want *RepeatStmt", f.Body)
	}
	body := stmts(s.Body)
	if len(body) != 2 {
		t.Fatalf("Body has %d statements, want 2", len(body))
	}
	if a := body[0].(*AssignStmt); a.Name != "fact" || ExprString(a.X) != "(fact*x)" {
		t.Errorf("body[0] = %s := %s, want fact := (fact*x)", a.Name, ExprString(a.X))
	}
	if got := ExprString(s.Cond); got != "(x=0)" {
		t.Errorf("Cond = %s, want (x=0)", got)
	}
}

func TestParseReadWrite(t *testing.T) {
	f := parseFile(t, "read count; write count")
	list := stmts(f.Body)

	if r := list[0].(*ReadStmt); r.Name != "count" {
		t.Errorf("ReadStmt.Name = %q, want %q", r.Name, "count")
	}
	if w := list[1].(*WriteStmt); ExprString(w.X) != "count" {
		t.Errorf("WriteStmt.X = %s, want count", ExprString(w.X))
	}
}

// ----------------------------------------------------------------------------
// Expressions

func parseExpr(t *testing.T, src string) Expr {
	t.Helper()
	f := parseFile(t, "write "+src)
	return f.Body.(*WriteStmt).X
}

func TestParseExpressions(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"1", "1"},
		{"x", "x"},
		{"(x)", "x"},
		{"((42))", "42"},
		{"a + b", "(a+b)"},
		{"1 * 1", "(1*1)"},
		{"(1 + 2) * rhs", "((1+2)*rhs)"},
		{"a1 * 5 / (a + a1)", "((a1*5)/(a+a1))"},
		{"x < y + 1", "(x<(y+1))"},
		{"x + 1 = y * 2", "((x+1)=(y*2))"},
		{"(a < b) = (c < d)", "((a<b)=(c<d))"},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			if got := ExprString(parseExpr(t, tt.src)); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestParsePrecedence(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		// left-associative chains
		{"1 + 2 - 3", "((1+2)-3)"},
		{"1 - 2 - 3 - 4", "(((1-2)-3)-4)"},
		{"8 / 4 / 2", "((8/4)/2)"},
		{"2 * 3 / 4 * 5", "(((2*3)/4)*5)"},

		// multiplication binds tighter
		{"2 + 3 * 4", "(2+(3*4))"},
		{"2 * 3 + 4", "((2*3)+4)"},
		{"1 + 2 * 3 - 4 / 2", "((1+(2*3))-(4/2))"},

		// parentheses override
		{"(2 + 3) * 4", "((2+3)*4)"},
		{"1 - (2 - 3)", "(1-(2-3))"},

		// comparison binds loosest
		{"1 + 2 < 3 * 4", "((1+2)<(3*4))"},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			if got := ExprString(parseExpr(t, tt.src)); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestParsePlusTimesShape(t *testing.T) {
	x := parseExpr(t, "2 + 3 * 4")

	root, ok := x.(*Operation)
	if !ok || root.Op != Add {
		t.Fatalf("root = %s, want + operation", ExprString(x))
	}
	right, ok := root.Y.(*Operation)
	if !ok || right.Op != Mul {
		t.Fatalf("root.Y = %s, want * operation", ExprString(root.Y))
	}
	if lit := root.X.(*BasicLit); lit.Value != 2 {
		t.Errorf("root.X = %d, want 2", lit.Value)
	}
}

func TestParseLiteralValue(t *testing.T) {
	x := parseExpr(t, "007")
	lit, ok := x.(*BasicLit)
	if !ok {
		t.Fatalf("got %T, want *BasicLit", x)
	}
	if lit.Value != 7 || lit.Lit != "007" {
		t.Errorf("got Value=%d Lit=%q, want 7 %q", lit.Value, lit.Lit, "007")
	}
}

func TestParseNodePositions(t *testing.T) {
	src := "read x;\nif x < 10 then\n  x := x + 1\nend"
	f := parseFile(t, src)
	list := stmts(f.Body)

	if p := list[0].Pos(); p.Line() != 1 || p.Col() != 1 {
		t.Errorf("ReadStmt at %s, want 1:1", p)
	}
	ifs := list[1].(*IfStmt)
	if p := ifs.Pos(); p.Line() != 2 || p.Col() != 1 {
		t.Errorf("IfStmt at %s, want 2:1", p)
	}
	if p := ifs.Cond.Pos(); p.Line() != 2 || p.Col() != 6 {
		t.Errorf("Cond (operator) at %s, want 2:6", p)
	}
	assign := ifs.Then.(*AssignStmt)
	if p := assign.Pos(); p.Line() != 3 || p.Col() != 3 {
		t.Errorf("AssignStmt at %s, want 3:3", p)
	}
	if p := assign.X.(*Operation).X.Pos(); p.Line() != 3 || p.Col() != 8 {
		t.Errorf("operand at %s, want 3:8", p)
	}
}

// ----------------------------------------------------------------------------
// Errors

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		stage    diag.Stage
		kind     diag.Kind
		line     int
		expected string
		found    string
	}{
		{"empty input", "", diag.Syntax, diag.Unexpected, 1, "statement", "EOF"},
		{"missing expression", "x :=", diag.Syntax, diag.Unexpected, 1, "expression", "EOF"},
		{"missing then", "if x < 1 write x end", diag.Syntax, diag.Unexpected, 1, "then", "write"},
		{"missing end", "if x < 1 then write x", diag.Syntax, diag.Unexpected, 1, "end", "EOF"},
		{"missing until", "repeat x := 1", diag.Syntax, diag.Unexpected, 1, "until", "EOF"},
		{"missing assign", "x 1", diag.Syntax, diag.Unexpected, 1, ":=", "1"},
		{"missing rparen", "write (1 + 2", diag.Syntax, diag.Unexpected, 1, ")", "EOF"},
		{"read number", "read 5", diag.Syntax, diag.Unexpected, 1, "identifier", "5"},
		{"trailing tokens", "x := 1 y := 2", diag.Syntax, diag.Unexpected, 1, "EOF", "y"},
		{"double comparison", "write 1 < 2 < 3", diag.Syntax, diag.Unexpected, 1, "EOF", "<"},
		{"keyword as statement", "then", diag.Syntax, diag.Unexpected, 1, "statement", "then"},
		{"lone semicolon", ";", diag.Syntax, diag.Unexpected, 1, "statement", ";"},
		{"double semicolon", "read x;; read y", diag.Syntax, diag.Unexpected, 1, "statement", ";"},
		{"error on line 3", "read x;\nread y;\nwrite", diag.Syntax, diag.Unexpected, 3, "expression", "EOF"},

		{"bad char", "x := 1 # 2", diag.Lexical, diag.BadChar, 1, "EOF", "#"},
		{"bad assign", "x : 1", diag.Lexical, diag.BadAssign, 1, ":=", ":"},
		{"unterminated comment", "x := 1;\n{ oops", diag.Lexical, diag.UnterminatedComment, 2, "statement", "{"},

		{"number out of range", "x := 99999999999999999999999", diag.Syntax, diag.BadNumber, 1, "", "99999999999999999999999"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, e := parseError(t, tt.src)
			if e.Stage != tt.stage {
				t.Errorf("Stage = %v, want %v", e.Stage, tt.stage)
			}
			if e.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", e.Kind, tt.kind)
			}
			if e.Line != tt.line {
				t.Errorf("Line = %d, want %d", e.Line, tt.line)
			}
			if e.Expected != tt.expected {
				t.Errorf("Expected = %q, want %q", e.Expected, tt.expected)
			}
			if e.Found != tt.found {
				t.Errorf("Found = %q, want %q", e.Found, tt.found)
			}
		})
	}
}

func TestParseErrorMessages(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"", `test.tny:1:1: syntax error: expected "statement", found EOF`},
		{"x 1", `test.tny:1:3: syntax error: expected ":=", found "1"`},
		{"x := 1 @", `test.tny:1:8: lexical error: unexpected character "@"`},
		{"x :- 1", `test.tny:1:3: lexical error: expected ":=", found ":"`},
		{"{", `test.tny:1:1: lexical error: comment not terminated`},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			_, err := ParseString("test.tny", tt.src)
			if err == nil {
				t.Fatal("expected an error")
			}
			if got := err.Error(); got != tt.want {
				t.Errorf("got  %s\nwant %s", got, tt.want)
			}
		})
	}
}

func TestParsePartialTree(t *testing.T) {
	f, e := parseError(t, "read x; write x; if x then")
	if e.Line != 1 {
		t.Errorf("Line = %d, want 1", e.Line)
	}
	if f == nil {
		t.Fatal("expected a partial tree")
	}
	list := stmts(f.Body)
	if len(list) != 3 {
		t.Fatalf("partial tree has %d statements, want 3", len(list))
	}
	if _, ok := list[2].(*IfStmt); !ok {
		t.Errorf("last statement is %T, want *IfStmt", list[2])
	}
	if !f.Release() {
		t.Error("Release() of a partial tree = false, want true")
	}
}

// ----------------------------------------------------------------------------
// Tree ownership

func TestFileRelease(t *testing.T) {
	f := parseFile(t, "read x; if x < 1 then write x else x := x + 1 end")
	if f.NumNodes() == 0 {
		t.Fatal("NumNodes() = 0 before release")
	}

	ifs := stmts(f.Body)[1].(*IfStmt)

	if !f.Release() {
		t.Fatal("first Release() = false, want true")
	}
	if f.Body != nil {
		t.Error("Body not cleared by Release")
	}
	if f.NumNodes() != 0 {
		t.Errorf("NumNodes() = %d after release, want 0", f.NumNodes())
	}
	if ifs.Cond != nil || ifs.Then != nil || ifs.Else != nil || ifs.Next() != nil {
		t.Error("IfStmt still linked after release")
	}

	if f.Release() {
		t.Error("second Release() = true, want false")
	}
}

func TestParseIdempotent(t *testing.T) {
	srcs := []string{
		"read x; if 0 < x then fact := 1; repeat fact := fact * x; x := x - 1 until x = 0; write fact end",
		"a1 := (186 - 23) / 2; a2 := a1 * 5 / (a + a1)",
		"x := 1 + 2 - 3",
	}

	for _, src := range srcs {
		first := parseFile(t, src)
		want := Tree(first)
		first.Release()

		second := parseFile(t, src)
		if diff := deep.Equal(Tree(second), want); diff != nil {
			t.Errorf("re-parse of %q differs: %v", src, diff)
		}
	}
}

func TestParseIndependentParsers(t *testing.T) {
	a := NewParser("a.tny", []byte("x := 1"))
	b := NewParser("b.tny", []byte("y := 2 +"))

	fb, errB := b.Parse()
	fa, errA := a.Parse()

	if errA != nil {
		t.Errorf("a: unexpected error %v", errA)
	}
	if errB == nil || !strings.HasPrefix(errB.Error(), "b.tny:") {
		t.Errorf("b: error = %v, want b.tny diagnostic", errB)
	}
	if fa.Body.(*AssignStmt).Name != "x" || fb.Body.(*AssignStmt).Name != "y" {
		t.Error("parsers share state")
	}
}

// ----------------------------------------------------------------------------
// Printing

func TestFprint(t *testing.T) {
	f := parseFile(t, "read x;\nwrite x * 2")

	var buf bytes.Buffer
	Fprint(&buf, f)

	want := `File test.tny:1:1
  Body:
    ReadStmt test.tny:1:1 x
    WriteStmt test.tny:2:1
      Operation test.tny:2:9 *
        X:
          Name test.tny:2:7 "x"
        Y:
          BasicLit test.tny:2:11 2
`
	if got := buf.String(); got != want {
		t.Errorf("Fprint mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestFprintJSONAndYAML(t *testing.T) {
	f := parseFile(t, "x := 1")

	var js bytes.Buffer
	if err := FprintJSON(&js, f); err != nil {
		t.Fatal(err)
	}
	for _, s := range []string{`"type": "AssignStmt"`, `"name": "x"`, `"value": 1`} {
		if !strings.Contains(js.String(), s) {
			t.Errorf("JSON output missing %s:\n%s", s, js.String())
		}
	}

	var ys bytes.Buffer
	if err := FprintYAML(&ys, f); err != nil {
		t.Fatal(err)
	}
	for _, s := range []string{"type: AssignStmt", "name: x", "value: 1"} {
		if !strings.Contains(ys.String(), s) {
			t.Errorf("YAML output missing %s:\n%s", s, ys.String())
		}
	}
}

func FuzzParse(f *testing.F) {
	seeds := []string{
		"read x; if 0 < x then write x end",
		"repeat x := x - 1 until x = 0",
		"write (1 + 2) * 3",
		"if x then",
		"{",
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, src string) {
		file, err := ParseString("fuzz", src)
		if file == nil {
			t.Fatal("Parse returned nil file")
		}
		if err != nil {
			if _, ok := diag.As(err); !ok {
				t.Fatalf("error %v is not a *diag.Error", err)
			}
		}
		file.Release()
	})
}
