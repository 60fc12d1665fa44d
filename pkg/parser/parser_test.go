package parser

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"brewin/interpreter-go/pkg/ast"
)

// astJSON renders a node tree through its JSON encoding so trees built with
// the ast helpers can be compared structurally against parser output.
func astJSON(t *testing.T, node any) string {
	t.Helper()
	data, err := json.MarshalIndent(node, "", "  ")
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return string(data)
}

func parse(t *testing.T, source string) *ast.Program {
	t.Helper()
	program, err := ParseProgram(source)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	return program
}

func wantTree(t *testing.T, source string, want *ast.Program) {
	t.Helper()
	got := parse(t, source)
	if diff := cmp.Diff(astJSON(t, want), astJSON(t, got)); diff != "" {
		t.Fatalf("ast mismatch (-want +got):\n%s", diff)
	}
}

func TestParseEmptyMain(t *testing.T) {
	wantTree(t, `def main() { }`,
		ast.Prog(ast.Fn("main", nil)))
}

func TestParseParamsWithRefs(t *testing.T) {
	wantTree(t, `def fv(ai, &bo, cs) { }`,
		ast.Prog(ast.Fn("fv", ast.Params(ast.P("ai"), ast.RefP("bo"), ast.P("cs")))))
}

func TestParseVarAndAssignment(t *testing.T) {
	wantTree(t, `
	def main() {
		var xi;
		bvar yi;
		xi = 3;
		oo.f.xi = xi;
	}`,
		ast.Prog(ast.Fn("main", nil,
			ast.Var("xi"),
			ast.BVar("yi"),
			ast.Assign("xi", ast.Int(3)),
			ast.Assign("oo.f.xi", ast.Name("xi")),
		)))
}

func TestParsePrecedence(t *testing.T) {
	// 1 + 2 * 3 == 7 && !done parses as ((1 + (2*3)) == 7) && (!done)
	wantTree(t, `def main() { print(1 + 2 * 3 == 7 && !doneb); }`,
		ast.Prog(ast.Fn("main", nil,
			ast.CallExpr("print",
				ast.Bin("&&",
					ast.Bin("==",
						ast.Bin("+", ast.Int(1), ast.Bin("*", ast.Int(2), ast.Int(3))),
						ast.Int(7)),
					ast.Not(ast.Name("doneb")))),
		)))
}

func TestParseLeftAssociativity(t *testing.T) {
	wantTree(t, `def main() { print(10 - 3 - 2); }`,
		ast.Prog(ast.Fn("main", nil,
			ast.CallExpr("print",
				ast.Bin("-", ast.Bin("-", ast.Int(10), ast.Int(3)), ast.Int(2))),
		)))
}

func TestParseGroupingOverridesPrecedence(t *testing.T) {
	wantTree(t, `def main() { print((1 + 2) * 3); }`,
		ast.Prog(ast.Fn("main", nil,
			ast.CallExpr("print",
				ast.Bin("*", ast.Bin("+", ast.Int(1), ast.Int(2)), ast.Int(3))),
		)))
}

func TestParseIfElseWhile(t *testing.T) {
	wantTree(t, `
	def main() {
		while (xi < 10) {
			if (xi == 5) {
				print("half");
			} else {
				xi = xi + 1;
			}
		}
	}`,
		ast.Prog(ast.Fn("main", nil,
			ast.WhileStmt(ast.Bin("<", ast.Name("xi"), ast.Int(10)),
				ast.IfElse(ast.Bin("==", ast.Name("xi"), ast.Int(5)),
					ast.Stmts(ast.CallExpr("print", ast.Str("half"))),
					ast.Stmts(ast.Assign("xi", ast.Bin("+", ast.Name("xi"), ast.Int(1)))))),
		)))
}

func TestParseLiteralsAndNew(t *testing.T) {
	wantTree(t, `
	def main() {
		oo = @;
		oo = nil;
		bb = true;
		bb = false;
		ss = "hi";
	}`,
		ast.Prog(ast.Fn("main", nil,
			ast.Assign("oo", ast.Obj()),
			ast.Assign("oo", ast.Nil()),
			ast.Assign("bb", ast.Bool(true)),
			ast.Assign("bb", ast.Bool(false)),
			ast.Assign("ss", ast.Str("hi")),
		)))
}

func TestParseConversions(t *testing.T) {
	wantTree(t, `def main() { xi = int(inputs()); ss = str(5); bb = bool(1); }`,
		ast.Prog(ast.Fn("main", nil,
			ast.Assign("xi", ast.Conv("int", ast.CallExpr("inputs"))),
			ast.Assign("ss", ast.Conv("str", ast.Int(5))),
			ast.Assign("bb", ast.Conv("bool", ast.Int(1))),
		)))
}

func TestParseMethodCallAndQualifiedNames(t *testing.T) {
	wantTree(t, `def main() { oo.inner.runv(1); print(oo.inner.xi); }`,
		ast.Prog(ast.Fn("main", nil,
			ast.CallExpr("oo.inner.runv", ast.Int(1)),
			ast.CallExpr("print", ast.Name("oo.inner.xi")),
		)))
}

func TestParseLambda(t *testing.T) {
	wantTree(t, `def main() { gf = lambda addi(xi, &yi) { return xi + yi; }; }`,
		ast.Prog(ast.Fn("main", nil,
			ast.Assign("gf",
				ast.Lam("addi", ast.Params(ast.P("xi"), ast.RefP("yi")),
					ast.Ret(ast.Bin("+", ast.Name("xi"), ast.Name("yi"))))),
		)))
}

func TestParseInterface(t *testing.T) {
	wantTree(t, `
	interface P {
		xi;
		movev(di, &eo);
	}
	def main() { }`,
		ast.ProgIfaces(
			[]*ast.InterfaceDecl{
				ast.Iface("P", ast.IFld("xi"), ast.IMeth("movev", ast.P("di"), ast.RefP("eo"))),
			},
			ast.Fn("main", nil)))
}

func TestParseReturnForms(t *testing.T) {
	wantTree(t, `
	def fi() {
		return;
	}
	def gi() {
		return 5;
	}`,
		ast.Prog(
			ast.Fn("fi", nil, ast.RetVoid()),
			ast.Fn("gi", nil, ast.Ret(ast.Int(5))),
		))
}

func TestParseUnaryMinusBindsTighterThanBinary(t *testing.T) {
	wantTree(t, `def main() { print(-3 + 4); }`,
		ast.Prog(ast.Fn("main", nil,
			ast.CallExpr("print", ast.Bin("+", ast.Neg(ast.Int(3)), ast.Int(4))),
		)))
}

func TestParseErrors(t *testing.T) {
	bad := []struct {
		name   string
		source string
	}{
		{"missing semicolon", `def main() { var xi }`},
		{"missing paren", `def main( { }`},
		{"statement outside function", `var xi;`},
		{"missing condition parens", `def main() { if xi { } }`},
		{"dangling else", `def main() { else { } }`},
		{"unclosed brace", `def main() {`},
		{"assignment without rhs", `def main() { xi = ; }`},
	}
	for _, tc := range bad {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseProgram(tc.source); err == nil {
				t.Fatalf("expected parse error for %q", tc.source)
			}
		})
	}
}
