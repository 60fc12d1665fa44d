package interpreter

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestOverloadResolutionByArityAndType(t *testing.T) {
	outputs := mustRun(t, `
	def fv(xi) {
		print("int: ", xi);
	}
	def fv(xs) {
		print("string: ", xs);
	}
	def fv(xi, yi) {
		print("pair: ", xi + yi);
	}
	def main() {
		fv(1);
		fv("one");
		fv(1, 2);
	}`)
	want := []string{"int: 1", "string: one", "pair: 3"}
	if diff := cmp.Diff(want, outputs); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestNoMatchingOverloadIsTypeError(t *testing.T) {
	_, err := runSource(t, `
	def fv(xi) { }
	def main() {
		fv(true);
	}`)
	wantKind(t, err, TypeError)
}

func TestUnknownFunctionIsNameError(t *testing.T) {
	_, err := runSource(t, `
	def main() {
		missingv(1);
	}`)
	wantKind(t, err, NameError)
}

func TestDuplicateSignatureIsNameError(t *testing.T) {
	_, err := runSource(t, `
	def fv(xi) { }
	def fv(yi) { }
	def main() { }`)
	wantKind(t, err, NameError)
}

func TestVoidFormalParameterIsTypeError(t *testing.T) {
	_, err := runSource(t, `
	def fv(xv) { }
	def main() { }`)
	wantKind(t, err, TypeError)
}

func TestReferenceParameterMutatesCaller(t *testing.T) {
	outputs := mustRun(t, `
	def bumpv(&xi) {
		xi = xi + 1;
	}
	def main() {
		var ti;
		ti = 5;
		bumpv(ti);
		print(ti);
	}`)
	if len(outputs) != 1 || outputs[0] != "6" {
		t.Fatalf("expected 6, got %v", outputs)
	}
}

func TestValueParameterDoesNotMutateCaller(t *testing.T) {
	outputs := mustRun(t, `
	def bumpv(xi) {
		xi = xi + 1;
	}
	def main() {
		var ti;
		ti = 5;
		bumpv(ti);
		print(ti);
	}`)
	if len(outputs) != 1 || outputs[0] != "5" {
		t.Fatalf("expected 5, got %v", outputs)
	}
}

func TestReferenceParameterOnLiteralHasNoCallerEffect(t *testing.T) {
	// The looser policy: any expression may feed a & parameter; a literal
	// owns a fresh cell, so the write lands nowhere observable.
	outputs := mustRun(t, `
	def bumpv(&xi) {
		xi = xi + 1;
		print(xi);
	}
	def main() {
		bumpv(41);
	}`)
	if len(outputs) != 1 || outputs[0] != "42" {
		t.Fatalf("expected 42, got %v", outputs)
	}
}

func TestObjectSharedThroughValueParameter(t *testing.T) {
	// Object payloads stay identity-shared even through by-value passing.
	outputs := mustRun(t, `
	def pokev(xo) {
		xo.marki = 7;
	}
	def main() {
		var oo;
		oo = @;
		pokev(oo);
		print(oo.marki);
	}`)
	if len(outputs) != 1 || outputs[0] != "7" {
		t.Fatalf("expected 7, got %v", outputs)
	}
}

func TestCallThroughFunctionVariable(t *testing.T) {
	outputs := mustRun(t, `
	def doublei(xi) {
		return xi * 2;
	}
	def main() {
		var gf;
		gf = doublei;
		print(gf(21));
	}`)
	if len(outputs) != 1 || outputs[0] != "42" {
		t.Fatalf("expected 42, got %v", outputs)
	}
}

func TestCallThroughNilFunctionIsFaultError(t *testing.T) {
	_, err := runSource(t, `
	def main() {
		var gf;
		gf(1);
	}`)
	wantKind(t, err, FaultError)
}

func TestFunctionVariableArityMismatchIsTypeError(t *testing.T) {
	_, err := runSource(t, `
	def doublei(xi) {
		return xi * 2;
	}
	def main() {
		var gf;
		gf = doublei;
		print(gf(1, 2));
	}`)
	wantKind(t, err, TypeError)
}

func TestAmbiguousFunctionReferenceIsNameError(t *testing.T) {
	_, err := runSource(t, `
	def fv(xi) { }
	def fv(xs) { }
	def main() {
		var gf;
		gf = fv;
	}`)
	wantKind(t, err, NameError)
}

func TestMethodCallBindsReceiver(t *testing.T) {
	outputs := mustRun(t, `
	def main() {
		var co;
		co = @;
		co.counti = 0;
		co.incf = lambda bumpv() {
			selfo.counti = selfo.counti + 1;
		};
		co.incf();
		co.incf();
		print(co.counti);
	}`)
	if len(outputs) != 1 || outputs[0] != "2" {
		t.Fatalf("expected 2, got %v", outputs)
	}
}

func TestMethodMissingIsNameError(t *testing.T) {
	_, err := runSource(t, `
	def main() {
		var co;
		co = @;
		co.failv();
	}`)
	wantKind(t, err, NameError)
}

func TestMethodOnNilObjectIsFaultError(t *testing.T) {
	_, err := runSource(t, `
	def main() {
		var co;
		co.failv();
	}`)
	wantKind(t, err, FaultError)
}

func TestMethodThroughNonFunctionFieldIsTypeError(t *testing.T) {
	_, err := runSource(t, `
	def main() {
		var co;
		co = @;
		co.xi = 1;
		co.xi();
	}`)
	wantKind(t, err, TypeError)
}

func TestArgumentsEvaluateLeftToRightExactlyOnce(t *testing.T) {
	outputs := mustRun(t, `
	def logi(xi) {
		print("eval ", xi);
		return xi;
	}
	def sumv(ai, bi) {
		print(ai + bi);
	}
	def main() {
		sumv(logi(1), logi(2));
	}`)
	want := []string{"eval 1", "eval 2", "3"}
	if diff := cmp.Diff(want, outputs); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}
