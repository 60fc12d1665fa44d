package interpreter

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestObjectAssignmentAliases(t *testing.T) {
	outputs := mustRun(t, `
	def main() {
		var ao;
		var bo;
		ao = @;
		bo = ao;
		bo.xi = 5;
		print(ao.xi);
	}`)
	if len(outputs) != 1 || outputs[0] != "5" {
		t.Fatalf("expected 5, got %v", outputs)
	}
}

func TestObjectEqualityIsIdentity(t *testing.T) {
	outputs := mustRun(t, `
	def main() {
		var ao;
		var bo;
		var co;
		ao = @;
		bo = ao;
		co = @;
		print(ao == bo);
		print(ao == co);
	}`)
	want := []string{"true", "false"}
	if diff := cmp.Diff(want, outputs); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestFunctionEqualityIsIdentity(t *testing.T) {
	outputs := mustRun(t, `
	def fv() { }
	def gv(xi) { }
	def main() {
		var af;
		var bf;
		af = fv;
		bf = fv;
		print(af == bf);
		bf = gv;
		print(af == bf);
	}`)
	want := []string{"true", "false"}
	if diff := cmp.Diff(want, outputs); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestFieldsCreatedOnFirstAssignment(t *testing.T) {
	outputs := mustRun(t, `
	def main() {
		var oo;
		oo = @;
		oo.xi = 1;
		oo.names = "a";
		oo.flagb = true;
		print(oo.xi, " ", oo.names, " ", oo.flagb);
	}`)
	if len(outputs) != 1 || outputs[0] != "1 a true" {
		t.Fatalf("expected '1 a true', got %v", outputs)
	}
}

func TestReadingMissingFieldIsNameError(t *testing.T) {
	_, err := runSource(t, `
	def main() {
		var oo;
		oo = @;
		print(oo.xi);
	}`)
	wantKind(t, err, NameError)
}

func TestFieldAccessOnNilObjectIsFaultError(t *testing.T) {
	_, err := runSource(t, `
	def main() {
		var oo;
		print(oo.xi);
	}`)
	wantKind(t, err, FaultError)
}

func TestFieldAccessThroughNonObjectIsTypeError(t *testing.T) {
	_, err := runSource(t, `
	def main() {
		var xi;
		xi = 5;
		print(xi.yi);
	}`)
	wantKind(t, err, TypeError)
}

func TestNestedObjectsChainResolution(t *testing.T) {
	outputs := mustRun(t, `
	def main() {
		var ao;
		ao = @;
		ao.inno = @;
		ao.inno.xi = 9;
		print(ao.inno.xi);
	}`)
	if len(outputs) != 1 || outputs[0] != "9" {
		t.Fatalf("expected 9, got %v", outputs)
	}
}

func TestFieldAssignmentTypeMismatchIsTypeError(t *testing.T) {
	_, err := runSource(t, `
	def main() {
		var ao;
		ao = @;
		ao.midi = @;
	}`)
	wantKind(t, err, TypeError)
}

func TestFunctionIntoNonFunctionFieldIsTypeError(t *testing.T) {
	// A method field must be declared function-typed: a lambda may only be
	// stored under an f-suffixed name.
	_, err := runSource(t, `
	def main() {
		var co;
		co = @;
		co.addv = lambda stepv(ni) { };
	}`)
	wantKind(t, err, TypeError)
}

func TestIntermediatePathSegmentMustBeObjectTyped(t *testing.T) {
	_, err := runSource(t, `
	def main() {
		var xi;
		xi = 1;
		print(xi.yi.zi);
	}`)
	wantKind(t, err, TypeError)
}

func TestAssigningNilToObjectVariable(t *testing.T) {
	outputs := mustRun(t, `
	def main() {
		var oo;
		oo = @;
		oo = nil;
		print(oo == nil);
	}`)
	if len(outputs) != 1 || outputs[0] != "true" {
		t.Fatalf("expected true, got %v", outputs)
	}
}

func TestAssigningNilToIntVariableIsTypeError(t *testing.T) {
	_, err := runSource(t, `
	def main() {
		var xi;
		xi = nil;
	}`)
	wantKind(t, err, TypeError)
}
