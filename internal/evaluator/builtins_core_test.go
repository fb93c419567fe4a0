package evaluator

import (
	"os"
	"testing"
)

func TestCoreModuleVersionAttribute(t *testing.T) {
	src := `import core
let v: List = [core version:]
`
	e, _ := runOK(t, src)
	vv, _ := e.Scope.LookupName("v")
	l, ok := vv.(*List)
	if !ok || len(l.Elements) != 3 {
		t.Fatalf("got v=%#v, want a 3-element List", vv)
	}
	if n, ok := l.Elements[0].(*Int); !ok || n.Value != 0 {
		t.Errorf("got major=%#v, want Int{0}", l.Elements[0])
	}
}

func TestCoreModuleUUIDReturnsDistinctStrings(t *testing.T) {
	src := `import core
let a: String = [core uuid:]
let b: String = [core uuid:]
`
	e, _ := runOK(t, src)
	av, _ := e.Scope.LookupName("a")
	bv, _ := e.Scope.LookupName("b")
	as, ok := av.(*String)
	if !ok || len(as.Value) != 36 {
		t.Fatalf("got a=%#v, want a 36-char uuid String", av)
	}
	bs, ok := bv.(*String)
	if !ok || bs.Value == as.Value {
		t.Fatalf("got b=%#v, want a distinct uuid from a=%q", bv, as.Value)
	}
}

func TestCoreModuleEnvReadsSetVariable(t *testing.T) {
	os.Setenv("COAL_TEST_ENV_VAR", "hello")
	defer os.Unsetenv("COAL_TEST_ENV_VAR")

	src := `import core
let v: String = [core env: "COAL_TEST_ENV_VAR"]
`
	e, _ := runOK(t, src)
	vv, _ := e.Scope.LookupName("v")
	if s, ok := vv.(*String); !ok || s.Value != "hello" {
		t.Errorf("got v=%#v, want String{hello}", vv)
	}
}

func TestCoreModuleEnvReturnsVoidForUnsetVariable(t *testing.T) {
	os.Unsetenv("COAL_TEST_ENV_VAR_UNSET")

	src := `import core
let v: Void = [core env: "COAL_TEST_ENV_VAR_UNSET"]
`
	e, _ := runOK(t, src)
	vv, _ := e.Scope.LookupName("v")
	if _, ok := vv.(*Void); !ok {
		t.Errorf("got v=%#v, want a Void", vv)
	}
}

func TestCoreModuleEnvRejectsNonStringArg(t *testing.T) {
	src := `import core
let v: String = [core env: 5]
`
	_, res, _ := run(t, src)
	if !isError(res) || res.(*Error).Kind != "TypeError" {
		t.Fatalf("got %#v, want a TypeError (env: requires a String argument)", res)
	}
}

func TestCoreModuleUUIDRejectsArgs(t *testing.T) {
	src := `import core
let v: String = [core uuid: 1]
`
	_, res, _ := run(t, src)
	if !isError(res) {
		t.Fatalf("got %#v, want an error (uuid: takes no arguments)", res)
	}
}
