package evaluator

import "testing"

func TestDBModuleOpenExecQueryClose(t *testing.T) {
	src := `import db
let h: Module = [db open: ":memory:"]
let created: Int = [db exec: h sql: "create table items (id integer, name text)"]
let inserted: Int = [db exec: h sql: "insert into items values (1, 'bolt')"]
let rows: List = [db query: h sql: "select id, name from items"]
[db close: h]
`
	e, _ := runOK(t, src)

	cv, _ := e.Scope.LookupName("created")
	if n, ok := cv.(*Int); !ok || n.Value != 0 {
		t.Errorf("got created=%#v, want Int{0} (DDL affects 0 rows)", cv)
	}

	iv, _ := e.Scope.LookupName("inserted")
	if n, ok := iv.(*Int); !ok || n.Value != 1 {
		t.Errorf("got inserted=%#v, want Int{1}", iv)
	}

	rv, _ := e.Scope.LookupName("rows")
	l, ok := rv.(*List)
	if !ok || len(l.Elements) != 1 {
		t.Fatalf("got rows=%#v, want a 1-row List", rv)
	}
	row, ok := l.Elements[0].(*List)
	if !ok || len(row.Elements) != 2 {
		t.Fatalf("got row=%#v, want a 2-column List", l.Elements[0])
	}
	id, ok := row.Elements[0].(*String)
	if !ok || id.Value != "1" {
		t.Errorf("got id=%#v, want String{1}", row.Elements[0])
	}
	name, ok := row.Elements[1].(*String)
	if !ok || name.Value != "bolt" {
		t.Errorf("got name=%#v, want String{bolt}", row.Elements[1])
	}
}

func TestDBModuleExecRejectsNonHandleFirstArg(t *testing.T) {
	src := `import db
let v: Int = [db exec: "not a handle" sql: "select 1"]
`
	_, res, _ := run(t, src)
	if !isError(res) || res.(*Error).Kind != "TypeError" {
		t.Fatalf("got %#v, want a TypeError (exec:sql: requires a db.Handle first argument)", res)
	}
}

func TestDBModuleOpenRejectsNonStringPath(t *testing.T) {
	src := `import db
let h: Module = [db open: 5]
`
	_, res, _ := run(t, src)
	if !isError(res) || res.(*Error).Kind != "TypeError" {
		t.Fatalf("got %#v, want a TypeError (open: requires a String path)", res)
	}
}
