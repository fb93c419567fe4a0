package evaluator

import (
	"database/sql"

	_ "modernc.org/sqlite"
)

// dbHandle wraps an open *sql.DB as a Module-shaped value so it can flow
// through Coal scripts like any other Object (see SPEC_FULL.md §7.4).
type dbHandle struct {
	db *sql.DB
}

func (h *dbHandle) Type() ObjectType { return MODULE_OBJ }
func (h *dbHandle) Inspect() string  { return "Module(db.Handle)" }
func (h *dbHandle) Call(e *Evaluator, selector string, args []Object) Object {
	return newError("MethodError", "db.Handle has no method %q; use the db module's exec:sql:/query:sql:/close:", selector)
}

// newDBModule backs SPEC_FULL.md §7.4, a thin scripting surface over
// modernc.org/sqlite — one *sql.DB per open:, no pooling or transactions.
func newDBModule() *Module {
	m := NewModule("db")

	m.Methods["open:"] = func(e *Evaluator, args []Object) Object {
		if len(args) != 1 {
			return newError("Exception", "open: expects 1 argument, got %d", len(args))
		}
		path, ok := args[0].(*String)
		if !ok {
			return newError("TypeError", "open: expects a String path")
		}
		db, err := sql.Open("sqlite", path.Value)
		if err != nil {
			return newError("Exception", "open: %s", err)
		}
		if err := db.Ping(); err != nil {
			return newError("Exception", "open: %s", err)
		}
		return &dbHandle{db: db}
	}

	m.Methods["exec:sql:"] = func(e *Evaluator, args []Object) Object {
		if len(args) != 2 {
			return newError("Exception", "exec:sql: expects 2 arguments, got %d", len(args))
		}
		h, ok := args[0].(*dbHandle)
		if !ok {
			return newError("TypeError", "exec:sql: expects a db.Handle as its first argument")
		}
		stmt, ok := args[1].(*String)
		if !ok {
			return newError("TypeError", "exec:sql: expects a String statement")
		}
		res, err := h.db.Exec(stmt.Value)
		if err != nil {
			return newError("Exception", "exec:sql: %s", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return newError("Exception", "exec:sql: %s", err)
		}
		return &Int{Value: n}
	}

	m.Methods["query:sql:"] = func(e *Evaluator, args []Object) Object {
		if len(args) != 2 {
			return newError("Exception", "query:sql: expects 2 arguments, got %d", len(args))
		}
		h, ok := args[0].(*dbHandle)
		if !ok {
			return newError("TypeError", "query:sql: expects a db.Handle as its first argument")
		}
		stmt, ok := args[1].(*String)
		if !ok {
			return newError("TypeError", "query:sql: expects a String statement")
		}
		rows, err := h.db.Query(stmt.Value)
		if err != nil {
			return newError("Exception", "query:sql: %s", err)
		}
		defer rows.Close()

		cols, err := rows.Columns()
		if err != nil {
			return newError("Exception", "query:sql: %s", err)
		}
		var out []Object
		for rows.Next() {
			scanTargets := make([]interface{}, len(cols))
			scanValues := make([]sql.NullString, len(cols))
			for i := range scanValues {
				scanTargets[i] = &scanValues[i]
			}
			if err := rows.Scan(scanTargets...); err != nil {
				return newError("Exception", "query:sql: %s", err)
			}
			row := make([]Object, len(cols))
			for i, v := range scanValues {
				row[i] = &String{Value: v.String}
			}
			out = append(out, &List{Elements: row})
		}
		if err := rows.Err(); err != nil {
			return newError("Exception", "query:sql: %s", err)
		}
		return &List{Elements: out}
	}

	m.Methods["close:"] = func(e *Evaluator, args []Object) Object {
		if len(args) != 1 {
			return newError("Exception", "close: expects 1 argument, got %d", len(args))
		}
		h, ok := args[0].(*dbHandle)
		if !ok {
			return newError("TypeError", "close: expects a db.Handle argument")
		}
		if err := h.db.Close(); err != nil {
			return newError("Exception", "close: %s", err)
		}
		return &Void{OfType: "Any"}
	}

	return m
}
