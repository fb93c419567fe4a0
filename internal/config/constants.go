package config

// Version is the current Coal implementation version.
var Version = "0.1.0"

const SourceFileExt = ".coal"

// HasSourceExt returns true if the path ends in the recognized source extension.
func HasSourceExt(path string) bool {
	return len(path) >= len(SourceFileExt) && path[len(path)-len(SourceFileExt):] == SourceFileExt
}

// DefaultSQLitePath is the path the db module's `open:` docs point new
// scripts at; callers are free to pass any path, including ":memory:".
const DefaultSQLitePath = ":memory:"

// ReplKeywords is a copy of token.ReplKeywords, the REPL's reserved keyword
// set. pkg/cli's line-based REPL does not read it and offers no tab
// completion.
var ReplKeywords = []string{
	"let", "def", "if", "elif", "else", "for", "each", "while",
	"break", "next", "return", "type", "end", "help", "copyright",
	"credits", "license", "quit",
}

// BlockOpeners are the keywords that open an indented block in the REPL's
// auto-indent tracking, grounded on original_source/coal.py's own list.
var BlockOpeners = []string{"def", "if", "for", "each", "while"}
