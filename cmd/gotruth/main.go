// gotruth builds truth tables for propositional logic formulas.
//
// Configuration (env vars):
//
//	GOTRUTH_ENGINE=postgres|mysql|sqlite  (repl export dialect, default sqlite)
//	DATABASE_URL=<dsn>                    (repl auto-connects if set)
//	GOTRUTH_ADDR=<host:port>              (serve listen address)
//
// Usage:
//
//	echo 'p -> q' | gotruth eval
//	gotruth repl
//	gotruth serve --addr :8080
package main

import "github.com/bawdo/gotruth/cmd/gotruth/commands"

func main() {
	commands.Execute()
}
