//go:build ignore

package main

import (
	"log"

	"entgo.io/ent/entc"
	"entgo.io/ent/entc/gen"
)

// Run with: go run db/ent/generate.go
func main() {
	err := entc.Generate(
		"./db/ent/schema",
		&gen.Config{
			Target:  "gen/ent",
			Package: "github.com/aolabi/docpipe/gen/ent",
			Schema:  "github.com/aolabi/docpipe/db/ent/schema",
		},
	)
	if err != nil {
		log.Fatal(err)
	}
}
