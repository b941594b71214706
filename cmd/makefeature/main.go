// Command makefeature stamps a new resource into the repository layout:
// domain model, port, gorm repository, create command and list query.
//
// Usage:
//
//	go run ./cmd/makefeature [-root .] [-module tailor] <name>
package main

import (
	"flag"
	"fmt"
	"os"
)

func main() {
	root := flag.String("root", ".", "repository root")
	module := flag.String("module", "tailor", "go module path")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: makefeature [-root dir] [-module path] <name>")
		os.Exit(2)
	}

	names, err := NewNames(flag.Arg(0), *module)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	written, err := Scaffold(*root, names)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	for _, path := range written {
		fmt.Println("created", path)
	}
	fmt.Printf("Feature %s created successfully!\n", names.Studly)
}
