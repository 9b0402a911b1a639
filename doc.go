/*
Package proptree is a hierarchical property tree for sharing loosely structured
state between components that are initialized independently of each other.

Values live in a tree of named nodes reached through '/'-separated paths.
Intermediate nodes are created on demand, so a producer and a consumer can meet
at a path without agreeing on who creates it. The tree maps to and from JSON or
YAML documents, which may pull in other documents through an "include" key.

# Usage

The package-level functions work on a process-wide registry:

	package main

	import (
		"fmt"
		"log"

		"github.com/aretw0/proptree"
	)

	func main() {
		if err := proptree.Load("rover.json", "/vehicle"); err != nil {
			log.Println(err) // partial imports still populate the tree
		}

		proptree.Set("/vehicle/sensors/gps[1]/lat", 45.2)

		if rate, ok := proptree.Get("/vehicle/sensors/imu/rate"); ok {
			fmt.Println("imu rate:", rate)
		}

		if err := proptree.Save("snapshot.yaml", "/vehicle"); err != nil {
			log.Fatal(err)
		}
	}

Libraries that should not share global state build their own tree with
props.NewNode or registry.New, and use the document package directly.

# Packages

  - props: nodes, values, path resolution, walking and printing.
  - document: import and export of JSON and YAML documents.
  - registry: absolute path access to a root node.
  - bind: decoding subtrees into structs and back.
  - adapters: DocumentStore implementations (memory, file, redis, loam).
*/
package proptree
