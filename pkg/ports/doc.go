/*
Package ports defines the driven ports (interfaces) used to persist property trees.

Trees are persisted as generic documents (nested maps, lists and scalars) produced
by the document package, so a store never needs to know about props.Node.

# Key Interfaces

  - DocumentStore: saves, loads, lists and deletes named documents
    (memory, file, Redis and Loam adapters live under pkg/adapters).
*/
package ports
