/*
Package props implements the property tree: a hierarchy of named values that
independently initialized components use to share loosely structured state.

Either side of an exchange may create the nodes it needs, so readers and writers
do not depend on initialization order.

# Values

Every child of a Node is a Value, one of:

  - Scalar: a string, number or boolean leaf.
  - *Node: a nested branch.
  - *List: an ordered sequence of branches and scalars.

# Paths

Nodes are addressed with '/'-separated relative paths. A segment of the form
name[i] addresses element i of the list called name:

	gps := root.Child("sensors/gps[1]", true) // creates sensors, gps[0] and gps[1]
	gps.Set("lat", 45.2)

A path naming a scalar cannot be resolved; resolve its parent and use Set or
Scalar instead. Paths starting with '/' belong to the registry package.
*/
package props
