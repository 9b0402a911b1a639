/*
Package document maps property trees to and from generic documents (nested
maps, lists and scalars) and persists them as JSON or YAML files.

# File format

Documents are JSON objects (or YAML mappings) with two extensions:

  - In JSON documents, lines whose first non-blank characters are "//" are
    comments. YAML documents use "#" comments only.
  - An "include" string names another document, relative to the including
    file's directory unless absolute. It is merged into the same node before
    the including document's other keys, so those keys win.

For example, with base.json holding {"rate": 10, "port": "/dev/ttyS0"}:

	// rover.json
	{
	    "include": "base.json",
	    "rate": 50
	}

loads as rate = 50, port = "/dev/ttyS0".

# Export

Export emits the fully expanded tree (includes are not preserved) and renders
every scalar as a string. Snapshot keeps native scalar types.
*/
package document
