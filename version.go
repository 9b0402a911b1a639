package proptree

// Version is the release of the library and the proptree binary.
// Overridden at link time with -ldflags "-X github.com/aretw0/proptree.Version=...".
var Version = "0.1.0"
