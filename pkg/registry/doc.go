// Package registry exposes a property tree through absolute paths.
//
// A Registry owns one root node. Paths handed to it start with '/', and the
// remainder is resolved with the props path rules:
//
//	reg := registry.New()
//	reg.Set("/sensors/imu/rate", 100)
//	imu := reg.GetNode("/sensors/imu", false)
//
// Default returns a process-wide instance for components that cannot be
// handed a Registry explicitly.
package registry
