// Package cpu is the generic boundary between virtualization management
// code and architecture-specific CPU capability providers.
//
// A provider implements the Driver interface for one or more architectures
// and is registered with a Registry at process start. All management-facing
// operations (detect the host model, compare a guest request against the
// host, resolve host-model inheritance, list known models) go through the
// Registry, which selects the provider by architecture name and delegates.
package cpu
