// Package cpumap loads the declarative capability database that names the
// CPU models known for an architecture.
//
// The database is a directory of HCL data files, one per architecture
// (sw64.hcl, optionally sw64-*.hcl extensions). The loader does not build
// any registry itself; it replays every model declaration, in file order,
// through a caller-supplied callback. Architecture providers own the
// resulting registry and its invariants.
package cpumap
