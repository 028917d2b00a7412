// Package cpudef defines the CPU configuration model shared between guests
// and hosts.
//
// A CPUDef plays one of two roles: a guest definition describes the CPU a
// virtual machine asks for, a host definition describes the CPU the physical
// machine offers. Both use the same shape. Architecture providers read
// definitions and selectively rewrite fields; they never allocate one except
// at the framework boundary.
package cpudef
