// Package sw64 is the CPU capability provider for the SW64 architecture.
//
// SW64 has no sub-model feature granularity: a CPU is fully described by a
// whole-model name (core3, core4). The provider therefore resolves the host
// model from the "cpu variation" code the kernel reports, treats every
// guest request as compatible with every host, and resolves host-model
// inheritance by pinning the guest to the host's model. Feature-level
// decode/encode and multi-host baselining are architecturally unsupported.
package sw64
