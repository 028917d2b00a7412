package cpudef

import "fmt"

// Mode describes how a guest CPU definition relates to the host CPU.
type Mode int

const (
	// ModeCustom pins the guest to an explicitly named model.
	ModeCustom Mode = iota
	// ModeHostModel asks for whatever model the host implements, resolved
	// to a concrete custom model before the guest is launched.
	ModeHostModel
	// ModeHostPassthrough exposes the host CPU directly without naming it.
	ModeHostPassthrough
	// ModeMaximum asks for the richest CPU the hypervisor can provide.
	ModeMaximum
)

var modeNames = map[Mode]string{
	ModeCustom:          "custom",
	ModeHostModel:       "host-model",
	ModeHostPassthrough: "host-passthrough",
	ModeMaximum:         "maximum",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// ParseMode converts the textual form used in definition files to a Mode.
func ParseMode(s string) (Mode, error) {
	for m, name := range modeNames {
		if name == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown CPU mode %q", s)
}

// Match describes how strictly a custom model must be honored.
type Match int

const (
	// MatchExact requires the virtual CPU to match the named model exactly.
	MatchExact Match = iota
	// MatchMinimum treats the named model as a floor.
	MatchMinimum
	// MatchStrict refuses to start unless the host supports the model as-is.
	MatchStrict
)

var matchNames = map[Match]string{
	MatchExact:   "exact",
	MatchMinimum: "minimum",
	MatchStrict:  "strict",
}

func (m Match) String() string {
	if name, ok := matchNames[m]; ok {
		return name
	}
	return fmt.Sprintf("match(%d)", int(m))
}

// ParseMatch converts the textual form used in definition files to a Match.
func ParseMatch(s string) (Match, error) {
	for m, name := range matchNames {
		if name == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown CPU match policy %q", s)
}

// FeaturePolicy describes what a guest wants done with a single CPU feature.
type FeaturePolicy int

const (
	PolicyRequire FeaturePolicy = iota
	PolicyOptional
	PolicyDisable
	PolicyForbid
)

var policyNames = map[FeaturePolicy]string{
	PolicyRequire:  "require",
	PolicyOptional: "optional",
	PolicyDisable:  "disable",
	PolicyForbid:   "forbid",
}

func (p FeaturePolicy) String() string {
	if name, ok := policyNames[p]; ok {
		return name
	}
	return fmt.Sprintf("policy(%d)", int(p))
}

// ParseFeaturePolicy converts the textual form used in definition files to a
// FeaturePolicy.
func ParseFeaturePolicy(s string) (FeaturePolicy, error) {
	for p, name := range policyNames {
		if name == s {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown CPU feature policy %q", s)
}

// Feature is a single named CPU feature with its requested policy.
// Architectures without per-feature granularity leave the feature list empty.
type Feature struct {
	Name   string
	Policy FeaturePolicy
}

// Topology describes the socket/core/thread layout of a CPU. A zero value
// means the layout is unspecified.
type Topology struct {
	Sockets int
	Cores   int
	Threads int
}

// CPUDef is a guest or host CPU configuration.
type CPUDef struct {
	Arch     string
	Mode     Mode
	Match    Match
	Model    string
	Vendor   string
	Topology Topology
	Features []Feature
}

// CopyWithoutModel returns a copy of the definition with all model-bearing
// content (model, vendor, features) cleared and every other attribute
// preserved.
func (def *CPUDef) CopyWithoutModel() *CPUDef {
	return &CPUDef{
		Arch:     def.Arch,
		Mode:     def.Mode,
		Match:    def.Match,
		Topology: def.Topology,
	}
}

// CopyModel copies the model-bearing content of src into dst, replacing
// whatever dst previously held. The feature list is deep-copied so dst never
// aliases src.
func (dst *CPUDef) CopyModel(src *CPUDef) {
	dst.Model = src.Model
	dst.Vendor = src.Vendor
	dst.Match = src.Match
	dst.Features = nil
	if len(src.Features) > 0 {
		dst.Features = make([]Feature, len(src.Features))
		copy(dst.Features, src.Features)
	}
}

// StealModel moves the model-bearing content of src into dst. After the call
// dst exclusively owns the model data and src holds none; src must not be
// reused as a model source.
func (dst *CPUDef) StealModel(src *CPUDef) {
	dst.Model = src.Model
	dst.Vendor = src.Vendor
	dst.Features = src.Features
	src.Model = ""
	src.Vendor = ""
	src.Features = nil
}
