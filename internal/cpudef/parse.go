package cpudef

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// cpuSchema mirrors the on-disk `cpu` block before translation into the
// format-agnostic CPUDef.
type cpuSchema struct {
	Mode     string           `hcl:"mode,optional"`
	Match    string           `hcl:"match,optional"`
	Model    string           `hcl:"model,optional"`
	Vendor   string           `hcl:"vendor,optional"`
	Topology *topologySchema  `hcl:"topology,block"`
	Features []*featureSchema `hcl:"feature,block"`
}

type topologySchema struct {
	Sockets int `hcl:"sockets,optional"`
	Cores   int `hcl:"cores,optional"`
	Threads int `hcl:"threads,optional"`
}

type featureSchema struct {
	Name   string `hcl:"name,label"`
	Policy string `hcl:"policy,optional"`
}

type fileSchema struct {
	CPU *cpuSchema `hcl:"cpu,block"`
}

// ParseFile reads a CPU definition from an HCL file containing a single
// `cpu` block.
func ParseFile(path string) (*CPUDef, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse CPU definition %s: %w", path, diags)
	}
	return decode(path, file.Body)
}

// Parse reads a CPU definition from an in-memory HCL document. The filename
// is used only for diagnostics.
func Parse(src []byte, filename string) (*CPUDef, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse CPU definition %s: %w", filename, diags)
	}
	return decode(filename, file.Body)
}

func decode(name string, body hcl.Body) (*CPUDef, error) {
	var raw fileSchema
	if diags := gohcl.DecodeBody(body, nil, &raw); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode CPU definition %s: %w", name, diags)
	}
	if raw.CPU == nil {
		return nil, fmt.Errorf("CPU definition %s has no cpu block", name)
	}
	return translate(raw.CPU)
}

// translate converts the HCL-specific schema into the agnostic model.
func translate(s *cpuSchema) (*CPUDef, error) {
	def := &CPUDef{
		Model:  s.Model,
		Vendor: s.Vendor,
	}

	if s.Mode != "" {
		mode, err := ParseMode(s.Mode)
		if err != nil {
			return nil, err
		}
		def.Mode = mode
	}
	if s.Match != "" {
		match, err := ParseMatch(s.Match)
		if err != nil {
			return nil, err
		}
		def.Match = match
	}
	if s.Topology != nil {
		def.Topology = Topology{
			Sockets: s.Topology.Sockets,
			Cores:   s.Topology.Cores,
			Threads: s.Topology.Threads,
		}
	}
	for _, f := range s.Features {
		policy := PolicyRequire
		if f.Policy != "" {
			p, err := ParseFeaturePolicy(f.Policy)
			if err != nil {
				return nil, err
			}
			policy = p
		}
		def.Features = append(def.Features, Feature{Name: f.Name, Policy: policy})
	}

	return def, nil
}
