// Package mixfile reads mix designs from YAML design files and XLSX
// batch sheets, and exports batch results back to a workbook.
package mixfile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/aman-choudhary9785/iscode/internal/batch"
	"github.com/aman-choudhary9785/iscode/internal/is17452"
	"github.com/aman-choudhary9785/iscode/internal/mix"
)

// Load reads a single mix design from a YAML file. Omitted activator
// ratios fall back to the standard defaults; strength and aggregate
// properties must be present.
func Load(path string) (mix.Input, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return mix.Input{}, fmt.Errorf("reading design file: %w", err)
	}

	var in mix.Input
	if err := yaml.Unmarshal(data, &in); err != nil {
		return mix.Input{}, fmt.Errorf("parsing design YAML: %w", err)
	}

	applyDefaults(&in)
	if err := checkComplete(in); err != nil {
		return mix.Input{}, fmt.Errorf("%s: %w", path, err)
	}
	return in, nil
}

// namedDesign is the on-disk shape of one entry in a batch file: a name
// plus the design fields inlined at the same level.
type namedDesign struct {
	Name      string `yaml:"name"`
	mix.Input `yaml:",inline"`
}

type batchFile struct {
	Designs []namedDesign `yaml:"designs"`
}

// LoadBatch reads a batch of named designs from a YAML file holding a
// top-level designs list.
func LoadBatch(path string) ([]batch.Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading batch file: %w", err)
	}

	var bf batchFile
	if err := yaml.Unmarshal(data, &bf); err != nil {
		return nil, fmt.Errorf("parsing batch YAML: %w", err)
	}
	if len(bf.Designs) == 0 {
		return nil, fmt.Errorf("%s holds no designs", path)
	}

	items := make([]batch.Item, 0, len(bf.Designs))
	for i, d := range bf.Designs {
		name := d.Name
		if name == "" {
			name = fmt.Sprintf("design %d", i+1)
		}
		applyDefaults(&d.Input)
		if err := checkComplete(d.Input); err != nil {
			return nil, fmt.Errorf("%s: %s: %w", path, name, err)
		}
		items = append(items, batch.Item{Name: name, Input: d.Input})
	}
	return items, nil
}

// applyDefaults fills the activator proportioning fields a design file
// may omit. The calculation itself never supplies defaults.
func applyDefaults(in *mix.Input) {
	if in.SilicateHydroxideRatio == 0 {
		in.SilicateHydroxideRatio = is17452.DefaultSilicateHydroxideRatio
	}
	if in.ActivatorBinderRatio == 0 {
		in.ActivatorBinderRatio = is17452.DefaultActivatorBinderRatio
	}
}

// checkComplete rejects design files missing the fields no default can
// stand in for.
func checkComplete(in mix.Input) error {
	if in.TargetStrengthMPa <= 0 {
		return fmt.Errorf("target_strength_mpa must be positive")
	}
	if len(in.Precursors) == 0 {
		return fmt.Errorf("at least one precursor is required")
	}
	if in.FineAggregate.SpecificGravity <= 0 {
		return fmt.Errorf("fine_aggregate.specific_gravity must be positive")
	}
	if in.CoarseAggregate.SpecificGravity <= 0 {
		return fmt.Errorf("coarse_aggregate.specific_gravity must be positive")
	}
	if in.CoarseAggregate.MaxSizeMM <= 0 {
		return fmt.Errorf("coarse_aggregate.max_size_mm must be positive")
	}
	return nil
}
