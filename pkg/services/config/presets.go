package config

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/de-tools/roi-atlas/pkg/models/domain"
	"github.com/de-tools/roi-atlas/pkg/services/report"
	"golang.org/x/exp/maps"
	"gopkg.in/ini.v1"
)

var ErrUnknownPreset = errors.New("unknown preset")

// Preset is a named set of report defaults applied when a new report is created.
type Preset struct {
	Name     string
	Currency *string
	Settings report.SettingsChanges
}

type Presets interface {
	GetProfiles(ctx context.Context) ([]string, error)
	GetPreset(ctx context.Context, profile string) (*Preset, error)
}

type iniPresets struct {
	sections map[string]*ini.Section
}

// NewPresets reads an INI file where every non-empty section is one preset:
//
//	[consulting-eu]
//	currency = EUR
//	language = en
//	transformation_cost_factor = 0.25
func NewPresets(path string) (Presets, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load presets: %w", err)
	}
	return newPresets(cfg), nil
}

func LoadPresets(data []byte) (Presets, error) {
	cfg, err := ini.Load(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse presets: %w", err)
	}
	return newPresets(cfg), nil
}

func newPresets(cfg *ini.File) *iniPresets {
	sections := make(map[string]*ini.Section)
	for _, section := range cfg.Sections() {
		if len(section.Keys()) > 0 {
			sections[section.Name()] = section
		}
	}
	return &iniPresets{sections: sections}
}

func (p *iniPresets) GetProfiles(_ context.Context) ([]string, error) {
	profiles := maps.Keys(p.sections)
	sort.Strings(profiles)
	return profiles, nil
}

func (p *iniPresets) GetPreset(_ context.Context, profile string) (*Preset, error) {
	section, ok := p.sections[profile]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPreset, profile)
	}

	preset := &Preset{Name: profile}
	if key, err := section.GetKey("currency"); err == nil {
		currency := key.String()
		preset.Currency = &currency
	}
	if key, err := section.GetKey("language"); err == nil {
		language := key.String()
		preset.Settings.Language = &language
	}

	floats := []struct {
		name   string
		target **float64
	}{
		{"inflation_rate", &preset.Settings.InflationRate},
		{"est_transformation_cost", &preset.Settings.EstTransformationCost},
		{"min_transformation_cost", &preset.Settings.MinTransformationCost},
		{"transformation_cost_factor", &preset.Settings.TransformationCostFactor},
	}
	for _, f := range floats {
		value, ok, err := floatKey(section, f.name)
		if err != nil {
			return nil, fmt.Errorf("preset %s: %w", profile, err)
		}
		if ok {
			*f.target = &value
		}
	}

	if key, err := section.GetKey("implementation_days"); err == nil {
		days, err := key.Int()
		if err != nil {
			return nil, fmt.Errorf("preset %s: implementation_days: %w", profile, err)
		}
		preset.Settings.ImplementationDays = &days
	}

	breakdown, ok, err := breakdownKeys(section)
	if err != nil {
		return nil, fmt.Errorf("preset %s: %w", profile, err)
	}
	if ok {
		preset.Settings.Breakdown = &breakdown
	}

	return preset, nil
}

func floatKey(section *ini.Section, name string) (float64, bool, error) {
	key, err := section.GetKey(name)
	if err != nil {
		return 0, false, nil
	}
	value, err := key.Float64()
	if err != nil {
		return 0, false, fmt.Errorf("%s: %w", name, err)
	}
	return value, true, nil
}

func breakdownKeys(section *ini.Section) (domain.CostBreakdown, bool, error) {
	var (
		breakdown domain.CostBreakdown
		found     bool
	)
	parts := map[string]*float64{
		"breakdown_people":  &breakdown.People,
		"breakdown_process": &breakdown.Process,
		"breakdown_tech":    &breakdown.Tech,
	}
	for name, target := range parts {
		value, ok, err := floatKey(section, name)
		if err != nil {
			return breakdown, false, err
		}
		if ok {
			*target = value
			found = true
		}
	}
	return breakdown, found, nil
}
