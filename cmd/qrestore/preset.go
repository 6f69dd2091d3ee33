package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/AlexS90/quatimage/lrqmc"
)

// preset is the YAML shape of a solver preset. Every field is a pointer so
// that an absent key leaves the corresponding option untouched.
type preset struct {
	InitRank       *int     `yaml:"init_rank"`
	RegCoef        *float64 `yaml:"reg_coef"`
	MaxIter        *int     `yaml:"max_iter"`
	RelTol         *float64 `yaml:"rel_tol"`
	RankThreshold  *float64 `yaml:"rank_threshold"`
	RankMultiplier *float64 `yaml:"rank_multiplier"`
	ProgressEvery  *int     `yaml:"progress_every"`
	Seed           *int64   `yaml:"seed"`
}

// applyPreset reads the YAML file at path and overlays its keys onto o.
func applyPreset(path string, o *lrqmc.Options) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read preset %s: %w", path, err)
	}

	var p preset
	if err = yaml.Unmarshal(raw, &p); err != nil {
		return fmt.Errorf("parse preset %s: %w", path, err)
	}

	p.applyTo(o)

	return nil
}

func (p *preset) applyTo(o *lrqmc.Options) {
	if p.InitRank != nil {
		o.InitRank = *p.InitRank
	}
	if p.RegCoef != nil {
		o.RegCoef = *p.RegCoef
	}
	if p.MaxIter != nil {
		o.MaxIter = *p.MaxIter
	}
	if p.RelTol != nil {
		o.RelTol = *p.RelTol
	}
	if p.RankThreshold != nil {
		o.RankThreshold = *p.RankThreshold
	}
	if p.RankMultiplier != nil {
		o.RankMultiplier = *p.RankMultiplier
	}
	if p.ProgressEvery != nil {
		o.ProgressEvery = *p.ProgressEvery
	}
	if p.Seed != nil {
		o.Seed = *p.Seed
	}
}
