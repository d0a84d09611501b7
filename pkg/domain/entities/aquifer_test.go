package entities

import (
	"errors"
	"math"
	"testing"
)

func TestGloverParameters_Validate(t *testing.T) {
	valid := GloverParameters{
		DistanceToStream: 4000,
		SpecificYield:    0.2,
		Transmissivity:   35000,
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid parameters, got %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*GloverParameters)
	}{
		{"zero distance", func(p *GloverParameters) { p.DistanceToStream = 0 }},
		{"negative distance", func(p *GloverParameters) { p.DistanceToStream = -100 }},
		{"NaN specific yield", func(p *GloverParameters) { p.SpecificYield = math.NaN() }},
		{"zero transmissivity", func(p *GloverParameters) { p.Transmissivity = 0 }},
		{"infinite transmissivity", func(p *GloverParameters) { p.Transmissivity = math.Inf(1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid
			tt.mutate(&p)
			err := p.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !errors.Is(err, ErrInvalidParameters) {
				t.Errorf("expected ErrInvalidParameters, got %v", err)
			}
		})
	}
}

func TestAlluvialParameters_Validate(t *testing.T) {
	p := AlluvialParameters{
		GloverParameters: GloverParameters{
			DistanceToStream: 4000,
			SpecificYield:    0.2,
			Transmissivity:   35000,
		},
		DistanceToBoundary: 8000,
	}
	if err := p.Validate(); err != nil {
		t.Fatalf("expected valid parameters, got %v", err)
	}

	p.DistanceToBoundary = -1
	if err := p.Validate(); !errors.Is(err, ErrInvalidParameters) {
		t.Errorf("expected ErrInvalidParameters for negative boundary, got %v", err)
	}
}

func TestSDFParameters_Validate(t *testing.T) {
	if err := (SDFParameters{SDF: 265}).Validate(); err != nil {
		t.Fatalf("expected valid parameters, got %v", err)
	}
	if err := (SDFParameters{SDF: 0}).Validate(); !errors.Is(err, ErrInvalidParameters) {
		t.Errorf("expected ErrInvalidParameters for zero SDF, got %v", err)
	}
	if err := (SDFParameters{SDF: math.NaN()}).Validate(); !errors.Is(err, ErrInvalidParameters) {
		t.Errorf("expected ErrInvalidParameters for NaN SDF, got %v", err)
	}
}
