package api

import (
	"github.com/coilworks/coilgen/internal/export"
	"github.com/coilworks/coilgen/internal/geometry"
)

// Result bundles everything one generation request produces.
type Result struct {
	Spec         geometry.CoilSpec `json:"spec"`
	IncludeInner bool              `json:"include_inner"`
	Turns        []geometry.Turn   `json:"turns"`
	Outer        geometry.Path     `json:"outer"`
	InnerTurns   []geometry.Turn   `json:"inner_turns,omitempty"`
	Inner        geometry.Path     `json:"inner,omitempty"`
	Export       geometry.Path     `json:"export"`
}

// Generate runs the full pipeline: turns, outer path, optional inner
// offset, export assembly. Data flows strictly forward; nothing is
// cached between calls.
func Generate(spec geometry.CoilSpec, includeInner bool) (*Result, error) {
	turns, err := geometry.GenerateTurns(spec)
	if err != nil {
		return nil, err
	}
	outer := geometry.Flatten(turns)

	res := &Result{
		Spec:         spec,
		IncludeInner: includeInner,
		Turns:        turns,
		Outer:        outer,
	}

	if includeInner {
		inner, err := geometry.OffsetInner(outer, spec.TraceWidth)
		if err != nil {
			return nil, err
		}
		innerTurns, err := geometry.Regroup(inner, spec.Turns)
		if err != nil {
			return nil, err
		}
		res.Inner = inner
		res.InnerTurns = innerTurns
	}

	res.Export = export.Assemble(outer, res.Inner, includeInner)
	return res, nil
}
