package sandbox

import (
	"strconv"

	"sand-ca/internal/core"
	"sand-ca/pkg/sand"
)

// Parameters reports the world settings, brush state and material census.
func (w *World) Parameters() core.ParameterSnapshot {
	g := w.engine.Grid()
	total := 0
	for range g.Blocks() {
		total++
	}
	bx, by := w.brush.Pos()

	census := make([]core.Parameter, 0, sand.NumKinds-1)
	counts := g.Counts()
	for k := sand.KindSand; int(k) < sand.NumKinds; k++ {
		census = append(census, intParam(k.String(), titleCase(k.String()), counts.Of(k)))
	}

	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("size", "Size", w.cfg.Size),
				intParam("region", "Region", sand.RegionSize),
				int64Param("seed", "Seed", w.cfg.Seed),
				stringParam("scene", "Scene", w.cfg.Scene),
				int64Param("tick", "Tick", int64(w.engine.Ticks())),
				intParam("evaluated", "Blocks evaluated", w.engine.Evaluated()),
				intParam("blocks", "Blocks", total),
			},
		},
		{
			Name: "Brush",
			Params: []core.Parameter{
				stringParam("material", "Material", w.brush.Cell().Kind().String()),
				intParam("brush", "Radius", w.brush.Radius()),
				boolParam("spawning", "Spawning", w.brush.Enabled()),
				intParam("brush_x", "X", bx),
				intParam("brush_y", "Y", by),
			},
		},
		{Name: "Census", Params: census},
	}
	return core.ParameterSnapshot{Groups: groups}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeBool,
		Value: strconv.FormatBool(value),
	}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeString,
		Value: value,
	}
}
