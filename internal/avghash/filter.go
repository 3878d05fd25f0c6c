package avghash

import (
	"fmt"
	"sort"
	"strings"

	"github.com/disintegration/imaging"
)

// Filter names a resampling filter. Hashes are only comparable when produced
// with the same filter and grid size.
type Filter string

const (
	FilterTriangle   Filter = "triangle"
	FilterLanczos    Filter = "lanczos"
	FilterCatmullRom Filter = "catmullrom"
	FilterBox        Filter = "box"
	FilterGaussian   Filter = "gaussian"
	FilterNearest    Filter = "nearest"

	// DefaultFilter is used when no filter is configured.
	DefaultFilter = FilterTriangle
)

var resampleFilters = map[Filter]imaging.ResampleFilter{
	FilterTriangle:   imaging.Linear,
	FilterLanczos:    imaging.Lanczos,
	FilterCatmullRom: imaging.CatmullRom,
	FilterBox:        imaging.Box,
	FilterGaussian:   imaging.Gaussian,
	FilterNearest:    imaging.NearestNeighbor,
}

// filterAliases maps alternative spellings onto canonical names.
var filterAliases = map[string]Filter{
	"linear":   FilterTriangle,
	"bilinear": FilterTriangle,
	"lanczos3": FilterLanczos,
	"catmull":  FilterCatmullRom,
}

// ParseFilter resolves a user supplied filter name. An empty name yields
// DefaultFilter.
func ParseFilter(name string) (Filter, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return DefaultFilter, nil
	}
	if f, ok := filterAliases[key]; ok {
		return f, nil
	}
	f := Filter(key)
	if _, ok := resampleFilters[f]; !ok {
		return "", fmt.Errorf("%w: unknown filter %q (valid: %s)", ErrInvalidOptions, name, strings.Join(FilterNames(), ", "))
	}
	return f, nil
}

// FilterNames lists the canonical filter names in sorted order.
func FilterNames() []string {
	names := make([]string, 0, len(resampleFilters))
	for f := range resampleFilters {
		names = append(names, string(f))
	}
	sort.Strings(names)
	return names
}

func (f Filter) resample() (imaging.ResampleFilter, bool) {
	rf, ok := resampleFilters[f]
	return rf, ok
}
