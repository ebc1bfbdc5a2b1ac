// Package rebar holds the reinforcing bar catalog.
package rebar

import (
	"sort"
	"strconv"
	"strings"

	rcerrors "github.com/alexiusacademia/gorcc/internal/errors"
)

// Size is one catalog entry
type Size struct {
	Designation string  // e.g. "#5"
	Diameter    float64 // cm
	Area        float64 // cm²
}

// Catalog maps bar designations to their nominal properties.
// A Catalog is read-only after construction and safe for concurrent use.
type Catalog struct {
	sizes map[string]Size
}

// NewCatalog builds a catalog from the given sizes. Later duplicates win.
func NewCatalog(sizes ...Size) *Catalog {
	c := &Catalog{sizes: make(map[string]Size, len(sizes))}
	for _, s := range sizes {
		c.sizes[s.Designation] = s
	}
	return c
}

// Default is the ASTM imperial bar catalog in cm / cm²
var Default = NewCatalog(
	Size{"#3", 0.9525, 0.71},
	Size{"#4", 1.27, 1.27},
	Size{"#5", 1.5875, 2.0},
	Size{"#6", 1.905, 2.84},
	Size{"#7", 2.2225, 3.87},
	Size{"#8", 2.865, 5.1},
	Size{"#9", 3.226, 6.45},
)

// Lookup returns the diameter and area of a bar designation
func (c *Catalog) Lookup(designation string) (diameter, area float64, err error) {
	s, err := c.Size(designation)
	if err != nil {
		return 0, 0, err
	}
	return s.Diameter, s.Area, nil
}

// Size returns the catalog entry for a designation
func (c *Catalog) Size(designation string) (Size, error) {
	s, ok := c.sizes[strings.TrimSpace(designation)]
	if !ok {
		return Size{}, rcerrors.New(rcerrors.ErrCodeUnknownRebarSize, "designation",
			"unknown rebar size %q", designation)
	}
	return s, nil
}

// Sizes returns all entries ordered by bar number
func (c *Catalog) Sizes() []Size {
	out := make([]Size, 0, len(c.sizes))
	for _, s := range c.sizes {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		ni, ei := barNumber(out[i].Designation)
		nj, ej := barNumber(out[j].Designation)
		if ei != nil || ej != nil {
			return out[i].Designation < out[j].Designation
		}
		return ni < nj
	})
	return out
}

func barNumber(designation string) (int, error) {
	return strconv.Atoi(strings.TrimPrefix(designation, "#"))
}
