package models

// Region identifies one of the four availability regions.
type Region int

const (
	// Flanders is the Flemish region.
	Flanders Region = iota
	// Brussels is the Brussels-Capital region.
	Brussels
	// Wallonia is the Walloon region.
	Wallonia
	// GermanCommunity is the German-speaking community.
	GermanCommunity
)

// Regions lists every region in report column order.
var Regions = []Region{Flanders, Brussels, Wallonia, GermanCommunity}

// ColumnName returns the report column header for the region.
func (r Region) ColumnName() string {
	switch r {
	case Flanders:
		return "Region Flanders"
	case Brussels:
		return "Brussels"
	case Wallonia:
		return "Region Wallonia"
	case GermanCommunity:
		return "Communauté Germanophone"
	default:
		return ""
	}
}

// RegionVector holds the availability flags of a channel.
// Either exactly one flag is set or all four are.
type RegionVector struct {
	Flanders        bool `json:"flanders"`
	Brussels        bool `json:"brussels"`
	Wallonia        bool `json:"wallonia"`
	GermanCommunity bool `json:"german_community"`
}

// AllRegions is the vector of a channel available everywhere.
var AllRegions = RegionVector{Flanders: true, Brussels: true, Wallonia: true, GermanCommunity: true}

// OnlyRegion returns the vector restricted to r.
func OnlyRegion(r Region) RegionVector {
	var v RegionVector
	v.set(r, true)
	return v
}

// Has reports whether the vector includes r.
func (v RegionVector) Has(r Region) bool {
	switch r {
	case Flanders:
		return v.Flanders
	case Brussels:
		return v.Brussels
	case Wallonia:
		return v.Wallonia
	case GermanCommunity:
		return v.GermanCommunity
	default:
		return false
	}
}

// Flags returns the flags in column order.
func (v RegionVector) Flags() []bool {
	flags := make([]bool, len(Regions))
	for i, r := range Regions {
		flags[i] = v.Has(r)
	}
	return flags
}

// Count returns how many regions are set.
func (v RegionVector) Count() int {
	n := 0
	for _, r := range Regions {
		if v.Has(r) {
			n++
		}
	}
	return n
}

// Valid reports whether exactly one or all four flags are set.
func (v RegionVector) Valid() bool {
	n := v.Count()
	return n == 1 || n == len(Regions)
}

// Merge combines two vectors seen for the same channel. Differing vectors widen to AllRegions.
func (v RegionVector) Merge(o RegionVector) RegionVector {
	if v == o {
		return v
	}
	return AllRegions
}

// RegionVectorFromFlags builds a vector from flags in column order.
func RegionVectorFromFlags(flags []bool) RegionVector {
	var v RegionVector
	for i, r := range Regions {
		if i < len(flags) {
			v.set(r, flags[i])
		}
	}
	return v
}

func (v *RegionVector) set(r Region, on bool) {
	switch r {
	case Flanders:
		v.Flanders = on
	case Brussels:
		v.Brussels = on
	case Wallonia:
		v.Wallonia = on
	case GermanCommunity:
		v.GermanCommunity = on
	}
}
