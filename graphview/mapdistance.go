package graphview

// MapDistance is a map-backed DistanceMap. The caller seeds it with initial
// distances before passing it to a finder; the finder mutates it in place.
type MapDistance[N comparable, D Number] map[N]D

// NewMapDistance builds a MapDistance with every node in init set to its
// corresponding value.
func NewMapDistance[N comparable, D Number](init map[N]D) MapDistance[N, D] {
	d := make(MapDistance[N, D], len(init))
	for n, v := range init {
		d[n] = v
	}
	return d
}

// At implements DistanceMap. A node absent from the map returns the zero
// value of D; callers are expected to pre-populate every node that appears
// in the graph view before passing this to a finder.
func (d MapDistance[N, D]) At(n N) D { return d[n] }

// Set implements DistanceMap.
func (d MapDistance[N, D]) Set(n N, v D) { d[n] = v }
