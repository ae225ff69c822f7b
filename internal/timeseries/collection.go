package timeseries

import "fmt"

// VariableType tags how a timeseries in a collection is produced.
type VariableType int

const (
	// Exogenous variables are supplied externally as model forcing and
	// are never written by components.
	Exogenous VariableType = iota
	// Endogenous variables are computed by a component's solve step.
	Endogenous
)

func (vt VariableType) String() string {
	switch vt {
	case Exogenous:
		return "exogenous"
	case Endogenous:
		return "endogenous"
	default:
		return "unknown"
	}
}

// Item is one named entry of a collection, as handed out by reads.
type Item struct {
	Name       string
	Timeseries *Timeseries
	Type       VariableType
}

type collectionEntry struct {
	series *Timeseries
	vtype  VariableType
}

// TimeseriesCollection maps variable names to timeseries across a whole
// model. Iteration follows insertion order so that runs, tests, and
// exported files are reproducible; the order carries no solving
// semantics.
type TimeseriesCollection struct {
	entries map[string]collectionEntry
	order   []string
}

// NewCollection returns an empty collection.
func NewCollection() *TimeseriesCollection {
	return &TimeseriesCollection{
		entries: make(map[string]collectionEntry),
	}
}

// AddTimeseries inserts or replaces the entry for name.
//
// Replacement is intentional ("latest registration wins"): model setup
// code commonly registers a placeholder series and swaps in real data
// later. A replaced entry keeps its original position in iteration
// order.
func (c *TimeseriesCollection) AddTimeseries(name string, series *Timeseries, vtype VariableType) {
	if _, exists := c.entries[name]; !exists {
		c.order = append(c.order, name)
	}
	c.entries[name] = collectionEntry{series: series, vtype: vtype}
}

// GetTimeseriesByName returns a clone of the named series, or nil if it
// is not present. Mutating the clone never affects the collection.
func (c *TimeseriesCollection) GetTimeseriesByName(name string) *Timeseries {
	entry, ok := c.entries[name]
	if !ok {
		return nil
	}
	return entry.series.Clone()
}

// VariableType returns the tag for name.
func (c *TimeseriesCollection) VariableType(name string) (VariableType, bool) {
	entry, ok := c.entries[name]
	if !ok {
		return 0, false
	}
	return entry.vtype, true
}

// Has reports whether name is registered.
func (c *TimeseriesCollection) Has(name string) bool {
	_, ok := c.entries[name]
	return ok
}

// Len returns the number of registered series.
func (c *TimeseriesCollection) Len() int {
	return len(c.entries)
}

// Names returns the registered names in insertion order.
func (c *TimeseriesCollection) Names() []string {
	names := make([]string, len(c.order))
	copy(names, c.order)
	return names
}

// Timeseries returns clones of all entries in insertion order.
func (c *TimeseriesCollection) Timeseries() []Item {
	items := make([]Item, 0, len(c.order))
	for _, name := range c.order {
		entry := c.entries[name]
		items = append(items, Item{
			Name:       name,
			Timeseries: entry.series.Clone(),
			Type:       entry.vtype,
		})
	}
	return items
}

// AtTime resolves the named series and interpolates it at t. Behaves
// exactly like GetTimeseriesByName(name).AtTime(t) without paying for
// the clone; this is the model driver's per-step read path.
func (c *TimeseriesCollection) AtTime(name string, t float64) (float64, bool, error) {
	entry, ok := c.entries[name]
	if !ok {
		return 0, false, nil
	}
	value, err := entry.series.AtTime(t)
	return value, true, err
}

// SetValue writes into the named series at index. This is the model
// driver's write path for endogenous results; external holders of
// clones are unaffected.
func (c *TimeseriesCollection) SetValue(name string, index int, value float64) error {
	entry, ok := c.entries[name]
	if !ok {
		return fmt.Errorf("timeseries: no series named %q", name)
	}
	return entry.series.Set(index, value)
}
