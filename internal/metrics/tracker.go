package metrics

import (
	"fmt"
	"sort"
	"strings"
)

// AverageTracker keeps a running average of a named quantity.
type AverageTracker struct {
	Name  string
	val   float64
	sum   float64
	count float64
	avg   float64
}

func NewAverageTracker(name string) *AverageTracker {
	return &AverageTracker{Name: name}
}

// Update records a new value observed n times.
func (t *AverageTracker) Update(value float64, n int) {
	t.val = value
	t.sum += value * float64(n)
	t.count += float64(n)
	t.avg = t.sum / t.count
}

// Item returns the current average.
func (t *AverageTracker) Item() float64 { return t.avg }

func (t *AverageTracker) Reset() {
	t.val = 0
	t.sum = 0
	t.count = 0
	t.avg = 0
}

func (t *AverageTracker) String() string {
	return fmt.Sprintf("%s %.4f (%.4f)", t.Name, t.val, t.avg)
}

// TrackerItem is one (name, average) pair from a TrackerGroup.
type TrackerItem struct {
	Name  string
	Value float64
}

// TrackerGroup is a collection of average trackers that preserves the order
// in which quantities were first seen.
type TrackerGroup struct {
	order    []string
	trackers map[string]*AverageTracker
}

func NewTrackerGroup() *TrackerGroup {
	return &TrackerGroup{trackers: make(map[string]*AverageTracker)}
}

// Update feeds a map of quantity names to values, creating trackers lazily.
// New names are registered in sorted order to keep runs deterministic.
func (g *TrackerGroup) Update(data map[string]float64) {
	names := make([]string, 0, len(data))
	for name := range data {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		g.tracker(name).Update(data[name], 1)
	}
}

// UpdateN records one quantity observed n times.
func (g *TrackerGroup) UpdateN(name string, value float64, n int) {
	g.tracker(name).Update(value, n)
}

func (g *TrackerGroup) tracker(name string) *AverageTracker {
	t, ok := g.trackers[name]
	if !ok {
		t = NewAverageTracker(name)
		g.trackers[name] = t
		g.order = append(g.order, name)
	}
	return t
}

// Item returns the current average for a name, or zero when unknown.
func (g *TrackerGroup) Item(name string) float64 {
	if t, ok := g.trackers[name]; ok {
		return t.Item()
	}
	return 0
}

// Items returns (name, average) pairs in first-seen order.
func (g *TrackerGroup) Items() []TrackerItem {
	items := make([]TrackerItem, 0, len(g.order))
	for _, name := range g.order {
		items = append(items, TrackerItem{Name: name, Value: g.trackers[name].Item()})
	}
	return items
}

func (g *TrackerGroup) Reset() {
	g.order = nil
	g.trackers = make(map[string]*AverageTracker)
}

func (g *TrackerGroup) String() string {
	parts := make([]string, 0, len(g.order))
	for _, name := range g.order {
		parts = append(parts, g.trackers[name].String())
	}
	return strings.Join(parts, " ")
}
