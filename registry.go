package warp

import "sort"

// The filter registry maps ids to descriptors. It is built once at init
// from the static descriptor lists contributed by the filter files and is
// never mutated afterwards.

var (
	registry     = map[string]Descriptor{}
	registryIDs  []string
	registryList []Descriptor
)

func registerFilters(descs ...Descriptor) {
	for _, d := range descs {
		registry[d.ID] = d
	}
}

func init() {
	registerFilters(radialFilters()...)
	registerFilters(waveFilters()...)
	registerFilters(noiseFilters()...)
	registerFilters(conformalFilters()...)
	registerFilters(mobiusFilters()...)
	registerFilters(sphereFilters()...)
	registerFilters(squareDiskFilters()...)
	registerFilters(weierstrassFilters()...)
	registerFilters(affineFilters()...)
	registerFilters(angularFilters()...)
	registerFilters(dropletFilters()...)

	registryIDs = make([]string, 0, len(registry))
	for id := range registry {
		registryIDs = append(registryIDs, id)
	}
	sort.Strings(registryIDs)
	registryList = make([]Descriptor, 0, len(registryIDs))
	for _, id := range registryIDs {
		registryList = append(registryList, registry[id])
	}
}

// Lookup returns the descriptor for a filter id.
func Lookup(id string) (Descriptor, bool) {
	d, ok := registry[id]
	return d, ok
}

// IDs returns all registered filter ids in sorted order.
func IDs() []string {
	out := make([]string, len(registryIDs))
	copy(out, registryIDs)
	return out
}

// Descriptors returns all registered descriptors ordered by id.
func Descriptors() []Descriptor {
	out := make([]Descriptor, len(registryList))
	copy(out, registryList)
	return out
}
