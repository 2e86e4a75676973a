// Package stations maps human station names to the provider's numeric
// station IDs.
package stations

import (
	_ "embed"
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

//go:embed stations.yaml
var stationsYAML []byte

type stationRecord struct {
	Name string `yaml:"name"`
	ID   int    `yaml:"id"`
}

type stationsFile struct {
	Stations []stationRecord `yaml:"stations"`
}

// Registry is the embedded station name to provider ID mapping.
type Registry struct {
	names []string
	byKey map[string]stationRecord
}

func NewRegistry() (*Registry, error) {
	var file stationsFile
	if err := yaml.Unmarshal(stationsYAML, &file); err != nil {
		return nil, fmt.Errorf("parsing embedded station registry: %w", err)
	}

	registry := &Registry{
		byKey: map[string]stationRecord{},
	}
	for _, station := range file.Stations {
		registry.names = append(registry.names, station.Name)
		registry.byKey[strings.ToLower(station.Name)] = station
	}
	slices.Sort(registry.names)

	return registry, nil
}

// Lookup resolves a station name, ignoring case.
func (r *Registry) Lookup(name string) (int, error) {
	station, ok := r.byKey[strings.ToLower(name)]
	if !ok {
		return 0, fmt.Errorf("unknown station %q, choose from: %s", name, strings.Join(r.names, ", "))
	}

	return station.ID, nil
}

// Names returns the known station names in alphabetical order.
func (r *Registry) Names() []string {
	return r.names
}

// ID returns the provider ID for a known name, for display alongside it.
func (r *Registry) ID(name string) int {
	return r.byKey[strings.ToLower(name)].ID
}
