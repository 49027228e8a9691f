package tour

import (
	"sort"
	"sync"
)

// globalRegistry is the single global registry for all tour sections.
var globalRegistry = &Registry{
	sections: make(map[string]SectionDef),
}

// Registry stores registered sections for discovery.
type Registry struct {
	mu       sync.RWMutex
	sections map[string]SectionDef // keyed by ID
}

// Register adds a section to the global registry.
// Call this from init() functions in section files.
func Register(section SectionDef) {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	globalRegistry.sections[section.ID] = section
}

// All returns all registered sections in canonical order: topic rank
// first, then ID.
func All() []SectionDef {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()

	sections := make([]SectionDef, 0, len(globalRegistry.sections))
	for _, s := range globalRegistry.sections {
		sections = append(sections, s)
	}
	sort.Slice(sections, func(i, j int) bool {
		ri, rj := topicRank(sections[i].Topic), topicRank(sections[j].Topic)
		if ri != rj {
			return ri < rj
		}
		return sections[i].ID < sections[j].ID
	})
	return sections
}

// ByID returns a section by its ID.
func ByID(id string) (SectionDef, bool) {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	s, ok := globalRegistry.sections[id]
	return s, ok
}

// ByTopic returns all sections in a specific topic, ordered by ID.
func ByTopic(topic string) []SectionDef {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()

	var sections []SectionDef
	for _, s := range globalRegistry.sections {
		if s.Topic == topic {
			sections = append(sections, s)
		}
	}
	sort.Slice(sections, func(i, j int) bool {
		return sections[i].ID < sections[j].ID
	})
	return sections
}

// Count returns the number of registered sections.
func Count() int {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	return len(globalRegistry.sections)
}

// Clear removes all registered sections. Used for testing.
func Clear() {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	globalRegistry.sections = make(map[string]SectionDef)
}
