package tour

// SectionDef is a data-driven section definition. Sections are stateless;
// everything they produce goes through the Transcript passed to Run.
type SectionDef struct {
	ID          string          // Unique identifier, e.g., "VC01"
	Name        string          // Dotted name, e.g., "values.assignment"
	Topic       string          // Category, e.g., "values", "pointers", "slices"
	Title       string          // Heading shown when the section runs
	Description string          // One-line description for listings
	Run         func(*Transcript) // Produces the section's transcript

	// Documentation fields for the sections command
	Rationale  string // What the section teaches and why it matters
	Contrast   string // How the behavior differs from ownership-checked languages
	KeyExample string // The minimal code the section is built around
}

// SectionInfo provides metadata about a section for documentation/tooling.
type SectionInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Topic       string `json:"topic"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Rationale   string `json:"rationale,omitempty"`
	Contrast    string `json:"contrast,omitempty"`
	KeyExample  string `json:"key_example,omitempty"`
}

// Info extracts metadata from a SectionDef for documentation/tooling.
func (s SectionDef) Info() SectionInfo {
	return SectionInfo{
		ID:          s.ID,
		Name:        s.Name,
		Topic:       s.Topic,
		Title:       s.Title,
		Description: s.Description,
		Rationale:   s.Rationale,
		Contrast:    s.Contrast,
		KeyExample:  s.KeyExample,
	}
}

// TopicOrder is the canonical presentation order of topics. Topics not
// listed here sort after the known ones, alphabetically.
var TopicOrder = []string{"values", "pointers", "slices", "practical", "summary"}

// topicRank returns the sort rank of a topic within TopicOrder.
func topicRank(topic string) int {
	for i, t := range TopicOrder {
		if t == topic {
			return i
		}
	}
	return len(TopicOrder)
}

// topicTitles maps topics to their display headings.
var topicTitles = map[string]string{
	"values":    "Values and Copies",
	"pointers":  "Pointers and Sharing",
	"slices":    "Slices",
	"practical": "Practical Example",
	"summary":   "Summary",
}

// TopicTitle returns the display heading for a topic. Unknown topics fall
// back to the raw topic name.
func TopicTitle(topic string) string {
	if title, ok := topicTitles[topic]; ok {
		return title
	}
	return topic
}
