package graph

// Sample returns a small built-in journal graph used by the demo viewer
// and as a fixture in tests.
func Sample() *Snapshot {
	nodes := []Node{
		{ID: "e1", Label: "Morning pages", Type: TypeEntry, Meta: &Meta{Date: "2025-03-02", Snippet: "Slept badly, but the walk helped.", Tags: []string{"health", "sleep"}, EntryID: "e1", EntryType: "journal"}},
		{ID: "e2", Label: "Project kickoff", Type: TypeEntry, Meta: &Meta{Date: "2025-03-03", Snippet: "First sync with the new team.", Tags: []string{"work"}, EntryID: "e2", EntryType: "journal"}},
		{ID: "e3", Label: "Weekend plans", Type: TypeEntry, Meta: &Meta{Date: "2025-03-05", Snippet: "Hike if the weather holds.", Tags: []string{"health"}, EntryID: "e3", EntryType: "journal"}},
		{ID: "t-health", Label: "health", Type: TypeTag, Size: 26},
		{ID: "t-sleep", Label: "sleep", Type: TypeTag, Size: 16},
		{ID: "t-work", Label: "work", Type: TypeTag, Size: 22},
		{ID: "topic-wellbeing", Label: "wellbeing", Type: TypeTopic, Size: 30},
		{ID: "d-2025-03", Label: "March 2025", Type: TypeDate, Size: 18},
	}
	links := []Link{
		{Source: "e1", Target: "t-health", Type: LinkTag, Strength: 0.8},
		{Source: "e1", Target: "t-sleep", Type: LinkTag, Strength: 0.7},
		{Source: "e2", Target: "t-work", Type: LinkTag, Strength: 0.8},
		{Source: "e3", Target: "t-health", Type: LinkTag, Strength: 0.6},
		{Source: "t-health", Target: "topic-wellbeing", Type: LinkTopic, Strength: 0.9},
		{Source: "t-sleep", Target: "topic-wellbeing", Type: LinkTopic, Strength: 0.5},
		{Source: "e1", Target: "d-2025-03", Type: LinkTemporal, Strength: 0.4},
		{Source: "e2", Target: "d-2025-03", Type: LinkTemporal, Strength: 0.4},
		{Source: "e3", Target: "d-2025-03", Type: LinkTemporal, Strength: 0.4},
		{Source: "e1", Target: "e3", Type: LinkSemantic, Strength: 0.6},
	}
	s, err := New(nodes, links)
	if err != nil {
		panic(err)
	}
	return s
}
