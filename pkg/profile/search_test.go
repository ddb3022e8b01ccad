package profile

import "testing"

func TestSearch(t *testing.T) {
	items := []Item{
		{ID: "1", Name: "bright-comet"},
		{ID: "2", Name: "silent-nebula"},
		{ID: "3", Name: "golden-comet"},
		{ID: "4", Name: "blue-orbit"},
	}

	tests := []struct {
		name  string
		query string
		limit int
		want  []string
	}{
		{"empty query", "", 0, []string{"1", "2", "3", "4"}},
		{"empty query limited", "", 2, []string{"1", "2"}},
		{"no match", "xyz", 0, nil},
		{"exact word", "nebula", 0, []string{"2"}},
		{"limit", "comet", 1, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Search(items, tt.query, tt.limit)
			if tt.name == "limit" {
				if len(got) != 1 {
					t.Errorf("Search(%q, 1) returned %d results, want 1", tt.query, len(got))
				}
				return
			}
			if len(got) != len(tt.want) {
				t.Fatalf("Search(%q) = %v, want ids %v", tt.query, got, tt.want)
			}
			for i, id := range tt.want {
				if got[i].ID != id {
					t.Errorf("Search(%q)[%d] = %s, want %s", tt.query, i, got[i].ID, id)
				}
			}
		})
	}
}

func TestSearchFuzzy(t *testing.T) {
	items := []Item{
		{ID: "1", Name: "silent-nebula"},
		{ID: "2", Name: "bright-comet"},
	}
	got := Search(items, "brcm", 0)
	if len(got) != 1 || got[0].ID != "2" {
		t.Errorf("Search(brcm) = %v, want bright-comet", got)
	}
}
