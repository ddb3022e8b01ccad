package profile

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
)

var (
	adjectives = []string{
		"bright", "silent", "distant", "golden", "wandering", "quiet", "blue",
		"restless", "ancient", "bold", "gentle", "swift",
	}
	nouns = []string{
		"comet", "nebula", "quasar", "pulsar", "orbit", "nova", "meteor",
		"aurora", "eclipse", "horizon", "zenith", "lumen",
	}
	places = []string{
		"Lisbon", "Oslo", "Nairobi", "Osaka", "Quito", "Tallinn", "Perth",
		"Montreal", "Cusco", "Tbilisi",
	}
)

// Synthetic generates n deterministic profiles for seeding and previews.
// The same seed yields the same ids, names and timestamps; profiles are
// created one minute apart starting at start.
func Synthetic(n int, seed uint64, start time.Time) []Detail {
	if n <= 0 {
		return nil
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	out := make([]Detail, n)
	for i := range out {
		adj := adjectives[rng.IntN(len(adjectives))]
		noun := nouns[rng.IntN(len(nouns))]
		id := uuid.NewSHA1(uuid.NameSpaceOID, fmt.Appendf(nil, "galaxy/%d/%d", seed, i))
		out[i] = Detail{
			Item: Item{
				ID:        id.String(),
				Name:      fmt.Sprintf("%s-%s-%d", adj, noun, i),
				Image:     fmt.Sprintf("https://avatars.invalid/%s.png", id),
				CreatedAt: start.Add(time.Duration(i) * time.Minute),
			},
			Bio:      fmt.Sprintf("A %s %s drifting through the galaxy.", adj, noun),
			Location: places[rng.IntN(len(places))],
		}
	}
	return out
}
