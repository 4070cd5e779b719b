package art

// Idea is a suggested mood and style pairing.
type Idea struct {
	Mood  Mood   `json:"mood"`
	Style Style  `json:"style"`
	Idea  string `json:"idea"`
}

var ideas = []Idea{
	{Happy, Abstract, "Create flowing shapes with bright yellows and oranges"},
	{Calm, Watercolor, "Paint gentle blues and greens with soft transitions"},
	{Mysterious, Cosmic, "Design deep space scenes with purple nebulas"},
	{Energetic, Neon, "Make electric patterns with glowing colors"},
	{Dreamy, Surreal, "Combine impossible elements in floating compositions"},
	{Adventurous, Geometric, "Build mountain-like structures with bold angles"},
}

// Ideas returns the inspiration list. The slice is a fresh copy.
func Ideas() []Idea {
	out := make([]Idea, len(ideas))
	copy(out, ideas)
	return out
}
