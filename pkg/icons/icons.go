package icons

import "strings"

// Default is used when the plant type matches no keyword.
const Default = "🌱"

type entry struct {
	keyword string
	emoji   string
}

// Ordered: first keyword contained in the type wins, not longest match.
var table = []entry{
	{"tomato", "🍅"},
	{"pepper", "🌶️"},
	{"lettuce", "🥬"},
	{"carrot", "🥕"},
	{"cucumber", "🥒"},
	{"strawberry", "🍓"},
	{"corn", "🌽"},
	{"potato", "🥔"},
	{"onion", "🧅"},
	{"garlic", "🧄"},
	{"bean", "🫘"},
	{"pea", "🫛"},
	{"squash", "🎃"},
	{"pumpkin", "🎃"},
	{"watermelon", "🍉"},
	{"melon", "🍈"},
	{"rose", "🌹"},
	{"sunflower", "🌻"},
	{"tulip", "🌷"},
	{"herb", "🌿"},
	{"basil", "🌿"},
	{"mint", "🌿"},
}

// ForType returns the emoji for a plant type, case-insensitive substring match.
func ForType(plantType string) string {
	t := strings.ToLower(plantType)
	for _, e := range table {
		if strings.Contains(t, e.keyword) {
			return e.emoji
		}
	}
	return Default
}
