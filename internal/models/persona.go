package models

// PersonaID identifies a persona in the fixed catalog. IDs are stable
// across app versions and are never reused or reordered.
type PersonaID int

type Persona struct {
	ID         PersonaID `json:"id"`
	Name       string    `json:"name"`
	Energy     string    `json:"energy"`
	ThemeColor string    `json:"themeColor"`
	Feature    string    `json:"feature"`
	Quote      string    `json:"quote"`
}

// Catalog is the full persona table. Index N holds the persona with ID N+1.
var Catalog = []Persona{
	{1, "Flame", "Passion", "#FF4500", "flickering hair", "Take the first step today without hesitating"},
	{2, "Aurora", "Mystery", "#7FFFD4", "shimmering wings", "Today you shine in a color nobody has seen before"},
	{3, "Lightning", "Resolve", "#FFD700", "zigzag antennae", "Follow wherever your instinct leads"},
	{4, "Ocean", "Calm", "#1E90FF", "rolling wave tail", "Let things arrive at their own pace"},
	{5, "Forest", "Growth", "#228B22", "sprouting leaves", "Something small you plant today will grow"},
	{6, "Starlight", "Hope", "#E6E6FA", "trailing stardust", "Even a faint light is enough to navigate by"},
	{7, "Moonbeam", "Intuition", "#B0C4DE", "crescent horns", "Trust the quiet voice under the noise"},
	{8, "Sunrise", "Optimism", "#FFA07A", "glowing halo", "Every morning resets the scoreboard"},
	{9, "Breeze", "Freedom", "#87CEEB", "drifting ribbons", "Travel light today"},
	{10, "Ember", "Warmth", "#CD5C5C", "smoldering core", "Your steadiness warms more people than you know"},
	{11, "Frost", "Clarity", "#AFEEEE", "crystal lattice", "A cool head sees the whole board"},
	{12, "Storm", "Courage", "#708090", "thunderhead mane", "The thing you fear shrinks when you face it"},
	{13, "Blossom", "Kindness", "#FFB7C5", "petal crown", "One gentle word can carry someone's whole day"},
	{14, "River", "Flow", "#4682B4", "winding current", "Don't push the water, move with it"},
	{15, "Meadow", "Peace", "#9ACD32", "swaying grass tuft", "Rest is also progress"},
	{16, "Comet", "Ambition", "#9370DB", "blazing tail", "Aim farther than feels reasonable"},
	{17, "Mist", "Serenity", "#D3D3D3", "soft haze veil", "Not everything needs to be decided today"},
	{18, "Glacier", "Patience", "#ADD8E6", "slow-drifting shards", "What moves slowly still moves"},
	{19, "Sunset", "Reflection", "#FF7F50", "fading gradient fins", "Look back once, then keep walking"},
	{20, "Nova", "Creativity", "#FF69B4", "bursting sparks", "Make the thing only you would make"},
}

// DailyQuotes is the rotation table for the shared quote of the day.
var DailyQuotes = []string{
	"A good day starts with one honest word.",
	"Luck favors the ones who show up.",
	"Small routines carry big dreams.",
	"Today's energy is yours to spend, not save.",
	"You don't need permission to begin.",
	"The calm you practice becomes the calm you keep.",
	"Feed what you want to grow.",
	"A slow answer beats a wrong one.",
	"Your streak is proof, not pressure.",
	"Curiosity is a compass that never breaks.",
	"Be the warm room people walk into.",
	"One page a day is still a book a year.",
	"Doubt knocks loudest right before a door opens.",
	"What you repeat, you become.",
	"Leave today a little brighter than you found it.",
}

// PersonaByID returns the catalog entry for id, or false when the id is
// outside the catalog.
func PersonaByID(id PersonaID) (Persona, bool) {
	if id < 1 || int(id) > len(Catalog) {
		return Persona{}, false
	}
	return Catalog[id-1], true
}
