package constants

// ThemeSeed is one entry of the fixed color theme catalog.
type ThemeSeed struct {
	ID   string
	Name string
	Hex  string
	Cost int
}

// DefaultThemeID is unlocked from the start and selected on first run.
const DefaultThemeID = "red"

// ThemeCatalog is the fixed catalog seeded into a fresh GameState. Costs are
// paid in points; unlocks never revert.
var ThemeCatalog = []ThemeSeed{
	{ID: "red", Name: "REDCHAIN RED", Hex: "#FF0000", Cost: 0},
	{ID: "purple", Name: "NEON PURPLE", Hex: "#A855F7", Cost: 5000},
	{ID: "blue", Name: "LIGHT BLUE", Hex: "#3B82F6", Cost: 7500},
	{ID: "deepblue", Name: "DEEP BLUE", Hex: "#1E40AF", Cost: 10000},
	{ID: "emerald", Name: "STOIC EMERALD", Hex: "#10B981", Cost: 15000},
	{ID: "orange", Name: "VALOR ORANGE", Hex: "#F97316", Cost: 12500},
	{ID: "yellow", Name: "CORE YELLOW", Hex: "#EAB308", Cost: 15000},
	{ID: "rose", Name: "CYBER ROSE", Hex: "#FB7185", Cost: 20000},
	{ID: "void", Name: "GOLDEN VOID", Hex: "#FFD700", Cost: 50000},
	{ID: "frozen", Name: "FROZEN GHOST", Hex: "#E0F2FE", Cost: 30000},
	{ID: "phantom", Name: "PHANTOM GREY", Hex: "#4B5563", Cost: 25000},
	{ID: "toxic", Name: "TOXIC MINT", Hex: "#2DD4BF", Cost: 18000},
}
