package gamedata

// MonsterDef defines a monster type loaded from JSON.
type MonsterDef struct {
	ID          string `json:"id"`          // Unique identifier (e.g., "orc")
	Name        string `json:"name"`        // Display name
	Glyph       string `json:"glyph"`       // Single character for rendering
	Color       string `json:"color"`       // Hex color code (e.g., "#3F7F3F")
	SpawnWeight int    `json:"spawnWeight"` // Relative spawn frequency (higher = more common)
}

// GlyphRune returns the glyph as a rune for rendering.
func (m *MonsterDef) GlyphRune() rune {
	if len(m.Glyph) == 0 {
		return '?'
	}
	return rune(m.Glyph[0])
}

// MonstersFile represents the structure of monsters.json.
type MonstersFile struct {
	Player   MonsterDef   `json:"player"`
	Monsters []MonsterDef `json:"monsters"`
}

// LoadMonsters loads monster definitions from the embedded monsters.json.
func LoadMonsters() (MonstersFile, error) {
	return Load[MonstersFile]("monsters.json")
}

// MustLoadMonsters loads monster definitions, panicking on error.
func MustLoadMonsters() MonstersFile {
	file, err := LoadMonsters()
	if err != nil {
		panic(err)
	}
	return file
}
