package structure

// Type identifies a category of building construction.
type Type string

const (
	SteelFrame                   Type = "steel-frame"
	SteelReinforcedConcrete      Type = "steel-reinforced-concrete"
	SteelFrameReinforcedConcrete Type = "steel-frame-reinforced-concrete"
	ReinforcedConcrete           Type = "reinforced-concrete"
	PrecastConcrete              Type = "precast-concrete"
	ReinforcedBrick              Type = "reinforced-brick"
)

// Def is one row of the structure table.
type Def struct {
	Key            Type   `yaml:"key" json:"key"`
	DisplayName    string `yaml:"display_name" json:"display_name"`
	LifeLimitYears int    `yaml:"life_limit_years" json:"life_limit_years"`
}

// tableFile is the on-disk layout of a structure table.
type tableFile struct {
	Structures []Def `yaml:"structures"`
}
