package blueprint

// ObjectTemplate is a palette entry for placing furnishings. The palette
// can be overridden per project (see the project package).
type ObjectTemplate struct {
	Name   string  `yaml:"name"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// DefaultTemplates returns the built-in furnishing palette.
func DefaultTemplates() []ObjectTemplate {
	return []ObjectTemplate{
		{Name: "Bed (Queen)", Width: 5, Height: 6.7},
		{Name: "Dining Table", Width: 6, Height: 3.5},
		{Name: "Sofa", Width: 7, Height: 3},
		{Name: "Chair", Width: 2, Height: 2},
		{Name: "Rug", Width: 8, Height: 5},
	}
}
