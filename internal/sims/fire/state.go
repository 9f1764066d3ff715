package fire

// CellState enumerates the burn state of a single cell.
type CellState uint8

const (
	Unburned CellState = iota
	Burning
	Burned
	// Water never ignites and never transitions.
	Water
)

func (s CellState) String() string {
	switch s {
	case Unburned:
		return "unburned"
	case Burning:
		return "burning"
	case Burned:
		return "burned"
	case Water:
		return "water"
	default:
		return "unknown"
	}
}

// Point addresses a cell by row and column.
type Point struct {
	Row int `json:"row"`
	Col int `json:"col"`
}
