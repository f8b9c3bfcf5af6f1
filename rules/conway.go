package rules

const (
	// MaxNeighbors is the size of the Moore neighborhood.
	MaxNeighbors = 8

	survivalLow  = 2
	survivalHigh = 3
	birth        = 3
)

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

A live cell survives with 2 or 3 live neighbors; a dead cell is born with exactly 3.
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	if alive {
		return neighbors == survivalLow || neighbors == survivalHigh
	}
	return neighbors == birth
}
