package parser

// Exit tells the caller whether a production finished cleanly.
type Exit uint8

const (
	// Complete: the production is finished; siblings may be tried.
	Complete Exit = iota
	// Cut: the production committed but a required piece was missing.
	Cut
)

// Join combines two exits; Cut wins.
func (e Exit) Join(o Exit) Exit {
	if e == Cut || o == Cut {
		return Cut
	}
	return Complete
}

func (e Exit) IsCut() bool { return e == Cut }

func (e Exit) String() string {
	if e == Cut {
		return "cut"
	}
	return "complete"
}
