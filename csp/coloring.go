package csp

// MapColoringConstraint requires two adjacent regions to differ in colour.
type MapColoringConstraint struct {
	Place1, Place2 string
}

// NewMapColoringConstraint returns the constraint place1 ≠ place2.
func NewMapColoringConstraint(place1, place2 string) MapColoringConstraint {
	return MapColoringConstraint{Place1: place1, Place2: place2}
}

// Variables returns both regions.
func (c MapColoringConstraint) Variables() []string {
	return []string{c.Place1, c.Place2}
}

// Satisfied reports true until both regions are coloured, then whether the
// colours differ.
func (c MapColoringConstraint) Satisfied(assignment map[string]string) bool {
	a, ok1 := assignment[c.Place1]
	b, ok2 := assignment[c.Place2]
	if !ok1 || !ok2 {
		return true
	}

	return a != b
}

// Australian regions.
const (
	WesternAustralia  = "Western Australia"
	NorthernTerritory = "Northern Territory"
	SouthAustralia    = "South Australia"
	Queensland        = "Queensland"
	NewSouthWales     = "New South Wales"
	Victoria          = "Victoria"
	Tasmania          = "Tasmania"
)

// Australia returns the classic seven-region map-colouring problem with the
// colours red, green and blue.
func Australia() *CSP[string, string] {
	regions := []string{
		WesternAustralia, NorthernTerritory, SouthAustralia,
		Queensland, NewSouthWales, Victoria, Tasmania,
	}
	domains := make(map[string][]string, len(regions))
	for _, r := range regions {
		domains[r] = []string{"red", "green", "blue"}
	}
	p, _ := New(regions, domains) // every region has a domain

	borders := [][2]string{
		{WesternAustralia, NorthernTerritory},
		{WesternAustralia, SouthAustralia},
		{SouthAustralia, NorthernTerritory},
		{Queensland, NorthernTerritory},
		{Queensland, SouthAustralia},
		{Queensland, NewSouthWales},
		{NewSouthWales, SouthAustralia},
		{Victoria, SouthAustralia},
		{Victoria, NewSouthWales},
		{Victoria, Tasmania},
	}
	for _, b := range borders {
		_ = p.AddConstraint(NewMapColoringConstraint(b[0], b[1]))
	}

	return p
}
