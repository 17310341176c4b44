package graph

// USCities returns the fifteen-city United States network: 15 vertices and
// 26 undirected edges.
func USCities() *Graph[string] {
	g := New(
		"Seattle", "San Francisco", "Los Angeles", "Riverside", "Phoenix",
		"Chicago", "Boston", "New York", "Atlanta", "Miami",
		"Dallas", "Houston", "Detroit", "Philadelphia", "Washington",
	)
	for _, e := range [][2]string{
		{"Seattle", "Chicago"},
		{"Seattle", "San Francisco"},
		{"San Francisco", "Riverside"},
		{"San Francisco", "Los Angeles"},
		{"Los Angeles", "Riverside"},
		{"Los Angeles", "Phoenix"},
		{"Riverside", "Phoenix"},
		{"Riverside", "Chicago"},
		{"Phoenix", "Dallas"},
		{"Phoenix", "Houston"},
		{"Dallas", "Chicago"},
		{"Dallas", "Atlanta"},
		{"Dallas", "Houston"},
		{"Houston", "Atlanta"},
		{"Houston", "Miami"},
		{"Atlanta", "Chicago"},
		{"Atlanta", "Washington"},
		{"Atlanta", "Miami"},
		{"Miami", "Washington"},
		{"Chicago", "Detroit"},
		{"Detroit", "Boston"},
		{"Detroit", "Washington"},
		{"Detroit", "New York"},
		{"Boston", "New York"},
		{"New York", "Philadelphia"},
		{"Philadelphia", "Washington"},
	} {
		_ = g.AddEdgeByVertices(e[0], e[1]) // all endpoints declared above
	}

	return g
}
