package domain

// Undirected edge of the complete graph.
// Time equals Distance for time-windowed instances and is zero otherwise.
type Link struct {
	Name         string
	StartPointID int
	EndPointID   int
	Distance     float64
	Time         float64
}
