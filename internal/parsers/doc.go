// Package parsers reads vehicle-routing benchmark files into raw records.
//
// Three dialect families are supported:
//
//   - CVRP: TSPLIB/CVRPLIB keyword sections (NODE_COORD_SECTION, DEMAND_SECTION,
//     DEPOT_SECTION) with EUC_2D weights.
//   - CVRPTW: Solomon fixed-position records, terminated by end of file.
//   - HFVRP: heterogeneous fleet, either the classic positional layout or the
//     keyworded layout of large instances, told apart by a leading NAME token.
//
// Each reader is an explicit state machine over a tokenizer.Stream. Any
// structural problem aborts the parse with a *ParseError whose Kind is one of
// the sentinel errors below; no partial result is ever returned.
package parsers
