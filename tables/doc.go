// Package tables implements table detection and table/text reconciliation.
//
// Detection uses a text-positioning strategy tuned for borderless tables:
// word edges are clustered within a positional tolerance, and a cluster
// becomes a column boundary only when enough words share it vertically.
// Grids that pass the occupancy check are extracted as row-major cell
// grids.
//
// Reconciliation keeps the prose and table views of a page mutually
// exclusive: any text block whose rectangle geometrically overlaps a
// detected table region is excluded from prose output. Partial overlap is
// sufficient; containment is not required.
//
// Basic usage:
//
//	det := tables.NewDetector()
//	regions, err := det.Detect(page.Words)
//	if err != nil {
//	    regions = nil // page degrades to zero tables
//	}
//	prose := tables.Reconcile(page.Blocks, regions)
package tables
