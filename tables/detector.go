package tables

import (
	"sort"
	"strings"

	"github.com/foliohq/folio/model"
	"github.com/foliohq/folio/source"
)

// Config holds detection parameters. The defaults are tuned for borderless
// tables; they are tunable constants, not structural invariants.
type Config struct {
	// MinWordsVertical is the number of words that must share a left edge
	// for the edge to count as a column boundary.
	MinWordsVertical int

	// MinWordsHorizontal is the number of words that must share a top edge
	// for the edge to count as a row boundary.
	MinWordsHorizontal int

	// Tolerance is the positional tolerance for edge alignment, in page
	// units.
	Tolerance float64

	// MinRows and MinCols reject grids too small to be tables.
	MinRows int
	MinCols int

	// MinOccupancy is the minimum fraction of grid cells that must contain
	// at least one word. Prose that happens to align rarely fills a grid.
	MinOccupancy float64

	// RegionGap is the vertical gap, in page units, that separates one
	// candidate region from the next.
	RegionGap float64
}

// DefaultConfig returns the default detection parameters.
func DefaultConfig() Config {
	return Config{
		MinWordsVertical:   2,
		MinWordsHorizontal: 1,
		Tolerance:          5.0,
		MinRows:            2,
		MinCols:            2,
		MinOccupancy:       0.6,
		RegionGap:          50.0,
	}
}

// Detector finds borderless tables from word positions.
type Detector struct {
	config Config
}

// NewDetector creates a detector with default configuration.
func NewDetector() *Detector {
	return &Detector{config: DefaultConfig()}
}

// Configure sets the detector configuration.
func (d *Detector) Configure(config Config) {
	d.config = config
}

// Detect finds tables on a page from its word tokens, in top-to-bottom
// region order. A failure here is recoverable: callers treat it as a page
// with zero tables.
func (d *Detector) Detect(words []source.Word) ([]model.TableRegion, error) {
	if len(words) == 0 {
		return nil, nil
	}

	var regions []model.TableRegion
	for _, cluster := range d.clusterWords(words) {
		if region := d.detectInCluster(cluster); region != nil {
			regions = append(regions, *region)
		}
	}
	return regions, nil
}

// clusterWords groups words into candidate regions by vertical proximity.
// Words separated by more than RegionGap start a new region.
func (d *Detector) clusterWords(words []source.Word) [][]source.Word {
	sorted := make([]source.Word, len(words))
	copy(sorted, words)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].BBox.Y0 != sorted[j].BBox.Y0 {
			return sorted[i].BBox.Y0 < sorted[j].BBox.Y0
		}
		return sorted[i].BBox.X0 < sorted[j].BBox.X0
	})

	var clusters [][]source.Word
	current := []source.Word{sorted[0]}
	maxY1 := sorted[0].BBox.Y1

	for _, w := range sorted[1:] {
		if w.BBox.Y0-maxY1 > d.config.RegionGap {
			clusters = append(clusters, current)
			current = nil
			maxY1 = w.BBox.Y1
		}
		current = append(current, w)
		if w.BBox.Y1 > maxY1 {
			maxY1 = w.BBox.Y1
		}
	}
	clusters = append(clusters, current)

	return clusters
}

// detectInCluster attempts to extract one table from a candidate region.
func (d *Detector) detectInCluster(words []source.Word) *model.TableRegion {
	if len(words) < d.config.MinRows*d.config.MinCols {
		return nil
	}

	colLefts := d.boundaries(words, func(w source.Word) float64 { return w.BBox.X0 }, d.config.MinWordsVertical)
	if len(colLefts) < d.config.MinCols {
		return nil
	}

	rowTops := d.boundaries(words, func(w source.Word) float64 { return w.BBox.Y0 }, d.config.MinWordsHorizontal)
	if len(rowTops) < d.config.MinRows {
		return nil
	}

	rows, cols := len(rowTops), len(colLefts)
	cells := make([][][]string, rows)
	for i := range cells {
		cells[i] = make([][]string, cols)
	}

	occupied := 0
	var bbox model.Rect
	first := true

	for _, w := range words {
		row := bucket(w.BBox.Y0, rowTops, d.config.Tolerance)
		col := bucket(w.BBox.X0, colLefts, d.config.Tolerance)
		if row < 0 || col < 0 {
			continue
		}
		if len(cells[row][col]) == 0 {
			occupied++
		}
		cells[row][col] = append(cells[row][col], w.Text)
		if first {
			bbox = w.BBox
			first = false
		} else {
			bbox = bbox.Union(w.BBox)
		}
	}

	if float64(occupied) < d.config.MinOccupancy*float64(rows*cols) {
		return nil
	}

	data := make([][]string, rows)
	for i := range data {
		data[i] = make([]string, cols)
		for j := range data[i] {
			data[i][j] = strings.Join(cells[i][j], " ")
		}
	}

	return &model.TableRegion{BBox: bbox, Rows: rows, Cols: cols, Data: data}
}

// boundaries clusters an edge coordinate across words and keeps clusters
// supported by at least minSupport words, in ascending order.
func (d *Detector) boundaries(words []source.Word, edge func(source.Word) float64, minSupport int) []float64 {
	values := make([]float64, 0, len(words))
	for _, w := range words {
		values = append(values, edge(w))
	}
	sort.Float64s(values)

	var kept []float64
	center := values[0]
	support := 1
	for _, v := range values[1:] {
		if v-center > d.config.Tolerance {
			if support >= minSupport {
				kept = append(kept, center)
			}
			center = v
			support = 1
			continue
		}
		// Average the cluster center, mirroring edge jitter on both sides.
		center = (center + v) / 2
		support++
	}
	if support >= minSupport {
		kept = append(kept, center)
	}

	return kept
}

// bucket returns the index of the greatest boundary not exceeding the value
// (within tolerance), or -1 if the value lies before the first boundary.
func bucket(v float64, bounds []float64, tolerance float64) int {
	idx := -1
	for i, b := range bounds {
		if v >= b-tolerance {
			idx = i
		} else {
			break
		}
	}
	return idx
}
