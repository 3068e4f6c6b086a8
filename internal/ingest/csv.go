package ingest

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/openrouteengine/compass/graph"
)

// CSVSource builds a Graph from a pair of CSV files: a vertex file
// with columns (vertex_id, lon, lat) and an edge file with columns
// (edge_id, src, dst, distance, grade, road_class), both with a header
// row. Each file is read twice — once to count data rows so the
// builder can preallocate, once to fill it — rather than buffering the
// whole file in memory up front.
type CSVSource struct {
	VertexPath string
	EdgePath   string
}

// NewCSVSource returns a CSVSource reading from the given file paths.
func NewCSVSource(vertexPath, edgePath string) *CSVSource {
	return &CSVSource{VertexPath: vertexPath, EdgePath: edgePath}
}

// Load builds the Graph, counting rows in a first pass over each file
// before allocating the builder, then filling it in a second pass.
func (s *CSVSource) Load() (*graph.Graph, error) {
	nVertices, err := countDataRows(s.VertexPath)
	if err != nil {
		return nil, fmt.Errorf("ingest: counting vertex rows: %w", err)
	}
	nEdges, err := countDataRows(s.EdgePath)
	if err != nil {
		return nil, fmt.Errorf("ingest: counting edge rows: %w", err)
	}

	b := graph.NewBuilder(nVertices, nEdges)

	if err := s.fillVertices(b); err != nil {
		return nil, err
	}
	if err := s.fillEdges(b); err != nil {
		return nil, err
	}

	return b.Build()
}

// countDataRows counts rows after the header, the first pass of the
// two-pass read.
func countDataRows(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	if _, err := r.Read(); err != nil {
		return 0, fmt.Errorf("reading header: %w", err)
	}

	n := 0
	for {
		_, err := r.Read()
		if err != nil {
			break
		}
		n++
	}
	return n, nil
}

func (s *CSVSource) fillVertices(b *graph.Builder) error {
	f, err := os.Open(s.VertexPath)
	if err != nil {
		return err
	}
	defer f.Close()

	r := csv.NewReader(f)
	if _, err := r.Read(); err != nil {
		return fmt.Errorf("reading vertex header: %w", err)
	}

	for {
		record, err := r.Read()
		if err != nil {
			break
		}
		if len(record) != 3 {
			return fmt.Errorf("%w: vertex row has %d fields, want 3", ErrMalformedRecord, len(record))
		}
		id, err := strconv.ParseUint(record[0], 10, 64)
		if err != nil {
			return fmt.Errorf("%w: vertex_id %q: %v", ErrMalformedRecord, record[0], err)
		}
		lon, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			return fmt.Errorf("%w: lon %q: %v", ErrMalformedRecord, record[1], err)
		}
		lat, err := strconv.ParseFloat(record[2], 64)
		if err != nil {
			return fmt.Errorf("%w: lat %q: %v", ErrMalformedRecord, record[2], err)
		}
		if err := b.AddVertex(graph.VertexId(id), graph.Coordinate{Lon: lon, Lat: lat}); err != nil {
			return err
		}
	}
	return nil
}

func (s *CSVSource) fillEdges(b *graph.Builder) error {
	f, err := os.Open(s.EdgePath)
	if err != nil {
		return err
	}
	defer f.Close()

	r := csv.NewReader(f)
	if _, err := r.Read(); err != nil {
		return fmt.Errorf("reading edge header: %w", err)
	}

	for {
		record, err := r.Read()
		if err != nil {
			break
		}
		if len(record) != 6 {
			return fmt.Errorf("%w: edge row has %d fields, want 6", ErrMalformedRecord, len(record))
		}
		id, err := strconv.ParseUint(record[0], 10, 64)
		if err != nil {
			return fmt.Errorf("%w: edge_id %q: %v", ErrMalformedRecord, record[0], err)
		}
		src, err := strconv.ParseUint(record[1], 10, 64)
		if err != nil {
			return fmt.Errorf("%w: src %q: %v", ErrMalformedRecord, record[1], err)
		}
		dst, err := strconv.ParseUint(record[2], 10, 64)
		if err != nil {
			return fmt.Errorf("%w: dst %q: %v", ErrMalformedRecord, record[2], err)
		}
		distance, err := strconv.ParseFloat(record[3], 64)
		if err != nil {
			return fmt.Errorf("%w: distance %q: %v", ErrMalformedRecord, record[3], err)
		}
		grade, err := strconv.ParseFloat(record[4], 64)
		if err != nil {
			return fmt.Errorf("%w: grade %q: %v", ErrMalformedRecord, record[4], err)
		}
		roadClass, err := strconv.ParseUint(record[5], 10, 8)
		if err != nil {
			return fmt.Errorf("%w: road_class %q: %v", ErrMalformedRecord, record[5], err)
		}
		if err := b.AddEdge(graph.EdgeId(id), graph.VertexId(src), graph.VertexId(dst), distance, grade, uint8(roadClass)); err != nil {
			return err
		}
	}
	return nil
}
