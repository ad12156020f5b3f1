package overture

import (
	"io"

	"github.com/parquet-go/parquet-go"
)

// segmentRow and connectorRow are the on-disk GeoParquet projections
// ReadSegments/ReadConnectors decode; OvertureMaps ships segments and
// connectors as separate theme/type parquet datasets.
type segmentRow struct {
	ID       string  `parquet:"id"`
	Subtype  string  `parquet:"subtype"`
	Class    string  `parquet:"class"`
	Subclass string  `parquet:"subclass,optional"`
}

type connectorRow struct {
	ID  string  `parquet:"id"`
	Lon float64 `parquet:"lon"`
	Lat float64 `parquet:"lat"`
}

// ReadSegments streams segmentRow batches from an OvertureMaps
// transportation/segment parquet file, yielding the minimal Segment shell
// (callers attach Geometry/Connectors/Restrictions/SpeedLimits separately,
// since those are nested structures this flat projection doesn't carry).
func ReadSegments(r io.ReaderAt, size int64) ([]Segment, error) {
	pf, err := parquet.OpenFile(r, size)
	if err != nil {
		return nil, err
	}
	reader := parquet.NewGenericReader[segmentRow](pf)
	defer reader.Close()

	var out []Segment
	buf := make([]segmentRow, 1024)
	for {
		n, err := reader.Read(buf)
		for _, row := range buf[:n] {
			out = append(out, Segment{ID: row.ID, Subtype: row.Subtype, Class: row.Class, Subclass: row.Subclass})
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if n == 0 {
			break
		}
	}
	return out, nil
}

// ReadConnectors streams connectorRow batches from an OvertureMaps
// transportation/connector parquet file.
func ReadConnectors(r io.ReaderAt, size int64) ([]Connector, error) {
	pf, err := parquet.OpenFile(r, size)
	if err != nil {
		return nil, err
	}
	reader := parquet.NewGenericReader[connectorRow](pf)
	defer reader.Close()

	var out []Connector
	buf := make([]connectorRow, 1024)
	for {
		n, err := reader.Read(buf)
		for _, row := range buf[:n] {
			out = append(out, Connector{ID: row.ID, Lon: row.Lon, Lat: row.Lat})
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if n == 0 {
			break
		}
	}
	return out, nil
}
