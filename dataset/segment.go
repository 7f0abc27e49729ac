package dataset

import "math"

// Segment is one slice of a categorical distribution.
type Segment struct {
	Name       string  `json:"name"`
	Value      float64 `json:"value"`
	ColorIndex int     `json:"color_index"`
}

// ValueField returns the key segments are built from: the first numeric
// field of the first record that is not the name field. The second result
// is false when no such field exists.
func ValueField(records []Record) (string, bool) {
	if len(records) == 0 {
		return "", false
	}
	for _, f := range records[0].Fields {
		if f.Key == NameField {
			continue
		}
		if _, ok := f.Value.(float64); ok {
			return f.Key, true
		}
	}
	return "", false
}

// Segments builds the segment sequence using ValueField. It returns nil
// when the records carry no numeric field.
func Segments(records []Record) []Segment {
	field, ok := ValueField(records)
	if !ok {
		return nil
	}
	return SegmentsByField(records, field)
}

// SegmentsByField builds one segment per record from the named field.
// Missing or non-numeric values become 0 and negatives are clamped to 0.
func SegmentsByField(records []Record, field string) []Segment {
	if len(records) == 0 {
		return nil
	}
	segments := make([]Segment, 0, len(records))
	for i, rec := range records {
		v, _ := rec.Number(field)
		if v < 0 || math.IsNaN(v) {
			v = 0
		}
		segments = append(segments, Segment{
			Name:       rec.Name(),
			Value:      v,
			ColorIndex: i % len(Palette),
		})
	}
	return segments
}

// Total returns the sum of all segment values.
func Total(segments []Segment) float64 {
	var total float64
	for _, s := range segments {
		total += s.Value
	}
	return total
}
