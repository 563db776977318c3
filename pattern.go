package chiptrack

import "fmt"

// Pattern is a reusable block of PatternRows rows. Patterns live in the pool
// of a Music and are referenced by id from the frame tables of the tracks.
type Pattern struct {
	Rows [PatternRows]Row
}

// Clear zeroes count rows starting from row, clipping to the pattern.
func (p *Pattern) Clear(row, count int) {
	for i := max(row, 0); i < min(row+count, PatternRows); i++ {
		p.Rows[i] = Row{}
	}
}

// MarshalRows packs count rows starting from row into consecutive RowSize
// byte records.
func (p *Pattern) MarshalRows(row, count int) ([]byte, error) {
	if row < 0 || count < 0 || row+count > PatternRows {
		return nil, fmt.Errorf("rows [%d,%d) out of pattern bounds", row, row+count)
	}
	ret := make([]byte, count*RowSize)
	for i := 0; i < count; i++ {
		p.Rows[row+i].put(ret[i*RowSize:])
	}
	return ret, nil
}

// UnmarshalRows unpacks consecutive row records from data, writing them
// starting at row. data must contain whole records and must fit in the
// pattern; otherwise nothing is written.
func (p *Pattern) UnmarshalRows(row int, data []byte) error {
	if len(data)%RowSize != 0 {
		return fmt.Errorf("%d bytes is not a whole number of rows", len(data))
	}
	count := len(data) / RowSize
	if row < 0 || row+count > PatternRows {
		return fmt.Errorf("rows [%d,%d) out of pattern bounds", row, row+count)
	}
	for i := 0; i < count; i++ {
		r, err := UnmarshalRow(data[i*RowSize:])
		if err != nil {
			return err
		}
		p.Rows[row+i] = r
	}
	return nil
}
