package core

import "fmt"

// String encodes the location as the row letter followed by the column
// letter, e.g. row 2 column 1 is "Cb".
func (l Location) String() string {
	return string([]byte{byte('A' + l.Row), byte('a' + l.Column)})
}

// ParseLocation decodes the two-letter form produced by Location.String.
func ParseLocation(s string) (Location, error) {
	if len(s) != 2 {
		return Location{}, fmt.Errorf("%w: %q", ErrInvalidCoordinate, s)
	}
	row, col := s[0], s[1]
	if row < 'A' || row > 'Z' || col < 'a' || col > 'z' {
		return Location{}, fmt.Errorf("%w: %q", ErrInvalidCoordinate, s)
	}
	return Location{Row: int(row - 'A'), Column: int(col - 'a')}, nil
}
