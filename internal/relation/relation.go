package relation

// Relation is an ordered sequence of rows sharing an implicit schema. Label is
// display metadata set by rename; no operator reads it.
type Relation struct {
	Rows  []Row
	Label string
}

func New(rows ...Row) Relation {
	return Relation{Rows: rows}
}

func (r Relation) Len() int {
	return len(r.Rows)
}

func (r Relation) IsEmpty() bool {
	return len(r.Rows) == 0
}

// Columns returns the keys of the first row, which define the relation's
// schema. An empty relation has none.
func (r Relation) Columns() []string {
	if len(r.Rows) == 0 {
		return nil
	}
	return r.Rows[0].Keys()
}

// Clone deep-copies the rows.
func (r Relation) Clone() Relation {
	rows := make([]Row, len(r.Rows))
	for i, row := range r.Rows {
		rows[i] = row.Clone()
	}
	return Relation{Rows: rows, Label: r.Label}
}

// Equal compares row sequences in order; labels are ignored.
func (r Relation) Equal(other Relation) bool {
	if len(r.Rows) != len(other.Rows) {
		return false
	}
	for i := range r.Rows {
		if !r.Rows[i].Equal(other.Rows[i]) {
			return false
		}
	}
	return true
}
