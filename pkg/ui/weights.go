package ui

const (
	maxRows     = 5
	rowCapacity = 5
)

// rowWeights tracks column occupancy per layout row. Items requesting a
// specific row must fit there; automatic items take the first row with
// room.
type rowWeights struct {
	columns [maxRows]int
}

// place finds a row for the item and reserves its width there.
func (w *rowWeights) place(item Item) (int, error) {
	row, err := w.find(item)
	if err != nil {
		return 0, err
	}
	w.columns[row] += item.Width()
	return row, nil
}

func (w *rowWeights) find(item Item) (int, error) {
	if row := item.Row(); row >= 0 {
		if row >= maxRows {
			return 0, ErrRowOutOfRange
		}
		if w.columns[row]+item.Width() > rowCapacity {
			return 0, ErrRowFull
		}
		return row, nil
	}

	for row := 0; row < maxRows; row++ {
		if w.columns[row]+item.Width() <= rowCapacity {
			return row, nil
		}
	}
	return 0, ErrRowFull
}

// release frees the width an item held in its assigned row.
func (w *rowWeights) release(row, width int) {
	if row < 0 || row >= maxRows {
		return
	}
	w.columns[row] -= width
	if w.columns[row] < 0 {
		w.columns[row] = 0
	}
}

func (w *rowWeights) clear() {
	w.columns = [maxRows]int{}
}
