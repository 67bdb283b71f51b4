package boundary

// Dataset is a forward-only, resettable sequence of records.
//
// The resolution pipeline never seeks by id. Every pass calls Reset and then
// Next until io.EOF. A malformed record is reported as an *ErrDecode and ends
// the sequence; failures to rewind are reported as *ErrDatasetIO.
type Dataset interface {
	// Reset rewinds the dataset to its first record.
	Reset() error

	// Next returns the next record, or io.EOF once the dataset is exhausted.
	Next() (*Record, error)
}

// KindSkipper is implemented by datasets that can avoid decoding record kinds
// a pass has no use for. The selection applies from the next Reset onwards.
type KindSkipper interface {
	SkipKinds(nodes, ways, relations bool)
}
