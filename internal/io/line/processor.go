package line

// Processor defines an interface for processing records read from a stream.
type Processor interface {
	// ProcessRecord handles a single record. A non-nil error means this
	// record failed, never that reading should stop.
	ProcessRecord(record string) error
}
