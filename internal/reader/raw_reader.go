package reader

// Document is the full text of one document plus the name it is reported under.
type Document struct {
	Name string
	Text string
}

type Reader interface {
	Read() (*Document, error)
}
