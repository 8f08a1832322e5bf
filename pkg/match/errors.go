package match

import "fmt"

// ArityError reports a capture-group count that disagrees with the number of
// requested columns. It is a configuration error, detected at compile time.
type ArityError struct {
	Groups  int
	Columns int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("pattern has %d capture group(s) but %d column(s) were requested", e.Groups, e.Columns)
}
