package state

import (
	"fmt"
	"strings"
)

// UnresolvedError reports every package the resolver could not place, not
// just the first one found.
type UnresolvedError struct {
	Names []string
}

func (e UnresolvedError) Error() string {
	return fmt.Sprintf("%d package(s) cannot be ordered: %s", len(e.Names), strings.Join(e.Names, ", "))
}
