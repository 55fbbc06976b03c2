package roster

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/tenkit/tenkit/client"
)

// Company is one roster record: the numeric EDGAR identifier of a company
// and its display name.
type Company struct {
	CIK  client.CIK
	Name string
}

func (self *Company) parseCIK(s string) error {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return fmt.Errorf("failed parse %q as CIK: %w", s, err)
	}
	self.CIK = client.CIK(v)
	return nil
}

func (self *Company) parseName(s string) error {
	name := strings.TrimSpace(s)
	if name == "" {
		return errors.New("empty company name")
	}
	self.Name = name
	return nil
}
