/*
Package record defines the canonical, fully qualified name of an operating system release and how it is rendered.
*/
package record

import (
	"fmt"
	"strings"

	"github.com/mitchellh/hashstructure/v2"
)

// Vendor is the vendor of every product currently recognized.
const Vendor = "Microsoft"

// Edition is a product edition (SKU) name, e.g. "Pro for Workstations".
type Edition string

func (e Edition) String() string {
	return string(e)
}

// Channel is a servicing channel. Default channels are implied by the product and are not rendered.
type Channel struct {
	Name       string `json:"name"`
	IsDefault  bool   `json:"isDefault"`
	IsLongTerm bool   `json:"isLongTerm"`
}

func (c Channel) String() string {
	return c.Name
}

// Record is the canonical name of a resolved release. Records are values: the editions are copied on construction
// and on access.
type Record struct {
	Vendor   string
	Product  string
	Release  string
	Channel  Channel
	editions []Edition
}

// New creates a record for the given product. The release label is upper-cased.
func New(product, release string, channel Channel, editions ...Edition) Record {
	eds := make([]Edition, len(editions))
	copy(eds, editions)
	return Record{
		Vendor:   Vendor,
		Product:  product,
		Release:  strings.ToUpper(release),
		Channel:  channel,
		editions: eds,
	}
}

// Editions returns the editions in the order the recognizer selected them.
func (r Record) Editions() []Edition {
	out := make([]Edition, len(r.editions))
	copy(out, r.editions)
	return out
}

// Lines renders one display line per edition. A record without editions renders as a single line naming only the
// product, release and channel.
func (r Record) Lines() []string {
	if len(r.editions) == 0 {
		return []string{r.line("")}
	}
	lines := make([]string, 0, len(r.editions))
	for _, e := range r.editions {
		lines = append(lines, r.line(e))
	}
	return lines
}

func (r Record) line(e Edition) string {
	parts := []string{r.Vendor, r.Product}
	if e != "" {
		parts = append(parts, string(e))
	}
	if r.Release != "" {
		parts = append(parts, r.Release)
	}
	if !r.Channel.IsDefault && r.Channel.Name != "" {
		parts = append(parts, r.Channel.Name)
	}
	return strings.Join(parts, " ")
}

func (r Record) String() string {
	return strings.Join(r.Lines(), "\n")
}

// Fingerprint is a stable hash of the record contents, used to collapse identical resolutions.
func (r Record) Fingerprint() (uint64, error) {
	h, err := hashstructure.Hash(struct {
		Vendor   string
		Product  string
		Release  string
		Channel  Channel
		Editions []Edition
	}{
		Vendor:   r.Vendor,
		Product:  r.Product,
		Release:  r.Release,
		Channel:  r.Channel,
		Editions: r.editions,
	}, hashstructure.FormatV2, nil)
	if err != nil {
		return 0, fmt.Errorf("unable to fingerprint record: %w", err)
	}
	return h, nil
}
