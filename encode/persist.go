package encode

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// SaveCatalog writes a catalog as YAML. Pair with LoadCatalog to reuse a
// capture across processes; the round trip preserves the column
// classification, the level order, and the capture ID.
func SaveCatalog(w io.Writer, c *Catalog) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("encode: saving catalog: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encode: saving catalog: %w", err)
	}
	return nil
}

// LoadCatalog reads a YAML catalog and validates its invariants before
// handing it back.
func LoadCatalog(r io.Reader) (*Catalog, error) {
	var c Catalog
	if err := yaml.NewDecoder(r).Decode(&c); err != nil {
		return nil, fmt.Errorf("encode: loading catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}
