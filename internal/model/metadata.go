package model

import (
	"encoding/json"
	"fmt"
)

// Well-known metadata keys. Everything else round-trips through Extra.
const (
	metaIcon           = "icon"
	metaColor          = "color"
	metaIsFavorite     = "isFavorite"
	metaItemsCount     = "itemsCount"
	metaExpirationDate = "expirationDate"
)

// Metadata is the open string-keyed map attached to most entities. The
// well-known keys are lifted into typed fields at the JSON boundary; unknown
// keys are preserved verbatim in Extra so the server can evolve the shape
// without breaking older clients.
type Metadata struct {
	Icon           string
	Color          string
	IsFavorite     bool
	ItemsCount     int
	ExpirationDate string
	Extra          map[string]any
}

// IsZero reports whether no field carries a value.
func (m Metadata) IsZero() bool {
	return m.Icon == "" && m.Color == "" && !m.IsFavorite &&
		m.ItemsCount == 0 && m.ExpirationDate == "" && len(m.Extra) == 0
}

func (m Metadata) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(m.Extra)+5)
	for k, v := range m.Extra {
		out[k] = v
	}
	if m.Icon != "" {
		out[metaIcon] = m.Icon
	}
	if m.Color != "" {
		out[metaColor] = m.Color
	}
	if m.IsFavorite {
		out[metaIsFavorite] = true
	}
	if m.ItemsCount != 0 {
		out[metaItemsCount] = m.ItemsCount
	}
	if m.ExpirationDate != "" {
		out[metaExpirationDate] = m.ExpirationDate
	}
	return json.Marshal(out)
}

func (m *Metadata) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("unmarshal metadata: %w", err)
	}

	*m = Metadata{}
	for key, val := range raw {
		switch key {
		case metaIcon:
			if err := json.Unmarshal(val, &m.Icon); err != nil {
				return fmt.Errorf("metadata %q: %w", key, err)
			}
		case metaColor:
			if err := json.Unmarshal(val, &m.Color); err != nil {
				return fmt.Errorf("metadata %q: %w", key, err)
			}
		case metaIsFavorite:
			if err := json.Unmarshal(val, &m.IsFavorite); err != nil {
				return fmt.Errorf("metadata %q: %w", key, err)
			}
		case metaItemsCount:
			// Servers emit counters as JSON numbers, occasionally with a
			// fractional representation. Accept either.
			var n float64
			if err := json.Unmarshal(val, &n); err != nil {
				return fmt.Errorf("metadata %q: %w", key, err)
			}
			m.ItemsCount = int(n)
		case metaExpirationDate:
			if err := json.Unmarshal(val, &m.ExpirationDate); err != nil {
				return fmt.Errorf("metadata %q: %w", key, err)
			}
		default:
			if m.Extra == nil {
				m.Extra = make(map[string]any)
			}
			var v any
			if err := json.Unmarshal(val, &v); err != nil {
				return fmt.Errorf("metadata %q: %w", key, err)
			}
			m.Extra[key] = v
		}
	}
	return nil
}
