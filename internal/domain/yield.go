package domain

import "encoding/json"

// YieldTypeExistingItem marks a yield that returns an already existing item.
const YieldTypeExistingItem = "existing_item"

// YieldEntry is one result of disassembling an item. Type is either
// YieldTypeExistingItem or the template id of the material to create.
type YieldEntry struct {
	Type     string `json:"type" validate:"required"`
	ItemID   *int64 `json:"item_id,omitempty"`
	Quantity *int   `json:"quantity,omitempty" validate:"omitempty,gte=0"`

	// Extra holds content keys the engine does not interpret, such as
	// chance or quality, so they survive a load and save.
	Extra StatBag `json:"-"`
}

// yieldKeys are the keys YieldEntry decodes into fields.
var yieldKeys = []string{"type", "item_id", "quantity"}

// MarshalJSON writes the known fields over any extra keys.
func (y YieldEntry) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(y.Extra)+len(yieldKeys))
	for k, v := range y.Extra {
		out[k] = v
	}
	out["type"] = y.Type
	if y.ItemID != nil {
		out["item_id"] = *y.ItemID
	}
	if y.Quantity != nil {
		out["quantity"] = *y.Quantity
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes the known fields and keeps the rest in Extra.
func (y *YieldEntry) UnmarshalJSON(data []byte) error {
	type plain YieldEntry
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for _, k := range yieldKeys {
		delete(raw, k)
	}
	*y = YieldEntry(p)
	y.Extra = nil
	if len(raw) > 0 {
		y.Extra = raw
	}
	return nil
}

// IsExistingItem reports whether the entry refers to an item that already exists.
func (y YieldEntry) IsExistingItem() bool {
	return y.Type == YieldTypeExistingItem
}

// Count returns the quantity, 1 when unset.
func (y YieldEntry) Count() int {
	if y.Quantity == nil {
		return 1
	}
	return *y.Quantity
}
