package order

import (
	"encoding/json"
	"fmt"
	"strconv"

	"coldroute/internal/pkg/normalize"
)

// Variant is the free-form, JSON-encoded per-line metadata blob historically
// used to carry size, model, and warehouse association for an order line.
// Several incompatible shapes accumulated over time; ParseVariant resolves
// them in a documented priority order and never fails — malformed input
// simply exhausts the fallback tiers.
type Variant struct {
	raw  string
	meta *variantMeta
}

// variantMeta carries every historical field shape in one struct. Fields are
// decoded independently: a wrong-typed field stays nil instead of failing the
// whole blob. Numeric fields use `any` because legacy rows store dimensions
// both as JSON numbers and as strings.
type variantMeta struct {
	Size        *string
	ProductSize *productSizeMeta
	Width       any
	W           any
	Height      any
	H           any
	Length      any
	Depth       any
	D           any
	Dimensions  []dimensionMeta
	WarehouseID *string
	Model       *string
}

type productSizeMeta struct {
	Width  any `json:"width"`
	Height any `json:"height"`
	Length any `json:"length"`
}

type dimensionMeta struct {
	Width  any `json:"width"`
	W      any `json:"w"`
	Height any `json:"height"`
	H      any `json:"h"`
	Length any `json:"length"`
	Depth  any `json:"depth"`
	D      any `json:"d"`
}

// ParseVariant decodes a raw variant blob. An empty string, malformed JSON,
// or a non-object document all yield a Variant with no metadata; the raw
// text is retained for the last-resort size fallback. Inside an object each
// field decodes on its own, so a wrong-typed field (a numeric `size`, say) is
// ignored while the rest of the blob still resolves.
func ParseVariant(raw string) Variant {
	v := Variant{raw: raw}
	if raw == "" {
		return v
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return v
	}

	var meta variantMeta
	decodeField(fields, "size", &meta.Size)
	decodeField(fields, "product_size", &meta.ProductSize)
	decodeField(fields, "width", &meta.Width)
	decodeField(fields, "w", &meta.W)
	decodeField(fields, "height", &meta.Height)
	decodeField(fields, "h", &meta.H)
	decodeField(fields, "length", &meta.Length)
	decodeField(fields, "depth", &meta.Depth)
	decodeField(fields, "d", &meta.D)
	decodeField(fields, "dimensions", &meta.Dimensions)
	decodeField(fields, "warehouse_id", &meta.WarehouseID)
	decodeField(fields, "model", &meta.Model)
	v.meta = &meta
	return v
}

// decodeField unmarshals one field of the blob, leaving dst untouched when
// the field is absent or has the wrong shape.
func decodeField[T any](fields map[string]json.RawMessage, key string, dst *T) {
	rawField, ok := fields[key]
	if !ok {
		return
	}

	var value T
	if err := json.Unmarshal(rawField, &value); err != nil {
		return
	}
	*dst = value
}

// Raw returns the original blob as stored on the order line.
func (v Variant) Raw() string {
	return v.raw
}

// IsParsed reports whether the blob decoded as a JSON object.
func (v Variant) IsParsed() bool {
	return v.meta != nil
}

// Size resolves the normalized dimension key carried by the variant.
// Resolution order: `size` string, `product_size` object, flat
// width/height/length fields (with single-letter and depth aliases), the
// first element of `dimensions`, and finally the normalized raw text.
// Returns an empty string only when every tier comes up empty.
func (v Variant) Size() string {
	if v.meta != nil {
		if v.meta.Size != nil {
			return normalize.Size(*v.meta.Size)
		}

		if ps := v.meta.ProductSize; ps != nil {
			return normalize.Size(joinDims(ps.Width, ps.Height, ps.Length))
		}

		w := firstDim(v.meta.Width, v.meta.W)
		h := firstDim(v.meta.Height, v.meta.H)
		l := firstDim(v.meta.Length, v.meta.Depth, v.meta.D)
		if w != nil || h != nil || l != nil {
			return normalize.Size(joinDims(w, h, l))
		}

		if len(v.meta.Dimensions) > 0 {
			d0 := v.meta.Dimensions[0]
			w0 := firstDim(d0.Width, d0.W)
			h0 := firstDim(d0.Height, d0.H)
			l0 := firstDim(d0.Length, d0.Depth, d0.D)
			if w0 != nil || h0 != nil || l0 != nil {
				return normalize.Size(joinDims(w0, h0, l0))
			}
		}
	}

	return normalize.Size(v.raw)
}

// WarehouseID returns the warehouse association carried by the variant.
// The second return is false when the blob did not parse as a JSON object or
// carries no string warehouse_id field. No trimming is applied: warehouse
// scoping compares the stored value exactly.
func (v Variant) WarehouseID() (string, bool) {
	if v.meta == nil || v.meta.WarehouseID == nil {
		return "", false
	}
	return *v.meta.WarehouseID, true
}

// Model returns the model designation carried by the variant, if any.
func (v Variant) Model() (string, bool) {
	if v.meta == nil || v.meta.Model == nil {
		return "", false
	}
	return *v.meta.Model, true
}

// firstDim returns the first non-nil alias value.
func firstDim(values ...any) any {
	for _, v := range values {
		if v != nil {
			return v
		}
	}
	return nil
}

// joinDims renders present dimension values separated by "x", skipping
// absent ones, so partial shapes still produce a usable token sequence.
func joinDims(values ...any) string {
	out := ""
	for _, v := range values {
		if v == nil {
			continue
		}
		if out != "" {
			out += "x"
		}
		out += dimString(v)
	}
	return out
}

func dimString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		// JSON numbers decode as float64; render without a trailing ".0".
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", t)
	}
}
