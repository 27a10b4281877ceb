package store

import (
	"encoding/json"

	"github.com/Usmantahir0707/Luxe-Bags/internal/domain"
)

// wireItem is the persisted line-item shape, kept compatible with the
// storefront's original localStorage payload: color and size are
// string-or-null on the wire, never empty strings.
type wireItem struct {
	ProductID string  `json:"productId" bson:"product_id"`
	Name      string  `json:"name" bson:"name"`
	UnitPrice float64 `json:"price" bson:"price"`
	Image     string  `json:"image,omitempty" bson:"image,omitempty"`
	Quantity  int     `json:"quantity" bson:"quantity"`
	Color     *string `json:"color" bson:"color"`
	Size      *string `json:"size" bson:"size"`
}

func encodeItems(items []domain.LineItem) ([]byte, error) {
	wire := make([]wireItem, len(items))
	for i, it := range items {
		wire[i] = wireItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			UnitPrice: it.UnitPrice,
			Image:     it.Image,
			Quantity:  it.Quantity,
			Color:     variantPtr(it.Color),
			Size:      variantPtr(it.Size),
		}
	}
	return json.Marshal(wire)
}

// decodeItems parses a snapshot. Entries with a non-positive quantity are
// dropped rather than failing the whole snapshot; the ledger invariant says
// they cannot exist.
func decodeItems(data []byte) ([]domain.LineItem, error) {
	var wire []wireItem
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, err
	}

	items := make([]domain.LineItem, 0, len(wire))
	for _, w := range wire {
		if w.Quantity <= 0 {
			continue
		}
		items = append(items, domain.LineItem{
			ProductID: w.ProductID,
			Name:      w.Name,
			UnitPrice: w.UnitPrice,
			Image:     w.Image,
			Quantity:  w.Quantity,
			Color:     variantString(w.Color),
			Size:      variantString(w.Size),
		})
	}
	return items, nil
}

func variantPtr(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

func variantString(p *string) string {
	if p == nil {
		return ""
	}
	return domain.NormalizeVariant(*p)
}
