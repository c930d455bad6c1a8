// Package basket implements the client-owned shopping basket. The whole
// basket lives in a single cookie; the server decodes it, applies one
// change, and writes it back. Nothing is persisted server-side.
package basket

import (
	"encoding/base64"
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/fiorino-shop/florista-api/models"
)

// CookieName is the cookie the encoded basket travels in.
const CookieName = "basket"

// ErrMalformed is returned by Decode when the token is not a valid basket.
// Handlers treat this as "no basket" rather than failing the request.
var ErrMalformed = errors.New("malformed basket token")

// Line is one product selection. At most one Line per product id.
type Line struct {
	ID    uint `json:"id"`
	Count int  `json:"count"`
}

type Basket []Line

// Decode parses a cookie token. An empty token is an empty basket.
func Decode(token string) (Basket, error) {
	if token == "" {
		return Basket{}, nil
	}
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, errors.Wrap(ErrMalformed, err.Error())
	}
	var b Basket
	if err := json.Unmarshal(raw, &b); err != nil {
		return nil, errors.Wrap(ErrMalformed, err.Error())
	}
	if b == nil {
		b = Basket{}
	}
	return b, nil
}

// Encode serializes the basket into a cookie-safe token.
func (b Basket) Encode() string {
	raw, _ := json.Marshal(b) // a Basket of plain ints cannot fail to marshal
	return base64.RawURLEncoding.EncodeToString(raw)
}

// Add returns a new basket with one more unit of the given product:
// an existing line's count goes up by 1, otherwise a new line with count 1
// is appended. All other lines keep their position.
func (b Basket) Add(id uint) Basket {
	out := make(Basket, len(b), len(b)+1)
	copy(out, b)
	for i := range out {
		if out[i].ID == id {
			out[i].Count++
			return out
		}
	}
	return append(out, Line{ID: id, Count: 1})
}

// Remove returns a new basket without the given product's line. Removing a
// product that is not in the basket is a no-op.
func (b Basket) Remove(id uint) Basket {
	out := make(Basket, 0, len(b))
	for _, line := range b {
		if line.ID != id {
			out = append(out, line)
		}
	}
	return out
}

// TotalCount is the number of units across all lines.
func (b Basket) TotalCount() int {
	total := 0
	for _, line := range b {
		total += line.Count
	}
	return total
}

// Item is one display row of the projected basket.
type Item struct {
	ID            uint            `json:"id"`
	Title         string          `json:"title"`
	Price         decimal.Decimal `json:"price"`
	Quantity      int             `json:"quantity"`       // requested
	StockQuantity int             `json:"stock_quantity"` // available
	PhotoName     string          `json:"photo_name"`
}

// ProductFinder resolves a product id to a live product record.
type ProductFinder func(id uint) (*models.Product, bool)

// Project joins basket lines against current products. Lines whose product
// no longer exists are dropped from the view; the basket itself is not
// touched. Output preserves basket order.
func (b Basket) Project(find ProductFinder) []Item {
	items := make([]Item, 0, len(b))
	for _, line := range b {
		product, ok := find(line.ID)
		if !ok {
			continue
		}
		items = append(items, Item{
			ID:            product.ID,
			Title:         product.Name,
			Price:         product.Cost,
			Quantity:      line.Count,
			StockQuantity: product.Quantity,
			PhotoName:     product.PhotoName,
		})
	}
	return items
}
