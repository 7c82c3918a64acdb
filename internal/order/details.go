package order

import "cremoso-backend/internal/models"

// Details is the structured payload a special-product line may carry.
// Which variant applies depends on the product: sized cakes take
// CakeDetails, free-text products ("Diversos") take DescriptionDetails,
// and the remaining flat products may take NoteDetails or nothing.
// Standard lines never carry details.
type Details interface {
	detailKind() string
}

// CakeDetails describes a sized cake order. Flavor1 is mandatory,
// everything else is carried through verbatim for display and export.
type CakeDetails struct {
	Size    string
	Flavor1 string
	Flavor2 string
	Topping string
	Notes   string
}

// DescriptionDetails describes a free-text product order.
type DescriptionDetails struct {
	Description string
}

// NoteDetails carries optional free-text notes on a flat special product.
type NoteDetails struct {
	Notes string
}

func (CakeDetails) detailKind() string        { return models.DetailCake }
func (DescriptionDetails) detailKind() string { return models.DetailDescription }
func (NoteDetails) detailKind() string        { return models.DetailNotes }

// applyDetails flattens a detail variant onto the persisted line columns.
func applyDetails(line *models.OrderLine, d Details) {
	if d == nil {
		line.DetailKind = models.DetailNone
		return
	}
	line.DetailKind = d.detailKind()
	switch v := d.(type) {
	case CakeDetails:
		line.Size = v.Size
		line.Flavor1 = v.Flavor1
		line.Flavor2 = v.Flavor2
		line.Topping = v.Topping
		line.Notes = v.Notes
	case DescriptionDetails:
		line.Description = v.Description
	case NoteDetails:
		line.Notes = v.Notes
	}
}

// LineDetails reconstructs the detail variant stored on a line, or nil.
func LineDetails(line models.OrderLine) Details {
	switch line.DetailKind {
	case models.DetailCake:
		return CakeDetails{
			Size:    line.Size,
			Flavor1: line.Flavor1,
			Flavor2: line.Flavor2,
			Topping: line.Topping,
			Notes:   line.Notes,
		}
	case models.DetailDescription:
		return DescriptionDetails{Description: line.Description}
	case models.DetailNotes:
		return NoteDetails{Notes: line.Notes}
	}
	return nil
}
