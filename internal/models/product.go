package models

// ProductType is the closed set of catalog categories.
type ProductType string

const (
	TypeVegetable  ProductType = "vegetable"
	TypeFruit      ProductType = "fruit"
	TypeBerry      ProductType = "berry"
	TypeHerb       ProductType = "herb"
	TypeDriedFruit ProductType = "dried-fruit"
)

func (t ProductType) Valid() bool {
	switch t {
	case TypeVegetable, TypeFruit, TypeBerry, TypeHerb, TypeDriedFruit:
		return true
	}

	return false
}

// Unit is the sales unit a product is priced in.
type Unit string

const (
	UnitKilogram Unit = "kg"
	UnitPiece    Unit = "piece"
	UnitBunch    Unit = "bunch"
	UnitLiter    Unit = "liter"
)

// Label returns the unit as it is shown to customers.
func (u Unit) Label() string {
	switch u {
	case UnitKilogram:
		return "кг"
	case UnitPiece:
		return "шт"
	case UnitBunch:
		return "пучок"
	case UnitLiter:
		return "л"
	}

	return string(u)
}

type Product struct {
	ID                 string      `json:"id"`
	Name               string      `json:"name"`
	Description        string      `json:"description"`
	Type               ProductType `json:"type"`
	Variety            string      `json:"variety,omitempty"`
	Price              float64     `json:"price"`
	Unit               Unit        `json:"unit"`
	Stock              int         `json:"stock"`
	LastCollectionDate string      `json:"last_collection_date"` // ISO date, e.g. 2025-08-19
	Images             []string    `json:"images"`
	Featured           bool        `json:"featured,omitempty"`
}

// FirstImage returns the product's primary image, or "" when it has none.
func (p *Product) FirstImage() string {
	if len(p.Images) == 0 {
		return ""
	}

	return p.Images[0]
}
