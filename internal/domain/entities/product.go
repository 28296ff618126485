package entities

// Unit is a unit of measure as the backend spells it.
type Unit string

const (
	UnitPiece       Unit = "шт."
	UnitMeter       Unit = "пог. м."
	UnitLiter       Unit = "л."
	UnitKilogram    Unit = "кг."
	UnitSquareMeter Unit = "кв. м."
	UnitCubicMeter  Unit = "куб. м."
)

var Units = []Unit{UnitPiece, UnitMeter, UnitLiter, UnitKilogram, UnitSquareMeter, UnitCubicMeter}

func (u Unit) Valid() bool {
	for _, known := range Units {
		if u == known {
			return true
		}
	}
	return false
}

// StockStatus filters the product list by stock level.
type StockStatus string

const (
	StockStatusAll        StockStatus = "all"
	StockStatusLow        StockStatus = "low_stock"
	StockStatusOutOfStock StockStatus = "out_of_stock"
)

// Product is a stock keeping unit. Deletion is soft: IsDeleted products can
// be restored.
type Product struct {
	ID            int64   `json:"id"`
	InternalSKU   string  `json:"internal_sku"`
	SupplierSKU   *string `json:"supplier_sku"`
	Name          string  `json:"name"`
	Unit          Unit    `json:"unit"`
	PurchasePrice float64 `json:"purchase_price"`
	RetailPrice   float64 `json:"retail_price"`
	StockQuantity float64 `json:"stock_quantity"`
	MinStockLevel float64 `json:"min_stock_level"`
	IsFavorite    bool    `json:"is_favorite"`
	IsDeleted     bool    `json:"is_deleted"`
}

func (p Product) IsOutOfStock() bool {
	return p.StockQuantity <= 0
}

func (p Product) IsLowStock() bool {
	return p.MinStockLevel > 0 && p.StockQuantity <= p.MinStockLevel
}

// ToOrder is the quantity needed to get back to the minimum level.
func (p Product) ToOrder() float64 {
	if !p.IsLowStock() {
		return 0
	}
	return p.MinStockLevel - p.StockQuantity
}
