package models

import "strings"

// Food is one item of the shipped food list.
type Food struct {
	Name string  `json:"name"`
	Cal  float64 `json:"cal"`
}

// FoodCatalog is the static seed list used by meal-plan editing. It is seed
// data, not a validated nutrition source.
var FoodCatalog = []Food{
	{Name: "Phở Bò (Beef Pho)", Cal: 450},
	{Name: "Phở Gà (Chicken Pho)", Cal: 400},
	{Name: "Bánh Mì Đặc Biệt", Cal: 450},
	{Name: "Cơm Tấm Sườn Bì Chả", Cal: 650},
	{Name: "Bún Chả Hà Nội", Cal: 520},
	{Name: "Bún Bò Huế", Cal: 550},
	{Name: "Bún Riêu Cua", Cal: 450},
	{Name: "Cơm Gà Xối Mỡ", Cal: 700},
	{Name: "Gỏi Cuốn (2 pcs)", Cal: 160},
	{Name: "Cà Phê Sữa Đá", Cal: 180},
	{Name: "Trà Sữa Trân Châu", Cal: 450},
}

// SearchFoods filters the catalog by case-insensitive substring match. An
// empty query returns the full catalog.
func SearchFoods(query string) []Food {
	q := strings.ToLower(query)
	out := make([]Food, 0, len(FoodCatalog))
	for _, f := range FoodCatalog {
		if strings.Contains(strings.ToLower(f.Name), q) {
			out = append(out, f)
		}
	}
	return out
}
