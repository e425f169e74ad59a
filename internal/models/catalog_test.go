package models

import "testing"

func TestCalculatePrice(t *testing.T) {
	tests := []struct {
		name      string
		basePrice float64
		size      string
		material  string
		expected  float64
	}{
		{"base size and material", 50, Size3In, MaterialPLA, 50},
		{"size multiplier", 50, Size9In, MaterialPLA, 125},
		{"material multiplier", 100, Size3In, MaterialEpoxyGlow, 250},
		{"both multipliers", 50, Size6In, MaterialPLASilk, 108},
		{"unknown tags multiply by one", 75, "giant", "unobtanium", 75},
		{"rounds to cents", 33, Size3In, MaterialPLAMatte, 37.95},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CalculatePrice(tt.basePrice, tt.size, tt.material); got != tt.expected {
				t.Errorf("CalculatePrice(%v, %q, %q) = %v, want %v", tt.basePrice, tt.size, tt.material, got, tt.expected)
			}
		})
	}
}

func TestCatalogQueries(t *testing.T) {
	catalog := Catalog{
		{ID: "crystal-dragon", Name: "Crystal Dragon", Category: CategoryFantasy, Featured: true},
		{ID: "river-table", Name: "River Table", Category: CategoryResinArt},
		{ID: "phoenix", Name: "Phoenix", Category: CategoryFantasy, Featured: true},
	}

	featured := catalog.Featured()
	if len(featured) != 2 {
		t.Fatalf("Expected 2 featured products, got %d", len(featured))
	}
	if featured[0].ID != "crystal-dragon" {
		t.Errorf("Expected featured products in catalog order, got %q first", featured[0].ID)
	}

	if p := catalog.ByID("river-table"); p == nil || p.Name != "River Table" {
		t.Errorf("Expected ByID to find river-table, got %+v", p)
	}
	if p := catalog.ByID("missing"); p != nil {
		t.Errorf("Expected ByID to return nil for unknown id, got %+v", p)
	}

	fantasy := catalog.ByCategory(CategoryFantasy)
	if len(fantasy) != 2 {
		t.Errorf("Expected 2 fantasy products, got %d", len(fantasy))
	}
	if len(catalog.ByCategory(CategorySeasonal)) != 0 {
		t.Error("Expected no seasonal products")
	}
}
