package models

import "math"

// Catalog is a loaded product list. The query helpers below operate over it
// in memory; persistence lives in the product store.
type Catalog []Product

// sizeMultipliers scales a base price by the selected size tag.
var sizeMultipliers = map[string]float64{
	Size3In:      1.0,
	Size6In:      1.8,
	Size9In:      2.5,
	Size12In:     3.2,
	Size18In:     4.5,
	Size1_5Ft:    6.0,
	Size2Ft:      8.0,
	SizeLifeSize: 15.0,
}

// materialMultipliers scales a base price by the selected material tag.
var materialMultipliers = map[string]float64{
	MaterialPLA:          1.0,
	MaterialPLASilk:      1.2,
	MaterialPLAMatte:     1.15,
	MaterialABS:          1.3,
	MaterialPETG:         1.4,
	MaterialTPU:          1.8,
	MaterialNylon:        2.0,
	MaterialCarbonFiber:  2.2,
	MaterialEpoxyClear:   1.6,
	MaterialEpoxyColored: 1.8,
	MaterialEpoxyGlow:    2.5,
	MaterialPolyurethane: 2.0,
	MaterialPrintEpoxy:   2.3,
	MaterialEmbedded:     2.8,
}

// CalculatePrice computes the display price for a size/material combination.
// Unknown tags multiply by 1. The result is rounded to cents.
func CalculatePrice(basePrice float64, size, material string) float64 {
	sizeMult, ok := sizeMultipliers[size]
	if !ok {
		sizeMult = 1.0
	}
	materialMult, ok := materialMultipliers[material]
	if !ok {
		materialMult = 1.0
	}
	return math.Round(basePrice*sizeMult*materialMult*100) / 100
}

// Featured returns the products flagged as featured, in catalog order.
func (c Catalog) Featured() []Product {
	var featured []Product
	for _, p := range c {
		if p.Featured {
			featured = append(featured, p)
		}
	}
	return featured
}

// ByID returns the product with the given id, or nil if absent.
func (c Catalog) ByID(id string) *Product {
	for i := range c {
		if c[i].ID == id {
			return &c[i]
		}
	}
	return nil
}

// ByCategory returns the products tagged with the given category.
func (c Catalog) ByCategory(category string) []Product {
	var matched []Product
	for _, p := range c {
		if p.Category == category {
			matched = append(matched, p)
		}
	}
	return matched
}
