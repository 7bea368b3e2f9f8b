package repository

import (
	"revenue/internal/app/ds"

	"github.com/shopspring/decimal"
)

// DefaultCatalog - стартовый каталог ПО для cmd/migrate seed
func DefaultCatalog() ([]ds.Category, []ds.Software) {
	categories := []ds.Category{
		{ID: 1, Name: "Business Software"},
		{ID: 2, Name: "Gaming"},
		{ID: 3, Name: "Design"},
	}

	software := []ds.Software{
		{ID: 1, Name: "Office Suite Pro", Description: "Complete office productivity suite", CurrentVersion: "2024", CategoryID: 1, Price: price("4999.99")},
		{ID: 2, Name: "Game Engine X", Description: "Advanced 3D game development engine", CurrentVersion: "5.1.2", CategoryID: 2, Price: price("7999.99")},
		{ID: 3, Name: "Design Studio", Description: "Professional graphic design software", CurrentVersion: "12.3", CategoryID: 3, Price: price("2999.99")},
		{ID: 4, Name: "Code Builder", Description: "Integrated development environment", CurrentVersion: "4.8.1", CategoryID: 1, Price: price("3499.99")},
		{ID: 6, Name: "DesignMaster", Description: "Design templates library", CurrentVersion: "3.5.1", CategoryID: 3, Price: price("1999.99")},
		{ID: 7, Name: "BusinessPlatform", Description: "Online management system", CurrentVersion: "2.1.4", CategoryID: 1, Price: price("5999.99")},
		{ID: 8, Name: "MediaPlayer Pro", Description: "Advanced multimedia player", CurrentVersion: "6.0.2", CategoryID: 2, Price: price("1499.99")},
	}

	return categories, software
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
