// Seeds the shop's starting catalog: the special products sold through
// the custom order flow and one standard category of flavors.
package main

import (
	"log"

	"cremoso-backend/internal/database"
	"cremoso-backend/internal/models"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: No .env file found")
	}

	database.Connect()

	specials := []models.SpecialProduct{
		{
			Name: "Bolo",
			Sizes: []models.SizeOption{
				{Name: "mini", Price: decimal.NewFromInt(10)},
				{Name: "pequeno", Price: decimal.NewFromInt(12)},
				{Name: "medio", Price: decimal.NewFromInt(15)},
				{Name: "grande", Price: decimal.NewFromInt(20)},
			},
		},
		{Name: "Brownie", BasePrice: decimal.NewFromInt(5)},
		{Name: "Petit Gateau", BasePrice: decimal.NewFromInt(25)},
		{Name: "Diversos", BasePrice: decimal.Zero, DescriptionRequired: true},
	}

	for _, p := range specials {
		if err := database.DB.Where(models.SpecialProduct{Name: p.Name}).FirstOrCreate(&p).Error; err != nil {
			log.Fatal("Failed to seed special product:", err)
		}
	}

	category := models.MenuCategory{
		Name:  "Sabores Especiais +",
		Price: decimal.NewFromInt(10),
		Items: []models.MenuItem{
			{Name: "Açaí", Description: "Sorvete sabor açaí, sem lactose."},
			{Name: "Ameixa", Description: "Sorvete sabor ameixa, doce e frutado."},
			{Name: "Camafeu", Description: "Sorvete sabor doce de nozes com leite condensado."},
			{Name: "Casadinho", Description: "Sorvete sabor tradicional casadinho."},
			{Name: "Extra Dark", Description: "Sorvete sabor chocolate extra amargo, intenso e sofisticado."},
			{Name: "Ferrero Rocher", Description: "Sorvete inspirado no famoso bombom Ferrero Rocher."},
			{Name: "Nutella", Description: "Sorvete sabor creme de avelã com cacau."},
		},
	}
	if err := database.DB.Where(models.MenuCategory{Name: category.Name}).FirstOrCreate(&category).Error; err != nil {
		log.Fatal("Failed to seed menu category:", err)
	}

	log.Println("Seed completed")
}
