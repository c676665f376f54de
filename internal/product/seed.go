package product

// SeedCatalog is the default City Roots catalog used when the server runs
// without a database.
func SeedCatalog() []Product {
	return []Product{
		{ID: 1, Name: "Monstera Deliciosa", Price: 599, Image: "/images/plants/monstera.jpg", Category: "plants", InStock: true},
		{ID: 2, Name: "Snake Plant", Price: 349, Image: "/images/plants/snake-plant.jpg", Category: "plants", InStock: true},
		{ID: 3, Name: "Peace Lily", Price: 449, Image: "/images/plants/peace-lily.jpg", Category: "plants", InStock: true},
		{ID: 4, Name: "Jade Plant", Price: 249, Image: "/images/plants/jade.jpg", Category: "plants", InStock: true},
		{ID: 5, Name: "Areca Palm", Price: 699, Image: "/images/plants/areca-palm.jpg", Category: "plants", InStock: false},
		{ID: 6, Name: "Tomato Seeds (50 pack)", Price: 99, Image: "/images/seeds/tomato.jpg", Category: "seeds", InStock: true},
		{ID: 7, Name: "Basil Seeds (100 pack)", Price: 79, Image: "/images/seeds/basil.jpg", Category: "seeds", InStock: true},
		{ID: 8, Name: "Marigold Seeds (30 pack)", Price: 59, Image: "/images/seeds/marigold.jpg", Category: "seeds", InStock: true},
		{ID: 9, Name: "Pruning Shears", Price: 399, Image: "/images/tools/pruning-shears.jpg", Category: "tools", InStock: true},
		{ID: 10, Name: "Garden Trowel", Price: 199, Image: "/images/tools/trowel.jpg", Category: "tools", InStock: true},
		{ID: 11, Name: "Watering Can (2L)", Price: 299, Image: "/images/tools/watering-can.jpg", Category: "tools", InStock: true},
		{ID: 12, Name: "Succulent Trio Gift Set", Price: 899, Image: "/images/gifting/succulent-trio.jpg", Category: "gifting", InStock: true},
		{ID: 13, Name: "Herb Garden Starter Kit", Price: 1299, Image: "/images/gifting/herb-kit.jpg", Category: "gifting", InStock: true},
	}
}
