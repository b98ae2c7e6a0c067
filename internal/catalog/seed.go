package catalog

// DefaultProducts is the storefront catalog. Ids are assigned at load time.
func DefaultProducts() []Product {
	return []Product{
		{
			Name:        "Crème noisette 700g",
			Description: "Délicieuse pâte à tartiner aux noisettes, onctueuse et savoureuse.",
			Price:       "4.99",
			Image:       "image_25.webp",
		},
		{
			Name:        "Crème noisette 2,5kg",
			Description: "Format familial pour les amateurs de noisette, idéal pour les gourmands.",
			Price:       "10.00",
			Image:       "image1.avif",
		},
		{
			Name:        "Crème noisette 600g avec chocolat",
			Description: "Alliance parfaite entre noisette et chocolat pour un plaisir intense.",
			Price:       "3.99",
			Image:       "image2.jpg",
		},
		{
			Name:        "Crème noisette rocher 600g",
			Description: "Une texture croquante et fondante, parfaite pour une touche gourmande.",
			Price:       "4.99",
			Image:       "image7.jpg",
		},
		{
			Name:        "Crème noisette rocher 600g avec chocolat",
			Description: "Un mélange exquis de noisette et de chocolat avec un croquant irrésistible.",
			Price:       "3.99",
			Image:       "image30.avif",
		},
	}
}
