// Package data bundles the demo dataset the seeder writes. It is static
// input — nothing here is generated or mutated at runtime.
package data

import "github.com/krycha420/fast-food/models"

// MenuItem describes one dish before seeding: the image URL points at
// the original remote image (it gets re-hosted during the run), and the
// category/customizations are referenced by name, resolved to store IDs
// while seeding.
type MenuItem struct {
	Name           string
	Description    string
	SourceImageURL string
	Price          float64
	Rating         float64
	Calories       int
	Protein        int
	CategoryName   string
	Customizations []string
}

// Dataset is the full demo payload for one seed run.
type Dataset struct {
	Categories     []models.Category
	Customizations []models.Customization
	Menu           []MenuItem
}

// Demo is the dataset behind the admin "Seed" button.
var Demo = Dataset{
	Categories: []models.Category{
		{Name: "Burgers", Description: "Juicy grilled burgers"},
		{Name: "Pizzas", Description: "Stone-baked pizzas with fresh toppings"},
		{Name: "Burritos", Description: "Stuffed burritos packed with flavor"},
		{Name: "Sandwiches", Description: "Fresh sandwiches on artisan bread"},
		{Name: "Wraps", Description: "Rolled wraps with crisp veggies"},
		{Name: "Bowls", Description: "Hearty rice and salad bowls"},
	},
	Customizations: []models.Customization{
		{Name: "Extra Cheese", Price: 1.5, Type: models.TypeTopping},
		{Name: "Jalapeños", Price: 0.75, Type: models.TypeTopping},
		{Name: "Caramelized Onions", Price: 1.0, Type: models.TypeTopping},
		{Name: "Bacon", Price: 2.0, Type: models.TypeTopping},
		{Name: "Avocado", Price: 1.8, Type: models.TypeTopping},
		{Name: "Fries", Price: 2.5, Type: models.TypeSide},
		{Name: "Garlic Bread", Price: 3.0, Type: models.TypeSide},
		{Name: "Coleslaw", Price: 1.5, Type: models.TypeSide},
		{Name: "Large", Price: 2.0, Type: models.TypeSize},
		{Name: "Thin Crust", Price: 0, Type: models.TypeCrust},
	},
	Menu: []MenuItem{
		{
			Name:           "Classic Cheeseburger",
			Description:    "Beef patty, cheddar, lettuce, tomato and house sauce",
			SourceImageURL: "https://images.fastfood.dev/menu/classic-cheeseburger.png",
			Price:          8.99, Rating: 4.5, Calories: 550, Protein: 26,
			CategoryName:   "Burgers",
			Customizations: []string{"Extra Cheese", "Bacon", "Fries"},
		},
		{
			Name:           "Smash Double Stack",
			Description:    "Two smashed patties with caramelized onions",
			SourceImageURL: "https://images.fastfood.dev/menu/smash-double-stack.png",
			Price:          11.49, Rating: 4.8, Calories: 780, Protein: 41,
			CategoryName:   "Burgers",
			Customizations: []string{"Caramelized Onions", "Jalapeños", "Fries"},
		},
		{
			Name:           "Margherita",
			Description:    "Tomato, fresh mozzarella and basil",
			SourceImageURL: "https://images.fastfood.dev/menu/margherita.png",
			Price:          10.99, Rating: 4.6, Calories: 640, Protein: 24,
			CategoryName:   "Pizzas",
			Customizations: []string{"Extra Cheese", "Thin Crust", "Garlic Bread"},
		},
		{
			Name:           "Pepperoni Blaze",
			Description:    "Double pepperoni with chili honey drizzle",
			SourceImageURL: "https://images.fastfood.dev/menu/pepperoni-blaze.png",
			Price:          12.49, Rating: 4.7, Calories: 720, Protein: 31,
			CategoryName:   "Pizzas",
			Customizations: []string{"Jalapeños", "Extra Cheese", "Large"},
		},
		{
			Name:           "Baja Chicken Burrito",
			Description:    "Grilled chicken, cilantro-lime rice and black beans",
			SourceImageURL: "https://images.fastfood.dev/menu/baja-chicken-burrito.png",
			Price:          9.75, Rating: 4.4, Calories: 610, Protein: 38,
			CategoryName:   "Burritos",
			Customizations: []string{"Avocado", "Jalapeños"},
		},
		{
			Name:           "Carnitas Burrito",
			Description:    "Slow-cooked pork with salsa verde",
			SourceImageURL: "https://images.fastfood.dev/menu/carnitas-burrito.png",
			Price:          10.25, Rating: 4.5, Calories: 690, Protein: 35,
			CategoryName:   "Burritos",
			Customizations: []string{"Extra Cheese", "Avocado"},
		},
		{
			Name:           "Club Sandwich",
			Description:    "Triple-decker turkey, bacon and tomato",
			SourceImageURL: "https://images.fastfood.dev/menu/club-sandwich.png",
			Price:          7.99, Rating: 4.2, Calories: 480, Protein: 28,
			CategoryName:   "Sandwiches",
			Customizations: []string{"Bacon", "Coleslaw", "Fries"},
		},
		{
			Name:           "Caprese Melt",
			Description:    "Mozzarella, tomato and pesto on sourdough",
			SourceImageURL: "https://images.fastfood.dev/menu/caprese-melt.png",
			Price:          7.49, Rating: 4.3, Calories: 430, Protein: 19,
			CategoryName:   "Sandwiches",
			Customizations: []string{"Extra Cheese"},
		},
		{
			Name:           "Falafel Wrap",
			Description:    "Crispy falafel with tahini and pickled cabbage",
			SourceImageURL: "https://images.fastfood.dev/menu/falafel-wrap.png",
			Price:          8.25, Rating: 4.4, Calories: 520, Protein: 18,
			CategoryName:   "Wraps",
			Customizations: []string{"Jalapeños", "Coleslaw"},
		},
		{
			Name:           "Buffalo Chicken Wrap",
			Description:    "Spicy buffalo chicken with ranch and lettuce",
			SourceImageURL: "https://images.fastfood.dev/menu/buffalo-chicken-wrap.png",
			Price:          8.75, Rating: 4.6, Calories: 560, Protein: 33,
			CategoryName:   "Wraps",
			Customizations: []string{"Extra Cheese", "Fries"},
		},
		{
			Name:           "Teriyaki Chicken Bowl",
			Description:    "Glazed chicken over steamed rice and greens",
			SourceImageURL: "https://images.fastfood.dev/menu/teriyaki-chicken-bowl.png",
			Price:          9.99, Rating: 4.5, Calories: 580, Protein: 36,
			CategoryName:   "Bowls",
			Customizations: []string{"Avocado", "Large"},
		},
		{
			Name:           "Harvest Grain Bowl",
			Description:    "Roasted vegetables, quinoa and lemon dressing",
			SourceImageURL: "https://images.fastfood.dev/menu/harvest-grain-bowl.png",
			Price:          9.25, Rating: 4.3, Calories: 470, Protein: 15,
			CategoryName:   "Bowls",
			Customizations: []string{"Avocado", "Coleslaw"},
		},
	},
}
