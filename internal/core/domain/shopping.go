package domain

const (
	// DefaultCategory is assigned to items added without a category.
	DefaultCategory = "Uncategorized"
	// SuggestionActor is the AddedBy value of generated items.
	SuggestionActor = "AI Suggestion"
)

// ShoppingCategories lists the categories offered when adding an item.
var ShoppingCategories = []string{"Fruits", "Vegetables", "Meat", "Dairy", "Grains", "Bakery", "Snacks", "Pantry"}

// ShoppingItem is one line of the shopping list.
type ShoppingItem struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Completed bool   `json:"completed"`
	AddedBy   string `json:"added_by"`
}

// GroceryStaple is an item the list generator knows how to add.
type GroceryStaple struct {
	Name     string
	Category string
}

// MealStaples are the items appended by "generate from meals".
var MealStaples = []GroceryStaple{
	{Name: "Pasta", Category: "Grains"},
	{Name: "Parmesan cheese", Category: "Dairy"},
	{Name: "Bell peppers", Category: "Vegetables"},
	{Name: "Olive oil", Category: "Pantry"},
}
