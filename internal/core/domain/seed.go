package domain

// SeededMeal is one (day, slot) entry of the demo week.
type SeededMeal struct {
	Day   Day
	Slot  MealSlot
	Entry MealEntry
}

// SeedMeals returns the demo household's weekly plan.
func SeedMeals() []SeededMeal {
	meal := func(day Day, slot MealSlot, dish, cuisine, t string, servings int) SeededMeal {
		return SeededMeal{Day: day, Slot: slot, Entry: MealEntry{Dish: dish, Cuisine: cuisine, Time: t, Servings: servings}}
	}
	return []SeededMeal{
		meal(Monday, SlotBreakfast, "Overnight Oats", "American", "15 mins", 3),
		meal(Monday, SlotLunch, "Caesar Salad", "Italian", "20 mins", 3),
		meal(Monday, SlotDinner, "Chicken Stir Fry", "Asian", "30 mins", 3),
		meal(Tuesday, SlotBreakfast, "Avocado Toast", "Mediterranean", "10 mins", 3),
		meal(Tuesday, SlotLunch, "Quesadillas", "Mexican", "15 mins", 3),
		meal(Tuesday, SlotDinner, "Spaghetti Carbonara", "Italian", "25 mins", 3),
		meal(Wednesday, SlotBreakfast, "Smoothie Bowl", "American", "10 mins", 3),
		meal(Wednesday, SlotLunch, "Poke Bowl", "Asian", "20 mins", 3),
		meal(Wednesday, SlotDinner, "Tacos", "Mexican", "30 mins", 3),
		meal(Thursday, SlotBreakfast, "Pancakes", "American", "20 mins", 3),
		meal(Thursday, SlotLunch, "Greek Salad", "Mediterranean", "15 mins", 3),
		meal(Thursday, SlotDinner, "Butter Chicken", "Indian", "45 mins", 3),
		meal(Friday, SlotBreakfast, "French Toast", "American", "25 mins", 3),
		meal(Friday, SlotLunch, "Sushi Bowls", "Asian", "30 mins", 3),
		meal(Friday, SlotDinner, "Pizza Night", "Italian", "40 mins", 3),
		meal(Saturday, SlotBreakfast, "Breakfast Burrito", "Mexican", "20 mins", 3),
		meal(Saturday, SlotLunch, "Caprese Sandwich", "Italian", "10 mins", 3),
		meal(Saturday, SlotDinner, "BBQ Night", "American", "60 mins", 3),
		meal(Sunday, SlotBreakfast, "Brunch Spread", "American", "45 mins", 3),
		meal(Sunday, SlotLunch, "Leftover Magic", "Mixed", "15 mins", 3),
		meal(Sunday, SlotDinner, "Meal Prep Sunday", "Mixed", "90 mins", 6),
	}
}

// SeedShoppingItems returns the demo list. IDs are assigned on insert.
func SeedShoppingItems() []ShoppingItem {
	return []ShoppingItem{
		{Name: "Chicken breast", Category: "Meat", AddedBy: "Sarah"},
		{Name: "Broccoli", Category: "Vegetables", Completed: true, AddedBy: "Mike"},
		{Name: "Rice", Category: "Grains", AddedBy: SuggestionActor},
		{Name: "Milk", Category: "Dairy", AddedBy: "Emma"},
		{Name: "Bananas", Category: "Fruits", AddedBy: "Sarah"},
		{Name: "Bread", Category: "Bakery", Completed: true, AddedBy: "Cook"},
		{Name: "Eggs", Category: "Dairy", AddedBy: SuggestionActor},
		{Name: "Tomatoes", Category: "Vegetables", AddedBy: "Mike"},
	}
}

// SeededActivity is one entry of the demo calendar.
type SeededActivity struct {
	Day      Day
	Activity ActivityEntry
}

// SeedActivities returns the demo calendar. IDs are assigned on insert.
func SeedActivities() []SeededActivity {
	act := func(day Day, title, timeRange, location string, cat ActivityCategory, assignedTo, driver string) SeededActivity {
		return SeededActivity{Day: day, Activity: ActivityEntry{
			Title: title, TimeRange: timeRange, Location: location, Category: cat, AssignedTo: assignedTo, Driver: driver,
		}}
	}
	return []SeededActivity{
		act(Monday, "Piano Lesson", "4:00 PM - 5:00 PM", "Music Academy", CategoryMusic, "Emma", "Sarah"),
		act(Tuesday, "Soccer Practice", "5:30 PM - 7:00 PM", "Community Park", CategorySports, "Emma", "Mike"),
		act(Wednesday, "Art Class", "3:00 PM - 4:30 PM", "Art Studio Downtown", CategoryCreative, "Emma", "Sarah"),
		act(Thursday, "Swimming Lesson", "6:00 PM - 7:00 PM", "Aquatic Center", CategorySports, "Emma", "Mike"),
		act(Friday, "Playdate", "2:00 PM - 4:00 PM", "Friend's House", CategorySocial, "Emma", "Sarah"),
		act(Saturday, "Soccer Game", "9:00 AM - 11:00 AM", "Sports Complex", CategorySports, "Emma", "Mike"),
		act(Saturday, "Family Movie Night", "7:00 PM - 9:00 PM", "Home", CategoryFamily, "Everyone", "N/A"),
		act(Sunday, "Family Brunch", "11:00 AM - 1:00 PM", "Downtown Cafe", CategoryFamily, "Everyone", "Mike"),
	}
}

// SeedRoutes returns today's demo routes. IDs are assigned on insert.
func SeedRoutes() []Route {
	return []Route{
		{Title: "School Drop-off", Passenger: "Emma", Time: "8:00 AM", Destination: "Lincoln Elementary", DistanceMiles: 2.5, Status: RouteCompleted},
		{Title: "Soccer Practice Pickup", Passenger: "Emma", Time: "4:00 PM", Destination: "Community Sports Center", DistanceMiles: 5.2, Status: RouteScheduled},
		{Title: "Piano Lesson", Passenger: "Emma", Time: "6:30 PM", Destination: "Music Academy", DistanceMiles: 3.8, Status: RouteScheduled},
	}
}

// SeedVehicles returns the demo fleet. IDs are assigned on insert.
func SeedVehicles() []Vehicle {
	return []Vehicle{
		{Name: "Family SUV", Model: "Honda CR-V 2022", FuelLevel: 75, Status: VehicleAvailable, LastService: "2 weeks ago"},
		{Name: "Sedan", Model: "Toyota Camry 2021", FuelLevel: 45, Status: VehicleInUse, LastService: "1 month ago"},
	}
}

// SeedMaintenance returns the demo service reminders.
func SeedMaintenance() []MaintenanceReminder {
	return []MaintenanceReminder{
		{Vehicle: "Honda CR-V", Service: "Oil Change", Due: "Next week", Mileage: "95,000 miles"},
		{Vehicle: "Toyota Camry", Service: "Tire Rotation", Due: "2 weeks", Mileage: "78,500 miles"},
	}
}

// FamilyRoster returns the household members shown on the parent dashboard
// and in the admin's role section.
func FamilyRoster() []FamilyMember {
	return []FamilyMember{
		{Name: "Sarah", Role: "Parent", Email: "sarah@johnson.com", Avatar: "👩‍💼"},
		{Name: "Mike", Role: "Parent", Email: "mike@johnson.com", Avatar: "👨‍💼"},
		{Name: "Emma", Role: "Child", Email: "emma@johnson.com", Avatar: "👧", Age: 8},
	}
}

// SuggestionPool is the candidate set the suggestion generator draws from.
func SuggestionPool() []Suggestion {
	return []Suggestion{
		{Dish: "Asian Stir-Fry with Vegetables", Cuisine: "Asian", Time: "30 mins", Servings: 4, Slot: SlotDinner},
		{Dish: "Mediterranean Grilled Chicken Salad", Cuisine: "Mediterranean", Time: "25 mins", Servings: 4, Slot: SlotLunch},
		{Dish: "Kid-Friendly Quesadilla Night", Cuisine: "Mexican", Time: "20 mins", Servings: 4, Slot: SlotDinner},
		{Dish: "Margherita Flatbread", Cuisine: "Italian", Time: "25 mins", Servings: 3, Slot: SlotDinner},
		{Dish: "Chana Masala", Cuisine: "Indian", Time: "40 mins", Servings: 4, Slot: SlotDinner},
		{Dish: "Blueberry Pancakes", Cuisine: "American", Time: "20 mins", Servings: 3, Slot: SlotBreakfast},
		{Dish: "Shakshuka", Cuisine: "Mediterranean", Time: "25 mins", Servings: 3, Slot: SlotBreakfast},
		{Dish: "Teriyaki Salmon Bowls", Cuisine: "Asian", Time: "30 mins", Servings: 4, Slot: SlotDinner},
		{Dish: "Black Bean Burrito Bowls", Cuisine: "Mexican", Time: "25 mins", Servings: 4, Slot: SlotLunch},
		{Dish: "Minestrone Soup", Cuisine: "Italian", Time: "45 mins", Servings: 6, Slot: SlotLunch},
		{Dish: "Yogurt Parfait", Cuisine: "American", Time: "5 mins", Servings: 3, Slot: SlotSnack},
		{Dish: "Hummus and Veggie Sticks", Cuisine: "Mediterranean", Time: "10 mins", Servings: 3, Slot: SlotSnack},
	}
}
