package categorizer

import "paisaparse/internal/models"

// defaultRules is the built-in priority list of keyword groups. Order matters:
// income signals are checked before any expense group so a refund is never
// miscategorized as a purchase, and brand lists come before the generic
// shopping and transfer vocabulary they would otherwise collide with.
var defaultRules = []models.CategoryRule{
	{
		Name: models.CategoryIncome,
		Keywords: []string{
			"salary", "credit", "refund", "dividend", "interest",
		},
	},
	{
		Name: models.CategoryFood,
		Keywords: []string{
			"zomato", "swiggy", "starbucks", "mcdonald", "domino", "pizza",
			"burger", "kfc", "cafe", "restaurant", "bakers", "food", "tea",
			"coffee",
		},
	},
	{
		Name: models.CategoryTransport,
		Keywords: []string{
			"uber", "ola", "rapido", "shell", "petrol", "fuel", "hpcl",
			"bpcl", "irctc", "metro", "flight", "air", "travel", "cab",
		},
	},
	{
		Name: models.CategoryGroceries,
		Keywords: []string{
			"blinkit", "zepto", "bigbasket", "dmart", "reliance", "fresh",
			"mart", "supermarket", "grocer",
		},
	},
	{
		Name: models.CategoryShopping,
		Keywords: []string{
			"amazon", "flipkart", "myntra", "ajio", "shopping", "retail",
			"store", "fashion", "cloth",
		},
	},
	{
		Name: models.CategoryBills,
		Keywords: []string{
			"jio", "airtel", "vi ", "vodafone", "bescom", "tneb",
			"electricity", "water", "gas", "bill", "recharge", "tatasky",
		},
	},
	{
		Name: models.CategoryHealth,
		Keywords: []string{
			"pharmacy", "medplus", "apollo", "practo", "hospital", "clinic",
			"doctor", "lab", "scan",
		},
	},
	{
		Name: models.CategoryEntertainment,
		Keywords: []string{
			"netflix", "spotify", "prime", "hotstar", "youtube", "movie",
			"cinema", "bookmyshow",
		},
	},
	{
		Name: models.CategoryTransfer,
		Keywords: []string{
			"upi", "transfer", "sent to", "paid to",
		},
	},
}
