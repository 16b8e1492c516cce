package service

// AllowedCourses is the closed set of course values recipes are tagged with.
// Course preferences outside this set are ignored rather than rejected.
var AllowedCourses = []string{
	"beverages", "breakfast", "cocktail", "condiment", "dessert",
	"juice", "main course", "side dish", "snack",
}

// AllowedDiets is the closed set of diet labels recognized in queries and
// preference fields.
var AllowedDiets = []string{
	"eggetarian", "keto", "non-vegetarian", "sattvik", "vegan", "vegetarian",
}

// dietSynonyms maps each allowed diet to the surface forms matched against a
// recipe's free-form diet field.
var dietSynonyms = map[string][]string{
	"non-vegetarian": {"non-vegetarian", "nonvegetarian", "non veg", "non-veg", "non vegetarian"},
	"vegetarian":     {"vegetarian"},
	"keto":           {"keto", "ketogenic"},
	"eggetarian":     {"eggetarian"},
	"sattvik":        {"sattvik", "sattvic"},
	"vegan":          {"vegan"},
}

// ingredientSynonyms maps canonical ingredient names to the surface forms the
// normalizer folds into them. Unknown tokens pass through unchanged.
var ingredientSynonyms = map[string][]string{
	"tomato":       {"tomato", "tomatoes"},
	"chili":        {"chili", "chillies", "chili powder", "chilly powder", "chili flakes", "chili flakes powder", "cayenne"},
	"onion":        {"onion", "onions", "shallots"},
	"garlic":       {"garlic", "garlic cloves", "garlic clove"},
	"ginger":       {"ginger", "ginger root"},
	"coriander":    {"coriander", "cilantro", "coriander leaves", "cilantro leaves"},
	"capsicum":     {"capsicum", "bell pepper", "bell peppers", "green pepper"},
	"eggplant":     {"eggplant", "brinjal", "aubergine"},
	"yogurt":       {"yogurt", "yoghurt", "curd"},
	"paneer":       {"paneer", "cottage cheese"},
	"okra":         {"okra", "lady finger", "ladyfinger", "bhindi"},
	"potato":       {"potato", "potatoes"},
	"chickpea":     {"chickpea", "chickpeas", "garbanzo beans", "chana"},
	"corn":         {"corn", "sweet corn", "maize"},
	"cumin":        {"cumin", "cumin seeds", "jeera"},
	"turmeric":     {"turmeric", "turmeric powder", "haldi"},
	"lemon":        {"lemon", "lemons", "lime", "limes"},
	"mint":         {"mint", "mint leaves", "pudina"},
	"spinach":      {"spinach", "palak", "baby spinach"},
	"butter":       {"butter", "unsalted butter", "salted butter"},
	"rice":         {"rice", "basmati rice", "cooked rice"},
	"green peas":   {"green peas", "peas", "frozen peas"},
	"mushroom":     {"mushroom", "mushrooms", "button mushrooms"},
	"cauliflower":  {"cauliflower", "gobi"},
	"green chili":  {"green chili", "green chilli", "green chillies", "green chilies"},
	"curry leaves": {"curry leaves", "curry leaf", "kadi patta"},
}

// IsAllowedCourse reports whether course (already lowercased) belongs to the
// closed course set.
func IsAllowedCourse(course string) bool {
	for _, c := range AllowedCourses {
		if c == course {
			return true
		}
	}
	return false
}

// ExpandDietSynonyms returns the surface forms for a requested diet label. A
// label without a synonym entry matches only itself.
func ExpandDietSynonyms(diet string) []string {
	if syns, ok := dietSynonyms[diet]; ok {
		return syns
	}
	return []string{diet}
}
