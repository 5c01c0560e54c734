package domain

// Category is the closed set of event categories. The "all categories"
// filter state is the empty string and lives only in query.Filter, it is
// never a category of a stored event.
type Category string

const (
	CategoryCultureArts       Category = "Culture & Arts"
	CategoryActiveOutdoors    Category = "Active & Outdoors"
	CategoryFoodDrink         Category = "Food & Drink"
	CategoryMusicNightlife    Category = "Music & Nightlife"
	CategoryWorkshopsLearning Category = "Workshops & Learning"
)

func Categories() []Category {
	return []Category{
		CategoryCultureArts,
		CategoryActiveOutdoors,
		CategoryFoodDrink,
		CategoryMusicNightlife,
		CategoryWorkshopsLearning,
	}
}

func (c Category) Valid() bool {
	switch c {
	case CategoryCultureArts,
		CategoryActiveOutdoors,
		CategoryFoodDrink,
		CategoryMusicNightlife,
		CategoryWorkshopsLearning:
		return true
	}
	return false
}

// ParseCategory returns the enum value for a raw string, rejecting anything
// outside the closed set (including the empty string).
func ParseCategory(s string) (Category, bool) {
	c := Category(s)
	if !c.Valid() {
		return "", false
	}
	return c, true
}
