package features

// Vocabulary maps a categorical field's known string values to the stable
// integer codes assigned at training time.
type Vocabulary map[string]int

// Vocabularies holds one vocabulary per categorical field, keyed by the
// field names used in the label encoder artifact.
type Vocabularies map[string]Vocabulary

const (
	FieldRestaurant = "restaurant"
	FieldCity       = "city"
	FieldCuisine    = "cuisine"
	FieldDayType    = "day_type"
	FieldMealType   = "meal_type"
	FieldWeather    = "weather"
	FieldTraffic    = "traffic"
)

// Code looks up the integer code for value in the named field's vocabulary.
// Unknown values are an error; there is no unseen-category fallback.
func (v Vocabularies) Code(field, value string) (int, error) {
	vocab, ok := v[field]
	if !ok {
		return 0, &SchemaMismatchError{Column: field}
	}
	code, ok := vocab[value]
	if !ok {
		return 0, &UnknownCategoryError{Field: field, Value: value}
	}
	return code, nil
}
