package generator

// Row is one synthetic delivery order. The parquet tags drive the schema
// when writing Parquet output.
type Row struct {
	OrderID                 string  `json:"order_id" parquet:"name=order_id, type=BYTE_ARRAY, convertedtype=UTF8"`
	RestaurantName          string  `json:"restaurant_name" parquet:"name=restaurant_name, type=BYTE_ARRAY, convertedtype=UTF8"`
	City                    string  `json:"city" parquet:"name=city, type=BYTE_ARRAY, convertedtype=UTF8"`
	CuisineType             string  `json:"cuisine_type" parquet:"name=cuisine_type, type=BYTE_ARRAY, convertedtype=UTF8"`
	OrderDate               string  `json:"order_date" parquet:"name=order_date, type=BYTE_ARRAY, convertedtype=UTF8"`
	OrderHour               int32   `json:"order_hour" parquet:"name=order_hour, type=INT32"`
	DayType                 string  `json:"day_type" parquet:"name=day_type, type=BYTE_ARRAY, convertedtype=UTF8"`
	MealType                string  `json:"meal_type" parquet:"name=meal_type, type=BYTE_ARRAY, convertedtype=UTF8"`
	DistanceKm              float64 `json:"distance_km" parquet:"name=distance_km, type=DOUBLE"`
	OrderValueInr           int32   `json:"order_value_inr" parquet:"name=order_value_inr, type=INT32"`
	NumItems                int32   `json:"num_items" parquet:"name=num_items, type=INT32"`
	WeatherCondition        string  `json:"weather_condition" parquet:"name=weather_condition, type=BYTE_ARRAY, convertedtype=UTF8"`
	TrafficLevel            string  `json:"traffic_level" parquet:"name=traffic_level, type=BYTE_ARRAY, convertedtype=UTF8"`
	PreparationTimeMin      int32   `json:"preparation_time_min" parquet:"name=preparation_time_min, type=INT32"`
	RestaurantRating        float64 `json:"restaurant_rating" parquet:"name=restaurant_rating, type=DOUBLE"`
	PartnerName             string  `json:"delivery_partner_name" parquet:"name=delivery_partner_name, type=BYTE_ARRAY, convertedtype=UTF8"`
	PartnerExperienceMonths int32   `json:"delivery_partner_experience_months" parquet:"name=delivery_partner_experience_months, type=INT32"`
	ActualDeliveryTimeMin   int32   `json:"actual_delivery_time_min" parquet:"name=actual_delivery_time_min, type=INT32"`
}

// csvHeader keeps column order stable across formats.
var csvHeader = []string{
	"order_id",
	"restaurant_name",
	"city",
	"cuisine_type",
	"order_date",
	"order_hour",
	"day_type",
	"meal_type",
	"distance_km",
	"order_value_inr",
	"num_items",
	"weather_condition",
	"traffic_level",
	"preparation_time_min",
	"restaurant_rating",
	"delivery_partner_name",
	"delivery_partner_experience_months",
	"actual_delivery_time_min",
}
