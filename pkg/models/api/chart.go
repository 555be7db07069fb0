package api

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timezone  string  `json:"timezone"`
	City      string  `json:"city"`
	Country   string  `json:"country"`
}

type Planet struct {
	Name      string  `json:"name"`
	Sign      string  `json:"sign"`
	Degree    float64 `json:"degree"`
	Minute    float64 `json:"minute"`
	Second    float64 `json:"second"`
	House     int     `json:"house"`
	Nakshatra string  `json:"nakshatra,omitempty"`
}

type House struct {
	Number int    `json:"number"`
	Sign   string `json:"sign"`
}

type Aspect struct {
	Planet1 string  `json:"planet1"`
	Planet2 string  `json:"planet2"`
	Aspect  string  `json:"aspect"`
	Orb     float64 `json:"orb"`
}

type ChartData struct {
	Planets []Planet `json:"planets"`
	Houses  []House  `json:"houses"`
	Aspects []Aspect `json:"aspects"`
}

type BirthChart struct {
	ID            string    `json:"id,omitempty"`
	Name          string    `json:"name,omitempty"`
	BirthDate     string    `json:"birth_date"`
	BirthTime     *string   `json:"birth_time"`
	BirthLocation *Location `json:"birth_location"`
	ChartData     ChartData `json:"chart_data"`
}

type Profile struct {
	Name      string `json:"name"`
	BirthDate string `json:"birth_date"`
	BirthTime string `json:"birth_time,omitempty"`
	City      string `json:"city,omitempty"`
	Country   string `json:"country,omitempty"`
}
