package geo

//Repository resolves addresses to location records at block granularity
type Repository interface {
	Locate(address string) (*Location, error)
}

//LangEnglish keys the english entries of a place's name map
const LangEnglish = "en"

//Names maps a language code to a place name
type Names map[string]string

//Place is a named geographic entity with per-language names
type Place struct {
	Names Names `bson:"names" json:"names"`
}

//Name returns the place's name in the given language, or nil when
//the record carries no such name
func (p Place) Name(lang string) *string {
	name, ok := p.Names[lang]
	if !ok || name == "" {
		return nil
	}
	return &name
}

//Coordinates holds a location's latitude and longitude
type Coordinates struct {
	Latitude  *float64 `bson:"latitude" json:"latitude"`
	Longitude *float64 `bson:"longitude" json:"longitude"`
}

//Location is the geo record stored for a /16-aligned address block.
//Host bits below the block granularity are deliberately not resolved.
type Location struct {
	Block        string      `bson:"ipv4" json:"ipv4"`
	Country      Place       `bson:"country" json:"country"`
	City         Place       `bson:"city" json:"city"`
	Continent    Place       `bson:"continent" json:"continent"`
	Subdivisions []Place     `bson:"subdivisions" json:"subdivisions"`
	Coordinates  Coordinates `bson:"location" json:"location"`
}

//Region returns the english name of the location's first subdivision,
//or nil when the record carries none
func (l *Location) Region() *string {
	if len(l.Subdivisions) == 0 {
		return nil
	}
	return l.Subdivisions[0].Name(LangEnglish)
}
