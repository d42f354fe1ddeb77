package bookings

import (
	"github.com/RitikRK96/esnan-digital/pkg/enums"
	pkgerrors "github.com/RitikRK96/esnan-digital/pkg/errors"
)

// Add-on prices in rupees.
const (
	photoAddOnRupees     = 100
	holyWaterAddOnRupees = 300
)

type cityInfo struct {
	displayName string
	priceRupees int
}

// cityCatalog is the fixed set of bookable holy cities and their base prices.
var cityCatalog = map[enums.HolyCity]cityInfo{
	enums.HolyCityPrayagraj: {displayName: "Prayagraj (Triveni Sangam)", priceRupees: 251},
	enums.HolyCityHaridwar:  {displayName: "Haridwar (Har Ki Pauri)", priceRupees: 121},
	enums.HolyCityVaranasi:  {displayName: "Varanasi (Dashashwamedh Ghat)", priceRupees: 131},
	enums.HolyCityRishikesh: {displayName: "Rishikesh (Triveni Ghat)", priceRupees: 111},
	enums.HolyCityUjjain:    {displayName: "Ujjain (Ram Ghat)", priceRupees: 141},
	enums.HolyCityNashik:    {displayName: "Nashik (Ramkund)", priceRupees: 131},
}

// CityDTO is one bookable city as served to clients.
type CityDTO struct {
	ID          enums.HolyCity `json:"id"`
	Name        string         `json:"name"`
	PriceRupees int            `json:"price_rupees"`
}

// Cities lists the bookable cities in a fixed presentation order.
func Cities() []CityDTO {
	order := []enums.HolyCity{
		enums.HolyCityPrayagraj,
		enums.HolyCityHaridwar,
		enums.HolyCityVaranasi,
		enums.HolyCityRishikesh,
		enums.HolyCityUjjain,
		enums.HolyCityNashik,
	}
	cities := make([]CityDTO, 0, len(order))
	for _, id := range order {
		info := cityCatalog[id]
		cities = append(cities, CityDTO{ID: id, Name: info.displayName, PriceRupees: info.priceRupees})
	}
	return cities
}

// priceBooking computes the server-side total for a booking request. The
// client never supplies an amount.
func priceBooking(city enums.HolyCity, addPhoto, addHolyWater bool) (cityInfo, int, error) {
	info, ok := cityCatalog[city]
	if !ok {
		return cityInfo{}, 0, pkgerrors.New(pkgerrors.CodeValidation, "unknown city")
	}
	total := info.priceRupees
	if addPhoto {
		total += photoAddOnRupees
	}
	if addHolyWater {
		total += holyWaterAddOnRupees
	}
	return info, total, nil
}
