package route

import (
	"github.com/karta-lodzianina/ev-backend/internal/domain"
)

// predefinedDestinations are well-known places in and around Łódź offered as
// route targets.
var predefinedDestinations = []domain.Destination{
	{Name: "Centrum Łodzi", Lat: 51.7592, Lng: 19.4560},
	{Name: "Manufaktura", Lat: 51.7825, Lng: 19.4414},
	{Name: "Port Łódź", Lat: 51.7231, Lng: 19.4986},
	{Name: "Dworzec Łódź Fabryczna", Lat: 51.7680, Lng: 19.4730},
	{Name: "Galeria Łódzka", Lat: 51.7750, Lng: 19.4540},
	{Name: "EC1 Łódź", Lat: 51.7690, Lng: 19.4780},
	{Name: "Piotrkowska 217", Lat: 51.7490, Lng: 19.4510},
	{Name: "Atlas Arena", Lat: 51.7535, Lng: 19.5035},
}
