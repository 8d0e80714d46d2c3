package postgres

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/karta-lodzianina/ev-backend/internal/domain"
	"github.com/karta-lodzianina/ev-backend/internal/ports"
)

// Seed loads the Łódź charging station catalog into an empty database. The
// dataset mirrors the EIPA registry snapshot for the city; availability is
// refreshed live by the poller afterwards.
func Seed(ctx context.Context, repo ports.StationRepository, log *zap.Logger) error {
	count, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		log.Debug("station catalog already seeded", zap.Int64("stations", count))
		return nil
	}

	stations := lodzStations()
	for i := range stations {
		stations[i].Recompute()
		if err := repo.Save(ctx, &stations[i]); err != nil {
			return err
		}
	}

	log.Info("seeded station catalog", zap.Int("stations", len(stations)))
	return nil
}

var (
	opGreenWay = domain.Operator{ID: 5, Name: "GreenWay Polska Sp. z o.o.", ShortName: "GreenWay", Code: "PL-7R5", Phone: "+48 58 325 10 17", Email: "bok@greenwaypolska.pl", Website: "https://greenwaypolska.pl"}
	opPGE      = domain.Operator{ID: 8, Name: "PGE Nowa Energia Sp. z o.o.", ShortName: "PGE", Code: "PL-PGE", Phone: "+48 22 344 55 66", Email: "nowa.energia@gkpge.pl", Website: "https://pge.pl"}
	opTauron   = domain.Operator{ID: 11, Name: "TAURON NOWE TECHNOLOGIE S.A.", ShortName: "TAURON", Code: "PL-BB4", Phone: "+48 572 886 552", Email: "emap@tauron.pl", Website: "https://tauron.pl"}
	opEVPlus   = domain.Operator{ID: 4, Name: "EV PLUS Sp. z o.o.", ShortName: "EV PLUS", Code: "PL-GJC", Phone: "+48 533 708 555", Email: "biuro@evplus.com.pl", Website: "https://evplus.com.pl"}
	opOrlen    = domain.Operator{ID: 26, Name: "Orlen Charge Sp. z o.o.", ShortName: "Orlen Charge", Code: "PL-ORL", Phone: "+48 22 778 00 00", Email: "charge@orlen.pl", Website: "https://orlencharge.pl"}
	opLidl     = domain.Operator{ID: 89, Name: "Lidl Polska", ShortName: "Lidl", Code: "PL-LDL", Phone: "+48 61 856 69 00", Email: "info@lidl.pl", Website: "https://lidl.pl"}
)

func price(v float64) *float64 { return &v }

func point(id int64, code string, powerKW float64, connectors []domain.Connector, avail domain.AvailabilityStatus, op domain.OperationalStatus, pricePerKwh float64) domain.ChargingPoint {
	return domain.ChargingPoint{
		ID:                id,
		Code:              code,
		PowerKW:           powerKW,
		Connectors:        connectors,
		Availability:      avail,
		OperationalStatus: op,
		PricePerKwh:       price(pricePerKwh),
		Currency:          "PLN",
		LastUpdate:        time.Date(2025, 12, 3, 0, 0, 0, 0, time.UTC),
	}
}

func ccs(powerKW float64) []domain.Connector {
	return []domain.Connector{{Type: "CCS Combo 2", PowerKW: powerKW, CableAttached: true}}
}

func ccsChademo(powerKW float64) []domain.Connector {
	return []domain.Connector{
		{Type: "CCS Combo 2", PowerKW: powerKW, CableAttached: true},
		{Type: "CHAdeMO", PowerKW: powerKW, CableAttached: true},
	}
}

func type2(powerKW float64) []domain.Connector {
	return []domain.Connector{{Type: "Type 2", PowerKW: powerKW, CableAttached: false}}
}

func lodzStations() []domain.Station {
	return []domain.Station{
		{
			ID: "lodz-001", PoolID: 1847, Name: "Manufaktura - Parking Główny",
			Latitude: 51.7948, Longitude: 19.4442,
			Address:  domain.Address{Street: "ul. Drewnowska", HouseNumber: "58", PostalCode: "91-002", City: "Łódź", Full: "ul. Drewnowska 58, 91-002 Łódź"},
			Operator: opGreenWay,
			ChargingPoints: []domain.ChargingPoint{
				point(24501, "PL-7R5-E001-01", 50, ccsChademo(50), domain.AvailabilityAvailable, domain.OperationalOK, 1.89),
				point(24502, "PL-7R5-E001-02", 50, ccs(50), domain.AvailabilityOccupied, domain.OperationalOK, 1.89),
				point(24503, "PL-7R5-E001-03", 22, type2(22), domain.AvailabilityAvailable, domain.OperationalOK, 1.49),
				point(24504, "PL-7R5-E001-04", 22, type2(22), domain.AvailabilityAvailable, domain.OperationalOK, 1.49),
			},
			IsOpen24h: true, IsOpenNow: true,
			Accessibility:  "Parking podziemny Manufaktura",
			PaymentMethods: []string{"Aplikacja mobilna", "Karta płatnicza", "Karta RFID"},
			AuthMethods:    []string{"Aplikacja mobilna", "RFID/NFC"},
			Features:       []string{"Parking kryty", "Centrum handlowe"},
		},
		{
			ID: "lodz-002", PoolID: 2156, Name: "Galeria Łódzka",
			Latitude: 51.7687, Longitude: 19.4515,
			Address:  domain.Address{Street: "al. Piłsudskiego", HouseNumber: "15/23", PostalCode: "90-307", City: "Łódź", Full: "al. Piłsudskiego 15/23, 90-307 Łódź"},
			Operator: opPGE,
			ChargingPoints: []domain.ChargingPoint{
				point(31001, "PL-PGE-E045-01", 150, ccs(150), domain.AvailabilityAvailable, domain.OperationalOK, 2.19),
				point(31002, "PL-PGE-E045-02", 150, ccs(150), domain.AvailabilityAvailable, domain.OperationalOK, 2.19),
				point(31003, "PL-PGE-E045-03", 22, type2(22), domain.AvailabilityOccupied, domain.OperationalOK, 1.39),
			},
			IsOpen24h: false, IsOpenNow: true,
			Accessibility:  "Parking podziemny przy wejściu głównym",
			PaymentMethods: []string{"Aplikacja mobilna", "Karta płatnicza"},
			AuthMethods:    []string{"Aplikacja mobilna", "RFID/NFC"},
			Features:       []string{"Centrum handlowe", "Kino"},
		},
		{
			ID: "lodz-003", PoolID: 2891, Name: "EC1 Łódź - Miasto Kultury",
			Latitude: 51.7658, Longitude: 19.4758,
			Address:  domain.Address{Street: "ul. Targowa", HouseNumber: "1/3", PostalCode: "90-022", City: "Łódź", Full: "ul. Targowa 1/3, 90-022 Łódź"},
			Operator: opTauron,
			ChargingPoints: []domain.ChargingPoint{
				point(45201, "PL-BB4-E012-01", 50, ccsChademo(50), domain.AvailabilityOffline, domain.OperationalMaintenance, 1.79),
				point(45202, "PL-BB4-E012-02", 22, type2(22), domain.AvailabilityAvailable, domain.OperationalOK, 1.29),
				point(45203, "PL-BB4-E012-03", 22, type2(22), domain.AvailabilityOccupied, domain.OperationalOK, 1.29),
			},
			IsOpen24h: true, IsOpenNow: true,
			Accessibility:  "Parking przed budynkiem EC1",
			PaymentMethods: []string{"Aplikacja mobilna", "Karta płatnicza", "Karta RFID"},
			AuthMethods:    []string{"Aplikacja mobilna", "RFID/NFC"},
			Features:       []string{"Centrum kultury", "Planetarium"},
		},
		{
			ID: "lodz-004", PoolID: 3245, Name: "Sukcesja - Ultra Charger",
			Latitude: 51.7527, Longitude: 19.4393,
			Address:  domain.Address{Street: "al. Politechniki", HouseNumber: "1", PostalCode: "93-590", City: "Łódź", Full: "al. Politechniki 1, 93-590 Łódź"},
			Operator: opGreenWay,
			ChargingPoints: []domain.ChargingPoint{
				point(52301, "PL-7R5-E089-01", 350, ccs(350), domain.AvailabilityAvailable, domain.OperationalOK, 2.49),
				point(52302, "PL-7R5-E089-02", 350, ccs(350), domain.AvailabilityAvailable, domain.OperationalOK, 2.49),
				point(52303, "PL-7R5-E089-03", 150, []domain.Connector{
					{Type: "CCS Combo 2", PowerKW: 150, CableAttached: true},
					{Type: "CHAdeMO", PowerKW: 100, CableAttached: true},
				}, domain.AvailabilityOccupied, domain.OperationalOK, 2.19),
				point(52304, "PL-7R5-E089-04", 22, type2(22), domain.AvailabilityAvailable, domain.OperationalOK, 1.59),
			},
			IsOpen24h: true, IsOpenNow: true,
			Accessibility:  "Parking naziemny przy centrum handlowym",
			PaymentMethods: []string{"Aplikacja mobilna", "Karta płatnicza", "Karta RFID"},
			AuthMethods:    []string{"Aplikacja mobilna", "RFID/NFC"},
			Features:       []string{"Centrum handlowe", "Tesla charging"},
		},
		{
			ID: "lodz-005", PoolID: 1523, Name: "Hotel Tobaco",
			Latitude: 51.7625, Longitude: 19.4628,
			Address:  domain.Address{Street: "ul. Kopernika", HouseNumber: "64", PostalCode: "90-553", City: "Łódź", Full: "ul. Kopernika 64, 90-553 Łódź"},
			Operator: opEVPlus,
			ChargingPoints: []domain.ChargingPoint{
				point(18901, "PL-GJC-E034-01", 11, type2(11), domain.AvailabilityAvailable, domain.OperationalOK, 1.19),
				point(18902, "PL-GJC-E034-02", 11, type2(11), domain.AvailabilityOccupied, domain.OperationalOK, 1.19),
			},
			IsOpen24h: true, IsOpenNow: true,
			Accessibility:  "Parking hotelowy",
			PaymentMethods: []string{"Aplikacja mobilna", "Karta RFID"},
			AuthMethods:    []string{"Aplikacja mobilna", "RFID/NFC"},
			Features:       []string{"Hotel", "Restauracja"},
		},
		{
			ID: "lodz-006", PoolID: 4012, Name: "Port Łódź - Hub Ładowania",
			Latitude: 51.7189, Longitude: 19.3872,
			Address:  domain.Address{Street: "ul. Pabianicka", HouseNumber: "245", PostalCode: "93-457", City: "Łódź", Full: "ul. Pabianicka 245, 93-457 Łódź"},
			Operator: opGreenWay,
			ChargingPoints: []domain.ChargingPoint{
				point(67801, "PL-7R5-E156-01", 150, ccs(150), domain.AvailabilityAvailable, domain.OperationalOK, 2.09),
				point(67802, "PL-7R5-E156-02", 150, ccs(150), domain.AvailabilityAvailable, domain.OperationalOK, 2.09),
				point(67803, "PL-7R5-E156-03", 50, ccsChademo(50), domain.AvailabilityOccupied, domain.OperationalOK, 1.89),
				point(67804, "PL-7R5-E156-04", 22, type2(22), domain.AvailabilityAvailable, domain.OperationalOK, 1.49),
				point(67805, "PL-7R5-E156-05", 22, type2(22), domain.AvailabilityAvailable, domain.OperationalOK, 1.49),
				point(67806, "PL-7R5-E156-06", 22, type2(22), domain.AvailabilityAvailable, domain.OperationalOK, 1.49),
				point(67807, "PL-7R5-E156-07", 22, type2(22), domain.AvailabilityOccupied, domain.OperationalOK, 1.49),
				point(67808, "PL-7R5-E156-08", 22, type2(22), domain.AvailabilityAvailable, domain.OperationalOK, 1.49),
			},
			IsOpen24h: true, IsOpenNow: true,
			Accessibility:  "Parking naziemny, strefa EV blisko wejścia",
			PaymentMethods: []string{"Aplikacja mobilna", "Karta płatnicza", "Karta RFID"},
			AuthMethods:    []string{"Aplikacja mobilna", "RFID/NFC"},
			Features:       []string{"Centrum handlowe", "IKEA", "Kino"},
		},
		{
			ID: "lodz-007", PoolID: 2478, Name: "Łódź Fabryczna - Dworzec",
			Latitude: 51.7680, Longitude: 19.4698,
			Address:  domain.Address{Street: "al. Bandurskiego", HouseNumber: "4", PostalCode: "90-003", City: "Łódź", Full: "al. Bandurskiego 4, 90-003 Łódź"},
			Operator: opOrlen,
			ChargingPoints: []domain.ChargingPoint{
				point(38901, "PL-ORL-E078-01", 150, ccs(150), domain.AvailabilityAvailable, domain.OperationalOK, 2.29),
				point(38902, "PL-ORL-E078-02", 150, ccs(150), domain.AvailabilityOccupied, domain.OperationalOK, 2.29),
				point(38903, "PL-ORL-E078-03", 50, ccsChademo(50), domain.AvailabilityAvailable, domain.OperationalOK, 1.99),
				point(38904, "PL-ORL-E078-04", 22, type2(22), domain.AvailabilityAvailable, domain.OperationalOK, 1.49),
			},
			IsOpen24h: true, IsOpenNow: true,
			Accessibility:  "Parking podziemny dworca Łódź Fabryczna",
			PaymentMethods: []string{"Aplikacja mobilna", "Karta płatnicza", "Karta RFID", "Orlen Pay"},
			AuthMethods:    []string{"Aplikacja mobilna", "RFID/NFC", "Kod QR"},
			Features:       []string{"Dworzec kolejowy", "Dworzec autobusowy"},
		},
		{
			ID: "lodz-008", PoolID: 3567, Name: "Piotrkowska 217",
			Latitude: 51.7513, Longitude: 19.4563,
			Address:  domain.Address{Street: "ul. Piotrkowska", HouseNumber: "217", PostalCode: "90-451", City: "Łódź", Full: "ul. Piotrkowska 217, 90-451 Łódź"},
			Operator: opPGE,
			ChargingPoints: []domain.ChargingPoint{
				point(56701, "PL-PGE-E089-01", 22, type2(22), domain.AvailabilityAvailable, domain.OperationalOK, 1.29),
				point(56702, "PL-PGE-E089-02", 22, type2(22), domain.AvailabilityAvailable, domain.OperationalOK, 1.29),
			},
			IsOpen24h: true, IsOpenNow: true,
			Accessibility:  "Parking przy ul. Piotrkowskiej",
			PaymentMethods: []string{"Aplikacja mobilna", "Karta płatnicza"},
			AuthMethods:    []string{"Aplikacja mobilna", "RFID/NFC"},
			Features:       []string{"Centrum miasta", "Restauracje"},
		},
		{
			ID: "lodz-009", PoolID: 4234, Name: "Orlen - al. Włókniarzy",
			Latitude: 51.7856, Longitude: 19.4234,
			Address:  domain.Address{Street: "al. Włókniarzy", HouseNumber: "256", PostalCode: "91-301", City: "Łódź", Full: "al. Włókniarzy 256, 91-301 Łódź"},
			Operator: opOrlen,
			ChargingPoints: []domain.ChargingPoint{
				point(71201, "PL-ORL-E145-01", 150, ccs(150), domain.AvailabilityAvailable, domain.OperationalOK, 2.19),
				point(71202, "PL-ORL-E145-02", 50, ccsChademo(50), domain.AvailabilityAvailable, domain.OperationalOK, 1.89),
			},
			IsOpen24h: true, IsOpenNow: true,
			Accessibility:  "Stacja paliw Orlen",
			PaymentMethods: []string{"Aplikacja mobilna", "Karta płatnicza", "Orlen Pay", "Karta RFID"},
			AuthMethods:    []string{"Aplikacja mobilna", "RFID/NFC", "Kod QR"},
			Features:       []string{"Stacja paliw", "Sklep"},
		},
		{
			ID: "lodz-010", PoolID: 1892, Name: "Politechnika Łódzka",
			Latitude: 51.7534, Longitude: 19.4512,
			Address:  domain.Address{Street: "ul. Żeromskiego", HouseNumber: "116", PostalCode: "90-924", City: "Łódź", Full: "ul. Żeromskiego 116, 90-924 Łódź"},
			Operator: opEVPlus,
			ChargingPoints: []domain.ChargingPoint{
				point(22301, "PL-GJC-E056-01", 22, type2(22), domain.AvailabilityAvailable, domain.OperationalOK, 0.99),
				point(22302, "PL-GJC-E056-02", 22, type2(22), domain.AvailabilityOccupied, domain.OperationalOK, 0.99),
				point(22303, "PL-GJC-E056-03", 11, type2(11), domain.AvailabilityAvailable, domain.OperationalOK, 0.89),
			},
			IsOpen24h: false, IsOpenNow: true,
			Accessibility:  "Parking przy Centrum Sportu PŁ",
			PaymentMethods: []string{"Aplikacja mobilna", "Karta RFID"},
			AuthMethods:    []string{"Aplikacja mobilna", "RFID/NFC"},
			Features:       []string{"Uczelnia", "Centrum sportowe"},
		},
		{
			ID: "lodz-011", PoolID: 5123, Name: "Lidl - Łódź Górna",
			Latitude: 51.7412, Longitude: 19.4867,
			Address:  domain.Address{Street: "ul. Pabianicka", HouseNumber: "78", PostalCode: "93-421", City: "Łódź", Full: "ul. Pabianicka 78, 93-421 Łódź"},
			Operator: opLidl,
			ChargingPoints: []domain.ChargingPoint{
				point(82301, "PL-LDL-E034-01", 50, ccs(50), domain.AvailabilityAvailable, domain.OperationalOK, 1.59),
				point(82302, "PL-LDL-E034-02", 22, type2(22), domain.AvailabilityAvailable, domain.OperationalOK, 1.29),
			},
			IsOpen24h: false, IsOpenNow: true,
			Accessibility:  "Parking przy sklepie Lidl",
			PaymentMethods: []string{"Aplikacja mobilna", "Karta płatnicza"},
			AuthMethods:    []string{"Aplikacja mobilna", "Kod QR"},
			Features:       []string{"Supermarket"},
		},
		{
			ID: "lodz-012", PoolID: 3891, Name: "Atlas Arena",
			Latitude: 51.7478, Longitude: 19.4089,
			Address:  domain.Address{Street: "al. Bandurskiego", HouseNumber: "7", PostalCode: "94-020", City: "Łódź", Full: "al. Bandurskiego 7, 94-020 Łódź"},
			Operator: opTauron,
			ChargingPoints: []domain.ChargingPoint{
				point(64501, "PL-BB4-E067-01", 50, ccsChademo(50), domain.AvailabilityAvailable, domain.OperationalOK, 1.79),
				point(64502, "PL-BB4-E067-02", 22, type2(22), domain.AvailabilityAvailable, domain.OperationalOK, 1.29),
				point(64503, "PL-BB4-E067-03", 22, type2(22), domain.AvailabilityOccupied, domain.OperationalOK, 1.29),
			},
			IsOpen24h: true, IsOpenNow: true,
			Accessibility:  "Parking główny przy Atlas Arena",
			PaymentMethods: []string{"Aplikacja mobilna", "Karta płatnicza", "Karta RFID"},
			AuthMethods:    []string{"Aplikacja mobilna", "RFID/NFC"},
			Features:       []string{"Hala sportowa", "Koncerty"},
		},
	}
}
