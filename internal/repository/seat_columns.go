package repository

import "github.com/mfar201/flight-ticket-booking-system-sub001/internal/domain"

type seatColumns struct {
	available string
	total     string
	price     string
}

// classColumns maps a seat class to its flights-table columns. SQL touching
// per-class counters is assembled only from these constants, never from
// request text.
func classColumns(class domain.SeatClass) (seatColumns, error) {
	switch class {
	case domain.SeatClassEconomy:
		return seatColumns{"economy_available", "economy_total", "economy_price_cents"}, nil
	case domain.SeatClassBusiness:
		return seatColumns{"business_available", "business_total", "business_price_cents"}, nil
	case domain.SeatClassFirstClass:
		return seatColumns{"first_class_available", "first_class_total", "first_class_price_cents"}, nil
	}
	return seatColumns{}, domain.ErrInvalidSeatClass
}
