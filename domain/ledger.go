package domain

// LedgerYear is the principal and interest paid during one loan year.
type LedgerYear struct {
	Principal float64 `json:"principal"`
	Interest  float64 `json:"interest"`
}

// YearlyLedger holds one entry per loan year, in order. A new entry is
// opened on the first month of every loan year, so its length is always
// ceil(monthsElapsed / 12).
type YearlyLedger []LedgerYear

// Record adds a month's amounts to the year that month falls into. Months
// are 1-based.
func (l *YearlyLedger) Record(month int, principal, interest float64) {
	if (month-1)%12 == 0 {
		*l = append(*l, LedgerYear{})
	}
	year := (month - 1) / 12
	(*l)[year].Principal += principal
	(*l)[year].Interest += interest
}

// AddPrincipal credits an extra principal amount (a prepayment) to the
// year the month falls into.
func (l YearlyLedger) AddPrincipal(month int, amount float64) {
	l[(month-1)/12].Principal += amount
}

func (l YearlyLedger) TotalPrincipal() float64 {
	var total float64
	for _, y := range l {
		total += y.Principal
	}
	return total
}

func (l YearlyLedger) TotalInterest() float64 {
	var total float64
	for _, y := range l {
		total += y.Interest
	}
	return total
}
