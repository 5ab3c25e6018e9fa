package domain

// UserProfile describes the borrower for rate personalization. Age and
// LoanAmount are pointers so that an omitted value can be told apart from
// an explicit zero.
type UserProfile struct {
	CreditScore string   `json:"credit_score"`
	Age         *int     `json:"age,omitempty"`
	Gender      string   `json:"gender"`
	Employment  string   `json:"employment"`
	LoanAmount  *float64 `json:"loan_amount,omitempty"`
	Location    string   `json:"property_location"`
}

// DefaultUserProfile mirrors the values assumed when a profile field is
// left out.
func DefaultUserProfile() UserProfile {
	return UserProfile{
		CreditScore: "750+",
		Age:         Ptr(35),
		Gender:      "Male",
		Employment:  "Salaried-Other",
		LoanAmount:  Ptr(5_000_000.0),
		Location:    "Metro Tier-1",
	}
}

func Ptr[T any](v T) *T {
	return &v
}

type RateAdjustment struct {
	Factor      string  `json:"factor"`
	Value       float64 `json:"value"`
	Description string  `json:"description"`
}

type PersonalizedRate struct {
	BaseRate        float64          `json:"base_rate"`
	FinalRate       float64          `json:"final_rate"`
	TotalAdjustment float64          `json:"total_adjustment"`
	Adjustments     []RateAdjustment `json:"adjustments"`
}

// ImpactSummary returns the adjustments that moved the rate, skipping the
// neutral ones.
func (p PersonalizedRate) ImpactSummary() []RateAdjustment {
	var out []RateAdjustment
	for _, a := range p.Adjustments {
		if a.Value != 0 {
			out = append(out, a)
		}
	}
	return out
}
