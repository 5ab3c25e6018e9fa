package cmd

import (
	"github.com/spf13/cobra"

	"loan-compare/domain"
)

type comparisonFlags struct {
	amount       float64
	years        int
	slab         float64
	regime       string
	property     string
	prepay       float64
	prepayMonth  int
	deposit      float64
	monthly      float64
	regularBank  string
	odBank       string
	regularRate  float64
	odRate       float64
	personalized bool
	profile      profileFlags
}

type profileFlags struct {
	creditScore string
	age         int
	gender      string
	employment  string
	location    string
}

func addComparisonFlags(cmd *cobra.Command, f *comparisonFlags) {
	fs := cmd.Flags()
	fs.Float64Var(&f.amount, "amount", 5_000_000, "loan amount in rupees")
	fs.IntVar(&f.years, "years", 20, "loan tenure in years")
	fs.Float64Var(&f.slab, "slab", 30, "income tax slab percent (0, 5, 20 or 30)")
	fs.StringVar(&f.regime, "regime", string(domain.TaxRegimeOld), "tax regime: old or new")
	fs.StringVar(&f.property, "property", string(domain.PropertySelfOccupied), "property type: self-occupied or let-out")
	fs.Float64Var(&f.prepay, "prepay", 0, "annual prepayment on the regular loan")
	fs.IntVar(&f.prepayMonth, "prepay-month", 12, "calendar month of the annual prepayment (1-12)")
	fs.Float64Var(&f.deposit, "deposit", 500_000, "initial surplus parked in the overdraft account")
	fs.Float64Var(&f.monthly, "monthly", 20_000, "surplus added to the overdraft account every month")
	fs.StringVar(&f.regularBank, "regular-bank", "HDFC Bank", "regular loan bank")
	fs.StringVar(&f.odBank, "od-bank", "HDFC Overdraft", "overdraft loan bank")
	fs.Float64Var(&f.regularRate, "regular-rate", 0, "manual regular loan rate (6-15); 0 uses the table")
	fs.Float64Var(&f.odRate, "od-rate", 0, "manual overdraft rate (6-15); 0 uses the table")
	fs.BoolVar(&f.personalized, "personalized", false, "adjust rates for the borrower profile")
	addProfileFlags(cmd, &f.profile)
}

func addProfileFlags(cmd *cobra.Command, f *profileFlags) {
	def := domain.DefaultUserProfile()
	fs := cmd.Flags()
	fs.StringVar(&f.creditScore, "credit-score", def.CreditScore, "credit score band: 750+, 700-749, 650-699 or below-650")
	fs.IntVar(&f.age, "age", *def.Age, "borrower age")
	fs.StringVar(&f.gender, "gender", def.Gender, "borrower gender")
	fs.StringVar(&f.employment, "employment", def.Employment, "Salaried-Govt, Salaried-MNC, Salaried-Other or Self-Employed")
	fs.StringVar(&f.location, "location", def.Location, "Metro Tier-1, Tier-2 or Tier-3")
}

func (f profileFlags) profile() domain.UserProfile {
	return domain.UserProfile{
		CreditScore: f.creditScore,
		Age:         domain.Ptr(f.age),
		Gender:      f.gender,
		Employment:  f.employment,
		Location:    f.location,
	}
}

func (f comparisonFlags) input() domain.ComparisonInput {
	in := domain.ComparisonInput{
		Amount:       f.amount,
		TenureMonths: f.years * 12,
		Tax: domain.TaxProfile{
			SlabPercent: f.slab,
			Regime:      domain.TaxRegime(f.regime),
			Property:    domain.PropertyType(f.property),
		},
		Prepayment: domain.PrepaymentPolicy{
			AnnualAmount: f.prepay,
			Month:        f.prepayMonth,
		},
		Overdraft: domain.OverdraftPolicy{
			InitialDeposit:  f.deposit,
			MonthlyAddition: f.monthly,
		},
		RegularBank:   domain.BankID(f.regularBank),
		OverdraftBank: domain.BankID(f.odBank),
	}
	if f.regularRate != 0 {
		rate := f.regularRate
		in.RegularRateOverride = &rate
	}
	if f.odRate != 0 {
		rate := f.odRate
		in.OverdraftRateOverride = &rate
	}
	if f.personalized {
		p := f.profile.profile()
		in.Profile = &p
	}
	return in
}
