package calculations

import (
	"fmt"
	"math"

	"loan-compare/domain"
)

const (
	MinPersonalizedRate = 7.0
	MaxPersonalizedRate = 15.0
)

// PersonalizeRate adds the six profile adjustments to a bank's base rate
// and clamps the result to [MinPersonalizedRate, MaxPersonalizedRate].
// Omitted profile fields take the values of domain.DefaultUserProfile; an
// explicit zero age or amount is priced as given.
func PersonalizeRate(baseRate float64, profile domain.UserProfile) domain.PersonalizedRate {
	p := withDefaults(profile)

	adjustments := []domain.RateAdjustment{
		creditScoreAdjustment(p.CreditScore),
		ageAdjustment(*p.Age),
		genderAdjustment(p.Gender),
		employmentAdjustment(p.Employment),
		loanAmountAdjustment(*p.LoanAmount),
		locationAdjustment(p.Location),
	}

	var total float64
	for _, a := range adjustments {
		total += a.Value
	}

	final := math.Max(MinPersonalizedRate, math.Min(MaxPersonalizedRate, baseRate+total))

	return domain.PersonalizedRate{
		BaseRate:        baseRate,
		FinalRate:       round2(final),
		TotalAdjustment: round2(total),
		Adjustments:     adjustments,
	}
}

func withDefaults(p domain.UserProfile) domain.UserProfile {
	d := domain.DefaultUserProfile()
	if p.CreditScore == "" {
		p.CreditScore = d.CreditScore
	}
	if p.Age == nil {
		p.Age = d.Age
	}
	if p.Gender == "" {
		p.Gender = d.Gender
	}
	if p.Employment == "" {
		p.Employment = d.Employment
	}
	if p.LoanAmount == nil {
		p.LoanAmount = d.LoanAmount
	}
	if p.Location == "" {
		p.Location = d.Location
	}
	return p
}

func creditScoreAdjustment(score string) domain.RateAdjustment {
	var v float64
	switch score {
	case "750+":
		v = -0.25
	case "700-749":
		v = 0
	case "650-699":
		v = 0.35
	default:
		v = 0.75
	}

	desc := fmt.Sprintf("Lower credit score (%s)", score)
	switch {
	case v < 0:
		desc = fmt.Sprintf("Excellent credit score (%s)", score)
	case v == 0:
		desc = fmt.Sprintf("Good credit score (%s)", score)
	}
	return domain.RateAdjustment{Factor: "credit_score", Value: v, Description: desc}
}

func ageAdjustment(age int) domain.RateAdjustment {
	var v float64
	switch {
	case age >= 25 && age <= 35:
		v = -0.10
	case age >= 36 && age <= 45:
		v = 0
	case age >= 46 && age <= 55:
		v = 0.10
	default:
		v = 0.20
	}

	desc := fmt.Sprintf("Senior applicant (Age %d)", age)
	switch {
	case v < 0:
		desc = fmt.Sprintf("Young applicant (Age %d)", age)
	case v == 0:
		desc = fmt.Sprintf("Mid-age applicant (Age %d)", age)
	}
	return domain.RateAdjustment{Factor: "age", Value: v, Description: desc}
}

func genderAdjustment(gender string) domain.RateAdjustment {
	if gender == "Female" {
		return domain.RateAdjustment{Factor: "gender", Value: -0.05, Description: "Women borrower concession"}
	}
	return domain.RateAdjustment{Factor: "gender", Value: 0, Description: "Gender: " + gender}
}

func employmentAdjustment(employment string) domain.RateAdjustment {
	var v float64
	switch employment {
	case "Salaried-Govt":
		v = -0.15
	case "Salaried-MNC":
		v = -0.10
	case "Salaried-Other":
		v = 0
	default:
		v = 0.25
	}
	return domain.RateAdjustment{Factor: "employment", Value: v, Description: "Employment: " + employment}
}

func loanAmountAdjustment(amount float64) domain.RateAdjustment {
	lakhs := amount / 100_000
	switch {
	case amount >= 7_500_000:
		return domain.RateAdjustment{Factor: "loan_amount", Value: -0.10,
			Description: fmt.Sprintf("High loan amount (₹%.0fL+)", lakhs)}
	case amount <= 2_000_000:
		return domain.RateAdjustment{Factor: "loan_amount", Value: 0.15,
			Description: fmt.Sprintf("Lower loan amount (₹%.0fL)", lakhs)}
	default:
		return domain.RateAdjustment{Factor: "loan_amount", Value: 0,
			Description: fmt.Sprintf("Standard loan amount (₹%.0fL)", lakhs)}
	}
}

func locationAdjustment(location string) domain.RateAdjustment {
	var v float64
	switch location {
	case "Metro Tier-1":
		v = 0
	case "Tier-2":
		v = 0.10
	default:
		v = 0.15
	}
	return domain.RateAdjustment{Factor: "location", Value: v, Description: "Property Location: " + location}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
