package http

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"loan-advisor/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// report fields by their JSON name
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// normalizer is implemented by requests that clean their fields before
// validation.
type normalizer interface {
	normalize()
}

type recommendationRequest struct {
	LoanAmount float64 `json:"loanAmount" validate:"gt=0"`
	LoanType   string  `json:"loanType" validate:"required"`
}

func (r *recommendationRequest) normalize() {
	r.LoanType = strings.TrimSpace(r.LoanType)
}

func (r recommendationRequest) toQuery() domain.LoanQuery {
	return domain.LoanQuery{
		LoanAmount: r.LoanAmount,
		LoanType:   r.LoanType,
	}
}

// Optional fields are pointers so that an explicit zero is kept apart from
// an omitted value.
type eligibilityRequest struct {
	LoanAmount        float64  `json:"loanAmount" validate:"gt=0"`
	LoanType          string   `json:"loanType" validate:"required"`
	CreditScore       *float64 `json:"creditScore" validate:"omitempty,gte=300,lte=900"`
	AnnualIncome      *float64 `json:"annualIncome" validate:"omitempty,gte=0"`
	YearsInOccupation *float64 `json:"yearsInOccupation" validate:"omitempty,gte=0"`
}

func (r *eligibilityRequest) normalize() {
	r.LoanType = strings.TrimSpace(r.LoanType)
}

func (r eligibilityRequest) toQuery() domain.EligibilityQuery {
	return domain.EligibilityQuery{
		LoanAmount:        r.LoanAmount,
		LoanType:          r.LoanType,
		CreditScore:       r.CreditScore,
		AnnualIncome:      r.AnnualIncome,
		YearsInOccupation: r.YearsInOccupation,
	}
}

// validationMessage turns the first failed constraint into a client message.
func validationMessage(err error) string {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return "invalid request"
	}

	fe := errs[0]
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
