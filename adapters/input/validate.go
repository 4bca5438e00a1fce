package input

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"support-cost/core/types"
	"support-cost/internal/errors"
)

// ValidationRule registers a custom rule on the underlying validator
type ValidationRule struct {
	Rule func(v *validator.Validate)
}

// Validator wraps go-playground/validator and turns its failures into
// input errors naming the offending fields
type Validator struct {
	validator *validator.Validate
}

// NewValidator creates a validator with the catalog rules registered
func NewValidator() *Validator {
	v := &Validator{validator: validator.New()}
	v.Register(NewCatalogValidationRules()...)
	return v
}

// Register applies rules to the validator
func (v *Validator) Register(rules ...ValidationRule) {
	for _, r := range rules {
		r.Rule(v.validator)
	}
}

// Struct validates s
func (v *Validator) Struct(s any) error {
	err := v.validator.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) {
		return errors.Wrap(errors.TypeInput, "validation failed", err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return errors.Input(strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	field := fe.Namespace()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %q", field, fe.Param(), fmt.Sprint(fe.Value()))
	case "pricing_model":
		return fmt.Sprintf("%s: unknown pricing model %q", field, fmt.Sprint(fe.Value()))
	case "percent":
		return fmt.Sprintf("%s must be between 0 and 100", field)
	case "nonnegative":
		return fmt.Sprintf("%s must not be negative", field)
	}
	if fe.Param() != "" {
		return fmt.Sprintf("%s failed %s=%s", field, fe.Tag(), fe.Param())
	}
	return fmt.Sprintf("%s failed %s", field, fe.Tag())
}

func registerFn(tag string, fn func(fl validator.FieldLevel) bool) func(v *validator.Validate) {
	return func(v *validator.Validate) {
		_ = v.RegisterValidation(tag, fn)
	}
}

func registerStruct(fn validator.StructLevelFunc, t any) func(v *validator.Validate) {
	return func(v *validator.Validate) {
		v.RegisterStructValidation(fn, t)
	}
}

// NewCatalogValidationRules returns the rules for vendor and scenario files
func NewCatalogValidationRules() []ValidationRule {
	return []ValidationRule{
		{Rule: registerFn("pricing_model", pricingModelValidator)},
		{Rule: registerStruct(channelMixValidator, types.ChannelMix{})},
		{Rule: registerStruct(tierValidator, types.Tier{})},
	}
}

func pricingModelValidator(fl validator.FieldLevel) bool {
	return types.PricingModel(fl.Field().String()).Valid()
}

func channelMixValidator(sl validator.StructLevel) {
	mix := sl.Current().Interface().(types.ChannelMix)
	shares := []struct {
		name  string
		value *decimal.Decimal
	}{
		{"Email", mix.Email},
		{"Chat", mix.Chat},
		{"Phone", mix.Phone},
	}
	for _, s := range shares {
		if s.value == nil {
			continue
		}
		if s.value.IsNegative() || s.value.GreaterThan(decimal.NewFromInt(100)) {
			sl.ReportError(s.value.String(), s.name, s.name, "percent", "")
		}
	}
}

func tierValidator(sl validator.StructLevel) {
	tier := sl.Current().Interface().(types.Tier)
	if tier.UpTo.IsNegative() {
		sl.ReportError(tier.UpTo.String(), "UpTo", "UpTo", "nonnegative", "")
	}
	if tier.Fee.IsNegative() {
		sl.ReportError(tier.Fee.String(), "Fee", "Fee", "nonnegative", "")
	}
}
