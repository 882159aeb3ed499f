package validator

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// IsValidAddress accepts lower case and checksummed hex addresses
func IsValidAddress(address string) bool {
	if !common.IsHexAddress(address) {
		return false
	}
	checksum := common.HexToAddress(address).Hex()
	return address == checksum || strings.ToLower(checksum) == address
}

// IsPositiveDecimal reports whether s is a decimal number greater than zero
func IsPositiveDecimal(s string) bool {
	d, err := decimal.NewFromString(s)
	return err == nil && d.IsPositive()
}

// New returns a validator with the "eth_addr" and "positive_decimal" tags registered
func New() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("eth_addr", func(fl validator.FieldLevel) bool {
		return IsValidAddress(fl.Field().String())
	})
	_ = v.RegisterValidation("positive_decimal", func(fl validator.FieldLevel) bool {
		return IsPositiveDecimal(fl.Field().String())
	})
	return v
}

func NewCustomValidator(v *validator.Validate) echo.Validator {
	return &CustomValidator{v}
}

type CustomValidator struct {
	validator *validator.Validate
}

func (v *CustomValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}
