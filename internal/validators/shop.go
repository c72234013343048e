// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"slices"
	"strings"

	"github.com/MKhiriev/shop-panel/models"
	"github.com/go-playground/validator/v10"
)

// Field names are the json names of the validated models.
const (
	FieldEmail       = "email"
	FieldPassword    = "password"
	FieldName        = "name"
	FieldPhone       = "phone"
	FieldDescription = "description"
	FieldPrice       = "price"
	FieldStock       = "stock"
	FieldUserID      = "userId"
	FieldProductID   = "productId"
	FieldQuantity    = "quantity"
	FieldTotalAmount = "totalAmount"
)

var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var fieldLabels = map[string]string{
	FieldEmail:       "Email",
	FieldPassword:    "Password",
	FieldName:        "Name",
	FieldPhone:       "Phone",
	FieldDescription: "Description",
	FieldPrice:       "Price",
	FieldStock:       "Stock",
	FieldUserID:      "User ID",
	FieldProductID:   "Product ID",
	FieldQuantity:    "Quantity",
	FieldTotalAmount: "Total amount",
}

// ShopValidator implements [Validator] for the login form and the three
// create payloads. Both value and pointer forms are accepted.
type ShopValidator struct {
	validate *validator.Validate
}

// NewShopValidator constructs a ShopValidator with the json field names and
// the "emailshape" rule registered.
func NewShopValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)
	// registration only fails on an empty tag or nil func
	_ = v.RegisterValidation("emailshape", func(fl validator.FieldLevel) bool {
		return emailShape.MatchString(fl.Field().String())
	})

	return &ShopValidator{validate: v}
}

// Validate runs the struct rules of obj. When fields are given only errors
// for those fields are reported; unknown names yield ErrUnknownField.
//
// Returns ErrUnsupportedType for anything but models.Credentials,
// models.UserPayload, models.ProductPayload and models.OrderPayload.
func (v *ShopValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch obj.(type) {
	case models.Credentials, *models.Credentials,
		models.UserPayload, *models.UserPayload,
		models.ProductPayload, *models.ProductPayload,
		models.OrderPayload, *models.OrderPayload:
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}

	for _, f := range fields {
		if _, ok := fieldLabels[f]; !ok {
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	err := v.validate.StructCtx(ctx, obj)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	result := &ValidationError{}
	for _, fe := range fieldErrs {
		if len(fields) > 0 && !slices.Contains(fields, fe.Field()) {
			continue
		}
		result.Errors = append(result.Errors, FieldError{Field: fe.Field(), Message: message(fe)})
	}
	if len(result.Errors) == 0 {
		return nil
	}

	return result
}

func message(fe validator.FieldError) string {
	label := fieldLabels[fe.Field()]
	if label == "" {
		label = fe.Field()
	}

	switch fe.Tag() {
	case "required":
		return label + " is required."
	case "emailshape":
		return "Enter a valid email."
	case "min":
		return label + " too short."
	case "gt":
		return fmt.Sprintf("%s must be greater than %s.", label, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s.", label, fe.Param())
	default:
		return label + " is invalid."
	}
}

func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "-" || name == "" {
		return strings.ToLower(fld.Name[:1]) + fld.Name[1:]
	}
	return name
}
