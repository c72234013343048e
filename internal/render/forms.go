// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package render

import (
	"github.com/MKhiriev/shop-panel/internal/validators"
	"github.com/MKhiriev/shop-panel/models"
)

// InputKind hints how a surface should present a form input.
type InputKind uint8

const (
	InputText InputKind = iota
	InputEmail
	InputSecret
	InputNumber
	InputDecimal
)

// FormField describes one input of a create form. Name is the key the
// value is submitted under.
type FormField struct {
	Name        string
	Label       string
	Placeholder string
	Kind        InputKind
	Required    bool
}

var formFields = map[models.Section][]FormField{
	models.SectionUsers: {
		{Name: validators.FieldName, Label: "Name", Placeholder: "Jane Doe", Required: true},
		{Name: validators.FieldEmail, Label: "Email", Placeholder: "jane@shop.com", Kind: InputEmail, Required: true},
		{Name: validators.FieldPassword, Label: "Password", Placeholder: "password", Kind: InputSecret, Required: true},
		{Name: validators.FieldPhone, Label: "Phone", Placeholder: "optional"},
	},
	models.SectionProducts: {
		{Name: validators.FieldName, Label: "Name", Placeholder: "Desk lamp", Required: true},
		{Name: validators.FieldDescription, Label: "Description", Placeholder: "optional"},
		{Name: validators.FieldPrice, Label: "Price", Placeholder: "0.00", Kind: InputDecimal},
		{Name: validators.FieldStock, Label: "Stock", Placeholder: "0", Kind: InputNumber},
	},
	models.SectionOrders: {
		{Name: validators.FieldUserID, Label: "User ID", Placeholder: "1", Kind: InputNumber, Required: true},
		{Name: validators.FieldProductID, Label: "Product ID", Placeholder: "1", Kind: InputNumber, Required: true},
		{Name: validators.FieldQuantity, Label: "Quantity", Placeholder: "1", Kind: InputNumber, Required: true},
		{Name: validators.FieldTotalAmount, Label: "Total", Placeholder: "0.00", Kind: InputDecimal},
	},
}

// FormFields returns the create form inputs of section in display order.
func FormFields(section models.Section) []FormField {
	return formFields[section]
}
