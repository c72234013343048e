// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package controller

import (
	"strconv"
	"strings"

	"github.com/MKhiriev/shop-panel/internal/adapter"
	"github.com/MKhiriev/shop-panel/internal/logger"
	"github.com/MKhiriev/shop-panel/internal/render"
	"github.com/MKhiriev/shop-panel/internal/validators"
	"github.com/MKhiriev/shop-panel/models"
	"github.com/shopspring/decimal"
)

// Controllers indexes the controllers by section.
type Controllers map[models.Section]Controller

// NewControllers builds the users, products and orders controllers over one
// adapter and surface.
func NewControllers(shop adapter.ShopAdapter, validator validators.Validator, surface Surface, logger *logger.Logger) Controllers {
	return Controllers{
		models.SectionUsers:    NewUsers(shop, validator, surface, logger),
		models.SectionProducts: NewProducts(shop, validator, surface, logger),
		models.SectionOrders:   NewOrders(shop, validator, surface, logger),
	}
}

// NewUsers builds the users controller.
func NewUsers(shop adapter.ShopAdapter, validator validators.Validator, surface Surface, logger *logger.Logger) Controller {
	return New(Resource[models.User, models.UserPayload]{
		Section: models.SectionUsers,
		List:    shop.ListUsers,
		Add:     shop.CreateUser,
		Remove:  shop.DeleteUser,
		Parse:   ParseUserForm,
		Render:  render.Users,
		Messages: Messages{
			LoadFailed:   "Could not load users",
			Created:      "User registered!",
			CreateFailed: "Failed to register user",
			Deleted:      "User deleted successfully",
			DeleteFailed: "Failed to delete user",
		},
	}, validator, surface, logger)
}

// NewProducts builds the products controller. Products cannot be deleted.
func NewProducts(shop adapter.ShopAdapter, validator validators.Validator, surface Surface, logger *logger.Logger) Controller {
	return New(Resource[models.Product, models.ProductPayload]{
		Section: models.SectionProducts,
		List:    shop.ListProducts,
		Add:     shop.CreateProduct,
		Parse:   ParseProductForm,
		Render:  render.Products,
		Messages: Messages{
			LoadFailed:   "Could not load products",
			Created:      "Product added!",
			CreateFailed: "Failed to add product",
		},
	}, validator, surface, logger)
}

// NewOrders builds the orders controller.
func NewOrders(shop adapter.ShopAdapter, validator validators.Validator, surface Surface, logger *logger.Logger) Controller {
	return New(Resource[models.Order, models.OrderPayload]{
		Section: models.SectionOrders,
		List:    shop.ListOrders,
		Add:     shop.CreateOrder,
		Remove:  shop.DeleteOrder,
		Parse:   ParseOrderForm,
		Render:  render.Orders,
		Messages: Messages{
			LoadFailed:   "Could not load orders",
			Created:      "Order placed!",
			CreateFailed: "Failed to place order",
			Deleted:      "Order deleted",
			DeleteFailed: "Failed to delete order",
		},
	}, validator, surface, logger)
}

// ParseUserForm reads the user form. The password is kept verbatim.
func ParseUserForm(form models.Form) models.UserPayload {
	return models.UserPayload{
		Name:     strings.TrimSpace(form[validators.FieldName]),
		Email:    strings.TrimSpace(form[validators.FieldEmail]),
		Password: form[validators.FieldPassword],
		Phone:    strings.TrimSpace(form[validators.FieldPhone]),
	}
}

// ParseProductForm reads the product form. An unparsable stock counts as 0.
func ParseProductForm(form models.Form) models.ProductPayload {
	return models.ProductPayload{
		Name:        strings.TrimSpace(form[validators.FieldName]),
		Description: strings.TrimSpace(form[validators.FieldDescription]),
		Price:       parseMoney(form[validators.FieldPrice]),
		Stock:       parseCount(form[validators.FieldStock]),
	}
}

// ParseOrderForm reads the order form. Unparsable ids and quantities count
// as 0 and are then rejected by validation.
func ParseOrderForm(form models.Form) models.OrderPayload {
	return models.OrderPayload{
		UserID:      int64(parseCount(form[validators.FieldUserID])),
		ProductID:   int64(parseCount(form[validators.FieldProductID])),
		Quantity:    parseCount(form[validators.FieldQuantity]),
		TotalAmount: parseMoney(form[validators.FieldTotalAmount]),
	}
}

func parseCount(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return n
}

func parseMoney(raw string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero
	}
	return d
}
