// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package render

import (
	"strconv"

	"github.com/MKhiriev/shop-panel/models"
)

const (
	missingRef   = "—"
	currency     = "₹"
	productBadge = "In Stock"
)

type sectionText struct {
	emptyIcon string
	empty     string
	failure   string
}

var sectionTexts = map[models.Section]sectionText{
	models.SectionUsers:    {emptyIcon: "👤", empty: "No users registered yet", failure: "Could not load users"},
	models.SectionProducts: {emptyIcon: "📦", empty: "No products in catalogue", failure: "Could not load products"},
	models.SectionOrders:   {emptyIcon: "🧾", empty: "No orders placed yet", failure: "Could not load orders"},
}

// EmptyFor returns the empty placeholder of section.
func EmptyFor(section models.Section) View {
	t := sectionTexts[section]
	return Empty(t.emptyIcon, t.empty)
}

// FailureFor returns the error placeholder of section.
func FailureFor(section models.Section) View {
	return Failure(sectionTexts[section].failure)
}

// Users renders the user collection.
func Users(users []models.User) View {
	return collection(models.SectionUsers, users, userCard)
}

// Products renders the product catalogue.
func Products(products []models.Product) View {
	return collection(models.SectionProducts, products, productCard)
}

// Orders renders the order collection.
func Orders(orders []models.Order) View {
	return collection(models.SectionOrders, orders, orderCard)
}

func collection[T any](section models.Section, items []T, card func(T) Card) View {
	if len(items) == 0 {
		return EmptyFor(section)
	}

	cards := make([]Card, 0, len(items))
	for _, item := range items {
		cards = append(cards, card(item))
	}
	return Populated(cards)
}

func userCard(u models.User) Card {
	meta := []Field{{Icon: "📧", Value: u.Email}}
	if u.Phone != "" {
		meta = append(meta, Field{Icon: "📞", Value: u.Phone})
	}

	return Card{
		ID:        u.ID,
		Label:     "#" + strconv.FormatInt(u.ID, 10),
		Title:     u.Name,
		Meta:      meta,
		Deletable: true,
	}
}

func productCard(p models.Product) Card {
	var meta []Field
	if p.Description != "" {
		meta = append(meta, Field{Value: p.Description, Plain: true})
	}
	meta = append(meta, Field{Icon: "💰", Value: currency + p.Price.String()})
	if p.Stock != nil {
		meta = append(meta, Field{Icon: "📊", Label: "Stock", Value: strconv.Itoa(*p.Stock)})
	}

	return Card{
		ID:    p.ID,
		Label: "#" + strconv.FormatInt(p.ID, 10),
		Title: p.Name,
		Meta:  meta,
		Badge: productBadge,
	}
}

func orderCard(o models.Order) Card {
	return Card{
		ID:    o.ID,
		Label: "Order #" + strconv.FormatInt(o.ID, 10),
		Title: currency + o.TotalAmount.String(),
		Meta: []Field{
			{Icon: "👤", Label: "User ID", Value: ref(o.UserRef())},
			{Icon: "📦", Label: "Product ID", Value: ref(o.ProductRef())},
			{Icon: "🔢", Label: "Qty", Value: strconv.Itoa(o.Quantity)},
		},
		Deletable: true,
	}
}

func ref(id int64, ok bool) string {
	if !ok {
		return missingRef
	}
	return strconv.FormatInt(id, 10)
}
