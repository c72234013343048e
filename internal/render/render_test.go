// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package render

import (
	"strings"
	"testing"

	"github.com/MKhiriev/shop-panel/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64 { return &v }
func intPtr(v int) *int       { return &v }

func TestCollections_EmptyIffAbsentOrZero(t *testing.T) {
	t.Run("users", func(t *testing.T) {
		assert.Equal(t, KindEmpty, Users(nil).Kind)
		assert.Equal(t, KindEmpty, Users([]models.User{}).Kind)
		assert.Equal(t, KindPopulated, Users([]models.User{{ID: 1}}).Kind)
	})

	t.Run("products", func(t *testing.T) {
		assert.Equal(t, KindEmpty, Products(nil).Kind)
		assert.Equal(t, KindEmpty, Products([]models.Product{}).Kind)
		assert.Equal(t, KindPopulated, Products([]models.Product{{ID: 1}}).Kind)
	})

	t.Run("orders", func(t *testing.T) {
		assert.Equal(t, KindEmpty, Orders(nil).Kind)
		assert.Equal(t, KindEmpty, Orders([]models.Order{}).Kind)
		assert.Equal(t, KindPopulated, Orders([]models.Order{{ID: 1}}).Kind)
	})
}

func TestEmptyAndFailureTexts(t *testing.T) {
	tests := []struct {
		section     models.Section
		wantIcon    string
		wantEmpty   string
		wantFailure string
	}{
		{models.SectionUsers, "👤", "No users registered yet", "Could not load users"},
		{models.SectionProducts, "📦", "No products in catalogue", "Could not load products"},
		{models.SectionOrders, "🧾", "No orders placed yet", "Could not load orders"},
	}

	for _, tt := range tests {
		t.Run(string(tt.section), func(t *testing.T) {
			empty := EmptyFor(tt.section)
			assert.Equal(t, tt.wantIcon, empty.Icon)
			assert.Equal(t, tt.wantEmpty, empty.Message)

			failure := FailureFor(tt.section)
			assert.Equal(t, KindError, failure.Kind)
			assert.Equal(t, "⚠️", failure.Icon)
			assert.Equal(t, tt.wantFailure, failure.Message)
		})
	}
}

func TestMarkup_EmptyProductsHasNoSkeleton(t *testing.T) {
	html := Markup(models.SectionProducts, Products([]models.Product{}))

	assert.Equal(t, `<div class="empty"><span class="empty-icon">📦</span>No products in catalogue</div>`, html)
	assert.NotContains(t, html, "skeleton-card")
}

func TestMarkup_Loading(t *testing.T) {
	html := Markup(models.SectionUsers, Loading())

	assert.Equal(t, SkeletonCount, strings.Count(html, `<div class="skeleton-card"></div>`))
	assert.False(t, Loading().Settled())
	assert.True(t, Failure("x").Settled())
}

func TestMarkup_EscapesUserFields(t *testing.T) {
	users := []models.User{{
		ID:    1,
		Name:  `<script>alert("x")</script>`,
		Email: "a&b@x.com",
		Phone: "<b>1</b>",
	}}

	html := Markup(models.SectionUsers, Users(users))

	assert.NotContains(t, html, "<script>")
	assert.NotContains(t, html, "</script>")
	assert.NotContains(t, html, "<b>")
	assert.Contains(t, html, "&lt;script&gt;alert(&quot;x&quot;)&lt;/script&gt;")
	assert.Contains(t, html, "a&amp;b@x.com")
}

func TestEscape(t *testing.T) {
	in := `<script>&"</script>`
	out := Escape(in)

	assert.Equal(t, "&lt;script&gt;&amp;&quot;&lt;/script&gt;", out)
	assert.NotContains(t, out, "<")
	assert.NotContains(t, out, ">")
	assert.Equal(t, "plain 'text'", Escape("plain 'text'"))
}

func TestUsers_Card(t *testing.T) {
	v := Users([]models.User{
		{ID: 3, Name: "Ann", Email: "ann@shop.io", Phone: "555"},
		{ID: 4, Name: "Bob", Email: "bob@shop.io"},
	})

	require.Len(t, v.Cards, 2)
	assert.Equal(t, "#3", v.Cards[0].Label)
	assert.True(t, v.Cards[0].Deletable)
	assert.Len(t, v.Cards[0].Meta, 2)
	assert.Len(t, v.Cards[1].Meta, 1, "phone line is omitted when absent")

	html := Markup(models.SectionUsers, v)
	assert.Contains(t, html, `data-id="3"`)
	assert.Contains(t, html, `data-prompt="Delete user #3?"`)
	assert.Contains(t, html, "📞 <strong>555</strong>")
}

func TestProducts_Card(t *testing.T) {
	v := Products([]models.Product{
		{ID: 9, Name: "Mug", Description: "Big", Price: decimal.RequireFromString("149.5"), Stock: intPtr(0)},
		{ID: 10, Name: "Pen", Price: decimal.NewFromInt(20)},
	})

	require.Len(t, v.Cards, 2)
	mug, pen := v.Cards[0], v.Cards[1]

	assert.False(t, mug.Deletable)
	assert.Equal(t, "In Stock", mug.Badge)
	assert.Equal(t, "In Stock", pen.Badge, "badge does not depend on stock")
	require.Len(t, mug.Meta, 3)
	assert.Equal(t, "₹149.5", mug.Meta[1].Value)
	assert.Equal(t, "📊 Stock: 0", mug.Meta[2].Text())
	assert.Len(t, pen.Meta, 1)

	html := Markup(models.SectionProducts, v)
	assert.NotContains(t, html, "btn-danger")
	assert.Contains(t, html, "<span>Big</span>")
	assert.Contains(t, html, "💰 <strong>₹149.5</strong>")
}

func TestOrders_Card_NestedProductReference(t *testing.T) {
	orders := []models.Order{{
		ID:          5,
		UserID:      int64Ptr(2),
		Product:     &models.EntityRef{ID: int64Ptr(7)},
		Quantity:    3,
		TotalAmount: decimal.NewFromInt(300),
	}}

	html := Markup(models.SectionOrders, Orders(orders))

	assert.Contains(t, html, "Product ID: <strong>7</strong>")
	assert.Contains(t, html, "User ID: <strong>2</strong>")
	assert.Contains(t, html, "Qty: <strong>3</strong>")
	assert.Contains(t, html, `<span class="card-id">Order #5</span>`)
	assert.Contains(t, html, `<div class="card-title">₹300</div>`)
}

func TestOrders_Card_MissingReferenceFallsBackToDash(t *testing.T) {
	v := Orders([]models.Order{{ID: 1, User: &models.EntityRef{}}})

	require.Len(t, v.Cards, 1)
	assert.Equal(t, "—", v.Cards[0].Meta[0].Value)
	assert.Equal(t, "—", v.Cards[0].Meta[1].Value)
}

func TestDeletePrompt(t *testing.T) {
	assert.Equal(t, "Delete user #4?", DeletePrompt(models.SectionUsers, 4))
	assert.Equal(t, "Delete order #8?", DeletePrompt(models.SectionOrders, 8))
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "loading", KindLoading.String())
	assert.Equal(t, "populated", KindPopulated.String())
	assert.Equal(t, "unknown", Kind(0).String())
}

func TestFormFields(t *testing.T) {
	names := func(section models.Section) []string {
		var out []string
		for _, f := range FormFields(section) {
			out = append(out, f.Name)
		}
		return out
	}

	assert.Equal(t, []string{"name", "email", "password", "phone"}, names(models.SectionUsers))
	assert.Equal(t, []string{"name", "description", "price", "stock"}, names(models.SectionProducts))
	assert.Equal(t, []string{"userId", "productId", "quantity", "totalAmount"}, names(models.SectionOrders))
	assert.Empty(t, FormFields(models.Section("widgets")))
}
