// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package dashboard

import (
	"context"
	"testing"

	"github.com/MKhiriev/shop-panel/internal/controller"
	"github.com/MKhiriev/shop-panel/internal/logger"
	"github.com/MKhiriev/shop-panel/internal/mock"
	"github.com/MKhiriev/shop-panel/internal/render"
	"github.com/MKhiriev/shop-panel/internal/validators"
	"github.com/MKhiriev/shop-panel/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testControllers struct {
	users    *mock.MockController
	products *mock.MockController
	orders   *mock.MockController
}

func newTestDashboard(t *testing.T, ctrl *gomock.Controller) (*Dashboard, testControllers, *mock.MockSurface) {
	t.Helper()

	mocks := testControllers{
		users:    mock.NewMockController(ctrl),
		products: mock.NewMockController(ctrl),
		orders:   mock.NewMockController(ctrl),
	}
	mocks.users.EXPECT().Deletable().Return(true).AnyTimes()
	mocks.products.EXPECT().Deletable().Return(false).AnyTimes()
	mocks.orders.EXPECT().Deletable().Return(true).AnyTimes()

	surface := mock.NewMockSurface(ctrl)
	d := NewWithControllers(surface, func(controller.Surface) controller.Controllers {
		return controller.Controllers{
			models.SectionUsers:    mocks.users,
			models.SectionProducts: mocks.products,
			models.SectionOrders:   mocks.orders,
		}
	}, logger.Nop())

	return d, mocks, surface
}

func TestStart_LoadsUsersEagerly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d, mocks, _ := newTestDashboard(t, ctrl)
	ctx := context.Background()

	mocks.users.EXPECT().Load(ctx).Times(1)

	d.Start(ctx)
	assert.Equal(t, models.SectionUsers, d.Active())
}

func TestActivate_ExclusiveAndAlwaysLoads(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d, mocks, _ := newTestDashboard(t, ctrl)
	ctx := context.Background()

	mocks.orders.EXPECT().Load(ctx).Times(2)
	mocks.products.EXPECT().Load(ctx).Times(1)

	require.NoError(t, d.Activate(ctx, models.SectionOrders))
	assert.Equal(t, models.SectionOrders, d.Active())

	require.NoError(t, d.Activate(ctx, models.SectionOrders), "re-activation reloads")

	require.NoError(t, d.Activate(ctx, models.SectionProducts))
	assert.Equal(t, models.SectionProducts, d.State().Active)
}

func TestActivate_UnknownSection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d, _, _ := newTestDashboard(t, ctrl)

	err := d.Activate(context.Background(), models.Section("blog"))
	require.ErrorIs(t, err, ErrUnknownSection)
	assert.Equal(t, models.SectionUsers, d.Active())
}

func TestPaint_OnlyActiveSectionReachesSurface(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d, _, surface := newTestDashboard(t, ctrl)
	usersView := render.Users([]models.User{{ID: 1}})

	surface.EXPECT().Paint(models.SectionUsers, usersView).Times(1)

	d.Paint(models.SectionUsers, usersView)
	d.Paint(models.SectionOrders, render.FailureFor(models.SectionOrders))

	state := d.State()
	assert.Equal(t, usersView, state.View(models.SectionUsers))
	assert.Equal(t, render.KindError, state.View(models.SectionOrders).Kind, "inactive views are still recorded")
	assert.Equal(t, render.KindLoading, state.View(models.SectionProducts).Kind)
}

func TestState_IsACopy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d, _, _ := newTestDashboard(t, ctrl)
	d.Paint(models.SectionOrders, render.Loading())

	state := d.State()
	state.Views[models.SectionOrders] = render.Failure("changed")

	assert.Equal(t, render.KindLoading, d.State().View(models.SectionOrders).Kind)
}

func TestSurfaceForwarding(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d, _, surface := newTestDashboard(t, ctrl)
	ctx := context.Background()

	surface.EXPECT().Notify(models.Success("Order placed!"))
	surface.EXPECT().Confirm(ctx, "Delete order #1?").Return(true)
	surface.EXPECT().CloseForm(models.SectionOrders)
	surface.EXPECT().ResetForm(models.SectionOrders)

	d.Notify(models.Success("Order placed!"))
	assert.True(t, d.Confirm(ctx, "Delete order #1?"))
	d.CloseForm(models.SectionOrders)
	d.ResetForm(models.SectionOrders)
}

func TestDispatch_Table(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d, mocks, _ := newTestDashboard(t, ctrl)
	ctx := context.Background()
	form := models.Form{"name": "Mug"}

	mocks.products.EXPECT().Create(ctx, form)
	mocks.users.EXPECT().Delete(ctx, int64(4))
	mocks.orders.EXPECT().Load(ctx).Times(2)

	require.NoError(t, d.Dispatch(ctx, Command{Action: ActionCreate, Section: models.SectionProducts, Form: form}))
	require.NoError(t, d.Dispatch(ctx, Command{Action: ActionDelete, Section: models.SectionUsers, ID: 4}))
	require.NoError(t, d.Dispatch(ctx, Command{Action: ActionLoad, Section: models.SectionOrders}))
	require.NoError(t, d.Dispatch(ctx, Command{Action: ActionActivate, Section: models.SectionOrders}))
	assert.Equal(t, models.SectionOrders, d.Active())
}

func TestDispatch_Unsupported(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d, mocks, _ := newTestDashboard(t, ctrl)
	mocks.products.EXPECT().Delete(gomock.Any(), gomock.Any()).Times(0)

	err := d.Dispatch(context.Background(), Command{Action: ActionDelete, Section: models.SectionProducts, ID: 1})
	assert.ErrorIs(t, err, ErrUnknownAction)

	err = d.Dispatch(context.Background(), Command{Action: "archive", Section: models.SectionUsers})
	assert.ErrorIs(t, err, ErrUnknownAction)

	err = d.Dispatch(context.Background(), Command{Action: ActionLoad, Section: "blog"})
	assert.ErrorIs(t, err, ErrUnknownSection)

	assert.False(t, d.Deletable(models.SectionProducts))
	assert.True(t, d.Deletable(models.SectionOrders))
}

func TestNew_WiresRealControllers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	shop := mock.NewMockShopAdapter(ctrl)
	surface := mock.NewMockSurface(ctrl)
	ctx := context.Background()

	d := New(shop, validators.NewShopValidator(), surface, logger.Nop())

	gomock.InOrder(
		surface.EXPECT().Paint(models.SectionUsers, render.Loading()),
		shop.EXPECT().ListUsers(ctx).Return(nil, nil),
		surface.EXPECT().Paint(models.SectionUsers, render.EmptyFor(models.SectionUsers)),
	)
	// orders load while users are active: recorded, never painted
	shop.EXPECT().ListOrders(ctx).Return(nil, nil)

	d.Start(ctx)
	require.NoError(t, d.Dispatch(ctx, Command{Action: ActionLoad, Section: models.SectionOrders}))

	assert.Equal(t, render.KindEmpty, d.State().View(models.SectionOrders).Kind)
}
