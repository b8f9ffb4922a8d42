// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/meal-planner/internal/domain/model"
	"github.com/stretchr/testify/mock"
)

type MockMealPlanner struct {
	mock.Mock
}

func (m *MockMealPlanner) LoadCatalog(recipePath, pricePath string) ([]*model.Recipe, error) {
	args := m.Called(recipePath, pricePath)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Recipe), args.Error(1)
}

func (m *MockMealPlanner) ReloadPrices(ctx context.Context, pricePath string) (int, error) {
	args := m.Called(ctx, pricePath)
	return args.Int(0), args.Error(1)
}

func (m *MockMealPlanner) ListAllRecipes() []*model.Recipe {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]*model.Recipe)
}

func (m *MockMealPlanner) FindRecipe(name string) (*model.Recipe, bool) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*model.Recipe), args.Bool(1)
}

func (m *MockMealPlanner) AssignRecipe(day model.Day, slot model.MealSlot, name string) error {
	args := m.Called(day, slot, name)
	return args.Error(0)
}

func (m *MockMealPlanner) UnassignRecipe(day model.Day, slot model.MealSlot, name string) error {
	args := m.Called(day, slot, name)
	return args.Error(0)
}

func (m *MockMealPlanner) Plan() []model.DayPlan {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]model.DayPlan)
}

func (m *MockMealPlanner) ClearPlan() {
	m.Called()
}

func (m *MockMealPlanner) GenerateShoppingList() model.ShoppingReport {
	args := m.Called()
	return args.Get(0).(model.ShoppingReport)
}

func (m *MockMealPlanner) Check() error {
	args := m.Called()
	return args.Error(0)
}

// NewMockMealPlanner creates a MockMealPlanner whose expectations are
// asserted when the test finishes.
func NewMockMealPlanner(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockMealPlanner {
	m := &MockMealPlanner{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
