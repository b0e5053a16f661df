package services

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/franciscosanchezn/restaurant-backoffice/internal/models"
	"github.com/franciscosanchezn/restaurant-backoffice/internal/store"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type fixture struct {
	materials     MaterialService
	dishes        DishService
	users         UserService
	customers     CustomerService
	orders        OrderService
	notifications NotificationService
}

func setupServices() fixture {
	materials := NewMaterialService(store.NewCollection[models.Material](4))
	dishes := NewDishService(store.NewCollection[models.Dish](4), materials)
	return fixture{
		materials:     materials,
		dishes:        dishes,
		users:         NewUserService(store.NewCollection[models.User](4), bcrypt.MinCost),
		customers:     NewCustomerService(store.NewCollection[models.Customer](4)),
		orders:        NewOrderService(store.NewCollection[models.Order](4), dishes),
		notifications: NewNotificationService(store.NewCollection[models.Notification](4)),
	}
}

func TestMaterialService_CRUD(t *testing.T) {
	f := setupServices()
	flour := models.Material{ID: 1, Name: "Flour", Price: dec("2.0"), Quantity: 100, WarningThreshold: 10}
	salt := models.Material{ID: 2, Name: "Salt", Price: dec("0.5"), Quantity: 3, WarningThreshold: 5}

	require.NoError(t, f.materials.CreateMaterial(flour))
	require.NoError(t, f.materials.CreateMaterial(salt))

	got, err := f.materials.GetMaterialByID(1)
	require.NoError(t, err)
	assert.Equal(t, flour, got)

	err = f.materials.CreateMaterial(models.Material{ID: 1, Name: "Other"})
	assert.ErrorIs(t, err, models.ErrDuplicateKey)
	assert.EqualError(t, err, "Material ID already exists. Returning to main menu.")
	assert.Equal(t, []models.Material{flour, salt}, f.materials.GetAllMaterials())

	updated := models.Material{ID: 1, Name: "Rye Flour", Price: dec("3"), Quantity: 50, WarningThreshold: 5}
	require.NoError(t, f.materials.UpdateMaterial(updated))
	assert.Equal(t, []models.Material{updated, salt}, f.materials.GetAllMaterials())

	err = f.materials.UpdateMaterial(models.Material{ID: 9})
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.EqualError(t, err, "Material ID not found. Returning to main menu.")

	assert.Equal(t, []models.Material{salt}, f.materials.GetLowStockMaterials())

	err = f.materials.DeleteMaterial(9)
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.Len(t, f.materials.GetAllMaterials(), 2)

	require.NoError(t, f.materials.DeleteMaterial(1))
	assert.Equal(t, []models.Material{salt}, f.materials.GetAllMaterials())
}

func TestCustomerAndNotificationServices(t *testing.T) {
	f := setupServices()

	c := models.Customer{ID: 3, Name: "Bob", Contact: "555", Points: 10, DiscountInfo: "none"}
	require.NoError(t, f.customers.CreateCustomer(c))
	assert.ErrorIs(t, f.customers.CreateCustomer(c), models.ErrDuplicateKey)
	got, err := f.customers.GetCustomerByID(3)
	require.NoError(t, err)
	assert.Equal(t, c, got)
	c.Points = 20
	require.NoError(t, f.customers.UpdateCustomer(c))
	assert.Equal(t, []models.Customer{c}, f.customers.GetAllCustomers())
	require.NoError(t, f.customers.DeleteCustomer(3))
	assert.ErrorIs(t, f.customers.DeleteCustomer(3), models.ErrNotFound)

	n := models.Notification{ID: 1, Type: models.NotificationStockWarning, Content: "Salt low", Time: "9am"}
	require.NoError(t, f.notifications.CreateNotification(n))
	assert.ErrorIs(t, f.notifications.CreateNotification(n), models.ErrDuplicateKey)
	_, err = f.notifications.GetNotificationByID(2)
	assert.EqualError(t, err, "Notification ID not found. Returning to main menu.")
	n.Content = "Salt restocked"
	require.NoError(t, f.notifications.UpdateNotification(n))
	assert.Equal(t, []models.Notification{n}, f.notifications.GetAllNotifications())
	require.NoError(t, f.notifications.DeleteNotification(1))
	assert.Empty(t, f.notifications.GetAllNotifications())
}

func TestUserService_Credentials(t *testing.T) {
	f := setupServices()
	require.NoError(t, f.users.CreateUser(models.User{ID: 1, Username: "alice", Role: models.RoleAdmin}, "pw"))
	require.NoError(t, f.users.CreateUser(models.User{ID: 2, Username: "alice", Role: models.RoleChef}, "pw"))
	require.NoError(t, f.users.CreateUser(models.User{ID: 3, Username: "carol", Role: models.RoleChef}, "secret"))

	t.Run("first match in insertion order wins", func(t *testing.T) {
		user, err := f.users.GetUserByCredentials("alice", "pw")
		require.NoError(t, err)
		assert.Equal(t, 1, user.ID)
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		_, err := f.users.GetUserByCredentials("carol", "pw")
		assert.ErrorIs(t, err, models.ErrInvalidCredentials)
	})

	t.Run("password is stored hashed", func(t *testing.T) {
		user, err := f.users.GetUserByID(3)
		require.NoError(t, err)
		assert.NotEqual(t, "secret", user.PasswordHash)
		assert.True(t, user.CheckPassword("secret"))
	})

	t.Run("duplicate id keeps the original", func(t *testing.T) {
		err := f.users.CreateUser(models.User{ID: 3, Username: "mallory", Role: models.RoleAdmin}, "x")
		assert.ErrorIs(t, err, models.ErrDuplicateKey)
		user, _ := f.users.GetUserByID(3)
		assert.Equal(t, "carol", user.Username)
	})

	t.Run("update replaces every field", func(t *testing.T) {
		require.NoError(t, f.users.UpdateUser(models.User{ID: 3, Username: "caroline", Role: models.RoleCustomer}, "new"))
		user, err := f.users.GetUserByCredentials("caroline", "new")
		require.NoError(t, err)
		assert.Equal(t, models.RoleCustomer, user.Role)
		assert.ErrorIs(t, f.users.UpdateUser(models.User{ID: 42}, "x"), models.ErrNotFound)
	})
}

func TestDishService_UniqueByIDOrName(t *testing.T) {
	testCases := []struct {
		name    string
		dish    models.Dish
		wantErr bool
	}{
		{name: "new id and name", dish: models.Dish{ID: 2, Name: "Soup"}, wantErr: false},
		{name: "duplicate id", dish: models.Dish{ID: 1, Name: "Soup"}, wantErr: true},
		{name: "duplicate name", dish: models.Dish{ID: 2, Name: "Bread"}, wantErr: true},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			f := setupServices()
			require.NoError(t, f.dishes.CreateDish(models.Dish{ID: 1, Name: "Bread", Price: dec("5")}))

			err := f.dishes.CreateDish(tt.dish)

			if tt.wantErr {
				assert.ErrorIs(t, err, models.ErrDuplicateKey)
				assert.EqualError(t, err, "Dish ID or Name already exists. Returning to main menu.")
				assert.Len(t, f.dishes.GetAllDishes(), 1)
			} else {
				assert.NoError(t, err)
				assert.Len(t, f.dishes.GetAllDishes(), 2)
			}
		})
	}
}

func TestDishService_IngredientsAreSnapshots(t *testing.T) {
	f := setupServices()
	flour := models.Material{ID: 1, Name: "Flour", Price: dec("2"), Quantity: 100, WarningThreshold: 10}
	require.NoError(t, f.materials.CreateMaterial(flour))

	ingredient, err := f.dishes.ResolveMaterial(1)
	require.NoError(t, err)
	require.NoError(t, f.dishes.CreateDish(models.Dish{ID: 1, Name: "Bread", Price: dec("5"), Ingredients: []models.Material{ingredient}}))

	require.NoError(t, f.materials.UpdateMaterial(models.Material{ID: 1, Name: "Flour", Price: dec("9"), Quantity: 1}))

	dish, err := f.dishes.GetDishByID(1)
	require.NoError(t, err)
	assert.True(t, dish.Ingredients[0].Price.Equal(dec("2")))

	_, err = f.dishes.ResolveMaterial(7)
	assert.ErrorIs(t, err, models.ErrUnresolvedReference)
	assert.EqualError(t, err, "Material not found")
}

func TestOrderService_TotalFeeIsCopied(t *testing.T) {
	f := setupServices()
	require.NoError(t, f.dishes.CreateDish(models.Dish{ID: 1, Name: "Pasta", Price: dec("8.0")}))
	require.NoError(t, f.dishes.CreateDish(models.Dish{ID: 2, Name: "Steak", Price: dec("12.25")}))

	pasta, err := f.orders.ResolveDish(1)
	require.NoError(t, err)
	steak, err := f.orders.ResolveDish(2)
	require.NoError(t, err)

	order, err := f.orders.CreateOrder(10, 99, []models.Dish{pasta, steak}, "Card")
	require.NoError(t, err)
	assert.True(t, order.TotalFee.Equal(dec("20.25")), "got %s", order.TotalFee)
	assert.Equal(t, models.StatusNew, order.Status)

	require.NoError(t, f.dishes.UpdateDish(models.Dish{ID: 1, Name: "Pasta", Price: dec("30")}))

	stored, err := f.orders.GetOrderByID(10)
	require.NoError(t, err)
	assert.True(t, stored.TotalFee.Equal(dec("20.25")), "got %s", stored.TotalFee)
	assert.True(t, stored.Dishes[0].Price.Equal(dec("8.0")))

	_, err = f.orders.CreateOrder(10, 1, nil, "Cash")
	assert.ErrorIs(t, err, models.ErrDuplicateKey)

	_, err = f.orders.ResolveDish(5)
	assert.EqualError(t, err, "Dish not found")
}

func TestOrderService_UpdateAndStatus(t *testing.T) {
	f := setupServices()
	require.NoError(t, f.dishes.CreateDish(models.Dish{ID: 1, Name: "Pasta", Price: dec("8")}))
	pasta, _ := f.orders.ResolveDish(1)
	_, err := f.orders.CreateOrder(1, 5, []models.Dish{pasta}, "Cash")
	require.NoError(t, err)

	require.NoError(t, f.orders.UpdateStatus(1, models.StatusCompleted))
	require.NoError(t, f.orders.UpdateStatus(1, models.StatusNew))
	assert.ErrorIs(t, f.orders.UpdateStatus(2, models.StatusNew), models.ErrNotFound)

	require.NoError(t, f.orders.UpdateStatus(1, models.StatusInPreparation))
	updated, err := f.orders.UpdateOrder(1, 6, []models.Dish{pasta, pasta}, "Card")
	require.NoError(t, err)
	assert.Equal(t, 6, updated.CustomerID)
	assert.Equal(t, "Card", updated.PaymentMethod)
	assert.Equal(t, models.StatusInPreparation, updated.Status)
	assert.True(t, updated.TotalFee.Equal(dec("16")))

	_, err = f.orders.UpdateOrder(3, 6, nil, "Card")
	assert.ErrorIs(t, err, models.ErrNotFound)

	require.NoError(t, f.orders.DeleteOrder(1))
	assert.Empty(t, f.orders.GetAllOrders())
}

func TestListsReturnCopies(t *testing.T) {
	f := setupServices()
	flour := models.Material{ID: 1, Name: "Flour", Price: dec("2"), Quantity: 10}
	require.NoError(t, f.dishes.CreateDish(models.Dish{ID: 1, Name: "Bread", Price: dec("5"), Ingredients: []models.Material{flour}}))
	bread, err := f.orders.ResolveDish(1)
	require.NoError(t, err)
	_, err = f.orders.CreateOrder(1, 2, []models.Dish{bread}, "Cash")
	require.NoError(t, err)

	dishes := f.dishes.GetAllDishes()
	require.Len(t, dishes, 1)
	dishes[0].Ingredients[0].Name = "Sawdust"

	orders := f.orders.GetAllOrders()
	require.Len(t, orders, 1)
	orders[0].Dishes[0].Price = dec("999")
	orders[0].Dishes[0].Ingredients[0].Name = "Sawdust"

	storedDish, err := f.dishes.GetDishByID(1)
	require.NoError(t, err)
	assert.Equal(t, "Flour", storedDish.Ingredients[0].Name)

	storedOrder, err := f.orders.GetOrderByID(1)
	require.NoError(t, err)
	assert.True(t, storedOrder.Dishes[0].Price.Equal(dec("5")), "got %s", storedOrder.Dishes[0].Price)
	assert.Equal(t, "Flour", storedOrder.Dishes[0].Ingredients[0].Name)
	assert.True(t, storedOrder.TotalFee.Equal(dec("5")))
}

func TestCalculateFinance(t *testing.T) {
	testCases := []struct {
		name      string
		orders    []models.Order
		materials []models.Material
		income    string
		cost      string
		profit    string
	}{
		{
			name:   "mixed orders and materials",
			orders: []models.Order{{TotalFee: dec("10.0")}, {TotalFee: dec("15.5")}},
			materials: []models.Material{
				{Price: dec("2.0"), Quantity: 3},
				{Price: dec("1.5"), Quantity: 10},
			},
			income: "25.5", cost: "21.0", profit: "4.5",
		},
		{
			name:   "empty inputs are zero",
			income: "0", cost: "0", profit: "0",
		},
		{
			name:      "loss",
			orders:    []models.Order{{TotalFee: dec("5")}},
			materials: []models.Material{{Price: dec("2"), Quantity: 100}},
			income:    "5", cost: "200", profit: "-195",
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			f := CalculateFinance(tt.orders, tt.materials)

			assert.True(t, f.TotalIncome.Equal(dec(tt.income)), "income %s", f.TotalIncome)
			assert.True(t, f.TotalCost.Equal(dec(tt.cost)), "cost %s", f.TotalCost)
			assert.True(t, f.GrossProfit.Equal(dec(tt.profit)), "profit %s", f.GrossProfit)
		})
	}
}

func TestFinanceService_Last(t *testing.T) {
	s := NewFinanceService()
	_, ok := s.Last()
	assert.False(t, ok)

	computed := s.Recompute([]models.Order{{TotalFee: dec("3")}}, nil)

	last, ok := s.Last()
	assert.True(t, ok)
	assert.Equal(t, computed, last)
}

// scriptedSource hands out ids in order and records unresolved slots
type scriptedSource struct {
	ids        []int
	failAt     int
	unresolved []int
	calls      int
}

func (s *scriptedSource) NextID(slot int) (int, error) {
	if s.calls == s.failAt {
		return 0, errors.New("input closed")
	}
	if s.calls >= len(s.ids) {
		return 0, errors.New("script exhausted")
	}
	id := s.ids[s.calls]
	s.calls++
	return id, nil
}

func (s *scriptedSource) Unresolved(slot int, err error) {
	s.unresolved = append(s.unresolved, slot)
}

func TestResolveSlots(t *testing.T) {
	known := map[int]string{1: "a", 2: "b"}
	resolve := func(id int) (string, error) {
		if v, ok := known[id]; ok {
			return v, nil
		}
		return "", models.NewError(models.CodeUnresolvedReference, "not found")
	}

	t.Run("retries an unresolved slot", func(t *testing.T) {
		src := &scriptedSource{ids: []int{1, 9, 2}, failAt: -1}

		items, err := ResolveSlots(2, src, resolve, 3)

		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, items)
		assert.Equal(t, []int{1}, src.unresolved)
	})

	t.Run("skips a slot after the attempt limit", func(t *testing.T) {
		src := &scriptedSource{ids: []int{9, 9, 2}, failAt: -1}

		items, err := ResolveSlots(2, src, resolve, 2)

		require.NoError(t, err)
		assert.Equal(t, []string{"b"}, items)
		assert.Equal(t, []int{0, 0}, src.unresolved)
	})

	t.Run("source error aborts with no items", func(t *testing.T) {
		src := &scriptedSource{ids: []int{1, 2}, failAt: 1}

		items, err := ResolveSlots(2, src, resolve, 3)

		assert.Error(t, err)
		assert.Nil(t, items)
	})

	t.Run("other resolve errors abort", func(t *testing.T) {
		src := &scriptedSource{ids: []int{1}, failAt: -1}
		denied := func(id int) (string, error) { return "", models.ErrPermissionDenied }

		_, err := ResolveSlots(1, src, denied, 3)

		assert.ErrorIs(t, err, models.ErrPermissionDenied)
		assert.Empty(t, src.unresolved)
	})
}
