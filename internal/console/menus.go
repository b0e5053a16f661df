package console

import (
	"github.com/franciscosanchezn/restaurant-backoffice/internal/auth"
	"github.com/franciscosanchezn/restaurant-backoffice/internal/models"
	"github.com/franciscosanchezn/restaurant-backoffice/internal/services"
)

func (c *Console) addMenu() error {
	choice, err := c.entityMenu("Add", "Add")
	if err != nil {
		return err
	}
	switch choice {
	case 1:
		err = c.addUser()
	case 2:
		err = c.addMaterial()
	case 3:
		err = c.addDish()
	case 4:
		err = c.addCustomer()
	case 5:
		err = c.addOrder()
	case 6:
		err = c.addNotification()
	case 0:
		return nil
	default:
		c.println("Invalid choice. Returning to main menu.")
		return nil
	}
	return c.reportInvalid(err, "add")
}

func (c *Console) modifyMenu() error {
	choice, err := c.entityMenu("Modify", "Modify")
	if err != nil {
		return err
	}
	switch choice {
	case 1:
		err = c.modifyUser()
	case 2:
		err = c.modifyMaterial()
	case 3:
		err = c.modifyDish()
	case 4:
		err = c.modifyCustomer()
	case 5:
		err = c.modifyOrder()
	case 6:
		err = c.modifyNotification()
	case 0:
		return nil
	default:
		c.println("Invalid choice. Returning to main menu.")
		return nil
	}
	return c.reportInvalid(err, "modify")
}

func (c *Console) deleteMenu() error {
	choice, err := c.entityMenu("Delete", "Delete")
	if err != nil {
		return err
	}
	deleters := map[int]struct {
		label  string
		what   string
		delete func(auth.Session, int) (string, error)
	}{
		1: {"Enter User ID to delete: ", "User ID", c.facade.DeleteUser},
		2: {"Enter Material ID to delete: ", "Material ID", c.facade.DeleteMaterial},
		3: {"Enter Dish ID to delete: ", "Dish ID", c.facade.DeleteDish},
		4: {"Enter Customer ID to delete: ", "Customer ID", c.facade.DeleteCustomer},
		5: {"Enter Order ID to delete: ", "Order ID", c.facade.DeleteOrder},
		6: {"Enter Notification ID to delete: ", "Notification ID", c.facade.DeleteNotification},
	}
	if choice == 0 {
		return nil
	}
	d, ok := deleters[choice]
	if !ok {
		c.println("Invalid choice. Returning to main menu.")
		return nil
	}
	id, err := c.promptInt(d.label, d.what)
	if err != nil {
		return c.reportInvalid(err, "delete")
	}
	c.show(d.delete(c.session, id))
	return nil
}

func (c *Console) displayMenu() error {
	choice, err := c.entityMenu("Display", "Display")
	if err != nil {
		return err
	}
	switch choice {
	case 1:
		c.show(c.facade.DisplayUsers(c.session))
	case 2:
		c.show(c.facade.DisplayMaterials(c.session))
	case 3:
		c.show(c.facade.DisplayDishes(c.session))
	case 4:
		c.show(c.facade.DisplayCustomers(c.session))
	case 5:
		c.show(c.facade.DisplayOrders(c.session))
	case 6:
		c.show(c.facade.DisplayNotifications(c.session))
	case 0:
	default:
		c.println("Invalid choice. Returning to main menu.")
	}
	return nil
}

type userFields struct {
	username string
	password string
	role     models.Role
}

func (c *Console) readUser() (userFields, error) {
	var u userFields
	var err error
	if u.username, err = c.prompt("Enter Username: "); err != nil {
		return u, err
	}
	if u.password, err = c.prompt("Enter Password: "); err != nil {
		return u, err
	}
	u.role, err = c.promptRole("Enter Role (Admin/Chef/Customer): ")
	return u, err
}

func (c *Console) addUser() error {
	if !c.allowed(auth.OpAddUser) {
		return nil
	}
	id, err := c.promptInt("Enter User ID: ", "User ID")
	if err != nil {
		return err
	}
	u, err := c.readUser()
	if err != nil {
		return err
	}
	c.show(c.facade.AddUser(c.session, id, u.username, u.password, u.role))
	return nil
}

func (c *Console) modifyUser() error {
	id, err := c.promptInt("Enter User ID to modify: ", "User ID")
	if err != nil {
		return err
	}
	if err := c.facade.Ensure(c.session, auth.OpModifyUser, id); err != nil {
		c.println(err.Error())
		return nil
	}
	u, err := c.readUser()
	if err != nil {
		return err
	}
	c.show(c.facade.ModifyUser(c.session, id, u.username, u.password, u.role))
	return nil
}

func (c *Console) readMaterial(id int) (models.Material, error) {
	m := models.Material{ID: id}
	var err error
	if m.Name, err = c.prompt("Enter Material Name: "); err != nil {
		return m, err
	}
	if m.Price, err = c.promptDecimal("Enter Material Price: ", "Material Price"); err != nil {
		return m, err
	}
	if m.Quantity, err = c.promptInt("Enter Material Quantity: ", "Material Quantity"); err != nil {
		return m, err
	}
	m.WarningThreshold, err = c.promptInt("Enter Warning Threshold: ", "Warning Threshold")
	return m, err
}

func (c *Console) addMaterial() error {
	if !c.allowed(auth.OpAddMaterial) {
		return nil
	}
	id, err := c.promptInt("Enter Material ID: ", "Material ID")
	if err != nil {
		return err
	}
	m, err := c.readMaterial(id)
	if err != nil {
		return err
	}
	c.show(c.facade.AddMaterial(c.session, m))
	return nil
}

func (c *Console) modifyMaterial() error {
	id, err := c.promptInt("Enter Material ID to modify: ", "Material ID")
	if err != nil {
		return err
	}
	if err := c.facade.Ensure(c.session, auth.OpModifyMaterial, id); err != nil {
		c.println(err.Error())
		return nil
	}
	m, err := c.readMaterial(id)
	if err != nil {
		return err
	}
	c.show(c.facade.ModifyMaterial(c.session, m))
	return nil
}

// readDish prompts for the dish fields and resolves its ingredients one
// material ID at a time
func (c *Console) readDish(id int) (models.Dish, error) {
	d := models.Dish{ID: id}
	var err error
	if d.Name, err = c.prompt("Enter Dish Name: "); err != nil {
		return d, err
	}
	if d.Price, err = c.promptDecimal("Enter Dish Price: ", "Dish Price"); err != nil {
		return d, err
	}
	if d.Category, err = c.prompt("Enter Dish Category: "); err != nil {
		return d, err
	}
	count, err := c.promptInt("Enter number of ingredients: ", "number of ingredients")
	if err != nil {
		return d, err
	}
	src := slotPrompt{c: c, label: "Enter Material ID for ingredient %d: ", what: "Material ID"}
	d.Ingredients, err = services.ResolveSlots(count, src, func(materialID int) (models.Material, error) {
		return c.facade.ResolveMaterial(c.session, materialID)
	}, c.retryLimit)
	return d, err
}

func (c *Console) addDish() error {
	if !c.allowed(auth.OpAddDish) {
		return nil
	}
	id, err := c.promptInt("Enter Dish ID: ", "Dish ID")
	if err != nil {
		return err
	}
	d, err := c.readDish(id)
	if err != nil {
		return err
	}
	if len(d.Ingredients) == 0 {
		c.println("No ingredients resolved. Dish not added.")
		return nil
	}
	c.show(c.facade.AddDish(c.session, d))
	return nil
}

func (c *Console) modifyDish() error {
	id, err := c.promptInt("Enter Dish ID to modify: ", "Dish ID")
	if err != nil {
		return err
	}
	if err := c.facade.Ensure(c.session, auth.OpModifyDish, id); err != nil {
		c.println(err.Error())
		return nil
	}
	d, err := c.readDish(id)
	if err != nil {
		return err
	}
	c.show(c.facade.ModifyDish(c.session, d))
	return nil
}

func (c *Console) readCustomer(id int) (models.Customer, error) {
	cu := models.Customer{ID: id}
	var err error
	if cu.Name, err = c.prompt("Enter Customer Name: "); err != nil {
		return cu, err
	}
	if cu.Contact, err = c.prompt("Enter Customer Contact: "); err != nil {
		return cu, err
	}
	if cu.Points, err = c.promptInt("Enter Customer Points: ", "Customer Points"); err != nil {
		return cu, err
	}
	cu.DiscountInfo, err = c.prompt("Enter Discount Info: ")
	return cu, err
}

func (c *Console) addCustomer() error {
	if !c.allowed(auth.OpAddCustomer) {
		return nil
	}
	id, err := c.promptInt("Enter Customer ID: ", "Customer ID")
	if err != nil {
		return err
	}
	cu, err := c.readCustomer(id)
	if err != nil {
		return err
	}
	c.show(c.facade.AddCustomer(c.session, cu))
	return nil
}

func (c *Console) modifyCustomer() error {
	id, err := c.promptInt("Enter Customer ID to modify: ", "Customer ID")
	if err != nil {
		return err
	}
	if err := c.facade.Ensure(c.session, auth.OpModifyCustomer, id); err != nil {
		c.println(err.Error())
		return nil
	}
	cu, err := c.readCustomer(id)
	if err != nil {
		return err
	}
	c.show(c.facade.ModifyCustomer(c.session, cu))
	return nil
}

type orderFields struct {
	customerID    int
	dishes        []models.Dish
	paymentMethod string
}

func (c *Console) readOrder() (orderFields, error) {
	var o orderFields
	var err error
	if o.customerID, err = c.promptInt("Enter Customer ID: ", "Customer ID"); err != nil {
		return o, err
	}
	count, err := c.promptInt("Enter number of dishes: ", "number of dishes")
	if err != nil {
		return o, err
	}
	src := slotPrompt{c: c, label: "Enter Dish ID for dish %d: ", what: "Dish ID"}
	o.dishes, err = services.ResolveSlots(count, src, func(dishID int) (models.Dish, error) {
		return c.facade.ResolveDish(c.session, dishID)
	}, c.retryLimit)
	if err != nil {
		return o, err
	}
	o.paymentMethod, err = c.prompt("Enter Payment Method: ")
	return o, err
}

func (c *Console) addOrder() error {
	if !c.allowed(auth.OpAddOrder) {
		return nil
	}
	id, err := c.promptInt("Enter Order ID: ", "Order ID")
	if err != nil {
		return err
	}
	o, err := c.readOrder()
	if err != nil {
		return err
	}
	if len(o.dishes) == 0 {
		c.println("No dishes resolved. Order not added.")
		return nil
	}
	c.show(c.facade.AddOrder(c.session, id, o.customerID, o.dishes, o.paymentMethod))
	return nil
}

func (c *Console) modifyOrder() error {
	id, err := c.promptInt("Enter Order ID to modify: ", "Order ID")
	if err != nil {
		return err
	}
	if err := c.facade.Ensure(c.session, auth.OpModifyOrder, id); err != nil {
		c.println(err.Error())
		return nil
	}
	o, err := c.readOrder()
	if err != nil {
		return err
	}
	c.show(c.facade.ModifyOrder(c.session, id, o.customerID, o.dishes, o.paymentMethod))
	return nil
}

func (c *Console) readNotification(id int) (models.Notification, error) {
	n := models.Notification{ID: id}
	var err error
	if n.Type, err = c.prompt("Enter Notification Type (Stock Warning/Order Notification): "); err != nil {
		return n, err
	}
	if n.Content, err = c.prompt("Enter Notification Content: "); err != nil {
		return n, err
	}
	n.Time, err = c.prompt("Enter Notification Time: ")
	return n, err
}

func (c *Console) addNotification() error {
	if !c.allowed(auth.OpAddNotification) {
		return nil
	}
	id, err := c.promptInt("Enter Notification ID: ", "Notification ID")
	if err != nil {
		return err
	}
	n, err := c.readNotification(id)
	if err != nil {
		return err
	}
	c.show(c.facade.AddNotification(c.session, n))
	return nil
}

func (c *Console) modifyNotification() error {
	id, err := c.promptInt("Enter Notification ID to modify: ", "Notification ID")
	if err != nil {
		return err
	}
	if err := c.facade.Ensure(c.session, auth.OpModifyNotification, id); err != nil {
		c.println(err.Error())
		return nil
	}
	n, err := c.readNotification(id)
	if err != nil {
		return err
	}
	c.show(c.facade.ModifyNotification(c.session, n))
	return nil
}
