// Package console is the interactive menu of the back office. It parses what
// the operator types into typed values, calls the management facade and
// prints the outcome strings it gets back.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"github.com/franciscosanchezn/restaurant-backoffice/internal/auth"
	"github.com/franciscosanchezn/restaurant-backoffice/internal/management"
	"github.com/franciscosanchezn/restaurant-backoffice/internal/models"
)

const banner = "\n************************************"

// invalidInput is returned by the prompt helpers when a typed value does not parse
type invalidInput struct {
	msg string
}

func (e invalidInput) Error() string {
	return e.msg
}

// Console runs the menus over a line-oriented reader and writer
type Console struct {
	facade     *management.Facade
	in         *bufio.Scanner
	out        io.Writer
	session    auth.Session
	retryLimit int
}

// New creates a console. retryLimit bounds how often an unresolved
// ingredient or dish is asked for again; zero or less means no bound.
func New(facade *management.Facade, in io.Reader, out io.Writer, retryLimit int) *Console {
	return &Console{
		facade:     facade,
		in:         bufio.NewScanner(in),
		out:        out,
		retryLimit: retryLimit,
	}
}

// Run serves the main menu until the operator exits or input ends
func (c *Console) Run() error {
	for {
		c.println(banner)
		c.println("1. Register")
		c.println("2. Login")
		c.println("0. Exit")
		choice, err := c.promptInt("Enter your choice: ", "input. Please enter a number")
		if err != nil {
			if err := c.reportInvalid(err, ""); err != nil {
				return c.finish(err)
			}
			continue
		}

		switch choice {
		case 1:
			err = c.register()
		case 2:
			err = c.login()
		case 0:
			c.println("Exiting the system.")
			return nil
		default:
			c.println("Invalid choice. Please try again.")
		}
		if err := c.reportInvalid(err, "main"); err != nil {
			return c.finish(err)
		}
	}
}

// finish ends the main loop. Running out of input is a normal exit.
func (c *Console) finish(err error) error {
	if errors.Is(err, io.EOF) {
		c.println("Exiting the system.")
		return nil
	}
	return err
}

// reportInvalid prints input that did not parse and domain failures so the
// menu loop can go on. Anything else is returned to the caller.
func (c *Console) reportInvalid(err error, menu string) error {
	if err == nil {
		return nil
	}
	var bad invalidInput
	if errors.As(err, &bad) {
		if menu == "" {
			c.println("Invalid " + bad.msg + ".")
		} else {
			c.println("Invalid " + bad.msg + ". Returning to " + menu + " menu.")
		}
		return nil
	}
	var known *models.Error
	if errors.As(err, &known) {
		c.println(known.Error())
		return nil
	}
	return err
}

func (c *Console) register() error {
	id, err := c.promptInt("Enter User ID: ", "User ID")
	if err != nil {
		return err
	}
	username, err := c.prompt("Enter Username: ")
	if err != nil {
		return err
	}
	password, err := c.prompt("Enter Password: ")
	if err != nil {
		return err
	}
	role, err := c.promptRole("Enter Role (Admin/Chef/Customer): ")
	if err != nil {
		return err
	}
	c.show(c.facade.Register(id, username, password, role))
	return nil
}

func (c *Console) login() error {
	username, err := c.prompt("Enter Username: ")
	if err != nil {
		return err
	}
	password, err := c.prompt("Enter Password: ")
	if err != nil {
		return err
	}
	session, err := c.facade.Login(username, password)
	if err != nil {
		c.println(err.Error())
		return nil
	}
	c.session = session
	defer func() { c.session = auth.Session{} }()
	return c.userMenu()
}

func (c *Console) userMenu() error {
	for {
		c.println(banner)
		c.println("Restaurant Management System")
		c.println("1. Add")
		c.println("2. Modify")
		c.println("3. Delete")
		c.println("4. Display")
		c.println("5. Calculate Finance")
		c.println("6. Check out")
		c.println("7. Update Order Status")
		c.println("8. Low Stock Report")
		c.println("0. Logout")
		choice, err := c.promptInt("Enter your choice: ", "input. Please enter a number")
		if err != nil {
			if err := c.reportInvalid(err, ""); err != nil {
				return err
			}
			continue
		}

		switch choice {
		case 1:
			err = c.addMenu()
		case 2:
			err = c.modifyMenu()
		case 3:
			err = c.deleteMenu()
		case 4:
			err = c.displayMenu()
		case 5:
			c.show(c.facade.CalculateFinance(c.session))
		case 6:
			c.show(c.facade.Checkout(c.session))
		case 7:
			err = c.updateOrderStatus()
		case 8:
			c.show(c.facade.LowStockReport(c.session))
		case 0:
			c.println(c.facade.Logout(c.session))
			return nil
		default:
			c.println("Invalid choice. Please try again.")
		}
		if err := c.reportInvalid(err, "main"); err != nil {
			return err
		}
	}
}

func (c *Console) entityMenu(title, verb string) (int, error) {
	c.println("\n" + title + " Menu")
	for i, entity := range []string{"User", "Material", "Dish", "Customer", "Order", "Notification"} {
		c.println(fmt.Sprintf("%d. %s %s", i+1, verb, entity))
	}
	c.println("0. Back")
	return c.promptInt("Enter your choice: ", "choice")
}

// allowed reports a permission failure before any field is prompted for
func (c *Console) allowed(op auth.Operation) bool {
	if err := c.facade.Authorize(c.session, op); err != nil {
		c.println(err.Error())
		return false
	}
	return true
}

func (c *Console) updateOrderStatus() error {
	id, err := c.promptInt("Enter Order ID to update: ", "Order ID")
	if err != nil {
		return err
	}
	if err := c.facade.Ensure(c.session, auth.OpUpdateOrderStatus, id); err != nil {
		c.println(err.Error())
		return nil
	}
	text, err := c.prompt("Enter new Status (New/In Preparation/Completed): ")
	if err != nil {
		return err
	}
	status, err := models.ParseOrderStatus(text)
	if err != nil {
		c.println(err.Error())
		return nil
	}
	c.show(c.facade.UpdateOrderStatus(c.session, id, status))
	return nil
}

// show prints the outcome of a facade call
func (c *Console) show(msg string, err error) {
	if err != nil {
		var known *models.Error
		if !errors.As(err, &known) {
			log.WithError(err).Error("Operation failed")
		}
		c.println(err.Error())
		return
	}
	c.println(msg)
}

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}

func (c *Console) prompt(label string) (string, error) {
	fmt.Fprint(c.out, label)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", io.EOF
	}
	return strings.TrimSpace(c.in.Text()), nil
}

func (c *Console) promptInt(label, what string) (int, error) {
	text, err := c.prompt(label)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, invalidInput{msg: what}
	}
	return n, nil
}

func (c *Console) promptDecimal(label, what string) (decimal.Decimal, error) {
	text, err := c.prompt(label)
	if err != nil {
		return decimal.Zero, err
	}
	d, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Zero, invalidInput{msg: what}
	}
	return d, nil
}

func (c *Console) promptRole(label string) (models.Role, error) {
	text, err := c.prompt(label)
	if err != nil {
		return "", err
	}
	role, err := models.ParseRole(text)
	if err != nil {
		return "", invalidInput{msg: "Role"}
	}
	return role, nil
}

// slotPrompt asks for one reference ID per slot and reports misses
type slotPrompt struct {
	c     *Console
	label string
	what  string
}

func (p slotPrompt) NextID(slot int) (int, error) {
	return p.c.promptInt(fmt.Sprintf(p.label, slot+1), p.what)
}

func (p slotPrompt) Unresolved(slot int, err error) {
	p.c.println(err.Error())
}
