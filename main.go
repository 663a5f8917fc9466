package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/username/wecare/backend/src/catalog"
	"github.com/username/wecare/backend/src/config"
	"github.com/username/wecare/backend/src/database"
	"github.com/username/wecare/backend/src/engine"
	"github.com/username/wecare/backend/src/invoice"
	"github.com/username/wecare/backend/src/logger"
	"github.com/username/wecare/backend/src/services"
)

func main() {
	config.LoadConfig()
	logger.InitLogger(config.Cfg.LogLevel)
	logger.L.Info("WeCare wholesale ledger starting...")

	logger.L.Info("Initializing ledger database...", "path", config.Cfg.LedgerDBPath)
	database.InitDB(config.Cfg.LedgerDBPath)

	logger.L.Info("Loading catalog...", "path", config.Cfg.CatalogPath)
	store := catalog.NewStore(config.Cfg.CatalogPath)
	products := store.Load()

	recorder := invoice.NewRecorder(config.Cfg.InvoiceDir, time.Now)
	ledger := database.NewLedger(database.DB)
	reports := services.NewInventoryReportService(config.Cfg.ReportCacheTTL)
	eng := engine.New(products, store, recorder, ledger, reports)

	in := bufio.NewScanner(os.Stdin)

	fmt.Println("WeCare Wholesale.")
	fmt.Println("Welcome system admin")

	for {
		fmt.Println(strings.Repeat("-", 50))
		fmt.Println("Given below are options for carrying out operations")
		fmt.Println(strings.Repeat("-", 50))
		fmt.Println()
		fmt.Println("Press 1 to sell product to customer")
		fmt.Println("Press 2 to purchase from manufacturer")
		fmt.Println("Press 3 to exit from system")
		fmt.Println()

		option, ok := promptNumeric(in, "Enter option: ")
		if !ok {
			fmt.Println("Thank you for using the system")
			logger.L.Info("Input closed, session ended")
			return
		}

		switch option {
		case "1":
			runSale(in, eng)
		case "2":
			runRestock(in, eng)
		case "3":
			fmt.Println("Thank you for using the system")
			logger.L.Info("Session ended")
			return
		default:
			fmt.Println("Please enter option 1,2 or 3")
		}
	}
}

// runSale collects one sale transaction. All textual re-prompting happens
// here; the engine only ever sees type-validated arguments. Closed input
// ends collection early, which finalizes whatever lines were accepted.
func runSale(in *bufio.Scanner, eng *engine.Engine) {
	fmt.Println(strings.Repeat("-", 50))
	fmt.Println("Enter customer details for bill generation")
	fmt.Println(strings.Repeat("-", 50))

	customerName, ok := prompt(in, "Enter name of customer: ")
	if !ok {
		return
	}
	phoneNumber, ok := promptNumeric(in, "Enter phone number of customer: ")
	if !ok {
		return
	}

	tx := eng.BeginSale(customerName, phoneNumber)
	fmt.Print(eng.InventoryReport())

	for {
		productID, ok := promptInt(in, "Enter the ID of the product you want to sell: ")
		if !ok {
			break
		}
		quantity, ok := promptInt(in, "Enter the quantity of product: ")
		if !ok {
			break
		}

		line, err := eng.AddSaleLine(tx, productID, quantity)
		if err != nil {
			switch {
			case errors.Is(err, engine.ErrInvalidProductID):
				fmt.Println("Invalid ID")
			case errors.Is(err, engine.ErrInvalidQuantity):
				fmt.Println("Invalid Quantity")
			case errors.Is(err, engine.ErrInsufficientStock):
				fmt.Println("THE QUANTITY YOU ARE LOOKING FOR IS UNAVAILABLE")
			default:
				logger.L.Error("Unexpected error adding sale line", "error", err)
				fmt.Println("Please try again")
			}
			continue
		}

		fmt.Printf("You have received %d free items\n", line.Bonus)
		fmt.Print(eng.InventoryReport())

		more, ok := promptYesNo(in, "Are there more products to sell?(y/n): ")
		if !ok || !more {
			break
		}
	}

	doc, err := eng.FinalizeSale(tx)
	if err != nil {
		logger.L.Error("Sale finalized with persistence failure", "customer", customerName, "error", err)
	}
	fmt.Println()
	fmt.Print(doc.Body)
	fmt.Println("\nPROCESS COMPLETE")
	fmt.Println(strings.Repeat("-", 100))
}

// runRestock collects one restock transaction from a vendor.
func runRestock(in *bufio.Scanner, eng *engine.Engine) {
	fmt.Println(strings.Repeat("-", 50))
	fmt.Println("RESTOCKING IN PROGRESS")
	fmt.Println(strings.Repeat("-", 50))

	vendorName, ok := prompt(in, "Enter name of vendor: ")
	if !ok {
		return
	}

	tx := eng.BeginRestock(vendorName)
	fmt.Print(eng.InventoryReport())

	for {
		productID, ok := promptInt(in, "Enter ID of product you want to restock: ")
		if !ok {
			break
		}
		quantity, ok := promptInt(in, "Enter QUANTITY of product you want to restock: ")
		if !ok {
			break
		}

		if _, err := eng.AddRestockLine(tx, productID, quantity); err != nil {
			switch {
			case errors.Is(err, engine.ErrInvalidProductID):
				fmt.Println("Invalid ID")
			case errors.Is(err, engine.ErrInvalidQuantity):
				fmt.Println("Invalid Quantity")
			default:
				logger.L.Error("Unexpected error adding restock line", "error", err)
				fmt.Println("Please try again")
			}
			continue
		}

		fmt.Print(eng.InventoryReport())

		more, ok := promptYesNo(in, "Are there more products to purchase?(y/n): ")
		if !ok || !more {
			break
		}
	}

	doc, err := eng.FinalizeRestock(tx)
	if err != nil {
		logger.L.Error("Restock finalized with persistence failure", "vendor", vendorName, "error", err)
	}
	fmt.Println()
	fmt.Print(doc.Body)
	fmt.Println("\nRESTOCK COMPLETE")
	fmt.Println(strings.Repeat("-", 100))
}

// prompt reads one trimmed line. ok is false once stdin is closed; callers
// stop prompting instead of re-asking forever.
func prompt(in *bufio.Scanner, label string) (string, bool) {
	fmt.Print(label)
	if !in.Scan() {
		fmt.Println()
		return "", false
	}
	return strings.TrimSpace(in.Text()), true
}

func promptNumeric(in *bufio.Scanner, label string) (string, bool) {
	for {
		value, ok := prompt(in, label)
		if !ok {
			return "", false
		}
		if value != "" && isNumeric(value) {
			return value, true
		}
		fmt.Println("Input should be a number")
	}
}

func promptInt(in *bufio.Scanner, label string) (int, bool) {
	for {
		value, ok := prompt(in, label)
		if !ok {
			return 0, false
		}
		if n, err := strconv.Atoi(value); err == nil {
			return n, true
		}
		fmt.Println("Input should be a number")
	}
}

func promptYesNo(in *bufio.Scanner, label string) (bool, bool) {
	for {
		value, ok := prompt(in, label)
		if !ok {
			return false, false
		}
		switch strings.ToLower(value) {
		case "y":
			return true, true
		case "n":
			return false, true
		}
		fmt.Println("Invalid input")
	}
}

func isNumeric(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
