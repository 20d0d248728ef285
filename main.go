package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/viper"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"billdesk/internal/api"
	"billdesk/internal/models"
	"billdesk/internal/repositories"
	"billdesk/internal/services"
	"billdesk/pkg/notify"
)

func main() {
	// --- Configuration ---
	// Set up Viper to read configuration from environment variables
	viper.SetDefault("API_BASE_URL", "http://localhost:8080/api/v1")
	viper.SetDefault("HTTP_TIMEOUT_MS", 10000)
	viper.SetDefault("SEARCH_DEBOUNCE_MS", 500)
	viper.SetDefault("DRAFT_DB_PATH", "billdesk.db")
	viper.SetDefault("CREATED_BY", "Admin")
	viper.AutomaticEnv() // Load environment variables

	// --- Initialize API Client ---
	client, err := api.NewClient(api.Config{
		BaseURL: viper.GetString("API_BASE_URL"),
		Timeout: time.Duration(viper.GetInt("HTTP_TIMEOUT_MS")) * time.Millisecond,
	})
	if err != nil {
		log.Fatalf("Failed to initialize API client: %v", err)
	}

	// --- Initialize Draft Store ---
	db, err := gorm.Open(sqlite.Open(viper.GetString("DRAFT_DB_PATH")), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to open draft database: %v", err)
	}
	draftStore, err := repositories.NewGORMDraftStore(db)
	if err != nil {
		log.Fatalf("Failed to initialize draft store: %v", err)
	}

	// --- Initialize Services ---
	notifier := notify.NewLogNotifier()
	cartService := services.NewCartService(draftStore, notifier)
	if err := cartService.Restore(); err != nil {
		log.Printf("Warning: failed to restore cart draft: %v", err)
	}

	debounce := time.Duration(viper.GetInt("SEARCH_DEBOUNCE_MS")) * time.Millisecond
	searchService := services.NewSearchService(client, notifier, debounce, printSearchResults)

	checkoutService, err := services.NewCheckoutService(client, cartService, notifier, viper.GetString("CREATED_BY"))
	if err != nil {
		log.Fatalf("Failed to initialize checkout service: %v", err)
	}

	authService := services.NewAuthService(client, client)
	catalogService := services.NewCatalogService(client, client)
	reportService := services.NewReportService(client, client)

	// --- Interactive prompt ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	done := make(chan struct{})
	go func() {
		defer close(done)
		runPrompt(cartService, searchService, checkoutService, authService, catalogService, reportService)
	}()

	select {
	case <-quit:
		log.Println("Shutting down...")
	case <-done:
	}
	// The draft store already holds the latest cart state; nothing to flush.
	log.Println("Bye")
}

func printSearchResults(results []models.ProductSnapshot) {
	for i, product := range results {
		fmt.Printf("  [%d] %s (id=%s, price=%.2f, stock=%d)\n",
			i+1, product.ProductName, product.ProductID, product.UnitPrice, product.AvailableQty)
	}
}

// runPrompt reads commands from stdin until EOF or the quit command.
func runPrompt(
	cart *services.CartService,
	search *services.SearchService,
	checkout *services.CheckoutService,
	auth *services.AuthService,
	catalog *services.CatalogService,
	reports *services.ReportService,
) {
	scanner := bufio.NewScanner(os.Stdin)
	fmt.Println("billdesk ready. Type 'help' for commands.")

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		command, args := fields[0], fields[1:]

		switch command {
		case "help":
			printHelp()
		case "login":
			if len(args) != 2 {
				fmt.Println("usage: login <email> <password>")
				continue
			}
			session, err := auth.Login(args[0], args[1])
			if err != nil {
				log.Printf("Login failed: %v", err)
				continue
			}
			fmt.Printf("Signed in as %s\n", session.Username)
		case "search":
			search.SetQuery(strings.Join(args, " "))
		case "pick":
			index, err := strconv.Atoi(strings.Join(args, ""))
			results := search.Results()
			if err != nil || index < 1 || index > len(results) {
				fmt.Println("usage: pick <result number>")
				continue
			}
			search.Select(results[index-1])
		case "add":
			if search.AddPendingTo(cart) {
				fmt.Println("Added to cart")
			}
		case "cart":
			printCart(cart)
		case "qty":
			if len(args) != 2 {
				fmt.Println("usage: qty <productId> <quantity>")
				continue
			}
			cart.SetQuantity(args[0], services.ParseQuantity(args[1]))
		case "rm":
			if len(args) != 1 {
				fmt.Println("usage: rm <productId>")
				continue
			}
			cart.RemoveProduct(args[0])
		case "checkout":
			if len(args) != 5 {
				fmt.Println("usage: checkout <name> <mobile> <email> <paymentMethod> <paymentStatus>")
				continue
			}
			details := models.CustomerDetails{
				CustomerName:   args[0],
				CustomerMobile: args[1],
				CustomerEmail:  args[2],
				PaymentMethod:  args[3],
			}
			outcome := checkout.Submit(details, args[4])
			if outcome == services.OutcomeSucceeded {
				fmt.Println("Billing recorded. Type 'done' to return to the billing list.")
			}
		case "done":
			checkout.Dismiss()
		case "billings":
			billings, err := reports.RecentBillings()
			if err != nil {
				log.Printf("Error: %v", err)
				continue
			}
			for _, billing := range billings {
				fmt.Printf("  %s  %-20s %8.2f  %s\n",
					billing.CreatedAt.Format("2006-01-02"), billing.CustomerName,
					billing.FinalPrice, billing.PaymentStatus)
			}
		case "products":
			products, err := catalog.GetProducts()
			if err != nil {
				log.Printf("Error: %v", err)
				continue
			}
			filtered := services.FilterProductsByName(products, strings.Join(args, " "))
			for _, product := range filtered {
				fmt.Printf("  %-10s %-25s %8.2f  stock=%d\n",
					product.ID, product.Name, product.Price, product.RemainingQty)
			}
		case "quit", "exit":
			return
		default:
			fmt.Printf("Unknown command %q. Type 'help' for commands.\n", command)
		}
	}
}

func printCart(cart *services.CartService) {
	items := cart.Items()
	if len(items) == 0 {
		fmt.Println("Cart is empty")
		return
	}
	for _, item := range items {
		fmt.Printf("  %-10s %-25s qty=%d (max %d)  %8.2f\n",
			item.ProductID, item.ProductName, item.Quantity, item.AvailableQty, item.LineTotal)
	}
	fmt.Printf("  Total items: %d  Final price: %.2f\n", cart.TotalItems(), cart.GrandTotal())
}

func printHelp() {
	fmt.Println(`Commands:
  login <email> <password>
  search <text>           search products (debounced)
  pick <n>                select a search result
  add                     add the selected product to the cart
  cart                    show the cart
  qty <productId> <n>     change a line quantity
  rm <productId>          remove a line
  checkout <name> <mobile> <email> <paymentMethod> <paymentStatus>
  done                    dismiss the success acknowledgment
  billings                list recent billings
  products [filter]       list catalog products
  quit`)
}
