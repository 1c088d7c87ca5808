package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/careloop/advocates-api/pkg/client"
	"github.com/careloop/advocates-api/pkg/config"
)

const requestTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		color.Red("Error loading configuration: %v", err)
		os.Exit(1)
	}

	api := client.New(cfg.Client.BaseURL)
	cache := client.NewListCache(cfg.Client.FreshWindow, cfg.Client.EvictAfter)
	search := client.NewSearchController(api, cache, cfg.Client.PageSize, cfg.Client.Debounce)

	for {
		displayMenu()
		choice := readChoice()

		switch choice {
		case "1":
			browseDirectory(search)
		case "2":
			searchAdvocates(search)
		case "3":
			nextPage(search)
		case "4":
			previousPage(search)
		case "5":
			showAdvocate(api)
		case "6":
			seedDatabase(api)
		case "7":
			clearSearch(search)
		case "8":
			color.Green("Thank you for using the Advocate Directory!")
			return
		default:
			color.Red("Invalid choice. Please try again.")
		}
	}
}

func displayMenu() {
	color.Cyan("\n=== Advocate Directory ===")
	fmt.Println("1. Browse directory")
	fmt.Println("2. Search advocates")
	fmt.Println("3. Next page")
	fmt.Println("4. Previous page")
	fmt.Println("5. View advocate details")
	fmt.Println("6. Seed database")
	fmt.Println("7. Clear search")
	fmt.Println("8. Exit")
	fmt.Print("\nEnter your choice (1-8): ")
}

func browseDirectory(search *client.SearchController) {
	result, err := search.Refresh()
	if err != nil {
		reportError("Error loading directory", err)
		return
	}

	renderPage(search, result)
}

func searchAdvocates(search *client.SearchController) {
	fmt.Print("Enter search text (name, city or specialty): ")
	text := readString()

	search.SetQuery(text)
	result, err := search.Refresh()
	if err != nil {
		reportError("Error searching advocates", err)
		return
	}

	renderPage(search, result)
}

func nextPage(search *client.SearchController) {
	if !search.SetPage(search.Page() + 1) {
		color.Red("No further pages to show.")
		return
	}

	showCurrentPage(search)
}

func previousPage(search *client.SearchController) {
	if !search.SetPage(search.Page() - 1) {
		color.Red("Already on the first page.")
		return
	}

	showCurrentPage(search)
}

func showCurrentPage(search *client.SearchController) {
	result, err := search.Results()
	if err != nil {
		reportError("Error loading page", err)
		return
	}

	renderPage(search, result)
}

func showAdvocate(api *client.Client) {
	fmt.Print("Enter advocate id: ")
	raw := readString()

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		color.Red("Advocate id must be a positive integer.")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	advocate, err := api.Get(ctx, id)
	if err != nil {
		reportError("Error fetching advocate", err)
		return
	}

	renderAdvocates("Advocate Details", []client.Advocate{*advocate})
}

func seedDatabase(api *client.Client) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	result, err := api.Seed(ctx)
	if err != nil {
		reportError("Error seeding database", err)
		return
	}

	color.Green("%s (%d advocates)", result.Message, result.Count)
	renderAdvocates("Seeded Advocates", result.Advocates)
}

func clearSearch(search *client.SearchController) {
	search.Reset()
	color.Green("Search cleared.")
}

func renderPage(search *client.SearchController, result *client.ListResult) {
	if result == nil || len(result.Advocates) == 0 {
		color.Yellow("\nNo advocates found.")
		return
	}

	title := "Advocate Directory"
	if search.HasActiveSearch() {
		title = fmt.Sprintf("Advocates matching %q", search.Query())
	}

	renderAdvocates(title, result.Advocates)
	fmt.Printf("Page %d of %d (%d advocates total)\n", search.Page(), search.TotalPages(), result.Pagination.Total)
}

func renderAdvocates(title string, advocates []client.Advocate) {
	color.Yellow("\n%s", title)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Name", "City", "Degree", "Specialties", "Experience", "Phone"})

	for _, advocate := range advocates {
		table.Append([]string{
			strconv.FormatInt(advocate.ID, 10),
			advocate.FirstName + " " + advocate.LastName,
			advocate.City,
			advocate.Degree,
			strings.Join(advocate.Specialties, ", "),
			fmt.Sprintf("%d yrs", advocate.YearsOfExperience),
			strconv.FormatInt(advocate.PhoneNumber, 10),
		})
	}

	table.Render()
}

func reportError(prefix string, err error) {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		text := apiErr.Message
		if text == "" {
			text = apiErr.ErrorText
		}

		color.Red("%s: %s", prefix, text)
		for _, detail := range apiErr.Details {
			color.Red("  - %s", detail)
		}
		return
	}

	color.Red("%s: %v", prefix, err)
}

func readChoice() string {
	var input string
	fmt.Scanln(&input)
	return strings.TrimSpace(input)
}

func readString() string {
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Scan()
	return strings.TrimSpace(scanner.Text())
}
