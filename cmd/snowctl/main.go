package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	apiURL := "http://localhost:8080"
	if envURL := os.Getenv("API_URL"); envURL != "" {
		apiURL = envURL
	}

	if err := run(NewAPIClient(apiURL), os.Stdout, os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(client *APIClient, out io.Writer, command string, args []string) error {
	switch command {
	case "list":
		return listCmd(client, out, args)
	case "show":
		return showCmd(client, out, args)
	case "fav":
		return favoriteCmd(client, out, args, true)
	case "unfav":
		return favoriteCmd(client, out, args, false)
	case "favorites":
		return favoritesCmd(client, out)
	case "help", "-h", "--help":
		printUsage()
		return nil
	default:
		printUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}

func printUsage() {
	fmt.Println(`snowctl - command line client for the SnowSeeker API

USAGE:
  snowctl <command> [options]

COMMANDS:
  list       List resorts (--query=TEXT, --sort=default|name|country)
  show       Show one resort with its facilities
  fav        Mark a resort as favorite
  unfav      Remove a resort from the favorites
  favorites  List favorite resorts
  help       Show this help message

ENVIRONMENT:
  API_URL   Backend API URL (default: http://localhost:8080)

EXAMPLES:
  snowctl list --query=alpe --sort=name
  snowctl show zermatt
  snowctl fav zermatt`)
}

func listCmd(client *APIClient, out io.Writer, args []string) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	query := fs.String("query", "", "Case and accent insensitive name filter")
	sort := fs.String("sort", "", "Sort order: default, name or country")
	if err := fs.Parse(args); err != nil {
		return err
	}

	result, err := client.ListResorts(*query, *sort)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "\tID\tNAME\tCOUNTRY\tRUNS")
	for _, r := range result.Resorts {
		marker := ""
		if r.IsFavorite {
			marker = "*"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\n", marker, r.ID, r.Name, r.Country, r.Runs)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(out, "\n%d of %d resorts\n", len(result.Resorts), result.Total)
	return nil
}

func showCmd(client *APIClient, out io.Writer, args []string) error {
	id, err := singleID("show", args)
	if err != nil {
		return err
	}

	r, err := client.GetResort(id)
	if err != nil {
		return err
	}

	favorite := "no"
	if r.IsFavorite {
		favorite = "yes"
	}

	fmt.Fprintf(out, "%s (%s)\n", r.Name, r.Country)
	fmt.Fprintf(out, "  %s\n\n", r.Description)
	fmt.Fprintf(out, "  Size:        %s\n", r.SizeLabel)
	fmt.Fprintf(out, "  Price:       %s\n", r.PriceLabel)
	fmt.Fprintf(out, "  Elevation:   %dm\n", r.Elevation)
	fmt.Fprintf(out, "  Snow depth:  %dcm\n", r.SnowDepth)
	fmt.Fprintf(out, "  Runs:        %d\n", r.Runs)
	fmt.Fprintf(out, "  Favorite:    %s\n", favorite)

	if len(r.FacilityTypes) > 0 {
		fmt.Fprintln(out, "\n  Facilities:")
		for _, f := range r.FacilityTypes {
			fmt.Fprintf(out, "    %-14s %s\n", f.Name, f.Description)
		}
	}
	return nil
}

func favoriteCmd(client *APIClient, out io.Writer, args []string, favorite bool) error {
	name := "unfav"
	if favorite {
		name = "fav"
	}
	id, err := singleID(name, args)
	if err != nil {
		return err
	}

	status, err := client.SetFavorite(id, favorite)
	if err != nil {
		return err
	}

	if status.IsFavorite {
		fmt.Fprintf(out, "%s is a favorite\n", status.ResortID)
	} else {
		fmt.Fprintf(out, "%s is not a favorite\n", status.ResortID)
	}
	return nil
}

func favoritesCmd(client *APIClient, out io.Writer) error {
	result, err := client.ListFavorites()
	if err != nil {
		return err
	}

	if len(result.IDs) == 0 {
		fmt.Fprintln(out, "No favorites yet")
		return nil
	}

	known := make(map[string]bool, len(result.Resorts))
	for _, r := range result.Resorts {
		known[r.ID] = true
		fmt.Fprintf(out, "%s\t%s (%s)\n", r.ID, r.Name, r.Country)
	}
	for _, id := range result.IDs {
		if !known[id] {
			fmt.Fprintf(out, "%s\t(not in catalog)\n", id)
		}
	}
	return nil
}

func singleID(command string, args []string) (string, error) {
	if len(args) != 1 || strings.TrimSpace(args[0]) == "" {
		return "", fmt.Errorf("usage: snowctl %s <resort-id>", command)
	}
	return strings.TrimSpace(args[0]), nil
}
