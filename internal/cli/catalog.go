package cli

import (
	"context"
	"flag"
	"fmt"
	"text/tabwriter"

	"github.com/grocey/grocey-cli/internal/api"
	"github.com/grocey/grocey-cli/internal/model"
)

func (a *App) runProducts(ctx context.Context, args []string) error {
	action := "ls"
	if len(args) > 0 {
		action = args[0]
		args = args[1:]
	}

	switch action {
	case "ls":
		products, page, err := a.api.Products.List(ctx)
		if err != nil {
			return err
		}
		a.table("ID\tNAME\tCATEGORY", func(w *tabwriter.Writer) {
			for _, p := range products {
				fmt.Fprintf(w, "%d\t%s\t%s\n", p.ID, p.Name, categoryName(p.Category))
			}
		})
		total := len(products)
		if page != nil {
			total = page.Total
		}
		fmt.Fprintf(a.out, "%d product(s)%s\n", len(products), countSuffix(total, page != nil))
		return nil

	case "add":
		fs := flag.NewFlagSet("grocey products add", flag.ContinueOnError)
		fs.SetOutput(a.out)
		name := fs.String("name", "", "product name")
		category := fs.Int64("category", 0, "category id (optional)")
		icon := fs.String("icon", "", "product icon")
		if err := fs.Parse(args); err != nil {
			return err
		}
		if *name == "" {
			return fmt.Errorf("products add requires -name")
		}

		req := api.ProductRequest{Name: *name}
		if *category > 0 {
			req.Category = &model.Ref{ID: *category}
		}
		if *icon != "" {
			req.Metadata = &model.Metadata{Icon: *icon}
		}
		p, err := a.api.Products.Create(ctx, req)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Created product %d: %s\n", p.ID, p.Name)
		return nil

	case "update":
		fs := flag.NewFlagSet("grocey products update", flag.ContinueOnError)
		fs.SetOutput(a.out)
		name := fs.String("name", "", "product name")
		category := fs.Int64("category", 0, "category id")
		if err := fs.Parse(args); err != nil {
			return err
		}
		if fs.NArg() < 1 {
			return fmt.Errorf("usage: grocey products update [flags] <id>")
		}
		id, err := parseID(fs.Arg(0), "product")
		if err != nil {
			return err
		}
		set := suppliedFlags(fs)
		if len(set) == 0 {
			return fmt.Errorf("products update requires at least one of -name or -category")
		}

		// PUT replaces the product; merge flags over the current state.
		current, err := a.api.Products.Get(ctx, id)
		if err != nil {
			return err
		}
		req := api.ProductRequest{Name: current.Name}
		if current.Category != nil {
			req.Category = &model.Ref{ID: current.Category.ID}
		}
		if !current.Metadata.IsZero() {
			req.Metadata = &current.Metadata
		}
		if set["name"] {
			req.Name = *name
		}
		if set["category"] {
			if *category <= 0 {
				return fmt.Errorf("invalid category id %d", *category)
			}
			req.Category = &model.Ref{ID: *category}
		}

		p, err := a.api.Products.Update(ctx, id, req)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Updated product %d: %s\n", p.ID, p.Name)
		return nil

	case "rm":
		if len(args) < 1 {
			return fmt.Errorf("usage: grocey products rm <id>")
		}
		id, err := parseID(args[0], "product")
		if err != nil {
			return err
		}
		if err := a.api.Products.Delete(ctx, id); err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Deleted product %d\n", id)
		return nil

	default:
		return fmt.Errorf("unknown products action %q (ls|add|update|rm)", action)
	}
}

func (a *App) runCategories(ctx context.Context, args []string) error {
	action := "ls"
	if len(args) > 0 {
		action = args[0]
		args = args[1:]
	}

	switch action {
	case "ls":
		categories, page, err := a.api.Categories.List(ctx)
		if err != nil {
			return err
		}
		a.table("ID\tNAME\tCOLOR", func(w *tabwriter.Writer) {
			for _, c := range categories {
				name := c.Name
				if c.Reserved() {
					name += " (reserved)"
				}
				fmt.Fprintf(w, "%d\t%s\t%s\n", c.ID, name, c.Metadata.Color)
			}
		})
		total := len(categories)
		if page != nil {
			total = page.Total
		}
		fmt.Fprintf(a.out, "%d category(ies)%s\n", len(categories), countSuffix(total, page != nil))
		return nil

	case "add":
		fs := flag.NewFlagSet("grocey categories add", flag.ContinueOnError)
		fs.SetOutput(a.out)
		name := fs.String("name", "", "category name")
		color := fs.String("color", "", "display color")
		icon := fs.String("icon", "", "display icon")
		if err := fs.Parse(args); err != nil {
			return err
		}
		if *name == "" {
			return fmt.Errorf("categories add requires -name")
		}

		req := api.CategoryRequest{Name: *name}
		if *color != "" || *icon != "" {
			req.Metadata = &model.Metadata{Color: *color, Icon: *icon}
		}
		c, err := a.api.Categories.Create(ctx, req)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Created category %d: %s\n", c.ID, c.Name)
		return nil

	case "update":
		fs := flag.NewFlagSet("grocey categories update", flag.ContinueOnError)
		fs.SetOutput(a.out)
		name := fs.String("name", "", "category name")
		color := fs.String("color", "", "display color")
		if err := fs.Parse(args); err != nil {
			return err
		}
		if fs.NArg() < 1 {
			return fmt.Errorf("usage: grocey categories update [flags] <id>")
		}
		id, err := parseID(fs.Arg(0), "category")
		if err != nil {
			return err
		}
		set := suppliedFlags(fs)
		if len(set) == 0 {
			return fmt.Errorf("categories update requires at least one of -name or -color")
		}

		// PUT replaces the category; merge flags over the current state.
		current, err := a.api.Categories.Get(ctx, id)
		if err != nil {
			return err
		}
		req := api.CategoryRequest{Name: current.Name}
		meta := current.Metadata
		if set["name"] {
			req.Name = *name
		}
		if set["color"] {
			meta.Color = *color
		}
		if !meta.IsZero() {
			req.Metadata = &meta
		}

		c, err := a.api.Categories.Update(ctx, id, req)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Updated category %d: %s\n", c.ID, c.Name)
		return nil

	case "rm":
		if len(args) < 1 {
			return fmt.Errorf("usage: grocey categories rm <id>")
		}
		id, err := parseID(args[0], "category")
		if err != nil {
			return err
		}
		if err := a.api.Categories.Delete(ctx, id); err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Deleted category %d\n", id)
		return nil

	default:
		return fmt.Errorf("unknown categories action %q (ls|add|update|rm)", action)
	}
}
