package cli

import (
	"context"
	"flag"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/grocey/grocey-cli/internal/api"
	"github.com/grocey/grocey-cli/internal/model"
)

func (a *App) runPantries(ctx context.Context, args []string) error {
	action := "ls"
	if len(args) > 0 {
		action = args[0]
		args = args[1:]
	}

	switch action {
	case "ls":
		pantries, page, err := a.api.Pantries.List(ctx)
		if err != nil {
			return err
		}
		a.table("ID\tNAME\tSHARED WITH", func(w *tabwriter.Writer) {
			for _, p := range pantries {
				fmt.Fprintf(w, "%d\t%s\t%d\n", p.ID, p.Name, len(p.SharedWith))
			}
		})
		total := len(pantries)
		if page != nil {
			total = page.Total
		}
		fmt.Fprintf(a.out, "%d pantry(ies)%s\n", len(pantries), countSuffix(total, page != nil))
		return nil

	case "add":
		fs := flag.NewFlagSet("grocey pantries add", flag.ContinueOnError)
		fs.SetOutput(a.out)
		name := fs.String("name", "", "pantry name")
		icon := fs.String("icon", "", "pantry icon")
		if err := fs.Parse(args); err != nil {
			return err
		}
		if *name == "" {
			return fmt.Errorf("pantries add requires -name")
		}

		req := api.PantryRequest{Name: *name}
		if *icon != "" {
			req.Metadata = &model.Metadata{Icon: *icon}
		}
		p, err := a.api.Pantries.Create(ctx, req)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Created pantry %d: %s\n", p.ID, p.Name)
		return nil

	case "show":
		if len(args) < 1 {
			return fmt.Errorf("usage: grocey pantries show <id>")
		}
		id, err := parseID(args[0], "pantry")
		if err != nil {
			return err
		}
		p, err := a.api.Pantries.Get(ctx, id)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "%s (id %d)\n", p.Name, p.ID)
		if p.Owner != nil {
			fmt.Fprintf(a.out, "owner: %s <%s>\n", p.Owner.Name, p.Owner.Email)
		}
		for _, u := range p.SharedWith {
			fmt.Fprintf(a.out, "shared with: %s <%s> (id %d)\n", u.Name, u.Email, u.ID)
		}
		return nil

	case "update":
		fs := flag.NewFlagSet("grocey pantries update", flag.ContinueOnError)
		fs.SetOutput(a.out)
		name := fs.String("name", "", "pantry name")
		if err := fs.Parse(args); err != nil {
			return err
		}
		if fs.NArg() < 1 || *name == "" {
			return fmt.Errorf("usage: grocey pantries update -name <name> <id>")
		}
		id, err := parseID(fs.Arg(0), "pantry")
		if err != nil {
			return err
		}

		// PUT replaces the pantry; carry the current metadata along with the
		// new name.
		current, err := a.api.Pantries.Get(ctx, id)
		if err != nil {
			return err
		}
		req := api.PantryRequest{Name: *name}
		if !current.Metadata.IsZero() {
			req.Metadata = &current.Metadata
		}
		p, err := a.api.Pantries.Update(ctx, id, req)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Updated pantry %d: %s\n", p.ID, p.Name)
		return nil

	case "rm":
		if len(args) < 1 {
			return fmt.Errorf("usage: grocey pantries rm <id>")
		}
		id, err := parseID(args[0], "pantry")
		if err != nil {
			return err
		}
		if err := a.api.Pantries.Delete(ctx, id); err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Deleted pantry %d\n", id)
		return nil

	case "share":
		fs := flag.NewFlagSet("grocey pantries share", flag.ContinueOnError)
		fs.SetOutput(a.out)
		email := fs.String("email", "", "email of the user to share with")
		if err := fs.Parse(args); err != nil {
			return err
		}
		if fs.NArg() < 1 || *email == "" {
			return fmt.Errorf("usage: grocey pantries share -email <email> <id>")
		}
		id, err := parseID(fs.Arg(0), "pantry")
		if err != nil {
			return err
		}
		p, err := a.api.Pantries.Share(ctx, id, *email)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Shared pantry %d with %s (%d member(s))\n", id, *email, len(p.SharedWith))
		return nil

	case "unshare":
		if len(args) < 2 {
			return fmt.Errorf("usage: grocey pantries unshare <id> <userId>")
		}
		id, err := parseID(args[0], "pantry")
		if err != nil {
			return err
		}
		userID, err := parseID(args[1], "user")
		if err != nil {
			return err
		}
		if err := a.api.Pantries.Unshare(ctx, id, userID); err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Revoked access of user %d to pantry %d\n", userID, id)
		return nil

	default:
		return fmt.Errorf("unknown pantries action %q (ls|add|show|update|rm|share|unshare)", action)
	}
}

func (a *App) runPantryItems(ctx context.Context, args []string) error {
	action := "ls"
	if len(args) > 0 {
		action = args[0]
		args = args[1:]
	}

	fs := flag.NewFlagSet("grocey pantry-items "+action, flag.ContinueOnError)
	fs.SetOutput(a.out)
	pantryFlag := fs.Int64("pantry", 0, "pantry id")

	requirePantry := func() (int64, error) {
		if *pantryFlag <= 0 {
			return 0, fmt.Errorf("pantry-items requires -pantry <id>")
		}
		return *pantryFlag, nil
	}

	switch action {
	case "ls":
		if err := fs.Parse(args); err != nil {
			return err
		}
		pantryID, err := requirePantry()
		if err != nil {
			return err
		}
		items, page, err := a.api.PantryItems.List(ctx, pantryID)
		if err != nil {
			return err
		}
		a.table("ID\tPRODUCT\tQTY\tUNIT\tEXPIRES", func(w *tabwriter.Writer) {
			for _, it := range items {
				expires := it.Metadata.ExpirationDate
				if expires == "" {
					expires = "-"
				}
				fmt.Fprintf(w, "%d\t%s\t%g\t%s\t%s\n", it.ID, productName(it.Product), it.Quantity, it.Unit, expires)
			}
		})
		total := len(items)
		if page != nil {
			total = page.Total
		}
		fmt.Fprintf(a.out, "%d item(s)%s\n", len(items), countSuffix(total, page != nil))
		return nil

	case "add":
		product := fs.Int64("product", 0, "product id")
		qty := fs.Float64("qty", 1, "quantity")
		unit := fs.String("unit", "", "unit")
		expires := fs.String("expires", "", "expiration date (YYYY-MM-DD)")
		if err := fs.Parse(args); err != nil {
			return err
		}
		pantryID, err := requirePantry()
		if err != nil {
			return err
		}
		if *product <= 0 {
			return fmt.Errorf("pantry-items add requires -product <id>")
		}

		req := api.PantryItemRequest{
			Quantity: *qty,
			Unit:     *unit,
			Product:  &model.Ref{ID: *product},
		}
		if *expires != "" {
			req.Metadata = &model.Metadata{ExpirationDate: *expires}
		}
		item, err := a.api.PantryItems.Create(ctx, pantryID, req)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Added pantry item %d: %g %s %s\n", item.ID, item.Quantity, item.Unit, productName(item.Product))
		return nil

	case "update":
		product := fs.Int64("product", 0, "product id")
		qty := fs.Float64("qty", 1, "quantity")
		unit := fs.String("unit", "", "unit")
		if err := fs.Parse(args); err != nil {
			return err
		}
		pantryID, err := requirePantry()
		if err != nil {
			return err
		}
		if fs.NArg() < 1 {
			return fmt.Errorf("usage: grocey pantry-items update [flags] <itemId>")
		}
		itemID, err := parseID(fs.Arg(0), "item")
		if err != nil {
			return err
		}
		set := suppliedFlags(fs)
		delete(set, "pantry")
		if len(set) == 0 {
			return fmt.Errorf("pantry-items update requires at least one of -product, -qty or -unit")
		}

		// PUT replaces the item; merge flags over the current state so an
		// update without -product keeps the product reference.
		current, err := a.api.PantryItems.Get(ctx, pantryID, itemID)
		if err != nil {
			return err
		}
		req := api.PantryItemRequest{Quantity: current.Quantity, Unit: current.Unit}
		if current.Product != nil {
			req.Product = &model.Ref{ID: current.Product.ID}
		}
		if !current.Metadata.IsZero() {
			req.Metadata = &current.Metadata
		}
		if set["qty"] {
			req.Quantity = *qty
		}
		if set["unit"] {
			req.Unit = *unit
		}
		if set["product"] {
			if *product <= 0 {
				return fmt.Errorf("invalid product id %d", *product)
			}
			req.Product = &model.Ref{ID: *product}
		}

		item, err := a.api.PantryItems.Update(ctx, pantryID, itemID, req)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Updated pantry item %d\n", item.ID)
		return nil

	case "qty":
		if err := fs.Parse(args); err != nil {
			return err
		}
		pantryID, err := requirePantry()
		if err != nil {
			return err
		}
		if fs.NArg() < 2 {
			return fmt.Errorf("usage: grocey pantry-items qty [flags] <itemId> <quantity>")
		}
		itemID, err := parseID(fs.Arg(0), "item")
		if err != nil {
			return err
		}
		qty, err := strconv.ParseFloat(fs.Arg(1), 64)
		if err != nil || qty < 0 {
			return fmt.Errorf("invalid quantity %q", fs.Arg(1))
		}

		item, err := a.api.PantryItems.UpdateQuantity(ctx, pantryID, itemID, qty)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Pantry item %d quantity is now %g %s\n", item.ID, item.Quantity, item.Unit)
		return nil

	case "rm":
		if err := fs.Parse(args); err != nil {
			return err
		}
		pantryID, err := requirePantry()
		if err != nil {
			return err
		}
		if fs.NArg() < 1 {
			return fmt.Errorf("usage: grocey pantry-items rm [flags] <itemId>")
		}
		itemID, err := parseID(fs.Arg(0), "item")
		if err != nil {
			return err
		}
		if err := a.api.PantryItems.Delete(ctx, pantryID, itemID); err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Deleted pantry item %d\n", itemID)
		return nil

	default:
		return fmt.Errorf("unknown pantry-items action %q (ls|add|update|qty|rm)", action)
	}
}
