package cli

import (
	"context"
	"flag"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/grocey/grocey-cli/internal/api"
	"github.com/grocey/grocey-cli/internal/model"
	"github.com/grocey/grocey-cli/internal/store"
)

// listIDFrom resolves the target list: the -list flag when given, otherwise
// the default_list_id setting.
func (a *App) listIDFrom(flagVal int64) (int64, error) {
	if flagVal > 0 {
		return flagVal, nil
	}
	stored, err := a.settings.Get(store.SettingDefaultListID)
	if err != nil {
		return 0, err
	}
	if stored == "" {
		return 0, fmt.Errorf("no list given: pass -list <id> or set a default with 'grocey config set default_list_id <id>'")
	}
	id, err := strconv.ParseInt(stored, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("stored default_list_id %q is not a number", stored)
	}
	return id, nil
}

func (a *App) runItems(ctx context.Context, args []string) error {
	action := "ls"
	if len(args) > 0 {
		action = args[0]
		args = args[1:]
	}

	fs := flag.NewFlagSet("grocey items "+action, flag.ContinueOnError)
	fs.SetOutput(a.out)
	listFlag := fs.Int64("list", 0, "shopping list id")

	switch action {
	case "ls":
		if err := fs.Parse(args); err != nil {
			return err
		}
		listID, err := a.listIDFrom(*listFlag)
		if err != nil {
			return err
		}
		items, page, err := a.api.ListItems.List(ctx, listID)
		if err != nil {
			return err
		}
		a.table("ID\t✓\tPRODUCT\tQTY\tUNIT", func(w *tabwriter.Writer) {
			for _, it := range items {
				fmt.Fprintf(w, "%d\t%s\t%s\t%g\t%s\n",
					it.ID, checkbox(it.Purchased), productName(it.Product), it.Quantity, it.Unit)
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
		unit := fs.String("unit", "", "unit (e.g. kg, pcs)")
		if err := fs.Parse(args); err != nil {
			return err
		}
		listID, err := a.listIDFrom(*listFlag)
		if err != nil {
			return err
		}
		if *product <= 0 {
			return fmt.Errorf("items add requires -product <id>")
		}

		item, err := a.api.ListItems.Create(ctx, listID, api.ListItemRequest{
			Quantity: *qty,
			Unit:     *unit,
			Product:  &model.Ref{ID: *product},
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Added item %d: %g %s %s\n", item.ID, item.Quantity, item.Unit, productName(item.Product))
		return nil

	case "update":
		product := fs.Int64("product", 0, "product id")
		qty := fs.Float64("qty", 1, "quantity")
		unit := fs.String("unit", "", "unit")
		if err := fs.Parse(args); err != nil {
			return err
		}
		listID, err := a.listIDFrom(*listFlag)
		if err != nil {
			return err
		}
		if fs.NArg() < 1 {
			return fmt.Errorf("usage: grocey items update [flags] <itemId>")
		}
		itemID, err := parseID(fs.Arg(0), "item")
		if err != nil {
			return err
		}
		set := suppliedFlags(fs)
		delete(set, "list")
		if len(set) == 0 {
			return fmt.Errorf("items update requires at least one of -product, -qty or -unit")
		}

		// PUT replaces the item; merge flags over the current state so an
		// update without -product keeps the product reference.
		current, err := a.api.ListItems.Get(ctx, listID, itemID)
		if err != nil {
			return err
		}
		req := api.ListItemRequest{Quantity: current.Quantity, Unit: current.Unit}
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

		item, err := a.api.ListItems.Update(ctx, listID, itemID, req)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Updated item %d\n", item.ID)
		return nil

	case "check", "uncheck":
		if err := fs.Parse(args); err != nil {
			return err
		}
		listID, err := a.listIDFrom(*listFlag)
		if err != nil {
			return err
		}
		if fs.NArg() < 1 {
			return fmt.Errorf("usage: grocey items %s [flags] <itemId>", action)
		}
		itemID, err := parseID(fs.Arg(0), "item")
		if err != nil {
			return err
		}

		var item *model.ListItem
		if action == "check" {
			item, err = a.api.ListItems.MarkPurchased(ctx, listID, itemID)
		} else {
			item, err = a.api.ListItems.MarkNotPurchased(ctx, listID, itemID)
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "%s %s\n", checkbox(item.Purchased), productName(item.Product))
		return nil

	case "qty":
		if err := fs.Parse(args); err != nil {
			return err
		}
		listID, err := a.listIDFrom(*listFlag)
		if err != nil {
			return err
		}
		if fs.NArg() < 2 {
			return fmt.Errorf("usage: grocey items qty [flags] <itemId> <quantity>")
		}
		itemID, err := parseID(fs.Arg(0), "item")
		if err != nil {
			return err
		}
		qty, err := strconv.ParseFloat(fs.Arg(1), 64)
		if err != nil || qty < 0 {
			return fmt.Errorf("invalid quantity %q", fs.Arg(1))
		}

		item, err := a.api.ListItems.UpdateQuantity(ctx, listID, itemID, qty)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Item %d quantity is now %g %s\n", item.ID, item.Quantity, item.Unit)
		return nil

	case "rm":
		if err := fs.Parse(args); err != nil {
			return err
		}
		listID, err := a.listIDFrom(*listFlag)
		if err != nil {
			return err
		}
		if fs.NArg() < 1 {
			return fmt.Errorf("usage: grocey items rm [flags] <itemId>")
		}
		itemID, err := parseID(fs.Arg(0), "item")
		if err != nil {
			return err
		}
		if err := a.api.ListItems.Delete(ctx, listID, itemID); err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Deleted item %d\n", itemID)
		return nil

	default:
		return fmt.Errorf("unknown items action %q (ls|add|update|check|uncheck|qty|rm)", action)
	}
}
