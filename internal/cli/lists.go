package cli

import (
	"context"
	"flag"
	"fmt"
	"text/tabwriter"

	"github.com/grocey/grocey-cli/internal/api"
	"github.com/grocey/grocey-cli/internal/model"
)

func (a *App) runLists(ctx context.Context, args []string) error {
	action := "ls"
	if len(args) > 0 {
		action = args[0]
		args = args[1:]
	}

	switch action {
	case "ls":
		lists, page, err := a.api.ShoppingLists.List(ctx)
		if err != nil {
			return err
		}
		total := len(lists)
		if page != nil {
			total = page.Total
		}
		a.table("ID\tNAME\tITEMS\tRECURRING\tLAST PURCHASED\tFAV", func(w *tabwriter.Writer) {
			for _, l := range lists {
				fmt.Fprintf(w, "%d\t%s\t%d\t%v\t%s\t%s\n",
					l.ID, l.Name, l.Metadata.ItemsCount, l.Recurring, shortDate(l.LastPurchasedAt), fav(l.Metadata))
			}
		})
		fmt.Fprintf(a.out, "%d list(s)%s\n", len(lists), countSuffix(total, page != nil))
		return nil

	case "add":
		fs := flag.NewFlagSet("grocey lists add", flag.ContinueOnError)
		fs.SetOutput(a.out)
		name := fs.String("name", "", "list name")
		desc := fs.String("desc", "", "description")
		recurring := fs.Bool("recurring", false, "reset items after each purchase")
		icon := fs.String("icon", "", "list icon")
		if err := fs.Parse(args); err != nil {
			return err
		}
		if *name == "" {
			return fmt.Errorf("lists add requires -name")
		}

		req := api.ShoppingListRequest{Name: *name, Description: *desc, Recurring: *recurring}
		if *icon != "" {
			req.Metadata = &model.Metadata{Icon: *icon}
		}
		list, err := a.api.ShoppingLists.Create(ctx, req)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Created list %d: %s\n", list.ID, list.Name)
		return nil

	case "show":
		if len(args) < 1 {
			return fmt.Errorf("usage: grocey lists show <id>")
		}
		id, err := parseID(args[0], "list")
		if err != nil {
			return err
		}
		list, err := a.api.ShoppingLists.Get(ctx, id)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "%s (id %d)\n", list.Name, list.ID)
		if list.Description != "" {
			fmt.Fprintln(a.out, list.Description)
		}
		if list.Owner != nil {
			fmt.Fprintf(a.out, "owner: %s <%s>\n", list.Owner.Name, list.Owner.Email)
		}
		for _, u := range list.SharedWith {
			fmt.Fprintf(a.out, "shared with: %s <%s> (id %d)\n", u.Name, u.Email, u.ID)
		}
		fmt.Fprintf(a.out, "recurring: %v  last purchased: %s\n", list.Recurring, shortDate(list.LastPurchasedAt))
		return nil

	case "update":
		fs := flag.NewFlagSet("grocey lists update", flag.ContinueOnError)
		fs.SetOutput(a.out)
		name := fs.String("name", "", "list name")
		desc := fs.String("desc", "", "description")
		recurring := fs.Bool("recurring", false, "reset items after each purchase")
		if err := fs.Parse(args); err != nil {
			return err
		}
		if fs.NArg() < 1 {
			return fmt.Errorf("usage: grocey lists update [flags] <id>")
		}
		id, err := parseID(fs.Arg(0), "list")
		if err != nil {
			return err
		}
		set := suppliedFlags(fs)
		if len(set) == 0 {
			return fmt.Errorf("lists update requires at least one of -name, -desc or -recurring")
		}

		// PUT replaces the whole list; start from the current state so
		// fields without a flag survive the update.
		current, err := a.api.ShoppingLists.Get(ctx, id)
		if err != nil {
			return err
		}
		req := api.ShoppingListRequest{
			Name:        current.Name,
			Description: current.Description,
			Recurring:   current.Recurring,
		}
		if !current.Metadata.IsZero() {
			req.Metadata = &current.Metadata
		}
		if set["name"] {
			req.Name = *name
		}
		if set["desc"] {
			req.Description = *desc
		}
		if set["recurring"] {
			req.Recurring = *recurring
		}

		list, err := a.api.ShoppingLists.Update(ctx, id, req)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Updated list %d: %s\n", list.ID, list.Name)
		return nil

	case "rm":
		if len(args) < 1 {
			return fmt.Errorf("usage: grocey lists rm <id>")
		}
		id, err := parseID(args[0], "list")
		if err != nil {
			return err
		}
		if err := a.api.ShoppingLists.Delete(ctx, id); err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Deleted list %d\n", id)
		return nil

	case "share":
		fs := flag.NewFlagSet("grocey lists share", flag.ContinueOnError)
		fs.SetOutput(a.out)
		email := fs.String("email", "", "email of the user to share with")
		if err := fs.Parse(args); err != nil {
			return err
		}
		if fs.NArg() < 1 || *email == "" {
			return fmt.Errorf("usage: grocey lists share -email <email> <id>")
		}
		id, err := parseID(fs.Arg(0), "list")
		if err != nil {
			return err
		}
		list, err := a.api.ShoppingLists.Share(ctx, id, *email)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Shared list %d with %s (%d member(s))\n", id, *email, len(list.SharedWith))
		return nil

	case "unshare":
		if len(args) < 2 {
			return fmt.Errorf("usage: grocey lists unshare <id> <userId>")
		}
		id, err := parseID(args[0], "list")
		if err != nil {
			return err
		}
		userID, err := parseID(args[1], "user")
		if err != nil {
			return err
		}
		if err := a.api.ShoppingLists.Unshare(ctx, id, userID); err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Revoked access of user %d to list %d\n", userID, id)
		return nil

	case "purchase":
		if len(args) < 1 {
			return fmt.Errorf("usage: grocey lists purchase <id>")
		}
		id, err := parseID(args[0], "list")
		if err != nil {
			return err
		}
		list, err := a.api.ShoppingLists.Purchase(ctx, id)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "List %d purchased at %s\n", id, shortDate(list.LastPurchasedAt))
		return nil

	default:
		return fmt.Errorf("unknown lists action %q (ls|add|show|update|rm|share|unshare|purchase)", action)
	}
}
