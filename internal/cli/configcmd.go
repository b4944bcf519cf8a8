package cli

import (
	"context"
	"fmt"
	"sort"
	"text/tabwriter"
)

func (a *App) runConfig(ctx context.Context, args []string) error {
	action := "ls"
	if len(args) > 0 {
		action = args[0]
		args = args[1:]
	}

	switch action {
	case "ls":
		settings, err := a.settings.GetAll()
		if err != nil {
			return err
		}
		keys := make([]string, 0, len(settings))
		for k := range settings {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		a.table("KEY\tVALUE", func(w *tabwriter.Writer) {
			for _, k := range keys {
				fmt.Fprintf(w, "%s\t%s\n", k, settings[k])
			}
		})
		return nil

	case "set":
		if len(args) < 2 {
			return fmt.Errorf("usage: grocey config set <key> <value>")
		}
		if err := a.settings.Set(args[0], args[1]); err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Set %s\n", args[0])
		return nil

	case "unset":
		if len(args) < 1 {
			return fmt.Errorf("usage: grocey config unset <key>")
		}
		if err := a.settings.Unset(args[0]); err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Unset %s\n", args[0])
		return nil

	default:
		return fmt.Errorf("unknown config action %q (ls|set|unset)", action)
	}
}
