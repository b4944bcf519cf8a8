package cli

import (
	"flag"
	"fmt"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/grocey/grocey-cli/internal/model"
)

// suppliedFlags reports which flags were actually given on the command line,
// so update commands can tell a deliberate zero from an untouched default.
func suppliedFlags(fs *flag.FlagSet) map[string]bool {
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}

func parseID(s, what string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s id %q", what, s)
	}
	return id, nil
}

func (a *App) table(header string, rows func(w *tabwriter.Writer)) {
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, header)
	rows(w)
	w.Flush()
}

func checkbox(v bool) string {
	if v {
		return "[x]"
	}
	return "[ ]"
}

func fav(m model.Metadata) string {
	if m.IsFavorite {
		return "*"
	}
	return ""
}

func shortDate(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format("2006-01-02")
}

func productName(p *model.Product) string {
	if p == nil {
		return "-"
	}
	return p.Name
}

func categoryName(c *model.Category) string {
	if c == nil {
		return model.MiscellaneousCategoryName
	}
	return c.Name
}

// countSuffix renders "(n total)" when the server sent pagination metadata,
// nothing otherwise.
func countSuffix(total int, hasPage bool) string {
	if !hasPage {
		return ""
	}
	return fmt.Sprintf(" (%d total)", total)
}
