package product

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/murkotick/product-catalog-manager/internal/app/product/domain"
	"github.com/murkotick/product-catalog-manager/internal/app/product/dto"
	"github.com/murkotick/product-catalog-manager/internal/app/product/engine"
	"github.com/murkotick/product-catalog-manager/internal/app/product/utils"
)

// Usage is printed for a missing or unknown command.
const Usage = `usage: catalog [-file path] <command> [arguments]

commands:
  list                 list products in file order
  show ID              print one product
  add [flags]          create a product and save
  edit ID [flags]      change a product and save
  rm ID                delete a product and save
  categories           list known categories
  boutiques            list known boutiques
  next-id              print the id the next product will receive

run "catalog add -h" for the field flags.
`

// Handler is a thin command-line adapter over the engine.
// It parses arguments, maps flags to form fields and renders results.
type Handler struct {
	engine *engine.Engine
	out    io.Writer
	errOut io.Writer
}

func NewHandler(e *engine.Engine, out, errOut io.Writer) *Handler {
	return &Handler{engine: e, out: out, errOut: errOut}
}

// Run dispatches one command and returns the process exit code. Mutating
// commands save the catalog before returning.
func (h *Handler) Run(ctx context.Context, args []string) int {
	err := h.dispatch(ctx, args)
	if err != nil {
		fmt.Fprintf(h.errOut, "catalog: %v\n", err)
		if ExitCode(err) == ExitUsage {
			fmt.Fprint(h.errOut, Usage)
		}
	}
	return ExitCode(err)
}

func (h *Handler) dispatch(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: command is required", ErrUsage)
	}
	cmd, rest := args[0], args[1:]

	switch cmd {
	case "list", "ls":
		if err := validateNoArgs(cmd, rest); err != nil {
			return err
		}
		return h.List()
	case "show", "get":
		id, err := parseProductID(rest)
		if err != nil {
			return err
		}
		return h.Show(id)
	case "add", "create":
		return h.Add(ctx, rest)
	case "edit", "update":
		if len(rest) == 0 {
			return fmt.Errorf("%w: product id is required", ErrUsage)
		}
		id, err := parseProductID(rest[:1])
		if err != nil {
			return err
		}
		return h.Edit(ctx, id, rest[1:])
	case "rm", "delete":
		id, err := parseProductID(rest)
		if err != nil {
			return err
		}
		return h.Remove(ctx, id)
	case "categories":
		if err := validateNoArgs(cmd, rest); err != nil {
			return err
		}
		return h.printLines(h.engine.Categories())
	case "boutiques":
		if err := validateNoArgs(cmd, rest); err != nil {
			return err
		}
		return h.printLines(h.engine.Boutiques())
	case "next-id":
		if err := validateNoArgs(cmd, rest); err != nil {
			return err
		}
		_, err := fmt.Fprintln(h.out, h.engine.NextID())
		return err
	}

	return fmt.Errorf("%w: unknown command %q", ErrUsage, cmd)
}

// List prints the product table.
func (h *Handler) List() error {
	return writeRows(h.out, h.engine.Rows())
}

// Show prints every field of one product.
func (h *Handler) Show(id int64) error {
	p, err := h.engine.FindByID(id)
	if err != nil {
		return fmt.Errorf("product %d: %w", id, err)
	}
	return writeProduct(h.out, p)
}

// Add creates a product from flags and saves the catalog.
func (h *Handler) Add(ctx context.Context, args []string) error {
	ff := newFieldFlags("add", h.errOut)
	if err := ff.parse(args); err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if ff.fs.NArg() > 0 {
		return fmt.Errorf("%w: unexpected arguments %q", ErrUsage, ff.fs.Args())
	}

	var fields domain.Fields
	ff.apply(&fields)

	p, err := h.engine.Create(fields)
	if err != nil {
		return err
	}
	if err := h.save(ctx); err != nil {
		return err
	}
	_, err = fmt.Fprintf(h.out, "created product %d (%s)\n", p.ID(), p.Slug())
	return err
}

// Edit overlays the given flags on an existing product and saves the catalog.
func (h *Handler) Edit(ctx context.Context, id int64, args []string) error {
	current, err := h.engine.FindByID(id)
	if err != nil {
		return fmt.Errorf("product %d: %w", id, err)
	}

	ff := newFieldFlags("edit", h.errOut)
	if err := ff.parse(args); err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if ff.fs.NArg() > 0 {
		return fmt.Errorf("%w: unexpected arguments %q", ErrUsage, ff.fs.Args())
	}

	fields := domain.FieldsFromProduct(current)
	ff.apply(&fields)

	p, err := h.engine.Update(id, fields)
	if err != nil {
		return err
	}
	if err := h.save(ctx); err != nil {
		return err
	}
	_, err = fmt.Fprintf(h.out, "updated product %d (%s)\n", p.ID(), p.Slug())
	return err
}

// Remove deletes a product and saves the catalog. Unknown ids are reported
// but are not an error.
func (h *Handler) Remove(ctx context.Context, id int64) error {
	if !h.engine.Delete(id) {
		_, err := fmt.Fprintf(h.out, "no product %d\n", id)
		return err
	}
	if err := h.save(ctx); err != nil {
		return err
	}
	_, err := fmt.Fprintf(h.out, "deleted product %d\n", id)
	return err
}

func (h *Handler) save(ctx context.Context) error {
	if err := h.engine.Save(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrSaveFailed, err)
	}
	return nil
}

func (h *Handler) printLines(lines []string) error {
	for _, l := range lines {
		if _, err := fmt.Fprintln(h.out, l); err != nil {
			return err
		}
	}
	return nil
}

func writeRows(w io.Writer, rows []*dto.ProductRow) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tCATEGORY\tBOUTIQUE\tPRICE\tPRICE BOUTIQUE\tOLD PRICE\tSTOCK")
	for _, r := range rows {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%d\n",
			r.ID, r.Title, r.Category, r.Boutique, r.Price, r.PriceBoutique, r.OldPrice, r.Stock)
	}
	return tw.Flush()
}

func writeProduct(w io.Writer, p *domain.Product) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "id:\t%d\n", p.ID())
	fmt.Fprintf(tw, "slug:\t%s\n", p.Slug())
	fmt.Fprintf(tw, "title:\t%s\n", p.Title())
	fmt.Fprintf(tw, "short:\t%s\n", p.Short())
	fmt.Fprintf(tw, "category:\t%s\n", p.Category())
	fmt.Fprintf(tw, "boutique:\t%s\n", p.Boutique())
	fmt.Fprintf(tw, "price:\t%s\n", utils.FormatPrice(p.Price()))
	fmt.Fprintf(tw, "price boutique:\t%s\n", utils.FormatOptional(p.PriceBoutique()))
	fmt.Fprintf(tw, "old price:\t%s\n", utils.FormatOptional(p.OldPrice()))
	fmt.Fprintf(tw, "stock:\t%d\n", p.Stock())
	fmt.Fprintf(tw, "rating:\t%s\n", utils.FormatNumber(p.Rating()))
	fmt.Fprintf(tw, "images:\t%s\n", strings.Join(p.Images(), ", "))
	fmt.Fprintf(tw, "features:\t%s\n", strings.Join(p.Features(), "; "))
	fmt.Fprintf(tw, "description:\t%s\n", p.Description())
	return tw.Flush()
}
