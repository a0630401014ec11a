package product

import (
	"flag"
	"io"
	"strings"

	"github.com/murkotick/product-catalog-manager/internal/app/product/domain"
)

// stringList collects a repeatable flag.
type stringList []string

func (s *stringList) String() string {
	return strings.Join(*s, ",")
}

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

// fieldFlags are the form fields exposed as command-line flags. Only flags
// that were actually given override the starting Fields, so "edit" can touch a
// single field and "--price-boutique ''" clears an optional price.
type fieldFlags struct {
	fs *flag.FlagSet

	scalars map[string]*string

	images        stringList
	features      stringList
	featuresText  string
	clearImages   bool
	clearFeatures bool
}

var scalarFlags = []struct {
	name  string
	usage string
}{
	{"title", "product title (required)"},
	{"slug", "url slug; derived from the title when empty"},
	{"short", "short description"},
	{"category", "category name"},
	{"boutique", "boutique name"},
	{"price", "price (required, numeric)"},
	{"price-boutique", "boutique price (optional, numeric)"},
	{"old-price", "previous price (optional, numeric)"},
	{"stock", "units in stock (required, integer)"},
	{"rating", "rating (required, numeric)"},
	{"description", "long description"},
}

func newFieldFlags(name string, errOut io.Writer) *fieldFlags {
	ff := &fieldFlags{
		fs:      flag.NewFlagSet(name, flag.ContinueOnError),
		scalars: make(map[string]*string, len(scalarFlags)),
	}
	ff.fs.SetOutput(errOut)
	for _, s := range scalarFlags {
		ff.scalars[s.name] = ff.fs.String(s.name, "", s.usage)
	}
	ff.fs.Var(&ff.images, "image", "image path; repeatable")
	ff.fs.Var(&ff.features, "feature", "feature line; repeatable")
	ff.fs.StringVar(&ff.featuresText, "features", "", "features as multi-line text, one per line")
	ff.fs.BoolVar(&ff.clearImages, "clear-images", false, "drop existing images before adding")
	ff.fs.BoolVar(&ff.clearFeatures, "clear-features", false, "drop existing features before adding")
	return ff
}

func (ff *fieldFlags) parse(args []string) error {
	return ff.fs.Parse(args)
}

// apply overlays the given flags on f.
func (ff *fieldFlags) apply(f *domain.Fields) {
	ff.fs.Visit(func(fl *flag.Flag) {
		v, ok := ff.scalars[fl.Name]
		if !ok {
			return
		}
		switch fl.Name {
		case "title":
			f.Title = *v
		case "slug":
			f.Slug = *v
		case "short":
			f.Short = *v
		case "category":
			f.Category = *v
		case "boutique":
			f.Boutique = *v
		case "price":
			f.Price = *v
		case "price-boutique":
			f.PriceBoutique = *v
		case "old-price":
			f.OldPrice = *v
		case "stock":
			f.Stock = *v
		case "rating":
			f.Rating = *v
		case "description":
			f.Description = *v
		}
	})

	if ff.clearImages {
		f.ClearImages()
	}
	if ff.clearFeatures {
		f.ClearFeatures()
	}
	f.AddImages(ff.images...)
	f.AddFeatures(ff.features...)
	if ff.featuresText != "" {
		f.ImportFeatures(ff.featuresText)
	}
}
