package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"

	"go.uber.org/zap"

	"go.dw1.io/typebuilder/flags"
	"go.dw1.io/typebuilder/physical"
)

// Generator renders declarations as Go source.
type Generator struct {
	opts options
}

// New returns a Generator configured by opts.
func New(opts ...Option) *Generator {
	o := options{
		module: defaultModule,
		policy: defaultPolicy,
		header: defaultHeader,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = Logger()
	}

	return &Generator{opts: o}
}

type fileData struct {
	Header     string
	Package    string
	Imports    []string
	Types      []typeData
	Dimensions []dimensionData
	Products   []productData
}

type typeData struct {
	Name    string
	Comment string
	Flags   string
	Policy  string
	Markers []string
	Aliases []aliasData
	Helpers []helperData
}

type aliasData struct {
	Name string
	Type string
	Rep  string
}

type helperData struct {
	Func   string
	Op     string
	Type   string
	Left   string
	Right  string
	Result string
}

type dimensionData struct {
	Name      string
	Suffix    string
	Exponents string
}

type productData struct {
	Func   string
	Op     string
	Left   string
	Right  string
	Result string
}

// Generate validates d and returns the gofmt formatted source for it.
func (g *Generator) Generate(d *Declaration) ([]byte, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	log := g.opts.logger.With(zap.String("package", d.Package))

	data := fileData{
		Header:  g.opts.header,
		Package: d.Package,
		Imports: g.imports(d),
	}

	for _, t := range d.Types {
		td, err := g.typeData(t)
		if err != nil {
			return nil, err
		}
		log.Debug("type",
			zap.String("name", t.Name),
			zap.String("flags", td.Comment),
			zap.Int("helpers", len(td.Helpers)))
		data.Types = append(data.Types, td)
	}

	dims := make([]physical.Exponents, len(d.Dimensions))
	for i, dim := range d.Dimensions {
		e, err := exponents(dim)
		if err != nil {
			return nil, err
		}
		dims[i] = e

		suffix := e.Suffix()
		if suffix == "" {
			suffix = "1"
		}
		data.Dimensions = append(data.Dimensions, dimensionData{
			Name:      dim.Name,
			Suffix:    suffix,
			Exponents: e.GoString(),
		})
	}
	data.Products = products(d.Dimensions, dims)
	log.Debug("dimensions",
		zap.Int("count", len(data.Dimensions)),
		zap.Int("products", len(data.Products)))

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		log.Error("generated source does not parse", zap.Error(err))
		return nil, fmt.Errorf("format generated source: %w", err)
	}

	return src, nil
}

func (g *Generator) imports(d *Declaration) []string {
	imports := []string{g.opts.module + "/flags", g.opts.module + "/number"}
	if len(d.Types) == 0 {
		imports = imports[1:]
	}
	if len(d.Dimensions) > 0 {
		imports = append(imports, g.opts.module+"/physical")
	}

	return append(imports, d.Imports...)
}

func (g *Generator) typeData(t TypeDecl) (typeData, error) {
	set := flags.MustParse(t.Flags)

	td := typeData{
		Name:    t.Name,
		Comment: set.String(),
		Flags:   flagsExpr(set),
		Policy:  t.Policy,
	}
	if td.Policy == "" {
		td.Policy = g.opts.policy
	}

	for _, c := range set.Capabilities() {
		td.Markers = append(td.Markers, c.String())
	}

	reps := make([]string, 0, len(t.Representations))
	for _, rep := range t.Representations {
		name, _, _ := lookupKind(rep)
		reps = append(reps, name)
		td.Aliases = append(td.Aliases, aliasData{
			Name: t.Name + exportName(name),
			Type: t.Name,
			Rep:  name,
		})
	}

	if !set.Grants(flags.CapNativeTyping) {
		if len(reps) > 1 {
			g.opts.logger.Debug("representations without native typing, skipping mixed helpers",
				zap.String("type", t.Name))
		}
		return td, nil
	}

	for _, l := range reps {
		for _, r := range reps {
			if l == r {
				continue
			}

			result, err := Promote(l, r)
			if err != nil {
				return td, err
			}

			for _, o := range helperOps {
				if !set.Grants(o.grant) {
					continue
				}
				if o.ints && !(isInteger(l) && isInteger(r)) {
					continue
				}

				td.Helpers = append(td.Helpers, helperData{
					Func:   helperName(o.name, t.Name, l, r),
					Op:     o.op,
					Type:   t.Name,
					Left:   l,
					Right:  r,
					Result: result,
				})
			}
		}
	}

	return td, nil
}

// products returns a Mul for every ordered pair of dimensions whose product
// is declared, and a Div for every pair whose quotient is.
func products(decls []DimensionDecl, dims []physical.Exponents) []productData {
	byExponents := make(map[physical.Exponents]string, len(dims))
	for i, e := range dims {
		if _, ok := byExponents[e]; !ok {
			byExponents[e] = decls[i].Name
		}
	}

	var out []productData
	for i, a := range dims {
		for j, b := range dims {
			left, right := decls[i].Name, decls[j].Name

			if r, ok := byExponents[a.Add(b)]; ok {
				out = append(out, productData{
					Func: "Mul" + left + right, Op: "Mul",
					Left: left, Right: right, Result: r,
				})
			}
			if r, ok := byExponents[a.Sub(b)]; ok {
				out = append(out, productData{
					Func: "Div" + left + right, Op: "Div",
					Left: left, Right: right, Result: r,
				})
			}
		}
	}

	return out
}

// flagsExpr renders s as a Go expression over the flags package.
func flagsExpr(s flags.Set) string {
	parts := strings.Split(s.String(), "|")
	for i, p := range parts {
		if _, ok := flags.Lookup(p); ok {
			parts[i] = "flags." + p
		}
	}

	return strings.Join(parts, " | ")
}

type helperOp struct {
	name  string
	op    string
	grant flags.Capability
	ints  bool
}

var helperOps = []helperOp{
	{"Add", "AddAs", flags.CapSpecificPlusMinus, false},
	{"Sub", "SubAs", flags.CapSpecificPlusMinus, false},
	{"Mul", "MulAs", flags.CapSpecificMultiplication, false},
	{"Div", "DivAs", flags.CapSpecificDivision, false},
	{"Mod", "ModAs", flags.CapSpecificModulo, true},
}

func helperName(op, typ, l, r string) string {
	return op + typ + exportName(l) + exportName(r)
}

func exportName(rep string) string {
	return strings.ToUpper(rep[:1]) + rep[1:]
}
