package gen

import (
	"errors"
	"fmt"
	"go/token"
	"io"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"go.dw1.io/typebuilder/flags"
	"go.dw1.io/typebuilder/physical"
)

// ErrInvalidDeclaration is returned for declarations that cannot be
// generated.
var ErrInvalidDeclaration = errors.New("invalid declaration")

// Declaration is the content of a declaration file.
type Declaration struct {
	Package    string          `yaml:"package" toml:"package"`
	Imports    []string        `yaml:"imports,omitempty" toml:"imports"`
	Types      []TypeDecl      `yaml:"types,omitempty" toml:"types"`
	Dimensions []DimensionDecl `yaml:"dimensions,omitempty" toml:"dimensions"`
}

// TypeDecl declares one number type.
type TypeDecl struct {
	Name string `yaml:"name" toml:"name"`
	// Flags is a flag expression as accepted by [flags.Parse].
	Flags string `yaml:"flags" toml:"flags"`
	// Policy is a generic policy type without its type argument. Empty
	// means the generator's default policy.
	Policy          string   `yaml:"policy,omitempty" toml:"policy"`
	Representations []string `yaml:"representations,omitempty" toml:"representations"`
}

// DimensionDecl declares one physical dimension by the exponents of its
// base unit symbols.
type DimensionDecl struct {
	Name      string         `yaml:"name" toml:"name"`
	Exponents map[string]int `yaml:"exponents" toml:"exponents"`
}

// Load reads a declaration file. Files ending in ".toml" are read as TOML,
// everything else as YAML.
func Load(path string) (*Declaration, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	decode := Decode
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		decode = DecodeTOML
	}

	d, err := decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return d, nil
}

// Decode reads a declaration and validates it.
func Decode(r io.Reader) (*Declaration, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var d Declaration
	if err := dec.Decode(&d); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDeclaration, err)
	}

	if err := d.Validate(); err != nil {
		return nil, err
	}

	return &d, nil
}

// DecodeTOML is like [Decode] for TOML input.
func DecodeTOML(r io.Reader) (*Declaration, error) {
	var d Declaration
	md, err := toml.NewDecoder(r).Decode(&d)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDeclaration, err)
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		return nil, invalid("unknown field %q", keys[0].String())
	}

	if err := d.Validate(); err != nil {
		return nil, err
	}

	return &d, nil
}

// Validate checks names, flag expressions, representations and exponents.
// Names the generator derives from a declaration must not collide with any
// other name in the file.
func (d *Declaration) Validate() error {
	if !token.IsIdentifier(d.Package) {
		return invalid("package name %q", d.Package)
	}
	if len(d.Types) == 0 && len(d.Dimensions) == 0 {
		return invalid("nothing to generate")
	}

	seen := make(map[string]string)
	declare := func(name string) error {
		if !token.IsIdentifier(name) || !token.IsExported(name) {
			return invalid("%q is not an exported identifier", name)
		}
		if seen[name] != "" {
			return invalid("%q is declared twice", name)
		}
		seen[name] = name
		return nil
	}
	reserve := func(name, owner string) error {
		if prev := seen[name]; prev != "" {
			return invalid("%s generates %s, which collides with %s", owner, name, prev)
		}
		seen[name] = owner
		return nil
	}

	for _, t := range d.Types {
		if err := declare(t.Name); err != nil {
			return err
		}
	}
	for _, dim := range d.Dimensions {
		if err := declare(dim.Name); err != nil {
			return err
		}
	}

	for _, t := range d.Types {
		set, err := flags.Parse(t.Flags)
		if err != nil {
			return invalid("type %s: %v", t.Name, err)
		}

		reps := make([]string, 0, len(t.Representations))
		for _, rep := range t.Representations {
			name, _, err := lookupKind(rep)
			if err != nil {
				return invalid("type %s: %v", t.Name, err)
			}
			if slices.Contains(reps, name) {
				return invalid("type %s: representation %s is listed twice", t.Name, name)
			}
			reps = append(reps, name)
		}

		for _, name := range generatedNames(t.Name, set, reps) {
			if err := reserve(name, t.Name); err != nil {
				return err
			}
		}
	}

	dims := make([]physical.Exponents, len(d.Dimensions))
	for i, dim := range d.Dimensions {
		e, err := exponents(dim)
		if err != nil {
			return err
		}
		dims[i] = e

		if err := reserve(dim.Name+"Dim", dim.Name); err != nil {
			return err
		}
	}
	for _, p := range products(d.Dimensions, dims) {
		if err := reserve(p.Func, p.Left+" and "+p.Right); err != nil {
			return err
		}
	}

	return nil
}

// generatedNames lists the package level names emitted for a type besides
// the type itself.
func generatedNames(name string, set flags.Set, reps []string) []string {
	names := []string{name + "Tag", name + "Caps"}
	for _, rep := range reps {
		names = append(names, name+exportName(rep))
	}

	if !set.Grants(flags.CapNativeTyping) {
		return names
	}
	for _, l := range reps {
		for _, r := range reps {
			if l == r {
				continue
			}
			for _, o := range helperOps {
				if set.Grants(o.grant) && (!o.ints || isInteger(l) && isInteger(r)) {
					names = append(names, helperName(o.name, name, l, r))
				}
			}
		}
	}

	return names
}

func exponents(dim DimensionDecl) (physical.Exponents, error) {
	var e physical.Exponents
	for symbol, x := range dim.Exponents {
		if x < math.MinInt8 || x > math.MaxInt8 {
			return e, invalid("dimension %s: exponent %d of %s is out of range", dim.Name, x, symbol)
		}

		var ok bool
		if e, ok = e.Set(symbol, int8(x)); !ok {
			return e, invalid("dimension %s: unknown base unit %q", dim.Name, symbol)
		}
	}

	return e, nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidDeclaration, fmt.Sprintf(format, args...))
}
