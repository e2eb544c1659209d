package modelfile

import (
	"fmt"
	"os"
	"slices"

	"github.com/goccy/go-yaml"
	"github.com/signadot/fol/debug"
	"github.com/signadot/fol/model"
)

type Spec struct {
	Domain int            `yaml:"domain"`
	Vars   map[string]int `yaml:"vars"`
	Funcs  []FuncSpec     `yaml:"funcs"`
	Preds  []PredSpec     `yaml:"preds"`
}

type FuncSpec struct {
	Name string `yaml:"name"`
	// Arity defaults to the length of the first table entry.
	Arity *int        `yaml:"arity"`
	Expr  string      `yaml:"expr"`
	Table []FuncEntry `yaml:"table"`
}

type FuncEntry struct {
	Args  []int `yaml:"args"`
	Value int   `yaml:"value"`
}

type PredSpec struct {
	Name  string      `yaml:"name"`
	Arity *int        `yaml:"arity"`
	Expr  string      `yaml:"expr"`
	Holds [][]int     `yaml:"holds"`
	Table []PredEntry `yaml:"table"`
}

type PredEntry struct {
	Args  []int `yaml:"args"`
	Value bool  `yaml:"value"`
}

// Decode reads a model document, applying patches in order first.
func Decode(data []byte, format Format, patches ...Patch) (*Spec, error) {
	doc, err := toJSON(data, format)
	if err != nil {
		return nil, err
	}
	doc, err = applyPatches(doc, patches)
	if err != nil {
		return nil, err
	}
	spec := &Spec{}
	if err := yaml.UnmarshalWithOptions(doc, spec, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSpec, err)
	}
	if debug.Model() {
		debug.Logf("model spec %s\n", string(doc))
	}
	return spec, nil
}

// Load builds the model described by the file at path, patched by the
// files at patchPaths.
func Load(path string, patchPaths ...string) (*model.FiniteModel, error) {
	format, err := ParseFormat(path)
	if err != nil {
		return nil, err
	}
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	patches := make([]Patch, 0, len(patchPaths))
	for _, pp := range patchPaths {
		p, err := ReadPatch(pp)
		if err != nil {
			return nil, err
		}
		patches = append(patches, p)
	}
	spec, err := Decode(d, format, patches...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	m, err := spec.Build()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

func (s *Spec) Build() (*model.FiniteModel, error) {
	if s.Domain < 0 {
		return nil, fmt.Errorf("%w: negative domain %d", ErrSpec, s.Domain)
	}
	m := model.New(s.Domain)
	for _, name := range sortedKeys(s.Vars) {
		if err := m.Assign(name, s.Vars[name]); err != nil {
			return nil, err
		}
	}
	for i := range s.Funcs {
		if err := s.Funcs[i].build(m); err != nil {
			return nil, err
		}
	}
	for i := range s.Preds {
		if err := s.Preds[i].build(m); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func sortedKeys(m map[string]int) []string {
	res := make([]string, 0, len(m))
	for k := range m {
		res = append(res, k)
	}
	slices.Sort(res)
	return res
}

func arity(name string, given *int, tuples ...[]int) (int, error) {
	if given != nil {
		if *given < 0 {
			return 0, fmt.Errorf("%w: %s: negative arity", ErrSpec, name)
		}
		return *given, nil
	}
	if len(tuples) == 0 {
		return 0, nil
	}
	return len(tuples[0]), nil
}

func checkArity(name string, n int, args []int) error {
	if len(args) != n {
		return fmt.Errorf("%w: %s/%d given %d args %v", ErrSpec, name, n, len(args), args)
	}
	return nil
}

func (f *FuncSpec) build(m *model.FiniteModel) error {
	if f.Name == "" {
		return fmt.Errorf("%w: function with no name", ErrSpec)
	}
	var tuples [][]int
	for _, e := range f.Table {
		tuples = append(tuples, e.Args)
	}
	n, err := arity(f.Name, f.Arity, tuples...)
	if err != nil {
		return err
	}
	if f.Expr != "" {
		if err := tabulateFunc(m, f.Name, n, f.Expr); err != nil {
			return err
		}
	}
	for _, e := range f.Table {
		if err := checkArity(f.Name, n, e.Args); err != nil {
			return err
		}
		if err := m.SetFunc(f.Name, e.Args, e.Value); err != nil {
			return fmt.Errorf("%s: %w", f.Name, err)
		}
	}
	return nil
}

func (p *PredSpec) build(m *model.FiniteModel) error {
	if p.Name == "" {
		return fmt.Errorf("%w: predicate with no name", ErrSpec)
	}
	if p.Expr != "" && p.Holds != nil {
		return fmt.Errorf("%w: %s has both expr and holds", ErrSpec, p.Name)
	}
	tuples := slices.Clone(p.Holds)
	for _, e := range p.Table {
		tuples = append(tuples, e.Args)
	}
	n, err := arity(p.Name, p.Arity, tuples...)
	if err != nil {
		return err
	}
	switch {
	case p.Expr != "":
		if err := tabulatePred(m, p.Name, n, p.Expr); err != nil {
			return err
		}
	case p.Holds != nil:
		var err error
		model.Tuples(m.Size, n, func(args []int) bool {
			err = m.SetPred(p.Name, args, false)
			return err == nil
		})
		if err != nil {
			return err
		}
		for _, args := range p.Holds {
			if err := checkArity(p.Name, n, args); err != nil {
				return err
			}
			if err := m.SetPred(p.Name, args, true); err != nil {
				return fmt.Errorf("%s: %w", p.Name, err)
			}
		}
	}
	for _, e := range p.Table {
		if err := checkArity(p.Name, n, e.Args); err != nil {
			return err
		}
		if err := m.SetPred(p.Name, e.Args, e.Value); err != nil {
			return fmt.Errorf("%s: %w", p.Name, err)
		}
	}
	return nil
}
