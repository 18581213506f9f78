// Command indexgen turns the catalog's topics.yaml into zz_index.go, the
// ordered topic registry the CLI lists and runs.
//
// Usage (from internal/catalog, via go:generate):
//
//	indexgen -in topics.yaml -out zz_index.go
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/dave/jennifer/jen"
	"gopkg.in/yaml.v3"
)

// Index is the parsed topics.yaml.
type Index struct {
	Module  string  `yaml:"module"`
	Package string  `yaml:"package"`
	Topics  []Entry `yaml:"topics"`
}

// Entry describes one topic. Run is "<package dir>.<func>" relative to the
// module root, e.g. "internal/regex.RunVowels".
type Entry struct {
	Name    string `yaml:"name"`
	Group   string `yaml:"group"`
	Title   string `yaml:"title"`
	Summary string `yaml:"summary"`
	Run     string `yaml:"run"`
	Solo    bool   `yaml:"solo"`
}

var (
	in  = flag.String("in", "topics.yaml", "topic list to read")
	out = flag.String("out", "zz_index.go", "Go file to write")
)

func main() {
	flag.Parse()
	if err := run(*in, *out); err != nil {
		fmt.Fprintf(os.Stderr, "indexgen: %v\n", err)
		os.Exit(1)
	}
}

func run(inPath, outPath string) error {
	data, err := os.ReadFile(inPath)
	if err != nil {
		return err
	}
	idx, err := parse(data)
	if err != nil {
		return fmt.Errorf("%s: %w", inPath, err)
	}
	f, err := generate(idx, path.Base(inPath))
	if err != nil {
		return err
	}
	if err := f.Save(outPath); err != nil {
		return fmt.Errorf("failed to save file: %w", err)
	}
	return nil
}

// parse decodes and validates the topic list.
func parse(data []byte) (*Index, error) {
	var idx Index
	if err := yaml.Unmarshal(data, &idx); err != nil {
		return nil, err
	}
	if idx.Module == "" || idx.Package == "" {
		return nil, errors.New("module and package are required")
	}
	seen := make(map[string]bool, len(idx.Topics))
	for i, t := range idx.Topics {
		if t.Name == "" || t.Group == "" || t.Run == "" {
			return nil, fmt.Errorf("topic %d: name, group and run are required", i)
		}
		if seen[t.Name] {
			return nil, fmt.Errorf("topic %q listed twice", t.Name)
		}
		seen[t.Name] = true
		if _, _, err := splitRun(t.Run); err != nil {
			return nil, fmt.Errorf("topic %q: %w", t.Name, err)
		}
	}
	return &idx, nil
}

// splitRun splits "internal/regex.RunVowels" into its package directory and
// function name.
func splitRun(run string) (dir, fn string, err error) {
	i := strings.LastIndex(run, ".")
	if i <= 0 || i == len(run)-1 {
		return "", "", fmt.Errorf("run %q is not <package>.<func>", run)
	}
	return run[:i], run[i+1:], nil
}

// generate builds the registry file:
//
//	var index = []Topic{{Name: "bitset", ..., Run: bitmanip.RunBitSet}, ...}
func generate(idx *Index, source string) (*jen.File, error) {
	f := jen.NewFile(idx.Package)
	f.HeaderComment(fmt.Sprintf("Code generated by indexgen from %s. DO NOT EDIT.", source))

	var topics []jen.Code
	for _, t := range idx.Topics {
		dir, fn, err := splitRun(t.Run)
		if err != nil {
			return nil, err
		}
		pkg := idx.Module + "/" + dir
		f.ImportName(pkg, path.Base(dir))

		fields := jen.Dict{
			jen.Id("Name"):    jen.Lit(t.Name),
			jen.Id("Group"):   jen.Lit(t.Group),
			jen.Id("Title"):   jen.Lit(t.Title),
			jen.Id("Summary"): jen.Lit(t.Summary),
			jen.Id("Notes"):   jen.Id("note").Call(jen.Lit(t.Name)),
			jen.Id("Run"):     jen.Qual(pkg, fn),
		}
		if t.Solo {
			fields[jen.Id("Solo")] = jen.True()
		}
		topics = append(topics, jen.Values(fields))
	}

	f.Comment("index lists every topic in presentation order.")
	f.Var().Id("index").Op("=").Index().Id("Topic").Values(topics...)
	return f, nil
}
