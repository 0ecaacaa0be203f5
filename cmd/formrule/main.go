package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	json "github.com/goccy/go-json"

	formrule "github.com/reoring/formrule"
	"github.com/reoring/formrule/dsl"
	"github.com/reoring/formrule/i18n"
	"github.com/reoring/formrule/rules"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := os.Args[1]
	switch sub {
	case "check":
		checkCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "formrule CLI\n\nUsage:\n  formrule check -form form.yaml [-values values.json] [-lang en|ja]\n\nNotes:\n  - The checker registers a small rule set (required, alpha, numeric, email,\n    min8). Definitions referencing other rules fail as configuration errors.\n  - Exit code 1 means the submission is invalid, 2 means a usage or\n    configuration error.")
}

// checkerRegistry is the rule set this tool, as an ordinary embedding
// application, supplies for checking form definitions and sample
// submissions.
func checkerRegistry() *formrule.Registry {
	reg := formrule.NewRegistry()
	reg.MustRegister("required", formrule.Rule{
		Check: rules.NonEmpty(),
		Hint:  rules.HintCode("required", nil),
	})
	reg.MustRegister("alpha", formrule.Rule{
		Check: rules.Matches(`^[A-Za-z]*$`),
		Hint:  rules.HintCode("letters_only", nil),
	})
	reg.MustRegister("numeric", formrule.Rule{
		Check: rules.Matches(`^[0-9]*$`),
		Hint:  rules.HintCode("digits_only", nil),
	})
	reg.MustRegister("email", formrule.Rule{
		Check: rules.Or(rules.Not(rules.NonEmpty()), rules.Matches(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)),
		Hint:  rules.HintCode("invalid_format", nil),
	})
	reg.MustRegister("min8", formrule.Rule{
		Check: rules.MinLen(8),
		Hint:  rules.HintCode("too_short", nil),
	})
	return reg
}

func checkCmd(args []string) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	var formPath string
	var valuesPath string
	var lang string
	fs.StringVar(&formPath, "form", "", "YAML form definition")
	fs.StringVar(&valuesPath, "values", "", "JSON document of field values to submit (optional)")
	fs.StringVar(&lang, "lang", "en", "hint language (en/ja)")
	_ = fs.Parse(args)
	if formPath == "" {
		fs.Usage()
		os.Exit(2)
	}
	i18n.SetLanguage(lang)

	data, err := os.ReadFile(formPath)
	if err != nil {
		fatalf("reading form definition: %v", err)
	}
	def, err := dsl.FromYAML(data)
	if err != nil {
		fatalf("%v", err)
	}
	form, err := def.Build(checkerRegistry())
	if err != nil {
		fatalf("building form: %v", err)
	}

	if valuesPath != "" {
		raw, err := os.ReadFile(valuesPath)
		if err != nil {
			fatalf("reading values: %v", err)
		}
		var values map[string]any
		if err := json.Unmarshal(raw, &values); err != nil {
			fatalf("parsing values: %v", err)
		}
		// Deterministic application order for reproducible output.
		names := make([]string, 0, len(values))
		for name := range values {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			if _, err := form.OnValueChange(name, values[name]); err != nil {
				fatalf("applying value: %v", err)
			}
		}
	}

	failed, err := form.ValidateAll()
	if err != nil {
		fatalf("%v", err)
	}
	if failed.Valid() {
		fmt.Println("ok")
		return
	}
	// Report failures in field registration order.
	for _, field := range form.Fields() {
		rule, ok := failed[field.Name]
		if !ok {
			continue
		}
		fmt.Printf("- %s: %s (%v)\n", field.Name, rule, field.Error)
	}
	os.Exit(1)
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, "formrule: "+format+"\n", a...)
	os.Exit(2)
}
