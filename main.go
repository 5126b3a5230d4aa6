package main

import (
	"fmt"
	"log"
	"os"

	"braces.dev/errtrace"
	"github.com/vchimishuk/config"
	"github.com/vchimishuk/opt"
)

const Version = "0.1.0"

var ops = []Op{OpFind, OpExists, OpCopy, OpRemove}

func configSpec() *config.Spec {
	blockProps := []*config.PropertySpec{
		&config.PropertySpec{
			Type:    config.TypeString,
			Name:    "predicate",
			Repeat:  false,
			Require: true,
		},
		&config.PropertySpec{
			Type:    config.TypeInt,
			Name:    "arg",
			Repeat:  false,
			Require: false,
		},
		&config.PropertySpec{
			Type:    config.TypeString,
			Name:    "expect",
			Repeat:  false,
			Require: true,
		},
	}
	spec := &config.Spec{
		Properties: []*config.PropertySpec{
			&config.PropertySpec{
				Type:    config.TypeString,
				Name:    "numbers",
				Repeat:  false,
				Require: true,
			},
		},
	}
	for _, op := range ops {
		spec.Blocks = append(spec.Blocks, &config.BlockSpec{
			Name:       string(op),
			Repeat:     true,
			Require:    false,
			Properties: blockProps,
		})
	}

	return spec
}

// loadScenarios reads the numbers to test against and the list of
// scenarios from the configuration file at path.
func loadScenarios(path string) ([]int, []*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, errtrace.Wrap(
			fmt.Errorf("failed to read `%s`: %w", path, err))
	}
	cfg, err := config.Parse(configSpec(), string(data))
	if err != nil {
		return nil, nil, errtrace.Wrap(
			fmt.Errorf("failed to parse `%s`: %w", path, err))
	}

	nums, err := parseNumbers(cfg.String("numbers"))
	if err != nil {
		return nil, nil, errtrace.Wrap(
			fmt.Errorf("`%s`: numbers: %w", path, err))
	}

	var scenarios []*Scenario
	for _, b := range cfg.Blocks {
		pred := b.String("predicate")
		arg := b.IntOr("arg", 0)
		test, err := parsePredicate(pred, arg)
		if err != nil {
			return nil, nil, errtrace.Wrap(
				fmt.Errorf("`%s`: %s: %w", path, b.Name, err))
		}
		name := fmt.Sprintf("%s %s", b.Name, pred)
		if arg != 0 {
			name = fmt.Sprintf("%s (arg %d)", name, arg)
		}
		scenarios = append(scenarios, &Scenario{
			Name: name,
			Op:   Op(b.Name),
			Test: test,
			Want: b.String("expect"),
		})
	}

	return nums, scenarios, nil
}

// runScenarios logs the outcome of every scenario and returns
// the number of failed ones.
func runScenarios(nums []int, scenarios []*Scenario) (int, error) {
	failed := 0
	for _, s := range scenarios {
		r, err := s.Run(nums)
		if err != nil {
			return failed, err
		}
		if r.OK {
			log.Printf("%s: OK", s.Name)
		} else {
			failed++
			log.Printf("%s: FAIL (got `%s`, want `%s`)",
				s.Name, r.Got, s.Want)
		}
	}

	return failed, nil
}

func main() {
	optDescs := []*opt.Desc{
		{"c", "config", opt.ArgString, "FILE",
			"scenarios file, built-in scenarios are used if omitted"},
		{"h", "help", opt.ArgNone, "",
			"display this help and exit"},
		{"v", "version", opt.ArgNone, "",
			"output version information and exit"},
	}
	opts, _, err := opt.Parse(os.Args[1:], optDescs)
	if err != nil {
		log.Fatalf("%s", err)
	}
	if opts.Bool("help") {
		fmt.Println("Usage: algutil [OPTION]...")
		fmt.Println()
		fmt.Println("Available optional options:")
		fmt.Print(opt.Usage(optDescs))
		os.Exit(0)
	}
	if opts.Bool("version") {
		fmt.Printf("%s %s\n", os.Args[0], Version)
		os.Exit(0)
	}

	nums, scenarios := defaultNumbers(), defaultScenarios()
	if path := opts.StringOr("config", ""); path != "" {
		nums, scenarios, err = loadScenarios(path)
		if err != nil {
			log.Fatalf("%s", err)
		}
	}

	failed, err := runScenarios(nums, scenarios)
	if err != nil {
		log.Fatalf("%s", err)
	}
	if failed > 0 {
		log.Printf("%d of %d scenarios failed", failed, len(scenarios))
		os.Exit(1)
	}
}
