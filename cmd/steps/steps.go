// Package steps provides utility for creating
// each step of the CLI flow
package steps

import (
	"fmt"
	"strings"

	"framescout/pkg/detector"
)

// A StepSchema contains the data that is used
// for an individual step of the CLI
type StepSchema struct {
	StepName string // The name of a given step
	Options  []Item // The slice of each option for a given step
	Headers  string // The title displayed at the top of a given step
}

// Steps contains a map of steps
type Steps struct {
	Steps map[string]StepSchema
}

// An Item contains the data for each option
// in a StepSchema.Options
type Item struct {
	Flag, Title, Desc string
}

// InitSteps initializes and returns the *Steps to be used in the CLI program
func InitSteps() *Steps {
	steps := &Steps{
		map[string]StepSchema{
			"framework": {
				StepName: "Framework",
				Options:  frameworkItems(),
				Headers:  "Which framework does this project use?",
			},
			"bundler": {
				StepName: "Bundler",
				Options:  bundlerItems(),
				Headers:  "Which bundler does this project use?",
			},
		},
	}

	return steps
}

// BundlerItemsFor narrows the bundler options to those a framework supports.
func BundlerItemsFor(fw detector.Framework) []Item {
	var items []Item
	for _, b := range detector.Bundlers {
		if fw.SupportsBundler(b.Type) {
			items = append(items, bundlerItem(b))
		}
	}
	return items
}

func frameworkItems() []Item {
	items := make([]Item, 0, len(detector.Frameworks))
	for _, fw := range detector.Frameworks {
		items = append(items, Item{
			Flag:  string(fw.Type),
			Title: fw.Name,
			Desc:  describeFramework(fw),
		})
	}
	return items
}

func bundlerItems() []Item {
	items := make([]Item, 0, len(detector.Bundlers))
	for _, b := range detector.Bundlers {
		items = append(items, bundlerItem(b))
	}
	return items
}

func bundlerItem(b detector.Bundler) Item {
	return Item{
		Flag:  string(b.Type),
		Title: b.Name,
		Desc:  "Requires " + describeRules(b.Detectors),
	}
}

func describeFramework(fw detector.Framework) string {
	if fw.Family == detector.FamilyTemplate {
		return fmt.Sprintf("Template bundled with %s, requires %s", fw.Bundlers[0], describeRules(fw.Detectors))
	}

	bundlers := make([]string, len(fw.Bundlers))
	for i, b := range fw.Bundlers {
		bundlers[i] = string(b)
	}
	return fmt.Sprintf("Library, pairs with %s, requires %s", strings.Join(bundlers, " or "), describeRules(fw.Detectors))
}

func describeRules(rules []detector.Rule) string {
	parts := make([]string, len(rules))
	for i, r := range rules {
		parts[i] = r.Package + " " + r.Requires
	}
	return strings.Join(parts, " and ")
}
