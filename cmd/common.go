package cmd

import (
	"fmt"

	"framescout/cmd/steps"
	"framescout/cmd/ui/multiInput"
	"framescout/pkg/detector"
)

// promptForPin interactively selects a framework and, when the framework is a
// library, a bundler. Returns multiInput.ErrCancelled if the user backs out.
func promptForPin() (*detector.Pin, error) {
	stepsData := steps.InitSteps()

	frameworkStep := stepsData.Steps["framework"]
	item, err := multiInput.ShowMenu(frameworkStep.Options, frameworkStep.Headers)
	if err != nil {
		return nil, err
	}

	framework, ok := detector.FrameworkByType(detector.FrameworkType(item.Flag))
	if !ok {
		return nil, fmt.Errorf("unknown framework %q", item.Flag)
	}

	pin := &detector.Pin{Framework: item.Flag}

	if framework.Family == detector.FamilyLibrary {
		options := append(steps.BundlerItemsFor(framework), steps.Item{
			Title: "None",
			Desc:  "No bundler, or not sure",
		})
		bundlerStep := stepsData.Steps["bundler"]
		choice, err := multiInput.ShowMenu(options, bundlerStep.Headers)
		if err != nil {
			return nil, err
		}
		pin.Bundler = choice.Flag
	}

	if err := pin.Validate(); err != nil {
		return nil, err
	}
	return pin, nil
}
