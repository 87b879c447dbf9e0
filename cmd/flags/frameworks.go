package flags

import (
	"fmt"
	"strings"

	"framescout/pkg/detector"
)

// Framework is a pflag value holding a framework type tag, validated against
// the catalog.
type Framework string

func (f Framework) String() string {
	return string(f)
}

func (f *Framework) Type() string {
	return "Framework"
}

func (f *Framework) Set(value string) error {
	if _, ok := detector.FrameworkByType(detector.FrameworkType(value)); ok {
		*f = Framework(value)
		return nil
	}

	return fmt.Errorf("unknown framework %q. Allowed values: %s", value, strings.Join(AllowedFrameworks(), ", "))
}

// Bundler is a pflag value holding a bundler type tag, validated against the
// catalog.
type Bundler string

func (b Bundler) String() string {
	return string(b)
}

func (b *Bundler) Type() string {
	return "Bundler"
}

func (b *Bundler) Set(value string) error {
	if _, ok := detector.BundlerByType(detector.BundlerType(value)); ok {
		*b = Bundler(value)
		return nil
	}

	return fmt.Errorf("unknown bundler %q. Allowed values: %s", value, strings.Join(AllowedBundlers(), ", "))
}

// AllowedFrameworks lists the accepted framework type tags in catalog order.
func AllowedFrameworks() []string {
	tags := make([]string, 0, len(detector.Frameworks))
	for _, fw := range detector.Frameworks {
		tags = append(tags, string(fw.Type))
	}
	return tags
}

// AllowedBundlers lists the accepted bundler type tags in catalog order.
func AllowedBundlers() []string {
	tags := make([]string, 0, len(detector.Bundlers))
	for _, b := range detector.Bundlers {
		tags = append(tags, string(b.Type))
	}
	return tags
}
