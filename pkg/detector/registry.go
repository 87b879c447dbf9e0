package detector

// Frameworks is the framework catalog, ordered by precedence: when several
// entries match the same manifest, the earliest one wins. Template entries
// are listed before library entries, and the more specific Vue CLI variants
// before the bare Vue libraries, so a scaffolded project is never mistaken
// for a hand-rolled one.
var Frameworks = []Framework{
	{
		Type:   FrameworkCreateReactApp,
		Name:   "Create React App",
		Family: FamilyTemplate,
		Detectors: []Rule{
			{Package: "react-scripts", Requires: ">=4.0.0"},
		},
		Bundlers: []BundlerType{BundlerWebpack},
	},
	{
		Type:   FrameworkVueCLIVue2,
		Name:   "Vue CLI (Vue 2)",
		Family: FamilyTemplate,
		Detectors: []Rule{
			{Package: "@vue/cli-service", Requires: ">=4.0.0"},
			{Package: "vue", Requires: "^2.0.0"},
		},
		Bundlers: []BundlerType{BundlerWebpack},
	},
	{
		Type:   FrameworkVueCLIVue3,
		Name:   "Vue CLI (Vue 3)",
		Family: FamilyTemplate,
		Detectors: []Rule{
			{Package: "@vue/cli-service", Requires: ">=4.0.0"},
			{Package: "vue", Requires: "^3.0.0"},
		},
		Bundlers: []BundlerType{BundlerWebpack},
	},
	{
		Type:   FrameworkNextJS,
		Name:   "Next.js",
		Family: FamilyTemplate,
		Detectors: []Rule{
			{Package: "next", Requires: ">=10.0.0"},
		},
		Bundlers: []BundlerType{BundlerWebpack},
	},
	{
		Type:   FrameworkNuxtJS,
		Name:   "Nuxt.js (v2)",
		Family: FamilyTemplate,
		Detectors: []Rule{
			{Package: "nuxt", Requires: "^2.0.0"},
		},
		Bundlers: []BundlerType{BundlerWebpack},
	},
	{
		Type:   FrameworkAngular,
		Name:   "Angular",
		Family: FamilyTemplate,
		Detectors: []Rule{
			{Package: "@angular/cli", Requires: ">=12.0.0"},
			{Package: "@angular/core", Requires: ">=12.0.0"},
		},
		Bundlers: []BundlerType{BundlerWebpack},
	},
	{
		Type:   FrameworkVue2,
		Name:   "Vue.js 2",
		Family: FamilyLibrary,
		Detectors: []Rule{
			{Package: "vue", Requires: "^2.0.0"},
		},
		Bundlers: []BundlerType{BundlerWebpack, BundlerVite},
	},
	{
		Type:   FrameworkVue3,
		Name:   "Vue.js 3",
		Family: FamilyLibrary,
		Detectors: []Rule{
			{Package: "vue", Requires: "^3.0.0"},
		},
		Bundlers: []BundlerType{BundlerWebpack, BundlerVite},
	},
	{
		Type:   FrameworkReact,
		Name:   "React.js",
		Family: FamilyLibrary,
		Detectors: []Rule{
			{Package: "react", Requires: ">=16.0.0"},
			{Package: "react-dom", Requires: ">=16.0.0"},
		},
		Bundlers: []BundlerType{BundlerWebpack, BundlerVite},
	},
	{
		Type:   FrameworkSvelte,
		Name:   "Svelte.js",
		Family: FamilyLibrary,
		Detectors: []Rule{
			{Package: "svelte", Requires: ">=3.0.0"},
		},
		Bundlers: []BundlerType{BundlerWebpack, BundlerVite},
	},
}

// Bundlers is the bundler catalog, ordered by precedence.
var Bundlers = []Bundler{
	{
		Type: BundlerWebpack,
		Name: "Webpack",
		Detectors: []Rule{
			{Package: "webpack", Requires: ">=4.0.0"},
		},
	},
	{
		Type: BundlerVite,
		Name: "Vite",
		Detectors: []Rule{
			{Package: "vite", Requires: ">=2.0.0"},
		},
	},
}

// FrameworkByType looks up a catalog entry by its type tag.
func FrameworkByType(t FrameworkType) (Framework, bool) {
	for _, fw := range Frameworks {
		if fw.Type == t {
			return fw, true
		}
	}
	return Framework{}, false
}

// BundlerByType looks up a bundler catalog entry by its type tag.
func BundlerByType(t BundlerType) (Bundler, bool) {
	for _, b := range Bundlers {
		if b.Type == t {
			return b, true
		}
	}
	return Bundler{}, false
}
