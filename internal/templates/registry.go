package templates

// catalog is the immutable template registry. Accessors hand out copies.
var catalog = []Framework{
	{
		Option: Option{Label: "Vanilla", Value: "vanilla"},
		Templates: []Option{
			{Label: "Basic library template", Value: "vanilla-library"},
		},
	},
	{
		Option: Option{Label: "React", Value: "react"},
		Templates: []Option{
			{Label: "Basic template with Mantine UI", Value: "react-basic-mantine"},
		},
	},
}

// Frameworks returns all framework families in prompt order.
func Frameworks() []Framework {
	out := make([]Framework, len(catalog))
	for i, f := range catalog {
		out[i] = Framework{
			Option:    f.Option,
			Templates: append([]Option(nil), f.Templates...),
		}
	}
	return out
}

// GetFramework returns the framework family with the given value.
func GetFramework(value string) (Framework, bool) {
	for _, f := range Frameworks() {
		if f.Value == value {
			return f, true
		}
	}
	return Framework{}, false
}

// FrameworkOf returns the family that offers the given template.
func FrameworkOf(templateName string) (Framework, bool) {
	for _, f := range Frameworks() {
		if f.Has(templateName) {
			return f, true
		}
	}
	return Framework{}, false
}

// Has reports whether f offers the given template.
func (f Framework) Has(templateName string) bool {
	for _, t := range f.Templates {
		if t.Value == templateName {
			return true
		}
	}
	return false
}

// FrameworkNames returns all framework values.
func FrameworkNames() []string {
	names := make([]string, 0, len(catalog))
	for _, f := range catalog {
		names = append(names, f.Value)
	}
	return names
}

// Names returns all template values across every framework.
func Names() []string {
	var names []string
	for _, f := range catalog {
		for _, t := range f.Templates {
			names = append(names, t.Value)
		}
	}
	return names
}

// IsValidTemplate checks if a template name is in the catalog.
func IsValidTemplate(name string) bool {
	_, ok := FrameworkOf(name)
	return ok
}
