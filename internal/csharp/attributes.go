package csharp

// componentsNamespace qualifies the well-known component attribute types so
// generated files never depend on a using directive being present.
const componentsNamespace = "global::Microsoft.AspNetCore.Components"

// FormatRouteAttribute builds the attribute body binding a component to a
// route template. The body is emitted without surrounding brackets.
func FormatRouteAttribute(route string) string {
	return componentsNamespace + `.RouteAttribute("` + EscapeLiteral(route) + `")`
}

// FormatLayoutAttribute builds the attribute body selecting a component's
// layout type.
func FormatLayoutAttribute(layout string) string {
	return componentsNamespace + ".LayoutAttribute(typeof(" + layout + "))"
}
