// Package resolve generates resource locators from URL templates.
//
// Each path group declares a template path containing a replaceable
// substring, a regex locating that substring, a prefix, and a zero-fill
// width. For a given index the resolver builds a token like "_1925-0007"
// and substitutes it for every regex match in the template:
//
//	/storage-services/maps/_1925-0001.jpg  ->  /storage-services/maps/_1925-0007.jpg
//
// Substitution is global, matching the behavior of the configuration data
// this tool was built around. A pattern that matches nothing is a no-op:
// the template path comes back unchanged rather than erroring, since some
// groups intentionally point at a single fixed resource.
package resolve
