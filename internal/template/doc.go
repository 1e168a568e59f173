// Package template resolves {...} placeholder tokens in destination
// path templates against a media item's metadata.
//
// Three namespaces are recognized:
//
//	{Date <formatSpec>}   strftime-style formatting of the capture date
//	{LrFM:<key>}          lookup in the item's formatted metadata
//	{LrCC:<type> <filter>} name or path of a collection the item belongs to
//
// Every token may carry a |<default> suffix used when the primary
// value resolves empty. Anything that does not match one of the three
// shapes - malformed braces, unknown namespaces, a bad LrCC type - is
// passed through byte-for-byte; the engine never errors on template
// syntax.
//
// Example:
//
//	engine := template.NewEngine(resolver, nil)
//	path := engine.Resolve("{Date %Y}/{LrCC:path|Unsorted}", item)
//	// e.g. "2020/Trips/Paris"
//
// The default value "?" is a deliberate mandatory-missing marker: it
// bypasses segment sanitization so it stays visible in the output.
package template
