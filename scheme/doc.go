// Package scheme parses color scheme source lines.
//
// A source line has the form
//
//	Foreground Color: #FF0000
//
// The label is everything before the first ':' and the color is the
// '#'-prefixed token that ends the line. [ParseRecord] turns one line into a
// [Record]; [DecodeHex] turns six hex digits into normalized channels.
//
// Failures are reported as [*RecordError] values matching one of
// [ErrMissingColor], [ErrWrongLength] or [ErrInvalidDigit] with errors.Is.
package scheme
