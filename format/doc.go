// Package format names the output formats of a conversion.
//
// [PlistFormat] is the iTerm2 property list. [YAMLFormat] and [JSONFormat]
// list the parsed records instead, which helps when checking a scheme
// source.
package format
