// Package sanitizer cleans HTML with bluemonday policies.
//
// [SanitizeDescription] is applied to every term description before it is
// written into a page; the other helpers cover plain-text and comment-style
// input.
package sanitizer
