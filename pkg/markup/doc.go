// Package markup provides the structured node tree the renderers build views
// with, plus the serializer that turns a tree into HTML text. Views are
// compared as trees in tests; only the serializer deals with escaping.
package markup
