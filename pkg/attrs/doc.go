// Package attrs implements the ordered attribute bag shared by markup
// renderers: a mutable key→value collection that can be populated from
// pair sequences, maps, or struct field containers, merged with defined
// overwrite rules, and serialized into a pre-escaped attribute string.
// Keys that come from name-derived sources (pairs, struct fields, presets)
// have underscores normalized to hyphens (`data_role` → `data-role`);
// explicit keys and map keys are used verbatim. The `class` attribute
// supports space-joined accumulation through AddClass while direct writes
// via Attr stay authoritative and overwrite, including over accumulated
// classes. Bags are single-owner builders and are not safe for concurrent
// mutation.
package attrs
