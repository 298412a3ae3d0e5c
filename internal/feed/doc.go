// Package feed implements the plugin update feed: the JSON manifest listing
// every distributable plugin and its published version history. It owns the
// data model, the tolerant loader, the publish merge, atomic persistence,
// and the offline maintenance operations (remove, prune, lint) built on top.
package feed
