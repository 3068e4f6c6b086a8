// Package watch drives the serve subcommand's live-reload behavior: it
// watches a directory of query-config files with fsnotify and invokes
// a callback once per changed file, debounced so an editor's
// write-then-rename save doesn't fire the callback twice.
package watch
