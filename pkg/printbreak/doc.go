// Package printbreak provides interactive checkpoints for debugging.
//
// A checkpoint prints the values passed to it, named after the argument
// expressions at the call site, and pauses until a key is pressed:
//
//	printbreak.Break(user, items, resp)
//	printbreak.BreakIf(len(items) == 0, items)
//	printbreak.Break(printbreak.Named("payload", raw))
//
// Strings holding JSON, TOML or YAML are pretty-printed, large values are
// collapsed and truncated, and the full rendering stays one keypress
// away. Checkpoints write to stderr and only wait for input when both
// stderr and stdin are terminals.
//
// Setting PRINT_BREAK=0 disables every checkpoint at runtime. Building
// with -tags printbreak_release compiles them away entirely.
package printbreak
