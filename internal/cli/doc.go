// Package cli implements the interactive taskmeet shell: a small REPL over
// the auth, task, and meeting services. Input helpers and the print function
// are package-level seams so the loop and the command handlers can be tested
// without a terminal.
package cli
