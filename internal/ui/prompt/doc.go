// Package prompt provides simple interactive prompts.
//
// This package contains standalone interactive prompts for common
// user input scenarios. For the branch selection list, see the
// parent ui package.
//
// Available prompts:
//   - [Confirm]: Yes/No confirmation prompt, defaulting to no
package prompt
