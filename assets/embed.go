// Package assets embeds the default word lists shipped with the binary.
//
//   - answers.txt: ordered target pool. Order matters: daily sequences index into it.
//   - allowed.txt: valid guesses.
//
// Lines starting with # are comments.
package assets

import "embed"

//go:embed allowed.txt answers.txt
var FS embed.FS
