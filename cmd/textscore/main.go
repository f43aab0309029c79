// Package main provides the textscore CLI.
//
// textscore scores text files on a heuristic scale between AI-generated and
// human-written.
//
// Usage:
//
//	textscore analyze essay.txt notes.md paper.pdf
//	echo "Some text." | textscore analyze --stdin
//	textscore analyze --text "Some text." --format markdown
package main

func main() {
	Execute()
}
