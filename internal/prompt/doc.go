// Package prompt implements the validated console input loops. A Prompter
// writes a prompt, reads one line, and re-prompts with a fixed message until
// the line parses as an integer in range. Malformed input never fails a read;
// only an exhausted input source does, with an error wrapping io.EOF.
package prompt
